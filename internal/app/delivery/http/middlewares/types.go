package middlewares

import "go.uber.org/zap"

type Middlewares struct {
	Log           *zap.Logger
	SubmitLimiter *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, submitLimiter *RateLimiter) *Middlewares {
	return &Middlewares{
		Log:           logger,
		SubmitLimiter: submitLimiter,
	}
}
