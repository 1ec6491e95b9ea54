package contracts

import (
	"context"

	"careform-service/internal/pkg/models"
)

type NotificationService interface {
	Publish(ctx context.Context, notification *models.Notification) error
}
