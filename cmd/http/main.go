package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careform-service/internal/app/config"
	"careform-service/internal/app/delivery/http/middlewares"
	"careform-service/internal/app/delivery/http/routers"
	"careform-service/internal/app/drivers/database"
	"careform-service/internal/app/drivers/logger"
	"careform-service/internal/app/drivers/messaging"
	"careform-service/internal/app/services/core/drafts"
	"careform-service/internal/app/services/core/patients"
	"careform-service/internal/app/services/core/schema"
	lockersvc "careform-service/internal/app/services/shared/locker"
	"careform-service/internal/app/services/shared/notifications"
	redissvc "careform-service/internal/app/services/shared/redis"
	"careform-service/internal/app/services/upstream/records"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQConnection(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server starting", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Failed to close drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared
	redisRepository := redissvc.NewRedisRepository(bootstrap.Redis)
	lockerService := lockersvc.NewLockService(redisRepository, bootstrap.Logger)
	notificationService, err := notifications.NewNotificationService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.NotificationQueueName,
		bootstrap.Logger,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to declare notification queue", zap.Error(err))
	}

	// Middlewares
	submitLimiter := middlewares.NewRateLimiter(bootstrap.InternalConfig.App.MaxRequests, time.Minute)
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, submitLimiter)

	// Schema
	recordSchema := schema.New()

	// Upstream
	recordClient := records.NewRecordClient(bootstrap.InternalConfig.Upstream, bootstrap.Logger)

	// Draft
	draftMongoRepository := drafts.NewDraftMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	draftUsecase := drafts.NewDraftUsecase(draftMongoRepository, recordClient, recordSchema, bootstrap.Logger)
	draftController := drafts.NewDraftController(bootstrap.Logger, draftUsecase)

	// Patient
	patientUsecase := patients.NewPatientUsecase(
		recordClient,
		redisRepository,
		lockerService,
		notificationService,
		draftUsecase,
		recordSchema,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, patientController, draftController)
}
