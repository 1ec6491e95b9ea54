package config

import (
	"careform-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "careform"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                   utils.GetEnvString("APP_ENV", "development"),
			Port:                  utils.GetEnvString("APP_PORT", ":8080"),
			Version:               utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:        utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			Timezone:              utils.GetEnvString("APP_TIMEZONE", "UTC"),
			MaxRequests:           utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			ListCacheTTLSeconds:   utils.GetEnvInt("APP_LIST_CACHE_TTL_SECONDS", 300),
			SubmitLockTTLSeconds:  utils.GetEnvInt("APP_SUBMIT_LOCK_TTL_SECONDS", 30),
			NotificationQueueName: utils.GetEnvString("APP_NOTIFICATION_QUEUE", "dashboard_notifications_queue"),
		},
		Upstream: Upstream{
			BaseURL:        utils.GetEnvString("UPSTREAM_BASE_URL", "http://localhost:9090/api"),
			BearerToken:    utils.GetEnvString("UPSTREAM_BEARER_TOKEN", ""),
			TimeoutSeconds: utils.GetEnvInt("UPSTREAM_TIMEOUT_SECONDS", 10),
		},
	}
}
