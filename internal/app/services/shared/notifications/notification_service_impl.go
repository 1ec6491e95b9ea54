package notifications

import (
	"context"
	"sync"

	"careform-service/internal/app/contracts"
	"careform-service/internal/pkg/constvars"
	"careform-service/internal/pkg/exceptions"
	"careform-service/internal/pkg/models"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	notificationServiceInstance contracts.NotificationService
	onceNotificationService     sync.Once
)

// notificationService publishes toast payloads to a durable queue consumed
// by the dashboard's notification collaborator. Display is entirely the
// consumer's concern.
type notificationService struct {
	channel   *amqp.Channel
	queueName string
	Log       *zap.Logger
	mu        sync.Mutex
}

func NewNotificationService(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.NotificationService, error) {
	var initErr error
	onceNotificationService.Do(func() {
		channel, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}

		_, err = channel.QueueDeclare(
			queueName,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			initErr = err
			return
		}

		notificationServiceInstance = &notificationService{
			channel:   channel,
			queueName: queueName,
			Log:       logger,
		}
	})
	return notificationServiceInstance, initErr
}

func (s *notificationService) Publish(ctx context.Context, notification *models.Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.channel.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		s.Log.Error("notificationService.Publish error publishing message",
			zap.String(constvars.LoggingQueueKey, s.queueName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	return nil
}
