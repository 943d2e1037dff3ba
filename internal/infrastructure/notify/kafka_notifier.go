package notify

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"atelier-service/internal/domain/entities"
	"atelier-service/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

const (
	defaultBrokers = "localhost:9092"
	defaultTopic   = "atelier.notifications"

	writeTimeout = 5 * time.Second
)

// KafkaNotifier publishes notifications to the delivery topic. The
// notification service consumes them and fans out to email and push
// channels; this side only produces.

type KafkaNotifier struct {
	writer *kafka.Writer
}

var _ interfaces.INotifier = (*KafkaNotifier)(nil)

func NewKafkaNotifier() *KafkaNotifier {
	brokers := strings.Split(getenvDefault("KAFKA_BROKERS", defaultBrokers), ",")
	topic := getenvDefault("KAFKA_NOTIFICATIONS_TOPIC", defaultTopic)

	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (n *KafkaNotifier) Notify(ctx context.Context, notification entities.Notification) error {
	return n.NotifyMany(ctx, []entities.Notification{notification})
}

func (n *KafkaNotifier) NotifyMany(ctx context.Context, notifications []entities.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	messages := make([]kafka.Message, 0, len(notifications))
	for _, notification := range notifications {
		value, err := json.Marshal(notification)
		if err != nil {
			return err
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(notification.UserID),
			Value: value,
		})
	}

	return n.writer.WriteMessages(ctx, messages...)
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
