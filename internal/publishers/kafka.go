// Package publishers announces domain events on a message broker.
package publishers

//go:generate mockgen -source=kafka.go -destination=kafka_mock.go -package=publishers

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaPublisher publishes quiz events to a Kafka topic.
type KafkaPublisher struct {
	writer KafkaWriter
}

// NewKafkaWriter creates a writer for topic. Messages with the same key land
// on the same partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// NewKafkaPublisher creates a new KafkaPublisher. A nil writer disables publishing.
func NewKafkaPublisher(writer KafkaWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// PublishQuizEvaluated writes event keyed by its attempt, or by the event id
// for quizzes graded without one.
func (p *KafkaPublisher) PublishQuizEvaluated(ctx context.Context, event models.QuizEvaluatedEvent) error {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := event.AttemptID
	if key == "" {
		key = event.EventID
	}

	msg := kafka.Message{
		Key:     []byte(key),
		Value:   data,
		Headers: []kafka.Header{{Key: "type", Value: []byte(event.Type)}},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.FromContext(ctx).Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
		return err
	}

	logger.FromContext(ctx).Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type)
	return nil
}

// Close closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
