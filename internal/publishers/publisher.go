package publishers

import (
	"context"

	"github.com/margdarshak/career-api/internal/config"
	"github.com/margdarshak/career-api/internal/models"
)

// Publisher announces quiz events.
type Publisher interface {
	PublishQuizEvaluated(ctx context.Context, event models.QuizEvaluatedEvent) error
	Close() error
}

// New returns the publisher selected by cfg.Broker.
func New(cfg config.EventsConfig) (Publisher, error) {
	switch cfg.Broker {
	case config.BrokerKafka:
		return NewKafkaPublisher(NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)), nil
	case config.BrokerAMQP:
		return DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
	default:
		return NoopPublisher{}, nil
	}
}
