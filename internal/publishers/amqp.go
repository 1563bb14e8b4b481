package publishers

//go:generate mockgen -source=amqp.go -destination=amqp_mock.go -package=publishers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/streadway/amqp"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// AMQPChannel is the part of *amqp.Channel used for publishing.
type AMQPChannel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher publishes quiz events to a topic exchange, routed by event type.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       AMQPChannel
	exchange string
}

// NewAMQPPublisher creates a publisher on an open channel.
func NewAMQPPublisher(ch AMQPChannel, exchange string) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, exchange: exchange}
}

// DialAMQP connects to url and declares a durable topic exchange.
func DialAMQP(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	p := NewAMQPPublisher(ch, exchange)
	p.conn = conn
	return p, nil
}

// PublishQuizEvaluated publishes event as a persistent JSON message.
func (p *AMQPPublisher) PublishQuizEvaluated(ctx context.Context, event models.QuizEvaluatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.ch.Publish(
		p.exchange,
		event.Type, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.EventID,
			Type:         event.Type,
			Timestamp:    time.Unix(event.Timestamp, 0),
			Body:         body,
		},
	)
	if err != nil {
		logger.FromContext(ctx).Errorw("Failed to publish event to AMQP", "event_id", event.EventID, "exchange", p.exchange, "error", err)
		return err
	}

	logger.FromContext(ctx).Infow("Event published to AMQP", "event_id", event.EventID, "exchange", p.exchange)
	return nil
}

// Close closes the channel and, when dialed, the connection.
func (p *AMQPPublisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
