package publishers

import (
	"context"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishQuizEvaluated(ctx context.Context, event models.QuizEvaluatedEvent) error {
	logger.FromContext(ctx).Debugw("event broker disabled, dropping event", "event_id", event.EventID, "type", event.Type)
	return nil
}

func (NoopPublisher) Close() error { return nil }
