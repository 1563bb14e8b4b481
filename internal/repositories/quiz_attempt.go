package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// QuizAttemptCacheRepository keeps issued quiz attempts in Redis until they expire
type QuizAttemptCacheRepository struct {
	client *redis.Client
	exp    time.Duration // how long an attempt can be evaluated
}

// NewQuizAttemptCacheRepository creates a new repository instance
func NewQuizAttemptCacheRepository(client *redis.Client, expiration time.Duration) *QuizAttemptCacheRepository {
	return &QuizAttemptCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func quizAttemptKey(id uuid.UUID) string {
	return "quiz_attempt:" + id.String()
}

// Save stores the attempt under its id
func (r *QuizAttemptCacheRepository) Save(ctx context.Context, attempt *models.QuizAttempt) error {
	key := quizAttemptKey(attempt.AttemptID)

	data, err := json.Marshal(attempt)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"set",
		"key", key,
		"sections", len(attempt.Sections),
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Get returns the stored attempt, or nil when it is unknown or expired
func (r *QuizAttemptCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.QuizAttempt, error) {
	key := quizAttemptKey(id)

	data, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Infow(
		"get",
		"key", key,
		"size", len(data),
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var attempt models.QuizAttempt
	if err := json.Unmarshal(data, &attempt); err != nil {
		return nil, err
	}
	return &attempt, nil
}
