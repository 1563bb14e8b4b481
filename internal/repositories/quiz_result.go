package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

type QuizResultWriteRepository struct {
	db *sqlx.DB
}

func NewQuizResultWriteRepository(db *sqlx.DB) *QuizResultWriteRepository {
	return &QuizResultWriteRepository{db: db}
}

// Save records a graded quiz and fills in its generated id and timestamp.
func (r *QuizResultWriteRepository) Save(ctx context.Context, result *models.QuizResultDB) error {
	const query = `
		INSERT INTO quiz_results (attempt_id, name, skill, score, correct_count, total_questions)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING result_id, created_at
	`
	args := []any{result.AttemptID, result.Name, result.Skill, result.Score, result.CorrectCount, result.TotalQuestions}

	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&result.ResultID, &result.CreatedAt)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result.ResultID,
		"error", err,
	)

	return err
}

type QuizResultReadRepository struct {
	db *sqlx.DB
}

func NewQuizResultReadRepository(db *sqlx.DB) *QuizResultReadRepository {
	return &QuizResultReadRepository{db: db}
}

// ListByName returns the most recent results recorded under name, newest first.
func (r *QuizResultReadRepository) ListByName(ctx context.Context, name string, limit int) ([]models.QuizResultDB, error) {
	const query = `
		SELECT result_id, attempt_id, name, skill, score, correct_count, total_questions, created_at
		FROM quiz_results
		WHERE name = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	results := []models.QuizResultDB{}
	err := r.db.SelectContext(ctx, &results, query, name, limit)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, limit},
		"result", len(results),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return results, nil
}
