package services

//go:generate mockgen -source=generation.go -destination=generation_mock.go -package=services

import (
	"context"

	"github.com/margdarshak/career-api/internal/models"
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts models.GenerationOptions) (string, error)
}
