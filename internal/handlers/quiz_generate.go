package handlers

//go:generate mockgen -source=quiz_generate.go -destination=quiz_generate_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/margdarshak/career-api/internal/jwt"
	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// QuizGenerator defines the interface that the quiz service must implement.
type QuizGenerator interface {
	Generate(ctx context.Context, domain models.QuizDomain, userID *uuid.UUID) (*models.QuizAttempt, error)
}

// QuizGenerateRequest represents the JSON body for quiz generation
// swagger:model QuizGenerateRequest
type QuizGenerateRequest struct {
	// Career domain with the skills to assess
	// required: true
	Domain *models.QuizDomain `json:"domain"`
}

// QuizDomainResponse echoes the assessed domain
// swagger:model QuizDomainResponse
type QuizDomainResponse struct {
	Name       string   `json:"name"`
	Profession string   `json:"profession"`
	Skills     []string `json:"skills"`
}

// QuizGenerateResponse represents a generated quiz
// swagger:model QuizGenerateResponse
type QuizGenerateResponse struct {
	Success bool `json:"success"`

	// Pass back on evaluation to grade against these questions
	AttemptID uuid.UUID `json:"attemptId"`

	Questions []models.QuizQuestion `json:"questions"`
	Domain    QuizDomainResponse    `json:"domain"`
}

// NewQuizGenerateHandler returns an HTTP handler generating a skill quiz.
// @Summary Generate a quiz
// @Description Generates five multiple-choice questions per skill of the domain and stores the attempt for later grading.
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quizGenerateRequest body handlers.QuizGenerateRequest true "Domain to assess"
// @Success 200 {object} handlers.QuizGenerateResponse "Generated quiz"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid domain"
// @Failure 500 {object} handlers.ErrorResponse "Generation failed"
// @Router /quiz/generate [post]
func NewQuizGenerateHandler(svc QuizGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuizGenerateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Domain == nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "No domain object provided"})
			return
		}

		var userID *uuid.UUID
		if claims, ok := jwt.ClaimsFromContext(r.Context()); ok {
			userID = &claims.UserID
		}

		attempt, err := svc.Generate(r.Context(), *req.Domain, userID)
		if err != nil {
			if isClientError(err) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
			logger.FromContext(r.Context()).Errorw("quiz generation failed", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error:   "Failed to generate quiz questions",
				Details: err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, QuizGenerateResponse{
			Success:   true,
			AttemptID: attempt.AttemptID,
			Questions: attempt.Questions(),
			Domain: QuizDomainResponse{
				Name:       attempt.Domain,
				Profession: attempt.Profession,
				Skills:     attempt.Skills(),
			},
		})
	}
}
