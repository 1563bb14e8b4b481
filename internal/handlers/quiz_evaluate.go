package handlers

//go:generate mockgen -source=quiz_evaluate.go -destination=quiz_evaluate_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// QuizEvaluator defines the interface that the quiz service must implement.
type QuizEvaluator interface {
	Evaluate(ctx context.Context, eval models.QuizEvaluation) (*models.QuizResultDB, error)
}

// QuizEvaluateRequest represents the JSON body for quiz evaluation
// swagger:model QuizEvaluateRequest
type QuizEvaluateRequest struct {
	// Attempt returned by quiz generation
	AttemptID string `json:"attemptId,omitempty"`

	// Name the result is recorded under
	// default: john_doe
	Name string `json:"name"`

	// Skill being graded
	// default: Go
	Skill string `json:"skill"`

	// Question id to selected option
	// required: true
	Answers map[string]string `json:"answers"`
}

// QuizEvaluateResponse represents a graded quiz
// swagger:model QuizEvaluateResponse
type QuizEvaluateResponse struct {
	// Percentage of correct answers
	// default: 80
	Score          int `json:"score"`
	CorrectCount   int `json:"correctCount"`
	TotalQuestions int `json:"totalQuestions"`
}

// NewQuizEvaluateHandler returns an HTTP handler grading quiz answers.
// @Summary Evaluate a quiz
// @Description Grades answers against the stored attempt, or against a freshly generated key when no attempt id is given.
// @Tags quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quizEvaluateRequest body handlers.QuizEvaluateRequest true "Submitted answers"
// @Success 200 {object} handlers.QuizEvaluateResponse "Score"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Evaluation failed"
// @Router /quiz/evaluate [post]
func NewQuizEvaluateHandler(svc QuizEvaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req QuizEvaluateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		eval := models.QuizEvaluation{
			Name:    req.Name,
			Skill:   req.Skill,
			Answers: req.Answers,
		}
		if req.AttemptID != "" {
			id, err := uuid.Parse(req.AttemptID)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid attemptId"})
				return
			}
			eval.AttemptID = &id
		}

		result, err := svc.Evaluate(r.Context(), eval)
		if err != nil {
			if isClientError(err) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
			logger.FromContext(r.Context()).Errorw("quiz evaluation failed", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error:   "Failed to evaluate quiz",
				Details: err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, QuizEvaluateResponse{
			Score:          result.Score,
			CorrectCount:   result.CorrectCount,
			TotalQuestions: result.TotalQuestions,
		})
	}
}
