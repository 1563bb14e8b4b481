package handlers

//go:generate mockgen -source=career_advice.go -destination=career_advice_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/margdarshak/career-api/internal/models"
)

// CareerAdvisor defines the interface that the advice service must implement.
type CareerAdvisor interface {
	Advise(ctx context.Context, domain string, results []models.QuestionResult) string
}

// CareerAdviceRequest represents the JSON body for career advice
// swagger:model CareerAdviceRequest
type CareerAdviceRequest struct {
	// Career domain the quiz covered
	// required: true
	// default: Software Engineering
	Domain string `json:"domain"`

	// Answered questions
	// required: true
	Results []models.QuestionResult `json:"results"`
}

// CareerAdviceResponse carries the generated advice
// swagger:model CareerAdviceResponse
type CareerAdviceResponse struct {
	Advice string `json:"advice"`
}

// NewCareerAdviceHandler returns an HTTP handler producing career advice from quiz answers.
// @Summary Career advice
// @Description Summarizes quiz performance and asks the model for next steps. Generation failures degrade to a fixed message.
// @Tags path
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param careerAdviceRequest body handlers.CareerAdviceRequest true "Quiz results"
// @Success 200 {object} handlers.CareerAdviceResponse "Advice"
// @Failure 400 {object} handlers.ErrorResponse "Missing domain or results"
// @Router /path/careeradvice [post]
func NewCareerAdviceHandler(svc CareerAdvisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CareerAdviceRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Domain == "" || req.Results == nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Missing domain or results in request body."})
			return
		}

		writeJSON(w, http.StatusOK, CareerAdviceResponse{
			Advice: svc.Advise(r.Context(), req.Domain, req.Results),
		})
	}
}
