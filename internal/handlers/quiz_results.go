package handlers

//go:generate mockgen -source=quiz_results.go -destination=quiz_results_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// QuizResultsLister defines the interface that the quiz service must implement.
type QuizResultsLister interface {
	Results(ctx context.Context, name string, limit int) ([]models.QuizResultDB, error)
}

// QuizResultsResponse lists recorded quiz results
// swagger:model QuizResultsResponse
type QuizResultsResponse struct {
	Results []models.QuizResultDB `json:"results"`
}

// NewQuizResultsHandler returns an HTTP handler listing quiz history.
// @Summary Quiz history
// @Description Lists results recorded under a name, newest first.
// @Tags quiz
// @Produce json
// @Security BearerAuth
// @Param name query string true "Name the results were recorded under"
// @Param limit query int false "Maximum results (default 20, max 100)"
// @Success 200 {object} handlers.QuizResultsResponse "Recorded results"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /quiz/results [get]
func NewQuizResultsHandler(svc QuizResultsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		limit := 0
		if raw := query.Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
				return
			}
			limit = n
		}

		results, err := svc.Results(r.Context(), query.Get("name"), limit)
		if err != nil {
			if isClientError(err) {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
				return
			}
			logger.FromContext(r.Context()).Errorw("failed to list quiz results", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error:   "Failed to load quiz results",
				Details: err.Error(),
			})
			return
		}
		if results == nil {
			results = []models.QuizResultDB{}
		}

		writeJSON(w, http.StatusOK, QuizResultsResponse{Results: results})
	}
}
