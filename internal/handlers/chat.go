package handlers

//go:generate mockgen -source=chat.go -destination=chat_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// Chatter defines the interface that the chat service must implement.
type Chatter interface {
	Chat(ctx context.Context, message string) (string, []models.SearchResult, error)
}

// ChatRequest represents the JSON body for a chat turn
// swagger:model ChatRequest
type ChatRequest struct {
	// required: true
	// default: What does a data engineer do?
	Message string `json:"message"`
}

// ChatResponse carries the assistant reply
// swagger:model ChatResponse
type ChatResponse struct {
	Success       bool                  `json:"success"`
	Response      string                `json:"response"`
	SearchResults []models.SearchResult `json:"searchResults"`
}

// NewChatHandler returns an HTTP handler for the search-grounded career assistant.
// @Summary Chat with the career assistant
// @Description Searches the web for the message and answers grounded on the results.
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chatRequest body handlers.ChatRequest true "User message"
// @Success 200 {object} handlers.ChatResponse "Assistant reply"
// @Failure 400 {object} handlers.ErrorResponse "Message is required"
// @Failure 500 {object} handlers.ErrorResponse "Configuration or upstream failure"
// @Router /chat [post]
func NewChatHandler(svc Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Message is required"})
			return
		}

		reply, results, err := svc.Chat(r.Context(), req.Message)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("chat failed", "err", err)

			var upErr *models.UpstreamError
			switch {
			case isClientError(err):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			case isConfigError(err):
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error:   "Server configuration error",
					Details: err.Error(),
				})
			case errors.As(err, &upErr) && upErr.StatusCode != 0:
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error:   fmt.Sprintf("API Error: %d - %s", upErr.StatusCode, upErr.Message),
					Details: err.Error(),
				})
			case errors.As(err, &upErr):
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error:   "No response received from Gemini API",
					Details: err.Error(),
				})
			default:
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error:   "Failed to process chat message",
					Details: err.Error(),
				})
			}
			return
		}
		if results == nil {
			results = []models.SearchResult{}
		}

		writeJSON(w, http.StatusOK, ChatResponse{
			Success:       true,
			Response:      reply,
			SearchResults: results,
		})
	}
}
