package handlers

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// Registerer defines the interface that the signup service must implement.
type Registerer interface {
	Signup(ctx context.Context, username, password string) (*models.UserDB, string, error)
}

// CredentialsRequest represents the JSON body for signup and signin
// swagger:model CredentialsRequest
type CredentialsRequest struct {
	// Username, 3-20 letters, digits or underscores
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password, at least 6 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthResponse represents a successful signup or signin
// swagger:model AuthResponse
type AuthResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	User    models.UserPublic `json:"user"`

	// JWT token valid for 24 hours
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique username and returns a session token. Password is hashed before storing.
// @Tags user
// @Accept json
// @Produce json
// @Param signupRequest body handlers.CredentialsRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.StatusResponse "Invalid request or username already exists"
// @Failure 500 {object} handlers.StatusResponse "Internal server error"
// @Router /user/signup [post]
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, StatusResponse{
				Message: "All fields (username, password) are required.",
			})
			return
		}

		user, token, err := svc.Signup(r.Context(), req.Username, req.Password)
		if err != nil {
			if isClientError(err) {
				writeJSON(w, http.StatusBadRequest, StatusResponse{Message: err.Error()})
				return
			}
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, StatusResponse{
				Message: "Internal server error",
				Error:   err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			Success: true,
			Message: "User registered successfully!",
			User:    user.Public(),
			Token:   token,
		})
	}
}
