package handlers

//go:generate mockgen -source=signin.go -destination=signin_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// Loginer defines the interface that the signin service must implement.
type Loginer interface {
	Signin(ctx context.Context, username, password string) (*models.UserDB, string, error)
}

// NewSigninHandler returns an HTTP handler for user login.
// @Summary Sign in
// @Description Authenticates a user and returns a session token. Unknown users and wrong passwords get the same answer.
// @Tags user
// @Accept json
// @Produce json
// @Param signinRequest body handlers.CredentialsRequest true "User credentials"
// @Success 200 {object} handlers.AuthResponse "Signed in"
// @Failure 400 {object} handlers.StatusResponse "Missing fields"
// @Failure 401 {object} handlers.StatusResponse "Invalid username or password"
// @Failure 500 {object} handlers.StatusResponse "Internal server error"
// @Router /user/signin [post]
func NewSigninHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, StatusResponse{
				Message: "All fields (username, password) are required.",
			})
			return
		}

		user, token, err := svc.Signin(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case isClientError(err):
				writeJSON(w, http.StatusBadRequest, StatusResponse{Message: err.Error()})
			case errors.Is(err, models.ErrInvalidCredentials):
				writeJSON(w, http.StatusUnauthorized, StatusResponse{Message: "Invalid username or password."})
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, StatusResponse{
					Message: "Internal server error",
					Error:   err.Error(),
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{
			Success: true,
			Message: "Login successful",
			User:    user.Public(),
			Token:   token,
		})
	}
}
