package handlers

import (
	"net/http"

	"github.com/margdarshak/career-api/internal/jwt"
	"github.com/margdarshak/career-api/internal/models"
)

// NewMeHandler returns the user identified by the bearer token.
// @Summary Current user
// @Description Returns the id and username carried by the session token.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserPublic "Token owner"
// @Failure 401 {object} handlers.StatusResponse "Missing or invalid token"
// @Router /user/me [get]
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := jwt.ClaimsFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, StatusResponse{Message: "Invalid or expired token"})
			return
		}

		writeJSON(w, http.StatusOK, models.UserPublic{
			ID:       claims.UserID,
			Username: claims.Username,
		})
	}
}
