package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/dogbreed-api/internal/middlewares"
	"github.com/sbilibin2017/dogbreed-api/internal/models"
)

// ProfileGetter defines the interface that the profile read service must implement.
type ProfileGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileResponse carries the caller's profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	// Always true
	Success bool `json:"success"`
	// The profile, or null when the user record no longer exists
	Data *models.UserDB `json:"data"`
}

// NewProfileHandler returns an HTTP handler that reads the caller's profile.
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile [get]
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeUnauthorizedEnvelope(w)
			return
		}

		user, err := svc.Get(r.Context(), userID)
		if err != nil {
			logError(r.Context(), "internal server error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{
			Success: true,
			Data:    user,
		})
	}
}
