package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/dogbreed-api/internal/middlewares"
	"github.com/sbilibin2017/dogbreed-api/internal/models"
)

// DogLister defines the interface that the dog list service must implement.
type DogLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.DogDB, error)
}

// GetDogResponse lists the caller's dogs
// swagger:model GetDogResponse
type GetDogResponse struct {
	// Always true
	Success bool `json:"success"`
	// The caller's dogs; empty when none are registered
	Data []models.DogDB `json:"data"`
}

// NewGetDogHandler returns an HTTP handler that lists the caller's dogs.
// @Summary List the caller's dogs
// @Description Returns all dogs registered by the authenticated user, or an empty list.
// @Tags dogs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.GetDogResponse "Dogs"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /get_dog [get]
func NewGetDogHandler(svc DogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeUnauthorizedEnvelope(w)
			return
		}

		dogs, err := svc.List(r.Context(), userID)
		if err != nil {
			logError(r.Context(), "internal server error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		if dogs == nil {
			dogs = []models.DogDB{}
		}
		writeJSON(w, http.StatusOK, GetDogResponse{
			Success: true,
			Data:    dogs,
		})
	}
}
