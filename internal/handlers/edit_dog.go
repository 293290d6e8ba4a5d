package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/dogbreed-api/internal/middlewares"
	"github.com/sbilibin2017/dogbreed-api/internal/services"
)

// DogEditor defines the interface that the dog edit service must implement.
type DogEditor interface {
	Edit(ctx context.Context, userID, dogID uuid.UUID, name, breed string, age int) error
}

// NewEditDogHandler returns an HTTP handler that edits a dog owned by the caller.
// @Summary Edit a dog
// @Description Updates the name, breed and age of a dog. The dog must belong to the authenticated user.
// @Tags dogs
// @Accept x-www-form-urlencoded
// @Produce json
// @Param dogid path string true "Dog ID"
// @Param name formData string true "Dog name"
// @Param breed formData string true "Breed"
// @Param age formData int true "Age in years"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse "Dog updated"
// @Failure 400 {object} handlers.ErrorResponse "Missing data"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Dog belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Dog not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /edit_dog/{dogid} [put]
func NewEditDogHandler(svc DogEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeUnauthorizedEnvelope(w)
			return
		}

		dogID, err := uuid.Parse(chi.URLParam(r, "dogid"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{
				Message: "Dog not found",
			})
			return
		}

		name := r.FormValue("name")
		breed := r.FormValue("breed")
		ageValue := r.FormValue("age")
		if name == "" || breed == "" || ageValue == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Message: "Missing data",
			})
			return
		}
		age, err := strconv.Atoi(ageValue)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Message: "Missing data",
			})
			return
		}

		err = svc.Edit(r.Context(), userID, dogID, name, breed, age)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDogNotFound):
				writeJSON(w, http.StatusNotFound, ErrorResponse{
					Message: "Dog not found",
				})
			case errors.Is(err, services.ErrNotDogOwner):
				writeJSON(w, http.StatusForbidden, ErrorResponse{
					Message: "Unauthorized access",
				})
			default:
				logError(r.Context(), "internal server error", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error: err.Error(),
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{
			Success: true,
			Message: "Dog updated successfully!",
		})
	}
}
