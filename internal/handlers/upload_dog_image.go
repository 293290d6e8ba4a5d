package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/dogbreed-api/internal/middlewares"
	"github.com/sbilibin2017/dogbreed-api/internal/models"
	"github.com/sbilibin2017/dogbreed-api/internal/services"
)

// DogImageUploader defines the interface that the dog image service must implement.
type DogImageUploader interface {
	UploadImage(ctx context.Context, userID, dogID uuid.UUID, image models.ImageUpload) error
}

// NewUploadDogImageHandler returns an HTTP handler that replaces a dog's image.
// @Summary Upload a new image for a dog
// @Description Stores the uploaded image in blob storage under the dog's breed folder and records its URL. The dog must belong to the authenticated user.
// @Tags dogs
// @Accept mpfd
// @Produce json
// @Param dogid path string true "Dog ID"
// @Param image formData file true "Dog image"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse "Image updated"
// @Failure 400 {object} handlers.ErrorResponse "No image provided"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Dog belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Dog not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /upload_dog_image/{dogid} [post]
func NewUploadDogImageHandler(svc DogImageUploader) http.HandlerFunc {
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

		file, header, err := r.FormFile("image")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Message: "No image provided",
			})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logError(r.Context(), "failed to read uploaded image", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		image := models.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}

		err = svc.UploadImage(r.Context(), userID, dogID, image)
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
			Message: "Dog image updated successfully!",
		})
	}
}
