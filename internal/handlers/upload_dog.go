package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sbilibin2017/dogbreed-api/internal/middlewares"
	"github.com/sbilibin2017/dogbreed-api/internal/models"
)

// DogUploader defines the interface that the dog upload service must implement.
type DogUploader interface {
	Upload(ctx context.Context, userID uuid.UUID, name, breed string, age int, image *models.ImageUpload) (created bool, err error)
}

// NewUploadDogHandler returns an HTTP handler that creates the caller's dog
// or updates the existing one.
// @Summary Upload or update the caller's dog
// @Description Creates a dog for the authenticated user, or updates the existing dog's details. An optional image is stored in blob storage under the breed folder.
// @Tags dogs
// @Accept mpfd
// @Produce json
// @Param name formData string true "Dog name"
// @Param breed formData string true "Breed"
// @Param age formData int true "Age in years"
// @Param image formData file false "Dog image"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse "Dog uploaded or updated"
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid fields"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /upload_dog [post]
func NewUploadDogHandler(svc DogUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeUnauthorizedEnvelope(w)
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
				Message: "Invalid age",
			})
			return
		}

		image, err := readOptionalFile(r, "image")
		if err != nil {
			logError(r.Context(), "failed to read uploaded image", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		created, err := svc.Upload(r.Context(), userID, name, breed, age, image)
		if err != nil {
			logError(r.Context(), "internal server error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error: err.Error(),
			})
			return
		}

		message := "Dog updated successfully!"
		if created {
			message = "Dog uploaded successfully!"
		}
		writeJSON(w, http.StatusOK, MessageResponse{
			Success: true,
			Message: message,
		})
	}
}

// readOptionalFile reads a multipart file field, returning nil when the
// field was not submitted.
func readOptionalFile(r *http.Request, field string) (*models.ImageUpload, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &models.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// writeUnauthorizedEnvelope rejects a request that reached a protected
// handler without an authenticated user in the context.
func writeUnauthorizedEnvelope(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{
		Message: "Missing or invalid token",
	})
}
