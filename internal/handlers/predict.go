package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sbilibin2017/dogbreed-api/internal/models"
	"github.com/sbilibin2017/dogbreed-api/internal/services"
)

// Predicter defines the interface that the prediction service must implement.
type Predicter interface {
	Predict(ctx context.Context, image models.ImageUpload) (*models.Prediction, error)
}

// PredictResponse represents a successful prediction
// swagger:model PredictResponse
type PredictResponse struct {
	// Predicted breed name
	Breed string `json:"breed"`
	// Confidence in percent, two decimal places
	Confidence float64 `json:"confidence"`
}

// PredictArchiveErrorResponse reports a prediction whose image archive failed
// swagger:model PredictArchiveErrorResponse
type PredictArchiveErrorResponse struct {
	Breed      string  `json:"breed"`
	Confidence float64 `json:"confidence"`
	// Explanation of the archive failure
	Message string `json:"message"`
}

// NewPredictHandler returns an HTTP handler for breed prediction.
// @Summary Predict dog breed from an image
// @Description Classifies the uploaded image. Confident predictions (>95%) are additionally archived to blob storage under the predicted-breed folder; an archive failure is reported with status 500 but still carries the prediction.
// @Tags predict
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file"
// @Security BearerAuth
// @Success 200 {object} handlers.PredictResponse "Breed and confidence"
// @Failure 400 {object} handlers.ErrorResponse "No file uploaded"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} handlers.PredictArchiveErrorResponse "Prediction succeeded but archive failed"
// @Router /predict [post]
func NewPredictHandler(svc Predicter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Message: "No file uploaded",
			})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logError(r.Context(), "failed to read uploaded file", err)
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

		pred, err := svc.Predict(r.Context(), image)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, PredictResponse{
				Breed:      pred.Breed,
				Confidence: pred.Confidence,
			})
		case errors.Is(err, services.ErrImageArchiveFailed) && pred != nil:
			writeJSON(w, http.StatusInternalServerError, PredictArchiveErrorResponse{
				Breed:      pred.Breed,
				Confidence: pred.Confidence,
				Message:    fmt.Sprintf("Prediction succeeded, but failed to upload image: %v", err),
			})
		default:
			logError(r.Context(), "internal server error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error: err.Error(),
			})
		}
	}
}
