package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/dogbreed-api/internal/logger"
	"github.com/sbilibin2017/dogbreed-api/internal/models"
)

// ErrImageArchiveFailed is returned (wrapped) when a prediction succeeded
// but the image could not be archived to blob storage. The prediction is
// still returned alongside the error.
var ErrImageArchiveFailed = errors.New("failed to archive predicted image")

// archiveConfidenceThreshold is the confidence above which predicted images
// are kept in blob storage under the predicted-breed folder.
const archiveConfidenceThreshold = 95.0

// Classifier runs breed inference over raw image bytes.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (label string, confidence float64, err error)
}

// ImageArchiver stores an image under a folder and returns its URL.
type ImageArchiver interface {
	UploadImage(ctx context.Context, folder, name string, data []byte, contentType string) (string, error)
}

// PredictService orchestrates classification and the confident-image
// archive side effect.
type PredictService struct {
	classifier Classifier
	archive    ImageArchiver
}

// NewPredictService creates a new PredictService instance.
func NewPredictService(classifier Classifier, archive ImageArchiver) *PredictService {
	return &PredictService{
		classifier: classifier,
		archive:    archive,
	}
}

// Predict classifies the image. When confidence exceeds the archive
// threshold the original bytes are additionally stored under the
// predicted-breed folder. An archive failure does not discard the result:
// the prediction is returned together with an error wrapping
// ErrImageArchiveFailed so the caller can report the partial success.
func (svc *PredictService) Predict(ctx context.Context, image models.ImageUpload) (*models.Prediction, error) {
	breed, confidence, err := svc.classifier.Classify(ctx, image.Data)
	if err != nil {
		logger.Log.Errorw("classification failed", "err", err)
		return nil, err
	}

	pred := &models.Prediction{
		Breed:      breed,
		Confidence: confidence,
	}

	if confidence > archiveConfidenceThreshold {
		if _, err := svc.archive.UploadImage(ctx, breed, breed, image.Data, image.ContentType); err != nil {
			logger.Log.Errorw("image archive failed", "breed", breed, "err", err)
			return pred, fmt.Errorf("%w: %v", ErrImageArchiveFailed, err)
		}
	}

	return pred, nil
}
