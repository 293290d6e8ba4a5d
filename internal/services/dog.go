package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/dogbreed-api/internal/logger"
	"github.com/sbilibin2017/dogbreed-api/internal/models"
)

// Error variables
var (
	ErrDogNotFound = errors.New("dog not found")
	ErrNotDogOwner = errors.New("dog belongs to another user")
)

// DogReader defines read-only operations for dogs.
type DogReader interface {
	GetByID(ctx context.Context, dogID uuid.UUID) (*models.DogDB, error)
	GetFirstByUserID(ctx context.Context, userID uuid.UUID) (*models.DogDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.DogDB, error)
}

// DogWriter defines write operations for dogs.
type DogWriter interface {
	Save(ctx context.Context, dog models.DogDB) error
	Update(ctx context.Context, dog models.DogDB) error
}

// FileUploader stores an uploaded file and returns its URL.
type FileUploader interface {
	UploadFile(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error)
}

// DogService handles dog records and their images.
type DogService struct {
	reader DogReader
	writer DogWriter
	blob   FileUploader
}

// NewDogService creates a new DogService instance.
func NewDogService(reader DogReader, writer DogWriter, blob FileUploader) *DogService {
	return &DogService{
		reader: reader,
		writer: writer,
		blob:   blob,
	}
}

// Upload creates the user's dog, or updates the existing one when the user
// already has a dog. The optional image is stored under the breed folder and
// its URL recorded on the dog. Returns true when a new dog was created.
func (svc *DogService) Upload(ctx context.Context, userID uuid.UUID, name, breed string, age int, image *models.ImageUpload) (bool, error) {
	existing, err := svc.reader.GetFirstByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up dog", "user_id", userID, "err", err)
		return false, err
	}

	if existing != nil {
		existing.Name = name
		existing.Breed = breed
		existing.Age = age
		if image != nil {
			url, err := svc.blob.UploadFile(ctx, breed, image.Filename, image.Data, image.ContentType)
			if err != nil {
				return false, err
			}
			existing.ImageURL = url
		}
		return false, svc.writer.Update(ctx, *existing)
	}

	imageURL := ""
	if image != nil {
		imageURL, err = svc.blob.UploadFile(ctx, breed, image.Filename, image.Data, image.ContentType)
		if err != nil {
			return false, err
		}
	}

	dog := models.DogDB{
		DogID:    uuid.New(),
		Name:     name,
		Breed:    breed,
		Age:      age,
		UserID:   userID,
		ImageURL: imageURL,
	}
	return true, svc.writer.Save(ctx, dog)
}

// Edit updates the name, breed and age of a dog owned by the caller.
func (svc *DogService) Edit(ctx context.Context, userID, dogID uuid.UUID, name, breed string, age int) error {
	dog, err := svc.reader.GetByID(ctx, dogID)
	if err != nil {
		logger.Log.Errorw("failed to get dog", "dog_id", dogID, "err", err)
		return err
	}
	if dog == nil {
		return ErrDogNotFound
	}
	if dog.UserID != userID {
		logger.Log.Errorw("ownership check failed", "dog_id", dogID, "user_id", userID)
		return ErrNotDogOwner
	}

	dog.Name = name
	dog.Breed = breed
	dog.Age = age
	return svc.writer.Update(ctx, *dog)
}

// List returns all dogs owned by the user. A user without dogs gets an
// empty list, not an error.
func (svc *DogService) List(ctx context.Context, userID uuid.UUID) ([]models.DogDB, error) {
	dogs, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list dogs", "user_id", userID, "err", err)
		return nil, err
	}
	return dogs, nil
}

// UploadImage stores a new image for a dog owned by the caller and records
// its URL on the dog. Ownership is checked before anything is uploaded.
func (svc *DogService) UploadImage(ctx context.Context, userID, dogID uuid.UUID, image models.ImageUpload) error {
	dog, err := svc.reader.GetByID(ctx, dogID)
	if err != nil {
		logger.Log.Errorw("failed to get dog", "dog_id", dogID, "err", err)
		return err
	}
	if dog == nil {
		return ErrDogNotFound
	}
	if dog.UserID != userID {
		logger.Log.Errorw("ownership check failed", "dog_id", dogID, "user_id", userID)
		return ErrNotDogOwner
	}

	url, err := svc.blob.UploadFile(ctx, dog.Breed, image.Filename, image.Data, image.ContentType)
	if err != nil {
		return err
	}

	dog.ImageURL = url
	return svc.writer.Update(ctx, *dog)
}
