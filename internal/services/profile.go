package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/dogbreed-api/internal/logger"
	"github.com/sbilibin2017/dogbreed-api/internal/models"
)

// ErrUserNotFound is returned when a profile operation targets a user that
// does not exist.
var ErrUserNotFound = errors.New("user not found")

// ProfileService reads and edits user profiles.
type ProfileService struct {
	reader UserReader
	writer UserWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader UserReader, writer UserWriter) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
	}
}

// Get returns the user's profile, or nil when the user does not exist.
func (svc *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	return user, nil
}

// Update applies a partial profile edit: nil fields keep their current
// values. Returns ErrUserNotFound when the user does not exist.
func (svc *ProfileService) Update(ctx context.Context, userID uuid.UUID, firstName, lastName, birthDate, country *string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if firstName != nil {
		user.FirstName = *firstName
	}
	if lastName != nil {
		user.LastName = *lastName
	}
	if birthDate != nil {
		user.BirthDate = *birthDate
	}
	if country != nil {
		user.Country = *country
	}

	if err := svc.writer.Update(ctx, *user); err != nil {
		logger.Log.Errorw("failed to update user", "user_id", userID, "err", err)
		return err
	}
	return nil
}
