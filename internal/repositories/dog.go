package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/dogbreed-api/internal/models"
)

type DogReadRepository struct {
	db *sqlx.DB
}

func NewDogReadRepository(db *sqlx.DB) *DogReadRepository {
	return &DogReadRepository{db: db}
}

// GetByID returns the dog with the given id, or nil when no such dog exists.
func (r *DogReadRepository) GetByID(ctx context.Context, dogID uuid.UUID) (*models.DogDB, error) {
	const query = `
		SELECT dogid, dogname, breed, age, userid, imageurl
		FROM dogs
		WHERE dogid = ?
	`

	e := ext(ctx, r.db)

	var dog models.DogDB
	err := sqlx.GetContext(ctx, e, &dog, e.Rebind(query), dogID)
	logQuery(query, []any{dogID}, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dog, nil
}

// GetFirstByUserID returns the first dog owned by the user, or nil when the
// user has none. The upload flow updates this dog rather than creating a
// second one.
func (r *DogReadRepository) GetFirstByUserID(ctx context.Context, userID uuid.UUID) (*models.DogDB, error) {
	dogs, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(dogs) == 0 {
		return nil, nil
	}
	return &dogs[0], nil
}

// ListByUserID returns all dogs owned by the user, in a stable order by id.
func (r *DogReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.DogDB, error) {
	const query = `
		SELECT dogid, dogname, breed, age, userid, imageurl
		FROM dogs
		WHERE userid = ?
		ORDER BY dogid
	`

	e := ext(ctx, r.db)

	var dogs []models.DogDB
	err := sqlx.SelectContext(ctx, e, &dogs, e.Rebind(query), userID)
	logQuery(query, []any{userID}, err)

	if err != nil {
		return nil, err
	}
	return dogs, nil
}

type DogWriteRepository struct {
	db *sqlx.DB
}

func NewDogWriteRepository(db *sqlx.DB) *DogWriteRepository {
	return &DogWriteRepository{db: db}
}

// Save inserts a new dog row.
func (r *DogWriteRepository) Save(ctx context.Context, dog models.DogDB) error {
	const query = `
		INSERT INTO dogs (dogid, dogname, breed, age, userid, imageurl)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	args := []any{dog.DogID, dog.Name, dog.Breed, dog.Age, dog.UserID, dog.ImageURL}

	e := ext(ctx, r.db)

	_, err := e.ExecContext(ctx, e.Rebind(query), args...)
	logQuery(query, args, err)

	return err
}

// Update rewrites the mutable fields of an existing dog, keyed by dogid.
func (r *DogWriteRepository) Update(ctx context.Context, dog models.DogDB) error {
	const query = `
		UPDATE dogs
		SET dogname = ?, breed = ?, age = ?, imageurl = ?
		WHERE dogid = ?
	`
	args := []any{dog.Name, dog.Breed, dog.Age, dog.ImageURL, dog.DogID}

	e := ext(ctx, r.db)

	_, err := e.ExecContext(ctx, e.Rebind(query), args...)
	logQuery(query, args, err)

	return err
}
