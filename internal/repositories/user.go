package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/dogbreed-api/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT userid, email, upassword, firstname, lastname, birthdate, country
		FROM users
		WHERE email = ?
	`

	e := ext(ctx, r.db)

	var user models.UserDB
	err := sqlx.GetContext(ctx, e, &user, e.Rebind(query), email)
	logQuery(query, []any{email}, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil when no such user exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT userid, email, upassword, firstname, lastname, birthdate, country
		FROM users
		WHERE userid = ?
	`

	e := ext(ctx, r.db)

	var user models.UserDB
	err := sqlx.GetContext(ctx, e, &user, e.Rebind(query), userID)
	logQuery(query, []any{userID}, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user row. A unique violation on the email column is
// reported as ErrDuplicateEmail so callers can branch on the conflict.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) error {
	const query = `
		INSERT INTO users (userid, email, upassword, firstname, lastname, birthdate, country)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	args := []any{user.UserID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.BirthDate, user.Country}

	e := ext(ctx, r.db)

	_, err := e.ExecContext(ctx, e.Rebind(query), args...)
	logQuery(query, args, err)

	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

// Update rewrites the profile fields of an existing user, keyed by userid.
func (r *UserWriteRepository) Update(ctx context.Context, user models.UserDB) error {
	const query = `
		UPDATE users
		SET firstname = ?, lastname = ?, birthdate = ?, country = ?
		WHERE userid = ?
	`
	args := []any{user.FirstName, user.LastName, user.BirthDate, user.Country, user.UserID}

	e := ext(ctx, r.db)

	_, err := e.ExecContext(ctx, e.Rebind(query), args...)
	logQuery(query, args, err)

	return err
}
