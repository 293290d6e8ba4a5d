package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/dogbreed-api/internal/models"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		userid UUID PRIMARY KEY,
		email VARCHAR(100) NOT NULL UNIQUE,
		upassword VARCHAR(255) NOT NULL,
		firstname VARCHAR(100) NOT NULL,
		lastname VARCHAR(100) NOT NULL,
		birthdate VARCHAR(50) NOT NULL,
		country VARCHAR(100) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS dogs (
		dogid UUID PRIMARY KEY,
		dogname VARCHAR(100) NOT NULL,
		breed VARCHAR(100) NOT NULL,
		age INT NOT NULL,
		userid UUID NOT NULL REFERENCES users(userid),
		imageurl VARCHAR(500) NOT NULL DEFAULT ''
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func newTestUser(email string) models.UserDB {
	return models.UserDB{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: "hashed-password",
		FirstName:    "Alice",
		LastName:     "Smith",
		BirthDate:    "1990-01-01",
		Country:      "Sweden",
	}
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	user := newTestUser("alice@example.com")
	err := repo.Save(ctx, user)
	assert.NoError(t, err)

	var got models.UserDB
	err = db.Get(&got, "SELECT userid, email, upassword, firstname, lastname, birthdate, country FROM users WHERE email=$1", "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserWriteRepository_Save_DuplicateEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	err := repo.Save(ctx, newTestUser("bob@example.com"))
	assert.NoError(t, err)

	err = repo.Save(ctx, newTestUser("bob@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	user := newTestUser("carol@example.com")
	assert.NoError(t, writeRepo.Save(ctx, user))

	user.FirstName = "Carol"
	user.Country = "Norway"
	assert.NoError(t, writeRepo.Update(ctx, user))

	got, err := readRepo.GetByID(ctx, user.UserID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "Carol", got.FirstName)
	assert.Equal(t, "Norway", got.Country)
	// email and password are not touched by profile updates
	assert.Equal(t, "carol@example.com", got.Email)
	assert.Equal(t, "hashed-password", got.PasswordHash)
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	user := newTestUser("dave@example.com")
	assert.NoError(t, writeRepo.Save(ctx, user))

	t.Run("Existing", func(t *testing.T) {
		got, err := readRepo.GetByEmail(ctx, "dave@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, user.UserID, got.UserID)
	})

	t.Run("Missing", func(t *testing.T) {
		got, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	user := newTestUser("eve@example.com")
	assert.NoError(t, writeRepo.Save(ctx, user))

	t.Run("Existing", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, user.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("Missing", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}
