package postgres

import (
	"context"
	"database/sql"
	"errors"

	"mathwiz/models"
	"mathwiz/ports"

	appErrors "mathwiz/internal/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// UserRepositoryImpl implements UserRepository for PostgreSQL
type UserRepositoryImpl struct {
	db *sqlx.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sqlx.DB) ports.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create inserts a new user. A duplicate email maps to InvalidInput so
// the registration endpoint can report it as a client error.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO users (id, name, email, hashed_password, current_xp, created_at, updated_at)
		VALUES (:id, :name, :email, :hashed_password, :current_xp, NOW(), NOW())
	`, user)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return appErrors.InvalidInput("email already registered")
		}
		return appErrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by their ID
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, name, email, hashed_password, current_xp, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.NotFound("user")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to get user by id")
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, name, email, hashed_password, current_xp, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.NotFound("user")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to get user by email")
	}
	return &user, nil
}

// IncrementXP adds amount to the user's XP counter in a single statement
// and returns the updated row.
func (r *UserRepositoryImpl) IncrementXP(ctx context.Context, id uuid.UUID, amount int) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		UPDATE users
		SET current_xp = current_xp + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, email, hashed_password, current_xp, created_at, updated_at
	`, id, amount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.NotFound("user")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to increment xp")
	}
	return &user, nil
}

// List returns users ordered by registration time, newest first.
func (r *UserRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.SelectContext(ctx, &users, `
		SELECT id, name, email, hashed_password, current_xp, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to list users")
	}
	return users, nil
}
