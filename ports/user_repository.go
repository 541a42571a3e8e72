package ports

import (
	"context"

	"github.com/google/uuid"

	"mathwiz/models"
)

// UserRepository persists user accounts and their XP counters.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// IncrementXP atomically adds amount to the user's XP and returns
	// the updated user.
	IncrementXP(ctx context.Context, id uuid.UUID, amount int) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]*models.User, error)
}
