package ports

import (
	"context"

	"github.com/google/uuid"

	"mathwiz/models"
)

// BookmarkRepository persists saved questions per user.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *models.Bookmark) error
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Bookmark, error)
	// Delete removes the bookmark only if it belongs to userID.
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
