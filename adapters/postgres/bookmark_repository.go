package postgres

import (
	"context"
	"errors"

	"mathwiz/models"
	"mathwiz/ports"

	appErrors "mathwiz/internal/errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// BookmarkRepositoryImpl implements BookmarkRepository for PostgreSQL
type BookmarkRepositoryImpl struct {
	db *sqlx.DB
}

// NewBookmarkRepository creates a new PostgreSQL bookmark repository
func NewBookmarkRepository(db *sqlx.DB) ports.BookmarkRepository {
	return &BookmarkRepositoryImpl{db: db}
}

// Create saves a bookmark for a user
func (r *BookmarkRepositoryImpl) Create(ctx context.Context, bookmark *models.Bookmark) error {
	if bookmark.ID == uuid.Nil {
		bookmark.ID = uuid.New()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO bookmarks (id, user_id, question_text, question_source, metadata, created_at)
		VALUES (:id, :user_id, :question_text, :question_source, :metadata, NOW())
	`, bookmark)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" { // foreign_key_violation
			return appErrors.NotFound("user")
		}
		return appErrors.Wrap(err, "failed to create bookmark")
	}
	return nil
}

// ListByUser returns the user's bookmarks, newest first.
func (r *BookmarkRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Bookmark, error) {
	var bookmarks []*models.Bookmark
	err := r.db.SelectContext(ctx, &bookmarks, `
		SELECT id, user_id, question_text, question_source, metadata, created_at
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`, userID, offset, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to list bookmarks")
	}
	return bookmarks, nil
}

// Delete removes a bookmark owned by userID. Deleting a bookmark that
// does not exist, or that belongs to another user, reports NotFound.
func (r *BookmarkRepositoryImpl) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM bookmarks
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return appErrors.Wrap(err, "failed to delete bookmark")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return appErrors.Wrap(err, "failed to delete bookmark")
	}
	if rows == 0 {
		return appErrors.NotFound("bookmark")
	}
	return nil
}
