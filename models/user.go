package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered learner. CurrentXP only ever grows: it is
// initialized at zero on registration and incremented by award operations.
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	CurrentXP      int       `json:"current_xp" db:"current_xp"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Bookmark is a saved question owned by exactly one user.
type Bookmark struct {
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	QuestionText   string    `json:"question_text" db:"question_text"`
	QuestionSource *string   `json:"question_source,omitempty" db:"question_source"`
	Metadata       *string   `json:"metadata,omitempty" db:"metadata"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
