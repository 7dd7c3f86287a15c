package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the account identity. Everything a user publishes hangs off its ID,
// which doubles as the owner id on profiles, categories and projects.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	// Delete removes an identity. Used by the signup rollback path when a
	// later step fails and the account must not survive without a profile.
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
