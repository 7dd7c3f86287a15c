package category

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrEmptyName = errors.New("category name must not be empty")

func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, c *Category) error
	Rename(ctx context.Context, id, ownerID uuid.UUID, name string) error
	// DeleteCascade removes the category together with every project assigned
	// to it, atomically. It returns the number of projects that went with it.
	// A partially applied delete (category gone, projects orphaned, or the
	// reverse) must never be observable.
	DeleteCascade(ctx context.Context, id, ownerID uuid.UUID) (int64, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Category, error)
}
