package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// PictureTransform describes how the stored profile picture is cropped and
// zoomed for display: scale first, then translate by the pixel offsets.
type PictureTransform struct {
	Scale   float64 `json:"scale"`
	OffsetX int     `json:"offset_x"`
	OffsetY int     `json:"offset_y"`
}

const (
	MinScale  = 1.0
	MaxScale  = 2.0
	MinOffset = -50
	MaxOffset = 50
)

var (
	ErrScaleOutOfRange   = errors.New("picture scale must be between 1.0 and 2.0")
	ErrOffsetXOutOfRange = errors.New("picture offset_x must be between -50 and 50")
	ErrOffsetYOutOfRange = errors.New("picture offset_y must be between -50 and 50")
	ErrEmptyUsername     = errors.New("username must not be empty")
)

func DefaultPictureTransform() PictureTransform {
	return PictureTransform{Scale: 1.0}
}

// Validate rejects transforms outside the widget range. Values are checked on
// every write, not trusted from the client.
func (t PictureTransform) Validate() error {
	if t.Scale < MinScale || t.Scale > MaxScale {
		return ErrScaleOutOfRange
	}
	if t.OffsetX < MinOffset || t.OffsetX > MaxOffset {
		return ErrOffsetXOutOfRange
	}
	if t.OffsetY < MinOffset || t.OffsetY > MaxOffset {
		return ErrOffsetYOutOfRange
	}
	return nil
}

type Profile struct {
	OwnerID    uuid.UUID        `json:"owner_id"`
	Username   string           `json:"username"`
	Title      string           `json:"title"`
	Bio        string           `json:"bio"`
	PictureURL string           `json:"picture_url"`
	Picture    PictureTransform `json:"picture"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (p *Profile) Validate() error {
	if p.Username == "" {
		return ErrEmptyUsername
	}
	return p.Picture.Validate()
}

type Repository interface {
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	// ResolveUsername maps a public username to its owner id through the
	// username lookup table.
	ResolveUsername(ctx context.Context, username string) (uuid.UUID, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	// CreateWithLookup writes the profile row and its username lookup row in
	// one transaction. Either both exist afterwards or neither does.
	CreateWithLookup(ctx context.Context, p *Profile) error
	// Update rewrites the profile and keeps the username lookup row in sync,
	// again as a single transaction.
	Update(ctx context.Context, p *Profile) error
}
