package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/pkg/apperror"
	"github.com/khoahotran/devfolio/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func (r *postgresProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT owner_id, username, title, bio, picture_url, picture_scale, picture_offset_x, picture_offset_y, created_at, updated_at
		FROM profiles
		WHERE owner_id = $1
	`
	p := &profile.Profile{}
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&p.OwnerID,
		&p.Username,
		&p.Title,
		&p.Bio,
		&p.PictureURL,
		&p.Picture.Scale,
		&p.Picture.OffsetX,
		&p.Picture.OffsetY,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", ownerID.String())
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

// ResolveUsername walks the username lookup table. The table is keyed by
// owner id with a unique username column, so at most one row can match.
func (r *postgresProfileRepo) ResolveUsername(ctx context.Context, username string) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT owner_id FROM usernames WHERE username = $1`, username).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, apperror.NewNotFound("user", username)
		}
		return uuid.Nil, apperror.NewInternal("failed to resolve username", err)
	}
	return ownerID, nil
}

func (r *postgresProfileRepo) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM usernames WHERE username = $1)`, username).Scan(&taken)
	if err != nil {
		return false, apperror.NewInternal("failed to check username", err)
	}
	return taken, nil
}

func (r *postgresProfileRepo) CreateWithLookup(ctx context.Context, p *profile.Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin profile transaction", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `INSERT INTO usernames (owner_id, username) VALUES ($1, $2)`, p.OwnerID, p.Username)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewAppError(apperror.ErrConflict, "Username already taken",
				"username '"+p.Username+"' is already in use", nil)
		}
		return apperror.NewInternal("failed to create username lookup", err)
	}

	query := `
		INSERT INTO profiles (owner_id, username, title, bio, picture_url, picture_scale, picture_offset_x, picture_offset_y, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = tx.Exec(ctx, query,
		p.OwnerID, p.Username, p.Title, p.Bio, p.PictureURL,
		p.Picture.Scale, p.Picture.OffsetX, p.Picture.OffsetY,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to create profile", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit profile transaction", err)
	}
	return nil
}

// Update rewrites the profile row and its username lookup row in one
// transaction, so the lookup can never drift from Profile.Username.
func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin profile transaction", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE profiles SET
			username = $2, title = $3, bio = $4, picture_url = $5,
			picture_scale = $6, picture_offset_x = $7, picture_offset_y = $8,
			updated_at = NOW()
		WHERE owner_id = $1
	`
	cmdTag, err := tx.Exec(ctx, query,
		p.OwnerID, p.Username, p.Title, p.Bio, p.PictureURL,
		p.Picture.Scale, p.Picture.OffsetX, p.Picture.OffsetY,
	)
	if err != nil {
		return apperror.NewInternal("failed to update profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", p.OwnerID.String())
	}

	_, err = tx.Exec(ctx, `UPDATE usernames SET username = $2 WHERE owner_id = $1`, p.OwnerID, p.Username)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewAppError(apperror.ErrConflict, "Username already taken",
				"username '"+p.Username+"' is already in use", nil)
		}
		return apperror.NewInternal("failed to update username lookup", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit profile transaction", err)
	}
	return nil
}
