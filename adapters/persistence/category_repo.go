package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/devfolio/internal/domain/category"
	"github.com/khoahotran/devfolio/pkg/apperror"
	"github.com/khoahotran/devfolio/pkg/logger"
)

type postgresCategoryRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCategoryRepo(db *pgxpool.Pool, logger logger.Logger) category.Repository {
	return &postgresCategoryRepo{db: db, logger: logger}
}

var psqlCategory = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *postgresCategoryRepo) Save(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (id, owner_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.OwnerID, c.Name, c.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save category", err)
	}
	return nil
}

func (r *postgresCategoryRepo) Rename(ctx context.Context, id, ownerID uuid.UUID, name string) error {
	query := `UPDATE categories SET name = $3 WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID, name)
	if err != nil {
		return apperror.NewInternal("failed to rename category", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("category", id.String())
	}
	return nil
}

// DeleteCascade removes the category and every project assigned to it inside
// one transaction. Sequential unguarded deletes are not acceptable here: a
// crash between them would leave orphan projects or a half-deleted category.
func (r *postgresCategoryRepo) DeleteCascade(ctx context.Context, id, ownerID uuid.UUID) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, apperror.NewInternal("failed to begin cascade delete", err)
	}
	defer tx.Rollback(ctx)

	projTag, err := tx.Exec(ctx, `DELETE FROM projects WHERE category_id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return 0, apperror.NewInternal("failed to delete projects in category", err)
	}

	catTag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return 0, apperror.NewInternal("failed to delete category", err)
	}
	if catTag.RowsAffected() == 0 {
		return 0, apperror.NewNotFound("category", id.String())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, apperror.NewInternal("failed to commit cascade delete", err)
	}
	return projTag.RowsAffected(), nil
}

func (r *postgresCategoryRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*category.Category, error) {
	builder := psqlCategory.Select("id, owner_id, name, created_at").
		From("categories").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list categories query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query categories by owner", err)
	}
	defer rows.Close()

	categories := make([]*category.Category, 0)
	for rows.Next() {
		c := &category.Category{}
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt); err != nil {
			return nil, apperror.NewInternal("failed to scan category row", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating category rows", err)
	}
	return categories, nil
}
