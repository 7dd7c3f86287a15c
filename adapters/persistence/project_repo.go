package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/devfolio/internal/domain/project"
	"github.com/khoahotran/devfolio/pkg/apperror"
	"github.com/khoahotran/devfolio/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psqlProject = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.CategoryID,
		&p.Title,
		&p.RecruiterName,
		&p.Description,
		&p.Contribution,
		&p.Tools,
		&p.Link,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	return p, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (id, owner_id, category_id, title, recruiter_name, description, contribution, tools, link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.OwnerID, p.CategoryID, p.Title, p.RecruiterName,
		p.Description, p.Contribution, p.Tools, p.Link,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects SET
			category_id = $3, title = $4, recruiter_name = $5, description = $6,
			contribution = $7, tools = $8, link = $9, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.OwnerID, p.CategoryID, p.Title, p.RecruiterName,
		p.Description, p.Contribution, p.Tools, p.Link,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", p.ID.String())
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", id.String())
	}
	return nil
}

func (r *postgresProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	builder := psqlProject.Select("id, owner_id, category_id, title, recruiter_name, description, contribution, tools, link, created_at, updated_at").
		From("projects").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects by owner", err)
	}
	defer rows.Close()

	projects := make([]*project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}
