package project

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID            uuid.UUID  `json:"id"`
	OwnerID       uuid.UUID  `json:"owner_id"`
	CategoryID    *uuid.UUID `json:"category_id"`
	Title         string     `json:"title"`
	RecruiterName string     `json:"recruiter_name"`
	Description   string     `json:"description"`
	Contribution  string     `json:"contribution"`
	Tools         []string   `json:"tools"`
	Link          string     `json:"link"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

var ErrEmptyTitle = errors.New("project title must not be empty")

func (p *Project) Validate() error {
	if p.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// NormalizeTools splits a comma-separated tools string into an ordered list,
// trimming whitespace and dropping empty segments. "a, b ,c" becomes
// ["a" "b" "c"], "a,,b" becomes ["a" "b"].
func NormalizeTools(raw string) []string {
	parts := strings.Split(raw, ",")
	tools := make([]string, 0, len(parts))
	for _, part := range parts {
		tool := strings.TrimSpace(part)
		if tool == "" {
			continue
		}
		tools = append(tools, tool)
	}
	return tools
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Project, error)
}
