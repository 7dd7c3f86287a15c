package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/devfolio/internal/domain/project"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(repo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: repo}
}

type ListProjectsInput struct {
	OwnerID uuid.UUID
}

type ListProjectsOutput struct {
	Projects []*project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &ListProjectsOutput{Projects: projects}, nil
}
