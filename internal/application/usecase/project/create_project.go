package project

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/devfolio/adapters/event"
	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/internal/domain/project"
	"github.com/khoahotran/devfolio/pkg/apperror"
	"github.com/khoahotran/devfolio/pkg/logger"
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
	profileRepo profile.Repository
	publisher   event.Publisher
	logger      logger.Logger
}

func NewCreateProjectUseCase(repo project.Repository, profileRepo profile.Repository, publisher event.Publisher, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: repo,
		profileRepo: profileRepo,
		publisher:   publisher,
		logger:      log,
	}
}

type CreateProjectInput struct {
	OwnerID       uuid.UUID
	CategoryID    *uuid.UUID
	Title         string
	RecruiterName string
	Description   string
	Contribution  string
	ToolsRaw      string // comma separated, normalized before storage
	Link          string
}

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	now := time.Now().UTC()

	newProject := &project.Project{
		ID:            uuid.New(),
		OwnerID:       input.OwnerID,
		CategoryID:    input.CategoryID,
		Title:         input.Title,
		RecruiterName: input.RecruiterName,
		Description:   input.Description,
		Contribution:  input.Contribution,
		Tools:         project.NormalizeTools(input.ToolsRaw),
		Link:          input.Link,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := newProject.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, err
	}

	go func() {
		bg := context.Background()
		payload := event.PortfolioEventPayload{
			EventType: event.PortfolioEventProjectCreated,
			OwnerID:   newProject.OwnerID,
		}
		if p, err := uc.profileRepo.GetByOwnerID(bg, newProject.OwnerID); err == nil {
			payload.Username = p.Username
		}
		if err := uc.publisher.PublishPortfolioEvent(bg, payload); err != nil {
			uc.logger.Error("Failed to publish project.created event", err, zap.String("project_id", newProject.ID.String()))
		}
	}()

	return &CreateProjectOutput{Project: newProject}, nil
}
