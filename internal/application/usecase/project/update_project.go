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

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	profileRepo profile.Repository
	publisher   event.Publisher
	logger      logger.Logger
}

func NewUpdateProjectUseCase(repo project.Repository, profileRepo profile.Repository, publisher event.Publisher, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: repo,
		profileRepo: profileRepo,
		publisher:   publisher,
		logger:      log,
	}
}

type UpdateProjectInput struct {
	ProjectID     uuid.UUID
	OwnerID       uuid.UUID
	CategoryID    *uuid.UUID
	Title         string
	RecruiterName string
	Description   string
	Contribution  string
	// Tools carries an already-split list; ToolsRaw a comma-separated string
	// that still needs normalizing. Editing clients may send either, so a
	// round-trip edit without touching the field stores the list unchanged.
	Tools    []string
	ToolsRaw *string
	Link     string
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	tools := input.Tools
	if input.ToolsRaw != nil {
		tools = project.NormalizeTools(*input.ToolsRaw)
	}

	updated := &project.Project{
		ID:            input.ProjectID,
		OwnerID:       input.OwnerID,
		CategoryID:    input.CategoryID,
		Title:         input.Title,
		RecruiterName: input.RecruiterName,
		Description:   input.Description,
		Contribution:  input.Contribution,
		Tools:         tools,
		Link:          input.Link,
		UpdatedAt:     time.Now().UTC(),
	}

	if err := updated.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.projectRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	go func() {
		bg := context.Background()
		payload := event.PortfolioEventPayload{
			EventType: event.PortfolioEventProjectUpdated,
			OwnerID:   updated.OwnerID,
		}
		if p, err := uc.profileRepo.GetByOwnerID(bg, updated.OwnerID); err == nil {
			payload.Username = p.Username
		}
		if err := uc.publisher.PublishPortfolioEvent(bg, payload); err != nil {
			uc.logger.Error("Failed to publish project.updated event", err, zap.String("project_id", updated.ID.String()))
		}
	}()

	return &UpdateProjectOutput{Project: updated}, nil
}
