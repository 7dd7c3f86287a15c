package project

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/devfolio/adapters/event"
	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/internal/domain/project"
	"github.com/khoahotran/devfolio/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	profileRepo profile.Repository
	publisher   event.Publisher
	logger      logger.Logger
}

func NewDeleteProjectUseCase(repo project.Repository, profileRepo profile.Repository, publisher event.Publisher, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: repo,
		profileRepo: profileRepo,
		publisher:   publisher,
		logger:      log,
	}
}

type DeleteProjectInput struct {
	ProjectID uuid.UUID
	OwnerID   uuid.UUID
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if err := uc.projectRepo.Delete(ctx, input.ProjectID, input.OwnerID); err != nil {
		return err
	}

	go func() {
		bg := context.Background()
		payload := event.PortfolioEventPayload{
			EventType: event.PortfolioEventProjectDeleted,
			OwnerID:   input.OwnerID,
		}
		if p, err := uc.profileRepo.GetByOwnerID(bg, input.OwnerID); err == nil {
			payload.Username = p.Username
		}
		if err := uc.publisher.PublishPortfolioEvent(bg, payload); err != nil {
			uc.logger.Error("Failed to publish project.deleted event", err, zap.String("project_id", input.ProjectID.String()))
		}
	}()

	return nil
}
