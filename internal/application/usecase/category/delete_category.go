package category

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/devfolio/adapters/event"
	"github.com/khoahotran/devfolio/internal/domain/category"
	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/pkg/logger"
)

// DeleteCategoryUseCase removes a category and every project assigned to it.
// The confirmation prompt is a client concern; once called this executes
// unconditionally. The repository guarantees the cascade is atomic, so either
// the category and all its projects are gone or nothing changed.
type DeleteCategoryUseCase struct {
	categoryRepo category.Repository
	profileRepo  profile.Repository
	publisher    event.Publisher
	logger       logger.Logger
}

func NewDeleteCategoryUseCase(repo category.Repository, profileRepo profile.Repository, publisher event.Publisher, log logger.Logger) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: repo,
		profileRepo:  profileRepo,
		publisher:    publisher,
		logger:       log,
	}
}

type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	OwnerID    uuid.UUID
}

type DeleteCategoryOutput struct {
	ProjectsDeleted int64
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	projectsDeleted, err := uc.categoryRepo.DeleteCascade(ctx, input.CategoryID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Category deleted with cascade",
		zap.String("category_id", input.CategoryID.String()),
		zap.Int64("projects_deleted", projectsDeleted))

	go func() {
		bg := context.Background()
		payload := event.PortfolioEventPayload{
			EventType: event.PortfolioEventCategoryDeleted,
			OwnerID:   input.OwnerID,
		}
		if p, err := uc.profileRepo.GetByOwnerID(bg, input.OwnerID); err == nil {
			payload.Username = p.Username
		}
		if err := uc.publisher.PublishPortfolioEvent(bg, payload); err != nil {
			uc.logger.Error("Failed to publish category.deleted event", err, zap.String("category_id", input.CategoryID.String()))
		}
	}()

	return &DeleteCategoryOutput{ProjectsDeleted: projectsDeleted}, nil
}
