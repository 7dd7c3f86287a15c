package category

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/devfolio/adapters/event"
	"github.com/khoahotran/devfolio/internal/domain/category"
	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/pkg/apperror"
	"github.com/khoahotran/devfolio/pkg/logger"
)

type UpdateCategoryUseCase struct {
	categoryRepo category.Repository
	profileRepo  profile.Repository
	publisher    event.Publisher
	logger       logger.Logger
}

func NewUpdateCategoryUseCase(repo category.Repository, profileRepo profile.Repository, publisher event.Publisher, log logger.Logger) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: repo,
		profileRepo:  profileRepo,
		publisher:    publisher,
		logger:       log,
	}
}

type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	OwnerID    uuid.UUID
	Name       string
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) error {
	if input.Name == "" {
		return apperror.NewInvalidInput(category.ErrEmptyName.Error(), category.ErrEmptyName)
	}
	if err := uc.categoryRepo.Rename(ctx, input.CategoryID, input.OwnerID, input.Name); err != nil {
		return err
	}

	go func() {
		bg := context.Background()
		payload := event.PortfolioEventPayload{
			EventType: event.PortfolioEventCategoryUpdated,
			OwnerID:   input.OwnerID,
		}
		if p, err := uc.profileRepo.GetByOwnerID(bg, input.OwnerID); err == nil {
			payload.Username = p.Username
		}
		if err := uc.publisher.PublishPortfolioEvent(bg, payload); err != nil {
			uc.logger.Error("Failed to publish category.updated event", err, zap.String("category_id", input.CategoryID.String()))
		}
	}()

	return nil
}
