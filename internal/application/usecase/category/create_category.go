package category

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/devfolio/adapters/event"
	"github.com/khoahotran/devfolio/internal/domain/category"
	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/pkg/apperror"
	"github.com/khoahotran/devfolio/pkg/logger"
)

type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	profileRepo  profile.Repository
	publisher    event.Publisher
	logger       logger.Logger
}

func NewCreateCategoryUseCase(repo category.Repository, profileRepo profile.Repository, publisher event.Publisher, log logger.Logger) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: repo,
		profileRepo:  profileRepo,
		publisher:    publisher,
		logger:       log,
	}
}

type CreateCategoryInput struct {
	OwnerID uuid.UUID
	Name    string
}

type CreateCategoryOutput struct {
	Category *category.Category
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	newCategory := &category.Category{
		ID:        uuid.New(),
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := newCategory.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.categoryRepo.Save(ctx, newCategory); err != nil {
		return nil, err
	}

	go func() {
		bg := context.Background()
		payload := event.PortfolioEventPayload{
			EventType: event.PortfolioEventCategoryCreated,
			OwnerID:   newCategory.OwnerID,
		}
		if p, err := uc.profileRepo.GetByOwnerID(bg, newCategory.OwnerID); err == nil {
			payload.Username = p.Username
		}
		if err := uc.publisher.PublishPortfolioEvent(bg, payload); err != nil {
			uc.logger.Error("Failed to publish category.created event", err, zap.String("category_id", newCategory.ID.String()))
		}
	}()

	return &CreateCategoryOutput{Category: newCategory}, nil
}
