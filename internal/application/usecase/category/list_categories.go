package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/devfolio/internal/domain/category"
)

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
}

func NewListCategoriesUseCase(repo category.Repository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryRepo: repo}
}

type ListCategoriesInput struct {
	OwnerID uuid.UUID
}

type ListCategoriesOutput struct {
	Categories []*category.Category
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &ListCategoriesOutput{Categories: categories}, nil
}
