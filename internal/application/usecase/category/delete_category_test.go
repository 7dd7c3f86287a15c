package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/khoahotran/devfolio/adapters/event"
	"github.com/khoahotran/devfolio/internal/domain/category"
	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/pkg/apperror"
	"github.com/khoahotran/devfolio/pkg/logger"
)

type fakeCategoryRepo struct {
	cascadeFn func(ctx context.Context, id, ownerID uuid.UUID) (int64, error)
}

func (f *fakeCategoryRepo) Save(ctx context.Context, c *category.Category) error { return nil }

func (f *fakeCategoryRepo) Rename(ctx context.Context, id, ownerID uuid.UUID, name string) error {
	return nil
}

func (f *fakeCategoryRepo) DeleteCascade(ctx context.Context, id, ownerID uuid.UUID) (int64, error) {
	return f.cascadeFn(ctx, id, ownerID)
}

func (f *fakeCategoryRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*category.Category, error) {
	return nil, nil
}

type fakeProfileRepo struct {
	username string
}

func (f *fakeProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	return &profile.Profile{OwnerID: ownerID, Username: f.username}, nil
}

func (f *fakeProfileRepo) ResolveUsername(ctx context.Context, username string) (uuid.UUID, error) {
	return uuid.Nil, apperror.NewNotFound("profile", username)
}

func (f *fakeProfileRepo) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (f *fakeProfileRepo) CreateWithLookup(ctx context.Context, p *profile.Profile) error { return nil }
func (f *fakeProfileRepo) Update(ctx context.Context, p *profile.Profile) error           { return nil }

type fakePublisher struct {
	events chan event.PortfolioEventPayload
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{events: make(chan event.PortfolioEventPayload, 1)}
}

func (f *fakePublisher) PublishPortfolioEvent(ctx context.Context, payload event.PortfolioEventPayload) error {
	f.events <- payload
	return nil
}

func (f *fakePublisher) EnqueueMail(ctx context.Context, payload event.MailRequestPayload) error {
	return nil
}

func TestDeleteCategory_ReportsCascadeCount(t *testing.T) {
	ownerID := uuid.New()
	categoryID := uuid.New()
	repo := &fakeCategoryRepo{
		cascadeFn: func(ctx context.Context, id, owner uuid.UUID) (int64, error) {
			assert.Equal(t, categoryID, id)
			assert.Equal(t, ownerID, owner)
			return 4, nil
		},
	}
	publisher := newFakePublisher()
	uc := NewDeleteCategoryUseCase(repo, &fakeProfileRepo{username: "khoa"}, publisher, logger.NewNop())

	out, err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: categoryID, OwnerID: ownerID})

	assert.NoError(t, err)
	assert.Equal(t, int64(4), out.ProjectsDeleted)

	select {
	case payload := <-publisher.events:
		assert.Equal(t, event.PortfolioEventCategoryDeleted, payload.EventType)
		assert.Equal(t, ownerID, payload.OwnerID)
		assert.Equal(t, "khoa", payload.Username)
	case <-time.After(time.Second):
		t.Fatal("expected category.deleted event")
	}
}

func TestDeleteCategory_PropagatesRepositoryError(t *testing.T) {
	repo := &fakeCategoryRepo{
		cascadeFn: func(ctx context.Context, id, owner uuid.UUID) (int64, error) {
			return 0, errors.New("deadlock detected")
		},
	}
	publisher := newFakePublisher()
	uc := NewDeleteCategoryUseCase(repo, &fakeProfileRepo{username: "khoa"}, publisher, logger.NewNop())

	out, err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: uuid.New(), OwnerID: uuid.New()})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.Empty(t, publisher.events)
}

func TestDeleteCategory_NotFoundPassesThrough(t *testing.T) {
	repo := &fakeCategoryRepo{
		cascadeFn: func(ctx context.Context, id, owner uuid.UUID) (int64, error) {
			return 0, apperror.NewNotFound("category", id.String())
		},
	}
	uc := NewDeleteCategoryUseCase(repo, &fakeProfileRepo{username: "khoa"}, newFakePublisher(), logger.NewNop())

	_, err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: uuid.New(), OwnerID: uuid.New()})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
