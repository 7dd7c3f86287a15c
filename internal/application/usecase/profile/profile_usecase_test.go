package profile

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/khoahotran/devfolio/adapters/event"
	"github.com/khoahotran/devfolio/pkg/logger"
)

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

func waitForEvent(t *testing.T, publisher *fakePublisher) event.PortfolioEventPayload {
	t.Helper()
	select {
	case payload := <-publisher.events:
		return payload
	case <-time.After(2 * time.Second):
		t.Fatal("expected a portfolio event")
		return event.PortfolioEventPayload{}
	}
}

func TestUpdateProfile_RenamePublishesBothUsernames(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakeProfileRepo{stored: storedProfile(ownerID)}
	publisher := newFakePublisher()
	uc := NewProfileUseCase(repo, publisher, logger.NewNop())

	out, err := uc.ExecuteUpdateProfile(context.Background(), UpdateProfileInput{
		OwnerID:  ownerID,
		Username: "khoa-tran",
		Title:    "Backend Engineer",
	})
	assert.NoError(t, err)
	assert.Equal(t, "khoa-tran", out.Profile.Username)

	payload := waitForEvent(t, publisher)
	assert.Equal(t, event.PortfolioEventProfileUpdated, payload.EventType)
	assert.Equal(t, "khoa-tran", payload.Username)
	assert.Equal(t, "khoa", payload.PreviousUsername)
}

func TestUpdateProfile_SameUsernameOmitsPrevious(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakeProfileRepo{stored: storedProfile(ownerID)}
	publisher := newFakePublisher()
	uc := NewProfileUseCase(repo, publisher, logger.NewNop())

	_, err := uc.ExecuteUpdateProfile(context.Background(), UpdateProfileInput{
		OwnerID:  ownerID,
		Username: "khoa",
		Bio:      "Still me.",
	})
	assert.NoError(t, err)

	payload := waitForEvent(t, publisher)
	assert.Equal(t, "khoa", payload.Username)
	assert.Empty(t, payload.PreviousUsername)
}
