package portfolio

import (
	"context"

	"github.com/khoahotran/devfolio/adapters/event"
	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/internal/domain/user"
	"github.com/khoahotran/devfolio/pkg/apperror"
)

// ContactOwnerUseCase queues a message from a portfolio visitor to the owner.
// Delivery is fire and forget: the worker sends the mail, failures there are
// logged, never retried.
type ContactOwnerUseCase struct {
	profileRepo profile.Repository
	userRepo    user.Repository
	publisher   event.Publisher
}

func NewContactOwnerUseCase(pRepo profile.Repository, uRepo user.Repository, publisher event.Publisher) *ContactOwnerUseCase {
	return &ContactOwnerUseCase{
		profileRepo: pRepo,
		userRepo:    uRepo,
		publisher:   publisher,
	}
}

type ContactOwnerInput struct {
	Username    string
	SenderName  string
	SenderEmail string
	Message     string
}

func (uc *ContactOwnerUseCase) Execute(ctx context.Context, input ContactOwnerInput) error {
	if input.Message == "" {
		return apperror.NewInvalidInput("message is required", nil)
	}

	ownerID, err := uc.profileRepo.ResolveUsername(ctx, input.Username)
	if err != nil {
		return err
	}

	owner, err := uc.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return err
	}

	err = uc.publisher.EnqueueMail(ctx, event.MailRequestPayload{
		RecipientEmail: owner.Email,
		SenderName:     input.SenderName,
		SenderEmail:    input.SenderEmail,
		Message:        input.Message,
	})
	if err != nil {
		return apperror.NewUnavailable("failed to queue contact message", err)
	}
	return nil
}
