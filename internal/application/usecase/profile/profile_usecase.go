package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/devfolio/adapters/event"
	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/pkg/apperror"
	"github.com/khoahotran/devfolio/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	publisher   event.Publisher
	logger      logger.Logger
}

func NewProfileUseCase(repo profile.Repository, publisher event.Publisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		publisher:   publisher,
		logger:      log,
	}
}

type GetProfileInput struct {
	OwnerID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	OwnerID  uuid.UUID
	Username string
	Title    string
	Bio      string
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteUpdateProfile merges the editable text fields onto the stored
// profile. The picture url and transform are owned by the picture operation
// and left untouched here.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	previousUsername := p.Username
	p.Username = input.Username
	p.Title = input.Title
	p.Bio = input.Bio

	if err := p.Validate(); err != nil {
		if errors.Is(err, profile.ErrEmptyUsername) {
			return nil, apperror.NewInvalidInput("username: "+err.Error(), err)
		}
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.publishUpdated(p, previousUsername)

	return &UpdateProfileOutput{Profile: p}, nil
}

func (uc *ProfileUseCase) publishUpdated(p *profile.Profile, previousUsername string) {
	go func() {
		payload := event.PortfolioEventPayload{
			EventType: event.PortfolioEventProfileUpdated,
			OwnerID:   p.OwnerID,
			Username:  p.Username,
		}
		if previousUsername != p.Username {
			payload.PreviousUsername = previousUsername
		}
		err := uc.publisher.PublishPortfolioEvent(context.Background(), payload)
		if err != nil {
			uc.logger.Error("Failed to publish profile.updated event", err, zap.String("owner_id", p.OwnerID.String()))
		}
	}()
}
