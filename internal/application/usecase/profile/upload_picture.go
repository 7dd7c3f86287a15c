package profile

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/khoahotran/devfolio/internal/application/service"
	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/pkg/apperror"
	"github.com/khoahotran/devfolio/pkg/logger"
)

const pictureFolder = "devfolio/pfp"

type SavePictureUseCase struct {
	profileRepo profile.Repository
	uploader    service.Uploader
	logger      logger.Logger
}

func NewSavePictureUseCase(repo profile.Repository, uploader service.Uploader, log logger.Logger) *SavePictureUseCase {
	return &SavePictureUseCase{
		profileRepo: repo,
		uploader:    uploader,
		logger:      log,
	}
}

type SavePictureInput struct {
	OwnerID uuid.UUID
	File    io.Reader // nil when only the transform changes
	// Transform fields are optional: nil means "keep the stored value", so a
	// request adjusting only the scale does not reset the offsets.
	Scale   *float64
	OffsetX *int
	OffsetY *int
}

type SavePictureOutput struct {
	PictureURL string
}

// Execute stores a new picture and/or its display transform. The transform is
// validated against its range here, not trusted from the client sliders.
func (uc *SavePictureUseCase) Execute(ctx context.Context, input SavePictureInput) (*SavePictureOutput, error) {
	p, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	transform := p.Picture
	if input.Scale != nil {
		transform.Scale = *input.Scale
	}
	if input.OffsetX != nil {
		transform.OffsetX = *input.OffsetX
	}
	if input.OffsetY != nil {
		transform.OffsetY = *input.OffsetY
	}
	if err := transform.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if input.File != nil {
		url, err := uc.uploader.Upload(ctx, input.File, pictureFolder, input.OwnerID.String())
		if err != nil {
			return nil, apperror.NewInternal("failed to upload profile picture", err)
		}
		p.PictureURL = url
	} else if p.PictureURL == "" {
		return nil, apperror.NewInvalidInput("no profile picture to adjust", nil)
	}

	p.Picture = transform

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	return &SavePictureOutput{PictureURL: p.PictureURL}, nil
}
