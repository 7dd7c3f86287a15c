package profile

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/pkg/apperror"
	"github.com/khoahotran/devfolio/pkg/logger"
)

type fakeProfileRepo struct {
	stored  *profile.Profile
	updated *profile.Profile
}

func (f *fakeProfileRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*profile.Profile, error) {
	if f.stored == nil {
		return nil, apperror.NewNotFound("profile", ownerID.String())
	}
	cp := *f.stored
	return &cp, nil
}

func (f *fakeProfileRepo) ResolveUsername(ctx context.Context, username string) (uuid.UUID, error) {
	return uuid.Nil, apperror.NewNotFound("profile", username)
}

func (f *fakeProfileRepo) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (f *fakeProfileRepo) CreateWithLookup(ctx context.Context, p *profile.Profile) error { return nil }

func (f *fakeProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	f.updated = p
	return nil
}

type fakeUploader struct {
	url string
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	return f.url, nil
}

func (f *fakeUploader) Delete(ctx context.Context, publicID string) error { return nil }

func storedProfile(ownerID uuid.UUID) *profile.Profile {
	return &profile.Profile{
		OwnerID:    ownerID,
		Username:   "khoa",
		PictureURL: "https://cdn.example.com/pfp/khoa.png",
		Picture:    profile.PictureTransform{Scale: 1.4, OffsetX: 10, OffsetY: -20},
	}
}

func TestSavePicture_AbsentFieldsKeepStoredTransform(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakeProfileRepo{stored: storedProfile(ownerID)}
	uc := NewSavePictureUseCase(repo, &fakeUploader{}, logger.NewNop())

	scale := 1.8
	_, err := uc.Execute(context.Background(), SavePictureInput{
		OwnerID: ownerID,
		Scale:   &scale,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1.8, repo.updated.Picture.Scale)
	assert.Equal(t, 10, repo.updated.Picture.OffsetX)
	assert.Equal(t, -20, repo.updated.Picture.OffsetY)
}

func TestSavePicture_NoFieldsLeaveTransformUntouched(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakeProfileRepo{stored: storedProfile(ownerID)}
	uc := NewSavePictureUseCase(repo, &fakeUploader{url: "https://cdn.example.com/pfp/new.png"}, logger.NewNop())

	out, err := uc.Execute(context.Background(), SavePictureInput{
		OwnerID: ownerID,
		File:    strings.NewReader("image-bytes"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/pfp/new.png", out.PictureURL)
	assert.Equal(t, profile.PictureTransform{Scale: 1.4, OffsetX: 10, OffsetY: -20}, repo.updated.Picture)
}

func TestSavePicture_RejectsOutOfRangeTransform(t *testing.T) {
	ownerID := uuid.New()
	repo := &fakeProfileRepo{stored: storedProfile(ownerID)}
	uc := NewSavePictureUseCase(repo, &fakeUploader{}, logger.NewNop())

	offset := 120
	_, err := uc.Execute(context.Background(), SavePictureInput{
		OwnerID: ownerID,
		OffsetX: &offset,
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Nil(t, repo.updated)
}

func TestSavePicture_NoFileAndNoStoredPicture(t *testing.T) {
	ownerID := uuid.New()
	stored := storedProfile(ownerID)
	stored.PictureURL = ""
	repo := &fakeProfileRepo{stored: stored}
	uc := NewSavePictureUseCase(repo, &fakeUploader{}, logger.NewNop())

	scale := 1.2
	_, err := uc.Execute(context.Background(), SavePictureInput{
		OwnerID: ownerID,
		Scale:   &scale,
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.Nil(t, repo.updated)
}
