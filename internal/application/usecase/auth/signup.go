package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/devfolio/internal/domain/profile"
	"github.com/khoahotran/devfolio/internal/domain/user"
	"github.com/khoahotran/devfolio/pkg/apperror"
	"github.com/khoahotran/devfolio/pkg/auth"
	"github.com/khoahotran/devfolio/pkg/logger"
)

type SignUpUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
	jwtSvc      *auth.JWTService
	logger      logger.Logger
}

func NewSignUpUseCase(uRepo user.Repository, pRepo profile.Repository, jwtSvc *auth.JWTService, log logger.Logger) *SignUpUseCase {
	return &SignUpUseCase{
		userRepo:    uRepo,
		profileRepo: pRepo,
		jwtSvc:      jwtSvc,
		logger:      log,
	}
}

type SignUpInput struct {
	Email    string
	Password string
	Username string
}

type SignUpOutput struct {
	OwnerID     uuid.UUID
	AccessToken string
}

// Execute creates the identity, then the username lookup row and the profile.
// If anything after identity creation fails, the identity is deleted again so
// no account without a matching profile can survive.
func (uc *SignUpUseCase) Execute(ctx context.Context, input SignUpInput) (*SignUpOutput, error) {
	if input.Username == "" {
		return nil, apperror.NewInvalidInput("username is required", nil)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	taken, err := uc.profileRepo.UsernameTaken(ctx, input.Username)
	if err != nil {
		uc.rollbackIdentity(ctx, newUser.ID)
		return nil, err
	}
	if taken {
		uc.rollbackIdentity(ctx, newUser.ID)
		return nil, apperror.NewAppError(apperror.ErrConflict, "Username already taken",
			"username '"+input.Username+"' is already in use", nil)
	}

	now := time.Now().UTC()
	newProfile := &profile.Profile{
		OwnerID:   newUser.ID,
		Username:  input.Username,
		Picture:   profile.DefaultPictureTransform(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.profileRepo.CreateWithLookup(ctx, newProfile); err != nil {
		uc.rollbackIdentity(ctx, newUser.ID)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(newUser.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token after signup", err, zap.String("owner_id", newUser.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &SignUpOutput{OwnerID: newUser.ID, AccessToken: token}, nil
}

// rollbackIdentity is best effort: its own failure is logged but must not mask
// the error that triggered the rollback.
func (uc *SignUpUseCase) rollbackIdentity(ctx context.Context, id uuid.UUID) {
	if err := uc.userRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("Signup rollback failed, orphaned identity remains", err, zap.String("owner_id", id.String()))
	}
}
