package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/validation"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	msgEmailOwnedByAnother = "This email is already registered to another account"
	msgNameEmpty           = "Name cannot be empty"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the caller's account without the password hash ever leaving the server.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.String("userID", userID.String()))

	return findUser(ctx, srv.userRepo, userID)
}

// UpdateProfile changes name and/or email. An empty email is treated as not provided;
// an explicitly blank name is rejected. The email check and the write share one transaction.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var email string
	if input.Email != nil {
		email = validation.NormalizeEmail(*input.Email)
		if email != "" {
			if res := validation.Email(email); !res.Valid {
				return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithField("email", res.Message))
			}
		}
	}

	var name string
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithField("name", msgNameEmpty))
		}
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := findUser(ctx, userRepo, userID)
		if err != nil {
			return err
		}

		if email != "" && email != user.Email {
			existing, err := userRepo.FindByEmail(ctx, email)
			if err == nil && existing.ID != userID {
				return repository.ErrEmailTaken
			}
			if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to look up email")
			}
			user.Email = email
		}
		if input.Name != nil {
			user.Name = name
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return err
		}
		updated = user

		return nil
	})
	if errors.Is(err, repository.ErrEmailTaken) {
		return nil, errors.WithStack(domainerrors.ErrEmailInUse.WithField("email", msgEmailOwnedByAnother))
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	srv.log(ctx).Info("Profile updated", slog.String("userID", userID.String()))

	return updated, nil
}
