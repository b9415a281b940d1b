package impl

import (
	"context"
	"testing"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	mockRepo "taskhub/internal/mocks/repository"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	f := profileServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
	}
	f.service = NewProfileService(f.txManager, f.userRepo, newDiscardLogger())

	return f
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", Name: "Alice"}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	newUser := func() *entity.User {
		return &entity.User{ID: uuid.MustParse("0190a6f0-0000-7000-8000-000000000001"), Email: "alice@example.com", Name: "Alice"}
	}

	t.Run("updates name and email", func(t *testing.T) {
		fx := createTestProfileService(t)
		user := newUser()

		expectTx(t, fx.txManager, fx.userRepo, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "alice2@example.com").Return(nil, repository.ErrUserNotFound)
		fx.userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Name == "Alice Two" && u.Email == "alice2@example.com"
			})).
			Return(nil)

		got, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{
			Name:  strPtr(" Alice Two "),
			Email: strPtr("Alice2@Example.com"),
		})
		require.NoError(t, err)
		assert.Equal(t, "alice2@example.com", got.Email)
		assert.Equal(t, "Alice Two", got.Name)
	})

	t.Run("unchanged email skips the uniqueness lookup", func(t *testing.T) {
		fx := createTestProfileService(t)
		user := newUser()

		expectTx(t, fx.txManager, fx.userRepo, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		_, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Email: strPtr("alice@example.com")})
		require.NoError(t, err)
	})

	t.Run("email owned by another account", func(t *testing.T) {
		fx := createTestProfileService(t)
		user := newUser()

		expectTx(t, fx.txManager, fx.userRepo, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(&entity.User{ID: uuid.New()}, nil)

		_, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Email: strPtr("bob@example.com")})

		appErr := requireAppError(t, err, domainerrors.ErrEmailInUse)
		assert.Equal(t, []string{"This email is already registered to another account"}, appErr.Details()["email"])
	})

	t.Run("invalid email is rejected before the store", func(t *testing.T) {
		fx := createTestProfileService(t)

		_, err := fx.service.UpdateProfile(ctx, uuid.New(), &usecase.UpdateProfileInput{Email: strPtr("nope")})

		appErr := requireAppError(t, err, domainerrors.ErrValidationFailed)
		assert.Equal(t, []string{"Invalid email format"}, appErr.Details()["email"])
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		fx := createTestProfileService(t)

		_, err := fx.service.UpdateProfile(ctx, uuid.New(), &usecase.UpdateProfileInput{Name: strPtr("   ")})

		appErr := requireAppError(t, err, domainerrors.ErrValidationFailed)
		assert.Equal(t, []string{"Name cannot be empty"}, appErr.Details()["name"])
	})

	t.Run("user vanished", func(t *testing.T) {
		fx := createTestProfileService(t)
		id := uuid.New()

		expectTx(t, fx.txManager, fx.userRepo, nil)
		fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.UpdateProfile(ctx, id, &usecase.UpdateProfileInput{Name: strPtr("Ghost")})
		requireAppError(t, err, domainerrors.ErrUserNotFound)
	})
}
