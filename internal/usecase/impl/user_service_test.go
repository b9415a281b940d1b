package impl

import (
	"context"
	"strings"
	"testing"

	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"
	mockRepo "taskhub/internal/mocks/repository"
	mockSvc "taskhub/internal/mocks/service"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	tokens    *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokens:    mockSvc.NewMockTokenService(t),
	}
	f.service = NewUserService(UserServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		Hasher:       f.hasher,
		TokenService: f.tokens,
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)
	expectTx(t, fx.txManager, fx.userRepo, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "alice@example.com" && u.Name == "Alice" && u.PasswordHash == "hashed"
		})).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = uuid.New()
			return nil
		})
	fx.tokens.EXPECT().Issue(mock.AnythingOfType("string"), "alice@example.com").Return("signed.token.value", nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "  Alice ",
		Email:    " Alice@Example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", out.Token)
	assert.Equal(t, "alice@example.com", out.User.Email)
	assert.Equal(t, "Alice", out.User.Name)
	assert.NotEqual(t, uuid.Nil, out.User.ID)
}

func TestUserService_Register_InvalidCredentials(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "not-an-email",
		Password: "short",
	})

	appErr := requireAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, []string{"Invalid email format"}, appErr.Details()["email"])
	assert.Equal(t, []string{"Password must be at least 8 characters long"}, appErr.Details()["password"])
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)
	expectTx(t, fx.txManager, fx.userRepo, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "password123"})

	appErr := requireAppError(t, err, domainerrors.ErrEmailAlreadyRegistered)
	assert.Equal(t, "Email already registered", appErr.Message())
	assert.Equal(t, []string{"This email is already registered"}, appErr.Details()["email"])
}

func TestUserService_Register_PasswordTooLong(t *testing.T) {
	fx := createTestUserService(t)
	long := strings.Repeat("p", 80)

	fx.hasher.EXPECT().Hash(long).Return("", service.ErrPasswordTooLong)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: long})

	appErr := requireAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, appErr.Details(), "password")
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash("password123").Return("", errors.New("entropy exhausted"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "password123"})

	appErr := requireAppError(t, err, domainerrors.ErrPasswordHashFailed)
	assert.NotContains(t, appErr.Message(), "entropy")
}

func TestUserService_Register_StoreFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	storeErr := errors.New("disk full")

	fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)
	expectTx(t, fx.txManager, fx.userRepo, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(storeErr)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, storeErr)

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestUserService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed", Name: "Alice"}

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("password123", "hashed").Return(true)
		fx.tokens.EXPECT().Issue(user.ID.String(), user.Email).Return("tok", nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ALICE@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, "tok", out.Token)
		assert.Equal(t, user.ID, out.User.ID)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
		_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "password123"})

		fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong-password", "hashed").Return(false)
		_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong-password"})

		unknown := requireAppError(t, unknownErr, domainerrors.ErrInvalidCredentials)
		wrong := requireAppError(t, wrongErr, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, unknown.Message(), wrong.Message())
		assert.Equal(t, "Invalid credentials", wrong.Message())
	})
}

func TestUserService_CurrentUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CurrentUser(ctx, id)
	requireAppError(t, err, domainerrors.ErrUserNotFound)
}
