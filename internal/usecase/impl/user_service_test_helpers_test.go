package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	mockRepo "taskhub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes the transaction manager run fn against a factory handing out the given repositories.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, users repository.UserRepository, tasks repository.TaskRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if users != nil {
				factory.EXPECT().NewUserRepository().Return(users).Maybe()
			}
			if tasks != nil {
				factory.EXPECT().NewTaskRepository().Return(tasks).Maybe()
			}

			return fn(factory)
		}).
		Once()
}

// requireAppError asserts err carries target and returns the AppError for detail checks.
func requireAppError(t *testing.T, err error, target *domainerrors.BaseError) domainerrors.AppError {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, target)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, target.HTTPCode(), appErr.HTTPCode())

	return appErr
}
