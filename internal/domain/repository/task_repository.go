package repository

import (
	"context"
	"errors"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when no task has the requested ID.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository persists tasks. It performs no ownership checks; callers gate access.
type TaskRepository interface {
	// Create persists a new task. ID and timestamps are assigned when zero.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task regardless of its owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// ListByUser returns the user's tasks ordered by CreatedAt, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)

	// Update overwrites title, description and status, and refreshes UpdatedAt.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes the task. Deleting a missing task returns ErrTaskNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
