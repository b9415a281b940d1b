package usecase

import (
	"context"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// TaskUsecase defines task operations. Every call acts on behalf of userID and
// resource-scoped calls check ownership before touching the task.
type TaskUsecase interface {
	// ListTasks returns the user's tasks, newest first, filtered by search when non-empty.
	ListTasks(ctx context.Context, userID uuid.UUID, search string) ([]*entity.Task, error)
	CreateTask(ctx context.Context, userID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
}

// --- Input DTOs ---

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title       string
	Description *string
	// Status may be empty, meaning active.
	Status string
}

// UpdateTaskInput holds a partial update. Nil pointers leave fields untouched.
type UpdateTaskInput struct {
	Title *string
	// DescriptionSet distinguishes an explicit null (clear) from an absent field.
	DescriptionSet bool
	Description    *string
	Status         *string
}
