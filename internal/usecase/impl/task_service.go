package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"
	"taskhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const msgTitleRequired = "Title is required"

type taskService struct {
	txManager repository.TransactionManager
	taskRepo  repository.TaskRepository
	logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(
	txManager repository.TransactionManager,
	taskRepo repository.TaskRepository,
	logger *slog.Logger,
) usecase.TaskUsecase {
	return &taskService{
		txManager: txManager,
		taskRepo:  taskRepo,
		logger:    logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTasks returns the caller's tasks, newest first, optionally filtered.
func (srv *taskService) ListTasks(ctx context.Context, userID uuid.UUID, search string) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	if search == "" {
		return tasks, nil
	}

	filtered := make([]*entity.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Matches(search) {
			filtered = append(filtered, task)
		}
	}

	return filtered, nil
}

// CreateTask adds a task owned by the caller.
func (srv *taskService) CreateTask(ctx context.Context, userID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithField("title", msgTitleRequired))
	}

	status := entity.TaskStatusActive
	if input.Status != "" {
		parsed, err := parseStatus(input.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	// An empty description is stored as absent.
	description := input.Description
	if description != nil && *description == "" {
		description = nil
	}

	task := &entity.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
	}
	if err := srv.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Info("Task created", slog.String("taskID", task.ID.String()), slog.String("userID", userID.String()))

	return task, nil
}

// GetTask returns a single task the caller owns.
func (srv *taskService) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error) {
	return srv.ownedTask(ctx, srv.taskRepo, userID, taskID)
}

// UpdateTask applies a partial update after the existence and ownership checks.
func (srv *taskService) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	var updated *entity.Task
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.NewTaskRepository()

		task, err := srv.ownedTask(ctx, taskRepo, userID, taskID)
		if err != nil {
			return err
		}

		if err := applyTaskUpdates(task, input); err != nil {
			return err
		}

		if err := taskRepo.Update(ctx, task); err != nil {
			return err
		}
		updated = task

		return nil
	})
	if err != nil {
		return nil, srv.wrapTaskErr(err, "failed to update task")
	}

	srv.log(ctx).Info("Task updated", slog.String("taskID", taskID.String()))

	return updated, nil
}

// DeleteTask removes a task the caller owns.
func (srv *taskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.NewTaskRepository()

		if _, err := srv.ownedTask(ctx, taskRepo, userID, taskID); err != nil {
			return err
		}

		return taskRepo.Delete(ctx, taskID)
	})
	if err != nil {
		return srv.wrapTaskErr(err, "failed to delete task")
	}

	srv.log(ctx).Info("Task deleted", slog.String("taskID", taskID.String()))

	return nil
}

// ownedTask enforces the access gate for task-scoped operations: the task must
// exist (404) and belong to the caller (403).
func (srv *taskService) ownedTask(ctx context.Context, repo repository.TaskRepository, userID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := repo.FindByID(ctx, taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return nil, errors.WithStack(domainerrors.ErrTaskNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find task")
	}

	if !service.IsOwner(task.UserID, userID) {
		srv.log(ctx).Warn("Task access denied",
			slog.String("taskID", taskID.String()),
			slog.String("userID", userID.String()),
		)

		return nil, errors.WithStack(domainerrors.ErrAccessDenied)
	}

	return task, nil
}

func (srv *taskService) wrapTaskErr(err error, message string) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return errors.WithStack(domainerrors.ErrTaskNotFound)
	}

	return errors.Wrap(err, message)
}

func applyTaskUpdates(task *entity.Task, input *usecase.UpdateTaskInput) error {
	if input.Status != nil && *input.Status != "" {
		status, err := parseStatus(*input.Status)
		if err != nil {
			return err
		}
		task.Status = status
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return errors.WithStack(domainerrors.ErrValidationFailed.WithField("title", msgTitleRequired))
		}
		task.Title = title
	}

	if input.DescriptionSet {
		task.Description = input.Description
	}

	return nil
}

func parseStatus(raw string) (entity.TaskStatus, error) {
	status := entity.TaskStatus(raw)
	if !status.IsValid() {
		return "", errors.WithStack(domainerrors.ErrInvalidStatus.WithField("status", "Status must be one of: "+entity.TaskStatusList()))
	}

	return status, nil
}
