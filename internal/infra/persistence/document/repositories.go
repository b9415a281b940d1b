package document

import (
	"context"
	"time"

	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/repository"
	"taskhub/internal/errors"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository on the shared snapshot.
type userRepository struct {
	store *Store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (user *entity.User, err error) {
	err = repo.store.view(ctx, func(s *snapshot) error {
		user, err = s.findUserByID(id)
		return err
	})

	return user, err
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (user *entity.User, err error) {
	err = repo.store.view(ctx, func(s *snapshot) error {
		user, err = s.findUserByEmail(email)
		return err
	})

	return user, err
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := prepareUser(user); err != nil {
		return err
	}

	return repo.store.update(ctx, func(s *snapshot) error {
		return s.createUser(user)
	})
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now().UTC()

	return repo.store.update(ctx, func(s *snapshot) error {
		return s.updateUser(user)
	})
}

// taskRepository implements repository.TaskRepository on the shared snapshot.
type taskRepository struct {
	store *Store
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(store *Store) repository.TaskRepository {
	return &taskRepository{store: store}
}

func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	if err := prepareTask(task); err != nil {
		return err
	}

	return repo.store.update(ctx, func(s *snapshot) error {
		return s.createTask(task)
	})
}

func (repo *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (task *entity.Task, err error) {
	err = repo.store.view(ctx, func(s *snapshot) error {
		task, err = s.findTaskByID(id)
		return err
	})

	return task, err
}

func (repo *taskRepository) ListByUser(ctx context.Context, userID uuid.UUID) (tasks []*entity.Task, err error) {
	err = repo.store.view(ctx, func(s *snapshot) error {
		tasks = s.listTasksByUser(userID)
		return nil
	})

	return tasks, err
}

func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	task.UpdatedAt = time.Now().UTC()

	return repo.store.update(ctx, func(s *snapshot) error {
		return s.updateTask(task)
	})
}

func (repo *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.store.update(ctx, func(s *snapshot) error {
		return s.deleteTask(id)
	})
}

// prepareUser assigns a UUIDv7 and timestamps when absent.
func prepareUser(user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate user id")
		}
		user.ID = id
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	return nil
}

// prepareTask assigns a UUIDv7 and timestamps when absent.
func prepareTask(task *entity.Task) error {
	if task.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate task id")
		}
		task.ID = id
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = task.CreatedAt
	}

	return nil
}
