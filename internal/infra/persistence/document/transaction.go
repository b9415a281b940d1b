package document

import (
	"context"
	"time"

	"taskhub/internal/domain/entity"
	"taskhub/internal/domain/repository"

	"github.com/google/uuid"
)

// transactionManager runs a unit of work against a private snapshot copy.
// The copy is persisted only if the work succeeds.
type transactionManager struct {
	store *Store
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute holds the store lock for the whole unit of work. fn must only use the
// repositories handed out by the factory.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.store.update(ctx, func(s *snapshot) error {
		return fn(&snapshotFactory{snap: s})
	})
}

type snapshotFactory struct {
	snap *snapshot
}

func (f *snapshotFactory) NewUserRepository() repository.UserRepository {
	return &txUserRepository{snap: f.snap}
}

func (f *snapshotFactory) NewTaskRepository() repository.TaskRepository {
	return &txTaskRepository{snap: f.snap}
}

// txUserRepository works directly on the transaction's snapshot copy.
type txUserRepository struct {
	snap *snapshot
}

func (repo *txUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.snap.findUserByID(id)
}

func (repo *txUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return repo.snap.findUserByEmail(email)
}

func (repo *txUserRepository) Create(_ context.Context, user *entity.User) error {
	if err := prepareUser(user); err != nil {
		return err
	}

	return repo.snap.createUser(user)
}

func (repo *txUserRepository) Update(_ context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now().UTC()

	return repo.snap.updateUser(user)
}

// txTaskRepository works directly on the transaction's snapshot copy.
type txTaskRepository struct {
	snap *snapshot
}

func (repo *txTaskRepository) Create(_ context.Context, task *entity.Task) error {
	if err := prepareTask(task); err != nil {
		return err
	}

	return repo.snap.createTask(task)
}

func (repo *txTaskRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	return repo.snap.findTaskByID(id)
}

func (repo *txTaskRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	return repo.snap.listTasksByUser(userID), nil
}

func (repo *txTaskRepository) Update(_ context.Context, task *entity.Task) error {
	task.UpdatedAt = time.Now().UTC()

	return repo.snap.updateTask(task)
}

func (repo *txTaskRepository) Delete(_ context.Context, id uuid.UUID) error {
	return repo.snap.deleteTask(id)
}
