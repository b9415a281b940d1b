package repository

import "context"

// TransactionManager runs a unit of work atomically against the record store.
// Use cases reach for it when a read must stay valid until the following write,
// such as the email uniqueness check before creating or updating a user.
type TransactionManager interface {
	// Execute runs fn within a single transaction.
	// If fn returns an error, nothing it wrote is kept.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository

	// NewTaskRepository returns a TaskRepository bound to the current transaction.
	NewTaskRepository() TaskRepository
}
