// Package persistence selects the record store backend named by store.driver and
// exposes its repositories to the rest of the application.
package persistence

import (
	"context"
	"log/slog"

	"taskhub/config"
	"taskhub/internal/domain/repository"
	"taskhub/internal/infra/persistence/document"
	"taskhub/internal/infra/persistence/gormdb"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is everything the use cases need from the store.
type Repositories struct {
	fx.Out

	Users        repository.UserRepository
	Tasks        repository.TaskRepository
	Transactions repository.TransactionManager
	Inspector    repository.StoreInspector
}

// New opens the configured backend.
func New(params Params) (Repositories, error) {
	if params.Config.Store.Driver == config.StoreDriverDocument {
		store, err := document.New(document.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return documentRepositories(store), nil
	}

	db, err := gormdb.New(gormdb.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return Repositories{}, err
	}

	return Repositories{
		Users:        gormdb.NewUserRepository(db),
		Tasks:        gormdb.NewTaskRepository(db),
		Transactions: gormdb.NewTransactionManager(db),
		Inspector:    gormdb.NewStoreInspector(db, params.Config.Store.Driver),
	}, nil
}

// OpenInspector opens the configured backend outside of fx and returns its inspector
// with a function releasing the underlying resources.
func OpenInspector(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.StoreInspector, func() error, error) {
	if cfg.Store.Driver == config.StoreDriverDocument {
		store, err := document.Open(ctx, cfg.Store.Document, logger)
		if err != nil {
			return nil, nil, err
		}

		return document.NewStoreInspector(store), store.Close, nil
	}

	db, err := gormdb.Open(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}

	return gormdb.NewStoreInspector(db, cfg.Store.Driver), sqlDB.Close, nil
}

func documentRepositories(store *document.Store) Repositories {
	return Repositories{
		Users:        document.NewUserRepository(store),
		Tasks:        document.NewTaskRepository(store),
		Transactions: document.NewTransactionManager(store),
		Inspector:    document.NewStoreInspector(store),
	}
}
