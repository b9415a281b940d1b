package gormdb

import (
	"context"

	"taskhub/internal/domain/repository"
	"taskhub/internal/errors"

	"gorm.io/gorm"
)

// storeInspector reports on the users and tasks tables.
type storeInspector struct {
	db     *gorm.DB
	driver string
}

// NewStoreInspector builds a StoreInspector for the given SQL driver name.
func NewStoreInspector(db *gorm.DB, driver string) repository.StoreInspector {
	return &storeInspector{db: db, driver: driver}
}

// Init migrates the schema. AutoMigrate is idempotent.
func (s *storeInspector) Init(ctx context.Context) error {
	return Migrate(s.db.WithContext(ctx))
}

// Status checks whether each table exists.
func (s *storeInspector) Status(ctx context.Context) (map[string]repository.TableStatus, error) {
	migrator := s.db.WithContext(ctx).Migrator()

	status := make(map[string]repository.TableStatus, 2)
	for name, model := range map[string]any{"users": &UserModel{}, "tasks": &TaskModel{}} {
		status[name] = repository.TableStatusMissing
		if migrator.HasTable(model) {
			status[name] = repository.TableStatusReady
		}
	}

	if err := s.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return status, errors.Wrap(err, "store ping")
	}

	return status, nil
}

// Driver names the SQL backend.
func (s *storeInspector) Driver() string {
	return s.driver
}
