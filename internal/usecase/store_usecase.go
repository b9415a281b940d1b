package usecase

import (
	"context"

	"taskhub/internal/domain/repository"
)

// StoreStatus describes the record store after initialization.
type StoreStatus struct {
	Driver string
	Tables []string
	Status map[string]repository.TableStatus
}

// StoreUsecase prepares the record store and reports its state.
type StoreUsecase interface {
	Initialize(ctx context.Context) (*StoreStatus, error)
}
