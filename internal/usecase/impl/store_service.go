package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskhub/internal/delivery/context"
	"taskhub/internal/domain/repository"
	"taskhub/internal/usecase"

	"github.com/pkg/errors"
)

// storeTables lists the collections reported by Initialize, in display order.
var storeTables = []string{"users", "tasks"}

type storeService struct {
	inspector repository.StoreInspector
	logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(inspector repository.StoreInspector, logger *slog.Logger) usecase.StoreUsecase {
	return &storeService{inspector: inspector, logger: logger}
}

// Initialize creates any missing collection and reports the resulting state.
func (srv *storeService) Initialize(ctx context.Context) (*usecase.StoreStatus, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if err := srv.inspector.Init(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to initialize store")
	}

	status, err := srv.inspector.Status(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read store status")
	}

	logger.Info("Store initialized", slog.String("driver", srv.inspector.Driver()))

	return &usecase.StoreStatus{
		Driver: srv.inspector.Driver(),
		Tables: storeTables,
		Status: status,
	}, nil
}
