package document

import (
	"context"

	"taskhub/config"
	"taskhub/internal/domain/repository"
)

// storeInspector reports on the snapshot object.
type storeInspector struct {
	store *Store
}

// NewStoreInspector is the constructor for storeInspector.
func NewStoreInspector(store *Store) repository.StoreInspector {
	return &storeInspector{store: store}
}

// Init writes the snapshot, creating an empty one when none exists yet.
func (i *storeInspector) Init(ctx context.Context) error {
	return i.store.update(ctx, func(*snapshot) error { return nil })
}

// Status marks both collections ready once the snapshot object exists.
func (i *storeInspector) Status(ctx context.Context) (map[string]repository.TableStatus, error) {
	state := repository.TableStatusMissing

	ok, err := i.store.exists(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		state = repository.TableStatusReady
	}

	return map[string]repository.TableStatus{
		"users": state,
		"tasks": state,
	}, nil
}

func (i *storeInspector) Driver() string {
	return config.StoreDriverDocument
}
