package repository

import "context"

// TableStatus reports whether a backing collection is usable.
type TableStatus string

const (
	TableStatusReady   TableStatus = "ready"
	TableStatusMissing TableStatus = "missing"
)

// StoreInspector exposes the health of the underlying record store.
type StoreInspector interface {
	// Init makes sure every collection exists. It is idempotent.
	Init(ctx context.Context) error

	// Status reports the state of each collection keyed by its name.
	Status(ctx context.Context) (map[string]TableStatus, error)

	// Driver names the backend, e.g. "document" or "sqlite".
	Driver() string
}
