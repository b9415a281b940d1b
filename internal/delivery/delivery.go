// Package delivery holds the inbound adapters of taskhub.
package delivery

import "context"

// Delivery is a long-running inbound server started by the application lifecycle.
type Delivery interface {
	// Serve blocks until the server stops. A graceful shutdown is not an error.
	Serve(ctx context.Context) error
}
