// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a long-running transport surface, an HTTP server or a ticker
// loop, started by the application container.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
