// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is one serving surface (HTTP server, background worker) managed by
// the application lifecycle.
type Delivery interface {
	// Serve blocks until the surface stops or the context is cancelled.
	Serve(ctx context.Context) error
}
