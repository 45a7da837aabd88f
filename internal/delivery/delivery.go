// Package delivery defines the entry points through which the application
// serves traffic.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until the server stops or
// the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
