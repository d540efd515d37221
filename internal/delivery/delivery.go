// Package delivery contains the transports that expose the use cases.
package delivery

import "context"

// Delivery is a server started by the process entry point
type Delivery interface {
	// Serve blocks until the server stops
	Serve(ctx context.Context) error
}
