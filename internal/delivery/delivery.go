// Package delivery defines the contract every transport entrypoint
// (HTTP server, background worker) fulfills so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running entrypoint of the application.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
