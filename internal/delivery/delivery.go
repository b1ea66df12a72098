// Package delivery defines the contract each transport (HTTP, workers)
// implements so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport endpoint managed by the application
// lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
