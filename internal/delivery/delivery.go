// Package delivery defines the contract every transport entrypoint
// fulfills so main can start them uniformly.
package delivery

import (
	"context"
	"time"
)

// DefaultShutdownTimeout bounds graceful shutdown on stop hooks.
const DefaultShutdownTimeout = 10 * time.Second

// Delivery is a transport that serves requests until its context or
// listener is torn down.
type Delivery interface {
	Serve(ctx context.Context) error
}
