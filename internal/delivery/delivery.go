// Package delivery defines the contract every transport frontend satisfies.
package delivery

import "context"

// Delivery is a transport that serves the application until the context ends.
type Delivery interface {
	Serve(ctx context.Context) error
}
