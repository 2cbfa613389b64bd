// Package delivery defines the contract every transport front-end fulfils.
package delivery

import "context"

// Delivery is a serving surface (currently only HTTP) started at boot and
// stopped through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
