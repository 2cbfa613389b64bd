package repository

import "context"

// StoreHealth reports whether the backing store is reachable.
type StoreHealth interface {
	Ping(ctx context.Context) error
}
