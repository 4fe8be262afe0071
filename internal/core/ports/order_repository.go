// Package ports defines the persistence contracts the core depends on.
// Adapters (currently the GORM/postgres implementation) satisfy these
// interfaces; the core never imports an adapter.
package ports

import (
	"context"

	"coffeequeue/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Each call is a single synchronous attempt against the backing store;
// storage failures propagate to the caller untouched.
type OrderRepository interface {
	// Add persists a new order and assigns its storage-generated id back
	// onto the aggregate. Exactly one record is inserted.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Returns an
	// errs.ObjectNotFoundError if the order's id is unknown to storage.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier. Returns an
	// errs.ObjectNotFoundError if no record with that id exists.
	Get(ctx context.Context, id int64) (*order.Order, error)
}

// UnitOfWork wraps repository access in an atomic scope. Every command
// handler obtains its repository through a UnitOfWork so a write either
// fully applies or not at all.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	OrderRepository() OrderRepository
}
