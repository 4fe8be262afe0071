// Package commands contains the business operations that modify order state.
// Implements the Command pattern for write operations: each command validates
// its inputs at construction, and its handler manages the transaction and
// persistence. The two commands (create and change status) are the only
// ways order records are ever mutated.
package commands

import (
	"context"

	"coffeequeue/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the database transaction lifecycle.
	// Ensures each write is atomic: it either fully applies or not at all.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order write operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new unit of work instances. Handlers take the
	// factory rather than a shared unit of work so concurrent commands get
	// isolated transactions.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
