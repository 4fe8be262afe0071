// Package postgres provides the GORM-based persistence adapter: a Unit of
// Work wrapping gorm transactions plus the order repository beneath it.
//
// Every command handler obtains its repository through a UnitOfWork, so a
// write either fully applies or not at all and concurrent callers never
// observe a partially written order. Each UnitOfWork instance owns its own
// transaction; concurrent operations must use separate instances, which the
// factory guarantees.
package postgres

import (
	"context"

	"coffeequeue/internal/adapters/out/postgres/orderrepo"
	"coffeequeue/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances bound to one database
// handle. The handle is opened once at process start and shared; each
// created unit of work gets fresh transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory over an open GORM connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a single database transaction for one business
// operation. Repository access before Begin (or after Commit/Rollback) runs
// against the main connection; between Begin and Commit it runs inside the
// transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling Begin with a transaction already open
// is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the open transaction. Returns gorm.ErrInvalidTransaction
// if none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the open transaction. Returns gorm.ErrInvalidTransaction
// if none is active, which makes deferred rollbacks after a successful
// commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns the order repository bound to the current
// transaction if one is active, otherwise to the main connection.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db)
}
