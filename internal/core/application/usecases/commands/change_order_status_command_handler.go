package commands

import (
	"context"

	"coffeequeue/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles order status transitions.
// Loads the order, applies the permissive status change and persists the
// result within a transaction. Concurrent transitions on the same order
// race by last-write-wins; the domain accepts that because a human
// re-checks state on the next screen refresh.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command and returns the updated order.
// Returns an errs.ObjectNotFoundError when the order id is unknown.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
