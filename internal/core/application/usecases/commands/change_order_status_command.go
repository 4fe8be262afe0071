package commands

import (
	"errors"
	"fmt"

	"coffeequeue/internal/core/domain/model/order"
	"coffeequeue/internal/pkg/errs"
	"coffeequeue/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an existing order to
// a new lifecycle stage. The target status must be a member of the closed
// enumeration, but any member is reachable from any other: the barista can
// reopen a DONE order to correct a mistake.
//
// Example:
//
//	status, err := order.ParseStatus("IN_PROGRESS")
//	if err != nil {
//	    return err // status text outside the enumeration
//	}
//	cmd, err := NewChangeOrderStatusCommand(orderID, status)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates that the order id is positive and the status is a member of the
// enumeration. Existence of the order is checked by the handler against storage.
func NewChangeOrderStatusCommand(orderID int64, newStatus order.Status) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// NewStatus returns the target lifecycle stage.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive identifier", orderID))
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
