package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"coffeequeue/internal/pkg/errs"
	"coffeequeue/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a single customer drink request tracked through its
// fulfillment lifecycle. It is the sole aggregate of the system.
//
// Order maintains these invariants:
//   - customer name, drink and size are never empty once the order exists
//   - status is always a member of the closed enumeration
//   - createdAt is set once at creation and never changes
//   - id is assigned exactly once by storage and never reused or changed
//
// Private fields keep the invariants enforceable; all mutation goes through
// validated methods. Creation happens only via NewOrder (fresh orders) or
// RestoreOrder (rehydration from persistence).
type Order struct {
	// id is the storage-assigned identifier, 0 until the order is persisted
	id int64

	// customerName is who the drink is for
	customerName string

	// drink is what to make
	drink string

	// size is free-form in this version, not a closed enumeration
	size string

	// notes carries optional preparation remarks, may be empty
	notes string

	// status is the current lifecycle stage
	status Status

	// createdAt is the UTC creation instant, the sole ordering key within a tier
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a fresh order in New status with createdAt set to the
// current UTC instant. All text inputs are trimmed before validation; the
// three required fields must be non-empty after trimming.
//
// The returned order has no id yet; storage assigns one via AssignID when
// the record is inserted.
//
// Returns:
//   - *Order on success
//   - joined *errs.ValueIsRequiredError values, one per missing field
func NewOrder(customerName, drink, size, notes string) (*Order, error) {
	o := &Order{
		status:    New,
		createdAt: time.Now().UTC(),
		notes:     strings.TrimSpace(notes),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setDrink(drink),
		o.setSize(size),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an order from persistence. Unlike NewOrder it
// requires an already-assigned id, an explicit status and the original
// creation timestamp. All aggregate invariants are re-checked so corrupt
// rows cannot produce an invalid aggregate.
func RestoreOrder(id int64, customerName, drink, size, notes string, status Status, createdAt time.Time) (*Order, error) {
	o := &Order{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setCustomerName(customerName),
		o.setDrink(drink),
		o.setSize(size),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
		o.AssignID(id),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder, preventing direct struct instantiation from
// bypassing validation. Repositories call it before persisting.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier. Orders without an assigned id
// are never equal to anything.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the storage-assigned identifier, or 0 if not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerName returns who the drink is for.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Drink returns the requested drink.
func (o *Order) Drink() string {
	return o.drink
}

// Size returns the requested size.
func (o *Order) Size() string {
	return o.size
}

// Notes returns optional preparation remarks, possibly empty.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current lifecycle stage of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the UTC creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignID records the identifier generated by storage on first insert.
//
// The id is immutable: assigning over an existing id, or assigning a
// non-positive id, fails.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a positive identifier", id))
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("order already has id %d", o.id))
	}

	o.id = id
	return nil
}

// ChangeStatus moves the order to newStatus.
//
// Only membership in the closed enumeration is checked: any valid status may
// transition to any other valid status, including reopening a Done order.
// Concurrent changes to the same order race by last-write-wins.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setCustomerName validates and sets the required customer name.
func (o *Order) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	o.customerName = customerName
	return nil
}

// setDrink validates and sets the required drink.
func (o *Order) setDrink(drink string) error {
	drink = strings.TrimSpace(drink)
	if drink == "" {
		return errs.NewValueIsRequiredError("drink")
	}
	o.drink = drink
	return nil
}

// setSize validates and sets the required size.
func (o *Order) setSize(size string) error {
	size = strings.TrimSpace(size)
	if size == "" {
		return errs.NewValueIsRequiredError("size")
	}
	o.size = size
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCreatedAt sets the creation timestamp during restoration.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	o.createdAt = createdAt
	return nil
}
