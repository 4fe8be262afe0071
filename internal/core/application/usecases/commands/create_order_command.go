package commands

import (
	"errors"
	"strings"

	"coffeequeue/internal/pkg/errs"
	"coffeequeue/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a cashier's (or API client's) request to
// register a new drink order. Encapsulates the customer name, the drink,
// its size and optional preparation notes.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Alex", "Latte", "Large", "Oat milk")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	drink        string
	size         string
	notes        string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Inputs are trimmed; customer name, drink and size must be non-empty after
// trimming. All missing-field errors are joined so a caller sees every
// problem at once.
func NewCreateOrderCommand(customerName, drink, size, notes string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setDrink(drink),
		cmd.setSize(size),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns who the drink is for.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Drink returns the requested drink.
func (c CreateOrderCommand) Drink() string {
	return c.drink
}

// Size returns the requested size.
func (c CreateOrderCommand) Size() string {
	return c.size
}

// Notes returns optional preparation remarks, possibly empty.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setDrink(drink string) error {
	drink = strings.TrimSpace(drink)
	if drink == "" {
		return errs.NewValueIsRequiredError("drink")
	}

	c.drink = drink
	return nil
}

func (c *CreateOrderCommand) setSize(size string) error {
	size = strings.TrimSpace(size)
	if size == "" {
		return errs.NewValueIsRequiredError("size")
	}

	c.size = size
	return nil
}
