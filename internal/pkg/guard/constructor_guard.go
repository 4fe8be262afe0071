// Package guard provides a small defensive-programming helper that ensures
// domain objects are only created through their designated constructors.
//
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable: the guard's flag is only set by NewConstructorGuard, so any
// object that bypassed its constructor fails Validate. This keeps commands,
// queries and aggregates from being used in a half-initialized state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied and the object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
//
// Example:
//
//	type CreateOrderCommand struct {
//	    customerName string
//	    guard        guard.ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(name string) (CreateOrderCommand, error) {
//	    return CreateOrderCommand{customerName: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object went through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
