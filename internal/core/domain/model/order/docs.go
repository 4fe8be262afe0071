// Package order contains the Order aggregate and its Status enumeration,
// the single source of truth for order state in the coffeequeue core.
//
// An order is created once (cashier or API), mutated only via status change
// (barista or API) and never deleted. The package owns all invariants:
// required fields, the closed status set and the immutability of id and
// creation timestamp. Status text from the outside world is parsed exactly
// once at the boundary via ParseStatus; everything internal works with the
// typed Status value.
package order
