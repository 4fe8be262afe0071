package queries

import (
	"errors"
	"fmt"

	"coffeequeue/internal/pkg/errs"
	"coffeequeue/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by its identifier.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order. The id must be positive;
// whether it exists is decided by the handler against storage.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("%d is not a positive identifier", orderID),
		)
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}
