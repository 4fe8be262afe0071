package queries

import (
	"errors"

	"coffeequeue/internal/core/domain/model/order"
	"coffeequeue/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves the order history, newest first, optionally
// narrowed to a single status tier. This backs the cashier's recent-orders
// view and the GET /api/orders endpoint.
type GetOrdersQuery struct {
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an unfiltered history query over all orders.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersQueryWithStatus creates a history query narrowed to one status
// tier. The status must be a member of the closed enumeration; callers
// holding untrusted text should go through order.ParseStatus first.
func NewGetOrdersQueryWithStatus(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		statusFilter: &status,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// StatusFilter returns the status tier to narrow to, or nil for all orders.
func (q GetOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}
