package queries

import (
	"context"

	"coffeequeue/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler fetches a single order row from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an errs.ObjectNotFoundError when no
// record with the requested id exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}

	orders, err := scanOrderRows(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return orders[0], nil
}
