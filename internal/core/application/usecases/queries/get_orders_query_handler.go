package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order history from the database.
//
// Ordering is strictly newest-first by creation time; ties between orders
// created in the same instant break deterministically on the descending id.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetOrdersQuery())
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the history query, applying the status filter if present.
// Returns an empty slice, not nil, when nothing matches.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT ` + orderColumns + `
		FROM orders
	`
	args := make([]any, 0, 1)
	if filter := query.StatusFilter(); filter != nil {
		sqlQuery += ` WHERE status = ?`
		args = append(args, filter.String())
	}
	sqlQuery += ` ORDER BY created_at DESC, id DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderRows(rows)
}
