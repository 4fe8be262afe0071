// Package queries contains the read operations of the core: fetching a
// single order, the cashier's recent-history list and the barista queue.
// Queries bypass the aggregate and read through the database connection
// directly with raw SQL: they are snapshots that never block writers and
// never mutate state.
package queries

import (
	"database/sql"
	"time"

	"coffeequeue/internal/core/domain/model/order"
)

// OrderResponse is the read-model row shared by all order queries.
// Status is carried as the typed enumeration; adapters render its wire text.
type OrderResponse struct {
	ID           int64
	CustomerName string
	Drink        string
	Size         string
	Notes        string
	Status       order.Status
	CreatedAt    time.Time
}

// orderColumns is the projection used by every order query.
const orderColumns = `id, customer_name, drink, size, notes, status, created_at`

// scanOrderRows drains rows of the orderColumns projection into responses.
// The stored status text is parsed back into the enumeration so a corrupt
// row surfaces as an error instead of leaking an unknown status.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var resp OrderResponse
		var statusRaw string

		if err := rows.Scan(
			&resp.ID,
			&resp.CustomerName,
			&resp.Drink,
			&resp.Size,
			&resp.Notes,
			&statusRaw,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		status, err := order.ParseStatus(statusRaw)
		if err != nil {
			return nil, err
		}
		resp.Status = status

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
