package http

import (
	"time"

	"coffeequeue/internal/core/application/usecases/queries"
	"coffeequeue/internal/core/domain/model/order"
)

// createOrderRequest is the body of POST /api/orders.
type createOrderRequest struct {
	CustomerName string `json:"customer_name"`
	Drink        string `json:"drink"`
	Size         string `json:"size"`
	Notes        string `json:"notes"`
}

// changeOrderStatusRequest is the body of PATCH /api/orders/{id}.
type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

// orderJSON is the wire shape of an order. created_at marshals as RFC 3339
// and status as its text value.
type orderJSON struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	Drink        string    `json:"drink"`
	Size         string    `json:"size"`
	Notes        string    `json:"notes"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// queueJSON is the wire shape of the barista queue view.
type queueJSON struct {
	Active     []orderJSON `json:"active"`
	RecentDone []orderJSON `json:"recent_done"`
}

// errorJSON is the wire shape of every error response.
type errorJSON struct {
	Error string `json:"error"`
}

func orderFromAggregate(o *order.Order) orderJSON {
	return orderJSON{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		Drink:        o.Drink(),
		Size:         o.Size(),
		Notes:        o.Notes(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
	}
}

func orderFromResponse(resp queries.OrderResponse) orderJSON {
	return orderJSON{
		ID:           resp.ID,
		CustomerName: resp.CustomerName,
		Drink:        resp.Drink,
		Size:         resp.Size,
		Notes:        resp.Notes,
		Status:       resp.Status.String(),
		CreatedAt:    resp.CreatedAt,
	}
}

func ordersFromResponses(resps []queries.OrderResponse) []orderJSON {
	out := make([]orderJSON, len(resps))
	for i, resp := range resps {
		out[i] = orderFromResponse(resp)
	}
	return out
}
