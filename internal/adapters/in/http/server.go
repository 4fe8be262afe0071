// Package http exposes the order store over a JSON API. It is a thin
// adapter: requests are parsed and validated at this boundary, then handed
// to command and query handlers; domain errors are translated back into the
// `{"error": "..."}` responses clients expect.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"coffeequeue/internal/core/application/usecases/commands"
	"coffeequeue/internal/core/application/usecases/queries"
	"coffeequeue/internal/core/domain/model/order"
	"coffeequeue/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrderHandler  queries.GetOrderQueryHandler
	getOrdersHandler queries.GetOrdersQueryHandler
	getQueueHandler  queries.GetQueueQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getQueueHandler queries.GetQueueQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		getOrdersHandler:         getOrdersHandler,
		getQueueHandler:          getQueueHandler,
	}
}

// CreateOrder handles POST /api/orders.
//
//	@Summary	Create a new order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body	createOrderRequest	true	"order to create"
//	@Success	201
//	@Failure	400
//	@Router		/api/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON{Error: "invalid request body"})
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerName, req.Drink, req.Size, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrders handles GET /api/orders with an optional status filter.
//
//	@Summary	List orders, newest first
//	@Tags		orders
//	@Produce	json
//	@Param		status	query	string	false	"status filter (NEW, IN_PROGRESS, DONE)"
//	@Success	200
//	@Failure	400
//	@Router		/api/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, errorJSON{Error: "invalid status"})
		}

		query, err = queries.NewGetOrdersQueryWithStatus(status)
		if err != nil {
			return writeError(ctx, err)
		}
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(orders))
}

// GetOrder handles GET /api/orders/:id.
//
//	@Summary	Fetch a single order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path	integer	true	"order id"
//	@Success	200
//	@Failure	404
//	@Router		/api/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorJSON{Error: "order not found"})
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorJSON{Error: "order not found"})
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(found))
}

// ChangeOrderStatus handles PATCH /api/orders/:id.
//
//	@Summary	Transition an order to a new status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path	integer						true	"order id"
//	@Param		status	body	changeOrderStatusRequest	true	"target status"
//	@Success	200
//	@Failure	400
//	@Failure	404
//	@Router		/api/orders/{id} [patch]
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, errorJSON{Error: "order not found"})
	}

	var req changeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON{Error: "invalid request body"})
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON{Error: "invalid status"})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// GetQueue handles GET /api/queue, the barista-facing view.
//
//	@Summary	Barista queue: actionable orders plus recent completions
//	@Tags		queue
//	@Produce	json
//	@Success	200
//	@Router		/api/queue [get]
func (s *Server) GetQueue(ctx echo.Context) error {
	resp, err := s.getQueueHandler.Handle(ctx.Request().Context(), queries.NewGetQueueQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queueJSON{
		Active:     ordersFromResponses(resp.Active),
		RecentDone: ordersFromResponses(resp.RecentDone),
	})
}

// Healthz handles GET /healthz, a trivial liveness probe with no
// dependency checks.
func (s *Server) Healthz(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "OK")
}

func parseOrderID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

// writeError translates core errors into the JSON error contract:
// missing objects map to 404, validation failures to 400, anything else
// (storage and the like) to an opaque 500.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorJSON{Error: "order not found"})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, errorJSON{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorJSON{Error: "internal error"})
	}
}
