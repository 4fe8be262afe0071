package queries

import (
	"context"

	"coffeequeue/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetQueueQueryHandler builds the barista queue from the database.
//
// The active sequence uses a deliberate two-key sort: status rank first
// (NEW=0 before IN_PROGRESS=1, per order.Status.QueueRank), creation time
// ascending within a tier, with the id as the deterministic tie-breaker for
// orders created in the same instant. The rank is spelled out in the CASE
// expression rather than relying on any storage collation of the status text.
type GetQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetQueueQueryHandler creates a handler for barista queue queries.
// Requires a GORM database connection for query execution.
func NewGetQueueQueryHandler(db *gorm.DB) GetQueueQueryHandler {
	return GetQueueQueryHandler{db: db}
}

// Handle executes both halves of the queue view. The two reads are separate
// snapshots; the view is allowed to be slightly stale, never blocking writers.
func (h GetQueueQueryHandler) Handle(ctx context.Context, query GetQueueQuery) (GetQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQueueQueryResponse{}, err
	}

	active, err := h.activeOrders(ctx)
	if err != nil {
		return GetQueueQueryResponse{}, err
	}

	recentDone, err := h.recentDoneOrders(ctx)
	if err != nil {
		return GetQueueQueryResponse{}, err
	}

	return GetQueueQueryResponse{
		Active:     active,
		RecentDone: recentDone,
	}, nil
}

func (h GetQueueQueryHandler) activeOrders(ctx context.Context) ([]OrderResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status != ?
		ORDER BY
			CASE status WHEN ? THEN 0 WHEN ? THEN 1 ELSE 2 END,
			created_at ASC,
			id ASC
	`, order.Done.String(), order.New.String(), order.InProgress.String()).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderRows(rows)
}

func (h GetQueueQueryHandler) recentDoneOrders(ctx context.Context) ([]OrderResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, order.Done.String(), RecentDoneLimit).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderRows(rows)
}
