package queries

import (
	"errors"

	"coffeequeue/internal/pkg/guard"
)

var (
	ErrGetQueueQueryIsNotConstructed = errors.New(
		"GetQueueQuery must be created via NewGetQueueQuery constructor",
	)
)

// RecentDoneLimit caps the completed-orders tail of the barista queue so the
// barista can glance at finished work without scanning unbounded history.
const RecentDoneLimit = 20

// GetQueueQuery retrieves the barista-facing view of the counter:
// every actionable order plus the most recently completed ones.
type GetQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetQueueQuery creates the parameterless barista queue query.
func NewGetQueueQuery() GetQueueQuery {
	return GetQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetQueueQueryIsNotConstructed)
}

// GetQueueQueryResponse is the two-part barista view.
//
// Active holds every order that is not DONE, sorted by the two-key order
// (status rank, created_at ascending): all NEW orders grouped ahead of all
// IN_PROGRESS orders, each tier internally oldest-first. RecentDone holds
// the DONE orders, newest first, truncated to RecentDoneLimit.
type GetQueueQueryResponse struct {
	Active     []OrderResponse
	RecentDone []OrderResponse
}
