package order

import (
	"fmt"

	"coffeequeue/internal/pkg/errs"
)

// Status represents the lifecycle stage of an order.
//
// The set is closed: New, InProgress and Done are the only values ever
// persisted or accepted from callers. Unlike a conventional state machine
// there are no forbidden transitions; any status may move to any other,
// including reopening a Done order. The counter is staffed by humans who
// need to correct mistakes without an undo mechanism, so the permissiveness
// is deliberate.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned at creation. Orders in this
	// status are waiting for the barista to pick them up.
	New

	// InProgress indicates the barista is working on the order.
	InProgress

	// Done indicates the order has been handed over. Conventionally
	// terminal, but not enforced.
	Done
)

// getStatusStrings returns the wire/storage representation of every Status,
// including Unknown for safe String conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		New:        "NEW",
		InProgress: "IN_PROGRESS",
		Done:       "DONE",
	}
}

// getValidStatusStrings returns only the members of the closed enumeration.
// Unknown is excluded to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "NEW",
		InProgress: "IN_PROGRESS",
		Done:       "DONE",
	}
}

// getQueueRanks returns the explicit sort rank of each valid status for the
// barista queue. The ranks are a deliberate lookup, not the enumeration's
// declaration order: the queue groups all NEW orders ahead of all
// IN_PROGRESS orders, with DONE last.
func getQueueRanks() map[Status]int {
	//nolint:exhaustive // Unknown never reaches a queue
	return map[Status]int{
		New:        0,
		InProgress: 1,
		Done:       2,
	}
}

// ParseStatus converts a wire-format string ("NEW", "IN_PROGRESS", "DONE")
// into a Status. It is the single point where untrusted status text enters
// the core; everything past it works with the typed enumeration.
//
// Returns:
//   - the parsed Status on success
//   - *errs.ValueIsInvalidError if raw is not a member of the enumeration
func ParseStatus(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if raw == str {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", raw),
	)
}

// Validate checks that the Status is a member of the closed enumeration.
// Unknown (0) and any out-of-range value are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status: "NEW",
// "IN_PROGRESS" or "DONE" for valid values, "UNKNOWN" otherwise.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// QueueRank returns the status tier used as the primary key of the barista
// queue sort (NEW=0, IN_PROGRESS=1, DONE=2). Invalid statuses rank after
// every valid tier so they can never shadow real work.
func (s Status) QueueRank() int {
	if rank, ok := getQueueRanks()[s]; ok {
		return rank
	}
	return len(getQueueRanks())
}
