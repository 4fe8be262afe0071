package order_test

import (
	"fmt"
	"testing"

	"coffeequeue/internal/core/domain/model/order"
	"coffeequeue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.New))
		assert.Equal(t, 2, int(order.InProgress))
		assert.Equal(t, 3, int(order.Done))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.New,
			order.InProgress,
			order.Done,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(4),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire representation", func(t *testing.T) {
		assert.Equal(t, "NEW", order.New.String())
		assert.Equal(t, "IN_PROGRESS", order.InProgress.String())
		assert.Equal(t, "DONE", order.Done.String())
	})

	t.Run("should return UNKNOWN for invalid values", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.Unknown.String())
		assert.Equal(t, "UNKNOWN", order.Status(42).String())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every member of the enumeration", func(t *testing.T) {
		cases := map[string]order.Status{
			"NEW":         order.New,
			"IN_PROGRESS": order.InProgress,
			"DONE":        order.Done,
		}

		for raw, want := range cases {
			t.Run(fmt.Sprintf("should parse %s", raw), func(t *testing.T) {
				got, err := order.ParseStatus(raw)

				require.NoError(t, err)
				assert.Equal(t, want, got)
			})
		}
	})

	t.Run("should reject strings outside the enumeration", func(t *testing.T) {
		invalid := []string{"", "CANCELLED", "new", "Done", " NEW", "NEW "}

		for _, raw := range invalid {
			t.Run(fmt.Sprintf("should reject %q", raw), func(t *testing.T) {
				got, err := order.ParseStatus(raw)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Equal(t, order.Unknown, got)
			})
		}
	})
}

func TestStatus_QueueRank(t *testing.T) {
	t.Run("should rank tiers explicitly", func(t *testing.T) {
		assert.Equal(t, 0, order.New.QueueRank())
		assert.Equal(t, 1, order.InProgress.QueueRank())
		assert.Equal(t, 2, order.Done.QueueRank())
	})

	t.Run("should rank invalid statuses after every tier", func(t *testing.T) {
		assert.Greater(t, order.Unknown.QueueRank(), order.Done.QueueRank())
		assert.Greater(t, order.Status(42).QueueRank(), order.Done.QueueRank())
	})
}
