// Package orderrepo implements order persistence over GORM, mapping between
// the Order aggregate and its relational representation.
package orderrepo

import (
	"time"

	"coffeequeue/internal/core/domain/model/order"
)

// OrderDTO is the database row for an order. The status text and creation
// time share a composite index so the barista queue query resolves without
// a full scan; created_at carries its own index for the history ordering.
type OrderDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	CustomerName string    `gorm:"type:varchar(120);not null"`
	Drink        string    `gorm:"type:varchar(120);not null"`
	Size         string    `gorm:"type:varchar(20);not null"`
	Notes        string    `gorm:"type:text;not null;default:''"`
	Status       string    `gorm:"type:varchar(20);not null;index:idx_orders_status_created_at,priority:1"`
	CreatedAt    time.Time `gorm:"not null;index:idx_orders_status_created_at,priority:2;index"`
}

// TableName overrides GORM's naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts the aggregate to its database representation.
// The status is stored as its wire text so rows stay readable and the
// queue's rank CASE can match on it directly.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID(),
		CustomerName: aggregate.CustomerName(),
		Drink:        aggregate.Drink(),
		Size:         aggregate.Size(),
		Notes:        aggregate.Notes(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain rehydrates the aggregate from a row, re-running all domain
// validation so corrupt data fails loudly instead of flowing downstream.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerName,
		dto.Drink,
		dto.Size,
		dto.Notes,
		status,
		dto.CreatedAt,
	)
}
