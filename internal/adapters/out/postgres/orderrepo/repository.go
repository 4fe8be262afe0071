package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"coffeequeue/internal/core/domain/model/order"
	"coffeequeue/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository over db,
// which may be a transaction handle supplied by a unit of work.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts a new order and assigns the generated id back onto the
// aggregate. The aggregate must not have an id yet.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("order %d is already persisted", aggregate.ID()),
		)
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.AssignID(dto.ID)
}

// Update persists changes to an existing order. Only mutable columns are
// written; created_at stays immutable at the storage layer too.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.ID() == 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", errors.New("order has no assigned id"))
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("customer_name", "drink", "size", "notes", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	return nil
}

// Get retrieves an order by id.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
