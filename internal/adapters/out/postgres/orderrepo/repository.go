package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
	"loadmatrix/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order. The write carries the version the
// aggregate was loaded at and bumps it by one; a zero-row update means a
// concurrent writer got there first and surfaces as a concurrency conflict.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("order " + aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInPendingStatus retrieves the open pool, oldest first.
func (r *GormOrderRepository) GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "status = ?", order.StatusPending.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByCustomer retrieves a customer's orders, newest first.
func (r *GormOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountActiveByDriver counts the driver's orders in an active status.
func (r *GormOrderRepository) CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int, error) {
	if err := driverID.Validate(); err != nil {
		return 0, err
	}

	active := order.ActiveStatuses()
	names := make([]string, 0, len(active))
	for _, status := range active {
		names = append(names, status.String())
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("driver_id = ? AND status IN ?", driverID.Bytes(), names).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// CountByStatus counts orders grouped by lifecycle status.
func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[order.Status]int)
	for rows.Next() {
		var name string
		var total int
		if err = rows.Scan(&name, &total); err != nil {
			return nil, err
		}

		status, statusErr := order.StatusFromString(name)
		if statusErr != nil {
			return nil, statusErr
		}
		counts[status] = total
	}

	return counts, rows.Err()
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
