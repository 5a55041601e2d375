// Package customerrepo persists the customer aggregate.
package customerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"loadmatrix/internal/core/domain/model/customer"
	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
)

// CustomerDTO is the database shape of a customer profile and its running
// ledger counters.
type CustomerDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Address       string
	TotalOrders   int
	TotalSpent    float64
	LoyaltyPoints int
	LastOrderDate *time.Time
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:            aggregate.ID().Bytes(),
		AccountID:     aggregate.AccountID().Bytes(),
		Address:       aggregate.Address(),
		TotalOrders:   aggregate.TotalOrders(),
		TotalSpent:    aggregate.TotalSpent(),
		LoyaltyPoints: aggregate.LoyaltyPoints(),
		LastOrderDate: aggregate.LastOrderDate(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, accountID, dto.Address,
		dto.TotalOrders, dto.TotalSpent, dto.LoyaltyPoints, dto.LastOrderDate), nil
}

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add saves a new customer to the database.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing customer to the database.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAccount retrieves the customer profile behind an account.
func (r *GormCustomerRepository) GetByAccount(ctx context.Context, accountID kernel.UUID) (*customer.Customer, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "account_id = ?", accountID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", accountID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
