package driverrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"loadmatrix/internal/core/domain/model/driver"
	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a driver by ID holding a row lock until the
// surrounding transaction ends. Callers re-check assignability behind the
// lock so two dispatchers cannot hand the same driver two orders.
func (r *GormDriverRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	locked := r.db.Clauses(clause.Locking{Strength: "UPDATE"})
	return r.get(ctx, locked, id)
}

func (r *GormDriverRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAccount retrieves the driver profile behind an account.
func (r *GormDriverRepository) GetByAccount(ctx context.Context, accountID kernel.UUID) (*driver.Driver, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "account_id = ?", accountID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", accountID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOnline retrieves every driver currently on shift and reporting.
func (r *GormDriverRepository) GetAllOnline(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "is_online").Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllStale retrieves online drivers whose last position report is older
// than the cutoff. Drivers who never reported are not stale, only silent
// ones are.
func (r *GormDriverRepository) GetAllStale(ctx context.Context, lastSeenBefore time.Time) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "is_online AND last_seen_at IS NOT NULL AND last_seen_at < ?", lastSeenBefore).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []DriverDTO) ([]*driver.Driver, error) {
	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}
