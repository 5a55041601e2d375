// Package accountrepo persists the account aggregate. Email uniqueness is
// enforced by the database and surfaced as a state conflict.
package accountrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"loadmatrix/internal/core/domain/model/account"
	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
)

const uniqueViolationCode = "23505"

// AccountDTO is the database shape of an account.
type AccountDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email         string    `gorm:"uniqueIndex"`
	Phone         string
	FullName      string
	PasswordHash  string
	Role          string
	IsActive      bool
	IsBlacklisted bool
}

// TableName overrides GORM's default naming to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:            aggregate.ID().Bytes(),
		Email:         aggregate.Email(),
		Phone:         aggregate.Phone(),
		FullName:      aggregate.FullName(),
		PasswordHash:  aggregate.PasswordHash(),
		Role:          aggregate.Role().String(),
		IsActive:      aggregate.IsActive(),
		IsBlacklisted: aggregate.IsBlacklisted(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Email, dto.Phone, dto.FullName, dto.PasswordHash,
		role, dto.IsActive, dto.IsBlacklisted), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// GormAccountRepository implements ports.AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add saves a new account. A duplicate email is a state conflict, not an
// infrastructure error.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewStateConflictErrorWithCause("email already registered", err)
		}
		return err
	}

	return nil
}

// Update saves an existing account to the database.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves an account by its login email.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
