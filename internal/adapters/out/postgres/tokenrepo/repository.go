// Package tokenrepo persists password-reset tokens. Tokens are single use:
// reading one through Consume deletes it in the same statement scope, so the
// caller's transaction either redeems the token or gives it back on rollback.
package tokenrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"loadmatrix/internal/core/domain/model/account"
	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
)

// ResetTokenDTO is the database shape of a password-reset token.
type ResetTokenDTO struct {
	Token     string    `gorm:"primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	ExpiresAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "reset_tokens".
func (ResetTokenDTO) TableName() string {
	return "reset_tokens"
}

func fromDomain(token *account.ResetToken) ResetTokenDTO {
	return ResetTokenDTO{
		Token:     token.Token(),
		AccountID: token.AccountID().Bytes(),
		ExpiresAt: token.ExpiresAt(),
	}
}

func toDomain(dto ResetTokenDTO) (*account.ResetToken, error) {
	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreResetToken(dto.Token, accountID, dto.ExpiresAt), nil
}

// GormResetTokenRepository implements ports.ResetTokenRepository using GORM.
type GormResetTokenRepository struct {
	db *gorm.DB
}

// NewGormResetTokenRepository creates a new GORM reset token repository.
func NewGormResetTokenRepository(db *gorm.DB) *GormResetTokenRepository {
	return &GormResetTokenRepository{db: db}
}

// Add saves a freshly issued token.
func (r *GormResetTokenRepository) Add(ctx context.Context, token *account.ResetToken) error {
	if err := token.Validate(); err != nil {
		return err
	}

	dto := fromDomain(token)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Consume retrieves the token and deletes it. An unknown token is reported
// as not found; expiry is the caller's check because the caller owns the
// clock.
func (r *GormResetTokenRepository) Consume(ctx context.Context, token string) (*account.ResetToken, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}

	var dto ResetTokenDTO
	if err := r.db.WithContext(ctx).First(&dto, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reset token", token)
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&ResetTokenDTO{}, "token = ?", token).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// DeleteExpired removes every token past its expiry and reports how many
// were removed.
func (r *GormResetTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	result := r.db.WithContext(ctx).Delete(&ResetTokenDTO{}, "expires_at < ?", before)
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}
