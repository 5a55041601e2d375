package account

import (
	"fmt"
	"strings"
	"time"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrResetTokenIsNotConstructed = fmt.Errorf("reset token is not constructed")

// ResetToken is a single-use password-reset credential. Tokens are persisted
// with an explicit expiry so they survive process restarts and work across
// instances, and the repository deletes a token the moment it is consumed.
type ResetToken struct {
	token     string
	accountID kernel.UUID
	expiresAt time.Time

	guard guard.ConstructorGuard
}

// NewResetToken creates a token for the given account that expires after ttl.
func NewResetToken(token string, accountID kernel.UUID, ttl time.Duration) (*ResetToken, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}
	if err := accountID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("accountID", err)
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}

	return &ResetToken{
		token:     token,
		accountID: accountID,
		expiresAt: time.Now().UTC().Add(ttl),

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreResetToken rebuilds a token from persistence.
func RestoreResetToken(token string, accountID kernel.UUID, expiresAt time.Time) *ResetToken {
	return &ResetToken{
		token:     token,
		accountID: accountID,
		expiresAt: expiresAt,

		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks that the ResetToken was created through a constructor.
func (t *ResetToken) Validate() error {
	return t.guard.Validate(ErrResetTokenIsNotConstructed)
}

func (t *ResetToken) Token() string          { return t.token }
func (t *ResetToken) AccountID() kernel.UUID { return t.accountID }
func (t *ResetToken) ExpiresAt() time.Time   { return t.expiresAt }

// IsExpired reports whether the token is past its expiry at the given time.
func (t *ResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.expiresAt)
}
