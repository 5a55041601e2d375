package ports

import (
	"context"
	"time"

	"loadmatrix/internal/core/domain/model/account"
	"loadmatrix/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for identity accounts.
type AccountRepository interface {
	// Add persists a new account to storage.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by its email address.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}

// ResetTokenRepository defines the persistence contract for password-reset
// tokens. Tokens are single-use: Consume atomically fetches and deletes.
type ResetTokenRepository interface {
	// Add persists a new reset token.
	Add(ctx context.Context, token *account.ResetToken) error

	// Consume retrieves a token by its value and deletes it in the same
	// transaction, so a token can only ever be redeemed once.
	Consume(ctx context.Context, token string) (*account.ResetToken, error)

	// DeleteExpired removes every token that expired before the cutoff and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int, error)
}
