package commands

import (
	"errors"

	"loadmatrix/internal/pkg/guard"
)

var ErrPurgeExpiredTokensCommandIsNotConstructed = errors.New(
	"PurgeExpiredTokensCommand must be created via NewPurgeExpiredTokensCommand constructor",
)

// PurgeExpiredTokensCommand represents a cleanup pass over the reset-token
// store. Expired tokens are already unredeemable; the purge just keeps the
// table from growing.
type PurgeExpiredTokensCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeExpiredTokensCommand creates a purge command.
func NewPurgeExpiredTokensCommand() PurgeExpiredTokensCommand {
	return PurgeExpiredTokensCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c PurgeExpiredTokensCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredTokensCommandIsNotConstructed)
}
