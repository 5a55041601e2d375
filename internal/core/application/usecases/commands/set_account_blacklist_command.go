package commands

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/guard"
)

var ErrSetAccountBlacklistCommandIsNotConstructed = errors.New(
	"SetAccountBlacklistCommand must be created via NewSetAccountBlacklistCommand constructor",
)

// SetAccountBlacklistCommand represents an admin blacklisting or restoring
// an account. A blacklisted driver drops out of matching immediately;
// in-flight orders are left to run their course.
type SetAccountBlacklistCommand struct { //nolint:recvcheck //using for validation
	accountID   kernel.UUID
	blacklisted bool

	guard guard.ConstructorGuard
}

// NewSetAccountBlacklistCommand creates a command to set the blacklist flag.
func NewSetAccountBlacklistCommand(accountID kernel.UUID, blacklisted bool) (SetAccountBlacklistCommand, error) {
	if err := accountID.Validate(); err != nil {
		return SetAccountBlacklistCommand{}, err
	}

	return SetAccountBlacklistCommand{
		accountID:   accountID,
		blacklisted: blacklisted,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAccountBlacklistCommand) Validate() error {
	return c.guard.Validate(ErrSetAccountBlacklistCommandIsNotConstructed)
}

// AccountID returns the identifier of the targeted account.
func (c SetAccountBlacklistCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Blacklisted returns the requested flag state.
func (c SetAccountBlacklistCommand) Blacklisted() bool {
	return c.blacklisted
}
