package commands

import (
	"errors"
	"strings"

	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrRequestPasswordResetCommandIsNotConstructed = errors.New(
	"RequestPasswordResetCommand must be created via NewRequestPasswordResetCommand constructor",
)

// RequestPasswordResetCommand represents a user asking for a password-reset
// token by email.
type RequestPasswordResetCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewRequestPasswordResetCommand creates a command to issue a reset token.
func NewRequestPasswordResetCommand(email string) (RequestPasswordResetCommand, error) {
	if strings.TrimSpace(email) == "" {
		return RequestPasswordResetCommand{}, errs.NewValueIsRequiredError("email")
	}

	return RequestPasswordResetCommand{
		email: email,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPasswordResetCommand) Validate() error {
	return c.guard.Validate(ErrRequestPasswordResetCommandIsNotConstructed)
}

// Email returns the address of the account requesting the reset.
func (c RequestPasswordResetCommand) Email() string {
	return c.email
}
