package commands

import (
	"errors"
	"strings"

	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrResetPasswordCommandIsNotConstructed = errors.New(
	"ResetPasswordCommand must be created via NewResetPasswordCommand constructor",
)

// ResetPasswordCommand represents redeeming a reset token for a new
// password. The new password arrives already hashed; hashing lives in the
// auth layer.
type ResetPasswordCommand struct { //nolint:recvcheck //using for validation
	token           string
	newPasswordHash string

	guard guard.ConstructorGuard
}

// NewResetPasswordCommand creates a command to redeem a reset token.
func NewResetPasswordCommand(token string, newPasswordHash string) (ResetPasswordCommand, error) {
	cmd := ResetPasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setToken(token),
		cmd.setNewPasswordHash(newPasswordHash),
	); err != nil {
		return ResetPasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetPasswordCommand) Validate() error {
	return c.guard.Validate(ErrResetPasswordCommandIsNotConstructed)
}

// Token returns the reset token being redeemed.
func (c ResetPasswordCommand) Token() string {
	return c.token
}

// NewPasswordHash returns the replacement password hash.
func (c ResetPasswordCommand) NewPasswordHash() string {
	return c.newPasswordHash
}

func (c *ResetPasswordCommand) setToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errs.NewValueIsRequiredError("token")
	}

	c.token = token
	return nil
}

func (c *ResetPasswordCommand) setNewPasswordHash(newPasswordHash string) error {
	if strings.TrimSpace(newPasswordHash) == "" {
		return errs.NewValueIsRequiredError("newPasswordHash")
	}

	c.newPasswordHash = newPasswordHash
	return nil
}
