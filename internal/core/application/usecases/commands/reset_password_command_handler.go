package commands

import (
	"context"
	"time"

	"loadmatrix/internal/pkg/errs"
)

// ResetPasswordCommandHandler redeems a reset token. Consuming the token
// deletes it in the same transaction as the password change, so a token can
// only ever be used once even under concurrent redemption attempts.
type ResetPasswordCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewResetPasswordCommandHandler creates a handler for token redemption.
func NewResetPasswordCommandHandler(uowFactory AccountUoWFactory) ResetPasswordCommandHandler {
	return ResetPasswordCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle redeems the token and replaces the account's password hash.
func (h *ResetPasswordCommandHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	token, err := uow.ResetTokenRepository().Consume(ctx, cmd.Token())
	if err != nil {
		return err
	}

	if token.IsExpired(time.Now().UTC()) {
		return errs.NewStateConflictError("reset token expired")
	}

	holder, err := uow.AccountRepository().Get(ctx, token.AccountID())
	if err != nil {
		return err
	}

	if err = holder.ChangePassword(cmd.NewPasswordHash()); err != nil {
		return err
	}

	if err = uow.AccountRepository().Update(ctx, holder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
