package commands

import (
	"context"
	"time"

	"loadmatrix/internal/core/domain/model/account"
	"loadmatrix/internal/core/domain/model/kernel"
)

// RequestPasswordResetCommandHandler issues password-reset tokens. Tokens
// are persisted with a TTL so a reset survives a process restart and works
// against any instance. Delivering the token to the user (email) is a
// collaborator concern; the handler returns the token value to the caller.
type RequestPasswordResetCommandHandler struct {
	uowFactory AccountUoWFactory
	tokenTTL   time.Duration
}

// NewRequestPasswordResetCommandHandler creates a handler that issues tokens
// with the given TTL.
func NewRequestPasswordResetCommandHandler(uowFactory AccountUoWFactory, tokenTTL time.Duration) RequestPasswordResetCommandHandler {
	return RequestPasswordResetCommandHandler{
		uowFactory: uowFactory,
		tokenTTL:   tokenTTL,
	}
}

// Handle issues a fresh single-use token for the account behind the email.
func (h *RequestPasswordResetCommandHandler) Handle(ctx context.Context, cmd RequestPasswordResetCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requester, err := uow.AccountRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		return "", err
	}

	token, err := account.NewResetToken(kernel.NewUUID().String(), requester.ID(), h.tokenTTL)
	if err != nil {
		return "", err
	}

	if err = uow.ResetTokenRepository().Add(ctx, token); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return token.Token(), nil
}
