package commands

import (
	"context"
)

// SetAccountBlacklistCommandHandler handles the admin's blacklist switch.
type SetAccountBlacklistCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewSetAccountBlacklistCommandHandler creates a handler for blacklisting.
func NewSetAccountBlacklistCommandHandler(uowFactory AccountUoWFactory) SetAccountBlacklistCommandHandler {
	return SetAccountBlacklistCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the account's blacklist flag.
func (h *SetAccountBlacklistCommandHandler) Handle(ctx context.Context, cmd SetAccountBlacklistCommand) error {
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

	target, err := uow.AccountRepository().Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if cmd.Blacklisted() {
		target.Blacklist()
	} else {
		target.Unblacklist()
	}

	if err = uow.AccountRepository().Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
