// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"loadmatrix/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest interface that covers the aggregates they
// touch, so tests only mock what a handler actually uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// ResetTokenRepoFactory provides access to the reset-token repository within a transaction.
	ResetTokenRepoFactory interface {
		ResetTokenRepository() ports.ResetTokenRepository
	}

	// OrderUoW manages transactions for order-only operations, such as the
	// request accept/reject/cancel handshake.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DriverUoW manages transactions for driver-only operations: location
	// reports, availability toggles and the liveness sweep.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// AccountUoW manages transactions for identity operations: blacklisting
	// and the password-reset flow.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
		ResetTokenRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// UoW manages transactions that span the order, driver, customer and
	// account aggregates. The assignment and delivery paths use it: they
	// re-read guard conditions and write several aggregates atomically.
	UoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		CustomerRepoFactory
		AccountRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
