package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
//
// Every state transition that reads-then-writes order or driver state runs
// inside a single UnitOfWork: the handler begins the transaction, re-reads
// its guard conditions (order status, driver eligibility, active-order count)
// through the repositories bound to it, performs the writes and commits.
// A concurrent transaction that invalidated the guards surfaces as a
// conflict error at write or commit time.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// CustomerRepository returns a CustomerRepository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// AccountRepository returns an AccountRepository bound to the current transaction.
	AccountRepository() AccountRepository

	// ResetTokenRepository returns a ResetTokenRepository bound to the current transaction.
	ResetTokenRepository() ResetTokenRepository
}
