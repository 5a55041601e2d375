// Package postgres provides the GORM-based Unit of Work implementation.
// A unit of work owns one database transaction; the repositories it hands
// out are bound to that transaction, so a handler's reads, guard re-checks
// and writes all commit or roll back together.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"loadmatrix/internal/adapters/out/postgres/accountrepo"
	"loadmatrix/internal/adapters/out/postgres/customerrepo"
	"loadmatrix/internal/adapters/out/postgres/driverrepo"
	"loadmatrix/internal/adapters/out/postgres/orderrepo"
	"loadmatrix/internal/adapters/out/postgres/tokenrepo"
	"loadmatrix/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances on a shared GORM
// connection pool. Each business operation gets a fresh instance so
// concurrent handlers never share transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for a single business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories. Begin is idempotent; Commit and Rollback close the
// transaction, after which the instance must not be reused.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling Begin on an already-open unit of
// work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Handlers call it in a defer, so after
// a successful Commit it returns gorm.ErrInvalidTransaction and the defer
// ignores it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// DriverRepository returns a driver repository bound to the current transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn())
}

// CustomerRepository returns a customer repository bound to the current transaction.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn())
}

// AccountRepository returns an account repository bound to the current transaction.
func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn())
}

// ResetTokenRepository returns a reset token repository bound to the current transaction.
func (uow *GormUnitOfWork) ResetTokenRepository() ports.ResetTokenRepository {
	return tokenrepo.NewGormResetTokenRepository(uow.conn())
}
