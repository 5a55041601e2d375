// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work and the outbound
// notifier. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using optimistic
	// concurrency: the write only applies if the stored version still matches
	// the version the aggregate was loaded with, and fails with a
	// ConcurrencyConflictError otherwise.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInPendingStatus retrieves the open pool: unassigned orders
	// waiting for any driver to claim them, oldest first.
	GetAllInPendingStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllByCustomer retrieves every order placed by the given customer,
	// newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// CountActiveByDriver counts the orders currently occupying the given
	// driver (status requested, accepted, assigned, picked or delivering).
	// Assignment paths call it inside the assigning transaction.
	CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int, error)

	// CountByStatus returns the number of orders per lifecycle status.
	CountByStatus(ctx context.Context) (map[order.Status]int, error)
}
