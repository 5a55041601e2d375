package ports

import (
	"context"

	"loadmatrix/internal/core/domain/model/customer"
	"loadmatrix/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByAccount retrieves the customer profile linked to an identity account.
	GetByAccount(ctx context.Context, accountID kernel.UUID) (*customer.Customer, error)
}
