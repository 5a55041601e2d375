package ports

import (
	"context"
	"time"

	"loadmatrix/internal/core/domain/model/driver"
	"loadmatrix/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetForUpdate retrieves a driver and locks its row for the remainder of
	// the transaction. Assignment paths use it so that two concurrent
	// assignments to the same driver serialize on the row lock before the
	// active-order count is re-checked.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByAccount retrieves the driver profile linked to an identity account.
	GetByAccount(ctx context.Context, accountID kernel.UUID) (*driver.Driver, error)

	// GetAllOnline retrieves every driver currently marked online.
	GetAllOnline(ctx context.Context) ([]*driver.Driver, error)

	// GetAllStale retrieves online drivers whose last position report is
	// older than the cutoff. The liveness sweep marks them offline.
	GetAllStale(ctx context.Context, lastSeenBefore time.Time) ([]*driver.Driver, error)
}
