package customer

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loadmatrix/internal/core/domain/model/kernel"
)

func TestNewCustomer(t *testing.T) {
	t.Run("starts with an empty ledger", func(t *testing.T) {
		c, err := NewCustomer(kernel.NewUUID(), kernel.NewUUID(), "14 Residency Road")

		require.NoError(t, err)
		assert.NoError(t, c.Validate())
		assert.Equal(t, 0, c.TotalOrders())
		assert.Equal(t, 0.0, c.TotalSpent())
		assert.Equal(t, 0, c.LoyaltyPoints())
		assert.Nil(t, c.LastOrderDate())
	})

	t.Run("requires constructed ids", func(t *testing.T) {
		_, err := NewCustomer(kernel.UUID{}, kernel.NewUUID(), "")
		assert.Error(t, err)

		_, err = NewCustomer(kernel.NewUUID(), kernel.UUID{}, "")
		assert.Error(t, err)
	})
}

func TestCustomer_RecordOrderPlaced(t *testing.T) {
	c, err := NewCustomer(kernel.NewUUID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	placedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	c.RecordOrderPlaced(placedAt)
	c.RecordOrderPlaced(placedAt.Add(time.Hour))

	require.NotNil(t, c.LastOrderDate())
	assert.Equal(t, placedAt.Add(time.Hour), *c.LastOrderDate())
	assert.Equal(t, 2, c.TotalOrders())
	assert.Equal(t, 0.0, c.TotalSpent())
}

func TestCustomer_RecordFareCharged(t *testing.T) {
	t.Run("accumulates spend and loyalty", func(t *testing.T) {
		c, err := NewCustomer(kernel.NewUUID(), kernel.NewUUID(), "")
		require.NoError(t, err)

		require.NoError(t, c.RecordFareCharged(1174.00))
		require.NoError(t, c.RecordFareCharged(250.00))

		assert.InDelta(t, 1424.00, c.TotalSpent(), 1e-9)
		assert.Equal(t, 13, c.LoyaltyPoints())
	})

	t.Run("fares below the loyalty threshold earn nothing", func(t *testing.T) {
		c, err := NewCustomer(kernel.NewUUID(), kernel.NewUUID(), "")
		require.NoError(t, err)

		require.NoError(t, c.RecordFareCharged(99.99))

		assert.Equal(t, 0, c.LoyaltyPoints())
	})

	t.Run("rejects invalid fares", func(t *testing.T) {
		c, err := NewCustomer(kernel.NewUUID(), kernel.NewUUID(), "")
		require.NoError(t, err)

		assert.Error(t, c.RecordFareCharged(-1))
		assert.Error(t, c.RecordFareCharged(math.NaN()))
		assert.Equal(t, 0.0, c.TotalSpent())
	})
}
