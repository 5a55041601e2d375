package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loadmatrix/internal/core/domain/model/kernel"
)

func newTestDriver(t *testing.T) *Driver {
	t.Helper()
	d, err := NewDriver(kernel.NewUUID(), kernel.NewUUID(), "truck", "KA-01-AB-1234", "DL-2026-778899")
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("starts offline without a location", func(t *testing.T) {
		d := newTestDriver(t)

		assert.NoError(t, d.Validate())
		assert.False(t, d.IsOnline())
		assert.False(t, d.IsAvailable())
		assert.False(t, d.IsVerified())
		assert.False(t, d.HasLocation())
		assert.Nil(t, d.LastSeenAt())
		assert.Equal(t, 0, d.TotalDeliveries())
	})

	t.Run("requires vehicle and license details", func(t *testing.T) {
		_, err := NewDriver(kernel.NewUUID(), kernel.NewUUID(), "", "KA-01", "DL-1")
		assert.Error(t, err)

		_, err = NewDriver(kernel.NewUUID(), kernel.NewUUID(), "truck", "", "DL-1")
		assert.Error(t, err)

		_, err = NewDriver(kernel.NewUUID(), kernel.NewUUID(), "truck", "KA-01", "")
		assert.Error(t, err)
	})
}

func TestDriver_UpdateLocation(t *testing.T) {
	d := newTestDriver(t)
	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	reportedAt := time.Now().UTC()
	require.NoError(t, d.UpdateLocation(point, reportedAt))

	assert.True(t, d.IsOnline())
	require.True(t, d.HasLocation())
	samePoint, err := d.Location().IsEqual(point)
	require.NoError(t, err)
	assert.True(t, samePoint)
	require.NotNil(t, d.LastSeenAt())
	assert.Equal(t, reportedAt, *d.LastSeenAt())
}

func TestDriver_GoOffline(t *testing.T) {
	d := newTestDriver(t)
	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	require.NoError(t, d.UpdateLocation(point, time.Now().UTC()))

	d.GoOffline()

	assert.False(t, d.IsOnline())
	assert.True(t, d.HasLocation(), "last known location is kept")
}

func TestDriver_SetAvailability(t *testing.T) {
	d := newTestDriver(t)

	d.SetAvailability(true)
	assert.True(t, d.IsAvailable())

	d.SetAvailability(false)
	assert.False(t, d.IsAvailable())
}

func TestDriver_IsStaleSince(t *testing.T) {
	d := newTestDriver(t)
	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	now := time.Now().UTC()

	t.Run("never reported is not stale", func(t *testing.T) {
		assert.False(t, d.IsStaleSince(now, 10*time.Minute))
	})

	t.Run("recent report is fresh", func(t *testing.T) {
		require.NoError(t, d.UpdateLocation(point, now.Add(-5*time.Minute)))
		assert.False(t, d.IsStaleSince(now, 10*time.Minute))
	})

	t.Run("silent past the threshold is stale", func(t *testing.T) {
		require.NoError(t, d.UpdateLocation(point, now.Add(-30*time.Minute)))
		assert.True(t, d.IsStaleSince(now, 10*time.Minute))
	})

	t.Run("offline drivers are never stale", func(t *testing.T) {
		require.NoError(t, d.UpdateLocation(point, now.Add(-30*time.Minute)))
		d.GoOffline()
		assert.False(t, d.IsStaleSince(now, 10*time.Minute))
	})
}

func TestDriver_RecordDelivery(t *testing.T) {
	d := newTestDriver(t)

	require.NoError(t, d.RecordDelivery(939.20))
	require.NoError(t, d.RecordDelivery(160.80))

	assert.Equal(t, 2, d.TotalDeliveries())
	assert.InDelta(t, 1100.00, d.TotalEarnings(), 1e-9)

	assert.Error(t, d.RecordDelivery(-5))
	assert.Equal(t, 2, d.TotalDeliveries())
}

func TestDriver_RecordRating(t *testing.T) {
	d := newTestDriver(t)

	require.NoError(t, d.RecordRating(4))
	require.NoError(t, d.RecordRating(5))

	assert.InDelta(t, 4.5, d.Rating(), 1e-9)
	assert.Equal(t, 2, d.RatingCount())

	assert.Error(t, d.RecordRating(0))
	assert.Error(t, d.RecordRating(5.5))
	assert.Equal(t, 2, d.RatingCount())
}
