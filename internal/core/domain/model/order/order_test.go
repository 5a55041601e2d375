package order

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
)

func testRoute(t *testing.T) Route {
	t.Helper()
	pickup, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	drop, err := kernel.NewGeoPoint(12.2958, 76.6394)
	require.NoError(t, err)
	route, err := NewRoute(pickup, drop, "MG Road, Bangalore", "Sayyaji Rao Road, Mysore")
	require.NoError(t, err)
	return route
}

func testCargo(t *testing.T) Cargo {
	t.Helper()
	cargo, err := NewCargo("steel", "coils, strapped", "", 120)
	require.NoError(t, err)
	return cargo
}

func testFare(t *testing.T) Fare {
	t.Helper()
	fare, err := NewFare(1174.00, 939.20, 234.80)
	require.NoError(t, err)
	return fare
}

func TestNewRoute_ComputesDistance(t *testing.T) {
	route := testRoute(t)

	assert.InDelta(t, 128.0, route.DistanceKm(), 0.5)

	samePoint, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	loop, err := NewRoute(samePoint, samePoint, "MG Road, Bangalore", "MG Road, Bangalore")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, loop.DistanceKm(), 1e-9)
}

func TestNewOrder(t *testing.T) {
	t.Run("starts in pending_driver_selection with a fare", func(t *testing.T) {
		o, err := NewOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), testCargo(t), testFare(t))

		require.NoError(t, err)
		assert.NoError(t, o.Validate())
		assert.Equal(t, StatusPendingDriverSelection, o.Status())
		assert.Nil(t, o.DriverID())
		require.NotNil(t, o.Fare())
		assert.InDelta(t, 1174.00, o.Fare().Total(), 1e-9)
		assert.InDelta(t, 128.0, o.DistanceKm(), 0.5)
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
		assert.Equal(t, 0, o.Version())
	})

	t.Run("rejects unconstructed parts", func(t *testing.T) {
		_, err := NewOrder(kernel.UUID{}, kernel.NewUUID(), testRoute(t), testCargo(t), testFare(t))
		assert.Error(t, err)

		_, err = NewOrder(kernel.NewUUID(), kernel.NewUUID(), Route{}, testCargo(t), testFare(t))
		assert.Error(t, err)

		_, err = NewOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), Cargo{}, testFare(t))
		assert.Error(t, err)

		_, err = NewOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), testCargo(t), Fare{})
		assert.Error(t, err)
	})
}

func TestNewOpenOrder(t *testing.T) {
	o, err := NewOpenOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), testCargo(t))

	require.NoError(t, err)
	assert.Equal(t, StatusPending, o.Status())
	assert.Nil(t, o.Fare())
	assert.Nil(t, o.DriverID())
}

func TestOrder_RequestDriver(t *testing.T) {
	t.Run("from pending_driver_selection", func(t *testing.T) {
		o, err := NewOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), testCargo(t), testFare(t))
		require.NoError(t, err)
		driverID := kernel.NewUUID()

		err = o.RequestDriver(driverID, testFare(t))

		require.NoError(t, err)
		assert.Equal(t, StatusRequested, o.Status())
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(driverID))
	})

	t.Run("from pending attaches the fare", func(t *testing.T) {
		o, err := NewOpenOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), testCargo(t))
		require.NoError(t, err)

		err = o.RequestDriver(kernel.NewUUID(), testFare(t))

		require.NoError(t, err)
		require.NotNil(t, o.Fare())
		assert.InDelta(t, 1174.00, o.Fare().Total(), 1e-9)
	})

	t.Run("not from an active order", func(t *testing.T) {
		o := requestedOrder(t, kernel.NewUUID())
		err := o.RequestDriver(kernel.NewUUID(), testFare(t))

		assert.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestOrder_AcceptRequest(t *testing.T) {
	driverID := kernel.NewUUID()

	t.Run("requested driver accepts", func(t *testing.T) {
		o := requestedOrder(t, driverID)

		require.NoError(t, o.AcceptRequest(driverID))
		assert.Equal(t, StatusAccepted, o.Status())
	})

	t.Run("other drivers may not accept", func(t *testing.T) {
		o := requestedOrder(t, driverID)

		err := o.AcceptRequest(kernel.NewUUID())

		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, StatusRequested, o.Status())
	})

	t.Run("no outstanding request", func(t *testing.T) {
		o, err := NewOpenOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), testCargo(t))
		require.NoError(t, err)

		assert.ErrorIs(t, o.AcceptRequest(driverID), errs.ErrStateConflict)
	})
}

func TestOrder_RejectRequest(t *testing.T) {
	driverID := kernel.NewUUID()

	t.Run("order returns to the pool without a driver", func(t *testing.T) {
		o := requestedOrder(t, driverID)

		require.NoError(t, o.RejectRequest(driverID))
		assert.Equal(t, StatusPending, o.Status())
		assert.Nil(t, o.DriverID())
	})

	t.Run("other drivers may not reject", func(t *testing.T) {
		o := requestedOrder(t, driverID)

		assert.ErrorIs(t, o.RejectRequest(kernel.NewUUID()), errs.ErrNotAuthorized)
	})
}

func TestOrder_CancelRequest(t *testing.T) {
	t.Run("cancels and frees the driver", func(t *testing.T) {
		o := requestedOrder(t, kernel.NewUUID())

		require.NoError(t, o.CancelRequest())
		assert.Equal(t, StatusCancelled, o.Status())
		assert.Nil(t, o.DriverID())
	})

	t.Run("only with an outstanding request", func(t *testing.T) {
		o, err := NewOpenOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), testCargo(t))
		require.NoError(t, err)

		assert.ErrorIs(t, o.CancelRequest(), errs.ErrStateConflict)
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("open order becomes assigned with a fare", func(t *testing.T) {
		o, err := NewOpenOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), testCargo(t))
		require.NoError(t, err)
		driverID := kernel.NewUUID()

		err = o.Claim(driverID, testFare(t))

		require.NoError(t, err)
		assert.Equal(t, StatusAssigned, o.Status())
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(driverID))
		require.NotNil(t, o.Fare())
	})

	t.Run("only pending orders can be claimed", func(t *testing.T) {
		o := requestedOrder(t, kernel.NewUUID())

		assert.ErrorIs(t, o.Claim(kernel.NewUUID(), testFare(t)), errs.ErrStateConflict)
	})
}

func TestOrder_AdvanceTo(t *testing.T) {
	driverID := kernel.NewUUID()

	assignedOrder := func(t *testing.T) *Order {
		t.Helper()
		o, err := NewOpenOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), testCargo(t))
		require.NoError(t, err)
		require.NoError(t, o.Claim(driverID, testFare(t)))
		return o
	}

	t.Run("walks the full execution phase", func(t *testing.T) {
		o := assignedOrder(t)

		require.NoError(t, o.AdvanceTo(driverID, StatusPicked))
		require.NoError(t, o.AdvanceTo(driverID, StatusDelivering))
		require.NoError(t, o.AdvanceTo(driverID, StatusDelivered))
		assert.True(t, o.IsDelivered())
	})

	t.Run("forward jump straight to delivered", func(t *testing.T) {
		o := assignedOrder(t)

		require.NoError(t, o.AdvanceTo(driverID, StatusDelivered))
		assert.True(t, o.IsDelivered())
	})

	t.Run("never backwards", func(t *testing.T) {
		o := assignedOrder(t)
		require.NoError(t, o.AdvanceTo(driverID, StatusDelivering))

		assert.ErrorIs(t, o.AdvanceTo(driverID, StatusPicked), errs.ErrStateConflict)
	})

	t.Run("terminal orders reject everything", func(t *testing.T) {
		o := assignedOrder(t)
		require.NoError(t, o.AdvanceTo(driverID, StatusDelivered))

		assert.ErrorIs(t, o.AdvanceTo(driverID, StatusDelivering), errs.ErrStateConflict)
	})

	t.Run("only the attached driver may advance", func(t *testing.T) {
		o := assignedOrder(t)

		err := o.AdvanceTo(kernel.NewUUID(), StatusPicked)

		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, StatusAssigned, o.Status())
	})

	t.Run("rejects unknown target", func(t *testing.T) {
		o := assignedOrder(t)
		assert.Error(t, o.AdvanceTo(driverID, Status(99)))
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("from any non-terminal status", func(t *testing.T) {
		o, err := NewOpenOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), testCargo(t))
		require.NoError(t, err)

		require.NoError(t, o.Cancel())
		assert.Equal(t, StatusCancelled, o.Status())
	})

	t.Run("not after delivery", func(t *testing.T) {
		driverID := kernel.NewUUID()
		o, err := NewOpenOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), testCargo(t))
		require.NoError(t, err)
		require.NoError(t, o.Claim(driverID, testFare(t)))
		require.NoError(t, o.AdvanceTo(driverID, StatusDelivered))

		var stateErr *errs.StateConflictError
		assert.True(t, errors.As(o.Cancel(), &stateErr))
	})
}

func TestRestoreOrder(t *testing.T) {
	id, customerID, driverID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	fare := testFare(t)
	createdAt := time.Now().UTC().Add(-time.Hour)

	o := RestoreOrder(id, customerID, &driverID, testRoute(t), testCargo(t), 109.4, &fare,
		StatusDelivering, createdAt, 7)

	assert.NoError(t, o.Validate())
	assert.True(t, o.ID().IsEqual(id))
	assert.Equal(t, StatusDelivering, o.Status())
	assert.Equal(t, 7, o.Version())
	assert.Equal(t, createdAt, o.CreatedAt())
}

func requestedOrder(t *testing.T, driverID kernel.UUID) *Order {
	t.Helper()
	o, err := NewOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), testCargo(t), testFare(t))
	require.NoError(t, err)
	require.NoError(t, o.RequestDriver(driverID, testFare(t)))
	return o
}
