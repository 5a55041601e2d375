package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"loadmatrix/internal/core/domain/model/account"
	"loadmatrix/internal/core/domain/model/customer"
	"loadmatrix/internal/core/domain/model/driver"
	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
)

func testRoute(t *testing.T) order.Route {
	t.Helper()
	pickup, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	drop, err := kernel.NewGeoPoint(12.2958, 76.6394)
	require.NoError(t, err)
	route, err := order.NewRoute(pickup, drop, "MG Road, Bangalore", "Sayyaji Rao Road, Mysore")
	require.NoError(t, err)
	return route
}

func testCargo(t *testing.T) order.Cargo {
	t.Helper()
	cargo, err := order.NewCargo("steel", "coils, strapped", "", 120)
	require.NoError(t, err)
	return cargo
}

func testCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), kernel.NewUUID(), "14 Residency Road")
	require.NoError(t, err)
	return c
}

// testEligibleDriver builds a driver that passes every matching predicate,
// together with its account.
func testEligibleDriver(t *testing.T) (*driver.Driver, *account.Account) {
	t.Helper()

	acct, err := account.NewAccount(kernel.NewUUID(), "driver@example.com", "+91", "Dev Kumar", "hash", account.RoleDriver)
	require.NoError(t, err)

	d, err := driver.NewDriver(kernel.NewUUID(), acct.ID(), "truck", "KA-01-AB-1234", "DL-2026-778899")
	require.NoError(t, err)

	point, err := kernel.NewGeoPoint(12.96, 77.60)
	require.NoError(t, err)
	require.NoError(t, d.UpdateLocation(point, time.Now().UTC()))
	d.SetAvailability(true)

	return d, acct
}

func testOpenOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOpenOrder(kernel.NewUUID(), kernel.NewUUID(), testRoute(t), testCargo(t))
	require.NoError(t, err)
	return o
}

func testSelectionOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	fare, err := order.NewFare(1174.00, 939.20, 234.80)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, testRoute(t), testCargo(t), fare)
	require.NoError(t, err)
	return o
}
