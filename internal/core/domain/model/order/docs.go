// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is created by a customer in one of two flows: the driver-selection
// flow, where the fare is computed immediately and the customer picks a driver
// from a ranked list (status pending_driver_selection), and the open-pool flow,
// where the order sits in status pending for any eligible driver to claim and
// the fare is computed at assignment time. Both flows converge once a driver
// is attached and share the same transition table from there on.
//
// Every mutation of an order goes through a method on the aggregate, and every
// method consults the explicit transition table in status.go. There is no code
// path that writes a status the table does not permit.
package order
