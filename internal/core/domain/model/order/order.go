package order

import (
	"fmt"
	"time"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrOrderIsNotConstructed = fmt.Errorf("order is not constructed")

// Order is the aggregate root of the order lifecycle.
//
// It owns the status field and is the only place that changes it. Every
// lifecycle method validates the transition against the table in status.go
// and returns a StateConflictError when the move is not permitted, so a
// handler can never push an order into an illegal state by accident.
//
// The version field supports optimistic concurrency: repositories include it
// in the WHERE clause of updates and fail with a ConcurrencyConflictError
// when another transaction got there first.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	driverID   *kernel.UUID

	route Route
	cargo Cargo

	distanceKm float64
	fare       *Fare

	status    Status
	createdAt time.Time
	version   int

	guard guard.ConstructorGuard
}

// NewOrder creates an order in the driver-selection flow. The fare is already
// computed from the route distance and the cargo weight, and the order starts
// in pending_driver_selection waiting for the customer to pick a driver.
func NewOrder(id kernel.UUID, customerID kernel.UUID, route Route, cargo Cargo, fare Fare) (*Order, error) {
	o, err := newOrder(id, customerID, route, cargo)
	if err != nil {
		return nil, err
	}
	if err := fare.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("fare", err)
	}

	o.fare = &fare
	o.status = StatusPendingDriverSelection
	return o, nil
}

// NewOpenOrder creates an order in the open-pool flow. No fare is attached
// yet; it is computed when a driver claims the order or a request is sent.
// The order starts in pending.
func NewOpenOrder(id kernel.UUID, customerID kernel.UUID, route Route, cargo Cargo) (*Order, error) {
	o, err := newOrder(id, customerID, route, cargo)
	if err != nil {
		return nil, err
	}

	o.status = StatusPending
	return o, nil
}

func newOrder(id kernel.UUID, customerID kernel.UUID, route Route, cargo Cargo) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}
	if err := route.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("route", err)
	}
	if err := cargo.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("cargo", err)
	}

	return &Order{
		id:         id,
		customerID: customerID,
		route:      route,
		cargo:      cargo,
		distanceKm: route.DistanceKm(),
		createdAt:  time.Now().UTC(),

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds an order from persistence without re-running creation
// rules. Repositories are the only intended caller.
func RestoreOrder(id kernel.UUID, customerID kernel.UUID, driverID *kernel.UUID, route Route, cargo Cargo,
	distanceKm float64, fare *Fare, status Status, createdAt time.Time, version int) *Order {
	return &Order{
		id:         id,
		customerID: customerID,
		driverID:   driverID,
		route:      route,
		cargo:      cargo,
		distanceKm: distanceKm,
		fare:       fare,
		status:     status,
		createdAt:  createdAt,
		version:    version,

		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks that the Order was created through a constructor.
func (o *Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DriverID returns the identifier of the attached driver, or nil when no
// driver is attached.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Route returns the pickup and drop information.
func (o *Order) Route() Route {
	return o.route
}

// Cargo returns the cargo information.
func (o *Order) Cargo() Cargo {
	return o.cargo
}

// DistanceKm returns the great-circle trip distance computed at creation.
func (o *Order) DistanceKm() float64 {
	return o.distanceKm
}

// Fare returns the fare breakdown, or nil when the fare is still deferred.
func (o *Order) Fare() *Fare {
	return o.fare
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic-concurrency version loaded from persistence.
func (o *Order) Version() int {
	return o.version
}

// RequestDriver sends an assignment request to the given driver and attaches
// the fare quoted for this order. Allowed from pending_driver_selection and
// from pending.
func (o *Order) RequestDriver(driverID kernel.UUID, fare Fare) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driverID", err)
	}
	if err := fare.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("fare", err)
	}
	if err := o.changeStatus(StatusRequested); err != nil {
		return err
	}

	o.driverID = &driverID
	o.fare = &fare
	return nil
}

// AcceptRequest records the driver's acceptance of an outstanding request.
// Only the requested driver may accept.
func (o *Order) AcceptRequest(driverID kernel.UUID) error {
	if err := o.checkRequestedDriver(driverID, "accept"); err != nil {
		return err
	}
	return o.changeStatus(StatusAccepted)
}

// RejectRequest records the driver's rejection of an outstanding request.
// The order returns to the open pool with no driver attached. Only the
// requested driver may reject.
func (o *Order) RejectRequest(driverID kernel.UUID) error {
	if err := o.checkRequestedDriver(driverID, "reject"); err != nil {
		return err
	}
	if err := o.changeStatus(StatusPending); err != nil {
		return err
	}

	o.driverID = nil
	return nil
}

// CancelRequest withdraws an outstanding request and cancels the order. The
// driver assignment is removed so the driver is freed immediately.
func (o *Order) CancelRequest() error {
	if o.status != StatusRequested {
		return errs.NewStateConflictError(fmt.Sprintf("order %s has no outstanding request", o.id))
	}
	if err := o.changeStatus(StatusCancelled); err != nil {
		return err
	}

	o.driverID = nil
	return nil
}

// Claim assigns the given driver to an open order and attaches the fare
// computed at claim time. Allowed only from pending.
func (o *Order) Claim(driverID kernel.UUID, fare Fare) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driverID", err)
	}
	if err := fare.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("fare", err)
	}
	if o.status != StatusPending {
		return errs.NewStateConflictError(fmt.Sprintf("order %s is not open for claiming", o.id))
	}
	if err := o.changeStatus(StatusAssigned); err != nil {
		return err
	}

	o.driverID = &driverID
	o.fare = &fare
	return nil
}

// AdvanceTo moves the order forward through the execution phase. The target
// must be reachable from the current status per the transition table. Only
// the attached driver may advance the order.
func (o *Order) AdvanceTo(driverID kernel.UUID, target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return errs.NewNotAuthorizedError(fmt.Sprintf("driver %s", driverID), fmt.Sprintf("advance order %s", o.id))
	}
	return o.changeStatus(target)
}

// Cancel abandons the order. Allowed from every non-terminal status.
func (o *Order) Cancel() error {
	return o.changeStatus(StatusCancelled)
}

// IsDelivered reports whether the order completed successfully.
func (o *Order) IsDelivered() bool {
	return o.status == StatusDelivered
}

func (o *Order) checkRequestedDriver(driverID kernel.UUID, action string) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driverID", err)
	}
	if o.status != StatusRequested {
		return errs.NewStateConflictError(fmt.Sprintf("order %s has no outstanding request", o.id))
	}
	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return errs.NewNotAuthorizedError(
			fmt.Sprintf("driver %s", driverID), fmt.Sprintf("%s request for order %s", action, o.id))
	}
	return nil
}

func (o *Order) changeStatus(target Status) error {
	if !o.status.CanTransitionTo(target) {
		return errs.NewStateConflictError(
			fmt.Sprintf("order %s cannot move from %s to %s", o.id, o.status, target))
	}
	o.status = target
	return nil
}
