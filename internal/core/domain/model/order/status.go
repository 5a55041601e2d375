package order

import (
	"fmt"

	"loadmatrix/internal/pkg/errs"
)

// Status represents a stage in the order lifecycle.
//
// Orders move through the statuses in two phases. The matching phase attaches
// a driver to the order (pending_driver_selection, pending, requested). The
// execution phase carries the order from assignment to completion (accepted,
// assigned, picked, delivering, delivered). cancelled is reachable from every
// non-terminal status.
type Status int

const (
	// StatusUnknown is the zero value. It is not a valid lifecycle stage and
	// never passes Validate.
	StatusUnknown Status = iota

	// StatusPendingDriverSelection marks an order created in the
	// driver-selection flow. The fare is already computed and the customer is
	// choosing a driver from the ranked list.
	StatusPendingDriverSelection

	// StatusPending marks an open order waiting in the shared pool for any
	// eligible driver to claim it.
	StatusPending

	// StatusRequested marks an order with an outstanding assignment request
	// to a specific driver. The driver has not answered yet.
	StatusRequested

	// StatusAccepted marks an order whose driver has accepted the request.
	StatusAccepted

	// StatusAssigned marks an order claimed from the open pool. Claiming
	// skips the request handshake entirely.
	StatusAssigned

	// StatusPicked marks an order whose cargo the driver has picked up.
	StatusPicked

	// StatusDelivering marks an order in transit to the drop point.
	StatusDelivering

	// StatusDelivered marks a completed order. Terminal.
	StatusDelivered

	// StatusCancelled marks an abandoned order. Terminal.
	StatusCancelled
)

var statusNames = map[Status]string{
	StatusPendingDriverSelection: "pending_driver_selection",
	StatusPending:                "pending",
	StatusRequested:              "requested",
	StatusAccepted:               "accepted",
	StatusAssigned:               "assigned",
	StatusPicked:                 "picked",
	StatusDelivering:             "delivering",
	StatusDelivered:              "delivered",
	StatusCancelled:              "cancelled",
}

// transitions is the single source of truth for which status changes are
// legal. Statuses absent from a target list are rejected by every aggregate
// method, and terminal statuses have no targets at all.
//
// Within the execution phase the table permits forward jumps (for example
// assigned straight to delivered) because drivers report progress unevenly,
// but never a move backwards.
var transitions = map[Status][]Status{
	StatusPendingDriverSelection: {StatusRequested, StatusCancelled},
	StatusPending:                {StatusRequested, StatusAssigned, StatusCancelled},
	StatusRequested:              {StatusAccepted, StatusPending, StatusCancelled},
	StatusAccepted:               {StatusPicked, StatusDelivering, StatusDelivered, StatusCancelled},
	StatusAssigned:               {StatusPicked, StatusDelivering, StatusDelivered, StatusCancelled},
	StatusPicked:                 {StatusDelivering, StatusDelivered, StatusCancelled},
	StatusDelivering:             {StatusDelivered, StatusCancelled},
	StatusDelivered:              {},
	StatusCancelled:              {},
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(name string) (Status, error) {
	for status, statusName := range statusNames {
		if statusName == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("status %q", name))
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Validate reports whether the status is a known lifecycle stage.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsActive reports whether the order occupies a driver: a driver is attached
// (or requested) and the order is not finished. Active orders count against a
// driver's concurrent load.
func (s Status) IsActive() bool {
	switch s {
	case StatusRequested, StatusAccepted, StatusAssigned, StatusPicked, StatusDelivering:
		return true
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the transition table permits moving from s
// to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ActiveStatuses returns the statuses that occupy a driver, in lifecycle
// order. Repositories use it to count a driver's concurrent load.
func ActiveStatuses() []Status {
	return []Status{StatusRequested, StatusAccepted, StatusAssigned, StatusPicked, StatusDelivering}
}
