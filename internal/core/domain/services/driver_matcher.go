package services

import (
	"errors"
	"sort"

	"loadmatrix/internal/core/domain/model/account"
	"loadmatrix/internal/core/domain/model/driver"
	"loadmatrix/internal/core/domain/model/kernel"
)

// ErrDriverUnavailable is returned when a driver fails an eligibility
// predicate: the account is inactive or blacklisted, the driver is offline or
// unavailable, or no location has ever been reported.
var ErrDriverUnavailable = errors.New("driver unavailable")

// ErrDriverBusy is returned when an otherwise eligible driver already has an
// active order. A driver carries at most one active order at a time.
var ErrDriverBusy = errors.New("driver busy")

// Candidate pairs a driver with its identity account. Eligibility spans both:
// availability and location live on the driver, the active and blacklist
// flags on the account.
type Candidate struct {
	Driver  *driver.Driver
	Account *account.Account
}

// RankedDriver is a matching candidate annotated with its great-circle
// distance from an order's pickup point.
type RankedDriver struct {
	Driver     *driver.Driver
	DistanceKm float64
}

// DriverMatcher is a domain service that selects drivers for orders.
//
// It owns two decisions: whether a single driver may be attached to an order
// right now (CheckAssignable), and how a set of candidates is ranked for a
// customer choosing a driver (Rank). Ranking is purely informational; the
// assignment path re-checks eligibility and the active-order count inside the
// assigning transaction, because both can change between listing and
// assignment.
type DriverMatcher struct{}

// NewDriverMatcher creates a new DriverMatcher instance.
func NewDriverMatcher() DriverMatcher {
	return DriverMatcher{}
}

// CheckEligible verifies every eligibility predicate for a candidate and
// returns ErrDriverUnavailable on the first failure.
func (m DriverMatcher) CheckEligible(candidate Candidate) error {
	if candidate.Driver == nil || candidate.Account == nil {
		return ErrDriverUnavailable
	}
	if err := candidate.Driver.Validate(); err != nil {
		return err
	}
	if err := candidate.Account.Validate(); err != nil {
		return err
	}

	switch {
	case !candidate.Account.IsActive(),
		candidate.Account.IsBlacklisted(),
		!candidate.Driver.IsAvailable(),
		!candidate.Driver.IsOnline(),
		!candidate.Driver.HasLocation():
		return ErrDriverUnavailable
	}
	return nil
}

// CheckAssignable verifies that a candidate can take an order right now:
// every eligibility predicate holds and the driver has no active order.
// activeOrders must be counted in the same transaction that performs the
// assignment.
func (m DriverMatcher) CheckAssignable(candidate Candidate, activeOrders int) error {
	if err := m.CheckEligible(candidate); err != nil {
		return err
	}
	if activeOrders > 0 {
		return ErrDriverBusy
	}
	return nil
}

// Rank filters the candidates down to the eligible ones and sorts them by
// distance from the pickup point, ascending. Ties are broken by driver id so
// the order is deterministic.
func (m DriverMatcher) Rank(pickup kernel.GeoPoint, candidates []Candidate) ([]RankedDriver, error) {
	if err := pickup.Validate(); err != nil {
		return nil, err
	}

	ranked := make([]RankedDriver, 0, len(candidates))
	for _, candidate := range candidates {
		if err := m.CheckEligible(candidate); err != nil {
			if errors.Is(err, ErrDriverUnavailable) {
				continue
			}
			return nil, err
		}

		distanceKm, err := candidate.Driver.Location().DistanceKmTo(pickup)
		if err != nil {
			return nil, err
		}

		ranked = append(ranked, RankedDriver{
			Driver:     candidate.Driver,
			DistanceKm: distanceKm,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}
		return ranked[i].Driver.ID().String() < ranked[j].Driver.ID().String()
	})
	return ranked, nil
}
