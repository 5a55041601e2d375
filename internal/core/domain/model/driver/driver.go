// Package driver contains the Driver aggregate: the profile, availability and
// location state the matching engine reads, plus the earnings ledger the
// ledger updater maintains.
//
// Availability is two independent flags. is_available is the driver's manual
// toggle. is_online tracks liveness: it flips true on every location update
// and false on an explicit offline call or when the stale-location sweep
// decides the driver has gone silent. Only drivers with both flags set and a
// known location can be matched.
package driver

import (
	"fmt"
	"math"
	"strings"
	"time"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrDriverIsNotConstructed = fmt.Errorf("driver is not constructed")

const (
	MinRating = 1.0
	MaxRating = 5.0
)

// Driver is the profile and operational state of a driver account.
type Driver struct {
	id        kernel.UUID
	accountID kernel.UUID

	vehicleType   string
	vehicleNumber string
	licenseNumber string

	isAvailable bool
	isOnline    bool
	isVerified  bool
	location    *kernel.GeoPoint
	lastSeenAt  *time.Time

	rating          float64
	ratingCount     int
	totalDeliveries int
	totalEarnings   float64

	guard guard.ConstructorGuard
}

// NewDriver creates a driver profile linked to an identity account. A new
// driver starts offline, unavailable, unverified and without a location.
func NewDriver(id kernel.UUID, accountID kernel.UUID, vehicleType string, vehicleNumber string, licenseNumber string) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := accountID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("accountID", err)
	}
	if strings.TrimSpace(vehicleType) == "" {
		return nil, errs.NewValueIsRequiredError("vehicleType")
	}
	if strings.TrimSpace(vehicleNumber) == "" {
		return nil, errs.NewValueIsRequiredError("vehicleNumber")
	}
	if strings.TrimSpace(licenseNumber) == "" {
		return nil, errs.NewValueIsRequiredError("licenseNumber")
	}

	return &Driver{
		id:            id,
		accountID:     accountID,
		vehicleType:   vehicleType,
		vehicleNumber: vehicleNumber,
		licenseNumber: licenseNumber,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreDriver rebuilds a driver from persistence.
func RestoreDriver(id kernel.UUID, accountID kernel.UUID, vehicleType string, vehicleNumber string, licenseNumber string,
	isAvailable bool, isOnline bool, isVerified bool, location *kernel.GeoPoint, lastSeenAt *time.Time,
	rating float64, ratingCount int, totalDeliveries int, totalEarnings float64) *Driver {
	return &Driver{
		id:              id,
		accountID:       accountID,
		vehicleType:     vehicleType,
		vehicleNumber:   vehicleNumber,
		licenseNumber:   licenseNumber,
		isAvailable:     isAvailable,
		isOnline:        isOnline,
		isVerified:      isVerified,
		location:        location,
		lastSeenAt:      lastSeenAt,
		rating:          rating,
		ratingCount:     ratingCount,
		totalDeliveries: totalDeliveries,
		totalEarnings:   totalEarnings,

		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks that the Driver was created through a constructor.
func (d *Driver) Validate() error {
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID            { return d.id }
func (d *Driver) AccountID() kernel.UUID     { return d.accountID }
func (d *Driver) VehicleType() string        { return d.vehicleType }
func (d *Driver) VehicleNumber() string      { return d.vehicleNumber }
func (d *Driver) LicenseNumber() string      { return d.licenseNumber }
func (d *Driver) IsAvailable() bool          { return d.isAvailable }
func (d *Driver) IsOnline() bool             { return d.isOnline }
func (d *Driver) IsVerified() bool           { return d.isVerified }
func (d *Driver) Location() *kernel.GeoPoint { return d.location }
func (d *Driver) LastSeenAt() *time.Time     { return d.lastSeenAt }
func (d *Driver) Rating() float64            { return d.rating }
func (d *Driver) RatingCount() int           { return d.ratingCount }
func (d *Driver) TotalDeliveries() int       { return d.totalDeliveries }
func (d *Driver) TotalEarnings() float64     { return d.totalEarnings }

// UpdateLocation records a position report. Reporting a location also marks
// the driver online and refreshes the liveness timestamp.
func (d *Driver) UpdateLocation(location kernel.GeoPoint, at time.Time) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("location", err)
	}

	at = at.UTC()
	d.location = &location
	d.isOnline = true
	d.lastSeenAt = &at
	return nil
}

// GoOffline marks the driver offline. The last known location is kept for
// display but the driver drops out of matching immediately.
func (d *Driver) GoOffline() {
	d.isOnline = false
}

// SetAvailability flips the driver's manual availability toggle.
func (d *Driver) SetAvailability(available bool) {
	d.isAvailable = available
}

// Verify records the admin's approval of the driver's documents.
func (d *Driver) Verify() {
	d.isVerified = true
}

// HasLocation reports whether the driver has ever reported a position.
func (d *Driver) HasLocation() bool {
	return d.location != nil
}

// IsStaleSince reports whether the driver's last position report is older
// than the given threshold. Drivers with no report at all are not stale;
// they simply never went online.
func (d *Driver) IsStaleSince(now time.Time, threshold time.Duration) bool {
	if !d.isOnline || d.lastSeenAt == nil {
		return false
	}
	return now.Sub(*d.lastSeenAt) > threshold
}

// RecordDelivery applies a completed order to the earnings ledger. The caller
// is responsible for invoking it exactly once per delivered order.
func (d *Driver) RecordDelivery(driverShare float64) error {
	if math.IsNaN(driverShare) || math.IsInf(driverShare, 0) || driverShare < 0 {
		return errs.NewValueIsInvalidError("driverShare")
	}

	d.totalDeliveries++
	d.totalEarnings += driverShare
	return nil
}

// RecordRating folds a customer score into the running average rating.
func (d *Driver) RecordRating(score float64) error {
	if math.IsNaN(score) || score < MinRating || score > MaxRating {
		return errs.NewValueIsOutOfRangeError("score", score, MinRating, MaxRating)
	}

	d.rating = (d.rating*float64(d.ratingCount) + score) / float64(d.ratingCount+1)
	d.ratingCount++
	return nil
}
