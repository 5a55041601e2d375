package kernel

import (
	"errors"
	"fmt"
	"math"

	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

const (
	// MinLatitude is the southernmost valid latitude in decimal degrees.
	MinLatitude = -90.0
	// MaxLatitude is the northernmost valid latitude in decimal degrees.
	MaxLatitude = 90.0
	// MinLongitude is the westernmost valid longitude in decimal degrees.
	MinLongitude = -180.0
	// MaxLongitude is the easternmost valid longitude in decimal degrees.
	MaxLongitude = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly initialized GeoPoint.
// GeoPoints must be created using the NewGeoPoint constructor to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position as a latitude/longitude pair in
// decimal degrees. GeoPoint is an immutable value object that guarantees both
// coordinates are always within valid bounds. The zero value of GeoPoint is
// invalid and will fail validation; use the constructor to create instances.
//
// Example:
//
//	pickup, err := kernel.NewGeoPoint(12.9716, 77.5946)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Pickup: %s", pickup) // Output: GeoPoint(12.971600,77.594600)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a new GeoPoint with the specified coordinates.
// Latitude must be within [MinLatitude..MaxLatitude] and longitude within
// [MinLongitude..MaxLongitude]. NaN and infinite values are rejected.
// Returns an error if either coordinate is outside the valid bounds.
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Validate checks if the GeoPoint was properly constructed using the constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String returns a human-readable representation of the GeoPoint.
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lng)
}

// IsEqual compares two geo points for equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// DistanceKmTo calculates the great-circle distance in kilometers between two
// geo points using the haversine formula with a mean Earth radius of 6371 km.
//
// The calculation is symmetric, returns exactly 0 for identical points, and
// handles antipodal points without producing NaN: the argument passed to
// math.Asin is clamped to [-1, 1] to guard against floating-point overshoot.
//
// Both points must be properly constructed (pass validation) for the
// calculation to succeed.
func (p GeoPoint) DistanceKmTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := degToRad(p.lat)
	lat2 := degToRad(other.lat)
	dLat := degToRad(other.lat - p.lat)
	dLng := degToRad(other.lng - p.lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	// Floating-point rounding can push sqrt(h) a hair above 1 for antipodal
	// points, which would make Asin return NaN.
	arg := math.Min(1, math.Sqrt(h))

	return 2 * earthRadiusKm * math.Asin(arg), nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return errs.NewValueIsInvalidErrorWithCause("latitude", fmt.Errorf("%f is not a finite number", lat))
	}
	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if math.IsNaN(lng) || math.IsInf(lng, 0) {
		return errs.NewValueIsInvalidErrorWithCause("longitude", fmt.Errorf("%f is not a finite number", lng))
	}
	if lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lng, MinLongitude, MaxLongitude)
	}
	p.lng = lng
	return nil
}
