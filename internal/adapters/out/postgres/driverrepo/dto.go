// Package driverrepo persists the driver aggregate.
package driverrepo

import (
	"time"

	"github.com/google/uuid"

	"loadmatrix/internal/core/domain/model/driver"
	"loadmatrix/internal/core/domain/model/kernel"
)

// DriverDTO is the database shape of a driver. Lat and Lng are nullable and
// set together once the first position report arrives.
type DriverDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	VehicleType     string
	VehicleNumber   string
	LicenseNumber   string
	IsAvailable     bool
	IsOnline        bool `gorm:"index"`
	IsVerified      bool
	Lat             *float64
	Lng             *float64
	LastSeenAt      *time.Time
	Rating          float64
	RatingCount     int
	TotalDeliveries int
	TotalEarnings   float64
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	var lat, lng *float64
	if location := aggregate.Location(); location != nil {
		latV, lngV := location.Lat(), location.Lng()
		lat, lng = &latV, &lngV
	}

	return DriverDTO{
		ID:              aggregate.ID().Bytes(),
		AccountID:       aggregate.AccountID().Bytes(),
		VehicleType:     aggregate.VehicleType(),
		VehicleNumber:   aggregate.VehicleNumber(),
		LicenseNumber:   aggregate.LicenseNumber(),
		IsAvailable:     aggregate.IsAvailable(),
		IsOnline:        aggregate.IsOnline(),
		IsVerified:      aggregate.IsVerified(),
		Lat:             lat,
		Lng:             lng,
		LastSeenAt:      aggregate.LastSeenAt(),
		Rating:          aggregate.Rating(),
		RatingCount:     aggregate.RatingCount(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		TotalEarnings:   aggregate.TotalEarnings(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	return driver.RestoreDriver(id, accountID, dto.VehicleType, dto.VehicleNumber, dto.LicenseNumber,
		dto.IsAvailable, dto.IsOnline, dto.IsVerified, location, dto.LastSeenAt,
		dto.Rating, dto.RatingCount, dto.TotalDeliveries, dto.TotalEarnings), nil
}
