// Package orderrepo persists the order aggregate. It maps between the
// domain model and the relational orders table and enforces the optimistic
// version check on every update.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
)

// OrderDTO is the database shape of an order. Fare columns are nullable
// because open orders are priced only at assignment time; the three fare
// columns are always set or cleared together.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index"`
	DriverID      *uuid.UUID `gorm:"type:uuid;index"`
	PickupLat     float64
	PickupLng     float64
	PickupAddress string
	DropLat       float64
	DropLng       float64
	DropAddress   string
	MaterialType  string
	Description   string
	PhotoURL      string
	WeightKg      float64
	DistanceKm    float64
	FareTotal     *float64
	DriverShare   *float64
	Commission    *float64
	Status        string `gorm:"index"`
	CreatedAt     time.Time
	Version       int
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var fareTotal, driverShare, commission *float64
	if fare := aggregate.Fare(); fare != nil {
		total, share, cut := fare.Total(), fare.DriverShare(), fare.Commission()
		fareTotal, driverShare, commission = &total, &share, &cut
	}

	route := aggregate.Route()
	cargo := aggregate.Cargo()

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		DriverID:      driverID,
		PickupLat:     route.Pickup().Lat(),
		PickupLng:     route.Pickup().Lng(),
		PickupAddress: route.PickupAddress(),
		DropLat:       route.Drop().Lat(),
		DropLng:       route.Drop().Lng(),
		DropAddress:   route.DropAddress(),
		MaterialType:  cargo.MaterialType(),
		Description:   cargo.Description(),
		PhotoURL:      cargo.PhotoURL(),
		WeightKg:      cargo.WeightKg(),
		DistanceKm:    aggregate.DistanceKm(),
		FareTotal:     fareTotal,
		DriverShare:   driverShare,
		Commission:    commission,
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
		Version:       aggregate.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	pickup, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}

	drop, err := kernel.NewGeoPoint(dto.DropLat, dto.DropLng)
	if err != nil {
		return nil, err
	}

	route, err := order.NewRoute(pickup, drop, dto.PickupAddress, dto.DropAddress)
	if err != nil {
		return nil, err
	}

	cargo, err := order.NewCargo(dto.MaterialType, dto.Description, dto.PhotoURL, dto.WeightKg)
	if err != nil {
		return nil, err
	}

	var fare *order.Fare
	if dto.FareTotal != nil && dto.DriverShare != nil && dto.Commission != nil {
		restored, fareErr := order.NewFare(*dto.FareTotal, *dto.DriverShare, *dto.Commission)
		if fareErr != nil {
			return nil, fareErr
		}
		fare = &restored
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, driverID, route, cargo,
		dto.DistanceKm, fare, status, dto.CreatedAt, dto.Version), nil
}
