package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
)

// GetOrderTrackingQueryHandler retrieves the live view of a single order,
// joining in the attached driver's identity and last reported position.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking queries.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle returns the tracking view for the order, or ErrObjectNotFound when
// no such order exists.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.pickup_lat,
			o.pickup_lng,
			o.pickup_address,
			o.drop_lat,
			o.drop_lng,
			o.drop_address,
			o.driver_id,
			a.full_name,
			d.lat,
			d.lng,
			d.last_seen_at
		FROM orders o
		LEFT JOIN drivers d ON d.id = o.driver_id
		LEFT JOIN accounts a ON a.id = d.account_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetOrderTrackingQueryResponse
	var id uuid.UUID
	var pickupLat, pickupLng, dropLat, dropLng float64
	var driverID *uuid.UUID
	var driverName *string
	var driverLat, driverLng *float64
	var lastSeenAt *time.Time

	err := row.Scan(
		&id,
		&resp.Status,
		&pickupLat,
		&pickupLng,
		&resp.PickupAddress,
		&dropLat,
		&dropLng,
		&resp.DropAddress,
		&driverID,
		&driverName,
		&driverLat,
		&driverLng,
		&lastSeenAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderTrackingQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	resp.ID = orderID

	pickup, err := kernel.NewGeoPoint(pickupLat, pickupLng)
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	resp.Pickup = pickup

	drop, err := kernel.NewGeoPoint(dropLat, dropLng)
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	resp.Drop = drop

	if driverID != nil {
		attached, idErr := kernel.UUIDFromBytes(driverID[:])
		if idErr != nil {
			return GetOrderTrackingQueryResponse{}, idErr
		}
		resp.DriverID = &attached
		resp.DriverName = driverName
		resp.DriverLastSeenAt = lastSeenAt

		if driverLat != nil && driverLng != nil {
			location, locErr := kernel.NewGeoPoint(*driverLat, *driverLng)
			if locErr != nil {
				return GetOrderTrackingQueryResponse{}, locErr
			}
			resp.DriverLocation = &location
		}
	}

	return resp, nil
}
