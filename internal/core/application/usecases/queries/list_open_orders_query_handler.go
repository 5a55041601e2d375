package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
)

// ListOpenOrdersQueryHandler retrieves claimable orders from the database.
type ListOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOpenOrdersQueryHandler creates a handler for open pool queries.
func NewListOpenOrdersQueryHandler(db *gorm.DB) ListOpenOrdersQueryHandler {
	return ListOpenOrdersQueryHandler{db: db}
}

// Handle returns every order in the open pool, oldest first, so long-waiting
// shipments surface at the top of a driver's listing.
func (h ListOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOpenOrdersQuery,
) ([]ListOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			pickup_lat,
			pickup_lng,
			pickup_address,
			drop_lat,
			drop_lng,
			drop_address,
			material_type,
			weight_kg,
			distance_km,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, order.StatusPending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListOpenOrdersQueryResponse
		var id uuid.UUID
		var pickupLat, pickupLng, dropLat, dropLng float64

		err = rows.Scan(
			&id,
			&pickupLat,
			&pickupLng,
			&resp.PickupAddress,
			&dropLat,
			&dropLng,
			&resp.DropAddress,
			&resp.MaterialType,
			&resp.WeightKg,
			&resp.DistanceKm,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		pickup, pickupErr := kernel.NewGeoPoint(pickupLat, pickupLng)
		if pickupErr != nil {
			return nil, pickupErr
		}
		resp.Pickup = pickup

		drop, dropErr := kernel.NewGeoPoint(dropLat, dropLng)
		if dropErr != nil {
			return nil, dropErr
		}
		resp.Drop = drop

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
