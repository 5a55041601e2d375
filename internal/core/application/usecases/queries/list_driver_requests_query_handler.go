package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
)

// ListDriverRequestsQueryHandler retrieves a driver's open requests from the
// database.
type ListDriverRequestsQueryHandler struct {
	db *gorm.DB
}

// NewListDriverRequestsQueryHandler creates a handler for request queries.
func NewListDriverRequestsQueryHandler(db *gorm.DB) ListDriverRequestsQueryHandler {
	return ListDriverRequestsQueryHandler{db: db}
}

// Handle returns the orders in requested status addressed to the driver,
// oldest first, annotated with the requesting customer's name.
func (h ListDriverRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListDriverRequestsQuery,
) ([]ListDriverRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]ListDriverRequestsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			a.full_name,
			o.pickup_address,
			o.drop_address,
			o.distance_km,
			o.fare_total,
			o.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN accounts a ON a.id = c.account_id
		WHERE o.driver_id = ? AND o.status = ?
		ORDER BY o.created_at
	`, query.DriverID().Bytes(), order.StatusRequested.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListDriverRequestsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&resp.PickupAddress,
			&resp.DropAddress,
			&resp.DistanceKm,
			&resp.FareTotal,
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

		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
