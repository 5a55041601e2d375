package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"loadmatrix/internal/core/domain/model/kernel"
)

// ListCustomerOrdersQueryHandler retrieves order history from the database.
type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomerOrdersQueryHandler creates a handler for history queries.
func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

// Handle returns the customer's orders newest first, across every status
// including terminal ones.
func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]ListCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			pickup_address,
			drop_address,
			material_type,
			weight_kg,
			distance_km,
			fare_total,
			created_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListCustomerOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Status,
			&resp.PickupAddress,
			&resp.DropAddress,
			&resp.MaterialType,
			&resp.WeightKg,
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

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
