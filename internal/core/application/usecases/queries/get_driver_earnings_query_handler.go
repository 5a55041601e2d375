package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"loadmatrix/internal/core/domain/model/order"
	"loadmatrix/internal/pkg/errs"
)

// GetDriverEarningsQueryHandler summarizes a driver's delivered orders from
// the database.
type GetDriverEarningsQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverEarningsQueryHandler creates a handler for earnings queries.
func NewGetDriverEarningsQueryHandler(db *gorm.DB) GetDriverEarningsQueryHandler {
	return GetDriverEarningsQueryHandler{db: db}
}

// Handle returns the driver's earnings summary, or ErrObjectNotFound when no
// such driver exists. The summary is recomputed from the delivered orders
// rather than read off the profile ledger, so it stays correct even if the
// two ever drift.
func (h GetDriverEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverEarningsQuery,
) (GetDriverEarningsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverEarningsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(o.id),
			COALESCE(SUM(o.driver_share), 0),
			d.rating,
			d.rating_count
		FROM drivers d
		LEFT JOIN orders o ON o.driver_id = d.id AND o.status = ?
		WHERE d.id = ?
		GROUP BY d.id
	`, order.StatusDelivered.String(), query.DriverID().Bytes()).Row()

	resp := GetDriverEarningsQueryResponse{DriverID: query.DriverID()}

	err := row.Scan(
		&resp.DeliveredCount,
		&resp.TotalEarnings,
		&resp.Rating,
		&resp.RatingCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDriverEarningsQueryResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID())
	}
	if err != nil {
		return GetDriverEarningsQueryResponse{}, err
	}

	return resp, nil
}
