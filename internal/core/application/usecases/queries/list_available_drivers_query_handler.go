package queries

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"loadmatrix/internal/core/domain/model/kernel"
)

// ListAvailableDriversQueryHandler retrieves dispatchable drivers from the
// database. Eligibility is filtered in SQL; distances are computed and
// sorted in memory because the candidate set is small after filtering.
type ListAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewListAvailableDriversQueryHandler creates a handler for driver discovery
// queries.
func NewListAvailableDriversQueryHandler(db *gorm.DB) ListAvailableDriversQueryHandler {
	return ListAvailableDriversQueryHandler{db: db}
}

// Handle returns every eligible driver sorted by distance to the pickup
// point, nearest first. Drivers whose account is inactive or blacklisted,
// who are off shift, offline, or have never reported a position are
// excluded.
func (h ListAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableDriversQuery,
) ([]ListAvailableDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]ListAvailableDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			a.full_name,
			d.vehicle_type,
			d.vehicle_number,
			d.rating,
			d.rating_count,
			d.lat,
			d.lng
		FROM drivers d
		JOIN accounts a ON a.id = d.account_id
		WHERE a.is_active
		  AND NOT a.is_blacklisted
		  AND d.is_available
		  AND d.is_online
		  AND d.lat IS NOT NULL
		  AND d.lng IS NOT NULL
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListAvailableDriversQueryResponse
		var id uuid.UUID
		var lat, lng float64

		err = rows.Scan(
			&id,
			&resp.FullName,
			&resp.VehicleType,
			&resp.VehicleNumber,
			&resp.Rating,
			&resp.RatingCount,
			&lat,
			&lng,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = driverID

		location, locErr := kernel.NewGeoPoint(lat, lng)
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location

		distanceKm, distErr := location.DistanceKmTo(query.Pickup())
		if distErr != nil {
			return nil, distErr
		}
		resp.DistanceKm = distanceKm

		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(drivers, func(i, j int) bool {
		if drivers[i].DistanceKm != drivers[j].DistanceKm {
			return drivers[i].DistanceKm < drivers[j].DistanceKm
		}
		return drivers[i].ID.String() < drivers[j].ID.String()
	})

	return drivers, nil
}
