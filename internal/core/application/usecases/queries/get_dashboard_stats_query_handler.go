package queries

import (
	"context"

	"gorm.io/gorm"

	"loadmatrix/internal/core/domain/model/order"
)

// GetDashboardStatsQueryHandler aggregates marketplace figures for the admin
// dashboard. Each figure is a separate aggregate query; the dashboard does
// not need them to be a consistent snapshot.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle computes the dashboard figures.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	resp := GetDashboardStatsQueryResponse{
		OrdersByStatus: make(map[string]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}
		resp.OrdersByStatus[status] = count
		resp.TotalOrders += count
	}
	if err = rows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_online)
		FROM drivers
	`).Row().Scan(&resp.TotalDrivers, &resp.OnlineDrivers)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM customers
	`).Row().Scan(&resp.TotalCustomers)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(fare_total), 0),
			COALESCE(SUM(commission), 0)
		FROM orders
		WHERE status = ?
	`, order.StatusDelivered.String()).Row().Scan(&resp.TotalRevenue, &resp.TotalCommission)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return resp, nil
}
