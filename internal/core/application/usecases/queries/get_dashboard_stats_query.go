package queries

import (
	"errors"

	"loadmatrix/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the marketplace-wide figures shown on the
// admin dashboard.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for the dashboard figures.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse aggregates order, driver and revenue
// figures. Revenue figures count delivered orders only.
type GetDashboardStatsQueryResponse struct {
	OrdersByStatus  map[string]int
	TotalOrders     int
	OnlineDrivers   int
	TotalDrivers    int
	TotalCustomers  int
	TotalRevenue    float64
	TotalCommission float64
}
