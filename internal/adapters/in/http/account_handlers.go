package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loadmatrix/internal/core/application/usecases/commands"
	"loadmatrix/internal/core/application/usecases/queries"
	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
)

// SetBlacklistRequest toggles an account's blacklist flag.
type SetBlacklistRequest struct {
	Blacklisted bool `json:"blacklisted"`
}

// SetAccountBlacklist handles POST /api/v1/accounts/:id/blacklist.
func (s *Server) SetAccountBlacklist(ctx echo.Context) error {
	accountID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req SetBlacklistRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewSetAccountBlacklistCommand(accountID, req.Blacklisted)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.setBlacklistHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PasswordResetRequest asks for a reset token by account email.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetResponse returns the issued token. Delivering it out of band
// (email) is a collaborator concern outside this service.
type PasswordResetResponse struct {
	Token string `json:"token"`
}

// RequestPasswordReset handles POST /api/v1/auth/password-reset/request.
func (s *Server) RequestPasswordReset(ctx echo.Context) error {
	var req PasswordResetRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewRequestPasswordResetCommand(req.Email)
	if err != nil {
		return fail(ctx, err)
	}

	token, err := s.requestPasswordResetHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PasswordResetResponse{Token: token})
}

// PasswordResetConfirmRequest redeems a reset token.
type PasswordResetConfirmRequest struct {
	Token           string `json:"token"`
	NewPasswordHash string `json:"new_password_hash"`
}

// ResetPassword handles POST /api/v1/auth/password-reset/confirm.
func (s *Server) ResetPassword(ctx echo.Context) error {
	var req PasswordResetConfirmRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewResetPasswordCommand(req.Token, req.NewPasswordHash)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.resetPasswordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FareQuoteView is the JSON shape of a priced quote.
type FareQuoteView struct {
	DistanceKm  float64 `json:"distance_km"`
	Total       float64 `json:"total"`
	DriverShare float64 `json:"driver_share"`
	Commission  float64 `json:"commission"`
}

// GetFareQuote handles GET /api/v1/fare-quote with pickup, drop and weight
// query parameters.
func (s *Server) GetFareQuote(ctx echo.Context) error {
	pickupLat, err := queryFloat(ctx, "pickup_lat")
	if err != nil {
		return fail(ctx, err)
	}
	pickupLng, err := queryFloat(ctx, "pickup_lng")
	if err != nil {
		return fail(ctx, err)
	}
	dropLat, err := queryFloat(ctx, "drop_lat")
	if err != nil {
		return fail(ctx, err)
	}
	dropLng, err := queryFloat(ctx, "drop_lng")
	if err != nil {
		return fail(ctx, err)
	}
	weightKg, err := queryFloat(ctx, "weight_kg")
	if err != nil {
		return fail(ctx, err)
	}

	pickup, err := kernel.NewGeoPoint(pickupLat, pickupLng)
	if err != nil {
		return fail(ctx, err)
	}
	drop, err := kernel.NewGeoPoint(dropLat, dropLng)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetFareQuoteQuery(pickup, drop, weightKg)
	if err != nil {
		return fail(ctx, err)
	}

	quote, err := s.getFareQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, FareQuoteView{
		DistanceKm:  quote.DistanceKm,
		Total:       quote.Total,
		DriverShare: quote.DriverShare,
		Commission:  quote.Commission,
	})
}

// DashboardStatsView is the JSON shape of the admin dashboard figures.
type DashboardStatsView struct {
	OrdersByStatus  map[string]int `json:"orders_by_status"`
	TotalOrders     int            `json:"total_orders"`
	OnlineDrivers   int            `json:"online_drivers"`
	TotalDrivers    int            `json:"total_drivers"`
	TotalCustomers  int            `json:"total_customers"`
	TotalRevenue    float64        `json:"total_revenue"`
	TotalCommission float64        `json:"total_commission"`
}

// GetDashboardStats handles GET /api/v1/admin/stats.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	stats, err := s.getDashboardStatsHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardStatsView{
		OrdersByStatus:  stats.OrdersByStatus,
		TotalOrders:     stats.TotalOrders,
		OnlineDrivers:   stats.OnlineDrivers,
		TotalDrivers:    stats.TotalDrivers,
		TotalCustomers:  stats.TotalCustomers,
		TotalRevenue:    stats.TotalRevenue,
		TotalCommission: stats.TotalCommission,
	})
}
