package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"loadmatrix/internal/core/application/usecases/commands"
	"loadmatrix/internal/core/application/usecases/queries"
	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
)

// UpdateLocationRequest is a driver position report.
type UpdateLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// UpdateDriverLocation handles POST /api/v1/drivers/:id/location. Reporting
// a position also marks the driver online.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req UpdateLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	location, err := kernel.NewGeoPoint(req.Lat, req.Lng)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(driverID, location)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateDriverLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GoOffline handles POST /api/v1/drivers/:id/offline.
func (s *Server) GoOffline(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewGoOfflineCommand(driverID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.goOfflineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetAvailabilityRequest toggles whether a driver takes new jobs.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// SetDriverAvailability handles POST /api/v1/drivers/:id/availability.
func (s *Server) SetDriverAvailability(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req SetAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewSetDriverAvailabilityCommand(driverID, req.Available)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyDriver handles POST /api/v1/drivers/:id/verify.
func (s *Server) VerifyDriver(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewVerifyDriverCommand(driverID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.verifyDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AvailableDriverView is the JSON shape of one dispatchable driver.
type AvailableDriverView struct {
	ID            string  `json:"id"`
	FullName      string  `json:"full_name"`
	VehicleType   string  `json:"vehicle_type"`
	VehicleNumber string  `json:"vehicle_number"`
	Rating        float64 `json:"rating"`
	RatingCount   int     `json:"rating_count"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	DistanceKm    float64 `json:"distance_km"`
}

func queryFloat(ctx echo.Context, name string) (float64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, errs.NewValueIsRequiredError(name)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

// ListAvailableDrivers handles GET /api/v1/drivers/available?lat=&lng=.
func (s *Server) ListAvailableDrivers(ctx echo.Context) error {
	lat, err := queryFloat(ctx, "lat")
	if err != nil {
		return fail(ctx, err)
	}
	lng, err := queryFloat(ctx, "lng")
	if err != nil {
		return fail(ctx, err)
	}

	pickup, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewListAvailableDriversQuery(pickup)
	if err != nil {
		return fail(ctx, err)
	}

	drivers, err := s.listAvailableDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	views := make([]AvailableDriverView, len(drivers))
	for i, d := range drivers {
		views[i] = AvailableDriverView{
			ID:            d.ID.String(),
			FullName:      d.FullName,
			VehicleType:   d.VehicleType,
			VehicleNumber: d.VehicleNumber,
			Rating:        d.Rating,
			RatingCount:   d.RatingCount,
			Lat:           d.Location.Lat(),
			Lng:           d.Location.Lng(),
			DistanceKm:    d.DistanceKm,
		}
	}

	return ctx.JSON(http.StatusOK, views)
}

// DriverRequestView is the JSON shape of one order awaiting the driver's
// answer. FareTotal is null for requests on unpriced orders.
type DriverRequestView struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	PickupAddress string    `json:"pickup_address"`
	DropAddress   string    `json:"drop_address"`
	DistanceKm    float64   `json:"distance_km"`
	FareTotal     *float64  `json:"fare_total"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListDriverRequests handles GET /api/v1/drivers/:id/requests.
func (s *Server) ListDriverRequests(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewListDriverRequestsQuery(driverID)
	if err != nil {
		return fail(ctx, err)
	}

	requests, err := s.listDriverRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	views := make([]DriverRequestView, len(requests))
	for i, r := range requests {
		views[i] = DriverRequestView{
			ID:            r.ID.String(),
			CustomerName:  r.CustomerName,
			PickupAddress: r.PickupAddress,
			DropAddress:   r.DropAddress,
			DistanceKm:    r.DistanceKm,
			FareTotal:     r.FareTotal,
			CreatedAt:     r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, views)
}

// DriverEarningsView is the JSON shape of a driver's earnings summary.
type DriverEarningsView struct {
	DriverID       string  `json:"driver_id"`
	DeliveredCount int     `json:"delivered_count"`
	TotalEarnings  float64 `json:"total_earnings"`
	Rating         float64 `json:"rating"`
	RatingCount    int     `json:"rating_count"`
}

// GetDriverEarnings handles GET /api/v1/drivers/:id/earnings.
func (s *Server) GetDriverEarnings(ctx echo.Context) error {
	driverID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetDriverEarningsQuery(driverID)
	if err != nil {
		return fail(ctx, err)
	}

	earnings, err := s.getDriverEarningsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DriverEarningsView{
		DriverID:       earnings.DriverID.String(),
		DeliveredCount: earnings.DeliveredCount,
		TotalEarnings:  earnings.TotalEarnings,
		Rating:         earnings.Rating,
		RatingCount:    earnings.RatingCount,
	})
}
