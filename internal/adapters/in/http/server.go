// Package http exposes the marketplace over a REST API built on echo.
// Handlers translate between HTTP and the application's commands and
// queries; the error taxonomy of the core maps onto HTTP status codes here
// and nowhere else.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"loadmatrix/internal/core/application/usecases/commands"
	"loadmatrix/internal/core/application/usecases/queries"
	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/services"
	"loadmatrix/internal/pkg/errs"
)

// Server wires command and query handlers to HTTP routes.
type Server struct {
	createOrderHandler          commands.CreateOrderCommandHandler
	createOpenOrderHandler      commands.CreateOpenOrderCommandHandler
	selectDriverHandler         commands.SelectDriverCommandHandler
	acceptRequestHandler        commands.AcceptRequestCommandHandler
	rejectRequestHandler        commands.RejectRequestCommandHandler
	cancelRequestHandler        commands.CancelRequestCommandHandler
	claimOrderHandler           commands.ClaimOrderCommandHandler
	advanceStatusHandler        commands.AdvanceStatusCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	rateDriverHandler           commands.RateDriverCommandHandler
	updateDriverLocationHandler commands.UpdateDriverLocationCommandHandler
	goOfflineHandler            commands.GoOfflineCommandHandler
	setAvailabilityHandler      commands.SetDriverAvailabilityCommandHandler
	verifyDriverHandler         commands.VerifyDriverCommandHandler
	setBlacklistHandler         commands.SetAccountBlacklistCommandHandler
	requestPasswordResetHandler commands.RequestPasswordResetCommandHandler
	resetPasswordHandler        commands.ResetPasswordCommandHandler

	listAvailableDriversHandler queries.ListAvailableDriversQueryHandler
	listDriverRequestsHandler   queries.ListDriverRequestsQueryHandler
	getDriverEarningsHandler    queries.GetDriverEarningsQueryHandler
	listOpenOrdersHandler       queries.ListOpenOrdersQueryHandler
	listCustomerOrdersHandler   queries.ListCustomerOrdersQueryHandler
	getOrderTrackingHandler     queries.GetOrderTrackingQueryHandler
	getFareQuoteHandler         queries.GetFareQuoteQueryHandler
	getDashboardStatsHandler    queries.GetDashboardStatsQueryHandler
}

// Handlers carries every handler the server needs, so composition stays
// readable at the call site.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	CreateOpenOrder      commands.CreateOpenOrderCommandHandler
	SelectDriver         commands.SelectDriverCommandHandler
	AcceptRequest        commands.AcceptRequestCommandHandler
	RejectRequest        commands.RejectRequestCommandHandler
	CancelRequest        commands.CancelRequestCommandHandler
	ClaimOrder           commands.ClaimOrderCommandHandler
	AdvanceStatus        commands.AdvanceStatusCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	RateDriver           commands.RateDriverCommandHandler
	UpdateDriverLocation commands.UpdateDriverLocationCommandHandler
	GoOffline            commands.GoOfflineCommandHandler
	SetAvailability      commands.SetDriverAvailabilityCommandHandler
	VerifyDriver         commands.VerifyDriverCommandHandler
	SetBlacklist         commands.SetAccountBlacklistCommandHandler
	RequestPasswordReset commands.RequestPasswordResetCommandHandler
	ResetPassword        commands.ResetPasswordCommandHandler

	ListAvailableDrivers queries.ListAvailableDriversQueryHandler
	ListDriverRequests   queries.ListDriverRequestsQueryHandler
	GetDriverEarnings    queries.GetDriverEarningsQueryHandler
	ListOpenOrders       queries.ListOpenOrdersQueryHandler
	ListCustomerOrders   queries.ListCustomerOrdersQueryHandler
	GetOrderTracking     queries.GetOrderTrackingQueryHandler
	GetFareQuote         queries.GetFareQuoteQueryHandler
	GetDashboardStats    queries.GetDashboardStatsQueryHandler
}

// NewServer creates the HTTP server from its handlers.
func NewServer(h Handlers) *Server {
	return &Server{
		createOrderHandler:          h.CreateOrder,
		createOpenOrderHandler:      h.CreateOpenOrder,
		selectDriverHandler:         h.SelectDriver,
		acceptRequestHandler:        h.AcceptRequest,
		rejectRequestHandler:        h.RejectRequest,
		cancelRequestHandler:        h.CancelRequest,
		claimOrderHandler:           h.ClaimOrder,
		advanceStatusHandler:        h.AdvanceStatus,
		cancelOrderHandler:          h.CancelOrder,
		rateDriverHandler:           h.RateDriver,
		updateDriverLocationHandler: h.UpdateDriverLocation,
		goOfflineHandler:            h.GoOffline,
		setAvailabilityHandler:      h.SetAvailability,
		verifyDriverHandler:         h.VerifyDriver,
		setBlacklistHandler:         h.SetBlacklist,
		requestPasswordResetHandler: h.RequestPasswordReset,
		resetPasswordHandler:        h.ResetPassword,
		listAvailableDriversHandler: h.ListAvailableDrivers,
		listDriverRequestsHandler:   h.ListDriverRequests,
		getDriverEarningsHandler:    h.GetDriverEarnings,
		listOpenOrdersHandler:       h.ListOpenOrders,
		listCustomerOrdersHandler:   h.ListCustomerOrders,
		getOrderTrackingHandler:     h.GetOrderTracking,
		getFareQuoteHandler:         h.GetFareQuote,
		getDashboardStatsHandler:    h.GetDashboardStats,
	}
}

// RegisterRoutes attaches every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/open", s.CreateOpenOrder)
	api.GET("/orders/open", s.ListOpenOrders)
	api.GET("/orders/:id/tracking", s.GetOrderTracking)
	api.POST("/orders/:id/select-driver", s.SelectDriver)
	api.POST("/orders/:id/accept", s.AcceptRequest)
	api.POST("/orders/:id/reject", s.RejectRequest)
	api.POST("/orders/:id/cancel-request", s.CancelRequest)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.POST("/orders/:id/status", s.AdvanceStatus)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/rating", s.RateDriver)

	api.GET("/drivers/available", s.ListAvailableDrivers)
	api.GET("/drivers/:id/requests", s.ListDriverRequests)
	api.GET("/drivers/:id/earnings", s.GetDriverEarnings)
	api.POST("/drivers/:id/location", s.UpdateDriverLocation)
	api.POST("/drivers/:id/offline", s.GoOffline)
	api.POST("/drivers/:id/availability", s.SetDriverAvailability)
	api.POST("/drivers/:id/verify", s.VerifyDriver)

	api.GET("/customers/:id/orders", s.ListCustomerOrders)

	api.POST("/accounts/:id/blacklist", s.SetAccountBlacklist)
	api.POST("/auth/password-reset/request", s.RequestPasswordReset)
	api.POST("/auth/password-reset/confirm", s.ResetPassword)

	api.GET("/fare-quote", s.GetFareQuote)
	api.GET("/admin/stats", s.GetDashboardStats)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps the core's error taxonomy onto HTTP status codes.
// Validation failures are the client's fault, missing aggregates are 404,
// ownership violations 403, and every kind of lost race or illegal
// transition is a 409 the client may retry after re-reading state.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrStateConflict),
		errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, services.ErrDriverBusy),
		errors.Is(err, services.ErrDriverUnavailable):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func bodyUUID(raw string, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
