package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"loadmatrix/internal/core/application/usecases/commands"
	"loadmatrix/internal/core/application/usecases/queries"
	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
	"loadmatrix/internal/pkg/errs"
)

// CreateOrderRequest is the payload shared by both order creation
// endpoints.
type CreateOrderRequest struct {
	CustomerID    string  `json:"customer_id"`
	PickupLat     float64 `json:"pickup_lat"`
	PickupLng     float64 `json:"pickup_lng"`
	PickupAddress string  `json:"pickup_address"`
	DropLat       float64 `json:"drop_lat"`
	DropLng       float64 `json:"drop_lng"`
	DropAddress   string  `json:"drop_address"`
	MaterialType  string  `json:"material_type"`
	Description   string  `json:"description"`
	PhotoURL      string  `json:"photo_url"`
	WeightKg      float64 `json:"weight_kg"`
}

// CreateOrderResponse returns the identifier assigned to the new order.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

func (r CreateOrderRequest) toDomain() (kernel.UUID, order.Route, order.Cargo, error) {
	customerID, err := bodyUUID(r.CustomerID, "customer_id")
	if err != nil {
		return kernel.UUID{}, order.Route{}, order.Cargo{}, err
	}

	pickup, err := kernel.NewGeoPoint(r.PickupLat, r.PickupLng)
	if err != nil {
		return kernel.UUID{}, order.Route{}, order.Cargo{}, err
	}

	drop, err := kernel.NewGeoPoint(r.DropLat, r.DropLng)
	if err != nil {
		return kernel.UUID{}, order.Route{}, order.Cargo{}, err
	}

	route, err := order.NewRoute(pickup, drop, r.PickupAddress, r.DropAddress)
	if err != nil {
		return kernel.UUID{}, order.Route{}, order.Cargo{}, err
	}

	cargo, err := order.NewCargo(r.MaterialType, r.Description, r.PhotoURL, r.WeightKg)
	if err != nil {
		return kernel.UUID{}, order.Route{}, order.Cargo{}, err
	}

	return customerID, route, cargo, nil
}

// CreateOrder handles POST /api/v1/orders. The fare is computed and charged
// immediately and the order waits for the customer to pick a driver.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	customerID, route, cargo, err := req.toDomain()
	if err != nil {
		return fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, route, cargo)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.String()})
}

// CreateOpenOrder handles POST /api/v1/orders/open. The order enters the
// open pool unpriced; the fare is computed when a driver is attached.
func (s *Server) CreateOpenOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	customerID, route, cargo, err := req.toDomain()
	if err != nil {
		return fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOpenOrderCommand(orderID, customerID, route, cargo)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createOpenOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.String()})
}

// SelectDriverRequest names the acting customer and the chosen driver.
type SelectDriverRequest struct {
	CustomerID string `json:"customer_id"`
	DriverID   string `json:"driver_id"`
}

// SelectDriver handles POST /api/v1/orders/:id/select-driver.
func (s *Server) SelectDriver(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req SelectDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	customerID, err := bodyUUID(req.CustomerID, "customer_id")
	if err != nil {
		return fail(ctx, err)
	}
	driverID, err := bodyUUID(req.DriverID, "driver_id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewSelectDriverCommand(orderID, customerID, driverID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.selectDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DriverActionRequest names the acting driver for request-handshake and
// claim endpoints.
type DriverActionRequest struct {
	DriverID string `json:"driver_id"`
}

func (s *Server) driverOrderAction(ctx echo.Context,
	run func(orderID kernel.UUID, driverID kernel.UUID) error,
) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req DriverActionRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	driverID, err := bodyUUID(req.DriverID, "driver_id")
	if err != nil {
		return fail(ctx, err)
	}

	if err = run(orderID, driverID); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptRequest handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptRequest(ctx echo.Context) error {
	return s.driverOrderAction(ctx, func(orderID, driverID kernel.UUID) error {
		cmd, err := commands.NewAcceptRequestCommand(orderID, driverID)
		if err != nil {
			return err
		}
		return s.acceptRequestHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectRequest handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectRequest(ctx echo.Context) error {
	return s.driverOrderAction(ctx, func(orderID, driverID kernel.UUID) error {
		cmd, err := commands.NewRejectRequestCommand(orderID, driverID)
		if err != nil {
			return err
		}
		return s.rejectRequestHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ClaimOrder handles POST /api/v1/orders/:id/claim.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	return s.driverOrderAction(ctx, func(orderID, driverID kernel.UUID) error {
		cmd, err := commands.NewClaimOrderCommand(orderID, driverID)
		if err != nil {
			return err
		}
		return s.claimOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// AdvanceStatusRequest reports delivery progress for an order.
type AdvanceStatusRequest struct {
	DriverID string `json:"driver_id"`
	Status   string `json:"status"`
}

// AdvanceStatus handles POST /api/v1/orders/:id/status.
func (s *Server) AdvanceStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req AdvanceStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	driverID, err := bodyUUID(req.DriverID, "driver_id")
	if err != nil {
		return fail(ctx, err)
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAdvanceStatusCommand(orderID, driverID, target)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CustomerActionRequest names the acting customer for cancel endpoints.
type CustomerActionRequest struct {
	CustomerID string `json:"customer_id"`
}

func (s *Server) customerOrderAction(ctx echo.Context,
	run func(orderID kernel.UUID, customerID kernel.UUID) error,
) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req CustomerActionRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	customerID, err := bodyUUID(req.CustomerID, "customer_id")
	if err != nil {
		return fail(ctx, err)
	}

	if err = run(orderID, customerID); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelRequest handles POST /api/v1/orders/:id/cancel-request.
func (s *Server) CancelRequest(ctx echo.Context) error {
	return s.customerOrderAction(ctx, func(orderID, customerID kernel.UUID) error {
		cmd, err := commands.NewCancelRequestCommand(orderID, customerID)
		if err != nil {
			return err
		}
		return s.cancelRequestHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.customerOrderAction(ctx, func(orderID, customerID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RateDriverRequest scores a delivered order's driver.
type RateDriverRequest struct {
	CustomerID string  `json:"customer_id"`
	Score      float64 `json:"score"`
}

// RateDriver handles POST /api/v1/orders/:id/rating.
func (s *Server) RateDriver(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	var req RateDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	customerID, err := bodyUUID(req.CustomerID, "customer_id")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRateDriverCommand(orderID, customerID, req.Score)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.rateDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OpenOrderView is the JSON shape of one claimable order.
type OpenOrderView struct {
	ID            string    `json:"id"`
	PickupLat     float64   `json:"pickup_lat"`
	PickupLng     float64   `json:"pickup_lng"`
	PickupAddress string    `json:"pickup_address"`
	DropLat       float64   `json:"drop_lat"`
	DropLng       float64   `json:"drop_lng"`
	DropAddress   string    `json:"drop_address"`
	MaterialType  string    `json:"material_type"`
	WeightKg      float64   `json:"weight_kg"`
	DistanceKm    float64   `json:"distance_km"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListOpenOrders handles GET /api/v1/orders/open.
func (s *Server) ListOpenOrders(ctx echo.Context) error {
	query := queries.NewListOpenOrdersQuery()

	open, err := s.listOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	views := make([]OpenOrderView, len(open))
	for i, o := range open {
		views[i] = OpenOrderView{
			ID:            o.ID.String(),
			PickupLat:     o.Pickup.Lat(),
			PickupLng:     o.Pickup.Lng(),
			PickupAddress: o.PickupAddress,
			DropLat:       o.Drop.Lat(),
			DropLng:       o.Drop.Lng(),
			DropAddress:   o.DropAddress,
			MaterialType:  o.MaterialType,
			WeightKg:      o.WeightKg,
			DistanceKm:    o.DistanceKm,
			CreatedAt:     o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, views)
}

// TrackingView is the JSON shape of the live order view. Driver fields stay
// null until a driver is attached and reporting.
type TrackingView struct {
	ID               string     `json:"id"`
	Status           string     `json:"status"`
	PickupLat        float64    `json:"pickup_lat"`
	PickupLng        float64    `json:"pickup_lng"`
	PickupAddress    string     `json:"pickup_address"`
	DropLat          float64    `json:"drop_lat"`
	DropLng          float64    `json:"drop_lng"`
	DropAddress      string     `json:"drop_address"`
	DriverID         *string    `json:"driver_id"`
	DriverName       *string    `json:"driver_name"`
	DriverLat        *float64   `json:"driver_lat"`
	DriverLng        *float64   `json:"driver_lng"`
	DriverLastSeenAt *time.Time `json:"driver_last_seen_at"`
}

// GetOrderTracking handles GET /api/v1/orders/:id/tracking.
func (s *Server) GetOrderTracking(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetOrderTrackingQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	tracking, err := s.getOrderTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	view := TrackingView{
		ID:            tracking.ID.String(),
		Status:        tracking.Status,
		PickupLat:     tracking.Pickup.Lat(),
		PickupLng:     tracking.Pickup.Lng(),
		PickupAddress: tracking.PickupAddress,
		DropLat:       tracking.Drop.Lat(),
		DropLng:       tracking.Drop.Lng(),
		DropAddress:   tracking.DropAddress,
		DriverName:    tracking.DriverName,
	}
	if tracking.DriverID != nil {
		id := tracking.DriverID.String()
		view.DriverID = &id
		view.DriverLastSeenAt = tracking.DriverLastSeenAt
	}
	if tracking.DriverLocation != nil {
		lat, lng := tracking.DriverLocation.Lat(), tracking.DriverLocation.Lng()
		view.DriverLat, view.DriverLng = &lat, &lng
	}

	return ctx.JSON(http.StatusOK, view)
}

// CustomerOrderView is the JSON shape of one history entry. FareTotal is
// null for unpriced open orders.
type CustomerOrderView struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"`
	PickupAddress string    `json:"pickup_address"`
	DropAddress   string    `json:"drop_address"`
	MaterialType  string    `json:"material_type"`
	WeightKg      float64   `json:"weight_kg"`
	DistanceKm    float64   `json:"distance_km"`
	FareTotal     *float64  `json:"fare_total"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListCustomerOrders handles GET /api/v1/customers/:id/orders.
func (s *Server) ListCustomerOrders(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "id")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewListCustomerOrdersQuery(customerID)
	if err != nil {
		return fail(ctx, err)
	}

	history, err := s.listCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	views := make([]CustomerOrderView, len(history))
	for i, o := range history {
		views[i] = CustomerOrderView{
			ID:            o.ID.String(),
			Status:        o.Status,
			PickupAddress: o.PickupAddress,
			DropAddress:   o.DropAddress,
			MaterialType:  o.MaterialType,
			WeightKg:      o.WeightKg,
			DistanceKm:    o.DistanceKm,
			FareTotal:     o.FareTotal,
			CreatedAt:     o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, views)
}
