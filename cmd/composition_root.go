package cmd

import (
	"gorm.io/gorm"

	"loadmatrix/internal/adapters/in/http"
	"loadmatrix/internal/adapters/out/postgres"
	"loadmatrix/internal/core/application/usecases/commands"
	"loadmatrix/internal/core/application/usecases/queries"
	"loadmatrix/internal/core/domain/services"
	"loadmatrix/internal/core/ports"
)

// CompositionRoot wires adapters into use case handlers. Handlers are cheap
// value types, so each Create method builds a fresh one.
type CompositionRoot struct {
	configs        Config
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	fareCalculator services.FareCalculator
	driverMatcher  services.DriverMatcher
	notifier       ports.Notifier
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, notifier ports.Notifier) (CompositionRoot, error) {
	fareCalculator, err := services.NewFareCalculator(configs.CommissionRate)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:        configs,
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		fareCalculator: fareCalculator,
		driverMatcher:  services.NewDriverMatcher(),
		notifier:       notifier,
	}, nil
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createDriverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createAccountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.createUoWFactory(), c.fareCalculator, c.notifier)
}

func (c *CompositionRoot) CreateCreateOpenOrderCommandHandler() commands.CreateOpenOrderCommandHandler {
	return commands.NewCreateOpenOrderCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSelectDriverCommandHandler() commands.SelectDriverCommandHandler {
	return commands.NewSelectDriverCommandHandler(c.createUoWFactory(), c.driverMatcher, c.fareCalculator, c.notifier)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.createUoWFactory(), c.driverMatcher, c.fareCalculator, c.notifier)
}

func (c *CompositionRoot) CreateAcceptRequestCommandHandler() commands.AcceptRequestCommandHandler {
	return commands.NewAcceptRequestCommandHandler(c.createOrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRejectRequestCommandHandler() commands.RejectRequestCommandHandler {
	return commands.NewRejectRequestCommandHandler(c.createOrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelRequestCommandHandler() commands.CancelRequestCommandHandler {
	return commands.NewCancelRequestCommandHandler(c.createOrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.createOrderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAdvanceStatusCommandHandler() commands.AdvanceStatusCommandHandler {
	return commands.NewAdvanceStatusCommandHandler(c.createUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRateDriverCommandHandler() commands.RateDriverCommandHandler {
	return commands.NewRateDriverCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	return commands.NewUpdateDriverLocationCommandHandler(c.createDriverUoWFactory())
}

func (c *CompositionRoot) CreateGoOfflineCommandHandler() commands.GoOfflineCommandHandler {
	return commands.NewGoOfflineCommandHandler(c.createDriverUoWFactory())
}

func (c *CompositionRoot) CreateSetDriverAvailabilityCommandHandler() commands.SetDriverAvailabilityCommandHandler {
	return commands.NewSetDriverAvailabilityCommandHandler(c.createDriverUoWFactory())
}

func (c *CompositionRoot) CreateVerifyDriverCommandHandler() commands.VerifyDriverCommandHandler {
	return commands.NewVerifyDriverCommandHandler(c.createDriverUoWFactory())
}

func (c *CompositionRoot) CreateSweepStaleDriversCommandHandler() commands.SweepStaleDriversCommandHandler {
	return commands.NewSweepStaleDriversCommandHandler(c.createDriverUoWFactory())
}

func (c *CompositionRoot) CreateSetAccountBlacklistCommandHandler() commands.SetAccountBlacklistCommandHandler {
	return commands.NewSetAccountBlacklistCommandHandler(c.createAccountUoWFactory())
}

func (c *CompositionRoot) CreateRequestPasswordResetCommandHandler() commands.RequestPasswordResetCommandHandler {
	return commands.NewRequestPasswordResetCommandHandler(c.createAccountUoWFactory(), c.configs.ResetTokenTTL)
}

func (c *CompositionRoot) CreateResetPasswordCommandHandler() commands.ResetPasswordCommandHandler {
	return commands.NewResetPasswordCommandHandler(c.createAccountUoWFactory())
}

func (c *CompositionRoot) CreatePurgeExpiredTokensCommandHandler() commands.PurgeExpiredTokensCommandHandler {
	return commands.NewPurgeExpiredTokensCommandHandler(c.createAccountUoWFactory())
}

func (c *CompositionRoot) CreateListAvailableDriversQueryHandler() queries.ListAvailableDriversQueryHandler {
	return queries.NewListAvailableDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriverRequestsQueryHandler() queries.ListDriverRequestsQueryHandler {
	return queries.NewListDriverRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverEarningsQueryHandler() queries.GetDriverEarningsQueryHandler {
	return queries.NewGetDriverEarningsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOpenOrdersQueryHandler() queries.ListOpenOrdersQueryHandler {
	return queries.NewListOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomerOrdersQueryHandler() queries.ListCustomerOrdersQueryHandler {
	return queries.NewListCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTrackingQueryHandler() queries.GetOrderTrackingQueryHandler {
	return queries.NewGetOrderTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFareQuoteQueryHandler() queries.GetFareQuoteQueryHandler {
	return queries.NewGetFareQuoteQueryHandler(c.fareCalculator)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every handler the HTTP server exposes.
func (c *CompositionRoot) CreateHTTPHandlers() http.Handlers {
	return http.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		CreateOpenOrder:      c.CreateCreateOpenOrderCommandHandler(),
		SelectDriver:         c.CreateSelectDriverCommandHandler(),
		AcceptRequest:        c.CreateAcceptRequestCommandHandler(),
		RejectRequest:        c.CreateRejectRequestCommandHandler(),
		CancelRequest:        c.CreateCancelRequestCommandHandler(),
		ClaimOrder:           c.CreateClaimOrderCommandHandler(),
		AdvanceStatus:        c.CreateAdvanceStatusCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		RateDriver:           c.CreateRateDriverCommandHandler(),
		UpdateDriverLocation: c.CreateUpdateDriverLocationCommandHandler(),
		GoOffline:            c.CreateGoOfflineCommandHandler(),
		SetAvailability:      c.CreateSetDriverAvailabilityCommandHandler(),
		VerifyDriver:         c.CreateVerifyDriverCommandHandler(),
		SetBlacklist:         c.CreateSetAccountBlacklistCommandHandler(),
		RequestPasswordReset: c.CreateRequestPasswordResetCommandHandler(),
		ResetPassword:        c.CreateResetPasswordCommandHandler(),

		ListAvailableDrivers: c.CreateListAvailableDriversQueryHandler(),
		ListDriverRequests:   c.CreateListDriverRequestsQueryHandler(),
		GetDriverEarnings:    c.CreateGetDriverEarningsQueryHandler(),
		ListOpenOrders:       c.CreateListOpenOrdersQueryHandler(),
		ListCustomerOrders:   c.CreateListCustomerOrdersQueryHandler(),
		GetOrderTracking:     c.CreateGetOrderTrackingQueryHandler(),
		GetFareQuote:         c.CreateGetFareQuoteQueryHandler(),
		GetDashboardStats:    c.CreateGetDashboardStatsQueryHandler(),
	}
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
