package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loadmatrix/internal/core/application/usecases/commands"
	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
	"loadmatrix/internal/core/domain/services"
	"loadmatrix/internal/pkg/errs"
)

func newSelectDriverHandler(t *testing.T, factory *MockUoWFactory, notifier *MockNotifier) commands.SelectDriverCommandHandler {
	t.Helper()
	calculator, err := services.NewFareCalculator(services.DefaultCommissionRate)
	require.NoError(t, err)
	return commands.NewSelectDriverCommandHandler(factory, services.NewDriverMatcher(), calculator, notifier)
}

func TestSelectDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	selected := testSelectionOrder(t, customerID)
	assignee, driverAccount := testEligibleDriver(t)

	cmd, err := commands.NewSelectDriverCommand(selected.ID(), customerID, assignee.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUnitOfWork)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, selected.ID()).Return(selected, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetForUpdate", ctx, assignee.ID()).Return(assignee, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, driverAccount.ID()).Return(driverAccount, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CountActiveByDriver", ctx, assignee.ID()).Return(0, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, selected).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("NotifyOrderStatusChanged", ctx, selected.ID(), order.StatusRequested).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSelectDriverHandler(t, factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusRequested, selected.Status())
	require.NotNil(t, selected.DriverID())
	assert.True(t, selected.DriverID().IsEqual(assignee.ID()))
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestSelectDriverCommandHandler_Handle_DriverBusy(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	selected := testSelectionOrder(t, customerID)
	assignee, driverAccount := testEligibleDriver(t)

	cmd, err := commands.NewSelectDriverCommand(selected.ID(), customerID, assignee.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, selected.ID()).Return(selected, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetForUpdate", ctx, assignee.ID()).Return(assignee, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, driverAccount.ID()).Return(driverAccount, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CountActiveByDriver", ctx, assignee.ID()).Return(1, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSelectDriverHandler(t, factory, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrDriverBusy)
	assert.Equal(t, order.StatusPendingDriverSelection, selected.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestSelectDriverCommandHandler_Handle_IneligibleDriver(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	selected := testSelectionOrder(t, customerID)
	assignee, driverAccount := testEligibleDriver(t)
	driverAccount.Blacklist()

	cmd, err := commands.NewSelectDriverCommand(selected.ID(), customerID, assignee.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, selected.ID()).Return(selected, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetForUpdate", ctx, assignee.ID()).Return(assignee, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, driverAccount.ID()).Return(driverAccount, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CountActiveByDriver", ctx, assignee.ID()).Return(0, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSelectDriverHandler(t, factory, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrDriverUnavailable)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestSelectDriverCommandHandler_Handle_NotTheOrderOwner(t *testing.T) {
	ctx := t.Context()

	selected := testSelectionOrder(t, kernel.NewUUID())
	stranger := kernel.NewUUID()

	cmd, err := commands.NewSelectDriverCommand(selected.ID(), stranger, kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, selected.ID()).Return(selected, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSelectDriverHandler(t, factory, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestSelectDriverCommandHandler_Handle_ChargesDeferredFare(t *testing.T) {
	ctx := t.Context()

	orderer := testCustomer(t)
	assignee, driverAccount := testEligibleDriver(t)
	open := testOpenOrderFor(t, orderer.ID())

	cmd, err := commands.NewSelectDriverCommand(open.ID(), orderer.ID(), assignee.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	accountRepo := new(MockAccountRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, open.ID()).Return(open, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetForUpdate", ctx, assignee.ID()).Return(assignee, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, driverAccount.ID()).Return(driverAccount, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CountActiveByDriver", ctx, assignee.ID()).Return(0, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, orderer.ID()).Return(orderer, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Update", ctx, orderer).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, open).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("NotifyOrderStatusChanged", ctx, open.ID(), order.StatusRequested).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newSelectDriverHandler(t, factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Greater(t, orderer.TotalSpent(), 0.0)
	require.NotNil(t, open.Fare())
	uow.AssertExpectations(t)
}

func testOpenOrderFor(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOpenOrder(kernel.NewUUID(), customerID, testRoute(t), testCargo(t))
	require.NoError(t, err)
	return o
}
