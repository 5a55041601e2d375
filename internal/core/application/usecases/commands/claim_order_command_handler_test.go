package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loadmatrix/internal/core/application/usecases/commands"
	"loadmatrix/internal/core/domain/model/order"
	"loadmatrix/internal/core/domain/services"
	"loadmatrix/internal/pkg/errs"
)

func newClaimHandler(t *testing.T, factory *MockUoWFactory, notifier *MockNotifier) commands.ClaimOrderCommandHandler {
	t.Helper()
	calculator, err := services.NewFareCalculator(services.DefaultCommissionRate)
	require.NoError(t, err)
	return commands.NewClaimOrderCommandHandler(factory, services.NewDriverMatcher(), calculator, notifier)
}

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	orderer := testCustomer(t)
	open := testOpenOrderFor(t, orderer.ID())
	claimant, driverAccount := testEligibleDriver(t)

	cmd, err := commands.NewClaimOrderCommand(open.ID(), claimant.ID())
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
		driverRepo.On("GetForUpdate", ctx, claimant.ID()).Return(claimant, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, driverAccount.ID()).Return(driverAccount, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CountActiveByDriver", ctx, claimant.ID()).Return(0, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, orderer.ID()).Return(orderer, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Update", ctx, orderer).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, open).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("NotifyOrderStatusChanged", ctx, open.ID(), order.StatusAssigned).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newClaimHandler(t, factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusAssigned, open.Status())
	require.NotNil(t, open.Fare())
	assert.Greater(t, orderer.TotalSpent(), 0.0)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_LostRaceOnVersion(t *testing.T) {
	ctx := t.Context()

	orderer := testCustomer(t)
	open := testOpenOrderFor(t, orderer.ID())
	claimant, driverAccount := testEligibleDriver(t)

	cmd, err := commands.NewClaimOrderCommand(open.ID(), claimant.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	accountRepo := new(MockAccountRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)

	conflict := errs.NewConcurrencyConflictError(open.ID().String())
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, open.ID()).Return(open, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetForUpdate", ctx, claimant.ID()).Return(claimant, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, driverAccount.ID()).Return(driverAccount, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CountActiveByDriver", ctx, claimant.ID()).Return(0, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, orderer.ID()).Return(orderer, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Update", ctx, orderer).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, open).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	handler := newClaimHandler(t, factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
	notifier.AssertNotCalled(t, "NotifyOrderStatusChanged", mock.Anything, mock.Anything, mock.Anything)
}

func TestClaimOrderCommandHandler_Handle_OrderAlreadyTaken(t *testing.T) {
	ctx := t.Context()

	orderer := testCustomer(t)
	taken := testOpenOrderFor(t, orderer.ID())
	firstClaimant, _ := testEligibleDriver(t)
	fare, err := order.NewFare(100, 80, 20)
	require.NoError(t, err)
	require.NoError(t, taken.Claim(firstClaimant.ID(), fare))

	claimant, driverAccount := testEligibleDriver(t)
	cmd, err := commands.NewClaimOrderCommand(taken.ID(), claimant.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, taken.ID()).Return(taken, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetForUpdate", ctx, claimant.ID()).Return(claimant, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", ctx, driverAccount.ID()).Return(driverAccount, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("CountActiveByDriver", ctx, claimant.ID()).Return(0, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newClaimHandler(t, factory, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}
