package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loadmatrix/internal/core/application/usecases/commands"
	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/core/domain/model/order"
	"loadmatrix/internal/core/domain/services"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	orderer := testCustomer(t)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orderer.ID(), testRoute(t), testCargo(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, orderer.ID()).Return(orderer, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Update", ctx, orderer).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("NotifyOrderStatusChanged", ctx, cmd.OrderID(), order.StatusPendingDriverSelection).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	calculator, err := services.NewFareCalculator(services.DefaultCommissionRate)
	require.NoError(t, err)

	handler := commands.NewCreateOrderCommandHandler(factory, calculator, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, orderer.TotalOrders())
	assert.Greater(t, orderer.TotalSpent(), 0.0)
	orderRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	calculator, err := services.NewFareCalculator(services.DefaultCommissionRate)
	require.NoError(t, err)

	handler := commands.NewCreateOrderCommandHandler(factory, calculator, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	orderer := testCustomer(t)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orderer.ID(), testRoute(t), testCargo(t))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, orderer.ID()).Return(orderer, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	calculator, err := services.NewFareCalculator(services.DefaultCommissionRate)
	require.NoError(t, err)

	notifier := new(MockNotifier)
	handler := commands.NewCreateOrderCommandHandler(factory, calculator, notifier)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	uow.AssertNotCalled(t, "Commit", ctx)
	notifier.AssertNotCalled(t, "NotifyOrderStatusChanged", mock.Anything, mock.Anything, mock.Anything)
}
