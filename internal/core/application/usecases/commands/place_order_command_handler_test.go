package commands_test

import (
	"testing"

	"harvesthub/internal/core/application/usecases/commands"
	"harvesthub/internal/core/domain/model/cart"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/core/domain/model/product"
	"harvesthub/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cartWithApples(t *testing.T, customerID kernel.UUID) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(customerID)
	require.NoError(t, err)

	price, err := kernel.NewMoney(299)
	require.NoError(t, err)
	apples, err := product.NewProduct(
		kernel.NewUUID(), kernel.NewUUID(), "Sunny Side Farms",
		"Organic Apples", "", price, "lb", "Produce", "North York")
	require.NoError(t, err)

	require.NoError(t, c.AddProduct(apples))
	return c
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customerID, "Ada Lovelace", order.Delivery, "12 King St", "Toronto")
	require.NoError(t, err)

	carts := new(MockCartRepository)
	carts.On("GetByCustomer", ctx, customerID).Return(cartWithApples(t, customerID), nil).Once()
	carts.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderStatusChanged", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, carts, services.NewCheckoutService(), publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	carts.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), customerID, "Ada Lovelace", order.Pickup, "", "")
	require.NoError(t, err)

	emptyCart, err := cart.NewCart(customerID)
	require.NoError(t, err)

	carts := new(MockCartRepository)
	carts.On("GetByCustomer", ctx, customerID).Return(emptyCart, nil).Once()

	factory := new(MockOrderUoWFactory)
	publisher := new(MockOrderEventPublisher)

	h := commands.NewPlaceOrderCommandHandler(factory, carts, services.NewCheckoutService(), publisher)
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, cart.ErrCartIsEmpty)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.PlaceOrderCommand

	h := commands.NewPlaceOrderCommandHandler(
		new(MockOrderUoWFactory), new(MockCartRepository), services.NewCheckoutService(),
		new(MockOrderEventPublisher))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
