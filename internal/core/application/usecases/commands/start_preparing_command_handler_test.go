package commands_test

import (
	"testing"

	"harvesthub/internal/core/application/usecases/commands"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartPreparingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	businessID := kernel.NewUUID()
	aggregate := confirmedDeliveryOrder(t, businessID)
	cmd, err := commands.NewStartPreparingCommand(aggregate.ID(), businessID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderStatusChanged", ctx, aggregate).Return(nil).Once()

	h := commands.NewStartPreparingCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartPreparingCommandHandler_Handle_ForeignBusiness(t *testing.T) {
	ctx := t.Context()
	aggregate := confirmedDeliveryOrder(t, kernel.NewUUID())
	cmd, err := commands.NewStartPreparingCommand(aggregate.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartPreparingCommandHandler(factory, new(MockOrderEventPublisher))
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, commands.ErrActorNotAuthorized)
	assert.Equal(t, order.Confirmed, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestStartPreparingCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := t.Context()
	businessID := kernel.NewUUID()
	aggregate := preparingDeliveryOrder(t, businessID)
	cmd, err := commands.NewStartPreparingCommand(aggregate.ID(), businessID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartPreparingCommandHandler(factory, new(MockOrderEventPublisher))
	err = h.Handle(ctx, cmd)

	assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
}
