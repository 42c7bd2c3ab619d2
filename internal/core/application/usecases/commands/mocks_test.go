package commands_test

import (
	"context"
	"testing"
	"time"

	"harvesthub/internal/core/application/usecases/commands"
	"harvesthub/internal/core/domain/model/cart"
	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func testItems(t *testing.T, businessID kernel.UUID) []order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), businessID, "Sunny Side Farms",
		"Organic Apples", 299, "lb", 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func confirmedDeliveryOrder(t *testing.T, businessID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Ada Lovelace",
		testItems(t, businessID), order.Delivery, "12 King St, Toronto", time.Now())
	require.NoError(t, err)
	return o
}

func preparingDeliveryOrder(t *testing.T, businessID kernel.UUID) *order.Order {
	t.Helper()
	o := confirmedDeliveryOrder(t, businessID)
	require.NoError(t, o.StartPreparing())
	return o
}

func readyPickupOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	return readyPickupOrderFromBusiness(t, customerID, kernel.NewUUID())
}

func readyPickupOrderFromBusiness(t *testing.T, customerID, businessID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, "Ada Lovelace",
		testItems(t, businessID), order.Pickup, order.PickupAddress, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.StartPreparing())
	require.NoError(t, o.MarkReadyForPickup())
	return o
}
