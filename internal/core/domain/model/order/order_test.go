package order_test

import (
	"testing"
	"time"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()

	apples, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), "Sunny Side Farms",
		"Organic Apples", 299, "lb", 2)
	require.NoError(t, err)

	eggs, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), "Happy Hen Homestead",
		"Free-Range Eggs", 500, "dozen", 1)
	require.NoError(t, err)

	return []order.Item{apples, eggs}
}

func newDeliveryOrder(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Ada Lovelace",
		testItems(t), order.Delivery, "12 King St, Toronto", createdAt)
	require.NoError(t, err)
	return o
}

func newPickupOrder(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Ada Lovelace",
		testItems(t), order.Pickup, order.PickupAddress, createdAt)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	createdAt := time.Now()

	t.Run("should start confirmed with delivery fee in total", func(t *testing.T) {
		o := newDeliveryOrder(t, createdAt)

		assert.Equal(t, order.Confirmed, o.Status())
		assert.Nil(t, o.DriverID())
		assert.Equal(t, 0, o.DriverProgress())
		assert.Equal(t, int64(299*2+500+299), o.Total().Cents())
	})

	t.Run("should not charge delivery fee for pickup", func(t *testing.T) {
		o := newPickupOrder(t, createdAt)

		assert.Equal(t, int64(299*2+500), o.Total().Cents())
		assert.Equal(t, order.PickupAddress, o.DeliveryAddress())
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Ada Lovelace",
			nil, order.Delivery, "12 King St, Toronto", createdAt)

		assert.ErrorIs(t, err, order.ErrNoItems)
	})

	t.Run("should fail without address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Ada Lovelace",
			testItems(t), order.Delivery, "", createdAt)

		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	createdAt := time.Now()

	t.Run("should restore an in-transit order", func(t *testing.T) {
		driverID := kernel.NewUUID()
		progressedAt := createdAt.Add(9 * time.Second)
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Ada Lovelace",
			testItems(t), order.Delivery, "12 King St, Toronto", createdAt,
			order.OnTheWay, &driverID, 45, progressedAt, 7)

		require.NoError(t, err)
		assert.Equal(t, order.OnTheWay, o.Status())
		assert.Equal(t, 45, o.DriverProgress())
		assert.Equal(t, progressedAt, o.ProgressedAt())
		assert.Equal(t, int64(7), o.Version())
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(driverID))
	})

	t.Run("should reject on the way without a driver", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Ada Lovelace",
			testItems(t), order.Delivery, "12 King St, Toronto", createdAt,
			order.OnTheWay, nil, 0, time.Time{}, 1)

		require.Error(t, err)
	})

	t.Run("should reject a driver on a pickup order", func(t *testing.T) {
		driverID := kernel.NewUUID()
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Ada Lovelace",
			testItems(t), order.Pickup, order.PickupAddress, createdAt,
			order.Preparing, &driverID, 0, time.Time{}, 1)

		require.Error(t, err)
	})

	t.Run("should reject out-of-range progress", func(t *testing.T) {
		driverID := kernel.NewUUID()
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Ada Lovelace",
			testItems(t), order.Delivery, "12 King St, Toronto", createdAt,
			order.OnTheWay, &driverID, 105, time.Time{}, 1)

		require.Error(t, err)
	})
}

func TestOrder_BelongsToBusiness(t *testing.T) {
	o := newDeliveryOrder(t, time.Now())

	assert.True(t, o.BelongsToBusiness(o.Items()[0].BusinessID()))
	assert.True(t, o.BelongsToBusiness(o.Items()[1].BusinessID()))
	assert.False(t, o.BelongsToBusiness(kernel.NewUUID()))
}

func TestOrder_Claim(t *testing.T) {
	createdAt := time.Now()

	t.Run("should assign courier and move on the way", func(t *testing.T) {
		o := newDeliveryOrder(t, createdAt)
		require.NoError(t, o.StartPreparing())
		courierID := kernel.NewUUID()

		require.NoError(t, o.Claim(courierID))

		assert.Equal(t, order.OnTheWay, o.Status())
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(courierID))
	})

	t.Run("should reject a second claim", func(t *testing.T) {
		o := newDeliveryOrder(t, createdAt)
		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.Claim(kernel.NewUUID()))

		err := o.Claim(kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrOrderAlreadyClaimed)
	})

	t.Run("should reject claiming a pickup order", func(t *testing.T) {
		o := newPickupOrder(t, createdAt)
		require.NoError(t, o.StartPreparing())

		err := o.Claim(kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("should reject claiming a confirmed order", func(t *testing.T) {
		o := newDeliveryOrder(t, createdAt)

		err := o.Claim(kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}

func TestOrder_ConfirmDelivery(t *testing.T) {
	createdAt := time.Now()

	t.Run("should complete when assigned courier confirms", func(t *testing.T) {
		o := newDeliveryOrder(t, createdAt)
		require.NoError(t, o.StartPreparing())
		courierID := kernel.NewUUID()
		require.NoError(t, o.Claim(courierID))

		require.NoError(t, o.ConfirmDelivery(courierID))

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject a different courier", func(t *testing.T) {
		o := newDeliveryOrder(t, createdAt)
		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.Claim(kernel.NewUUID()))

		err := o.ConfirmDelivery(kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrWrongCourier)
		assert.Equal(t, order.OnTheWay, o.Status())
	})

	t.Run("should reject confirming before claim", func(t *testing.T) {
		o := newDeliveryOrder(t, createdAt)
		require.NoError(t, o.StartPreparing())

		err := o.ConfirmDelivery(kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}

func TestOrder_MarkReadyForPickup(t *testing.T) {
	t.Run("should reject on delivery orders", func(t *testing.T) {
		o := newDeliveryOrder(t, time.Now())
		require.NoError(t, o.StartPreparing())

		err := o.MarkReadyForPickup()

		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}

func TestOrder_Advance(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	t.Run("should hold confirmed before the preparing delay", func(t *testing.T) {
		o := newPickupOrder(t, createdAt)

		changed, err := o.Advance(createdAt.Add(4 * time.Second))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should start preparing after five seconds", func(t *testing.T) {
		o := newPickupOrder(t, createdAt)

		changed, err := o.Advance(createdAt.Add(6 * time.Second))

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should mark pickup ready after ten seconds", func(t *testing.T) {
		o := newPickupOrder(t, createdAt)
		_, err := o.Advance(createdAt.Add(6 * time.Second))
		require.NoError(t, err)

		changed, err := o.Advance(createdAt.Add(11 * time.Second))

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.ReadyForPickup, o.Status())
	})

	t.Run("should not mark delivery orders ready for pickup", func(t *testing.T) {
		o := newDeliveryOrder(t, createdAt)
		_, err := o.Advance(createdAt.Add(6 * time.Second))
		require.NoError(t, err)

		changed, err := o.Advance(createdAt.Add(30 * time.Second))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should take one edge per tick", func(t *testing.T) {
		o := newPickupOrder(t, createdAt)

		changed, err := o.Advance(createdAt.Add(30 * time.Second))

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should be idempotent at the same instant", func(t *testing.T) {
		o := newPickupOrder(t, createdAt)
		now := createdAt.Add(6 * time.Second)
		_, err := o.Advance(now)
		require.NoError(t, err)

		changed, err := o.Advance(now)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should step progress at most once per instant", func(t *testing.T) {
		o := newDeliveryOrder(t, createdAt)
		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.Claim(kernel.NewUUID()))

		now := createdAt.Add(12 * time.Second)
		_, err := o.Advance(now)
		require.NoError(t, err)
		require.Equal(t, 5, o.DriverProgress())

		changed, err := o.Advance(now)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 5, o.DriverProgress())
	})

	t.Run("should advance driver progress while on the way", func(t *testing.T) {
		o := newDeliveryOrder(t, createdAt)
		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.Claim(kernel.NewUUID()))

		changed, err := o.Advance(createdAt.Add(12 * time.Second))

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 5, o.DriverProgress())
		assert.Equal(t, order.OnTheWay, o.Status())
	})

	t.Run("should cap progress at one hundred and stop reporting changes", func(t *testing.T) {
		o := newDeliveryOrder(t, createdAt)
		require.NoError(t, o.StartPreparing())
		require.NoError(t, o.Claim(kernel.NewUUID()))

		now := createdAt.Add(12 * time.Second)
		for i := 0; i < 20; i++ {
			changed, err := o.Advance(now)
			require.NoError(t, err)
			assert.True(t, changed)
			now = now.Add(time.Second)
		}
		require.Equal(t, 100, o.DriverProgress())

		changed, err := o.Advance(now)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, 100, o.DriverProgress())
		assert.Equal(t, order.OnTheWay, o.Status())
	})

	t.Run("should never touch a delivered order", func(t *testing.T) {
		o := newPickupOrder(t, createdAt)
		_, err := o.Advance(createdAt.Add(6 * time.Second))
		require.NoError(t, err)
		_, err = o.Advance(createdAt.Add(11 * time.Second))
		require.NoError(t, err)
		require.NoError(t, o.MarkPickedUp())

		changed, err := o.Advance(createdAt.Add(time.Hour))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

// End-to-end lifecycle walks mirroring a full simulated day: one pickup order
// and one delivery order driven by ticks and actor commands together.
func TestOrder_Lifecycle(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	t.Run("pickup order from checkout to collection", func(t *testing.T) {
		o := newPickupOrder(t, createdAt)

		now := createdAt
		for i := 0; i < 12; i++ {
			now = now.Add(time.Second)
			_, err := o.Advance(now)
			require.NoError(t, err)
		}
		require.Equal(t, order.ReadyForPickup, o.Status())

		require.NoError(t, o.MarkPickedUp())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("delivery order from checkout to confirmed drop-off", func(t *testing.T) {
		o := newDeliveryOrder(t, createdAt)
		courierID := kernel.NewUUID()

		now := createdAt.Add(6 * time.Second)
		_, err := o.Advance(now)
		require.NoError(t, err)
		require.Equal(t, order.Preparing, o.Status())

		require.NoError(t, o.Claim(courierID))

		for i := 0; i < 20; i++ {
			now = now.Add(time.Second)
			_, err := o.Advance(now)
			require.NoError(t, err)
		}
		require.Equal(t, 100, o.DriverProgress())
		require.Equal(t, order.OnTheWay, o.Status())

		require.NoError(t, o.ConfirmDelivery(courierID))
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestItem(t *testing.T) {
	t.Run("should compute subtotal", func(t *testing.T) {
		item, err := order.NewItem(
			kernel.NewUUID(), kernel.NewUUID(), "Sunny Side Farms",
			"Organic Apples", 299, "lb", 3)

		require.NoError(t, err)
		assert.Equal(t, int64(897), item.Subtotal().Cents())
	})

	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := order.NewItem(
			kernel.NewUUID(), kernel.NewUUID(), "Sunny Side Farms",
			"Organic Apples", 299, "lb", 0)

		assert.ErrorIs(t, err, order.ErrItemQuantityIsInvalid)
	})
}
