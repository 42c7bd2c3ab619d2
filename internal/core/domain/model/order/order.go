package order

import (
	"errors"
	"time"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/pkg/errs"
)

// Timing and pricing rules of the fulfillment simulation. Status edges are
// measured from the order's creation timestamp and transit progress from the
// last recorded step, so re-evaluating the same instant is idempotent.
const (
	// DeliveryFee is the flat fee added to delivery order totals. Pickup is free.
	DeliveryFee kernel.Money = 299

	// preparingDelay is how long after checkout the kitchen starts preparing.
	preparingDelay = 5 * time.Second

	// readyForPickupDelay is how long after checkout a pickup order is ready.
	readyForPickupDelay = 10 * time.Second

	// progressStep is the driver progress gained per simulation tick.
	progressStep = 5

	// maxDriverProgress is the progress value at which the driver has arrived.
	maxDriverProgress = 100
)

var (
	// ErrOrderIsNotConstructed is returned when an Order bypassed its constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyClaimed is returned when a courier attempts to claim a
	// delivery that another courier already took. This is the loser's outcome
	// of the first-writer-wins claim race.
	ErrOrderAlreadyClaimed = errors.New("order already claimed by another courier")

	// ErrWrongCourier is returned when a courier other than the assigned one
	// attempts to confirm the delivery.
	ErrWrongCourier = errors.New("delivery can only be confirmed by the assigned courier")

	// ErrNoItems is returned when constructing an order without line items.
	ErrNoItems = errs.NewValueIsRequiredError("order items")
)

// Order is the central aggregate of the fulfillment lifecycle. It is created
// at checkout in Confirmed status and advanced jointly by the simulation tick
// (time-driven edges) and actor commands (role-gated edges) until it reaches
// the terminal Delivered status.
//
// Invariants:
//   - status only moves forward along the transition graph in status.go
//   - driverID is set at most once, by the claiming courier
//   - driverProgress stays within [0,100] and never decreases
//   - a Delivered order is immutable
//   - total always equals the item subtotals plus the fulfillment fee
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	customerName    string
	items           []Item
	total           kernel.Money
	createdAt       time.Time
	status          Status
	method          FulfillmentMethod
	deliveryAddress string
	driverID        *kernel.UUID
	driverProgress  int
	progressedAt    time.Time
	version         int64

	isConstructed bool
}

// NewOrder creates an order from checkout output: the line-item snapshot, the
// chosen fulfillment method, and the resolved address. The order starts in
// Confirmed status with no driver and zero progress; the total is computed
// here so it can never drift from the items.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	items []Item,
	method FulfillmentMethod,
	deliveryAddress string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Confirmed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID, customerName),
		o.setItems(items),
		o.setMethod(method),
		o.setDeliveryAddress(deliveryAddress),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.total = o.computeTotal()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its current
// status, driver assignment, progress, and optimistic concurrency version.
// Consistency between status and driver assignment is re-validated so corrupt
// rows cannot re-enter the domain.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	items []Item,
	method FulfillmentMethod,
	deliveryAddress string,
	createdAt time.Time,
	status Status,
	driverID *kernel.UUID,
	driverProgress int,
	progressedAt time.Time,
	version int64,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID, customerName),
		o.setItems(items),
		o.setMethod(method),
		o.setDeliveryAddress(deliveryAddress),
		o.setCreatedAt(createdAt),
		o.setStatus(status, driverID),
		o.setDriverProgress(driverProgress),
	); err != nil {
		return nil, err
	}

	o.total = o.computeTotal()
	o.progressedAt = progressedAt
	o.version = version
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the purchasing consumer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// CustomerName returns the consumer's name snapshotted at checkout.
func (o *Order) CustomerName() string { return o.customerName }

// Items returns a copy of the line-item snapshots.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Total returns the order total: item subtotals plus the fulfillment fee.
func (o *Order) Total() kernel.Money { return o.total }

// CreatedAt returns the checkout timestamp, the reference point for all
// elapsed-time transitions.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// FulfillmentMethod returns how the order reaches the consumer.
func (o *Order) FulfillmentMethod() FulfillmentMethod { return o.method }

// DeliveryAddress returns the resolved address: the consumer's street and
// city for delivery orders, or the pickup sentinel.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// DriverID returns the claiming courier's identifier, or nil while unclaimed.
func (o *Order) DriverID() *kernel.UUID { return o.driverID }

// DriverProgress returns transit progress in [0,100]. Meaningful only while
// the order is OnTheWay.
func (o *Order) DriverProgress() int { return o.driverProgress }

// ProgressedAt returns the instant of the last transit progress step, or the
// zero time if progress has never advanced.
func (o *Order) ProgressedAt() time.Time { return o.progressedAt }

// Version returns the optimistic concurrency version loaded from the store.
func (o *Order) Version() int64 { return o.version }

// BelongsToBusiness reports whether at least one line item was supplied by
// the given business. Business commands and dashboard filtering use this as
// the ownership check.
func (o *Order) BelongsToBusiness(businessID kernel.UUID) bool {
	for _, item := range o.items {
		if item.BusinessID().IsEqual(businessID) {
			return true
		}
	}
	return false
}

// IsCustomer reports whether the given actor is the purchasing consumer.
func (o *Order) IsCustomer(actorID kernel.UUID) bool {
	return o.customerID.IsEqual(actorID)
}

// IsClaimed reports whether a courier has taken the delivery.
func (o *Order) IsClaimed() bool {
	return o.driverID != nil
}

// StartPreparing moves the order from Confirmed to Preparing. Businesses may
// fire this ahead of the kitchen timer.
func (o *Order) StartPreparing() error {
	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReadyForPickup moves a pickup order from Preparing to ReadyForPickup.
func (o *Order) MarkReadyForPickup() error {
	if o.method != Pickup {
		return o.status.transitionError("mark a delivery order ready for pickup")
	}

	newStatus, err := o.status.MarkReadyForPickup()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPickedUp completes a pickup order once the consumer collects it.
func (o *Order) MarkPickedUp() error {
	newStatus, err := o.status.MarkPickedUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Claim assigns the delivery to a courier and moves the order to OnTheWay.
//
// The driver id is set exactly once: a second claim fails with
// ErrOrderAlreadyClaimed regardless of status, so a losing courier gets a
// claim conflict rather than a generic transition error. Store-level
// compare-and-set turns concurrent claims into the same failure.
func (o *Order) Claim(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return ErrOrderAlreadyClaimed
	}
	if o.method != Delivery {
		return o.status.transitionError("claim a pickup order")
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &courierID
	return nil
}

// ConfirmDelivery completes the order when the assigned courier confirms
// drop-off. Only the claiming courier may confirm.
func (o *Order) ConfirmDelivery(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.ConfirmDelivery()
	if err != nil {
		return err
	}

	if o.driverID == nil || !o.driverID.IsEqual(courierID) {
		return ErrWrongCourier
	}

	o.status = newStatus
	return nil
}

// Advance applies the time-driven edges of the lifecycle for the given
// instant and reports whether anything changed. It is the pure decision
// function behind the simulation tick:
//
//   - Confirmed -> Preparing once preparingDelay has elapsed since checkout
//   - Preparing -> ReadyForPickup for pickup orders after readyForPickupDelay
//   - OnTheWay: driver progress advances by progressStep, capped at 100,
//     at most once per instant (progressedAt records the last step)
//
// Advance never claims deliveries, never completes them, and never touches a
// Delivered order; those edges belong to actor commands. Re-invoking with the
// same instant is a no-op across all edges: status edges are elapsed-based,
// and a progress step only fires when now is later than the last step.
func (o *Order) Advance(now time.Time) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if o.status.IsTerminal() {
		return false, nil
	}

	elapsed := now.Sub(o.createdAt)

	switch o.status {
	case Confirmed:
		if elapsed >= preparingDelay {
			o.status = Preparing
			return true, nil
		}
	case Preparing:
		if o.method == Pickup && elapsed >= readyForPickupDelay {
			o.status = ReadyForPickup
			return true, nil
		}
	case OnTheWay:
		if o.driverProgress < maxDriverProgress && now.After(o.progressedAt) {
			o.driverProgress = min(o.driverProgress+progressStep, maxDriverProgress)
			o.progressedAt = now
			return true, nil
		}
	case ReadyForPickup, Delivered, Unknown:
	}

	return false, nil
}

func (o *Order) computeTotal() kernel.Money {
	var total kernel.Money
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	if o.method == Delivery {
		total = total.Add(DeliveryFee)
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(id kernel.UUID, name string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerID = id
	o.customerName = name
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setMethod(method FulfillmentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.method = method
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setStatus(status Status, driverID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
		if o.method != Delivery {
			return errs.NewValueIsInvalidError("pickup orders cannot have a driver")
		}
	}
	if driverID == nil && status == OnTheWay {
		return errs.NewValueIsInvalidError("an order on the way must have a driver")
	}

	o.status = status
	o.driverID = driverID
	return nil
}

func (o *Order) setDriverProgress(progress int) error {
	if progress < 0 || progress > maxDriverProgress {
		return errs.NewValueIsOutOfRangeError("driver progress", progress, 0, maxDriverProgress)
	}
	o.driverProgress = progress
	return nil
}
