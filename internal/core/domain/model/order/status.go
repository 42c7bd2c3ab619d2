package order

import (
	"errors"
	"fmt"

	"harvesthub/internal/pkg/errs"
)

// ErrInvalidStatusTransition is the unwrap target for every rejected
// lifecycle transition. Commands issued against the wrong state fail with an
// error wrapping this sentinel and naming the offending edge.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order. It implements a state
// machine with forward-only transitions:
//
//	Confirmed ──> Preparing ──┬──> ReadyForPickup ──> Delivered   (pickup)
//	                          └──> OnTheWay ────────> Delivered   (delivery)
//
// The Confirmed→Preparing edge is shared; afterwards the pickup and delivery
// sub-graphs are disjoint. Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Confirmed is the initial status assigned at checkout.
	Confirmed

	// Preparing indicates the business is assembling the order.
	Preparing

	// ReadyForPickup indicates a pickup order is waiting for collection.
	ReadyForPickup

	// OnTheWay indicates a claimed delivery order is in transit.
	OnTheWay

	// Delivered is the terminal state; no further transitions are allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Confirmed:      "Confirmed",
		Preparing:      "Preparing",
		ReadyForPickup: "Ready for Pickup",
		OnTheWay:       "On the Way",
		Delivered:      "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Confirmed:      "Confirmed",
		Preparing:      "Preparing",
		ReadyForPickup: "Ready for Pickup",
		OnTheWay:       "On the Way",
		Delivered:      "Delivered",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Used when reconstructing orders from persistence or transport input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable status name shown on dashboards.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// StartPreparing transitions Confirmed -> Preparing. Fired by the kitchen
// timer or by the business's explicit "start preparing" command.
func (s Status) StartPreparing() (Status, error) {
	if s != Confirmed {
		return 0, s.transitionError("start preparing")
	}
	return Preparing, nil
}

// MarkReadyForPickup transitions Preparing -> ReadyForPickup. Only valid for
// pickup orders; the fulfillment-method guard lives on the Order aggregate.
func (s Status) MarkReadyForPickup() (Status, error) {
	if s != Preparing {
		return 0, s.transitionError("mark ready for pickup")
	}
	return ReadyForPickup, nil
}

// Claim transitions Preparing -> OnTheWay when a courier takes the delivery.
// The unclaimed guard lives on the Order aggregate, which owns the driver id.
func (s Status) Claim() (Status, error) {
	if s != Preparing {
		return 0, s.transitionError("claim")
	}
	return OnTheWay, nil
}

// MarkPickedUp transitions ReadyForPickup -> Delivered when the consumer
// collects a pickup order.
func (s Status) MarkPickedUp() (Status, error) {
	if s != ReadyForPickup {
		return 0, s.transitionError("mark picked up")
	}
	return Delivered, nil
}

// ConfirmDelivery transitions OnTheWay -> Delivered when the assigned courier
// confirms drop-off.
func (s Status) ConfirmDelivery() (Status, error) {
	if s != OnTheWay {
		return 0, s.transitionError("confirm delivery")
	}
	return Delivered, nil
}

func (s Status) transitionError(event string) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidStatusTransition, event, s)
}
