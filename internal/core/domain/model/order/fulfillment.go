package order

import (
	"fmt"

	"harvesthub/internal/pkg/errs"
)

// PickupAddress is the sentinel address recorded on pickup orders instead of
// a consumer-submitted delivery address.
const PickupAddress = "Pickup at Store"

// FulfillmentMethod says how an order reaches the consumer. It is fixed at
// checkout and never changes afterwards.
type FulfillmentMethod int

const (
	// UnknownMethod represents an invalid or undefined fulfillment method.
	UnknownMethod FulfillmentMethod = iota

	// Delivery orders are transported by a courier to the consumer's address.
	Delivery

	// Pickup orders are collected by the consumer at the store.
	Pickup
)

func getMethodStrings() map[FulfillmentMethod]string {
	return map[FulfillmentMethod]string{
		UnknownMethod: "Unknown",
		Delivery:      "Delivery",
		Pickup:        "Pickup",
	}
}

// Validate checks that the method is Delivery or Pickup.
func (m FulfillmentMethod) Validate() error {
	if m != Delivery && m != Pickup {
		return errs.NewValueIsInvalidErrorWithCause("fulfillment method is invalid",
			fmt.Errorf("%d is not a valid fulfillment method", m))
	}
	return nil
}

// String returns the method name.
func (m FulfillmentMethod) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
