package commands

import (
	"errors"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrStreetIsRequired       = errors.New("street is required for delivery orders")
	ErrCityIsRequired         = errors.New("city is required for delivery orders")
)

// PlaceOrderCommand represents a consumer's checkout request: turn the
// contents of their cart into a confirmed order with the chosen fulfillment
// method. Street and city are required for delivery and ignored for pickup.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	customerName string
	method       order.FulfillmentMethod
	street       string
	city         string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a validated checkout command.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	method order.FulfillmentMethod,
	street string,
	city string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customerID, customerName),
		cmd.setFulfillment(method, street, city),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the checking-out consumer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerName returns the consumer's display name.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// Method returns the chosen fulfillment method.
func (c PlaceOrderCommand) Method() order.FulfillmentMethod {
	return c.method
}

// Street returns the delivery street, empty for pickup.
func (c PlaceOrderCommand) Street() string {
	return c.street
}

// City returns the delivery city, empty for pickup.
func (c PlaceOrderCommand) City() string {
	return c.city
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomer(customerID kernel.UUID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerID = customerID
	c.customerName = customerName
	return nil
}

func (c *PlaceOrderCommand) setFulfillment(method order.FulfillmentMethod, street, city string) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if method == order.Delivery {
		if street == "" {
			return ErrStreetIsRequired
		}
		if city == "" {
			return ErrCityIsRequired
		}
	}

	c.method = method
	c.street = street
	c.city = city
	return nil
}
