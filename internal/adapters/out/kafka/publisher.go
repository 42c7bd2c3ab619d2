// Package kafka publishes order lifecycle events to a Kafka topic so other
// systems (notifications, analytics) can follow fulfillment without polling.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"harvesthub/internal/core/domain/model/order"
	"harvesthub/internal/core/ports"

	"github.com/IBM/sarama"
)

// OrderStatusChangedEvent is the wire format of a lifecycle change. Money is
// integer cents; statuses are the display strings from the domain.
type OrderStatusChangedEvent struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	Status     string    `json:"status"`
	Method     string    `json:"fulfillmentMethod"`
	Total      int64     `json:"total"`
	DriverID   *string   `json:"driverId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher implements ports.OrderEventPublisher on a sarama sync producer.
// Messages are keyed by order ID so all events of one order land in the same
// partition, in order.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher connects a sync producer to the given brokers.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return &Publisher{producer: producer, topic: topic}, nil
}

// PublishOrderStatusChanged emits one event for the order's current status.
func (p *Publisher) PublishOrderStatusChanged(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := OrderStatusChangedEvent{
		OrderID:    aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		Status:     aggregate.Status().String(),
		Method:     aggregate.FulfillmentMethod().String(),
		Total:      aggregate.Total().Cents(),
		OccurredAt: time.Now().UTC(),
	}
	if driverID := aggregate.DriverID(); driverID != nil {
		s := driverID.String()
		event.DriverID = &s
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

// Close shuts the underlying producer down.
func (p *Publisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher discards events. Used when no Kafka host is configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that does nothing.
func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

// PublishOrderStatusChanged discards the event.
func (NoopPublisher) PublishOrderStatusChanged(_ context.Context, _ *order.Order) error {
	return nil
}

var (
	_ ports.OrderEventPublisher = (*Publisher)(nil)
	_ ports.OrderEventPublisher = NoopPublisher{}
)
