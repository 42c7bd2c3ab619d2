// Package orderrepo persists order aggregates with GORM. Line items are
// stored as a jsonb snapshot so listing queries can filter and aggregate on
// them without extra tables.
package orderrepo

import (
	"encoding/json"
	"time"

	"harvesthub/internal/core/domain/model/kernel"
	"harvesthub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database row for an order aggregate. The version
// column backs optimistic concurrency: every update bumps it, and writers
// must present the version they loaded.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string
	Items           string `gorm:"type:jsonb"`
	Total           int64
	CreatedAt       time.Time
	Status          int `gorm:"index"`
	Method          int
	DeliveryAddress string
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	DriverProgress  int
	ProgressedAt    *time.Time
	Version         int64
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// itemDTO is one element of the items jsonb array. Key names are shared with
// the dashboard read models and the jsonb filters in the query handlers.
type itemDTO struct {
	ProductID    string `json:"productId"`
	BusinessID   string `json:"businessId"`
	BusinessName string `json:"businessName"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Unit         string `json:"unit"`
	Quantity     int    `json:"quantity"`
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{
			ProductID:    item.ProductID().String(),
			BusinessID:   item.BusinessID().String(),
			BusinessName: item.BusinessName(),
			Name:         item.Name(),
			Price:        item.Price().Cents(),
			Unit:         item.Unit(),
			Quantity:     item.Quantity(),
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var progressedAt *time.Time
	if at := aggregate.ProgressedAt(); !at.IsZero() {
		progressedAt = &at
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		CustomerName:    aggregate.CustomerName(),
		Items:           string(rawItems),
		Total:           aggregate.Total().Cents(),
		CreatedAt:       aggregate.CreatedAt(),
		Status:          int(aggregate.Status()),
		Method:          int(aggregate.FulfillmentMethod()),
		DeliveryAddress: aggregate.DeliveryAddress(),
		DriverID:        driverID,
		DriverProgress:  aggregate.DriverProgress(),
		ProgressedAt:    progressedAt,
		Version:         aggregate.Version(),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var rawItems []itemDTO
	if err = json.Unmarshal([]byte(dto.Items), &rawItems); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(rawItems))
	for _, raw := range rawItems {
		item, itemErr := toDomainItem(raw)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	var progressedAt time.Time
	if dto.ProgressedAt != nil {
		progressedAt = *dto.ProgressedAt
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.CustomerName,
		items,
		order.FulfillmentMethod(dto.Method),
		dto.DeliveryAddress,
		dto.CreatedAt,
		order.Status(dto.Status),
		driverID,
		dto.DriverProgress,
		progressedAt,
		dto.Version,
	)
}

func toDomainItem(raw itemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromString(raw.ProductID)
	if err != nil {
		return order.Item{}, err
	}

	businessID, err := kernel.UUIDFromString(raw.BusinessID)
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoney(raw.Price)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(
		productID, businessID, raw.BusinessName, raw.Name, price, raw.Unit, raw.Quantity)
}
