// Package queries contains the read side of the application: dashboard and
// listing queries served straight from the database, bypassing the aggregates.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"harvesthub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderItemView is a line item as shown on dashboards.
type OrderItemView struct {
	ProductID    string `json:"productId"`
	BusinessID   string `json:"businessId"`
	BusinessName string `json:"businessName"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Unit         string `json:"unit"`
	Quantity     int    `json:"quantity"`
}

// OrderView is the read model shared by the business, courier, and consumer
// dashboards. Money amounts are integer cents; statuses are display strings.
type OrderView struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	Items           []OrderItemView `json:"items"`
	Total           int64           `json:"total"`
	CreatedAt       time.Time       `json:"createdAt"`
	Status          string          `json:"status"`
	Method          string          `json:"fulfillmentMethod"`
	DeliveryAddress string          `json:"deliveryAddress"`
	DriverID        *string         `json:"driverId,omitempty"`
	DriverProgress  int             `json:"driverProgress"`
}

// orderViewColumns is the column list every order listing selects, in the
// order scanOrderRows expects.
const orderViewColumns = `
	id,
	customer_id,
	customer_name,
	items,
	total,
	created_at,
	status,
	method,
	delivery_address,
	driver_id,
	driver_progress
`

type rowsScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

func scanOrderRows(rows rowsScanner) ([]OrderView, error) {
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		var (
			id             uuid.UUID
			customerID     uuid.UUID
			rawItems       []byte
			createdAt      time.Time
			status         int
			method         int
			driverID       uuid.NullUUID
			view           OrderView
			driverProgress sql.NullInt64
		)

		if err := rows.Scan(
			&id,
			&customerID,
			&view.CustomerName,
			&rawItems,
			&view.Total,
			&createdAt,
			&status,
			&method,
			&view.DeliveryAddress,
			&driverID,
			&driverProgress,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(rawItems, &view.Items); err != nil {
			return nil, err
		}

		view.ID = id.String()
		view.CustomerID = customerID.String()
		view.CreatedAt = createdAt
		view.Status = order.Status(status).String()
		view.Method = order.FulfillmentMethod(method).String()
		if driverID.Valid {
			s := driverID.UUID.String()
			view.DriverID = &s
		}
		if driverProgress.Valid {
			view.DriverProgress = int(driverProgress.Int64)
		}

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}
