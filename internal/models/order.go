package models

import "time"

// OrderStatus is the delivery state of an order.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// OrderStatuses lists every allowed status in display order.
var OrderStatuses = []OrderStatus{StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered}

// OrderItem represents a single dish within an order.
type OrderItem struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

// Order represents a customer delivery order.
type Order struct {
	ID           string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	DeliverTo    string      `json:"deliverTo"`
	MobileNumber string      `json:"mobileNumber"`
	Status       OrderStatus `json:"status"`
	Dishes       []OrderItem `json:"dishes" gorm:"serializer:json"`
	CreatedAt    time.Time   `json:"-"`
	UpdatedAt    time.Time   `json:"-"`
}
