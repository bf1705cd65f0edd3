package domain

import "time"

const (
	EventOrderPlaced    = "order_placed"
	EventOrderAccepted  = "order_accepted"
	EventOrderRejected  = "order_rejected"
	EventOrderCompleted = "order_completed"
)

type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     int       `json:"order_id"`
	TableNumber int       `json:"table_number,omitempty"`
	CustomerID  int       `json:"customer_id,omitempty"`
	ChefID      int       `json:"chef_id,omitempty"`
	Message     string    `json:"message,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
