package dto

import "time"

// OrderCreatedMessage notifies the seller side of a new order.
type OrderCreatedMessage struct {
	OrderID      string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	Total        int       `json:"total"`
	ItemCount    int       `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// StatusUpdateMessage notifies subscribers of an order status change.
type StatusUpdateMessage struct {
	OrderID   string    `json:"order_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedAt time.Time `json:"changed_at"`
}
