package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderCreatedPayload struct {
	UserID    string     `json:"user_id,omitempty"`
	UserEmail string     `json:"user_email,omitempty"`
	Total     float64    `json:"total"`
	Status    string     `json:"status"`
	Items     []Document `json:"items"`
}

// NewOrderCreatedEvent wraps a freshly persisted order for the events exchange.
func NewOrderCreatedEvent(o Order) Event[OrderCreatedPayload] {
	return Event[OrderCreatedPayload]{
		ID:      uuid.NewString(),
		Type:    "orders.created",
		Version: 1,
		Time:    time.Now(),
		OrderID: o.ID,
		Payload: OrderCreatedPayload{
			UserID:    o.UserID,
			UserEmail: o.UserEmail,
			Total:     o.Total,
			Status:    o.Status,
			Items:     o.Items,
		},
	}
}
