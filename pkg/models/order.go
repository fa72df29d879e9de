package models

import "time"

// Document is an opaque client-supplied record. Items, shipping and payment
// are stored exactly as submitted; only the presence of items is validated.
type Document = map[string]any

const StatusConfirmed = "confirmed"

type Order struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	UserID    string     `json:"userId,omitempty" bson:"userId,omitempty"`
	UserEmail string     `json:"userEmail,omitempty" bson:"userEmail,omitempty"`
	Items     []Document `json:"items" bson:"items"`
	Shipping  Document   `json:"shipping,omitempty" bson:"shipping,omitempty"`
	Payment   Document   `json:"payment,omitempty" bson:"payment,omitempty"`
	Total     float64    `json:"total" bson:"total"`
	OrderDate time.Time  `json:"orderDate" bson:"orderDate"`
	Status    string     `json:"status" bson:"status"`
}
