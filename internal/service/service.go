package service

import (
	"context"
	"errors"

	"kisansetu-backend/pkg/models"
)

// Validation failures, reported to callers as client errors.
var (
	ErrUsernameRequired = errors.New("username required")
	ErrEmptyItems       = errors.New("order must contain items")
)

// Gateway is the persistence surface the services run against. When Connected
// reports false every operation falls back to demo mode: synthesized,
// non-durable responses instead of refused requests.
type Gateway interface {
	Connected(ctx context.Context) bool
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	CreateOrder(ctx context.Context, o models.Order) (models.Order, error)
	FindOrders(ctx context.Context, query string, limit int64) ([]models.Order, error)
	FindOrderByID(ctx context.Context, id string) (models.Order, error)
}

// OrderEventSink receives best-effort notifications about persisted orders.
type OrderEventSink interface {
	OrderCreated(ctx context.Context, o models.Order)
}
