package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"kisansetu-backend/internal/repo"
	"kisansetu-backend/pkg/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type Orders struct {
	Gateway Gateway
	Events  OrderEventSink
	Log     zerolog.Logger
}

// Create validates and records an order. The returned flag reports whether the
// order was persisted; in demo mode the order only exists in this response.
// Connectivity is read per call, never cached.
func (s *Orders) Create(ctx context.Context, o models.Order) (models.Order, bool, error) {
	if len(o.Items) == 0 {
		return models.Order{}, false, ErrEmptyItems
	}

	if !s.Gateway.Connected(ctx) {
		o.ID = uuid.NewString()
		o.OrderDate = time.Now()
		if o.Status == "" {
			o.Status = models.StatusConfirmed
		}
		s.Log.Info().Str("order_id", o.ID).Msg("store not connected, echoing unpersisted order")
		return o, false, nil
	}

	stored, err := s.Gateway.CreateOrder(ctx, o)
	if err != nil {
		return models.Order{}, false, err
	}
	if s.Events != nil {
		s.Events.OrderCreated(ctx, stored)
	}
	s.Log.Info().Str("order_id", stored.ID).Float64("total", stored.Total).Msg("order created")
	return stored, true, nil
}

// List returns orders newest first, filtered by the optional query. The limit
// is clamped to [1, 100], defaulting to 50. Demo mode has nothing to list.
func (s *Orders) List(ctx context.Context, query string, limit int) ([]models.Order, error) {
	if !s.Gateway.Connected(ctx) {
		return []models.Order{}, nil
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.Gateway.FindOrders(ctx, query, int64(limit))
}

// Get looks up a single order. Demo mode never resolves an id: orders created
// while disconnected were never stored.
func (s *Orders) Get(ctx context.Context, id string) (models.Order, error) {
	if !s.Gateway.Connected(ctx) {
		return models.Order{}, repo.ErrNotFound
	}
	return s.Gateway.FindOrderByID(ctx, id)
}
