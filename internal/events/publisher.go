package events

import (
	"context"

	"github.com/rs/zerolog"

	"kisansetu-backend/pkg/models"
	"kisansetu-backend/pkg/rabbit"
)

// Publisher pushes orders.created events to the events exchange. Publication
// is best effort: a broker failure is logged and never fails the order.
type Publisher struct {
	Pub *rabbit.Publisher
	Log zerolog.Logger
}

func (p *Publisher) OrderCreated(ctx context.Context, o models.Order) {
	evt := models.NewOrderCreatedEvent(o)
	if err := p.Pub.PublishJSON(ctx, evt.Type, evt); err != nil {
		p.Log.Error().Err(err).Str("order_id", o.ID).Msg("publish orders.created failed")
		return
	}
	p.Log.Debug().Str("order_id", o.ID).Str("event_id", evt.ID).Msg("orders.created published")
}
