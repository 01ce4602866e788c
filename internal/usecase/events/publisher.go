package events

import (
	"context"
	"log/slog"

	"fleet-workflow/internal/domain/notification"
	"fleet-workflow/internal/pkg/clock"
	"fleet-workflow/internal/usecase/queries"
	"fleet-workflow/internal/usecase/shared"
)

// Publisher pushes the projections and the role notification after a
// transition has been committed. Every step is best effort.
type Publisher struct {
	bus    shared.MessageBus
	orders queries.WorkOrderQueries
	store  shared.NotificationStore
	clock  clock.Clock
}

var _ shared.TransitionPublisher = (*Publisher)(nil)

func NewPublisher(bus shared.MessageBus, orders queries.WorkOrderQueries, store shared.NotificationStore, clk clock.Clock) *Publisher {
	return &Publisher{bus: bus, orders: orders, store: store, clock: clk}
}

func (p *Publisher) PublishTransition(ctx context.Context, t shared.Transition) {
	log := slog.With("work_order_id", t.OrderID, "status", t.Status.String())

	if calendar, err := p.orders.Calendar(ctx); err != nil {
		log.Warn("failed to build calendar projection", "topic", shared.TopicCalendar, "error", err)
	} else {
		p.publish(ctx, log, shared.TopicCalendar, calendar)
	}

	if feed, err := p.orders.Activities(ctx); err != nil {
		log.Warn("failed to build activity feed", "topic", shared.TopicActivities, "error", err)
	} else {
		p.publish(ctx, log, shared.TopicActivities, feed)
	}

	p.notify(ctx, log, t)
}

func (p *Publisher) notify(ctx context.Context, log *slog.Logger, t shared.Transition) {
	n, err := notification.ForTransition(t.OrderID, t.Plate, t.Status, p.clock.Now())
	if err != nil {
		log.Warn("no notification for transition", "error", err)
		return
	}
	topic := n.Channel().String()
	if err := p.store.Record(ctx, n); err != nil {
		log.Warn("failed to record notification", "topic", topic, "error", err)
		return
	}
	p.publish(ctx, log, topic, queries.ToNotificationView(n))
}

func (p *Publisher) publish(ctx context.Context, log *slog.Logger, topic string, payload any) {
	if err := p.bus.Publish(ctx, topic, payload); err != nil {
		log.Warn("failed to publish", "topic", topic, "error", err)
	}
}
