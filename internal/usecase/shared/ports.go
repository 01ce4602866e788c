package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

import (
	"context"
	"time"

	"fleet-workflow/internal/domain/notification"
	"fleet-workflow/internal/domain/workorder"

	"github.com/google/uuid"
)

// Live topics. Role channels use notification.Channel values as topic names.
const (
	TopicCalendar   = "calendarTecnico"
	TopicActivities = "Actividades"
)

// VehicleRegistry is the fleet catalogue the workflow reads plates and odometers from.
type VehicleRegistry interface {
	Exists(ctx context.Context, plate string) (bool, error)
	FindByPlate(ctx context.Context, plate string) (*Vehicle, error)
	UpdateOdometer(ctx context.Context, plate string, odometer int64) error
	Register(ctx context.Context, v Vehicle) (*Vehicle, error)
}

// NotificationStore is the durable log of notifications shown to each role.
type NotificationStore interface {
	Record(ctx context.Context, n *notification.Notification) error
	Unread(ctx context.Context, channel notification.Channel, limit int) ([]*notification.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// MessageBus fans payloads out to live subscribers of a topic.
type MessageBus interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// MessageSource lets transports attach to a topic.
type MessageSource interface {
	Subscribe(topic string) *Subscription
}

// Transition describes a committed status change of a work order.
type Transition struct {
	OrderID uuid.UUID
	Plate   string
	Status  workorder.Status
	At      time.Time
}

// TransitionPublisher refreshes projections and notifies roles after a commit.
// It never fails the caller; delivery problems are its own to log.
type TransitionPublisher interface {
	PublishTransition(ctx context.Context, t Transition)
}
