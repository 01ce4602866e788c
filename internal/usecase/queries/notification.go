package queries

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/queries/notification.go -package=queriesmock

import (
	"context"

	"fleet-workflow/internal/domain/notification"
	"fleet-workflow/internal/usecase/shared"
)

const (
	defaultUnreadLimit = 20
	maxUnreadLimit     = 100
)

type NotificationQueries interface {
	Unread(ctx context.Context, channel string, limit int) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	store shared.NotificationStore
}

func NewNotificationQueries(store shared.NotificationStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) Unread(ctx context.Context, channel string, limit int) ([]*NotificationView, error) {
	ch, err := notification.NewChannel(channel)
	if err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = defaultUnreadLimit
	case limit > maxUnreadLimit:
		limit = maxUnreadLimit
	}

	items, err := q.store.Unread(ctx, ch, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*NotificationView, len(items))
	for i, n := range items {
		out[i] = ToNotificationView(n)
	}
	return out, nil
}

func ToNotificationView(n *notification.Notification) *NotificationView {
	return &NotificationView{
		ID:        n.ID(),
		Channel:   n.Channel().String(),
		Kind:      n.Kind(),
		SubjectID: n.SubjectID(),
		Title:     n.Title(),
		Body:      n.Body(),
		CreatedAt: n.CreatedAt(),
		Read:      n.Read(),
	}
}
