package repository

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/repository/notification.go -package=repositorymock

import (
	"context"

	"fleet-workflow/internal/domain/notification"
	"fleet-workflow/internal/infra"
	sqlc "fleet-workflow/internal/infra/sqlc/generated"
	"fleet-workflow/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) error
	ListUnreadNotifications(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUnreadNotificationsParams) ([]sqlc.Notifications, error)
	MarkNotificationRead(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

// NotificationRepository is the durable notification log. It writes outside
// the workflow transaction because notifications are recorded after commit.
type NotificationRepository struct {
	queries NotificationQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Record(ctx context.Context, n *notification.Notification) error {
	params := sqlc.CreateNotificationParams{
		ID:        n.ID(),
		Channel:   n.Channel().String(),
		Kind:      n.Kind(),
		SubjectID: n.SubjectID(),
		Title:     n.Title(),
		Body:      n.Body(),
		CreatedAt: pgconv.TimeToPgtype(n.CreatedAt()),
		Read:      n.Read(),
	}
	if err := r.queries.CreateNotification(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to record notification", err)
	}
	return nil
}

// Unread lists the newest unread notifications of a channel.
func (r *NotificationRepository) Unread(ctx context.Context, channel notification.Channel, limit int) ([]*notification.Notification, error) {
	rows, err := r.queries.ListUnreadNotifications(ctx, r.db, sqlc.ListUnreadNotificationsParams{
		Channel: channel.String(),
		Limit:   pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}

	result := make([]*notification.Notification, len(rows))
	for i, row := range rows {
		result[i] = notification.Reconstruct(
			row.ID,
			notification.Channel(row.Channel),
			row.Kind,
			row.SubjectID,
			row.Title,
			row.Body,
			pgconv.TimeFromPgtype(row.CreatedAt),
			row.Read,
		)
	}
	return result, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.MarkNotificationRead(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}
