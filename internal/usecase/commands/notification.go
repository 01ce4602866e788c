package commands

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/commands/notification.go -package=commandsmock

import (
	"context"

	"fleet-workflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type notificationUseCaseImpl struct {
	store shared.NotificationStore
}

func NewNotificationUseCase(store shared.NotificationStore) NotificationCommands {
	return &notificationUseCaseImpl{store: store}
}

func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	return uc.store.MarkRead(ctx, id)
}
