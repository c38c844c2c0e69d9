package notification

import (
	"context"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
)

func (uc *DefaultNotificationUsecase) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	// Валидация пагинации
	if input.Limit < 1 {
		input.Limit = defaultListLimit
	}
	if input.Limit > maxListLimit {
		input.Limit = maxListLimit
	}
	if input.Offset < 0 {
		input.Offset = 0
	}

	items, total, err := uc.NotificationRepo.ListNotifications(ctx, domain.NotificationFilter{
		UserID: input.UserID,
		Read:   input.Read,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, err
	}
	unread, err := uc.NotificationRepo.CountUnread(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &ListOutput{
		Items:       items,
		Total:       total,
		UnreadCount: unread,
		Limit:       input.Limit,
		Offset:      input.Offset,
	}, nil
}

// SetRead returns ErrNotificationNotFound when the row belongs to another user.
func (uc *DefaultNotificationUsecase) SetRead(ctx context.Context, userID, notificationID string, read bool) (*domain.Notification, error) {
	n, err := uc.NotificationRepo.GetNotification(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}
	if err := uc.NotificationRepo.SetRead(ctx, n.ID, read); err != nil {
		return nil, err
	}
	n.Read = read
	return n, nil
}

func (uc *DefaultNotificationUsecase) Delete(ctx context.Context, userID, notificationID string) error {
	n, err := uc.NotificationRepo.GetNotification(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	return uc.NotificationRepo.DeleteNotification(ctx, n.ID)
}

func (uc *DefaultNotificationUsecase) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return uc.NotificationRepo.MarkAllRead(ctx, userID)
}
