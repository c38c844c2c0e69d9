package order

import (
	"context"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
)

func (uc *DefaultOrderUsecase) publish(ctx context.Context, order *domain.Order, eventType domain.OrderEventType, previous domain.OrderStatus, changedBy string) {
	if uc.Publisher == nil {
		return
	}
	event := domain.OrderEvent{
		Type:           eventType,
		OrderID:        order.ID,
		UserID:         order.UserID,
		ServiceName:    order.ServiceName,
		Status:         order.Status,
		PreviousStatus: previous,
		Source:         order.Source,
		ChangedBy:      changedBy,
		OccurredAt:     uc.now(),
	}
	if err := uc.Publisher.PublishOrderEvent(ctx, event); err != nil {
		uc.collaboratorFailed("kafka", string(eventType), order.ID, err)
	}
}
