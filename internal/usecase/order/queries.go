package order

import (
	"context"
	"strings"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
)

// GetOrder returns ErrOrderNotFound for orders of other users.
func (uc *DefaultOrderUsecase) GetOrder(ctx context.Context, actor *domain.User, orderID string) (*domain.Order, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.loadForActor(ctx, orderID, actor, false)
}

func (uc *DefaultOrderUsecase) ListOrders(ctx context.Context, actor *domain.User, input ListOrdersInput) (*ListOrdersOutput, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}

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

	filter := domain.OrderFilter{
		UserID: actor.ID,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	// Неизвестный статус игнорируется, как и пустой
	if status := domain.OrderStatus(strings.ToUpper(input.Status)); status.Valid() {
		filter.Status = &status
	}

	orders, total, err := uc.OrderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ListOrdersOutput{
		Orders: orders,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

func (uc *DefaultOrderUsecase) AdminGetOrder(ctx context.Context, actor *domain.User, orderID string) (*domain.Order, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if !actor.IsStaff() {
		return nil, domain.ErrForbidden
	}
	return uc.OrderRepo.GetOrderWithDetails(ctx, orderID)
}

func (uc *DefaultOrderUsecase) GetHistory(ctx context.Context, orderID string) ([]*domain.OrderStatusHistory, error) {
	return uc.HistoryRepo.ListByOrder(ctx, orderID)
}
