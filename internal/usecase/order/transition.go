package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/templates"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/notification"
	"github.com/google/uuid"
)

// TransitionOrder assigns a status. The status update and its history row share one unit of work;
// notification, event and email follow only when the status actually changed.
func (uc *DefaultOrderUsecase) TransitionOrder(ctx context.Context, input TransitionInput) (*domain.Order, error) {
	if input.Actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if input.AdminPath && !input.Actor.IsStaff() {
		return nil, domain.ErrForbidden
	}
	status, err := parseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	var (
		order    *domain.Order
		previous domain.OrderStatus
	)
	err = uc.Tx.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = uc.loadForActor(ctx, input.OrderID, input.Actor, input.AdminPath)
		if err != nil {
			return err
		}
		previous = order.Status
		return uc.applyTransition(ctx, order, status, input.Comment, input.Actor)
	})
	if err != nil {
		return nil, updateFailed(err)
	}

	if previous != status {
		uc.afterTransition(ctx, order, previous, input.Comment, input.Actor, input.AdminPath)
	}
	return uc.reload(ctx, order)
}

// UpdateOrder is the customer edit: description and priority plus an optional status change.
func (uc *DefaultOrderUsecase) UpdateOrder(ctx context.Context, actor *domain.User, orderID string, input UpdateOrderInput) (*domain.Order, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}

	var status *domain.OrderStatus
	if input.Status != nil {
		s, err := parseStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		status = &s
	}
	var priority *domain.OrderPriority
	if input.Priority != nil {
		p := domain.OrderPriority(strings.ToUpper(strings.TrimSpace(*input.Priority)))
		if !p.Valid() {
			return nil, domain.NewValidationError("priority", "Некорректный приоритет")
		}
		priority = &p
	}
	var description *string
	if input.Description != nil {
		d := strings.TrimSpace(*input.Description)
		description = &d
	}

	var (
		order    *domain.Order
		previous domain.OrderStatus
	)
	err := uc.Tx.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = uc.loadForActor(ctx, orderID, actor, false)
		if err != nil {
			return err
		}
		previous = order.Status

		if description != nil || priority != nil {
			if err := uc.OrderRepo.UpdateOrderFields(ctx, order.ID, description, priority); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrUpdateFailed, err)
			}
		}
		if status != nil {
			return uc.applyTransition(ctx, order, *status, nil, actor)
		}
		return nil
	})
	if err != nil {
		return nil, updateFailed(err)
	}

	if status != nil && previous != *status {
		uc.afterTransition(ctx, order, previous, nil, actor, false)
	}
	return uc.reload(ctx, order)
}

func (uc *DefaultOrderUsecase) loadForActor(ctx context.Context, orderID string, actor *domain.User, adminPath bool) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	// Чужой заказ для клиента не существует
	if !adminPath && order.UserID != actor.ID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// applyTransition must run inside a unit of work.
func (uc *DefaultOrderUsecase) applyTransition(
	ctx context.Context,
	order *domain.Order,
	status domain.OrderStatus,
	comment *string,
	actor *domain.User,
) error {
	if !uc.policy.Allows(order.Status, status) {
		if uc.Metrics != nil {
			uc.Metrics.RecordTransitionRejected(string(order.Status), string(status))
		}
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, status)
	}

	now := uc.now()
	var completedAt *time.Time
	if status == domain.StatusCompleted {
		completedAt = &now
	}
	if err := uc.OrderRepo.UpdateOrderStatus(ctx, order.ID, status, completedAt); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpdateFailed, err)
	}

	changedBy := actor.ID
	if changedBy == "" {
		changedBy = domain.ChangedBySystem
	}
	entry := &domain.OrderStatusHistory{
		ID:        uuid.New().String(),
		OrderID:   order.ID,
		Status:    status,
		Comment:   trimmed(comment),
		ChangedBy: changedBy,
		CreatedAt: now,
	}
	if err := uc.HistoryRepo.AddHistory(ctx, entry); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpdateFailed, err)
	}

	order.Status = status
	if completedAt != nil {
		order.CompletedAt = completedAt
	}
	return nil
}

func (uc *DefaultOrderUsecase) afterTransition(
	ctx context.Context,
	order *domain.Order,
	previous domain.OrderStatus,
	comment *string,
	actor *domain.User,
	adminPath bool,
) {
	uc.recordTransitionMetrics(previous, order.Status, adminPath)
	slog.Info("order status changed",
		"order_id", order.ID,
		"from", previous,
		"to", order.Status,
		"changed_by", actor.ID,
	)

	title, message := customerStatusMessage(order)
	if adminPath {
		title, message = adminStatusMessage(order, trimmed(comment))
	}
	link := ordersLink
	res, err := uc.Notifications.Emit(ctx, notification.EmitInput{
		UserID:  order.UserID,
		Type:    domain.NotificationOrderUpdate,
		Title:   title,
		Message: message,
		Link:    &link,
	})
	var settings *domain.NotificationSettings
	if err != nil {
		slog.Error("failed to create notification for order status update", "order_id", order.ID, "error", err)
		uc.recordCollaboratorError("notification", "status_changed")
	} else {
		settings = res.Settings
	}

	uc.publish(ctx, order, domain.OrderStatusChangedEvent, previous, actor.ID)

	if adminPath {
		uc.emailStatusChanged(ctx, order, trimmed(comment), settings)
	}
}

func (uc *DefaultOrderUsecase) emailStatusChanged(ctx context.Context, order *domain.Order, comment *string, settings *domain.NotificationSettings) {
	if uc.EmailQueue == nil || uc.UserRepo == nil {
		return
	}
	if !uc.emailAllowed(settings, domain.NotificationOrderUpdate) {
		return
	}

	owner, err := uc.UserRepo.GetUserByID(ctx, order.UserID)
	if err != nil {
		slog.Error("failed to load order owner", "order_id", order.ID, "user_id", order.UserID, "error", err)
		return
	}
	if owner.Email == "" {
		return
	}

	data := templates.StatusChangedData{
		Name:        owner.Name,
		ServiceName: order.ServiceName,
		Status:      order.Status,
	}
	if comment != nil {
		data.Comment = *comment
	}
	rendered, err := uc.Renderer.StatusChanged(data)
	if err != nil {
		slog.Error("failed to render status email", "order_id", order.ID, "error", err)
		return
	}
	err = uc.EmailQueue.SendNow(ctx, domain.Email{
		To:      owner.Email,
		ToName:  owner.Name,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
	if err != nil {
		uc.collaboratorFailed("email", "status_changed", order.ID, err)
	}
}

func (uc *DefaultOrderUsecase) reload(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	fresh, err := uc.OrderRepo.GetOrderByID(ctx, order.ID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpdateFailed, err)
	}
	return fresh, nil
}

// updateFailed keeps the business errors and hides storage details behind ErrUpdateFailed.
func updateFailed(err error) error {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrUpdateFailed):
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrUpdateFailed, err)
}

func parseStatus(raw string) (domain.OrderStatus, error) {
	status := domain.OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", domain.ErrInvalidStatus
	}
	return status, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
