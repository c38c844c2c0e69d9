package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/google/uuid"
)

// Emit always stores the notification; delivery preferences only matter to the caller.
func (uc *DefaultNotificationUsecase) Emit(ctx context.Context, input EmitInput) (*EmitResult, error) {
	if err := validateEmit(input); err != nil {
		return nil, err
	}

	settings, err := uc.GetSettings(ctx, input.UserID)
	if err != nil {
		slog.Warn("failed to load notification settings, using defaults", "user_id", input.UserID, "error", err)
		settings = domain.DefaultNotificationSettings(input.UserID)
	}

	n := &domain.Notification{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		Type:      input.Type,
		Title:     strings.TrimSpace(input.Title),
		Message:   strings.TrimSpace(input.Message),
		Link:      input.Link,
		Read:      false,
		CreatedAt: uc.now(),
	}
	if err := uc.NotificationRepo.CreateNotification(ctx, n); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCreateFailed, err)
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordNotification(string(n.Type))
	}
	return &EmitResult{Notification: n, Settings: settings}, nil
}

// Create stores a notification on behalf of another service.
func (uc *DefaultNotificationUsecase) Create(ctx context.Context, input EmitInput) (*domain.Notification, error) {
	res, err := uc.Emit(ctx, input)
	if err != nil {
		return nil, err
	}
	return res.Notification, nil
}

func validateEmit(input EmitInput) error {
	if strings.TrimSpace(input.UserID) == "" {
		return domain.NewValidationError("userId", "userId is required")
	}
	if !input.Type.Valid() {
		return domain.NewValidationError("type", "Неверный тип уведомления")
	}
	if strings.TrimSpace(input.Title) == "" {
		return domain.NewValidationError("title", "Тип, заголовок и сообщение обязательны")
	}
	if strings.TrimSpace(input.Message) == "" {
		return domain.NewValidationError("message", "Тип, заголовок и сообщение обязательны")
	}
	return nil
}
