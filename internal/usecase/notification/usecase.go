package notification

import (
	"context"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/metrics"
)

//go:generate mockgen -source=usecase.go -destination=mocks/notification_mock.go -package=mocks

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type NotificationUsecase interface {
	Emit(ctx context.Context, input EmitInput) (*EmitResult, error)
	Create(ctx context.Context, input EmitInput) (*domain.Notification, error)
	List(ctx context.Context, input ListInput) (*ListOutput, error)
	SetRead(ctx context.Context, userID, notificationID string, read bool) (*domain.Notification, error)
	Delete(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	GetSettings(ctx context.Context, userID string) (*domain.NotificationSettings, error)
	UpdateSettings(ctx context.Context, userID string, patch domain.NotificationSettingsPatch) (*domain.NotificationSettings, error)
}

type EmitInput struct {
	UserID  string
	Type    domain.NotificationType
	Title   string
	Message string
	Link    *string
}

// EmitResult carries the stored row and the settings snapshot callers use to gate email delivery.
type EmitResult struct {
	Notification *domain.Notification
	Settings     *domain.NotificationSettings
}

type ListInput struct {
	UserID string
	Read   *bool
	Limit  int
	Offset int
}

type ListOutput struct {
	Items       []*domain.Notification
	Total       int64
	UnreadCount int64
	Limit       int
	Offset      int
}

type DefaultNotificationUsecase struct {
	NotificationRepo domain.NotificationRepository
	SettingsRepo     domain.NotificationSettingsRepository
	Metrics          *metrics.PortalMetrics
	Clock            func() time.Time
}

func NewDefaultNotificationUsecase(
	notificationRepo domain.NotificationRepository,
	settingsRepo domain.NotificationSettingsRepository,
	portalMetrics *metrics.PortalMetrics,
) *DefaultNotificationUsecase {
	return &DefaultNotificationUsecase{
		NotificationRepo: notificationRepo,
		SettingsRepo:     settingsRepo,
		Metrics:          portalMetrics,
		Clock:            time.Now,
	}
}

func (uc *DefaultNotificationUsecase) now() time.Time {
	if uc.Clock == nil {
		return time.Now().UTC()
	}
	return uc.Clock().UTC()
}
