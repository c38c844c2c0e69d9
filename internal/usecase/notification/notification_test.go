package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/metrics"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/repository"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/testdb"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

func newInbox(t *testing.T) (*DefaultNotificationUsecase, *repository.DefaultUserRepository) {
	t.Helper()
	db := testdb.New(t)
	uc := NewDefaultNotificationUsecase(
		repository.NewDefaultNotificationRepository(db),
		repository.NewDefaultNotificationSettingsRepository(db),
		metrics.NewPortalMetrics(prometheus.NewRegistry()),
	)

	// строго возрастающее время, чтобы порядок не зависел от точности часов
	tick := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	uc.Clock = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return uc, repository.NewDefaultUserRepository(db)
}

func seedUser(t *testing.T, users *repository.DefaultUserRepository) string {
	t.Helper()
	id := uuid.New().String()
	err := users.CreateUser(context.Background(), &domain.User{ID: id, Email: id + "@example.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return id
}

func emit(t *testing.T, uc *DefaultNotificationUsecase, userID, title string) *domain.Notification {
	t.Helper()
	res, err := uc.Emit(context.Background(), EmitInput{
		UserID:  userID,
		Type:    domain.NotificationOrderUpdate,
		Title:   title,
		Message: "  Заказ взят в работу.  ",
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	return res.Notification
}

func TestEmit(t *testing.T) {
	ctx := context.Background()
	uc, users := newInbox(t)
	userID := seedUser(t, users)

	res, err := uc.Emit(ctx, EmitInput{UserID: userID, Type: domain.NotificationReminder, Title: "Напоминание", Message: "Сдайте отчет"})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if res.Notification.Read {
		t.Fatalf("expected a new notification to be unread")
	}
	if res.Settings == nil || !res.Settings.EmailReminders {
		t.Fatalf("expected default settings to be created on first emit")
	}

	t.Run("validation", func(t *testing.T) {
		cases := []EmitInput{
			{Type: domain.NotificationReminder, Title: "a", Message: "b"},
			{UserID: userID, Type: "SPAM", Title: "a", Message: "b"},
			{UserID: userID, Type: domain.NotificationReminder, Title: " ", Message: "b"},
			{UserID: userID, Type: domain.NotificationReminder, Title: "a"},
		}
		for _, in := range cases {
			_, err := uc.Emit(ctx, in)
			var validationErr *domain.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected validation error for %+v, got %v", in, err)
			}
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc, users := newInbox(t)
	userID := seedUser(t, users)
	otherID := seedUser(t, users)

	first := emit(t, uc, userID, "Первое")
	emit(t, uc, userID, "Второе")
	last := emit(t, uc, userID, "Третье")
	emit(t, uc, otherID, "Чужое")

	if _, err := uc.SetRead(ctx, userID, first.ID, true); err != nil {
		t.Fatalf("set read: %v", err)
	}

	out, err := uc.List(ctx, ListInput{UserID: userID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.Total != 3 || out.UnreadCount != 2 || out.Limit != defaultListLimit {
		t.Fatalf("unexpected counts total=%d unread=%d limit=%d", out.Total, out.UnreadCount, out.Limit)
	}
	if out.Items[0].ID != last.ID {
		t.Fatalf("expected newest first")
	}
	if out.Items[0].Message != "Заказ взят в работу." {
		t.Fatalf("expected trimmed message, got %q", out.Items[0].Message)
	}

	unread := false
	out, err = uc.List(ctx, ListInput{UserID: userID, Read: &unread, Limit: 1})
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if out.Total != 2 || len(out.Items) != 1 || out.Items[0].Read {
		t.Fatalf("expected one unread item of two, got total=%d items=%d", out.Total, len(out.Items))
	}
}

func TestOwnership(t *testing.T) {
	ctx := context.Background()
	uc, users := newInbox(t)
	ownerID := seedUser(t, users)
	strangerID := seedUser(t, users)
	n := emit(t, uc, ownerID, "Личное")

	if _, err := uc.SetRead(ctx, strangerID, n.ID, true); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound on read, got %v", err)
	}
	if err := uc.Delete(ctx, strangerID, n.ID); !errors.Is(err, domain.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound on delete, got %v", err)
	}

	if err := uc.Delete(ctx, ownerID, n.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	out, _ := uc.List(ctx, ListInput{UserID: ownerID})
	if out.Total != 0 {
		t.Fatalf("expected empty inbox, got %d", out.Total)
	}
}

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	uc, users := newInbox(t)
	userID := seedUser(t, users)
	otherID := seedUser(t, users)

	for i := 0; i < 3; i++ {
		emit(t, uc, userID, "Обновление")
	}
	emit(t, uc, otherID, "Обновление")

	updated, err := uc.MarkAllRead(ctx, userID)
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if updated != 3 {
		t.Fatalf("expected 3 updated, got %d", updated)
	}

	out, _ := uc.List(ctx, ListInput{UserID: otherID})
	if out.UnreadCount != 1 {
		t.Fatalf("expected other inbox untouched, got %d unread", out.UnreadCount)
	}
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	uc, users := newInbox(t)
	userID := seedUser(t, users)

	settings, err := uc.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if !settings.EmailEnabled || !settings.PushPromotions {
		t.Fatalf("expected all-true defaults, got %+v", settings)
	}

	again, err := uc.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if again.ID != settings.ID {
		t.Fatalf("expected defaults to be created once")
	}

	off := false
	updated, err := uc.UpdateSettings(ctx, userID, domain.NotificationSettingsPatch{EmailPromotions: &off})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if updated.EmailPromotions || !updated.EmailOrderUpdates {
		t.Fatalf("expected only promotions to be switched off, got %+v", updated)
	}

	stored, _ := uc.GetSettings(ctx, userID)
	if stored.AllowsEmail(domain.NotificationPromotion) || !stored.AllowsEmail(domain.NotificationOrderUpdate) {
		t.Fatalf("expected stored settings to reflect the patch")
	}
}
