package repository

import (
	"context"
	"testing"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/testdb"
	"github.com/google/uuid"
)

func newScheduleRow(email string, template domain.EmailTemplateType, at time.Time) *domain.EmailSchedule {
	return &domain.EmailSchedule{
		ID:             uuid.New().String(),
		RecipientEmail: email,
		TemplateType:   template,
		Subject:        string(template),
		HTMLContent:    "<p>hi</p>",
		ScheduledFor:   at,
		Status:         domain.EmailPending,
	}
}

func TestEmailScheduleRepository_ListDue(t *testing.T) {
	ctx := context.Background()
	repo := NewDefaultEmailScheduleRepository(testdb.New(t))
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	late := newScheduleRow("a@example.com", domain.TemplateFollowUpDay1, now.Add(-time.Minute))
	early := newScheduleRow("a@example.com", domain.TemplateThankYou, now.Add(-time.Hour))
	future := newScheduleRow("a@example.com", domain.TemplateFollowUpDay3, now.Add(time.Hour))
	exhausted := newScheduleRow("b@example.com", domain.TemplateThankYou, now.Add(-2*time.Hour))
	exhausted.Attempts = domain.MaxEmailAttempts
	if err := repo.CreateBatch(ctx, []*domain.EmailSchedule{late, early, future, exhausted}); err != nil {
		t.Fatalf("create batch: %v", err)
	}

	due, err := repo.ListDue(ctx, now, 10, domain.MaxEmailAttempts)
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 due rows, got %d", len(due))
	}
	if due[0].ID != early.ID || due[1].ID != late.ID {
		t.Fatalf("expected oldest schedule first, got %s then %s", due[0].TemplateType, due[1].TemplateType)
	}

	limited, err := repo.ListDue(ctx, now, 1, domain.MaxEmailAttempts)
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != early.ID {
		t.Fatalf("expected batch limit to keep the oldest row")
	}
}

func TestEmailScheduleRepository_Claim(t *testing.T) {
	ctx := context.Background()
	repo := NewDefaultEmailScheduleRepository(testdb.New(t))
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	row := newScheduleRow("lead@example.com", domain.TemplateThankYou, now.Add(-time.Minute))
	if err := repo.CreateBatch(ctx, []*domain.EmailSchedule{row}); err != nil {
		t.Fatalf("create batch: %v", err)
	}

	t.Run("first claim wins", func(t *testing.T) {
		won, err := repo.Claim(ctx, row.ID, 0, now)
		if err != nil {
			t.Fatalf("claim: %v", err)
		}
		if !won {
			t.Fatalf("expected first claim to win")
		}
	})

	t.Run("second claim with stale attempts loses", func(t *testing.T) {
		won, err := repo.Claim(ctx, row.ID, 0, now)
		if err != nil {
			t.Fatalf("claim: %v", err)
		}
		if won {
			t.Fatalf("expected second claim to lose")
		}
	})

	t.Run("claimed row is sending and not due", func(t *testing.T) {
		rows, err := repo.ListByRecipient(ctx, "lead@example.com")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if rows[0].Status != domain.EmailSending || rows[0].Attempts != 1 {
			t.Fatalf("expected SENDING with 1 attempt, got %s with %d", rows[0].Status, rows[0].Attempts)
		}
		due, err := repo.ListDue(ctx, now, 10, domain.MaxEmailAttempts)
		if err != nil {
			t.Fatalf("list due: %v", err)
		}
		if len(due) != 0 {
			t.Fatalf("expected no due rows, got %d", len(due))
		}
	})

	t.Run("failed attempt returns to pending", func(t *testing.T) {
		if err := repo.MarkAttemptFailed(ctx, row.ID, domain.EmailPending, "smtp timeout", now); err != nil {
			t.Fatalf("mark failed: %v", err)
		}
		won, err := repo.Claim(ctx, row.ID, 1, now)
		if err != nil {
			t.Fatalf("claim: %v", err)
		}
		if !won {
			t.Fatalf("expected retry claim to win")
		}
		if err := repo.MarkSent(ctx, row.ID, now); err != nil {
			t.Fatalf("mark sent: %v", err)
		}

		rows, _ := repo.ListByRecipient(ctx, "lead@example.com")
		if rows[0].Status != domain.EmailSent || rows[0].SentAt == nil || rows[0].Error != nil {
			t.Fatalf("expected SENT row with sent_at and no error")
		}
		if rows[0].Attempts != 2 {
			t.Fatalf("expected 2 attempts, got %d", rows[0].Attempts)
		}
	})
}

func TestEmailScheduleRepository_CancelPending(t *testing.T) {
	ctx := context.Background()
	repo := NewDefaultEmailScheduleRepository(testdb.New(t))
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	sent := newScheduleRow("lead@example.com", domain.TemplateThankYou, now.Add(-time.Hour))
	day1 := newScheduleRow("lead@example.com", domain.TemplateFollowUpDay1, now.Add(24*time.Hour))
	day3 := newScheduleRow("lead@example.com", domain.TemplateFollowUpDay3, now.Add(72*time.Hour))
	other := newScheduleRow("other@example.com", domain.TemplateFollowUpDay1, now.Add(24*time.Hour))
	if err := repo.CreateBatch(ctx, []*domain.EmailSchedule{sent, day1, day3, other}); err != nil {
		t.Fatalf("create batch: %v", err)
	}
	if _, err := repo.Claim(ctx, sent.ID, 0, now); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := repo.MarkSent(ctx, sent.ID, now); err != nil {
		t.Fatalf("mark sent: %v", err)
	}

	cancelled, err := repo.CancelPending(ctx, "lead@example.com", now)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled != 2 {
		t.Fatalf("expected 2 cancelled rows, got %d", cancelled)
	}

	rows, _ := repo.ListByRecipient(ctx, "lead@example.com")
	want := []domain.EmailStatus{domain.EmailSent, domain.EmailCancelled, domain.EmailCancelled}
	for i, row := range rows {
		if row.Status != want[i] {
			t.Fatalf("row %d: expected %s, got %s", i, want[i], row.Status)
		}
	}

	others, _ := repo.ListByRecipient(ctx, "other@example.com")
	if others[0].Status != domain.EmailPending {
		t.Fatalf("expected other recipient untouched, got %s", others[0].Status)
	}
}

func TestEmailScheduleRepository_ReleaseStale(t *testing.T) {
	ctx := context.Background()
	repo := NewDefaultEmailScheduleRepository(testdb.New(t))
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	stale := newScheduleRow("a@example.com", domain.TemplateThankYou, now.Add(-2*time.Hour))
	lastTry := newScheduleRow("b@example.com", domain.TemplateThankYou, now.Add(-2*time.Hour))
	lastTry.Attempts = domain.MaxEmailAttempts - 1
	fresh := newScheduleRow("c@example.com", domain.TemplateThankYou, now.Add(-2*time.Hour))
	if err := repo.CreateBatch(ctx, []*domain.EmailSchedule{stale, lastTry, fresh}); err != nil {
		t.Fatalf("create batch: %v", err)
	}
	for _, claim := range []struct {
		row *domain.EmailSchedule
		at  time.Time
	}{
		{stale, now.Add(-time.Hour)},
		{lastTry, now.Add(-time.Hour)},
		{fresh, now.Add(-time.Minute)},
	} {
		if won, err := repo.Claim(ctx, claim.row.ID, claim.row.Attempts, claim.at); err != nil || !won {
			t.Fatalf("claim %s: won=%v err=%v", claim.row.RecipientEmail, won, err)
		}
	}

	released, err := repo.ReleaseStale(ctx, now.Add(-10*time.Minute), domain.MaxEmailAttempts, now)
	if err != nil {
		t.Fatalf("release stale: %v", err)
	}
	if released != 2 {
		t.Fatalf("expected 2 released rows, got %d", released)
	}

	cases := []struct {
		email    string
		status   domain.EmailStatus
		attempts int
	}{
		{"a@example.com", domain.EmailPending, 1},
		{"b@example.com", domain.EmailFailed, domain.MaxEmailAttempts},
		{"c@example.com", domain.EmailSending, 1},
	}
	for _, tc := range cases {
		rows, _ := repo.ListByRecipient(ctx, tc.email)
		if rows[0].Status != tc.status || rows[0].Attempts != tc.attempts {
			t.Fatalf("%s: expected %s after %d attempts, got %s after %d", tc.email, tc.status, tc.attempts, rows[0].Status, rows[0].Attempts)
		}
	}

	due, err := repo.ListDue(ctx, now, 10, domain.MaxEmailAttempts)
	if err != nil {
		t.Fatalf("list due: %v", err)
	}
	if len(due) != 1 || due[0].ID != stale.ID {
		t.Fatalf("expected only the released row to be due again")
	}
}
