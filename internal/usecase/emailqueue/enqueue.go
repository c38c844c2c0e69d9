package emailqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/templates"
	"github.com/google/uuid"
)

type seriesMetadata struct {
	CalculationID string `json:"calculationId,omitempty"`
	TotalMonthly  string `json:"totalMonthly,omitempty"`
}

// EnqueueSeries schedules the four follow-up emails in one batch: T+0, +1d, +3d, +7d.
func (uc *DefaultEmailQueueUsecase) EnqueueSeries(ctx context.Context, input SeriesInput) ([]*domain.EmailSchedule, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, domain.NewValidationError("email", "Email is required")
	}

	meta := seriesMetadata{CalculationID: input.CalculationID}
	if input.TotalMonthly.Valid {
		meta.TotalMonthly = input.TotalMonthly.Decimal.StringFixed(2)
	}
	metadata, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal series metadata: %w", err)
	}

	var name *string
	if n := strings.TrimSpace(input.Name); n != "" {
		name = &n
	}

	now := uc.now()
	rows := make([]*domain.EmailSchedule, 0, len(domain.EmailSeries))
	for _, step := range domain.EmailSeries {
		rendered, err := uc.Renderer.Series(step.Template, templates.SeriesData{
			Name:          input.Name,
			Email:         email,
			CalculationID: input.CalculationID,
			TotalMonthly:  input.TotalMonthly,
		})
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", step.Template, err)
		}
		text := rendered.Text
		rows = append(rows, &domain.EmailSchedule{
			ID:             uuid.New().String(),
			RecipientEmail: email,
			RecipientName:  name,
			TemplateType:   step.Template,
			Subject:        rendered.Subject,
			HTMLContent:    rendered.HTML,
			TextContent:    &text,
			Metadata:       metadata,
			ScheduledFor:   now.Add(step.Delay),
			Status:         domain.EmailPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	if err := uc.Repo.CreateBatch(ctx, rows); err != nil {
		return nil, fmt.Errorf("create email batch: %w", err)
	}

	if uc.Metrics != nil {
		for _, row := range rows {
			uc.Metrics.RecordEmailEnqueued(string(row.TemplateType))
		}
	}
	return rows, nil
}

// CancelSeries moves every PENDING row of the recipient to CANCELLED.
func (uc *DefaultEmailQueueUsecase) CancelSeries(ctx context.Context, recipientEmail string) (int64, error) {
	email := strings.TrimSpace(recipientEmail)
	if email == "" {
		return 0, domain.NewValidationError("email", "Email is required")
	}
	return uc.Repo.CancelPending(ctx, email, uc.now())
}

// ListSeries returns every scheduled row of the recipient, earliest first.
func (uc *DefaultEmailQueueUsecase) ListSeries(ctx context.Context, recipientEmail string) ([]*domain.EmailSchedule, error) {
	email := strings.TrimSpace(recipientEmail)
	if email == "" {
		return nil, domain.NewValidationError("email", "Email is required")
	}
	return uc.Repo.ListByRecipient(ctx, email)
}
