package calculator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/metrics"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/repository"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/testdb"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/templates"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/emailqueue"
	emailqueuemocks "github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/emailqueue/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newCalculator(t *testing.T) (*DefaultCalculatorUsecase, *emailqueuemocks.MockEmailQueueUsecase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	queue := emailqueuemocks.NewMockEmailQueueUsecase(ctrl)

	uc, err := NewDefaultCalculatorUsecase(
		repository.NewDefaultCalculationRepository(testdb.New(t)),
		queue,
		templates.MustNewRenderer("https://rahima-consulting.ru"),
		metrics.NewPortalMetrics(prometheus.NewRegistry()),
	)
	if err != nil {
		t.Fatalf("new calculator: %v", err)
	}
	return uc, queue
}

func strPtr(s string) *string { return &s }

func TestCalculate_RejectsUnknownParams(t *testing.T) {
	uc, _ := newCalculator(t)

	_, err := uc.Calculate(BusinessParams{BusinessType: "corp", TaxSystem: TaxUSN6}, SelectedServices{})
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	res, err := uc.Calculate(BusinessParams{BusinessType: BusinessOOO, TaxSystem: TaxUSN6, EmployeesCount: "1-5"}, SelectedServices{FullAccounting: true})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if !res.Monthly.Equal(decimal.NewFromInt(14000)) {
		t.Fatalf("expected 14000, got %s", res.Monthly)
	}
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous calculation gets defaults", func(t *testing.T) {
		uc, _ := newCalculator(t)

		out, err := uc.Save(ctx, SaveInput{
			BusinessType: "ip",
			TaxSystem:    "patent",
			Email:        strPtr("   "),
			TotalMonthly: decimal.NewFromInt(6000),
		})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		calc := out.Calculation
		if len(calc.ID) != 21 {
			t.Fatalf("expected a 21 char id, got %q", calc.ID)
		}
		if calc.Email != nil || calc.EmployeesCount != "0" || string(calc.Services) != "[]" {
			t.Fatalf("unexpected defaults %+v", calc)
		}
		if out.URL != "https://rahima-consulting.ru/calculator/"+calc.ID {
			t.Fatalf("unexpected url %s", out.URL)
		}
	})

	t.Run("lead with email starts the series", func(t *testing.T) {
		uc, queue := newCalculator(t)

		var enqueued emailqueue.SeriesInput
		queue.EXPECT().EnqueueSeries(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in emailqueue.SeriesInput) ([]*domain.EmailSchedule, error) {
				enqueued = in
				return nil, nil
			})

		out, err := uc.Save(ctx, SaveInput{
			Name:            strPtr("Ольга"),
			Email:           strPtr("olga@example.com"),
			BusinessType:    "ooo",
			TaxSystem:       "usn6",
			EmployeesCount:  "1-5",
			OperationsCount: "0-20",
			TotalMonthly:    decimal.NewFromInt(14000),
			TotalYearly:     decimal.NewFromInt(168000),
		})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if enqueued.CalculationID != out.Calculation.ID || enqueued.Email != "olga@example.com" || enqueued.Name != "Ольга" {
			t.Fatalf("unexpected series input %+v", enqueued)
		}
	})

	t.Run("series failure does not fail the save", func(t *testing.T) {
		uc, queue := newCalculator(t)
		queue.EXPECT().EnqueueSeries(gomock.Any(), gomock.Any()).Return(nil, errors.New("db is gone"))

		if _, err := uc.Save(ctx, SaveInput{BusinessType: "ip", TaxSystem: "usn6", Email: strPtr("a@example.com")}); err != nil {
			t.Fatalf("expected save to succeed, got %v", err)
		}
	})

	t.Run("missing business type", func(t *testing.T) {
		uc, _ := newCalculator(t)
		_, err := uc.Save(ctx, SaveInput{TaxSystem: "usn6"})
		var validationErr *domain.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestGet_CountsViews(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCalculator(t)

	out, err := uc.Save(ctx, SaveInput{BusinessType: "ip", TaxSystem: "usn6"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	for want := 1; want <= 2; want++ {
		calc, err := uc.Get(ctx, out.Calculation.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if calc.ViewCount != want {
			t.Fatalf("expected view count %d, got %d", want, calc.ViewCount)
		}
	}

	if _, err := uc.Get(ctx, "missing"); !errors.Is(err, domain.ErrCalculationNotFound) {
		t.Fatalf("expected ErrCalculationNotFound, got %v", err)
	}
}

func TestSendLink(t *testing.T) {
	ctx := context.Background()
	uc, queue := newCalculator(t)

	out, err := uc.Save(ctx, SaveInput{BusinessType: "ooo", TaxSystem: "osno", TotalMonthly: decimal.NewFromInt(25000)})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	queue.EXPECT().SendNow(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, email domain.Email) error {
		if email.To != "client@example.com" || !strings.Contains(email.HTML, out.Calculation.ID) {
			t.Fatalf("unexpected email %+v", email)
		}
		return nil
	})

	if err := uc.SendLink(ctx, SendLinkInput{Email: " client@example.com ", Name: "Иван", CalculationID: out.Calculation.ID}); err != nil {
		t.Fatalf("send link: %v", err)
	}

	t.Run("validation", func(t *testing.T) {
		var validationErr *domain.ValidationError
		if err := uc.SendLink(ctx, SendLinkInput{CalculationID: out.Calculation.ID}); !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error for empty email, got %v", err)
		}
		if err := uc.SendLink(ctx, SendLinkInput{Email: "client@example.com"}); !errors.As(err, &validationErr) {
			t.Fatalf("expected validation error for empty id, got %v", err)
		}
	})

	t.Run("unknown calculation", func(t *testing.T) {
		err := uc.SendLink(ctx, SendLinkInput{Email: "client@example.com", CalculationID: "missing"})
		if !errors.Is(err, domain.ErrCalculationNotFound) {
			t.Fatalf("expected ErrCalculationNotFound, got %v", err)
		}
	})
}
