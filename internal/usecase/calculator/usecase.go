package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/metrics"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/templates"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/emailqueue"
	"github.com/jaevor/go-nanoid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=usecase.go -destination=mocks/calculator_mock.go -package=mocks

type CalculatorUsecase interface {
	Calculate(params BusinessParams, services SelectedServices) (*Result, error)
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Get(ctx context.Context, id string) (*domain.Calculation, error)
	SendLink(ctx context.Context, input SendLinkInput) error
}

type SaveInput struct {
	UserID          *string
	Name            *string
	Phone           *string
	Email           *string
	BusinessType    string
	TaxSystem       string
	EmployeesCount  string
	OperationsCount string
	HasNDS          bool
	HasVED          bool
	Services        json.RawMessage
	Surcharges      json.RawMessage
	Breakdown       json.RawMessage
	TotalMonthly    decimal.Decimal
	TotalOneTime    decimal.Decimal
	TotalYearly     decimal.Decimal
}

type SaveOutput struct {
	Calculation *domain.Calculation
	URL         string
}

type SendLinkInput struct {
	Email         string
	Name          string
	CalculationID string
}

type DefaultCalculatorUsecase struct {
	CalculationRepo domain.CalculationRepository
	EmailQueue      emailqueue.EmailQueueUsecase
	Renderer        *templates.Renderer
	Metrics         *metrics.PortalMetrics

	idGenerator func() string
}

func NewDefaultCalculatorUsecase(
	calculationRepo domain.CalculationRepository,
	emailQueue emailqueue.EmailQueueUsecase,
	renderer *templates.Renderer,
	portalMetrics *metrics.PortalMetrics,
) (*DefaultCalculatorUsecase, error) {
	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, fmt.Errorf("init calculation id generator: %w", err)
	}
	return &DefaultCalculatorUsecase{
		CalculationRepo: calculationRepo,
		EmailQueue:      emailQueue,
		Renderer:        renderer,
		Metrics:         portalMetrics,
		idGenerator:     idGenerator,
	}, nil
}

func (uc *DefaultCalculatorUsecase) Calculate(params BusinessParams, services SelectedServices) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, domain.NewValidationError("businessParams", err.Error())
	}
	res := CalculateTotalPrice(params, services)
	return &res, nil
}

// Save stores the calculation and starts the follow-up series when the lead left an email.
func (uc *DefaultCalculatorUsecase) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if strings.TrimSpace(input.BusinessType) == "" || strings.TrimSpace(input.TaxSystem) == "" {
		return nil, domain.NewValidationError("businessType", "Не указаны обязательные поля")
	}

	calc := &domain.Calculation{
		ID:              uc.idGenerator(),
		UserID:          nonEmpty(input.UserID),
		Name:            nonEmpty(input.Name),
		Phone:           nonEmpty(input.Phone),
		Email:           nonEmpty(input.Email),
		BusinessType:    input.BusinessType,
		TaxSystem:       input.TaxSystem,
		EmployeesCount:  orDefault(input.EmployeesCount, "0"),
		OperationsCount: orDefault(input.OperationsCount, "0"),
		HasNDS:          input.HasNDS,
		HasVED:          input.HasVED,
		Services:        jsonOrDefault(input.Services, "[]"),
		Surcharges:      jsonOrDefault(input.Surcharges, "{}"),
		Breakdown:       jsonOrDefault(input.Breakdown, "{}"),
		TotalMonthly:    input.TotalMonthly,
		TotalOneTime:    input.TotalOneTime,
		TotalYearly:     input.TotalYearly,
		CreatedAt:       time.Now().UTC(),
	}
	if err := uc.CalculationRepo.CreateCalculation(ctx, calc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCreateFailed, err)
	}
	if uc.Metrics != nil {
		uc.Metrics.RecordCalculationSaved(calc.BusinessType)
	}

	if calc.Email != nil && uc.EmailQueue != nil {
		name := ""
		if calc.Name != nil {
			name = *calc.Name
		}
		_, err := uc.EmailQueue.EnqueueSeries(ctx, emailqueue.SeriesInput{
			Email:         *calc.Email,
			Name:          name,
			CalculationID: calc.ID,
			TotalMonthly:  decimal.NewNullDecimal(calc.TotalMonthly),
		})
		if err != nil {
			slog.Error("failed to enqueue email series for calculation", "calculation_id", calc.ID, "error", err)
		}
	}

	return &SaveOutput{Calculation: calc, URL: uc.Renderer.CalculationURL(calc.ID)}, nil
}

// Get returns the calculation and counts the view.
func (uc *DefaultCalculatorUsecase) Get(ctx context.Context, id string) (*domain.Calculation, error) {
	calc, err := uc.CalculationRepo.GetCalculation(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.CalculationRepo.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}
	calc.ViewCount++
	return calc, nil
}

func (uc *DefaultCalculatorUsecase) SendLink(ctx context.Context, input SendLinkInput) error {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return domain.NewValidationError("email", "Email is required")
	}
	if strings.TrimSpace(input.CalculationID) == "" {
		return domain.NewValidationError("calculationId", "Calculation ID is required")
	}

	calc, err := uc.CalculationRepo.GetCalculation(ctx, input.CalculationID)
	if err != nil {
		return err
	}

	rendered, err := uc.Renderer.CalculationLink(templates.CalculationLinkData{
		Name:          input.Name,
		CalculationID: calc.ID,
		TotalMonthly:  decimal.NewNullDecimal(calc.TotalMonthly),
	})
	if err != nil {
		return err
	}

	return uc.EmailQueue.SendNow(ctx, domain.Email{
		To:      email,
		ToName:  input.Name,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func jsonOrDefault(raw json.RawMessage, def string) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return json.RawMessage(def)
	}
	return raw
}
