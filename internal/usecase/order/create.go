package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/templates"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/emailqueue"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/notification"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrder stores the order with its initial PENDING history row in one unit of work.
// Notifications, events, CRM and emails run afterwards and never fail the request.
func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, actor *domain.User, input CreateOrderInput) (*domain.Order, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}

	order, err := uc.buildOrder(actor, input)
	if err != nil {
		return nil, err
	}

	comment := "Заявка создана"
	if order.Source == domain.SourceCalculator {
		comment = "Заявка создана через калькулятор"
	}

	err = uc.Tx.Do(ctx, func(ctx context.Context) error {
		if err := uc.OrderRepo.CreateOrder(ctx, order); err != nil {
			return err
		}
		return uc.HistoryRepo.AddHistory(ctx, &domain.OrderStatusHistory{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			Status:    domain.StatusPending,
			Comment:   &comment,
			ChangedBy: domain.ChangedBySystem,
			CreatedAt: order.CreatedAt,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCreateFailed, err)
	}

	uc.recordOrderCreatedMetrics(order)
	slog.Info("order created", "order_id", order.ID, "user_id", actor.ID, "source", order.Source)

	settings := uc.notifyOrderCreated(ctx, order)
	uc.publish(ctx, order, domain.OrderCreatedEvent, "", domain.ChangedBySystem)
	uc.alertManagers(ctx, actor, order)
	if order.Source == domain.SourceCalculator {
		uc.createCRMDeal(ctx, actor, order)
	}
	uc.emailOrderCreated(ctx, actor, order, settings)

	return order, nil
}

func (uc *DefaultOrderUsecase) buildOrder(actor *domain.User, input CreateOrderInput) (*domain.Order, error) {
	serviceName := strings.TrimSpace(input.ServiceName)
	if serviceName == "" {
		return nil, domain.NewValidationError("serviceName", "Название услуги обязательно")
	}

	priority := domain.OrderPriority(strings.ToUpper(strings.TrimSpace(input.Priority)))
	if !priority.Valid() {
		priority = domain.PriorityNormal
	}

	source := domain.SourceManual
	if strings.EqualFold(strings.TrimSpace(input.Source), "calculator") {
		source = domain.SourceCalculator
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	amounts := []struct {
		field string
		value *decimal.NullDecimal
	}{
		{"amount", &input.Amount},
		{"monthlyAmount", &input.MonthlyAmount},
		{"oneTimeAmount", &input.OneTimeAmount},
	}
	for _, a := range amounts {
		amount := a.value
		if !amount.Valid {
			continue
		}
		if amount.Decimal.IsNegative() {
			return nil, domain.NewValidationError(a.field, "Сумма не может быть отрицательной")
		}
		// Нулевая сумма хранится как NULL
		if amount.Decimal.IsZero() {
			amount.Valid = false
		}
	}

	var description *string
	if input.Description != nil {
		if d := strings.TrimSpace(*input.Description); d != "" {
			description = &d
		}
	}

	var calculatorData json.RawMessage
	if len(input.CalculatorData) > 0 && string(input.CalculatorData) != "null" {
		if !json.Valid(input.CalculatorData) {
			return nil, domain.NewValidationError("calculatorData", "Некорректные данные калькулятора")
		}
		calculatorData = input.CalculatorData
	}

	now := uc.now()
	return &domain.Order{
		ID:             uuid.New().String(),
		UserID:         actor.ID,
		ServiceName:    serviceName,
		Description:    description,
		Status:         domain.StatusPending,
		Priority:       priority,
		Amount:         input.Amount,
		MonthlyAmount:  input.MonthlyAmount,
		OneTimeAmount:  input.OneTimeAmount,
		Currency:       currency,
		Source:         source,
		CalculatorData: calculatorData,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (uc *DefaultOrderUsecase) notifyOrderCreated(ctx context.Context, order *domain.Order) *domain.NotificationSettings {
	message := fmt.Sprintf("Ваш заказ \"%s\" успешно создан и ожидает обработки.", order.ServiceName)
	if order.Source == domain.SourceCalculator {
		monthly := decimal.Zero
		if order.MonthlyAmount.Valid {
			monthly = order.MonthlyAmount.Decimal
		}
		message = fmt.Sprintf("Ваша заявка на сумму %s ₽/мес создана и ожидает обработки.", templates.FormatAmount(monthly))
	}

	link := ordersLink
	res, err := uc.Notifications.Emit(ctx, notification.EmitInput{
		UserID:  order.UserID,
		Type:    domain.NotificationOrderUpdate,
		Title:   "Заявка создана",
		Message: message,
		Link:    &link,
	})
	if err != nil {
		slog.Error("failed to create notification for order", "order_id", order.ID, "error", err)
		uc.recordCollaboratorError("notification", "order_created")
		return nil
	}
	return res.Settings
}

func (uc *DefaultOrderUsecase) alertManagers(ctx context.Context, actor *domain.User, order *domain.Order) {
	if uc.Managers == nil {
		return
	}
	alert := domain.ManagerAlert{
		Name:    actor.DisplayName(),
		Phone:   actor.Phone,
		Email:   actor.Email,
		Service: order.ServiceName,
	}
	if order.Description != nil {
		alert.Comment = *order.Description
	}
	if err := uc.Managers.NotifyManagers(ctx, alert); err != nil {
		uc.collaboratorFailed("telegram", "notify_managers", order.ID, err)
	}
}

func (uc *DefaultOrderUsecase) createCRMDeal(ctx context.Context, actor *domain.User, order *domain.Order) {
	if uc.CRM == nil {
		return
	}
	req := domain.CRMDealRequest{
		OrderID:        order.ID,
		UserName:       actor.DisplayName(),
		UserEmail:      actor.Email,
		UserPhone:      actor.Phone,
		ServiceName:    order.ServiceName,
		MonthlyAmount:  order.MonthlyAmount,
		OneTimeAmount:  order.OneTimeAmount,
		CalculatorData: order.CalculatorData,
	}
	if order.Description != nil {
		req.Description = *order.Description
	}

	deal, err := uc.CRM.CreateDealFromOrder(ctx, req)
	if err != nil {
		uc.collaboratorFailed("amocrm", "create_deal", order.ID, err)
		return
	}
	if err := uc.OrderRepo.SetCRMDeal(ctx, order.ID, deal.DealID); err != nil {
		slog.Error("failed to store crm deal id", "order_id", order.ID, "deal_id", deal.DealID, "error", err)
		return
	}
	order.CRMDealID = &deal.DealID
	slog.Info("crm deal created", "order_id", order.ID, "deal_id", deal.DealID, "contact_id", deal.ContactID)
}

// emailOrderCreated sends the confirmation for manual requests and starts the follow-up series for calculator leads.
func (uc *DefaultOrderUsecase) emailOrderCreated(ctx context.Context, actor *domain.User, order *domain.Order, settings *domain.NotificationSettings) {
	if actor.Email == "" || uc.EmailQueue == nil {
		return
	}

	if order.Source == domain.SourceCalculator {
		if !uc.emailAllowed(settings, domain.NotificationPromotion) {
			return
		}
		_, err := uc.EmailQueue.EnqueueSeries(ctx, emailqueue.SeriesInput{
			Email:         actor.Email,
			Name:          actor.Name,
			CalculationID: calculationID(order.CalculatorData),
			TotalMonthly:  order.MonthlyAmount,
		})
		if err != nil {
			uc.collaboratorFailed("email", "enqueue_series", order.ID, err)
		}
		return
	}

	if !uc.emailAllowed(settings, domain.NotificationOrderUpdate) {
		return
	}
	rendered, err := uc.Renderer.OrderCreated(templates.OrderCreatedData{
		Name:          actor.Name,
		ServiceName:   order.ServiceName,
		OrderNumber:   order.Number(),
		MonthlyAmount: order.MonthlyAmount,
		OneTimeAmount: order.OneTimeAmount,
	})
	if err != nil {
		slog.Error("failed to render order confirmation", "order_id", order.ID, "error", err)
		return
	}
	err = uc.EmailQueue.SendNow(ctx, domain.Email{
		To:      actor.Email,
		ToName:  actor.Name,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
	if err != nil {
		uc.collaboratorFailed("email", "order_created", order.ID, err)
	}
}

func (uc *DefaultOrderUsecase) emailAllowed(settings *domain.NotificationSettings, t domain.NotificationType) bool {
	if !uc.enforceSettings || settings == nil {
		return true
	}
	return settings.AllowsEmail(t)
}

func (uc *DefaultOrderUsecase) collaboratorFailed(collaborator, operation, orderID string, err error) {
	if errors.Is(err, domain.ErrCollaboratorDisabled) {
		slog.Debug("collaborator is not configured, skipping", "collaborator", collaborator, "order_id", orderID)
		return
	}
	slog.Error("side effect failed", "collaborator", collaborator, "operation", operation, "order_id", orderID, "error", err)
	uc.recordCollaboratorError(collaborator, operation)
}

// calculationID reads the saved calculation reference from the calculator payload, if any.
func calculationID(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}
	var payload struct {
		CalculationID string `json:"calculationId"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.CalculationID
}
