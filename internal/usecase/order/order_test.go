package order

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain/mocks"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/metrics"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/repository"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/testdb"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/templates"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/emailqueue"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/notification"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	uc            *DefaultOrderUsecase
	notifications *notification.DefaultNotificationUsecase
	users         *repository.DefaultUserRepository
	orders        *repository.DefaultOrderRepository
	history       *repository.DefaultOrderHistoryRepository
	emails        *repository.DefaultEmailScheduleRepository

	sender    *mocks.MockEmailSender
	publisher *mocks.MockOrderEventPublisher
	managers  *mocks.MockManagerNotifier
	crm       *mocks.MockCRMClient
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	db := testdb.New(t)
	m := metrics.NewPortalMetrics(prometheus.NewRegistry())
	renderer := templates.MustNewRenderer("https://rahima-consulting.ru")

	f := &fixture{
		users:     repository.NewDefaultUserRepository(db),
		orders:    repository.NewDefaultOrderRepository(db),
		history:   repository.NewDefaultOrderHistoryRepository(db),
		emails:    repository.NewDefaultEmailScheduleRepository(db),
		sender:    mocks.NewMockEmailSender(ctrl),
		publisher: mocks.NewMockOrderEventPublisher(ctrl),
		managers:  mocks.NewMockManagerNotifier(ctrl),
		crm:       mocks.NewMockCRMClient(ctrl),
	}
	f.notifications = notification.NewDefaultNotificationUsecase(
		repository.NewDefaultNotificationRepository(db),
		repository.NewDefaultNotificationSettingsRepository(db),
		m,
	)
	queue := emailqueue.NewDefaultEmailQueueUsecase(f.emails, f.sender, renderer, m, emailqueue.Options{})

	f.uc = NewDefaultOrderUsecase(
		repository.NewTxManager(db),
		f.orders,
		f.history,
		f.users,
		f.notifications,
		queue,
		renderer,
		f.publisher,
		f.managers,
		f.crm,
		m,
		opts,
	)
	return f
}

// allowSideEffects accepts any event, alert and CRM call; CRM reports itself as not configured.
func (f *fixture) allowSideEffects() {
	f.publisher.EXPECT().PublishOrderEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.managers.EXPECT().NotifyManagers(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.crm.EXPECT().CreateDealFromOrder(gomock.Any(), gomock.Any()).Return(nil, domain.ErrCollaboratorDisabled).AnyTimes()
}

func (f *fixture) allowEmails() {
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f *fixture) seedUser(t *testing.T, role domain.UserRole, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:    uuid.New().String(),
		Email: email,
		Name:  "Анна",
		Phone: "+79990000000",
		Role:  role,
	}
	if email == "" {
		user.Email = uuid.New().String() + "@example.com"
	}
	if err := f.users.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func (f *fixture) createManual(t *testing.T, actor *domain.User) *domain.Order {
	t.Helper()
	o, err := f.uc.CreateOrder(context.Background(), actor, CreateOrderInput{ServiceName: "Бухгалтерия"})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	return o
}

func (f *fixture) notificationCount(t *testing.T, userID string) int64 {
	t.Helper()
	out, err := f.notifications.List(context.Background(), notification.ListInput{UserID: userID})
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	return out.Total
}

func TestCreateOrder_Calculator(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	actor := f.seedUser(t, domain.RoleUser, "lead@example.com")

	f.publisher.EXPECT().PublishOrderEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event domain.OrderEvent) error {
			if event.Type != domain.OrderCreatedEvent || event.Source != domain.SourceCalculator {
				t.Fatalf("unexpected event %+v", event)
			}
			return nil
		})
	f.managers.EXPECT().NotifyManagers(gomock.Any(), gomock.Any()).Return(nil)
	f.crm.EXPECT().CreateDealFromOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.CRMDealRequest) (*domain.CRMDeal, error) {
			if req.UserEmail != "lead@example.com" || !req.MonthlyAmount.Decimal.Equal(decimal.NewFromInt(15000)) {
				t.Fatalf("unexpected crm request %+v", req)
			}
			return &domain.CRMDeal{DealID: 77, ContactID: 5}, nil
		})

	created, err := f.uc.CreateOrder(ctx, actor, CreateOrderInput{
		ServiceName:    "Комплексное обслуживание",
		Source:         "calculator",
		MonthlyAmount:  decimal.NewNullDecimal(decimal.NewFromInt(15000)),
		OneTimeAmount:  decimal.NewNullDecimal(decimal.Zero),
		CalculatorData: json.RawMessage(`{"calculationId":"calc-1","businessType":"ooo"}`),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Status != domain.StatusPending || created.Source != domain.SourceCalculator {
		t.Fatalf("expected PENDING calculator order, got %s/%s", created.Status, created.Source)
	}
	if created.OneTimeAmount.Valid {
		t.Fatalf("expected zero one-time amount to be stored as null")
	}

	stored, err := f.orders.GetOrderByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.CRMDealID == nil || *stored.CRMDealID != 77 {
		t.Fatalf("expected crm deal 77 on the order, got %v", stored.CRMDealID)
	}

	history, err := f.history.ListByOrder(ctx, created.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Status != domain.StatusPending || history[0].ChangedBy != domain.ChangedBySystem {
		t.Fatalf("expected one initial PENDING row by system")
	}
	if history[0].Comment == nil || *history[0].Comment != "Заявка создана через калькулятор" {
		t.Fatalf("unexpected initial comment %v", history[0].Comment)
	}

	inbox, err := f.notifications.List(ctx, notification.ListInput{UserID: actor.ID})
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	if inbox.Total != 1 || !strings.Contains(inbox.Items[0].Message, "15 000") {
		t.Fatalf("expected one notification mentioning 15 000, got %+v", inbox.Items)
	}

	rows, err := f.emails.ListByRecipient(ctx, "lead@example.com")
	if err != nil {
		t.Fatalf("email rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 scheduled emails, got %d", len(rows))
	}
}

func TestCreateOrder_Manual(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	actor := f.seedUser(t, domain.RoleUser, "client@example.com")

	f.publisher.EXPECT().PublishOrderEvent(gomock.Any(), gomock.Any()).Return(nil)
	f.managers.EXPECT().NotifyManagers(gomock.Any(), gomock.Any()).Return(domain.ErrCollaboratorDisabled)
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, email domain.Email) error {
		if email.To != "client@example.com" || email.Subject == "" {
			t.Fatalf("unexpected confirmation %+v", email)
		}
		return nil
	})

	description := "  Нужна отчетность за квартал  "
	created, err := f.uc.CreateOrder(ctx, actor, CreateOrderInput{
		ServiceName: "Отчетность",
		Description: &description,
		Priority:    "high",
		Amount:      decimal.NewNullDecimal(decimal.Zero),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Priority != domain.PriorityHigh || created.Currency != "RUB" || created.Source != domain.SourceManual {
		t.Fatalf("unexpected defaults %+v", created)
	}
	if created.Description == nil || *created.Description != "Нужна отчетность за квартал" {
		t.Fatalf("expected trimmed description")
	}
	if created.Amount.Valid {
		t.Fatalf("expected zero amount to be stored as null")
	}

	rows, _ := f.emails.ListByRecipient(ctx, "client@example.com")
	if len(rows) != 0 {
		t.Fatalf("expected no series for a manual order, got %d rows", len(rows))
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	actor := f.seedUser(t, domain.RoleUser, "")

	t.Run("no actor", func(t *testing.T) {
		_, err := f.uc.CreateOrder(ctx, nil, CreateOrderInput{ServiceName: "Бухгалтерия"})
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	cases := []struct {
		name  string
		input CreateOrderInput
	}{
		{"empty service", CreateOrderInput{ServiceName: "   "}},
		{"negative amount", CreateOrderInput{ServiceName: "Бухгалтерия", MonthlyAmount: decimal.NewNullDecimal(decimal.NewFromInt(-1))}},
		{"broken calculator data", CreateOrderInput{ServiceName: "Бухгалтерия", CalculatorData: json.RawMessage(`{"a":`)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.CreateOrder(ctx, actor, tc.input)
			var validationErr *domain.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	orders, err := f.uc.ListOrders(ctx, actor, ListOrdersInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if orders.Total != 0 {
		t.Fatalf("expected nothing stored, got %d orders", orders.Total)
	}
}

func TestTransitionOrder_AuditTrail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	f.allowSideEffects()
	f.allowEmails()
	owner := f.seedUser(t, domain.RoleUser, "")
	admin := f.seedUser(t, domain.RoleAdmin, "")
	created := f.createManual(t, owner)

	steps := []struct {
		status    string
		actor     *domain.User
		adminPath bool
	}{
		{"IN_PROGRESS", admin, true},
		{"review", owner, false},
		{"COMPLETED", admin, true},
	}
	var last *domain.Order
	for _, step := range steps {
		var err error
		last, err = f.uc.TransitionOrder(ctx, TransitionInput{
			OrderID:   created.ID,
			Status:    step.status,
			Actor:     step.actor,
			AdminPath: step.adminPath,
		})
		if err != nil {
			t.Fatalf("transition to %s: %v", step.status, err)
		}
	}

	if last.Status != domain.StatusCompleted || last.CompletedAt == nil {
		t.Fatalf("expected COMPLETED with completed_at, got %s", last.Status)
	}

	history, err := f.uc.GetHistory(ctx, created.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != len(steps)+1 {
		t.Fatalf("expected %d history rows, got %d", len(steps)+1, len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].CreatedAt.Before(history[i-1].CreatedAt) {
			t.Fatalf("history row %d is older than its predecessor", i)
		}
	}
	if history[1].ChangedBy != admin.ID || history[2].ChangedBy != owner.ID {
		t.Fatalf("expected changedBy to record the actor")
	}

	// создание + три смены статуса
	if got := f.notificationCount(t, owner.ID); got != 4 {
		t.Fatalf("expected 4 notifications, got %d", got)
	}
}

func TestTransitionOrder_SameStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	f.allowSideEffects()
	f.allowEmails()
	owner := f.seedUser(t, domain.RoleUser, "")
	created := f.createManual(t, owner)

	_, err := f.uc.TransitionOrder(ctx, TransitionInput{OrderID: created.ID, Status: "PENDING", Actor: owner})
	if err != nil {
		t.Fatalf("transition: %v", err)
	}

	history, _ := f.uc.GetHistory(ctx, created.ID)
	if len(history) != 2 {
		t.Fatalf("expected the assignment to be audited, got %d rows", len(history))
	}
	if got := f.notificationCount(t, owner.ID); got != 1 {
		t.Fatalf("expected no notification for an unchanged status, got %d", got)
	}
}

func TestTransitionOrder_StrictPolicy(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{Policy: domain.StrictTransitions})
	f.allowSideEffects()
	f.allowEmails()
	owner := f.seedUser(t, domain.RoleUser, "")
	admin := f.seedUser(t, domain.RoleManager, "")
	created := f.createManual(t, owner)

	if _, err := f.uc.TransitionOrder(ctx, TransitionInput{OrderID: created.ID, Status: "CANCELLED", Actor: admin, AdminPath: true}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	_, err := f.uc.TransitionOrder(ctx, TransitionInput{OrderID: created.ID, Status: "IN_PROGRESS", Actor: admin, AdminPath: true})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	history, _ := f.uc.GetHistory(ctx, created.ID)
	if len(history) != 2 {
		t.Fatalf("expected rejected transition to leave no audit row, got %d rows", len(history))
	}
	stored, _ := f.orders.GetOrderByID(ctx, created.ID)
	if stored.Status != domain.StatusCancelled {
		t.Fatalf("expected status to stay CANCELLED, got %s", stored.Status)
	}
}

func TestTransitionOrder_Access(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	f.allowSideEffects()
	f.allowEmails()
	owner := f.seedUser(t, domain.RoleUser, "")
	stranger := f.seedUser(t, domain.RoleUser, "")
	created := f.createManual(t, owner)

	t.Run("invalid status", func(t *testing.T) {
		_, err := f.uc.TransitionOrder(ctx, TransitionInput{OrderID: created.ID, Status: "DONE", Actor: owner})
		if !errors.Is(err, domain.ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("stranger sees no order", func(t *testing.T) {
		_, err := f.uc.TransitionOrder(ctx, TransitionInput{OrderID: created.ID, Status: "CANCELLED", Actor: stranger})
		if !errors.Is(err, domain.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
		if _, err := f.uc.GetOrder(ctx, stranger, created.ID); !errors.Is(err, domain.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound on read, got %v", err)
		}
	})

	t.Run("customer on admin path", func(t *testing.T) {
		_, err := f.uc.TransitionOrder(ctx, TransitionInput{OrderID: created.ID, Status: "CANCELLED", Actor: owner, AdminPath: true})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if _, err := f.uc.AdminGetOrder(ctx, owner, created.ID); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("expected ErrForbidden on admin read, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := f.uc.TransitionOrder(ctx, TransitionInput{OrderID: uuid.New().String(), Status: "CANCELLED", Actor: owner})
		if !errors.Is(err, domain.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	stored, _ := f.orders.GetOrderByID(ctx, created.ID)
	if stored.Status != domain.StatusPending {
		t.Fatalf("expected order untouched, got %s", stored.Status)
	}
}

func TestTransitionOrder_AdminEmailsOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	f.allowSideEffects()
	owner := f.seedUser(t, domain.RoleUser, "owner@example.com")
	admin := f.seedUser(t, domain.RoleAdmin, "")

	// подтверждение заказа и письмо о смене статуса администратором
	var subjects []string
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, email domain.Email) error {
		if email.To != "owner@example.com" {
			t.Fatalf("unexpected recipient %s", email.To)
		}
		subjects = append(subjects, email.Subject)
		return nil
	}).Times(2)

	created := f.createManual(t, owner)

	comment := "Документы получены"
	if _, err := f.uc.TransitionOrder(ctx, TransitionInput{
		OrderID:   created.ID,
		Status:    "IN_PROGRESS",
		Comment:   &comment,
		Actor:     admin,
		AdminPath: true,
	}); err != nil {
		t.Fatalf("admin transition: %v", err)
	}

	status := "REVIEW"
	if _, err := f.uc.UpdateOrder(ctx, owner, created.ID, UpdateOrderInput{Status: &status}); err != nil {
		t.Fatalf("customer update: %v", err)
	}

	if len(subjects) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(subjects))
	}

	inbox, _ := f.notifications.List(ctx, notification.ListInput{UserID: owner.ID})
	var adminNote *domain.Notification
	for _, n := range inbox.Items {
		if n.Title == "Статус заявки изменён" {
			adminNote = n
		}
	}
	if adminNote == nil || !strings.Contains(adminNote.Message, "Комментарий: Документы получены") {
		t.Fatalf("expected admin notification with the comment")
	}
}

func TestTransitionOrder_EnforcedSettings(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{EnforceSettings: true})
	f.allowSideEffects()
	owner := f.seedUser(t, domain.RoleUser, "owner@example.com")
	admin := f.seedUser(t, domain.RoleAdmin, "")

	off := false
	if _, err := f.notifications.UpdateSettings(ctx, owner.ID, domain.NotificationSettingsPatch{EmailOrderUpdates: &off}); err != nil {
		t.Fatalf("settings: %v", err)
	}

	// sender без ожиданий: любое письмо провалит тест
	created := f.createManual(t, owner)
	if _, err := f.uc.TransitionOrder(ctx, TransitionInput{OrderID: created.ID, Status: "IN_PROGRESS", Actor: admin, AdminPath: true}); err != nil {
		t.Fatalf("transition: %v", err)
	}

	if got := f.notificationCount(t, owner.ID); got != 2 {
		t.Fatalf("expected in-app notifications regardless of email settings, got %d", got)
	}
}

func TestUpdateOrder_Fields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	f.allowSideEffects()
	f.allowEmails()
	owner := f.seedUser(t, domain.RoleUser, "")
	created := f.createManual(t, owner)

	description := "Новое описание"
	priority := "urgent"
	updated, err := f.uc.UpdateOrder(ctx, owner, created.ID, UpdateOrderInput{Description: &description, Priority: &priority})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Priority != domain.PriorityUrgent || updated.Description == nil || *updated.Description != description {
		t.Fatalf("expected fields to be updated, got %+v", updated)
	}

	history, _ := f.uc.GetHistory(ctx, created.ID)
	if len(history) != 1 {
		t.Fatalf("expected no audit row without a status change, got %d", len(history))
	}

	bad := "someday"
	if _, err := f.uc.UpdateOrder(ctx, owner, created.ID, UpdateOrderInput{Priority: &bad}); err == nil {
		t.Fatalf("expected invalid priority to fail")
	}
}

func TestGetOrder_IdempotentRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	f.allowSideEffects()
	f.allowEmails()
	owner := f.seedUser(t, domain.RoleUser, "")
	created := f.createManual(t, owner)

	first, err := f.uc.GetOrder(ctx, owner, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	second, err := f.uc.GetOrder(ctx, owner, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("expected identical reads:\n%s\n%s", a, b)
	}
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	f.allowSideEffects()
	f.allowEmails()
	owner := f.seedUser(t, domain.RoleUser, "")
	other := f.seedUser(t, domain.RoleUser, "")

	for i := 0; i < 3; i++ {
		f.createManual(t, owner)
	}
	f.createManual(t, other)

	out, err := f.uc.ListOrders(ctx, owner, ListOrdersInput{Status: "bogus", Limit: 500})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.Total != 3 || len(out.Orders) != 3 {
		t.Fatalf("expected 3 own orders, got %d", out.Total)
	}
	if out.Limit != maxListLimit || out.Offset != 0 {
		t.Fatalf("expected clamped paging, got limit=%d offset=%d", out.Limit, out.Offset)
	}
}
