package order

import (
	"context"
	"encoding/json"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/metrics"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/templates"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/emailqueue"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/notification"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=usecase.go -destination=mocks/order_mock.go -package=mocks

const (
	defaultListLimit = 50
	maxListLimit     = 100

	ordersLink = "/dashboard/orders"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, actor *domain.User, input CreateOrderInput) (*domain.Order, error)
	TransitionOrder(ctx context.Context, input TransitionInput) (*domain.Order, error)
	UpdateOrder(ctx context.Context, actor *domain.User, orderID string, input UpdateOrderInput) (*domain.Order, error)

	GetOrder(ctx context.Context, actor *domain.User, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, actor *domain.User, input ListOrdersInput) (*ListOrdersOutput, error)
	AdminGetOrder(ctx context.Context, actor *domain.User, orderID string) (*domain.Order, error)
	GetHistory(ctx context.Context, orderID string) ([]*domain.OrderStatusHistory, error)
}

type CreateOrderInput struct {
	ServiceName    string
	Description    *string
	Priority       string
	Amount         decimal.NullDecimal
	MonthlyAmount  decimal.NullDecimal
	OneTimeAmount  decimal.NullDecimal
	Currency       string
	Source         string
	CalculatorData json.RawMessage
}

type TransitionInput struct {
	OrderID string
	Status  string
	Comment *string
	Actor   *domain.User
	// AdminPath requires a staff actor and emails the owner about the change.
	AdminPath bool
}

type UpdateOrderInput struct {
	Status      *string
	Description *string
	Priority    *string
}

type ListOrdersInput struct {
	Status string
	Limit  int
	Offset int
}

type ListOrdersOutput struct {
	Orders []*domain.Order
	Total  int64
	Limit  int
	Offset int
}

type Options struct {
	// Policy defaults to domain.PermissiveTransitions.
	Policy domain.TransitionPolicy
	// EnforceSettings skips customer emails the owner has switched off.
	EnforceSettings bool
	Clock           func() time.Time
}

type DefaultOrderUsecase struct {
	Tx            domain.Transactor
	OrderRepo     domain.OrderRepository
	HistoryRepo   domain.OrderHistoryRepository
	UserRepo      domain.UserRepository
	Notifications notification.NotificationUsecase
	EmailQueue    emailqueue.EmailQueueUsecase
	Renderer      *templates.Renderer
	Publisher     domain.OrderEventPublisher
	Managers      domain.ManagerNotifier
	CRM           domain.CRMClient
	Metrics       *metrics.PortalMetrics

	policy          domain.TransitionPolicy
	enforceSettings bool
	clock           func() time.Time
}

func NewDefaultOrderUsecase(
	tx domain.Transactor,
	orderRepo domain.OrderRepository,
	historyRepo domain.OrderHistoryRepository,
	userRepo domain.UserRepository,
	notifications notification.NotificationUsecase,
	emailQueue emailqueue.EmailQueueUsecase,
	renderer *templates.Renderer,
	publisher domain.OrderEventPublisher,
	managers domain.ManagerNotifier,
	crm domain.CRMClient,
	portalMetrics *metrics.PortalMetrics,
	opts Options,
) *DefaultOrderUsecase {
	uc := &DefaultOrderUsecase{
		Tx:              tx,
		OrderRepo:       orderRepo,
		HistoryRepo:     historyRepo,
		UserRepo:        userRepo,
		Notifications:   notifications,
		EmailQueue:      emailQueue,
		Renderer:        renderer,
		Publisher:       publisher,
		Managers:        managers,
		CRM:             crm,
		Metrics:         portalMetrics,
		policy:          opts.Policy,
		enforceSettings: opts.EnforceSettings,
		clock:           opts.Clock,
	}
	if uc.policy == nil {
		uc.policy = domain.PermissiveTransitions
	}
	if uc.clock == nil {
		uc.clock = time.Now
	}
	return uc
}

func (uc *DefaultOrderUsecase) now() time.Time {
	return uc.clock().UTC()
}
