package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=mq_port.go -destination=mocks/ports_mock.go -package=mocks

type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(ctx context.Context, topic string, msgs ...Message) error
}

type OrderEventType string

const (
	OrderCreatedEvent       OrderEventType = "order.created"
	OrderStatusChangedEvent OrderEventType = "order.status_changed"
)

type OrderEvent struct {
	Type           OrderEventType `json:"type"`
	OrderID        string         `json:"order_id"`
	UserID         string         `json:"user_id"`
	ServiceName    string         `json:"service_name"`
	Status         OrderStatus    `json:"status"`
	PreviousStatus OrderStatus    `json:"previous_status,omitempty"`
	Source         OrderSource    `json:"source"`
	ChangedBy      string         `json:"changed_by"`
	OccurredAt     time.Time      `json:"occurred_at"`
}

// OrderEventPublisher fans order lifecycle events out to the event stream.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
}

// EmailSender delivers one rendered email.
type EmailSender interface {
	Send(ctx context.Context, email Email) error
}

type ManagerAlert struct {
	Name    string
	Phone   string
	Email   string
	Service string
	Comment string
}

// ManagerNotifier alerts the sales team about new requests.
type ManagerNotifier interface {
	NotifyManagers(ctx context.Context, alert ManagerAlert) error
}

type CRMDealRequest struct {
	OrderID        string
	UserName       string
	UserEmail      string
	UserPhone      string
	ServiceName    string
	Description    string
	MonthlyAmount  decimal.NullDecimal
	OneTimeAmount  decimal.NullDecimal
	CalculatorData []byte
}

type CRMDeal struct {
	DealID    int64
	ContactID int64
}

// CRMClient creates sales deals in the CRM.
type CRMClient interface {
	CreateDealFromOrder(ctx context.Context, req CRMDealRequest) (*CRMDeal, error)
}

// DrainLocker serializes email drain cycles across processes.
type DrainLocker interface {
	Acquire(ctx context.Context) (release func(), err error)
}
