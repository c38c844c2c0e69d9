package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusReview     OrderStatus = "REVIEW"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusInProgress,
	StatusReview,
	StatusCompleted,
	StatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label is the customer-facing wording used in notifications and emails.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "ожидает обработки"
	case StatusInProgress:
		return "взята в работу"
	case StatusReview:
		return "на проверке"
	case StatusCompleted:
		return "выполнена"
	case StatusCancelled:
		return "отменена"
	}
	return string(s)
}

// Color is the badge color of the status in HTML emails.
func (s OrderStatus) Color() string {
	switch s {
	case StatusPending:
		return "#EAB308"
	case StatusInProgress:
		return "#3B82F6"
	case StatusReview:
		return "#A855F7"
	case StatusCompleted:
		return "#22C55E"
	case StatusCancelled:
		return "#EF4444"
	}
	return "#333333"
}

type OrderPriority string

const (
	PriorityLow    OrderPriority = "LOW"
	PriorityNormal OrderPriority = "NORMAL"
	PriorityHigh   OrderPriority = "HIGH"
	PriorityUrgent OrderPriority = "URGENT"
)

func (p OrderPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type OrderSource string

const (
	SourceManual     OrderSource = "MANUAL"
	SourceCalculator OrderSource = "CALCULATOR"
)

const DefaultCurrency = "RUB"

type Order struct {
	ID             string
	UserID         string
	ServiceName    string
	Description    *string
	Status         OrderStatus
	Priority       OrderPriority
	Amount         decimal.NullDecimal
	MonthlyAmount  decimal.NullDecimal
	OneTimeAmount  decimal.NullDecimal
	Currency       string
	Source         OrderSource
	CalculatorData json.RawMessage
	CRMDealID      *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time

	User      *User
	Documents []Document
	History   []OrderStatusHistory
}

// Number is the short order reference shown to customers.
func (o *Order) Number() string {
	id := strings.ReplaceAll(o.ID, "-", "")
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}

type OrderFilter struct {
	UserID string
	Status *OrderStatus
	Limit  int
	Offset int
}

type OrderStatusHistory struct {
	ID        string
	OrderID   string
	Status    OrderStatus
	Comment   *string
	ChangedBy string
	CreatedAt time.Time
}

const ChangedBySystem = "system"

type Document struct {
	ID        string
	OrderID   *string
	UserID    string
	Name      string
	FileName  string
	FileSize  int64
	MimeType  string
	CreatedAt time.Time
}
