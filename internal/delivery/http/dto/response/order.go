package response

import (
	"encoding/json"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

type Document struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	FileName  string    `json:"fileName"`
	FileSize  int64     `json:"fileSize"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
}

type StatusHistory struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Comment   *string   `json:"comment"`
	ChangedBy string    `json:"changedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type Order struct {
	ID             string              `json:"id"`
	Number         string              `json:"number"`
	UserID         string              `json:"userId"`
	ServiceName    string              `json:"serviceName"`
	Description    *string             `json:"description"`
	Status         string              `json:"status"`
	Priority       string              `json:"priority"`
	Amount         decimal.NullDecimal `json:"amount"`
	MonthlyAmount  decimal.NullDecimal `json:"monthlyAmount"`
	OneTimeAmount  decimal.NullDecimal `json:"oneTimeAmount"`
	Currency       string              `json:"currency"`
	Source         string              `json:"source"`
	CalculatorData json.RawMessage     `json:"calculatorData,omitempty"`
	CRMDealID      *int64              `json:"crmDealId,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	CompletedAt    *time.Time          `json:"completedAt"`

	User          *User           `json:"user,omitempty"`
	Documents     []Document      `json:"documents,omitempty"`
	StatusHistory []StatusHistory `json:"statusHistory,omitempty"`
}

type OrderEnvelope struct {
	Order Order `json:"order"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

type HistoryList struct {
	History []StatusHistory `json:"history"`
}

type CancelSeries struct {
	Success   bool  `json:"success"`
	Cancelled int64 `json:"cancelled"`
}

func FromOrder(o *domain.Order) Order {
	out := Order{
		ID:             o.ID,
		Number:         o.Number(),
		UserID:         o.UserID,
		ServiceName:    o.ServiceName,
		Description:    o.Description,
		Status:         string(o.Status),
		Priority:       string(o.Priority),
		Amount:         o.Amount,
		MonthlyAmount:  o.MonthlyAmount,
		OneTimeAmount:  o.OneTimeAmount,
		Currency:       o.Currency,
		Source:         string(o.Source),
		CalculatorData: o.CalculatorData,
		CRMDealID:      o.CRMDealID,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		CompletedAt:    o.CompletedAt,
	}
	if o.User != nil {
		out.User = &User{
			ID:    o.User.ID,
			Email: o.User.Email,
			Name:  o.User.Name,
			Phone: o.User.Phone,
			Role:  string(o.User.Role),
		}
	}
	for _, d := range o.Documents {
		out.Documents = append(out.Documents, Document{
			ID:        d.ID,
			Name:      d.Name,
			FileName:  d.FileName,
			FileSize:  d.FileSize,
			MimeType:  d.MimeType,
			CreatedAt: d.CreatedAt,
		})
	}
	for i := range o.History {
		out.StatusHistory = append(out.StatusHistory, FromHistory(&o.History[i]))
	}
	return out
}

func FromOrders(orders []*domain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromHistory(h *domain.OrderStatusHistory) StatusHistory {
	return StatusHistory{
		ID:        h.ID,
		Status:    string(h.Status),
		Comment:   h.Comment,
		ChangedBy: h.ChangedBy,
		CreatedAt: h.CreatedAt,
	}
}
