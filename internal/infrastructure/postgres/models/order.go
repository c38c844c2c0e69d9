package models

import (
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	UserID         string `gorm:"type:uuid;not null;index:idx_orders_user_created"`
	ServiceName    string `gorm:"not null"`
	Description    *string
	Status         domain.OrderStatus   `gorm:"type:varchar(20);not null;index:idx_orders_status"`
	Priority       domain.OrderPriority `gorm:"type:varchar(10);not null"`
	Amount         decimal.NullDecimal  `gorm:"type:numeric(14,2)"`
	MonthlyAmount  decimal.NullDecimal  `gorm:"type:numeric(14,2)"`
	OneTimeAmount  decimal.NullDecimal  `gorm:"type:numeric(14,2)"`
	Currency       string               `gorm:"type:varchar(3);not null"`
	Source         domain.OrderSource   `gorm:"type:varchar(20);not null"`
	CalculatorData datatypes.JSON
	CRMDealID      *int64
	CreatedAt      time.Time `gorm:"index:idx_orders_user_created"`
	UpdatedAt      time.Time
	CompletedAt    *time.Time

	User      *UserModel                `gorm:"foreignKey:UserID;references:ID"`
	Documents []DocumentModel           `gorm:"foreignKey:OrderID"`
	History   []OrderStatusHistoryModel `gorm:"foreignKey:OrderID"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderStatusHistoryModel is append-only: rows are inserted, never updated.
type OrderStatusHistoryModel struct {
	ID        string             `gorm:"primaryKey;type:uuid"`
	OrderID   string             `gorm:"type:uuid;not null;index:idx_history_order_created"`
	Status    domain.OrderStatus `gorm:"type:varchar(20);not null"`
	Comment   *string
	ChangedBy string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index:idx_history_order_created"`
}

func (OrderStatusHistoryModel) TableName() string {
	return "order_status_history"
}

type DocumentModel struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	OrderID   *string `gorm:"type:uuid;index"`
	UserID    string  `gorm:"type:uuid;not null;index"`
	Name      string  `gorm:"not null"`
	FileName  string  `gorm:"not null"`
	FileSize  int64
	MimeType  string
	CreatedAt time.Time
}

func (DocumentModel) TableName() string {
	return "documents"
}
