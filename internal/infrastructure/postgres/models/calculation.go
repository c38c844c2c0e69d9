package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type CalculationModel struct {
	ID              string  `gorm:"primaryKey;type:varchar(21)"`
	UserID          *string `gorm:"type:uuid;index"`
	Name            *string
	Phone           *string
	Email           *string
	BusinessType    string `gorm:"type:varchar(20);not null"`
	TaxSystem       string `gorm:"type:varchar(20);not null"`
	EmployeesCount  string `gorm:"type:varchar(10)"`
	OperationsCount string `gorm:"type:varchar(10)"`
	HasNDS          bool
	HasVED          bool
	Services        datatypes.JSON
	Surcharges      datatypes.JSON
	Breakdown       datatypes.JSON
	TotalMonthly    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalOneTime    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalYearly     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ViewCount       int             `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (CalculationModel) TableName() string {
	return "calculations"
}
