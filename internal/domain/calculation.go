package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Calculation is a saved pricing-calculator result shared by link.
type Calculation struct {
	ID              string
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
	ViewCount       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
