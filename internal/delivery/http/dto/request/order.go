package request

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	ServiceName    string              `json:"serviceName"`
	Description    *string             `json:"description"`
	Priority       string              `json:"priority"`
	Amount         decimal.NullDecimal `json:"amount"`
	MonthlyAmount  decimal.NullDecimal `json:"monthlyAmount"`
	OneTimeAmount  decimal.NullDecimal `json:"oneTimeAmount"`
	Currency       string              `json:"currency"`
	Source         string              `json:"source"`
	CalculatorData json.RawMessage     `json:"calculatorData"`
}

type UpdateOrderRequest struct {
	Status      *string `json:"status"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
}

type AdminUpdateOrderRequest struct {
	Status  string  `json:"status"`
	Comment *string `json:"comment"`
}

type CancelEmailSeriesRequest struct {
	Email string `json:"email" binding:"required"`
}
