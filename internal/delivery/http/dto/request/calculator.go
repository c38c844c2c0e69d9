package request

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type BusinessParams struct {
	BusinessType    string `json:"businessType"`
	TaxSystem       string `json:"taxSystem"`
	EmployeesCount  string `json:"employeesCount"`
	OperationsCount string `json:"operationsCount"`
	HasNDS          bool   `json:"hasNds"`
	HasVED          bool   `json:"hasVed"`
}

type SelectedServices struct {
	FullAccounting     bool `json:"fullAccounting"`
	ReportingOnly      bool `json:"reportingOnly"`
	Payroll            bool `json:"payroll"`
	AccountingRecovery bool `json:"accountingRecovery"`
	AccountingSetup    bool `json:"accountingSetup"`
	RegisterIP         bool `json:"registerIp"`
	RegisterOOO        bool `json:"registerOoo"`
	ECP                bool `json:"ecp"`
	LegalSupport       bool `json:"legalSupport"`
	Contracts          bool `json:"contracts"`
	CRM                bool `json:"crm"`
	AIAssistant        bool `json:"aiAssistant"`
	SMM                bool `json:"smm"`
}

type CalculateRequest struct {
	BusinessParams   BusinessParams   `json:"businessParams"`
	SelectedServices SelectedServices `json:"selectedServices"`
}

type SaveCalculationRequest struct {
	UserID          *string         `json:"userId"`
	Name            *string         `json:"name"`
	Phone           *string         `json:"phone"`
	Email           *string         `json:"email"`
	BusinessType    string          `json:"businessType"`
	TaxSystem       string          `json:"taxSystem"`
	EmployeesCount  Count           `json:"employeesCount"`
	OperationsCount Count           `json:"operationsCount"`
	HasNDS          bool            `json:"hasNDS"`
	HasVED          bool            `json:"hasVED"`
	Services        json.RawMessage `json:"services"`
	Surcharges      json.RawMessage `json:"surcharges"`
	Breakdown       json.RawMessage `json:"breakdown"`
	TotalMonthly    decimal.Decimal `json:"totalMonthly"`
	TotalOneTime    decimal.Decimal `json:"totalOneTime"`
	TotalYearly     decimal.Decimal `json:"totalYearly"`
}

type SendCalculationEmailRequest struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	CalculationID string `json:"calculationId"`
}

// Count accepts both a JSON number and a string such as "1-5".
type Count string

func (c *Count) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Count(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Count(n.String())
	return nil
}
