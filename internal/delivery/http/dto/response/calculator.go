package response

import (
	"encoding/json"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/calculator"
	"github.com/shopspring/decimal"
)

type ServicePackage struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	MonthlyPrice decimal.Decimal `json:"monthlyPrice"`
	OneTimePrice decimal.Decimal `json:"oneTimePrice"`
	Includes     []string        `json:"includes"`
}

type EmployeeComparison struct {
	EmployeeCost   decimal.Decimal `json:"employeeCost"`
	Savings        decimal.Decimal `json:"savings"`
	SavingsPercent int64           `json:"savingsPercent"`
}

type CalculateResult struct {
	Monthly            decimal.Decimal    `json:"monthly"`
	OneTime            decimal.Decimal    `json:"oneTime"`
	Discount           decimal.Decimal    `json:"discount"`
	Savings            decimal.Decimal    `json:"savings"`
	Packages           []ServicePackage   `json:"packages"`
	EmployeeComparison EmployeeComparison `json:"employeeComparison"`
}

type SavedCalculation struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type SaveCalculation struct {
	Success     bool             `json:"success"`
	Calculation SavedCalculation `json:"calculation"`
	URL         string           `json:"url"`
}

type Calculation struct {
	ID              string          `json:"id"`
	UserID          *string         `json:"userId"`
	Name            *string         `json:"name"`
	Phone           *string         `json:"phone"`
	Email           *string         `json:"email"`
	BusinessType    string          `json:"businessType"`
	TaxSystem       string          `json:"taxSystem"`
	EmployeesCount  string          `json:"employeesCount"`
	OperationsCount string          `json:"operationsCount"`
	HasNDS          bool            `json:"hasNDS"`
	HasVED          bool            `json:"hasVED"`
	Services        json.RawMessage `json:"services"`
	Surcharges      json.RawMessage `json:"surcharges"`
	Breakdown       json.RawMessage `json:"breakdown"`
	TotalMonthly    decimal.Decimal `json:"totalMonthly"`
	TotalOneTime    decimal.Decimal `json:"totalOneTime"`
	TotalYearly     decimal.Decimal `json:"totalYearly"`
	ViewCount       int             `json:"viewCount"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type GetCalculation struct {
	Success     bool        `json:"success"`
	Calculation Calculation `json:"calculation"`
}

type Success struct {
	Success bool `json:"success"`
}

func FromResult(r *calculator.Result) CalculateResult {
	out := CalculateResult{
		Monthly:  r.Monthly,
		OneTime:  r.OneTime,
		Discount: r.Discount,
		Savings:  r.Savings,
		Packages: make([]ServicePackage, 0, len(r.Packages)),
		EmployeeComparison: EmployeeComparison{
			EmployeeCost:   r.EmployeeComparison.EmployeeCost,
			Savings:        r.EmployeeComparison.Savings,
			SavingsPercent: r.EmployeeComparison.SavingsPercent,
		},
	}
	for _, p := range r.Packages {
		out.Packages = append(out.Packages, ServicePackage{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			MonthlyPrice: p.MonthlyPrice,
			OneTimePrice: p.OneTimePrice,
			Includes:     p.Includes,
		})
	}
	return out
}

func FromCalculation(c *domain.Calculation) Calculation {
	return Calculation{
		ID:              c.ID,
		UserID:          c.UserID,
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           c.Email,
		BusinessType:    c.BusinessType,
		TaxSystem:       c.TaxSystem,
		EmployeesCount:  c.EmployeesCount,
		OperationsCount: c.OperationsCount,
		HasNDS:          c.HasNDS,
		HasVED:          c.HasVED,
		Services:        c.Services,
		Surcharges:      c.Surcharges,
		Breakdown:       c.Breakdown,
		TotalMonthly:    c.TotalMonthly,
		TotalOneTime:    c.TotalOneTime,
		TotalYearly:     c.TotalYearly,
		ViewCount:       c.ViewCount,
		CreatedAt:       c.CreatedAt,
	}
}
