package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateTotalPrice_Deterministic(t *testing.T) {
	params := BusinessParams{
		BusinessType:   BusinessOOO,
		TaxSystem:      TaxUSN6,
		EmployeesCount: "1-5",
		HasNDS:         false,
	}
	services := SelectedServices{FullAccounting: true}

	want := decimal.NewFromInt(14000)
	first := CalculateTotalPrice(params, services)
	if !first.Monthly.Equal(want) {
		t.Fatalf("expected monthly %s, got %s", want, first.Monthly)
	}

	for i := 0; i < 1000; i++ {
		res := CalculateTotalPrice(params, services)
		if !res.Monthly.Equal(first.Monthly) || !res.OneTime.Equal(first.OneTime) {
			t.Fatalf("run %d: totals drifted to %s/%s", i, res.Monthly, res.OneTime)
		}
	}
}

func TestCalculateTotalPrice(t *testing.T) {
	tests := []struct {
		name        string
		params      BusinessParams
		services    SelectedServices
		wantMonthly int64
		wantOneTime int64
		wantPkgs    int
	}{
		{
			name:        "planning always registers an IP",
			params:      BusinessParams{BusinessType: BusinessPlanning, TaxSystem: TaxUnknown},
			services:    SelectedServices{FullAccounting: true, Payroll: true},
			wantMonthly: 0,
			wantOneTime: 5000,
			wantPkgs:    1,
		},
		{
			name:        "full bundle discount",
			params:      BusinessParams{BusinessType: BusinessOOO, TaxSystem: TaxUSN6, EmployeesCount: "1-5"},
			services:    SelectedServices{FullAccounting: true, LegalSupport: true, AIAssistant: true},
			wantMonthly: 27200,
			wantOneTime: 0,
			wantPkgs:    3,
		},
		{
			name:        "accounting with legal support",
			params:      BusinessParams{BusinessType: BusinessIP, TaxSystem: TaxPatent},
			services:    SelectedServices{FullAccounting: true, LegalSupport: true},
			wantMonthly: 17900,
			wantOneTime: 0,
			wantPkgs:    2,
		},
		{
			name: "holding with every multiplier",
			params: BusinessParams{
				BusinessType:    BusinessHolding,
				TaxSystem:       TaxOSNO,
				EmployeesCount:  "50+",
				OperationsCount: "300+",
				HasNDS:          true,
			},
			services:    SelectedServices{FullAccounting: true},
			wantMonthly: 143000,
			wantOneTime: 0,
			wantPkgs:    1,
		},
		{
			name:        "crm counts both ways",
			params:      BusinessParams{BusinessType: BusinessIP, TaxSystem: TaxUSN15},
			services:    SelectedServices{CRM: true, RegisterOOO: true, ECP: true},
			wantMonthly: 10000,
			wantOneTime: 60500,
			wantPkgs:    3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := CalculateTotalPrice(tc.params, tc.services)
			if !res.Monthly.Equal(decimal.NewFromInt(tc.wantMonthly)) {
				t.Fatalf("monthly: expected %d, got %s", tc.wantMonthly, res.Monthly)
			}
			if !res.OneTime.Equal(decimal.NewFromInt(tc.wantOneTime)) {
				t.Fatalf("one-time: expected %d, got %s", tc.wantOneTime, res.OneTime)
			}
			if len(res.Packages) != tc.wantPkgs {
				t.Fatalf("expected %d packages, got %d", tc.wantPkgs, len(res.Packages))
			}
		})
	}
}

func TestAccountingPrice_RoundsToThousands(t *testing.T) {
	// 10000 * 1.2 * 1.3 + 10 * 500 = 20600
	price := AccountingPrice(BusinessParams{
		BusinessType:    BusinessIP,
		TaxSystem:       TaxUSN15,
		EmployeesCount:  "6-15",
		OperationsCount: "20-50",
		HasVED:          true,
	})
	if !price.Equal(decimal.NewFromInt(21000)) {
		t.Fatalf("expected 21000, got %s", price)
	}
}

func TestCompareWithEmployee(t *testing.T) {
	cmp := CompareWithEmployee(decimal.NewFromInt(14000))
	if !cmp.Savings.Equal(decimal.NewFromInt(66000)) {
		t.Fatalf("expected savings 66000, got %s", cmp.Savings)
	}
	if cmp.SavingsPercent != 83 {
		t.Fatalf("expected 83%%, got %d", cmp.SavingsPercent)
	}

	// Половины округляются вверх, в том числе для отрицательной экономии
	cases := []struct {
		monthly int64
		percent int64
	}{
		{90000, -12},
		{110000, -37},
		{79600, 1},
		{80000, 0},
	}
	for _, tc := range cases {
		if got := CompareWithEmployee(decimal.NewFromInt(tc.monthly)).SavingsPercent; got != tc.percent {
			t.Fatalf("monthly %d: expected %d%%, got %d%%", tc.monthly, tc.percent, got)
		}
	}

	res := CalculateTotalPrice(BusinessParams{BusinessType: BusinessOOO, TaxSystem: TaxUSN6, EmployeesCount: "1-5"}, SelectedServices{FullAccounting: true})
	if !res.EmployeeComparison.Savings.Equal(decimal.NewFromInt(66000)) || res.EmployeeComparison.SavingsPercent != 83 {
		t.Fatalf("expected the result to carry the comparison, got %+v", res.EmployeeComparison)
	}
}

func TestBusinessParams_Validate(t *testing.T) {
	if err := (BusinessParams{BusinessType: "llc", TaxSystem: TaxUSN6}).Validate(); err == nil {
		t.Fatalf("expected unknown business type to fail")
	}
	if err := (BusinessParams{BusinessType: BusinessIP, TaxSystem: "flat"}).Validate(); err == nil {
		t.Fatalf("expected unknown tax system to fail")
	}
	if err := (BusinessParams{BusinessType: BusinessIP, TaxSystem: TaxPatent}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
