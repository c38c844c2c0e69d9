package calculator

import "github.com/shopspring/decimal"

type BusinessType string

const (
	BusinessPlanning BusinessType = "planning"
	BusinessIP       BusinessType = "ip"
	BusinessOOO      BusinessType = "ooo"
	BusinessHolding  BusinessType = "holding"
)

func (b BusinessType) Valid() bool {
	switch b {
	case BusinessPlanning, BusinessIP, BusinessOOO, BusinessHolding:
		return true
	}
	return false
}

type TaxSystem string

const (
	TaxUSN6    TaxSystem = "usn6"
	TaxUSN15   TaxSystem = "usn15"
	TaxOSNO    TaxSystem = "osno"
	TaxPatent  TaxSystem = "patent"
	TaxUnknown TaxSystem = "unknown"
)

func (t TaxSystem) Valid() bool {
	switch t {
	case TaxUSN6, TaxUSN15, TaxOSNO, TaxPatent, TaxUnknown:
		return true
	}
	return false
}

// Базовые цены, ₽/мес или разово
var (
	accountingIP = map[TaxSystem]int64{
		TaxUSN6:   8000,
		TaxUSN15:  10000,
		TaxOSNO:   18000,
		TaxPatent: 6000,
	}
	accountingOOO = map[TaxSystem]int64{
		TaxUSN6:  12000,
		TaxUSN15: 15000,
		TaxOSNO:  25000,
	}

	operationsMultiplier = map[string]decimal.Decimal{
		"0-20":    decimal.NewFromInt(1),
		"20-50":   decimal.RequireFromString("1.2"),
		"50-100":  decimal.RequireFromString("1.4"),
		"100-300": decimal.RequireFromString("1.7"),
		"300+":    decimal.NewFromInt(2),
	}

	// Среднее число сотрудников по диапазону
	employeesAverage = map[string]int64{
		"0":     0,
		"1-5":   3,
		"6-15":  10,
		"16-50": 30,
		"50+":   50,
	}

	ndsMultiplier     = decimal.RequireFromString("1.4")
	vedMultiplier     = decimal.RequireFromString("1.3")
	holdingMultiplier = decimal.RequireFromString("1.5")

	discountAccountingLegal      = decimal.RequireFromString("0.15")
	discountAccountingAutomation = decimal.RequireFromString("0.10")
	discountFullBundle           = decimal.RequireFromString("0.20")
)

const (
	defaultAccountingIP  = 10000
	defaultAccountingOOO = 15000
	payrollPerEmployee   = 500

	reportingOnlyIP  = 4000
	reportingOnlyOOO = 6000

	payrollBase            = 2000
	payrollPerEmployeeFull = 400

	recoveryIP  = 12000
	recoveryOOO = 18000
	setupIP     = 15000
	setupOOO    = 25000

	registrationIP  = 5000
	registrationOOO = 12000
	registrationECP = 3500

	legalSupport   = 15000
	legalContracts = 8000

	crmSetup    = 45000
	crmSupport  = 10000
	aiAssistant = 5000

	marketingSMM = 25000

	// Штатный бухгалтер: ~50 000 зарплата + 30% налоги + рабочее место
	employeeAccountantCost = 80000
)
