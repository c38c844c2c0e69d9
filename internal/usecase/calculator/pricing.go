package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type BusinessParams struct {
	BusinessType    BusinessType
	TaxSystem       TaxSystem
	EmployeesCount  string
	OperationsCount string
	HasNDS          bool
	HasVED          bool
}

type SelectedServices struct {
	FullAccounting     bool
	ReportingOnly      bool
	Payroll            bool
	AccountingRecovery bool
	AccountingSetup    bool
	RegisterIP         bool
	RegisterOOO        bool
	ECP                bool
	LegalSupport       bool
	Contracts          bool
	CRM                bool
	AIAssistant        bool
	SMM                bool
}

type ServicePackage struct {
	ID           string
	Name         string
	Description  string
	MonthlyPrice decimal.Decimal
	OneTimePrice decimal.Decimal
	Includes     []string
}

type Result struct {
	Monthly            decimal.Decimal
	OneTime            decimal.Decimal
	Discount           decimal.Decimal
	Savings            decimal.Decimal
	Packages           []ServicePackage
	EmployeeComparison EmployeeComparison
}

type EmployeeComparison struct {
	EmployeeCost   decimal.Decimal
	Savings        decimal.Decimal
	SavingsPercent int64
}

func (p BusinessParams) Validate() error {
	if !p.BusinessType.Valid() {
		return fmt.Errorf("unknown business type %q", p.BusinessType)
	}
	if !p.TaxSystem.Valid() {
		return fmt.Errorf("unknown tax system %q", p.TaxSystem)
	}
	return nil
}

// AccountingPrice is the monthly bookkeeping price rounded to thousands.
func AccountingPrice(p BusinessParams) decimal.Decimal {
	if p.BusinessType == BusinessPlanning {
		return decimal.Zero
	}

	var base int64
	switch p.BusinessType {
	case BusinessIP:
		base = lookup(accountingIP, p.TaxSystem, defaultAccountingIP)
	case BusinessOOO, BusinessHolding:
		base = lookup(accountingOOO, p.TaxSystem, defaultAccountingOOO)
	}
	price := decimal.NewFromInt(base)

	if m, ok := operationsMultiplier[p.OperationsCount]; ok {
		price = price.Mul(m)
	}
	if p.HasNDS {
		price = price.Mul(ndsMultiplier)
	}
	if p.HasVED {
		price = price.Mul(vedMultiplier)
	}
	price = price.Add(decimal.NewFromInt(employeesAverage[p.EmployeesCount] * payrollPerEmployee))
	if p.BusinessType == BusinessHolding {
		price = price.Mul(holdingMultiplier)
	}

	return roundTo(price, 1000)
}

// CalculateTotalPrice is pure: identical inputs always give identical totals.
func CalculateTotalPrice(p BusinessParams, s SelectedServices) Result {
	monthly, oneTime := decimal.Zero, decimal.Zero
	var packages []ServicePackage
	add := func(pkg ServicePackage) {
		monthly = monthly.Add(pkg.MonthlyPrice)
		oneTime = oneTime.Add(pkg.OneTimePrice)
		packages = append(packages, pkg)
	}

	isIP := p.BusinessType == BusinessIP
	isPlanning := p.BusinessType == BusinessPlanning
	employees := employeesAverage[p.EmployeesCount]

	// Бухгалтерия
	if s.FullAccounting && !isPlanning {
		description := "Полное ведение учёта ООО"
		if isIP {
			description = "Полное ведение учёта ИП"
		}
		add(monthlyPackage("accounting", "Бухгалтерское сопровождение", description, AccountingPrice(p),
			"Ведение бухгалтерского учёта", "Расчёт налогов", "Сдача отчётности", "Консультации бухгалтера"))
	}
	if s.ReportingOnly && !isPlanning {
		add(monthlyPackage("reporting", "Сдача отчётности", "Подготовка и сдача всех видов отчётности",
			byType(isIP, reportingOnlyIP, reportingOnlyOOO),
			"Налоговая отчётность", "Статистика", "ПФР и ФСС"))
	}
	if s.Payroll && !isPlanning {
		add(monthlyPackage("payroll", "Кадровый учёт и зарплата",
			fmt.Sprintf("Расчёт зарплаты для %d сотрудников", employees),
			decimal.NewFromInt(payrollBase+employees*payrollPerEmployeeFull),
			"Расчёт зарплаты", "Кадровый учёт", "Отчётность в фонды"))
	}
	if s.AccountingRecovery {
		add(oneTimePackage("recovery", "Восстановление учёта", "Восстановление бухгалтерского учёта за квартал",
			byType(isIP, recoveryIP, recoveryOOO),
			"Анализ документов", "Восстановление проводок", "Сверка с ФНС"))
	}
	if s.AccountingSetup {
		add(oneTimePackage("setup", "Постановка учёта с нуля", "Организация системы учёта для нового бизнеса",
			byType(isIP, setupIP, setupOOO),
			"Настройка учётной политики", "Создание плана счетов", "Обучение"))
	}

	// Регистрация; для планирующих бизнес ИП регистрируется всегда
	if s.RegisterIP || isPlanning {
		add(oneTimePackage("register-ip", "Регистрация ИП", "Полное сопровождение регистрации",
			decimal.NewFromInt(registrationIP),
			"Подготовка документов", "Подача в ФНС", "Получение документов"))
	}
	if s.RegisterOOO {
		add(oneTimePackage("register-ooo", "Регистрация ООО", "Полное сопровождение регистрации",
			decimal.NewFromInt(registrationOOO),
			"Подготовка устава", "Подача в ФНС", "Открытие счёта"))
	}
	if s.ECP {
		add(oneTimePackage("ecp", "Электронная подпись (ЭЦП)", "Получение и настройка ЭЦП",
			decimal.NewFromInt(registrationECP),
			"Выпуск сертификата", "Настройка на компьютере"))
	}

	// Юридические
	if s.LegalSupport {
		add(monthlyPackage("legal-support", "Абонентское юрсопровождение", "Комплексная юридическая поддержка",
			decimal.NewFromInt(legalSupport),
			"Консультации юриста", "Проверка документов", "Претензионная работа"))
	}
	if s.Contracts {
		add(monthlyPackage("contracts", "Договорная работа", "Разработка и проверка договоров",
			decimal.NewFromInt(legalContracts),
			"До 5 договоров в месяц", "Правовая экспертиза", "Шаблоны договоров"))
	}

	// Автоматизация
	if s.CRM {
		add(ServicePackage{
			ID:           "crm",
			Name:         "Внедрение CRM",
			Description:  "Настройка и поддержка amoCRM",
			MonthlyPrice: decimal.NewFromInt(crmSupport),
			OneTimePrice: decimal.NewFromInt(crmSetup),
			Includes:     []string{"Настройка воронок", "Интеграция с сайтом", "Обучение"},
		})
	}
	if s.AIAssistant {
		add(monthlyPackage("ai", "ИИ-ассистент", "Умный помощник для бизнеса",
			decimal.NewFromInt(aiAssistant),
			"Ответы на вопросы", "Анализ документов", "Автоматизация рутины"))
	}

	// Маркетинг
	if s.SMM {
		add(monthlyPackage("smm", "Ведение соцсетей", "SMM продвижение бизнеса",
			decimal.NewFromInt(marketingSMM),
			"Контент-план", "Публикации", "Модерация"))
	}

	discount := bundleDiscount(s)
	savings := monthly.Mul(discount).Round(0)
	monthly = monthly.Sub(savings)

	monthly = roundTo(monthly, 100)
	return Result{
		Monthly:            monthly,
		OneTime:            roundTo(oneTime, 100),
		Discount:           discount,
		Savings:            savings,
		Packages:           packages,
		EmployeeComparison: CompareWithEmployee(monthly),
	}
}

// CompareWithEmployee compares the monthly price with a staff accountant.
func CompareWithEmployee(monthly decimal.Decimal) EmployeeComparison {
	cost := decimal.NewFromInt(employeeAccountantCost)
	savings := cost.Sub(monthly)
	return EmployeeComparison{
		EmployeeCost:   cost,
		Savings:        savings,
		SavingsPercent: roundHalfUp(savings.Div(cost).Mul(decimal.NewFromInt(100))),
	}
}

// roundHalfUp rounds .5 towards +inf: -12.5 gives -12.
func roundHalfUp(d decimal.Decimal) int64 {
	return d.Add(decimal.NewFromFloat(0.5)).Floor().IntPart()
}

func bundleDiscount(s SelectedServices) decimal.Decimal {
	discount := decimal.Zero
	if s.FullAccounting && s.LegalSupport {
		discount = decimal.Max(discount, discountAccountingLegal)
	}
	if s.FullAccounting && (s.CRM || s.AIAssistant) {
		discount = decimal.Max(discount, discountAccountingAutomation)
	}
	if s.FullAccounting && s.LegalSupport && s.AIAssistant {
		discount = discountFullBundle
	}
	return discount
}

func monthlyPackage(id, name, description string, price decimal.Decimal, includes ...string) ServicePackage {
	return ServicePackage{
		ID:           id,
		Name:         name,
		Description:  description,
		MonthlyPrice: price,
		OneTimePrice: decimal.Zero,
		Includes:     includes,
	}
}

func oneTimePackage(id, name, description string, price decimal.Decimal, includes ...string) ServicePackage {
	return ServicePackage{
		ID:           id,
		Name:         name,
		Description:  description,
		MonthlyPrice: decimal.Zero,
		OneTimePrice: price,
		Includes:     includes,
	}
}

func byType(isIP bool, ip, ooo int64) decimal.Decimal {
	if isIP {
		return decimal.NewFromInt(ip)
	}
	return decimal.NewFromInt(ooo)
}

func lookup(table map[TaxSystem]int64, tax TaxSystem, fallback int64) int64 {
	if v, ok := table[tax]; ok {
		return v
	}
	return fallback
}

// roundTo rounds half up to a multiple of step.
func roundTo(d decimal.Decimal, step int64) decimal.Decimal {
	s := decimal.NewFromInt(step)
	return d.Div(s).Round(0).Mul(s)
}
