package handlers

import (
	"net/http"
	"strings"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/dto/request"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/dto/response"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/calculator"
	"github.com/gin-gonic/gin"
)

type CalculatorHandler struct {
	usecase calculator.CalculatorUsecase
}

func NewCalculatorHandler(uc calculator.CalculatorUsecase) *CalculatorHandler {
	return &CalculatorHandler{usecase: uc}
}

func (h *CalculatorHandler) Calculate(c *gin.Context) {
	var payload request.CalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, msgInvalidPayload)
		return
	}

	p, s := payload.BusinessParams, payload.SelectedServices
	result, err := h.usecase.Calculate(calculator.BusinessParams{
		BusinessType:    calculator.BusinessType(strings.ToLower(p.BusinessType)),
		TaxSystem:       calculator.TaxSystem(strings.ToLower(p.TaxSystem)),
		EmployeesCount:  p.EmployeesCount,
		OperationsCount: p.OperationsCount,
		HasNDS:          p.HasNDS,
		HasVED:          p.HasVED,
	}, calculator.SelectedServices{
		FullAccounting:     s.FullAccounting,
		ReportingOnly:      s.ReportingOnly,
		Payroll:            s.Payroll,
		AccountingRecovery: s.AccountingRecovery,
		AccountingSetup:    s.AccountingSetup,
		RegisterIP:         s.RegisterIP,
		RegisterOOO:        s.RegisterOOO,
		ECP:                s.ECP,
		LegalSupport:       s.LegalSupport,
		Contracts:          s.Contracts,
		CRM:                s.CRM,
		AIAssistant:        s.AIAssistant,
		SMM:                s.SMM,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromResult(result))
}

func (h *CalculatorHandler) Save(c *gin.Context) {
	var payload request.SaveCalculationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, msgInvalidPayload)
		return
	}

	out, err := h.usecase.Save(c.Request.Context(), calculator.SaveInput{
		UserID:          payload.UserID,
		Name:            payload.Name,
		Phone:           payload.Phone,
		Email:           payload.Email,
		BusinessType:    payload.BusinessType,
		TaxSystem:       payload.TaxSystem,
		EmployeesCount:  string(payload.EmployeesCount),
		OperationsCount: string(payload.OperationsCount),
		HasNDS:          payload.HasNDS,
		HasVED:          payload.HasVED,
		Services:        payload.Services,
		Surcharges:      payload.Surcharges,
		Breakdown:       payload.Breakdown,
		TotalMonthly:    payload.TotalMonthly,
		TotalOneTime:    payload.TotalOneTime,
		TotalYearly:     payload.TotalYearly,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SaveCalculation{
		Success: true,
		Calculation: response.SavedCalculation{
			ID:        out.Calculation.ID,
			CreatedAt: out.Calculation.CreatedAt,
		},
		URL: out.URL,
	})
}

func (h *CalculatorHandler) Get(c *gin.Context) {
	calc, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.GetCalculation{Success: true, Calculation: response.FromCalculation(calc)})
}

func (h *CalculatorHandler) SendEmail(c *gin.Context) {
	var payload request.SendCalculationEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, msgInvalidPayload)
		return
	}

	err := h.usecase.SendLink(c.Request.Context(), calculator.SendLinkInput{
		Email:         payload.Email,
		Name:          payload.Name,
		CalculationID: payload.CalculationID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success{Success: true})
}
