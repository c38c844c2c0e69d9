package handlers

import (
	"net/http"
	"strconv"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/dto/request"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/dto/response"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/middleware"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/order"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	usecase order.OrderUsecase
}

func NewOrderHandler(uc order.OrderUsecase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	out, err := h.usecase.ListOrders(c.Request.Context(), middleware.CurrentUser(c), order.ListOrdersInput{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OrderList{
		Orders: response.FromOrders(out.Orders),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	})
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, msgInvalidPayload)
		return
	}

	created, err := h.usecase.CreateOrder(c.Request.Context(), middleware.CurrentUser(c), order.CreateOrderInput{
		ServiceName:    payload.ServiceName,
		Description:    payload.Description,
		Priority:       payload.Priority,
		Amount:         payload.Amount,
		MonthlyAmount:  payload.MonthlyAmount,
		OneTimeAmount:  payload.OneTimeAmount,
		Currency:       payload.Currency,
		Source:         payload.Source,
		CalculatorData: payload.CalculatorData,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.OrderEnvelope{Order: response.FromOrder(created)})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	found, err := h.usecase.GetOrder(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OrderEnvelope{Order: response.FromOrder(found)})
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, msgInvalidPayload)
		return
	}

	updated, err := h.usecase.UpdateOrder(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), order.UpdateOrderInput{
		Status:      payload.Status,
		Description: payload.Description,
		Priority:    payload.Priority,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OrderEnvelope{Order: response.FromOrder(updated)})
}
