package handlers

import (
	"net/http"
	"strings"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/dto/request"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/dto/response"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/middleware"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/emailqueue"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/order"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the staff endpoints. Routes are mounted behind RequireStaff.
type AdminHandler struct {
	orders     order.OrderUsecase
	emailQueue emailqueue.EmailQueueUsecase
}

func NewAdminHandler(orders order.OrderUsecase, emailQueue emailqueue.EmailQueueUsecase) *AdminHandler {
	return &AdminHandler{orders: orders, emailQueue: emailQueue}
}

func (h *AdminHandler) GetOrder(c *gin.Context) {
	found, err := h.orders.AdminGetOrder(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OrderEnvelope{Order: response.FromOrder(found)})
}

func (h *AdminHandler) UpdateOrder(c *gin.Context) {
	var payload request.AdminUpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, msgInvalidPayload)
		return
	}

	updated, err := h.orders.TransitionOrder(c.Request.Context(), order.TransitionInput{
		OrderID:   c.Param("id"),
		Status:    payload.Status,
		Comment:   payload.Comment,
		Actor:     middleware.CurrentUser(c),
		AdminPath: true,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.OrderEnvelope{Order: response.FromOrder(updated)})
}

func (h *AdminHandler) GetHistory(c *gin.Context) {
	history, err := h.orders.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := response.HistoryList{History: make([]response.StatusHistory, 0, len(history))}
	for _, entry := range history {
		out.History = append(out.History, response.FromHistory(entry))
	}
	c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) ListEmailSeries(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	rows, err := h.emailQueue.ListSeries(c.Request.Context(), email)
	if err != nil {
		writeError(c, err)
		return
	}

	out := response.EmailScheduleList{Email: email, Schedules: make([]response.EmailSchedule, 0, len(rows))}
	for _, row := range rows {
		out.Schedules = append(out.Schedules, response.FromEmailSchedule(row))
	}
	c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) CancelEmailSeries(c *gin.Context) {
	var payload request.CancelEmailSeriesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "Email is required")
		return
	}

	cancelled, err := h.emailQueue.CancelSeries(c.Request.Context(), payload.Email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CancelSeries{Success: true, Cancelled: cancelled})
}
