package handlers

import (
	"net/http"
	"strconv"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/dto/request"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/dto/response"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/middleware"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/notification"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	usecase notification.NotificationUsecase
}

func NewNotificationHandler(uc notification.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	input := notification.ListInput{
		UserID: middleware.CurrentUser(c).ID,
		Limit:  limit,
		Offset: offset,
	}
	// ?read=true|false, любое другое значение не фильтрует
	if read, err := strconv.ParseBool(c.Query("read")); err == nil {
		input.Read = &read
	}

	out, err := h.usecase.List(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NotificationList{
		Notifications: response.FromNotifications(out.Items),
		Total:         out.Total,
		UnreadCount:   out.UnreadCount,
		Limit:         out.Limit,
		Offset:        out.Offset,
	})
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var payload request.CreateNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, msgInvalidPayload)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), notification.EmitInput{
		UserID:  middleware.CurrentUser(c).ID,
		Type:    domain.NotificationType(payload.Type),
		Title:   payload.Title,
		Message: payload.Message,
		Link:    payload.Link,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NotificationEnvelope{Notification: response.FromNotification(created)})
}

func (h *NotificationHandler) Update(c *gin.Context) {
	var payload request.UpdateNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Read == nil {
		badRequest(c, msgInvalidPayload)
		return
	}

	updated, err := h.usecase.SetRead(c.Request.Context(), middleware.CurrentUser(c).ID, c.Param("id"), *payload.Read)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NotificationEnvelope{Notification: response.FromNotification(updated)})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), middleware.CurrentUser(c).ID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Message{Message: "Уведомление успешно удалено"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	updated, err := h.usecase.MarkAllRead(c.Request.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MarkAllRead{Updated: updated})
}

func (h *NotificationHandler) GetSettings(c *gin.Context) {
	settings, err := h.usecase.GetSettings(c.Request.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SettingsEnvelope{Settings: response.FromSettings(settings)})
}

func (h *NotificationHandler) UpdateSettings(c *gin.Context) {
	var payload request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, msgInvalidPayload)
		return
	}

	settings, err := h.usecase.UpdateSettings(c.Request.Context(), middleware.CurrentUser(c).ID, domain.NotificationSettingsPatch{
		EmailEnabled:       payload.EmailEnabled,
		EmailOrderUpdates:  payload.EmailOrderUpdates,
		EmailDocumentReady: payload.EmailDocumentReady,
		EmailReminders:     payload.EmailReminders,
		EmailPromotions:    payload.EmailPromotions,
		PushEnabled:        payload.PushEnabled,
		PushOrderUpdates:   payload.PushOrderUpdates,
		PushDocumentReady:  payload.PushDocumentReady,
		PushReminders:      payload.PushReminders,
		PushPromotions:     payload.PushPromotions,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SettingsEnvelope{Settings: response.FromSettings(settings)})
}
