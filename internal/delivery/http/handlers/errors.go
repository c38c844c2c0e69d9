package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/dto/response"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidPayload = "Некорректные данные"
	msgInternal       = "Внутренняя ошибка сервера"
)

func mapError(err error) (int, string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Msg
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "Некорректный статус"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Не авторизован"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Нет доступа"
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "Заказ не найден"
	case errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, "Уведомление не найдено"
	case errors.Is(err, domain.ErrCalculationNotFound):
		return http.StatusNotFound, "Расчет не найден"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Пользователь не найден"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, "Недопустимый переход статуса"
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func writeError(c *gin.Context, err error) {
	code, msg := mapError(err)
	if code == http.StatusInternalServerError {
		slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	}
	c.JSON(code, response.Error{Error: msg})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, response.Error{Error: msg})
}
