package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/dto/response"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/emailqueue"
	"github.com/gin-gonic/gin"
)

// CronHandler lets an external scheduler trigger one drain of the email queue.
type CronHandler struct {
	queue     emailqueue.EmailQueueUsecase
	batchSize int
	timeout   time.Duration
}

func NewCronHandler(queue emailqueue.EmailQueueUsecase, batchSize int, timeout time.Duration) *CronHandler {
	if batchSize <= 0 {
		batchSize = emailqueue.DefaultBatchSize
	}
	return &CronHandler{queue: queue, batchSize: batchSize, timeout: timeout}
}

func (h *CronHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, response.CronStatus{
		Status:  "ok",
		Message: "Email cron job endpoint is ready",
		Info:    "Use POST request with Authorization header to trigger email sending",
	})
}

func (h *CronHandler) SendEmails(c *gin.Context) {
	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	sent, err := h.queue.DrainDue(ctx, time.Now(), h.batchSize)
	switch {
	case errors.Is(err, domain.ErrDrainInProgress):
		// другой процесс уже разбирает очередь
		slog.Info("email drain skipped, already in progress")
	case err != nil:
		slog.Error("email drain failed", "processed", sent, "error", err)
		c.JSON(http.StatusInternalServerError, response.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.CronResult{
		Success:   true,
		Message:   fmt.Sprintf("Отправлено %d писем", sent),
		SentCount: sent,
	})
}
