package router

import (
	"net/http"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/handlers"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/delivery/http/middleware"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Orders        *handlers.OrderHandler
	Admin         *handlers.AdminHandler
	Notifications *handlers.NotificationHandler
	Calculator    *handlers.CalculatorHandler
	Cron          *handlers.CronHandler
}

type Options struct {
	Users      domain.UserRepository
	CronSecret string
	// Gatherer defaults to the global prometheus registry.
	Gatherer prometheus.Gatherer
}

func New(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api")

	// Калькулятор публичный
	calc := api.Group("/calculator")
	{
		calc.POST("/calculate", h.Calculator.Calculate)
		calc.POST("/save", h.Calculator.Save)
		calc.POST("/send-email", h.Calculator.SendEmail)
		calc.GET("/:id", h.Calculator.Get)
	}

	cron := api.Group("/cron")
	{
		cron.GET("/send-emails", h.Cron.Status)
		cron.POST("/send-emails", middleware.CronAuth(opts.CronSecret), h.Cron.SendEmails)
	}

	authed := api.Group("", middleware.Auth(opts.Users))

	orders := authed.Group("/orders")
	{
		orders.GET("", h.Orders.ListOrders)
		orders.POST("", h.Orders.CreateOrder)
		orders.GET("/:id", h.Orders.GetOrder)
		orders.PATCH("/:id", h.Orders.UpdateOrder)
	}

	notifications := authed.Group("/notifications")
	{
		notifications.GET("", h.Notifications.List)
		notifications.POST("", h.Notifications.Create)
		notifications.POST("/read-all", h.Notifications.MarkAllRead)
		notifications.GET("/settings", h.Notifications.GetSettings)
		notifications.PUT("/settings", h.Notifications.UpdateSettings)
		notifications.PATCH("/:id", h.Notifications.Update)
		notifications.DELETE("/:id", h.Notifications.Delete)
	}

	admin := authed.Group("/admin", middleware.RequireStaff())
	{
		admin.GET("/orders/:id", h.Admin.GetOrder)
		admin.PATCH("/orders/:id", h.Admin.UpdateOrder)
		admin.GET("/orders/:id/history", h.Admin.GetHistory)
		admin.GET("/email-schedules", h.Admin.ListEmailSeries)
		admin.POST("/email-schedules/cancel", h.Admin.CancelEmailSeries)
	}

	return r
}
