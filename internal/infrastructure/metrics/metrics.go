package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PortalMetrics содержит все метрики портала
type PortalMetrics struct {
	// Заявки
	OrdersCreatedTotal       *prometheus.CounterVec
	OrdersMonthlyAmountTotal *prometheus.CounterVec
	OrderTransitionsTotal    *prometheus.CounterVec
	OrderTransitionsRejected *prometheus.CounterVec

	// Уведомления
	NotificationsEmittedTotal *prometheus.CounterVec

	// Очередь писем
	EmailsEnqueuedTotal  *prometheus.CounterVec
	EmailsSentTotal      *prometheus.CounterVec
	EmailsFailedTotal    *prometheus.CounterVec
	EmailsRetriedTotal   *prometheus.CounterVec
	EmailClaimsLostTotal prometheus.Counter
	EmailDrainDuration   prometheus.Histogram
	EmailDrainBatchSize  prometheus.Histogram

	// Калькулятор
	CalculationsSavedTotal *prometheus.CounterVec

	// Внешние интеграции
	CollaboratorErrorsTotal *prometheus.CounterVec
}

// NewPortalMetrics регистрирует метрики в reg; nil означает глобальный реестр
func NewPortalMetrics(reg prometheus.Registerer) *PortalMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PortalMetrics{
		OrdersCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_orders_created_total",
				Help: "Общее количество созданных заявок",
			},
			[]string{"source", "priority"},
		),

		OrdersMonthlyAmountTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_orders_monthly_amount_total",
				Help: "Сумма ежемесячных платежей по созданным заявкам",
			},
			[]string{"source", "currency"},
		),

		OrderTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_order_transitions_total",
				Help: "Смены статуса заявок",
			},
			[]string{"from", "to", "path"},
		),

		OrderTransitionsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_order_transitions_rejected_total",
				Help: "Отклоненные политикой переходы статусов",
			},
			[]string{"from", "to"},
		),

		NotificationsEmittedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_notifications_emitted_total",
				Help: "Созданные уведомления в личном кабинете",
			},
			[]string{"type"},
		),

		EmailsEnqueuedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_emails_enqueued_total",
				Help: "Письма, поставленные в очередь",
			},
			[]string{"template"},
		),

		EmailsSentTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_emails_sent_total",
				Help: "Успешно отправленные письма",
			},
			[]string{"kind"},
		),

		EmailsFailedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_emails_failed_total",
				Help: "Письма, исчерпавшие попытки отправки",
			},
			[]string{"kind"},
		),

		EmailsRetriedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_emails_retried_total",
				Help: "Неудачные попытки, вернувшие письмо в очередь",
			},
			[]string{"template"},
		),

		EmailClaimsLostTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "portal_email_claims_lost_total",
				Help: "Строки очереди, захваченные параллельной обработкой",
			},
		),

		EmailDrainDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "portal_email_drain_duration_seconds",
				Help:    "Длительность одного прохода очереди писем",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms, 200ms, 400ms...
			},
		),

		EmailDrainBatchSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "portal_email_drain_batch_size",
				Help:    "Количество обработанных писем за проход",
				Buckets: []float64{0, 1, 5, 10, 25, 50},
			},
		),

		CalculationsSavedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_calculations_saved_total",
				Help: "Сохраненные расчеты калькулятора",
			},
			[]string{"business_type"},
		),

		CollaboratorErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_collaborator_errors_total",
				Help: "Ошибки внешних интеграций (SMTP, Telegram, CRM, Kafka)",
			},
			[]string{"collaborator", "operation"},
		),
	}
}

// RecordOrderCreated записывает созданную заявку
func (m *PortalMetrics) RecordOrderCreated(source, priority, currency string, monthlyAmount float64) {
	m.OrdersCreatedTotal.WithLabelValues(source, priority).Inc()
	if monthlyAmount > 0 {
		m.OrdersMonthlyAmountTotal.WithLabelValues(source, currency).Add(monthlyAmount)
	}
}

func (m *PortalMetrics) RecordTransition(from, to string, admin bool) {
	path := "customer"
	if admin {
		path = "admin"
	}
	m.OrderTransitionsTotal.WithLabelValues(from, to, path).Inc()
}

func (m *PortalMetrics) RecordTransitionRejected(from, to string) {
	m.OrderTransitionsRejected.WithLabelValues(from, to).Inc()
}

func (m *PortalMetrics) RecordNotification(notificationType string) {
	m.NotificationsEmittedTotal.WithLabelValues(notificationType).Inc()
}

func (m *PortalMetrics) RecordEmailEnqueued(template string) {
	m.EmailsEnqueuedTotal.WithLabelValues(template).Inc()
}

// RecordEmailSent kind is a template type or "immediate" for unqueued sends
func (m *PortalMetrics) RecordEmailSent(kind string) {
	m.EmailsSentTotal.WithLabelValues(kind).Inc()
}

func (m *PortalMetrics) RecordEmailFailed(kind string, final bool) {
	if final {
		m.EmailsFailedTotal.WithLabelValues(kind).Inc()
		return
	}
	m.EmailsRetriedTotal.WithLabelValues(kind).Inc()
}

func (m *PortalMetrics) RecordClaimLost() {
	m.EmailClaimsLostTotal.Inc()
}

// RecordDrain записывает длительность и размер прохода очереди
func (m *PortalMetrics) RecordDrain(durationSeconds float64, processed int) {
	m.EmailDrainDuration.Observe(durationSeconds)
	m.EmailDrainBatchSize.Observe(float64(processed))
}

func (m *PortalMetrics) RecordCalculationSaved(businessType string) {
	m.CalculationsSavedTotal.WithLabelValues(businessType).Inc()
}

// RecordCollaboratorError записывает ошибку внешней интеграции
func (m *PortalMetrics) RecordCollaboratorError(collaborator, operation string) {
	m.CollaboratorErrorsTotal.WithLabelValues(collaborator, operation).Inc()
}
