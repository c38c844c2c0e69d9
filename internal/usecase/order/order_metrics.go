package order

import (
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
)

// recordOrderCreatedMetrics - вызывается при создании заказа
func (uc *DefaultOrderUsecase) recordOrderCreatedMetrics(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}

	monthly := 0.0
	if order.MonthlyAmount.Valid {
		monthly = order.MonthlyAmount.Decimal.InexactFloat64()
	}
	uc.Metrics.RecordOrderCreated(
		string(order.Source),
		string(order.Priority),
		order.Currency,
		monthly,
	)
}

// recordTransitionMetrics - вызывается после фактической смены статуса
func (uc *DefaultOrderUsecase) recordTransitionMetrics(from, to domain.OrderStatus, adminPath bool) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordTransition(string(from), string(to), adminPath)
}

func (uc *DefaultOrderUsecase) recordCollaboratorError(collaborator, operation string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordCollaboratorError(collaborator, operation)
}
