package setup

import (
	"fmt"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/calculator"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/emailqueue"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/notification"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/usecase/order"
)

type UseCases struct {
	OrderUsecase        order.OrderUsecase
	NotificationUsecase notification.NotificationUsecase
	EmailQueueUsecase   emailqueue.EmailQueueUsecase
	CalculatorUsecase   calculator.CalculatorUsecase
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	cfg := deps.Config
	repos := deps.Repositories

	emailQueueUsecase := emailqueue.NewDefaultEmailQueueUsecase(
		repos.EmailScheduleRepo,
		deps.Collaborators.Mailer,
		deps.Renderer,
		deps.Metrics,
		emailqueue.Options{
			SendDelay:    cfg.Cron.SendDelay,
			MaxAttempts:  cfg.Cron.MaxAttempts,
			SendingLease: cfg.Cron.SendingLease,
			Locker:       deps.Collaborators.Locker,
		},
	)

	notificationUsecase := notification.NewDefaultNotificationUsecase(
		repos.NotificationRepo,
		repos.SettingsRepo,
		deps.Metrics,
	)

	var policy domain.TransitionPolicy = domain.PermissiveTransitions
	if cfg.Orders.StrictTransitions {
		policy = domain.StrictTransitions
	}

	orderUsecase := order.NewDefaultOrderUsecase(
		repos.Tx,
		repos.OrderRepo,
		repos.HistoryRepo,
		repos.UserRepo,
		notificationUsecase,
		emailQueueUsecase,
		deps.Renderer,
		deps.Collaborators.Publisher,
		deps.Collaborators.Managers,
		deps.Collaborators.CRM,
		deps.Metrics,
		order.Options{
			Policy:          policy,
			EnforceSettings: cfg.Notifications.EnforceSettings,
		},
	)

	calculatorUsecase, err := calculator.NewDefaultCalculatorUsecase(
		repos.CalculationRepo,
		emailQueueUsecase,
		deps.Renderer,
		deps.Metrics,
	)
	if err != nil {
		return nil, fmt.Errorf("calculator usecase: %w", err)
	}

	return &UseCases{
		OrderUsecase:        orderUsecase,
		NotificationUsecase: notificationUsecase,
		EmailQueueUsecase:   emailQueueUsecase,
		CalculatorUsecase:   calculatorUsecase,
	}, nil
}
