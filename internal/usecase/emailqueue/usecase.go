package emailqueue

import (
	"context"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/metrics"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/templates"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=usecase.go -destination=mocks/emailqueue_mock.go -package=mocks

const (
	DefaultBatchSize    = 50
	DefaultSendDelay    = 100 * time.Millisecond
	DefaultSendingLease = 10 * time.Minute

	// Результат отправки пишется даже после отмены контекста дрейна
	bookkeepingTimeout = 5 * time.Second
)

type EmailQueueUsecase interface {
	EnqueueSeries(ctx context.Context, input SeriesInput) ([]*domain.EmailSchedule, error)
	DrainDue(ctx context.Context, now time.Time, batchSize int) (int, error)
	CancelSeries(ctx context.Context, recipientEmail string) (int64, error)
	ListSeries(ctx context.Context, recipientEmail string) ([]*domain.EmailSchedule, error)
	SendNow(ctx context.Context, email domain.Email) error
}

type SeriesInput struct {
	Email         string
	Name          string
	CalculationID string
	TotalMonthly  decimal.NullDecimal
}

type Options struct {
	SendDelay   time.Duration
	MaxAttempts int
	// SendingLease is how long a row may stay SENDING before a later drain takes it back.
	SendingLease time.Duration
	// Locker is optional; without it drain cycles are not serialized across processes.
	Locker domain.DrainLocker
	Clock  func() time.Time
}

type DefaultEmailQueueUsecase struct {
	Repo     domain.EmailScheduleRepository
	Sender   domain.EmailSender
	Renderer *templates.Renderer
	Metrics  *metrics.PortalMetrics

	locker       domain.DrainLocker
	sendDelay    time.Duration
	maxAttempts  int
	sendingLease time.Duration
	clock        func() time.Time
}

func NewDefaultEmailQueueUsecase(
	repo domain.EmailScheduleRepository,
	sender domain.EmailSender,
	renderer *templates.Renderer,
	portalMetrics *metrics.PortalMetrics,
	opts Options,
) *DefaultEmailQueueUsecase {
	uc := &DefaultEmailQueueUsecase{
		Repo:         repo,
		Sender:       sender,
		Renderer:     renderer,
		Metrics:      portalMetrics,
		locker:       opts.Locker,
		sendDelay:    opts.SendDelay,
		maxAttempts:  opts.MaxAttempts,
		sendingLease: opts.SendingLease,
		clock:        opts.Clock,
	}
	if uc.sendDelay < 0 {
		uc.sendDelay = 0
	}
	if uc.maxAttempts <= 0 {
		uc.maxAttempts = domain.MaxEmailAttempts
	}
	if uc.sendingLease <= 0 {
		uc.sendingLease = DefaultSendingLease
	}
	if uc.clock == nil {
		uc.clock = time.Now
	}
	return uc
}

func (uc *DefaultEmailQueueUsecase) now() time.Time {
	return uc.clock().UTC()
}
