package setup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/config"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	publisher "github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/kafka"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/lock"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/metrics"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/notifier"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/repository"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/templates"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config        *config.PortalConfig
	DB            *gorm.DB
	Redis         *redis.Client
	Metrics       *metrics.PortalMetrics
	Renderer      *templates.Renderer
	Repositories  *Repositories
	Collaborators *Collaborators

	closers []func() error
}

type Repositories struct {
	Tx                domain.Transactor
	OrderRepo         domain.OrderRepository
	HistoryRepo       domain.OrderHistoryRepository
	UserRepo          domain.UserRepository
	NotificationRepo  domain.NotificationRepository
	SettingsRepo      domain.NotificationSettingsRepository
	EmailScheduleRepo domain.EmailScheduleRepository
	CalculationRepo   domain.CalculationRepository
}

type Collaborators struct {
	Publisher domain.OrderEventPublisher
	Mailer    domain.EmailSender
	Managers  domain.ManagerNotifier
	CRM       domain.CRMClient
	// Locker is nil when Redis is not configured.
	Locker domain.DrainLocker
}

func InitializeDependencies(cfg *config.PortalConfig) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)

	renderer, err := templates.NewRenderer(cfg.PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	deps := &Dependencies{
		Config:   cfg,
		DB:       db,
		Metrics:  metrics.NewPortalMetrics(nil),
		Renderer: renderer,
		Repositories: &Repositories{
			Tx:                repository.NewTxManager(db),
			OrderRepo:         repository.NewDefaultOrderRepository(db),
			HistoryRepo:       repository.NewDefaultOrderHistoryRepository(db),
			UserRepo:          repository.NewDefaultUserRepository(db),
			NotificationRepo:  repository.NewDefaultNotificationRepository(db),
			SettingsRepo:      repository.NewDefaultNotificationSettingsRepository(db),
			EmailScheduleRepo: repository.NewDefaultEmailScheduleRepository(db),
			CalculationRepo:   repository.NewDefaultCalculationRepository(db),
		},
	}

	collaborators, err := deps.initCollaborators(cfg)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.Collaborators = collaborators

	if sqlDB, err := db.DB(); err == nil {
		deps.closers = append(deps.closers, sqlDB.Close)
	}
	return deps, nil
}

func (d *Dependencies) initCollaborators(cfg *config.PortalConfig) (*Collaborators, error) {
	c := &Collaborators{
		Mailer:   notifier.NewSMTPSender(cfg.SMTP),
		Managers: notifier.NewTelegramNotifier(cfg.Telegram),
		CRM:      notifier.NewAmoCRMClient(cfg.AmoCRM),
	}

	if len(cfg.KafkaService.Brokers) > 0 {
		kafkaPublisher := publisher.NewDefaultKafkaPublisher(cfg.KafkaService.Brokers, cfg.KafkaService.OrderTopic)
		d.closers = append(d.closers, kafkaPublisher.Close)
		c.Publisher = kafkaPublisher
	} else {
		slog.Info("kafka brokers are not configured, order events are dropped")
		c.Publisher = publisher.NoopPublisher{}
	}

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		d.Redis = client
		d.closers = append(d.closers, client.Close)
		c.Locker = lock.NewRedsyncDrainLocker(client, cfg.Redis.LockTTL)
	} else {
		slog.Warn("redis is not configured, email drains are not serialized across instances")
	}
	return c, nil
}

// Close releases connections in reverse order of creation.
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			slog.Warn("failed to close dependency", "error", err)
		}
	}
	d.closers = nil
}
