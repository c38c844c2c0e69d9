package postgres

import (
	"log"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/config"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/migrate"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormConfig keeps timestamps in UTC so scheduled_for comparisons do not depend on the host zone.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  logger.Default.LogMode(logger.Warn),
	}
}

func MustInitDB(cfg *config.PortalConfig) *gorm.DB {
	dsn := cfg.PortalDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), GormConfig())
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v\n", err)
	}
	if cfg.PortalDB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.PortalDB.MaxOpenConns)
	}
	if cfg.PortalDB.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.PortalDB.MaxIdleConns)
	}
	if cfg.PortalDB.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.PortalDB.ConnMaxLifetime)
	}

	if cfg.PortalDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.PortalDB.MigrationsPath); err != nil {
			log.Fatalf("failed to apply migrations: %v\n", err)
		}
		return db
	}

	if err := AutoMigrate(db); err != nil {
		log.Fatalf("failed to automigrate: %v\n", err)
	}
	return db
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.OrderModel{},
		&models.OrderStatusHistoryModel{},
		&models.DocumentModel{},
		&models.NotificationModel{},
		&models.NotificationSettingsModel{},
		&models.EmailScheduleModel{},
		&models.CalculationModel{},
	)
}
