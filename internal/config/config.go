package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type PortalConfig struct {
	Env           string `yaml:"env" env:"PORTAL_ENV" env-default:"local"`
	PublicBaseURL string `yaml:"public_base_url" env:"PUBLIC_BASE_URL" env-default:"https://rahima-consulting.ru"`
	HTTPServer    `yaml:"http_server"`
	PortalDB      `yaml:"portal_db"`
	LogConfig     `yaml:"log_config"`
	SMTP          `yaml:"smtp"`
	Telegram      `yaml:"telegram"`
	AmoCRM        `yaml:"amocrm"`
	KafkaService  `yaml:"kafka-service"`
	Redis         `yaml:"redis"`
	Cron          `yaml:"cron"`
	Orders        `yaml:"orders"`
	Notifications `yaml:"notifications"`
}

type HTTPServer struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"15s"`
}

type PortalDB struct {
	Dsn             string        `yaml:"dsn" env:"DATABASE_DSN"`
	MigrationsPath  string        `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"20"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"30m"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"text"`
	LogOutput string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stdout"`
}

type SMTP struct {
	Host     string `yaml:"host" env:"SMTP_HOST" env-default:"smtp.beget.com"`
	Port     int    `yaml:"port" env:"SMTP_PORT" env-default:"2525"`
	Secure   bool   `yaml:"secure" env:"SMTP_SECURE"`
	User     string `yaml:"user" env:"SMTP_USER"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from" env:"SMTP_FROM" env-default:"noreply@rahima-consulting.ru"`
	FromName string `yaml:"from_name" env-default:"Rahima Consulting"`
}

type Telegram struct {
	BotToken string        `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
	ChatID   string        `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
	APIURL   string        `yaml:"api_url" env-default:"https://api.telegram.org"`
	Timeout  time.Duration `yaml:"timeout" env-default:"10s"`
}

type AmoCRM struct {
	Subdomain   string        `yaml:"subdomain" env:"AMOCRM_SUBDOMAIN" env-default:"rahimaconsulting"`
	AccessToken string        `yaml:"access_token" env:"AMOCRM_ACCESS_TOKEN"`
	BaseURL     string        `yaml:"base_url" env:"AMOCRM_BASE_URL"`
	Timeout     time.Duration `yaml:"timeout" env-default:"15s"`
}

type KafkaService struct {
	Brokers    []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	OrderTopic string   `yaml:"order_topic" env-default:"order-events"`
}

type Redis struct {
	Addr     string        `yaml:"addr" env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"`
	LockTTL  time.Duration `yaml:"lock_ttl" env-default:"5m"`
}

type Cron struct {
	Secret        string        `yaml:"secret" env:"CRON_SECRET"`
	DrainSchedule string        `yaml:"drain_schedule" env-default:"0 */5 * * * *"`
	BatchSize     int           `yaml:"batch_size" env-default:"50"`
	SendDelay     time.Duration `yaml:"send_delay" env-default:"100ms"`
	DrainTimeout  time.Duration `yaml:"drain_timeout" env-default:"5m"`
	MaxAttempts   int           `yaml:"max_attempts" env:"EMAIL_MAX_ATTEMPTS" env-default:"3"`
	SendingLease  time.Duration `yaml:"sending_lease" env-default:"10m"`
}

type Orders struct {
	StrictTransitions bool `yaml:"strict_transitions" env:"ORDERS_STRICT_TRANSITIONS"`
}

type Notifications struct {
	EnforceSettings bool `yaml:"enforce_settings" env:"NOTIFICATIONS_ENFORCE_SETTINGS"`
}

func (c *PortalConfig) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.HTTPServer.Host, c.HTTPServer.Port)
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*PortalConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	var cfg PortalConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *PortalConfig {
	// Processing env config variable and file
	configPath := os.Getenv("PORTAL_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("PORTAL_CONFIG_PATH was not found\n")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("%v\n", err)
	}
	if cfg.PortalDB.Dsn == "" {
		log.Fatalf("portal_db.dsn is empty\n")
	}

	return cfg
}
