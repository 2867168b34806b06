package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/wavehouse/studio-booking/internal/timezone"
)

const defaultSQLitePath = "wave_house.db"

type Config struct {
	Server               ServerConfig
	Database             DatabaseConfig
	Log                  LogConfig
	SMTP                 SMTPConfig
	Admin                AdminConfig
	Redis                RedisConfig
	Events               EventsConfig
	Sentry               SentryConfig
	Studio               StudioConfig
	OperationTimeout     time.Duration
	VerificationProvider string
}

type ServerConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

type DatabaseConfig struct {
	URL string
}

type LogConfig struct {
	Level string
	JSON  bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

type AdminConfig struct {
	Email        string
	Username     string
	PasswordHash string
	JWTSecret    string
}

type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

type EventsConfig struct {
	NATSURL      string
	KafkaBrokers []string
	KafkaTopic   string
}

type SentryConfig struct {
	DSN         string
	Environment string
}

type StudioConfig struct {
	Name     string
	Timezone string
}

// Load reads configuration from the environment, after merging a local .env
// file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("SERVER_HOST"),
			Port:        v.GetInt("SERVER_PORT"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			URL: v.GetString("DATABASE_URL"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
			JSON:  v.GetBool("LOG_JSON"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
			Timeout:  v.GetDuration("SMTP_TIMEOUT"),
		},
		Admin: AdminConfig{
			Email:        v.GetString("ADMIN_EMAIL"),
			Username:     v.GetString("ADMIN_USERNAME"),
			PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
			JWTSecret:    v.GetString("JWT_SECRET"),
		},
		Redis: RedisConfig{
			URL:      v.GetString("REDIS_URL"),
			CacheTTL: v.GetDuration("STATUS_CACHE_TTL"),
		},
		Events: EventsConfig{
			NATSURL:      v.GetString("NATS_URL"),
			KafkaBrokers: splitList(v.GetString("KAFKA_BROKERS")),
			KafkaTopic:   v.GetString("KAFKA_TOPIC"),
		},
		Sentry: SentryConfig{
			DSN:         v.GetString("SENTRY_DSN"),
			Environment: v.GetString("APP_ENV"),
		},
		Studio: StudioConfig{
			Name:     v.GetString("STUDIO_NAME"),
			Timezone: v.GetString("STUDIO_TIMEZONE"),
		},
		OperationTimeout:     v.GetDuration("OPERATION_TIMEOUT"),
		VerificationProvider: strings.ToLower(strings.TrimSpace(v.GetString("VERIFICATION_PROVIDER"))),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 5000)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM", "letswork@wavehousela.com")
	v.SetDefault("SMTP_TIMEOUT", "15s")
	v.SetDefault("ADMIN_EMAIL", "letswork@wavehousela.com")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("JWT_SECRET", "changeme")
	v.SetDefault("STATUS_CACHE_TTL", "30s")
	v.SetDefault("KAFKA_TOPIC", "studio-events")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("STUDIO_NAME", "Wave House")
	v.SetDefault("STUDIO_TIMEZONE", "America/Los_Angeles")
	v.SetDefault("OPERATION_TIMEOUT", "10s")
	v.SetDefault("VERIFICATION_PROVIDER", "mock")
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.Server.Port)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("OPERATION_TIMEOUT must be positive, got %s", c.OperationTimeout)
	}
	if c.SMTP.Timeout <= 0 {
		return fmt.Errorf("SMTP_TIMEOUT must be positive, got %s", c.SMTP.Timeout)
	}
	if c.VerificationProvider == "" {
		return fmt.Errorf("VERIFICATION_PROVIDER cannot be empty")
	}
	if !timezone.IsValid(c.Studio.Timezone) {
		return fmt.Errorf("invalid STUDIO_TIMEZONE: %q", c.Studio.Timezone)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DatabaseDriver reports which gorm dialector DATABASE_URL selects. Anything
// that is not a postgres URL is treated as a SQLite path.
func (c *Config) DatabaseDriver() string {
	url := strings.TrimSpace(c.Database.URL)
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return "postgres"
	}
	return "sqlite"
}

func (c *Config) SQLitePath() string {
	path := strings.TrimPrefix(strings.TrimSpace(c.Database.URL), "sqlite://")
	if path == "" {
		return defaultSQLitePath
	}
	return path
}

func (c *Config) SMTPEnabled() bool {
	return strings.TrimSpace(c.SMTP.Host) != ""
}
