package testsupport

import (
	"testing"
	"time"

	"github.com/wavehouse/studio-booking/internal/config"
)

// NewConfig returns a configuration with every optional integration
// disabled.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	return &config.Config{
		Server: config.ServerConfig{
			Host:        "127.0.0.1",
			Port:        5000,
			CORSOrigins: []string{"*"},
		},
		Log: config.LogConfig{Level: "debug"},
		SMTP: config.SMTPConfig{
			Port:    587,
			From:    "letswork@wavehousela.com",
			Timeout: 5 * time.Second,
		},
		Admin: config.AdminConfig{
			Email:     "letswork@wavehousela.com",
			Username:  "admin",
			JWTSecret: "test-secret",
		},
		Redis:                config.RedisConfig{CacheTTL: 30 * time.Second},
		Events:               config.EventsConfig{KafkaTopic: "studio-events"},
		Studio:               config.StudioConfig{Name: "Wave House", Timezone: "America/Los_Angeles"},
		OperationTimeout:     5 * time.Second,
		VerificationProvider: "mock",
	}
}
