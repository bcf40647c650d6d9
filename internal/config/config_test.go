package config_test

import (
	"testing"
	"time"

	"github.com/vendyafrica/vendly-sub001/internal/config"

	"github.com/stretchr/testify/assert"
)

func validConfig() config.Config {
	return config.Config{
		Env:  "development",
		Http: config.Http{Host: "localhost", Port: "8080"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
		Postgres: config.Postgres{
			Host: "localhost", Port: 5432, DBName: "vendly",
			User: "vendly", Password: "secret", SSLMode: "disable",
			MaxOpenConns: 10,
		},
		WhatsApp: config.WhatsApp{Timeout: 10 * time.Second},
		Momo:     config.Momo{Timeout: 10 * time.Second},
		QStash:   config.QStash{Timeout: 10 * time.Second},
		Phone:    config.Phone{DefaultCountryCode: "256"},
		Dedupe:   config.Dedupe{TTL: 10 * time.Minute, DailyTTL: 24 * time.Hour},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("skip signature check is rejected in production", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.WhatsApp.SkipSignatureCheck = true
		assert.Error(t, cfg.Validate())
	})

	t.Run("skip signature check is allowed in development", func(t *testing.T) {
		cfg := validConfig()
		cfg.WhatsApp.SkipSignatureCheck = true
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown environment is rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "qa"
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing postgres credentials are rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Postgres.Password = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad broker address is rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Kafka.Brokers = []string{"not a hostport"}
		assert.Error(t, cfg.Validate())
	})
}
