package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Postgres Postgres `validate:"required"`

	Kafka Kafka

	Paystack Paystack
	WhatsApp WhatsApp
	Momo     Momo
	QStash   QStash

	Phone  Phone
	Dedupe Dedupe
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

// Kafka is optional: with no brokers configured the notification handoff
// runs in-line instead of through the order-events topic.
type Kafka struct {
	GroupID string
	Brokers []string `validate:"omitempty,min=1,dive,hostname_port"`
	Topic   string

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

type Paystack struct {
	SecretKey string
}

type WhatsApp struct {
	AccessToken   string
	PhoneNumberID string
	VerifyToken   string
	AppSecret     string

	// SkipSignatureCheck disables inbound webhook verification. Development
	// only; Validate rejects it in production.
	SkipSignatureCheck bool

	Timeout time.Duration `validate:"gt=0"`
}

type Momo struct {
	BaseURL         string `validate:"omitempty,url"`
	SubscriptionKey string
	APIUser         string
	APIKey          string
	TargetEnv       string
	CallbackURL     string `validate:"omitempty,url"`

	Timeout time.Duration `validate:"gt=0"`
}

// QStash is the outbound delivery queue. With no token configured, enqueue
// degrades to a logged no-op and sends go out directly.
type QStash struct {
	Token             string
	URL               string `validate:"omitempty,url"`
	CurrentSigningKey string
	NextSigningKey    string
	DeliveryURL       string `validate:"omitempty,url"`

	Timeout time.Duration `validate:"gt=0"`
}

func (q QStash) Enabled() bool {
	return q.Token != ""
}

type Phone struct {
	// DefaultCountryCode is prepended to national-format numbers, digits
	// only (e.g. "256").
	DefaultCountryCode string `validate:"required,numeric"`
}

type Dedupe struct {
	TTL      time.Duration `validate:"gt=0"`
	DailyTTL time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "vendly"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "order-notifier"),
			Topic:   env("KAFKA_TOPIC", "order-events"),
			Brokers: splitNonEmpty(env("KAFKA_BROKERS", "")),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Paystack: Paystack{
			SecretKey: env("PAYSTACK_SECRET_KEY", ""),
		},

		WhatsApp: WhatsApp{
			AccessToken:        env("WHATSAPP_ACCESS_TOKEN", ""),
			PhoneNumberID:      env("WHATSAPP_PHONE_NUMBER_ID", ""),
			VerifyToken:        env("WHATSAPP_WEBHOOK_VERIFY_TOKEN", ""),
			AppSecret:          env("WHATSAPP_APP_SECRET", ""),
			SkipSignatureCheck: envBool("WHATSAPP_SKIP_SIGNATURE_CHECK", false),
			Timeout:            envDuration("WHATSAPP_TIMEOUT", 10*time.Second),
		},

		Momo: Momo{
			BaseURL:         env("MOMO_BASE_URL", "https://sandbox.momodeveloper.mtn.com"),
			SubscriptionKey: env("MOMO_SUBSCRIPTION_KEY", ""),
			APIUser:         env("MOMO_API_USER", ""),
			APIKey:          env("MOMO_API_KEY", ""),
			TargetEnv:       env("MOMO_TARGET_ENV", "sandbox"),
			CallbackURL:     env("MOMO_CALLBACK_URL", ""),
			Timeout:         envDuration("MOMO_TIMEOUT", 10*time.Second),
		},

		QStash: QStash{
			Token:             env("QSTASH_TOKEN", ""),
			URL:               env("QSTASH_URL", "https://qstash.upstash.io"),
			CurrentSigningKey: env("QSTASH_CURRENT_SIGNING_KEY", ""),
			NextSigningKey:    env("QSTASH_NEXT_SIGNING_KEY", ""),
			DeliveryURL:       env("QSTASH_DELIVERY_URL", ""),
			Timeout:           envDuration("QSTASH_TIMEOUT", 10*time.Second),
		},

		Phone: Phone{
			DefaultCountryCode: env("DEFAULT_COUNTRY_CODE", "256"),
		},

		Dedupe: Dedupe{
			TTL:      envDuration("DEDUPE_TTL", 10*time.Minute),
			DailyTTL: envDuration("DEDUPE_DAILY_TTL", 24*time.Hour),
		},
	}
}

var errSkipSignatureInProduction = errors.New("WHATSAPP_SKIP_SIGNATURE_CHECK must not be set in production")

func (c Config) Validate() error {
	if c.Env == "production" && c.WhatsApp.SkipSignatureCheck {
		return errSkipSignatureInProduction
	}
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
