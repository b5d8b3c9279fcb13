package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	BackendBase string

	RedisAddr string
	RedisPass string
	RedisDB   int

	SessionTTL      time.Duration
	RequestTimeout  time.Duration
	RateLimitRPS    int
	RateLimitBurst  int
	DefaultCurrency string
	PollInterval    time.Duration
	PollMaxAttempts int
}

func Load() Config {
	// .env is optional; env vars win either way.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),

		BackendBase: env("BACKEND_BASE_URL", "http://localhost:8000"),

		RedisAddr: env("REDIS_ADDR", "localhost:6379"),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),

		SessionTTL: time.Duration(atoi("SESSION_TTL_SECONDS", 86400)) * time.Second,
		// Must outlast the payment poll (interval x attempts).
		RequestTimeout:  time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 45)) * time.Second,
		RateLimitRPS:    atoi("RATE_LIMIT_RPS", 20),
		RateLimitBurst:  atoi("RATE_LIMIT_BURST", 40),
		DefaultCurrency: env("DEFAULT_CURRENCY", "TRY"),
		PollInterval:    time.Duration(atoi("PAYMENT_POLL_INTERVAL_SECONDS", 3)) * time.Second,
		PollMaxAttempts: atoi("PAYMENT_POLL_MAX_ATTEMPTS", 10),
	}
	if c.BackendBase == "" {
		log.Warn().Msg("BACKEND_BASE_URL is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
