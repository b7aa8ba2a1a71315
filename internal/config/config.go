package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	DataDir            string
	Env                string
	LoginRatePerMinute int
	CookieSecure       bool
	SessionIdle        time.Duration
}

// Load reads .env when present and then the process environment.
func Load() Config {
	// Missing .env is normal outside development.
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults.
func FromEnv(getenv func(string) string) Config {
	get := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}

	rate, err := strconv.Atoi(get("LOGIN_RATE_PER_MINUTE", "20"))
	if err != nil || rate <= 0 {
		rate = 20
	}

	idle, err := time.ParseDuration(get("SESSION_IDLE", "24h"))
	if err != nil || idle <= 0 {
		idle = 24 * time.Hour
	}

	return Config{
		Port:               get("PORT", "8080"),
		DataDir:            get("DATA_DIR", "./data"),
		Env:                get("APP_ENV", "development"),
		LoginRatePerMinute: rate,
		CookieSecure:       get("COOKIE_SECURE", "false") == "true",
		SessionIdle:        idle,
	}
}
