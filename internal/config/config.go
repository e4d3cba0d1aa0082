package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppURL  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// Calendar: "today" for streaks and weekly windows is taken in this zone
	Timezone string
	Location *time.Location

	// HTTP
	RequestTimeout  time.Duration
	CheckRateLimit  int
	CheckRateWindow time.Duration

	// Email
	EmailFrom         string
	ResendAPIKey      string
	AchievementEmails bool

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Habitloop"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:  envString("APP_URL", "http://localhost:8090"),
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/habitloop.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Security
		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		Timezone: envString("TIMEZONE", "UTC"),

		// HTTP
		RequestTimeout:  envDuration("REQUEST_TIMEOUT", 15*time.Second),
		CheckRateLimit:  envInt("CHECK_RATE_LIMIT", 30),
		CheckRateWindow: envDuration("CHECK_RATE_WINDOW", time.Minute),

		// Email (RESEND_API_KEY optional in development)
		EmailFrom:         envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey:      envString("RESEND_API_KEY", ""),
		AchievementEmails: envBool("ACHIEVEMENT_EMAILS", false),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	cfg.Location = loadLocation(cfg.Timezone)

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures all required services are configured for production deployments.
func validateProduction(cfg *Config) {
	if cfg.AchievementEmails && cfg.ResendAPIKey == "" {
		slog.Error("production deployment with ACHIEVEMENT_EMAILS requires RESEND_API_KEY",
			"hint", "set ACHIEVEMENT_EMAILS=false or APP_ENV=development for email log mode")
		os.Exit(1)
	}
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("config invalid timezone, using UTC", "key", "TIMEZONE", "value", name)
		return time.UTC
	}
	return loc
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
