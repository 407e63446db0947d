package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/periods"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Data backends selectable with DATA_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	DataBackend      string
	DatabaseURL      string
	EnableDBCheck    bool
	PGMigrationsPath string
	SQLiteDBPath     string

	// Location is the time zone calendar boundaries are computed in.
	Location        *time.Location
	WeekStartsOn    time.Weekday
	DefaultCurrency string
	// Clamp the per-day divisor of the current week/month/year to "now", per kind.
	ExpenseClampRollingEnd bool
	IncomeClampRollingEnd  bool

	RateLimit          string
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	// Values from .env are now in the environment, where real variables win.
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DATA_BACKEND", BackendSQLite)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("PG_MIGRATIONS_PATH", "file://migrations/postgres")
	v.SetDefault("SQLITE_DB_PATH", "data/ledger.db")
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("WEEK_STARTS_ON", "sunday")
	v.SetDefault("DEFAULT_CURRENCY", "INR")
	v.SetDefault("EXPENSE_CLAMP_ROLLING_END", false)
	v.SetDefault("INCOME_CLAMP_ROLLING_END", true)
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:                   v.GetString("PORT"),
		IsProduction:           v.GetBool("IS_PRODUCTION"),
		DatabaseURL:            v.GetString("PGSQL_URL"),
		EnableDBCheck:          v.GetBool("ENABLE_DB_CHECK"),
		PGMigrationsPath:       v.GetString("PG_MIGRATIONS_PATH"),
		SQLiteDBPath:           v.GetString("SQLITE_DB_PATH"),
		ExpenseClampRollingEnd: v.GetBool("EXPENSE_CLAMP_ROLLING_END"),
		IncomeClampRollingEnd:  v.GetBool("INCOME_CLAMP_ROLLING_END"),
		RateLimit:              v.GetString("RATE_LIMIT"),
		PosthogAPIKey:          v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:        v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.DataBackend = strings.ToLower(strings.TrimSpace(v.GetString("DATA_BACKEND")))
	switch cfg.DataBackend {
	case BackendPostgres, BackendSQLite, BackendMemory:
	default:
		log.Printf("Warning: Invalid value for DATA_BACKEND ('%s'). Defaulting to %s.\n", cfg.DataBackend, BackendSQLite)
		cfg.DataBackend = BackendSQLite
	}
	if cfg.DataBackend == BackendPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	tz := v.GetString("TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: Invalid value for TIMEZONE ('%s'). Defaulting to Local.\n", tz)
		loc = time.Local
	}
	cfg.Location = loc

	weekStart := v.GetString("WEEK_STARTS_ON")
	day, ok := periods.ParseWeekday(weekStart)
	if !ok {
		log.Printf("Warning: Invalid value for WEEK_STARTS_ON ('%s'). Defaulting to %s.\n", weekStart, time.Sunday)
	}
	cfg.WeekStartsOn = day

	cfg.DefaultCurrency = strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_CURRENCY")))
	if len(cfg.DefaultCurrency) != 3 {
		log.Printf("Warning: Invalid value for DEFAULT_CURRENCY ('%s'). Defaulting to INR.\n", cfg.DefaultCurrency)
		cfg.DefaultCurrency = "INR"
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg
}
