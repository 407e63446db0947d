package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendSQLite, cfg.DataBackend)
	assert.Equal(t, time.Sunday, cfg.WeekStartsOn)
	assert.Equal(t, "INR", cfg.DefaultCurrency)
	assert.False(t, cfg.ExpenseClampRollingEnd)
	assert.True(t, cfg.IncomeClampRollingEnd)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "300-M", cfg.RateLimit)
}

func TestInvalidValuesFallBack(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("DATA_BACKEND", "mongo")
	v.Set("TIMEZONE", "Mars/Olympus")
	v.Set("WEEK_STARTS_ON", "funday")
	v.Set("DEFAULT_CURRENCY", "rupee")

	cfg := fromViper(v)

	assert.Equal(t, BackendSQLite, cfg.DataBackend)
	assert.Equal(t, time.Local, cfg.Location)
	assert.Equal(t, time.Sunday, cfg.WeekStartsOn)
	assert.Equal(t, "INR", cfg.DefaultCurrency)
}

func TestOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("DATA_BACKEND", "Postgres")
	v.Set("TIMEZONE", "UTC")
	v.Set("WEEK_STARTS_ON", "Monday")
	v.Set("DEFAULT_CURRENCY", "usd")
	v.Set("EXPENSE_CLAMP_ROLLING_END", true)
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg := fromViper(v)

	assert.Equal(t, BackendPostgres, cfg.DataBackend)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, time.Monday, cfg.WeekStartsOn)
	assert.Equal(t, "USD", cfg.DefaultCurrency)
	assert.True(t, cfg.ExpenseClampRollingEnd)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}
