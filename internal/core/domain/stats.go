package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatsPolicy tunes the period aggregator per entry kind.
type StatsPolicy struct {
	// ClampRollingEndToNow uses "now" instead of the period end when counting
	// days for the current week/month/year.
	ClampRollingEndToNow bool
}

// PeriodStats is the aggregate view of one kind over one period.
type PeriodStats struct {
	Kind      EntryKind       `json:"kind"`
	Period    Period          `json:"period"`
	Total     decimal.Decimal `json:"total"` // rounded to 2 places
	Count     int             `json:"count"`
	AvgPerDay decimal.Decimal `json:"avgPerDay"` // rounded to 2 places
	Max       decimal.Decimal `json:"max"`
	Min       decimal.Decimal `json:"min"`
	Groups    []GroupStat     `json:"groups"`
	TopGroup  *string         `json:"topGroup"`

	EffectiveStart *time.Time `json:"effectiveStart,omitempty"`
	EffectiveEnd   *time.Time `json:"effectiveEnd,omitempty"`
	Days           int        `json:"days"`
}

// FinancialOverview puts expense and income stats of the same period side by side.
type FinancialOverview struct {
	Period      Period          `json:"period"`
	Expenses    PeriodStats     `json:"expenses"`
	Incomes     PeriodStats     `json:"incomes"`
	NetIncome   decimal.Decimal `json:"netIncome"`
	SavingsRate decimal.Decimal `json:"savingsRate"` // percent of income kept, 2 places
}
