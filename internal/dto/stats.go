package dto

import (
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PeriodQuery binds ?period=&offset= query parameters.
type PeriodQuery struct {
	Period string `form:"period,default=month" binding:"oneof=today week month year all-time"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

// ToPeriod converts the query to a domain.Period.
func (q PeriodQuery) ToPeriod() domain.Period {
	return domain.Period{Type: domain.PeriodType(q.Period), Offset: q.Offset}
}

// GroupStatResponse is one row of the breakdown.
type GroupStatResponse struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total" swaggertype:"string"`
	Count int             `json:"count"`
}

// PeriodStatsResponse represents the statistics of one kind over one period.
type PeriodStatsResponse struct {
	Kind      string              `json:"kind"`
	Period    string              `json:"period"`
	Offset    int                 `json:"offset"`
	Total     decimal.Decimal     `json:"total" swaggertype:"string"`
	Count     int                 `json:"count"`
	AvgPerDay decimal.Decimal     `json:"avgPerDay" swaggertype:"string"`
	Max       decimal.Decimal     `json:"max" swaggertype:"string"`
	Min       decimal.Decimal     `json:"min" swaggertype:"string"`
	Groups    []GroupStatResponse `json:"groups"`
	TopGroup  *string             `json:"topGroup"`
	From      *time.Time          `json:"from,omitempty"`
	To        *time.Time          `json:"to,omitempty"`
	Days      int                 `json:"days"`
}

// ToPeriodStatsResponse converts domain.PeriodStats to PeriodStatsResponse DTO
func ToPeriodStatsResponse(s domain.PeriodStats) PeriodStatsResponse {
	groups := make([]GroupStatResponse, len(s.Groups))
	for i, g := range s.Groups {
		groups[i] = GroupStatResponse{Key: g.Key, Total: g.Total, Count: g.Count}
	}
	return PeriodStatsResponse{
		Kind:      string(s.Kind),
		Period:    string(s.Period.Type),
		Offset:    s.Period.Offset,
		Total:     s.Total,
		Count:     s.Count,
		AvgPerDay: s.AvgPerDay,
		Max:       s.Max,
		Min:       s.Min,
		Groups:    groups,
		TopGroup:  s.TopGroup,
		From:      s.EffectiveStart,
		To:        s.EffectiveEnd,
		Days:      s.Days,
	}
}

// FinancialOverviewResponse places expenses and incomes of one period side by side.
type FinancialOverviewResponse struct {
	Period      string              `json:"period"`
	Offset      int                 `json:"offset"`
	Expenses    PeriodStatsResponse `json:"expenses"`
	Incomes     PeriodStatsResponse `json:"incomes"`
	NetIncome   decimal.Decimal     `json:"netIncome" swaggertype:"string"`
	SavingsRate decimal.Decimal     `json:"savingsRate" swaggertype:"string"`
}

// ToFinancialOverviewResponse converts domain.FinancialOverview to its DTO
func ToFinancialOverviewResponse(o domain.FinancialOverview) FinancialOverviewResponse {
	return FinancialOverviewResponse{
		Period:      string(o.Period.Type),
		Offset:      o.Period.Offset,
		Expenses:    ToPeriodStatsResponse(o.Expenses),
		Incomes:     ToPeriodStatsResponse(o.Incomes),
		NetIncome:   o.NetIncome,
		SavingsRate: o.SavingsRate,
	}
}
