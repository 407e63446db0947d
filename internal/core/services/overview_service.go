package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var hundred = decimal.NewFromInt(100)

type overviewService struct {
	BaseService
	stats portssvc.StatsSvc
}

// NewOverviewService creates the service combining expense and income statistics.
func NewOverviewService(stats portssvc.StatsSvc) portssvc.OverviewSvc {
	return &overviewService{stats: stats}
}

var _ portssvc.OverviewSvc = (*overviewService)(nil)

// FinancialOverview computes both ledgers' stats for period concurrently.
func (s *overviewService) FinancialOverview(ctx context.Context, period domain.Period) (*domain.FinancialOverview, error) {
	var expenses, incomes *domain.PeriodStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.stats.PeriodStats(gctx, domain.KindExpense, period)
		return err
	})
	g.Go(func() error {
		var err error
		incomes, err = s.stats.PeriodStats(gctx, domain.KindIncome, period)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute financial overview: %w", err)
	}

	net := incomes.Total.Sub(expenses.Total)
	rate := decimal.Zero
	if !incomes.Total.IsZero() {
		rate = net.Div(incomes.Total).Mul(hundred).Round(2)
	}

	s.LogDebug(ctx, "Financial overview computed",
		slog.String("period", string(period.Type)),
		slog.Int("offset", period.Offset),
		slog.String("net_income", net.String()))

	return &domain.FinancialOverview{
		Period:      period,
		Expenses:    *expenses,
		Incomes:     *incomes,
		NetIncome:   net,
		SavingsRate: rate,
	}, nil
}
