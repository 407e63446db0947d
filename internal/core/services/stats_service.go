package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/core/periods"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// DefaultStatsPolicies mirrors the long-standing behaviour of each ledger:
// income averages stop counting days at "now", expense averages do not.
func DefaultStatsPolicies() map[domain.EntryKind]domain.StatsPolicy {
	return map[domain.EntryKind]domain.StatsPolicy{
		domain.KindExpense: {ClampRollingEndToNow: false},
		domain.KindIncome:  {ClampRollingEndToNow: true},
	}
}

// statsService computes period statistics.
type statsService struct {
	BaseService
	repos    portsrepo.RepositoryProvider
	resolver periods.Resolver
	policies map[domain.EntryKind]domain.StatsPolicy
	flight   singleflight.Group
}

// StatsServiceOption is a functional option for configuring the stats service
type StatsServiceOption func(*statsService)

// WithStatsClock sets the clock periods are resolved against.
func WithStatsClock(clock Clock) StatsServiceOption {
	return func(s *statsService) {
		s.Clock = clock
	}
}

// WithWeekStartsOn sets the first day of a week period.
func WithWeekStartsOn(day time.Weekday) StatsServiceOption {
	return func(s *statsService) {
		s.resolver = periods.NewResolver(day)
	}
}

// WithStatsPolicy overrides the policy of one kind.
func WithStatsPolicy(kind domain.EntryKind, policy domain.StatsPolicy) StatsServiceOption {
	return func(s *statsService) {
		s.policies[kind] = policy
	}
}

// NewStatsService creates a new stats service with the provided options
func NewStatsService(repos portsrepo.RepositoryProvider, options ...StatsServiceOption) portssvc.StatsSvc {
	svc := &statsService{
		repos:    repos,
		resolver: periods.NewResolver(time.Sunday),
		policies: DefaultStatsPolicies(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.StatsSvc = (*statsService)(nil)

// PeriodStats aggregates the live entries of kind over period. Open bounds
// are resolved against the oldest and newest entry; amounts are rounded to
// two places only in the result.
func (s *statsService) PeriodStats(ctx context.Context, kind domain.EntryKind, period domain.Period) (*domain.PeriodStats, error) {
	repo, err := repoFor(s.repos, kind)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	window, err := s.resolver.Resolve(now, period)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("stats:%s:%s:%d", kind, period.Type, period.Offset)
	stats, _, err := shareFlight(ctx, &s.flight, key, func(ctx context.Context) (domain.PeriodStats, error) {
		return s.aggregate(ctx, repo, kind, period, window, now)
	})
	if err != nil {
		s.LogError(ctx, err, "Period aggregation failed",
			slog.String("kind", string(kind)),
			slog.String("period", string(period.Type)),
			slog.Int("offset", period.Offset))
		return nil, fmt.Errorf("failed to compute %s stats: %w", kind, err)
	}
	return &stats, nil
}

func (s *statsService) aggregate(ctx context.Context, repo portsrepo.EntryRepositoryFacade, kind domain.EntryKind, period domain.Period, window domain.Window, now time.Time) (domain.PeriodStats, error) {
	start, end := window.Start, window.End
	var err error
	if start == nil {
		if start, err = repo.FindOldestDateTime(ctx, domain.EntryFilter{}); err != nil {
			return domain.PeriodStats{}, fmt.Errorf("resolve open start: %w", err)
		}
	}
	if end == nil {
		if end, err = repo.FindNewestDateTime(ctx, domain.EntryFilter{}); err != nil {
			return domain.PeriodStats{}, fmt.Errorf("resolve open end: %w", err)
		}
	}

	days := 0
	if start != nil && end != nil {
		divisorEnd := *end
		if s.policies[kind].ClampRollingEndToNow && period.Type.Rolling() && period.Offset == 0 && divisorEnd.After(now) {
			divisorEnd = now
		}
		days = periods.InclusiveDays(*start, divisorEnd)
	}

	filter := domain.EntryFilter{From: start, To: end}
	agg, err := repo.AggregateEntries(ctx, filter)
	if err != nil {
		return domain.PeriodStats{}, fmt.Errorf("aggregate: %w", err)
	}
	groups, err := repo.AggregateEntriesByGroup(ctx, filter)
	if err != nil {
		return domain.PeriodStats{}, fmt.Errorf("aggregate by %s: %w", kind.GroupLabel(), err)
	}

	var top *string
	if len(groups) > 0 {
		key := groups[0].Key
		top = &key
	}

	avg := decimal.Zero
	if days > 0 {
		avg = agg.Total.Div(decimal.NewFromInt(int64(days))).Round(2)
	}

	return domain.PeriodStats{
		Kind:           kind,
		Period:         period,
		Total:          agg.Total.Round(2),
		Count:          agg.Count,
		AvgPerDay:      avg,
		Max:            agg.Max,
		Min:            agg.Min,
		Groups:         groups,
		TopGroup:       top,
		EffectiveStart: start,
		EffectiveEnd:   end,
		Days:           days,
	}, nil
}
