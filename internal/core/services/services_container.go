package services

import (
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	clock := func() time.Time { return time.Now().In(loc) }

	container := &portssvc.ServiceContainer{}

	container.Entries = NewEntryService(repos,
		WithEntryClock(clock),
		WithDefaultCurrency(cfg.DefaultCurrency),
	)
	container.Months = NewMonthService(repos, WithMonthClock(clock))
	container.Stats = NewStatsService(repos,
		WithStatsClock(clock),
		WithWeekStartsOn(cfg.WeekStartsOn),
		WithStatsPolicy(domain.KindExpense, domain.StatsPolicy{ClampRollingEndToNow: cfg.ExpenseClampRollingEnd}),
		WithStatsPolicy(domain.KindIncome, domain.StatsPolicy{ClampRollingEndToNow: cfg.IncomeClampRollingEnd}),
	)
	// Overview reuses the stats service so both share its request collapsing.
	container.Overview = NewOverviewService(container.Stats)
	container.Backup = NewBackupService(repos,
		WithBackupClock(clock),
		WithBackupDefaultCurrency(cfg.DefaultCurrency),
	)
	container.Categories = NewCategoryService(repos, WithCategoryClock(clock))

	return container
}
