package services_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fixedNow is a Friday afternoon in the middle of a 31-day month.
var fixedNow = time.Date(2024, time.March, 15, 14, 45, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func monthsAgo(n int, day int) time.Time {
	return time.Date(2024, time.March-time.Month(n), day, 12, 0, 0, 0, time.UTC)
}

func seed(repo portsrepo.EntryWriter, amount string, when time.Time, group string) domain.Entry {
	e, err := repo.SaveEntry(context.Background(), domain.Entry{
		Amount:   decimal.RequireFromString(amount),
		DateTime: when,
		Group:    group,
		Currency: "INR",
	})
	if err != nil {
		panic(err)
	}
	return *e
}

func newMemoryRepos() portsrepo.RepositoryProvider {
	return memory.NewRepositoryProvider()
}

// countingRepo counts store round-trips issued by the month walker.
type countingRepo struct {
	portsrepo.EntryRepositoryFacade
	calls atomic.Int64
}

func (c *countingRepo) CountEntries(ctx context.Context, f domain.EntryFilter) (int, error) {
	c.calls.Add(1)
	return c.EntryRepositoryFacade.CountEntries(ctx, f)
}

func (c *countingRepo) FindNewestDateTime(ctx context.Context, f domain.EntryFilter) (*time.Time, error) {
	c.calls.Add(1)
	return c.EntryRepositoryFacade.FindNewestDateTime(ctx, f)
}

// gatedRepo parks the first ListEntries call until release is closed and
// reports the state of that call's context once it resumes.
type gatedRepo struct {
	portsrepo.EntryRepositoryFacade
	entered   chan struct{}
	release   chan struct{}
	firstCall chan error
	once      sync.Once
}

func newGatedRepo(inner portsrepo.EntryRepositoryFacade) *gatedRepo {
	return &gatedRepo{
		EntryRepositoryFacade: inner,
		entered:               make(chan struct{}),
		release:               make(chan struct{}),
		firstCall:             make(chan error, 1),
	}
}

func (g *gatedRepo) ListEntries(ctx context.Context, f domain.EntryFilter) ([]domain.Entry, error) {
	first := false
	g.once.Do(func() {
		first = true
		close(g.entered)
	})
	<-g.release
	if first {
		g.firstCall <- ctx.Err()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g.EntryRepositoryFacade.ListEntries(ctx, f)
}

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

var _ portsrepo.EntryRepositoryFacade = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, id int64) (*domain.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) CountEntries(ctx context.Context, filter domain.EntryFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) ExistsEntry(ctx context.Context, filter domain.EntryFilter) (bool, error) {
	args := m.Called(ctx, filter)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntryRepository) FindNewestDateTime(ctx context.Context, filter domain.EntryFilter) (*time.Time, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockEntryRepository) FindOldestDateTime(ctx context.Context, filter domain.EntryFilter) (*time.Time, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockEntryRepository) AggregateEntries(ctx context.Context, filter domain.EntryFilter) (domain.EntryAggregate, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.EntryAggregate), args.Error(1)
}

func (m *MockEntryRepository) AggregateEntriesByGroup(ctx context.Context, filter domain.EntryFilter) ([]domain.GroupStat, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupStat), args.Error(1)
}

func (m *MockEntryRepository) CountEntriesByGroup(ctx context.Context) ([]domain.GroupUsage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupUsage), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) TrashEntry(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockEntryRepository) TrashEntriesByGroup(ctx context.Context, group string, at time.Time) (int64, error) {
	args := m.Called(ctx, group, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) ListAllEntries(ctx context.Context) ([]domain.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

// --- Mock SnapshotStore ---
type MockSnapshotStore struct {
	mock.Mock
}

var _ portsrepo.SnapshotStore = (*MockSnapshotStore)(nil)

func (m *MockSnapshotStore) ReplaceSnapshot(ctx context.Context, snap domain.Snapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}
