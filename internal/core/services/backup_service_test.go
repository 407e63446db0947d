package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/core/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExportSnapshot_LiveRowsOldestFirst(t *testing.T) {
	repos := newMemoryRepos()
	seed(repos.ExpenseRepo, "3", monthsAgo(0, 9), "Food")
	seed(repos.ExpenseRepo, "1", monthsAgo(2, 1), "Food")
	gone := seed(repos.ExpenseRepo, "2", monthsAgo(1, 1), "Food")
	require.NoError(t, repos.ExpenseRepo.TrashEntry(context.Background(), gone.ID, fixedNow))

	svc := services.NewBackupService(repos, services.WithBackupClock(fixedClock))
	snap, err := svc.ExportSnapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, fixedNow, snap.TakenAt)
	require.Len(t, snap.Expenses, 2)
	assert.Equal(t, "1", snap.Expenses[0].Amount.String())
	assert.Equal(t, "3", snap.Expenses[1].Amount.String())
	assert.NotNil(t, snap.Incomes)
	assert.Empty(t, snap.Incomes)
}

func TestExportSnapshot_IncludesCategories(t *testing.T) {
	repos := newMemoryRepos()
	_, err := services.NewCategoryService(repos, services.WithCategoryClock(fixedClock)).SeedDefaults(context.Background())
	require.NoError(t, err)

	snap, err := services.NewBackupService(repos, services.WithBackupClock(fixedClock)).ExportSnapshot(context.Background())

	require.NoError(t, err)
	require.Len(t, snap.Categories, 18)
	assert.Equal(t, domain.KindExpense, snap.Categories[0].Kind)
	assert.Equal(t, domain.KindIncome, snap.Categories[17].Kind)
}

func restoreRow(amount, group string, kind domain.EntryKind) dto.RestoreEntryRequest {
	row := dto.RestoreEntryRequest{Amount: decimal.RequireFromString(amount), DateTime: monthsAgo(1, 1)}
	if kind == domain.KindIncome {
		row.Source = group
	} else {
		row.Category = group
	}
	return row
}

func TestRestoreSnapshot_ReplacesEverything(t *testing.T) {
	repos := newMemoryRepos()
	seed(repos.ExpenseRepo, "999", monthsAgo(0, 1), "Old")
	seed(repos.IncomeRepo, "999", monthsAgo(0, 1), "Old")

	svc := services.NewBackupService(repos, services.WithBackupClock(fixedClock))
	req := dto.RestoreRequest{
		Expenses: []dto.RestoreEntryRequest{
			restoreRow("10", "Food", domain.KindExpense),
			restoreRow("20", "Travel", domain.KindExpense),
		},
		Incomes: []dto.RestoreEntryRequest{restoreRow("100", "Salary", domain.KindIncome)},
		Categories: []dto.RestoreCategoryRequest{
			{Kind: "expense", Name: "pets", Label: "Pets", IsCustom: boolPtr(true)},
		},
	}
	snap, err := svc.RestoreSnapshot(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, snap.Expenses, 2)
	assert.Len(t, snap.Incomes, 1)
	assert.Len(t, snap.Categories, 1)

	usage, err := repos.ExpenseRepo.CountEntriesByGroup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.GroupUsage{{Key: "Food", Count: 1}, {Key: "Travel", Count: 1}}, usage)

	incomes, err := repos.IncomeRepo.ListAllEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, "Salary", incomes[0].Group)

	categories, err := repos.CategoryRepo.ListAllCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	pets := categories[0]
	assert.Equal(t, "pets", pets.Name)
	assert.True(t, pets.Enabled)
	assert.True(t, pets.IsCustom)
	assert.Equal(t, domain.DefaultCategoryIcon, pets.Icon)
}

func TestRestoreSnapshot_KeepsAuditTimestamps(t *testing.T) {
	repos := newMemoryRepos()
	created := time.Date(2023, time.June, 1, 8, 0, 0, 0, time.UTC)
	updated := time.Date(2023, time.July, 2, 9, 30, 0, 0, time.UTC)

	withBoth := restoreRow("10", "Food", domain.KindExpense)
	withBoth.CreatedAt, withBoth.UpdatedAt = &created, &updated
	createdOnly := restoreRow("20", "Food", domain.KindExpense)
	createdOnly.CreatedAt = &created
	bare := restoreRow("30", "Food", domain.KindExpense)

	req := dto.RestoreRequest{
		Expenses: []dto.RestoreEntryRequest{withBoth, createdOnly, bare},
		Categories: []dto.RestoreCategoryRequest{
			{Kind: "income", Name: "salary", CreatedAt: &created, UpdatedAt: &updated},
		},
	}
	_, err := services.NewBackupService(repos, services.WithBackupClock(fixedClock)).RestoreSnapshot(context.Background(), req)
	require.NoError(t, err)

	expenses, err := repos.ExpenseRepo.ListAllEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, expenses, 3)
	byAmount := make(map[string]domain.Entry, len(expenses))
	for _, e := range expenses {
		byAmount[e.Amount.String()] = e
	}
	assert.Equal(t, created, byAmount["10"].CreatedAt)
	assert.Equal(t, updated, byAmount["10"].UpdatedAt)
	assert.Equal(t, created, byAmount["20"].CreatedAt)
	assert.Equal(t, created, byAmount["20"].UpdatedAt)
	assert.Equal(t, fixedNow, byAmount["30"].CreatedAt)
	assert.Equal(t, fixedNow, byAmount["30"].UpdatedAt)

	salary, err := repos.CategoryRepo.FindCategory(context.Background(), domain.KindIncome, "salary")
	require.NoError(t, err)
	assert.Equal(t, created, salary.CreatedAt)
	assert.Equal(t, updated, salary.UpdatedAt)
	assert.Equal(t, "salary", salary.Label)
}

func TestRestoreSnapshot_NoCategoriesRestoresDefaults(t *testing.T) {
	repos := newMemoryRepos()
	require.NoError(t, repos.CategoryRepo.SaveCategory(context.Background(), domain.Category{Kind: domain.KindExpense, Name: "pets", IsCustom: true}))

	snap, err := services.NewBackupService(repos, services.WithBackupClock(fixedClock)).RestoreSnapshot(context.Background(), dto.RestoreRequest{})
	require.NoError(t, err)
	assert.Len(t, snap.Categories, 18)

	_, err = repos.CategoryRepo.FindCategory(context.Background(), domain.KindExpense, "pets")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	food, err := repos.CategoryRepo.FindCategory(context.Background(), domain.KindExpense, "food")
	require.NoError(t, err)
	assert.Equal(t, fixedNow, food.CreatedAt)
}

func TestRestoreSnapshot_DuplicateCategoryRejected(t *testing.T) {
	store := new(MockSnapshotStore)
	svc := services.NewBackupService(portsrepo.RepositoryProvider{Snapshots: store}, services.WithBackupClock(fixedClock))

	_, err := svc.RestoreSnapshot(context.Background(), dto.RestoreRequest{
		Categories: []dto.RestoreCategoryRequest{
			{Kind: "expense", Name: "food"},
			{Kind: "expense", Name: " food "},
		},
	})

	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "categories[1]")
	store.AssertNotCalled(t, "ReplaceSnapshot", mock.Anything, mock.Anything)
}

func TestRestoreSnapshot_InvalidRowLeavesStoresUntouched(t *testing.T) {
	store := new(MockSnapshotStore)
	svc := services.NewBackupService(portsrepo.RepositoryProvider{Snapshots: store}, services.WithBackupClock(fixedClock))

	req := dto.RestoreRequest{
		Expenses: []dto.RestoreEntryRequest{restoreRow("10", "Food", domain.KindExpense)},
		Incomes:  []dto.RestoreEntryRequest{{Amount: decimal.NewFromInt(5), DateTime: monthsAgo(0, 1)}},
	}
	_, err := svc.RestoreSnapshot(context.Background(), req)

	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "incomes[0]")
	store.AssertNotCalled(t, "ReplaceSnapshot", mock.Anything, mock.Anything)
}

// failingSnapshots fails every replacement, the way a store that rolls back does.
type failingSnapshots struct {
	calls int
}

func (f *failingSnapshots) ReplaceSnapshot(context.Context, domain.Snapshot) error {
	f.calls++
	return assert.AnError
}

func TestRestoreSnapshot_StoreErrorKeepsOldData(t *testing.T) {
	repos := newMemoryRepos()
	seed(repos.ExpenseRepo, "999", monthsAgo(0, 1), "Old")
	seed(repos.IncomeRepo, "5", monthsAgo(0, 1), "Old")
	failing := &failingSnapshots{}
	repos.Snapshots = failing

	svc := services.NewBackupService(repos, services.WithBackupClock(fixedClock))
	_, err := svc.RestoreSnapshot(context.Background(), dto.RestoreRequest{
		Expenses: []dto.RestoreEntryRequest{restoreRow("10", "Food", domain.KindExpense)},
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, failing.calls)
	expenses, err := repos.ExpenseRepo.ListAllEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "999", expenses[0].Amount.String())
	incomes, err := repos.IncomeRepo.ListAllEntries(context.Background())
	require.NoError(t, err)
	assert.Len(t, incomes, 1)
}

func TestRestoreSnapshot_SingleStoreCall(t *testing.T) {
	store := new(MockSnapshotStore)
	store.On("ReplaceSnapshot", mock.Anything, mock.MatchedBy(func(s domain.Snapshot) bool {
		return len(s.Expenses) == 1 && len(s.Incomes) == 1 && len(s.Categories) == 18
	})).Return(nil).Once()
	svc := services.NewBackupService(portsrepo.RepositoryProvider{Snapshots: store}, services.WithBackupClock(fixedClock))

	_, err := svc.RestoreSnapshot(context.Background(), dto.RestoreRequest{
		Expenses: []dto.RestoreEntryRequest{restoreRow("10", "Food", domain.KindExpense)},
		Incomes:  []dto.RestoreEntryRequest{restoreRow("10", "Salary", domain.KindIncome)},
	})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func boolPtr(b bool) *bool { return &b }
