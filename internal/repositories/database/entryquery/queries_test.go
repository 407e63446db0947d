package entryquery_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/models"
	"github.com/SscSPs/pocket_ledger/internal/repositories/database/entryquery"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func window() domain.EntryFilter {
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)
	return domain.EntryFilter{From: &from, To: &to}
}

func TestEveryReadExcludesTrashedRows(t *testing.T) {
	for _, d := range []entryquery.Dialect{entryquery.Postgres, entryquery.SQLite} {
		q := entryquery.NewQueries(d, entryquery.ExpensesTable)
		f := window()
		reads := map[string]entryquery.Query{
			"find":      q.FindByID(7),
			"list":      q.List(f),
			"listAll":   q.ListAll(),
			"count":     q.Count(f),
			"exists":    q.Exists(f),
			"newest":    q.Newest(f),
			"oldest":    q.Oldest(domain.EntryFilter{}),
			"aggregate": q.Aggregate(f),
			"byGroup":   q.AggregateByGroup(f),
			"usage":     q.CountByGroup(),
			"update":    q.Update(models.Entry{ID: 7}),
			"trash":     q.Trash(7, time.Now()),
			"trashByGr": q.TrashByGroup("Food", time.Now()),
		}
		for name, query := range reads {
			assert.Contains(t, query.SQL, "WHERE is_trashed = "+d.False, "%s/%s", d.Name, name)
		}
	}
}

func TestPostgresPlaceholdersAreNumbered(t *testing.T) {
	q := entryquery.NewQueries(entryquery.Postgres, entryquery.IncomesTable)
	f := window()

	got := q.List(f)
	assert.Equal(t,
		"SELECT id, amount, date_time, source, description, payment_method, receipt, currency, is_trashed, created_at, updated_at FROM incomes WHERE is_trashed = FALSE AND date_time >= $1 AND date_time <= $2 ORDER BY date_time DESC, id DESC",
		got.SQL)
	assert.Equal(t, []any{*f.From, *f.To}, got.Args)
}

func TestSQLiteBindsUnixMillis(t *testing.T) {
	q := entryquery.NewQueries(entryquery.SQLite, entryquery.ExpensesTable)
	before := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	got := q.Exists(domain.EntryFilter{Before: &before})
	assert.Equal(t, "SELECT 1 FROM expenses WHERE is_trashed = 0 AND date_time < ? LIMIT 1", got.SQL)
	assert.Equal(t, []any{before.UnixMilli()}, got.Args)
}

func TestAggregateByGroupOrdering(t *testing.T) {
	q := entryquery.NewQueries(entryquery.Postgres, entryquery.ExpensesTable)
	got := q.AggregateByGroup(domain.EntryFilter{})
	assert.True(t, strings.HasSuffix(got.SQL, "GROUP BY category ORDER BY total DESC, category ASC"), got.SQL)
	assert.Empty(t, got.Args)
}

func TestTrashBindsTimestampBeforeID(t *testing.T) {
	at := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	q := entryquery.NewQueries(entryquery.Postgres, entryquery.ExpensesTable)

	got := q.Trash(42, at)
	assert.Equal(t, "UPDATE expenses SET is_trashed = TRUE, updated_at = $1 WHERE is_trashed = FALSE AND id = $2", got.SQL)
	assert.Equal(t, []any{at, int64(42)}, got.Args)
}

func TestUpdateAndInsertArgs(t *testing.T) {
	now := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	m := models.Entry{
		ID:       9,
		Amount:   decimal.RequireFromString("12.50"),
		DateTime: now,
		Group:    "Salary",
		Currency: "INR",
	}
	m.CreatedAt, m.UpdatedAt = now, now

	q := entryquery.NewQueries(entryquery.Postgres, entryquery.IncomesTable)
	upd := q.Update(m)
	assert.Contains(t, upd.SQL, "source = $3")
	assert.True(t, strings.HasSuffix(upd.SQL, "WHERE is_trashed = FALSE AND id = $9"), upd.SQL)
	assert.Len(t, upd.Args, 9)

	ins := q.Insert(m)
	assert.True(t, strings.HasSuffix(ins.SQL, "RETURNING id"))
	assert.Len(t, ins.Args, 10)

	lite := entryquery.NewQueries(entryquery.SQLite, entryquery.IncomesTable).Insert(m)
	assert.NotContains(t, lite.SQL, "RETURNING")
	assert.Equal(t, int64(1250), lite.Args[0])
	assert.Equal(t, now.UnixMilli(), lite.Args[1])
	assert.Equal(t, 0, lite.Args[7])
	assert.Equal(t, m.Amount, ins.Args[0])
}

func TestCategoryQueries(t *testing.T) {
	at := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	m := models.Category{Kind: "expense", Name: "pets", Label: "Pets", Icon: "paw", Color: "#112233", Enabled: true, IsCustom: true}
	m.CreatedAt, m.UpdatedAt = at, at

	pg := entryquery.NewCategoryQueries(entryquery.Postgres)
	ins := pg.InsertIfMissing(m)
	assert.True(t, strings.HasSuffix(ins.SQL, "VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT (kind, name) DO NOTHING"), ins.SQL)
	assert.Equal(t, []any{"expense", "pets", "Pets", "paw", "#112233", true, true, at, at}, ins.Args)

	del := pg.DeleteCustom("expense", "pets")
	assert.Equal(t, "DELETE FROM categories WHERE kind = $1 AND name = $2 AND is_custom = TRUE", del.SQL)

	lite := entryquery.NewCategoryQueries(entryquery.SQLite)
	upd := lite.Update(m)
	assert.Equal(t, "UPDATE categories SET label = ?, icon = ?, color = ?, enabled = ?, updated_at = ? WHERE kind = ? AND name = ?", upd.SQL)
	assert.Equal(t, []any{"Pets", "paw", "#112233", 1, at.UnixMilli(), "expense", "pets"}, upd.Args)

	list := lite.ListByKind("income")
	assert.True(t, strings.HasSuffix(list.SQL, "FROM categories WHERE kind = ? ORDER BY name ASC"), list.SQL)
	assert.NotContains(t, list.SQL, "is_trashed")
}
