package entryquery

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/models"
)

// Query is a rendered statement and its arguments.
type Query struct {
	SQL  string
	Args []any
}

// Queries renders every ledger statement for one table in one dialect.
type Queries struct {
	Dialect Dialect
	Table   Table
}

// NewQueries returns the statement set for t in d.
func NewQueries(d Dialect, t Table) Queries {
	return Queries{Dialect: d, Table: t}
}

// Columns lists the selected columns in the order rows are scanned.
func (q Queries) Columns() string {
	return "id, amount, date_time, " + q.Table.GroupColumn +
		", description, payment_method, receipt, currency, is_trashed, created_at, updated_at"
}

func (q Queries) selectFrom(b *Builder, tail string) Query {
	return Query{
		SQL:  fmt.Sprintf("SELECT %s FROM %s%s%s", q.Columns(), q.Table.Name, b.WhereClause(), tail),
		Args: b.Args(),
	}
}

// FindByID selects one live row.
func (q Queries) FindByID(id int64) Query {
	b := New(q.Dialect).Where("id = %s", id)
	return q.selectFrom(b, "")
}

// List selects the live rows matching filter, newest first. id breaks dateTime ties.
func (q Queries) List(filter domain.EntryFilter) Query {
	b := New(q.Dialect).Filter(filter)
	return q.selectFrom(b, " ORDER BY date_time DESC, id DESC")
}

// ListAll selects every live row, oldest first.
func (q Queries) ListAll() Query {
	return q.selectFrom(New(q.Dialect), " ORDER BY date_time ASC, id ASC")
}

// Count counts the live rows matching filter.
func (q Queries) Count(filter domain.EntryFilter) Query {
	b := New(q.Dialect).Filter(filter)
	return Query{SQL: "SELECT COUNT(*) FROM " + q.Table.Name + b.WhereClause(), Args: b.Args()}
}

// Exists probes for a single live row matching filter.
func (q Queries) Exists(filter domain.EntryFilter) Query {
	b := New(q.Dialect).Filter(filter)
	return Query{SQL: "SELECT 1 FROM " + q.Table.Name + b.WhereClause() + " LIMIT 1", Args: b.Args()}
}

// Newest selects the largest dateTime matching filter.
func (q Queries) Newest(filter domain.EntryFilter) Query {
	b := New(q.Dialect).Filter(filter)
	return Query{SQL: "SELECT date_time FROM " + q.Table.Name + b.WhereClause() + " ORDER BY date_time DESC LIMIT 1", Args: b.Args()}
}

// Oldest selects the smallest dateTime matching filter.
func (q Queries) Oldest(filter domain.EntryFilter) Query {
	b := New(q.Dialect).Filter(filter)
	return Query{SQL: "SELECT date_time FROM " + q.Table.Name + b.WhereClause() + " ORDER BY date_time ASC LIMIT 1", Args: b.Args()}
}

// Aggregate computes SUM, COUNT, MAX and MIN. Empty sets yield zeros.
func (q Queries) Aggregate(filter domain.EntryFilter) Query {
	b := New(q.Dialect).Filter(filter)
	return Query{
		SQL: "SELECT COALESCE(SUM(amount), 0), COUNT(*), COALESCE(MAX(amount), 0), COALESCE(MIN(amount), 0) FROM " +
			q.Table.Name + b.WhereClause(),
		Args: b.Args(),
	}
}

// AggregateByGroup computes SUM and COUNT per group, largest total first and
// group key ascending on ties.
func (q Queries) AggregateByGroup(filter domain.EntryFilter) Query {
	b := New(q.Dialect).Filter(filter)
	g := q.Table.GroupColumn
	return Query{
		SQL: fmt.Sprintf("SELECT %s, COALESCE(SUM(amount), 0) AS total, COUNT(*) FROM %s%s GROUP BY %s ORDER BY total DESC, %s ASC",
			g, q.Table.Name, b.WhereClause(), g, g),
		Args: b.Args(),
	}
}

// CountByGroup counts live rows per group, most used first.
func (q Queries) CountByGroup() Query {
	b := New(q.Dialect)
	g := q.Table.GroupColumn
	return Query{
		SQL: fmt.Sprintf("SELECT %s, COUNT(*) AS uses FROM %s%s GROUP BY %s ORDER BY uses DESC, %s ASC",
			g, q.Table.Name, b.WhereClause(), g, g),
		Args: b.Args(),
	}
}

// Insert renders an INSERT of every column but id. Postgres returns the new id.
func (q Queries) Insert(m models.Entry) Query {
	b := &Builder{dialect: q.Dialect}
	values := []string{
		b.Arg(q.Dialect.AmountArg(m.Amount)),
		b.Arg(q.Dialect.TimeArg(m.DateTime)),
		b.Arg(m.Group),
		b.Arg(m.Description),
		b.Arg(m.PaymentMethod),
		b.Arg(m.Receipt),
		b.Arg(m.Currency),
		b.Arg(q.Dialect.boolArg(m.IsTrashed)),
		b.Arg(q.Dialect.TimeArg(m.CreatedAt)),
		b.Arg(q.Dialect.TimeArg(m.UpdatedAt)),
	}
	sql := fmt.Sprintf("INSERT INTO %s (amount, date_time, %s, description, payment_method, receipt, currency, is_trashed, created_at, updated_at) VALUES (%s)",
		q.Table.Name, q.Table.GroupColumn, strings.Join(values, ", "))
	if q.Dialect.Name == Postgres.Name {
		sql += " RETURNING id"
	}
	return Query{SQL: sql, Args: b.Args()}
}

// Update replaces the mutable fields of a live row.
func (q Queries) Update(m models.Entry) Query {
	b := &Builder{dialect: q.Dialect}
	sets := []string{
		"amount = " + b.Arg(q.Dialect.AmountArg(m.Amount)),
		"date_time = " + b.Arg(q.Dialect.TimeArg(m.DateTime)),
		q.Table.GroupColumn + " = " + b.Arg(m.Group),
		"description = " + b.Arg(m.Description),
		"payment_method = " + b.Arg(m.PaymentMethod),
		"receipt = " + b.Arg(m.Receipt),
		"currency = " + b.Arg(m.Currency),
		"updated_at = " + b.Arg(q.Dialect.TimeArg(m.UpdatedAt)),
	}
	b.conds = []string{"is_trashed = " + q.Dialect.False}
	b.Where("id = %s", m.ID)
	return Query{
		SQL:  fmt.Sprintf("UPDATE %s SET %s%s", q.Table.Name, strings.Join(sets, ", "), b.WhereClause()),
		Args: b.Args(),
	}
}

// Trash soft-deletes one live row.
func (q Queries) Trash(id int64, at time.Time) Query {
	return q.trash(at, "id = %s", id)
}

// TrashByGroup soft-deletes every live row of group.
func (q Queries) TrashByGroup(group string, at time.Time) Query {
	return q.trash(at, q.Table.GroupColumn+" = %s", group)
}

func (q Queries) trash(at time.Time, cond string, arg any) Query {
	b := New(q.Dialect)
	set := b.Arg(q.Dialect.TimeArg(at))
	b.Where(cond, arg)
	return Query{
		SQL:  fmt.Sprintf("UPDATE %s SET is_trashed = %s, updated_at = %s%s", q.Table.Name, q.Dialect.True, set, b.WhereClause()),
		Args: b.Args(),
	}
}

// DeleteAll physically clears the table. Only snapshot restores use it.
func (q Queries) DeleteAll() Query {
	return Query{SQL: "DELETE FROM " + q.Table.Name}
}
