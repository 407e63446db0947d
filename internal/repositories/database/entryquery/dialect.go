// Package entryquery renders the SQL shared by the PostgreSQL and SQLite
// ledger stores. Every statement that reads or mutates live rows starts from
// New, which seeds the soft-delete predicate, so no call site can forget it.
package entryquery

import (
	"strconv"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// Dialect captures the differences between the supported SQL engines.
type Dialect struct {
	Name        string
	True        string
	False       string
	Placeholder func(n int) string
	// TimeArg converts an instant into the value bound for date columns.
	TimeArg func(t time.Time) any
	// AmountArg converts an amount into the value bound for amount columns.
	AmountArg func(d decimal.Decimal) any
}

// Postgres binds $n placeholders, native timestamps and NUMERIC amounts.
var Postgres = Dialect{
	Name:        "postgres",
	True:        "TRUE",
	False:       "FALSE",
	Placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	TimeArg:     func(t time.Time) any { return t },
	AmountArg:   func(d decimal.Decimal) any { return d },
}

// SQLite binds ? placeholders and stores instants as Unix milliseconds and
// amounts as INTEGER minor units, so SUM stays exact.
var SQLite = Dialect{
	Name:        "sqlite",
	True:        "1",
	False:       "0",
	Placeholder: func(int) string { return "?" },
	TimeArg:     func(t time.Time) any { return t.UnixMilli() },
	AmountArg:   func(d decimal.Decimal) any { return mapping.ToMinorUnits(d) },
}

// Table describes one ledger table.
type Table struct {
	Name        string
	GroupColumn string
}

// ExpensesTable and IncomesTable are the two ledger tables.
var (
	ExpensesTable = Table{Name: "expenses", GroupColumn: "category"}
	IncomesTable  = Table{Name: "incomes", GroupColumn: "source"}
)

// boolArg converts v into the value bound for boolean columns.
func (d Dialect) boolArg(v bool) any {
	if d.Name == Postgres.Name {
		return v
	}
	if v {
		return 1
	}
	return 0
}
