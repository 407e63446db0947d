package entryquery

import (
	"fmt"
	"strings"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// Builder accumulates bound arguments and WHERE conditions in order.
type Builder struct {
	dialect Dialect
	conds   []string
	args    []any
}

// New returns a Builder already restricted to non-trashed rows.
func New(d Dialect) *Builder {
	return &Builder{
		dialect: d,
		conds:   []string{"is_trashed = " + d.False},
	}
}

// Arg binds v and returns its placeholder. Arguments must be bound in the
// order their placeholders appear in the final statement.
func (b *Builder) Arg(v any) string {
	b.args = append(b.args, v)
	return b.dialect.Placeholder(len(b.args))
}

// Where adds a condition; each %s in format receives the placeholder of the
// matching arg.
func (b *Builder) Where(format string, args ...any) *Builder {
	phs := make([]any, len(args))
	for i, a := range args {
		phs[i] = b.Arg(a)
	}
	b.conds = append(b.conds, fmt.Sprintf(format, phs...))
	return b
}

// Filter adds the dateTime bounds of f that are set.
func (b *Builder) Filter(f domain.EntryFilter) *Builder {
	if f.From != nil {
		b.Where("date_time >= %s", b.dialect.TimeArg(*f.From))
	}
	if f.To != nil {
		b.Where("date_time <= %s", b.dialect.TimeArg(*f.To))
	}
	if f.Before != nil {
		b.Where("date_time < %s", b.dialect.TimeArg(*f.Before))
	}
	return b
}

// WhereClause renders " WHERE c1 AND c2 ...".
func (b *Builder) WhereClause() string {
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// Args returns the bound arguments in placeholder order.
func (b *Builder) Args() []any {
	return b.args
}
