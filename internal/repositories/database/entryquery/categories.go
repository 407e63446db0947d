package entryquery

import (
	"fmt"
	"strings"

	"github.com/SscSPs/pocket_ledger/internal/models"
)

// CategoriesTable holds both taxonomies, keyed by (kind, name).
const CategoriesTable = "categories"

// CategoryQueries renders the taxonomy statements in one dialect. Categories
// are deleted physically, so these statements carry no soft-delete predicate.
type CategoryQueries struct {
	Dialect Dialect
}

// NewCategoryQueries returns the taxonomy statement set for d.
func NewCategoryQueries(d Dialect) CategoryQueries {
	return CategoryQueries{Dialect: d}
}

// categoryColumns lists the selected columns in the order rows are scanned.
const categoryColumns = "kind, name, label, icon, color, enabled, is_custom, created_at, updated_at"

func (q CategoryQueries) key(kind, name string) *Builder {
	b := &Builder{dialect: q.Dialect}
	return b.Where("kind = %s", kind).Where("name = %s", name)
}

// ListByKind selects the taxonomy of kind ordered by name.
func (q CategoryQueries) ListByKind(kind string) Query {
	b := (&Builder{dialect: q.Dialect}).Where("kind = %s", kind)
	return Query{
		SQL:  fmt.Sprintf("SELECT %s FROM %s%s ORDER BY name ASC", categoryColumns, CategoriesTable, b.WhereClause()),
		Args: b.Args(),
	}
}

// ListAll selects both taxonomies, expenses first.
func (q CategoryQueries) ListAll() Query {
	return Query{SQL: fmt.Sprintf("SELECT %s FROM %s ORDER BY kind ASC, name ASC", categoryColumns, CategoriesTable)}
}

// Find selects one category.
func (q CategoryQueries) Find(kind, name string) Query {
	b := q.key(kind, name)
	return Query{
		SQL:  fmt.Sprintf("SELECT %s FROM %s%s", categoryColumns, CategoriesTable, b.WhereClause()),
		Args: b.Args(),
	}
}

// InsertIfMissing inserts m unless its kind/name pair exists. Zero affected
// rows means the pair was taken.
func (q CategoryQueries) InsertIfMissing(m models.Category) Query {
	b := &Builder{dialect: q.Dialect}
	values := []string{
		b.Arg(m.Kind),
		b.Arg(m.Name),
		b.Arg(m.Label),
		b.Arg(m.Icon),
		b.Arg(m.Color),
		b.Arg(q.Dialect.boolArg(m.Enabled)),
		b.Arg(q.Dialect.boolArg(m.IsCustom)),
		b.Arg(q.Dialect.TimeArg(m.CreatedAt)),
		b.Arg(q.Dialect.TimeArg(m.UpdatedAt)),
	}
	return Query{
		SQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (kind, name) DO NOTHING",
			CategoriesTable, categoryColumns, strings.Join(values, ", ")),
		Args: b.Args(),
	}
}

// Update replaces the editable fields of one category.
func (q CategoryQueries) Update(m models.Category) Query {
	b := &Builder{dialect: q.Dialect}
	sets := []string{
		"label = " + b.Arg(m.Label),
		"icon = " + b.Arg(m.Icon),
		"color = " + b.Arg(m.Color),
		"enabled = " + b.Arg(q.Dialect.boolArg(m.Enabled)),
		"updated_at = " + b.Arg(q.Dialect.TimeArg(m.UpdatedAt)),
	}
	b.Where("kind = %s", m.Kind).Where("name = %s", m.Name)
	return Query{
		SQL:  fmt.Sprintf("UPDATE %s SET %s%s", CategoriesTable, strings.Join(sets, ", "), b.WhereClause()),
		Args: b.Args(),
	}
}

// DeleteCustom removes one custom category. Built-in ones never match.
func (q CategoryQueries) DeleteCustom(kind, name string) Query {
	b := q.key(kind, name)
	b.conds = append(b.conds, "is_custom = "+q.Dialect.True)
	return Query{
		SQL:  fmt.Sprintf("DELETE FROM %s%s", CategoriesTable, b.WhereClause()),
		Args: b.Args(),
	}
}

// DeleteAll physically clears both taxonomies. Only snapshot restores use it.
func (q CategoryQueries) DeleteAll() Query {
	return Query{SQL: "DELETE FROM " + CategoriesTable}
}
