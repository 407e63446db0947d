package domain

// Category is one item of a ledger's taxonomy: an expense category or an
// income source. Entries reference it by Name; Kind and Name together
// identify it.
type Category struct {
	Kind     EntryKind `json:"kind"`
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Icon     string    `json:"icon"`
	Color    string    `json:"color"`
	Enabled  bool      `json:"enabled"`
	IsCustom bool      `json:"isCustom"`
	AuditFields
}

// SameContent reports whether the editable fields of c and other are identical.
func (c Category) SameContent(other Category) bool {
	return c.Label == other.Label &&
		c.Icon == other.Icon &&
		c.Color == other.Color &&
		c.Enabled == other.Enabled
}

// Fallback look of a custom category created without one.
const (
	DefaultCategoryIcon  = "dots-horizontal-circle-outline"
	DefaultCategoryColor = "#17b4edff"
)

type categorySeed struct {
	name, label, icon, color string
}

var expenseCategorySeeds = []categorySeed{
	{"food", "Food", "food", "#e6401bff"},
	{"transport", "Transport", "train-car", "#F76C6C"},
	{"entertainment", "Entertainment", "movie", "#68c0a3ff"},
	{"shopping", "Shopping", "shopping", "#edab1dff"},
	{"health", "Health", "heart", "#daa3daff"},
	{"travel", "Travel", "walk", "#ef877aff"},
	{"bills", "Bills", "file-document", "#823bc0ff"},
	{"other", "Other", DefaultCategoryIcon, DefaultCategoryColor},
}

var incomeSourceSeeds = []categorySeed{
	{"salary", "Salary", "cash", "#8BC34A"},
	{"business", "Business", "briefcase", "#4FC3F7"},
	{"freelance", "Freelance", "laptop", "#7141f5ff"},
	{"rental", "Rental", "home", "#E57373"},
	{"investment", "Investment", "chart-line", "#9575CD"},
	{"gift", "Gift", "gift", "#ff9021ff"},
	{"bonus", "Bonus", "star", "#F06292"},
	{"refund", "Refund", "undo", "#A1887F"},
	{"pension", "Pension", "account-tie", "#90A4AE"},
	{"other", "Other", DefaultCategoryIcon, DefaultCategoryColor},
}

// DefaultCategories returns the built-in taxonomy of kind: enabled, not custom
// and without timestamps.
func DefaultCategories(kind EntryKind) []Category {
	seeds := expenseCategorySeeds
	if kind == KindIncome {
		seeds = incomeSourceSeeds
	}
	out := make([]Category, len(seeds))
	for i, s := range seeds {
		out[i] = Category{
			Kind:    kind,
			Name:    s.name,
			Label:   s.label,
			Icon:    s.icon,
			Color:   s.color,
			Enabled: true,
		}
	}
	return out
}
