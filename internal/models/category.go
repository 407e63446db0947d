package models

// Category is one row of the categories table.
type Category struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Enabled  bool   `json:"enabled"`
	IsCustom bool   `json:"isCustom"`
	AuditFields
}
