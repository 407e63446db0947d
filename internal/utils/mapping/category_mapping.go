package mapping

import (
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/models"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		Kind:        string(d.Kind),
		Name:        d.Name,
		Label:       d.Label,
		Icon:        d.Icon,
		Color:       d.Color,
		Enabled:     d.Enabled,
		IsCustom:    d.IsCustom,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		Kind:        domain.EntryKind(m.Kind),
		Name:        m.Name,
		Label:       m.Label,
		Icon:        m.Icon,
		Color:       m.Color,
		Enabled:     m.Enabled,
		IsCustom:    m.IsCustom,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of model Categories to domain Categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
