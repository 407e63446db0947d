package mapping

import (
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry
func ToModelEntry(d domain.Entry) models.Entry {
	var method *string
	if d.PaymentMethod != nil {
		m := string(*d.PaymentMethod)
		method = &m
	}
	return models.Entry{
		ID:            d.ID,
		Amount:        d.Amount,
		DateTime:      d.DateTime,
		Group:         d.Group,
		Description:   d.Description,
		PaymentMethod: method,
		Receipt:       d.Receipt,
		Currency:      d.Currency,
		IsTrashed:     d.IsTrashed,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model Entry of the given kind to a domain Entry
func ToDomainEntry(kind domain.EntryKind, m models.Entry) domain.Entry {
	var method *domain.PaymentMethod
	if m.PaymentMethod != nil {
		pm := domain.PaymentMethod(*m.PaymentMethod)
		method = &pm
	}
	return domain.Entry{
		ID:            m.ID,
		Kind:          kind,
		Amount:        m.Amount,
		DateTime:      m.DateTime,
		Group:         m.Group,
		Description:   m.Description,
		PaymentMethod: method,
		Receipt:       m.Receipt,
		Currency:      m.Currency,
		IsTrashed:     m.IsTrashed,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntrySlice converts a slice of model Entries to domain Entries
func ToDomainEntrySlice(kind domain.EntryKind, ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(kind, m)
	}
	return ds
}

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
