package dto

import "github.com/SscSPs/pocket_ledger/internal/core/domain"

// AvailableMonthsResponse lists the months holding entries, current month first.
type AvailableMonthsResponse struct {
	Kind   string                     `json:"kind"`
	Months []domain.MonthAvailability `json:"months"`
}

// MonthPageResponse is one calendar month of entries.
type MonthPageResponse struct {
	Kind        string          `json:"kind"`
	OffsetMonth int             `json:"offsetMonth"`
	Month       string          `json:"month"`
	HasMore     bool            `json:"hasMore"`
	Entries     []EntryResponse `json:"entries"`
}

// ToMonthPageResponse converts a domain.MonthPage to MonthPageResponse DTO
func ToMonthPageResponse(kind domain.EntryKind, p domain.MonthPage) MonthPageResponse {
	return MonthPageResponse{
		Kind:        string(kind),
		OffsetMonth: p.OffsetMonth,
		Month:       p.MonthLabel,
		HasMore:     p.HasMore,
		Entries:     ToListEntryResponse(p.Entries),
	}
}
