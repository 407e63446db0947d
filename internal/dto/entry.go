package dto

import (
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the data needed to record an expense or an income.
// Expenses read Category, incomes read Source.
type CreateEntryRequest struct {
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"150.00"`
	DateTime      time.Time       `json:"dateTime" binding:"required"`
	Category      string          `json:"category,omitempty"`
	Source        string          `json:"source,omitempty"`
	Description   *string         `json:"description,omitempty"`
	PaymentMethod *string         `json:"paymentMethod,omitempty" binding:"omitempty,oneof=upi cash bank-transfer credit-card other"`
	Receipt       *string         `json:"receipt,omitempty"`
	Currency      string          `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// UpdateEntryRequest replaces every mutable field of an entry. It is not a patch.
type UpdateEntryRequest = CreateEntryRequest

// GroupFor returns the category or source, whichever kind uses.
func (r CreateEntryRequest) GroupFor(kind domain.EntryKind) string {
	if kind == domain.KindIncome {
		return r.Source
	}
	return r.Category
}

// EntryResponse defines the data returned for an expense or an income.
type EntryResponse struct {
	ID            int64           `json:"id"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string"`
	DateTime      time.Time       `json:"dateTime"`
	Category      string          `json:"category,omitempty"`
	Source        string          `json:"source,omitempty"`
	Description   *string         `json:"description,omitempty"`
	PaymentMethod *string         `json:"paymentMethod,omitempty"`
	Receipt       *string         `json:"receipt,omitempty"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse DTO
func ToEntryResponse(e domain.Entry) EntryResponse {
	res := EntryResponse{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Amount:      e.Amount,
		DateTime:    e.DateTime,
		Description: e.Description,
		Receipt:     e.Receipt,
		Currency:    e.Currency,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Kind == domain.KindIncome {
		res.Source = e.Group
	} else {
		res.Category = e.Group
	}
	if e.PaymentMethod != nil {
		pm := string(*e.PaymentMethod)
		res.PaymentMethod = &pm
	}
	return res
}

// ToListEntryResponse converts a slice of domain.Entry to EntryResponse DTOs
func ToListEntryResponse(entries []domain.Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(e)
	}
	return res
}

// TrashGroupResponse reports how many entries a group deletion trashed.
type TrashGroupResponse struct {
	Group   string `json:"group"`
	Trashed int64  `json:"trashed"`
}

// GroupUsageResponse lists how many live entries reference each group.
type GroupUsageResponse struct {
	Groups []domain.GroupUsage `json:"groups"`
}
