package dto

import (
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BackupResponse is the exported snapshot of both ledgers and both taxonomies.
type BackupResponse struct {
	Date       time.Time          `json:"date"`
	Expenses   []EntryResponse    `json:"expenses"`
	Incomes    []EntryResponse    `json:"incomes"`
	Categories []CategoryResponse `json:"categories"`
}

// ToBackupResponse converts a domain.Snapshot to BackupResponse DTO
func ToBackupResponse(s domain.Snapshot) BackupResponse {
	return BackupResponse{
		Date:       s.TakenAt,
		Expenses:   ToListEntryResponse(s.Expenses),
		Incomes:    ToListEntryResponse(s.Incomes),
		Categories: ToListCategoryResponse(s.Categories),
	}
}

// RestoreEntryRequest is one ledger row of a backup. Audit timestamps are kept
// when present and stamped with the restore time otherwise.
type RestoreEntryRequest struct {
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"150.00"`
	DateTime      time.Time       `json:"dateTime" binding:"required"`
	Category      string          `json:"category,omitempty"`
	Source        string          `json:"source,omitempty"`
	Description   *string         `json:"description,omitempty"`
	PaymentMethod *string         `json:"paymentMethod,omitempty" binding:"omitempty,oneof=upi cash bank-transfer credit-card other"`
	Receipt       *string         `json:"receipt,omitempty"`
	Currency      string          `json:"currency,omitempty" binding:"omitempty,len=3"`
	CreatedAt     *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

// Entry returns the row without its audit timestamps.
func (r RestoreEntryRequest) Entry() CreateEntryRequest {
	return CreateEntryRequest{
		Amount:        r.Amount,
		DateTime:      r.DateTime,
		Category:      r.Category,
		Source:        r.Source,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		Receipt:       r.Receipt,
		Currency:      r.Currency,
	}
}

// RestoreCategoryRequest is one taxonomy row of a backup.
type RestoreCategoryRequest struct {
	Kind      string     `json:"kind" binding:"required,oneof=expense income"`
	Name      string     `json:"name" binding:"required"`
	Label     string     `json:"label,omitempty"`
	Icon      string     `json:"icon,omitempty"`
	Color     string     `json:"color,omitempty" binding:"omitempty,hexcolor"`
	Enabled   *bool      `json:"enabled,omitempty"`
	IsCustom  *bool      `json:"isCustom,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// RestoreRequest carries the rows that replace both ledgers. An empty
// Categories list restores the built-in taxonomies.
type RestoreRequest struct {
	Expenses   []RestoreEntryRequest    `json:"expenses" binding:"dive"`
	Incomes    []RestoreEntryRequest    `json:"incomes" binding:"dive"`
	Categories []RestoreCategoryRequest `json:"categories" binding:"dive"`
}

// RestoreResponse reports how many rows were written per table.
type RestoreResponse struct {
	Expenses   int `json:"expenses"`
	Incomes    int `json:"incomes"`
	Categories int `json:"categories"`
}
