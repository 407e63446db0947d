package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields are the bookkeeping columns shared by the ledger tables.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Entry is one row of the expenses or incomes table.
type Entry struct {
	ID            int64           `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	DateTime      time.Time       `json:"dateTime"`
	Group         string          `json:"group"` // category for expenses, source for incomes
	Description   *string         `json:"description"`
	PaymentMethod *string         `json:"paymentMethod"`
	Receipt       *string         `json:"receipt"`
	Currency      string          `json:"currency"`
	IsTrashed     bool            `json:"isTrashed"`
	AuditFields
}
