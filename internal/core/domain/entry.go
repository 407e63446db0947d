package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes the two parallel ledgers.
type EntryKind string

const (
	KindExpense EntryKind = "expense"
	KindIncome  EntryKind = "income"
)

// DefaultCurrency is used when neither the request nor the configuration names one.
const DefaultCurrency = "INR"

// Valid reports whether k is one of the known kinds.
func (k EntryKind) Valid() bool {
	return k == KindExpense || k == KindIncome
}

// GroupLabel is the name the kind uses for its grouping column.
func (k EntryKind) GroupLabel() string {
	if k == KindIncome {
		return "source"
	}
	return "category"
}

// Plural is the collection name used in routes and table names.
func (k EntryKind) Plural() string {
	return string(k) + "s"
}

// PaymentMethod is how an expense was paid. Incomes leave it empty.
type PaymentMethod string

const (
	PaymentUPI          PaymentMethod = "upi"
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank-transfer"
	PaymentCreditCard   PaymentMethod = "credit-card"
	PaymentOther        PaymentMethod = "other"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentUPI, PaymentCash, PaymentBankTransfer, PaymentCreditCard, PaymentOther:
		return true
	}
	return false
}

// Entry is a single money-movement event: an expense (Group = category) or an income (Group = source).
type Entry struct {
	ID            int64           `json:"id"`
	Kind          EntryKind       `json:"kind"`
	Amount        decimal.Decimal `json:"amount"` // > 0 by convention, stored at full precision
	DateTime      time.Time       `json:"dateTime"`
	Group         string          `json:"group"`
	Description   *string         `json:"description,omitempty"`
	PaymentMethod *PaymentMethod  `json:"paymentMethod,omitempty"`
	Receipt       *string         `json:"receipt,omitempty"`
	Currency      string          `json:"currency"`
	IsTrashed     bool            `json:"isTrashed"`
	AuditFields
}

// SameContent reports whether the mutable fields of e and other are identical.
func (e Entry) SameContent(other Entry) bool {
	return e.Amount.Equal(other.Amount) &&
		e.DateTime.Equal(other.DateTime) &&
		e.Group == other.Group &&
		e.Currency == other.Currency &&
		equalStringPtr(e.Description, other.Description) &&
		equalStringPtr(e.Receipt, other.Receipt) &&
		equalPaymentPtr(e.PaymentMethod, other.PaymentMethod)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalPaymentPtr(a, b *PaymentMethod) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// EntryFilter narrows a read to a dateTime window. Every store applies the
// non-trashed predicate on top of it; nil bounds are simply omitted.
type EntryFilter struct {
	From   *time.Time // inclusive
	To     *time.Time // inclusive
	Before *time.Time // exclusive
}

// EntryAggregate is the result of one SUM/COUNT/MAX/MIN pass.
type EntryAggregate struct {
	Total decimal.Decimal
	Count int
	Max   decimal.Decimal
	Min   decimal.Decimal
}

// GroupStat is one row of a GROUP BY category/source breakdown.
type GroupStat struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// GroupUsage is how many live entries reference a group.
type GroupUsage struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
