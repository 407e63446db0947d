package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// maxAmount is the first value with nine integer digits.
var maxAmount = decimal.NewFromInt(100_000_000)

func repoFor(repos portsrepo.RepositoryProvider, kind domain.EntryKind) (portsrepo.EntryRepositoryFacade, error) {
	repo := repos.For(kind)
	if repo == nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown entry kind %q", kind))
	}
	return repo, nil
}

// parseEntryID rejects anything that is not a positive integer before any store call.
func parseEntryID(id string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || n <= 0 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("invalid id %q", id))
	}
	return n, nil
}

func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// buildEntry validates req and turns it into an Entry of kind stamped with now.
func buildEntry(kind domain.EntryKind, req dto.CreateEntryRequest, defaultCurrency string, now time.Time) (domain.Entry, error) {
	if !req.Amount.IsPositive() {
		return domain.Entry{}, apperrors.NewValidationError("amount must be greater than zero")
	}
	if !req.Amount.Equal(req.Amount.Round(2)) {
		return domain.Entry{}, apperrors.NewValidationError("amount must have at most 2 decimal places")
	}
	if req.Amount.GreaterThanOrEqual(maxAmount) {
		return domain.Entry{}, apperrors.NewValidationError("amount must have at most 8 integer digits")
	}
	if req.DateTime.IsZero() {
		return domain.Entry{}, apperrors.NewValidationError("dateTime is required")
	}

	group := strings.TrimSpace(req.GroupFor(kind))
	if group == "" {
		return domain.Entry{}, apperrors.NewValidationError(kind.GroupLabel() + " is required")
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	if len(currency) != 3 {
		return domain.Entry{}, apperrors.NewValidationError(fmt.Sprintf("invalid currency %q", req.Currency))
	}

	var method *domain.PaymentMethod
	if kind == domain.KindExpense && req.PaymentMethod != nil && *req.PaymentMethod != "" {
		m := domain.PaymentMethod(*req.PaymentMethod)
		if !m.Valid() {
			return domain.Entry{}, apperrors.NewValidationError(fmt.Sprintf("invalid payment method %q", m))
		}
		method = &m
	}

	return domain.Entry{
		Kind:          kind,
		Amount:        req.Amount,
		DateTime:      req.DateTime,
		Group:         group,
		Description:   optionalText(req.Description),
		PaymentMethod: method,
		Receipt:       optionalText(req.Receipt),
		Currency:      currency,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}, nil
}
