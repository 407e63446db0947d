package periods

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// Resolver maps a period descriptor onto concrete instants.
type Resolver struct {
	WeekStartsOn time.Weekday
}

// NewResolver returns a Resolver whose weeks start on weekStartsOn.
func NewResolver(weekStartsOn time.Weekday) Resolver {
	return Resolver{WeekStartsOn: weekStartsOn}
}

// Resolve returns the window of p relative to now. all-time yields an open
// window on both sides; every other type yields inclusive bounds.
func (r Resolver) Resolve(now time.Time, p domain.Period) (domain.Window, error) {
	if p.Offset < 0 {
		return domain.Window{}, apperrors.NewValidationError(fmt.Sprintf("period offset must be non-negative, got %d", p.Offset))
	}

	var start, end time.Time
	switch p.Type {
	case domain.PeriodToday:
		start = StartOfDay(now).AddDate(0, 0, -p.Offset)
		end = EndOfDay(start)
	case domain.PeriodWeek:
		start = StartOfWeek(now, r.WeekStartsOn).AddDate(0, 0, -7*p.Offset)
		end = EndOfWeek(start, r.WeekStartsOn)
	case domain.PeriodMonth:
		start, end = MonthWindow(now, p.Offset)
	case domain.PeriodYear:
		start = StartOfYear(now).AddDate(-p.Offset, 0, 0)
		end = EndOfYear(start)
	case domain.PeriodAllTime:
		return domain.Window{}, nil
	default:
		return domain.Window{}, apperrors.NewValidationError(fmt.Sprintf("unknown period type %q", p.Type))
	}
	return domain.Window{Start: &start, End: &end}, nil
}

// ParseWeekday accepts an English weekday name ("sunday", "Monday") or its
// number (0 = Sunday).
func ParseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) || s == strconv.Itoa(int(d)) {
			return d, true
		}
	}
	return time.Sunday, false
}
