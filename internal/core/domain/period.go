package domain

import "time"

// PeriodType names a logical statistics window.
type PeriodType string

const (
	PeriodToday   PeriodType = "today"
	PeriodWeek    PeriodType = "week"
	PeriodMonth   PeriodType = "month"
	PeriodYear    PeriodType = "year"
	PeriodAllTime PeriodType = "all-time"
)

// Valid reports whether t is a known period type.
func (t PeriodType) Valid() bool {
	switch t {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear, PeriodAllTime:
		return true
	}
	return false
}

// Rolling reports whether the offset-0 instance of t can still be in progress.
func (t PeriodType) Rolling() bool {
	return t == PeriodWeek || t == PeriodMonth || t == PeriodYear
}

// Period is a {type, offset} descriptor. Offset 0 is the current instance,
// N is N periods back.
type Period struct {
	Type   PeriodType `json:"type"`
	Offset int        `json:"offset"`
}

// Window is a resolved period. A nil bound is open and gets resolved against the data.
type Window struct {
	Start *time.Time
	End   *time.Time
}
