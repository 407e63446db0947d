// Package periods holds the calendar math shared by the month walker, the
// monthly page fetcher and the period aggregator. Every helper works in the
// location of the instant it is given.
package periods

import "time"

// Day is the unit used for per-day averages.
const Day = 24 * time.Hour

// MonthLabelLayout renders a month as "January 2006".
const MonthLabelLayout = "January 2006"

// StartOfDay returns midnight of t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns midnight of the most recent weekStartsOn on or before t.
func StartOfWeek(t time.Time, weekStartsOn time.Weekday) time.Time {
	diff := (int(t.Weekday()) - int(weekStartsOn) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -diff)
}

// EndOfWeek returns the last nanosecond of the week containing t.
func EndOfWeek(t time.Time, weekStartsOn time.Weekday) time.Time {
	return StartOfWeek(t, weekStartsOn).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// StartOfYear returns midnight of January 1st of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last nanosecond of t's year.
func EndOfYear(t time.Time) time.Time {
	return StartOfYear(t).AddDate(1, 0, 0).Add(-time.Nanosecond)
}

// MonthWindow returns the inclusive bounds of the calendar month offset months
// before the one containing now. The shift starts from the first of the month
// so that day overflow (March 31st minus one month) never skips a month.
func MonthWindow(now time.Time, offset int) (time.Time, time.Time) {
	start := StartOfMonth(now).AddDate(0, -offset, 0)
	return start, EndOfMonth(start)
}

// MonthsBetween counts calendar months from t up to now. It is the inverse of
// MonthWindow: MonthsBetween(now, start of MonthWindow(now, n)) == n.
func MonthsBetween(now, t time.Time) int {
	t = t.In(now.Location())
	return (now.Year()-t.Year())*12 + int(now.Month()) - int(t.Month())
}

// MonthLabel formats t's month for display.
func MonthLabel(t time.Time) string {
	return t.Format(MonthLabelLayout)
}

// WholeDaysBetween is floor((end - start) / 1 day).
func WholeDaysBetween(start, end time.Time) int {
	d := end.Sub(start)
	days := d / Day
	if d%Day != 0 && d < 0 {
		days--
	}
	return int(days)
}

// InclusiveDays counts the days covered by [start, end], i.e. whole days plus one.
func InclusiveDays(start, end time.Time) int {
	return WholeDaysBetween(start, end) + 1
}
