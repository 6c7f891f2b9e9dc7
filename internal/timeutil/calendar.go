// Package timeutil provides the day-granularity calendar primitives used to
// build date ranges: day and month boundaries, ISO weekdays, time units and
// date parsing.
package timeutil

import (
	"time"

	"github.com/jinzhu/now"
)

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

// StartOfMonth returns the first day of the month at 00:00:00 in the same timezone
func StartOfMonth(t time.Time) time.Time {
	return now.With(t).BeginningOfMonth()
}

// EndOfMonth returns the last nanosecond of the last day of the month (23:59:59.999999999)
func EndOfMonth(t time.Time) time.Time {
	return now.With(t).EndOfMonth()
}

// LastDayOfMonth returns midnight of the last calendar day of the month
// containing t. Unlike EndOfMonth it is a day boundary and can be compared
// directly with other start-of-day values.
func LastDayOfMonth(t time.Time) time.Time {
	return StartOfDay(EndOfMonth(t))
}

// DaysInMonth returns the number of days of the month containing t.
func DaysInMonth(t time.Time) int {
	return LastDayOfMonth(t).Day()
}

// StartOfWeek returns midnight of the first day of the week containing t,
// where weeks begin on the given weekday.
func StartOfWeek(t time.Time, weekStart Weekday) time.Time {
	cfg := &now.Config{WeekStartDay: weekStart.Time()}
	return cfg.With(t).BeginningOfWeek()
}

// AddDays moves t by n calendar days, keeping the wall clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// SameDay reports whether a and b fall on the same calendar day, each read in
// its own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
