package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Unit is a time unit used to shift dates when a sequence is extended.
type Unit string

const (
	UnitDay         Unit = "day"
	UnitHour        Unit = "hour"
	UnitMillisecond Unit = "millisecond"
	UnitMinute      Unit = "minute"
	UnitMonth       Unit = "month"
	UnitQuarter     Unit = "quarter"
	UnitSecond      Unit = "second"
	UnitWeek        Unit = "week"
	UnitYear        Unit = "year"
)

var units = []Unit{
	UnitDay,
	UnitHour,
	UnitMillisecond,
	UnitMinute,
	UnitMonth,
	UnitQuarter,
	UnitSecond,
	UnitWeek,
	UnitYear,
}

// Units returns the recognized units in alphabetical order.
func Units() []Unit {
	out := make([]Unit, len(units))
	copy(out, units)
	return out
}

// UnitLabels returns every accepted label, singular and plural.
func UnitLabels() []string {
	labels := make([]string, 0, len(units)*2)
	for _, u := range units {
		labels = append(labels, string(u), string(u)+"s")
	}
	return labels
}

// Valid reports whether u is one of the recognized units.
func (u Unit) Valid() bool {
	for _, known := range units {
		if u == known {
			return true
		}
	}
	return false
}

// IsCalendar reports whether u is measured in calendar days rather than as
// an absolute duration.
func (u Unit) IsCalendar() bool {
	switch u {
	case UnitDay, UnitWeek, UnitMonth, UnitQuarter, UnitYear:
		return true
	}
	return false
}

// ParseUnit resolves a unit label such as "day" or "weeks".
func ParseUnit(label string) (Unit, error) {
	s := strings.ToLower(strings.TrimSpace(label))
	u := Unit(strings.TrimSuffix(s, "s"))
	if s == "" || !u.Valid() {
		return "", fmt.Errorf("invalid time unit '%s' (use one of: %s)", label, strings.Join(UnitLabels(), ", "))
	}
	return u, nil
}

// Shift moves t by n units. Calendar units keep the wall clock time, and
// month based units clamp to the last day of the target month, so Jan 31
// shifted by one month is Feb 28 (or 29).
func Shift(t time.Time, u Unit, n int) time.Time {
	switch u {
	case UnitDay:
		return t.AddDate(0, 0, n)
	case UnitWeek:
		return t.AddDate(0, 0, 7*n)
	case UnitMonth:
		return addMonths(t, n)
	case UnitQuarter:
		return addMonths(t, 3*n)
	case UnitYear:
		return addMonths(t, 12*n)
	case UnitHour:
		return t.Add(time.Duration(n) * time.Hour)
	case UnitMinute:
		return t.Add(time.Duration(n) * time.Minute)
	case UnitSecond:
		return t.Add(time.Duration(n) * time.Second)
	case UnitMillisecond:
		return t.Add(time.Duration(n) * time.Millisecond)
	}
	return t
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := DaysInMonth(first); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
