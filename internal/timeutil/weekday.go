package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is an ISO-8601 weekday number: 1 is Monday, 7 is Sunday.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Valid reports whether d is within 1..7.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return "Weekday(" + strconv.Itoa(int(d)) + ")"
	}
	return weekdayNames[d]
}

// Short returns the three letter abbreviation, e.g. "Mon".
func (d Weekday) Short() string {
	if !d.Valid() {
		return d.String()
	}
	return weekdayNames[d][:3]
}

// Time converts d to the standard library representation (Sunday == 0).
func (d Weekday) Time() time.Weekday {
	return time.Weekday(int(d) % 7)
}

// Closing returns the weekday that ends a week beginning on d.
func (d Weekday) Closing() Weekday {
	if d == Monday {
		return Sunday
	}
	return d - 1
}

// ISOWeekday returns the weekday of t, Monday=1 through Sunday=7.
func ISOWeekday(t time.Time) Weekday {
	return FromTimeWeekday(t.Weekday())
}

// FromTimeWeekday converts a time.Weekday into an ISO weekday.
func FromTimeWeekday(w time.Weekday) Weekday {
	return Weekday((int(w)+6)%7 + 1)
}

// ParseWeekday accepts a full English weekday name, its three letter
// abbreviation or the ISO number 1-7. Matching is case-insensitive.
func ParseWeekday(input string) (Weekday, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return 0, fmt.Errorf("weekday cannot be empty (use a name like 'monday' or a number 1-7)")
	}

	if n, err := strconv.Atoi(s); err == nil {
		d := Weekday(n)
		if !d.Valid() {
			return 0, fmt.Errorf("invalid weekday number %d: must be between 1 (Monday) and 7 (Sunday)", n)
		}
		return d, nil
	}

	for d := Monday; d <= Sunday; d++ {
		name := strings.ToLower(weekdayNames[d])
		if s == name || s == name[:3] {
			return d, nil
		}
	}

	return 0, fmt.Errorf("invalid weekday '%s' (use monday..sunday, mon..sun or 1-7)", input)
}
