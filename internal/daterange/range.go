// Package daterange generates calendar-aligned date sequences: a run of
// days, a week, an exact month or a month padded to whole weeks. Ranges can
// be grown or trimmed at either end and stepped forward or backward to the
// neighbouring range of the same shape.
//
// A Range is an immutable value. Generators and Navigate always return a new
// Range and Dates hands out a copy, so two ranges never share storage. The
// zero Range is the "not generated yet" state and is rejected by Navigate.
package daterange

import (
	"fmt"
	"slices"
	"time"

	"github.com/xolan/calrange/internal/timeutil"
)

// Offset is the number of days to add (positive) or remove (negative) at
// the start and end of a generated range.
type Offset struct {
	Start int
	End   int
}

// IsZero reports whether the offset leaves the base range untouched.
func (o Offset) IsZero() bool {
	return o.Start == 0 && o.End == 0
}

// Spec holds every parameter a generator needs. Weekday only matters for
// KindWeek and KindMonthExtended, DaysCount only for KindDays, but both are
// kept on every range so Navigate can hand them back to the generator.
type Spec struct {
	Kind      Kind
	RefDate   time.Time
	Weekday   timeutil.Weekday
	DaysCount int
	Offset    Offset
}

// Range is a generated date sequence together with the parameters that
// produced it.
type Range struct {
	spec      Spec
	dates     []time.Time
	direction Direction
}

// Spec returns the generation parameters.
func (r Range) Spec() Spec { return r.spec }

// Kind returns the shape of the range, KindNone for the zero Range.
func (r Range) Kind() Kind { return r.spec.Kind }

// RefDate returns the reference date the range was computed from.
func (r Range) RefDate() time.Time { return r.spec.RefDate }

// Weekday returns the weekday the range is aligned to.
func (r Range) Weekday() timeutil.Weekday { return r.spec.Weekday }

// DaysCount returns the base length of a KindDays range.
func (r Range) DaysCount() int { return r.spec.DaysCount }

// StartOffset returns the offset applied before the first date.
func (r Range) StartOffset() int { return r.spec.Offset.Start }

// EndOffset returns the offset applied after the last date.
func (r Range) EndOffset() int { return r.spec.Offset.End }

// Direction returns how the range was produced.
func (r Range) Direction() Direction { return r.direction }

// IsZero reports whether r was never generated.
func (r Range) IsZero() bool { return r.spec.Kind == KindNone }

// Dates returns a copy of the dates in ascending order.
func (r Range) Dates() []time.Time { return slices.Clone(r.dates) }

// Len returns the number of dates.
func (r Range) Len() int { return len(r.dates) }

// First returns the earliest date, or the zero time for an empty range.
func (r Range) First() time.Time {
	if len(r.dates) == 0 {
		return time.Time{}
	}
	return r.dates[0]
}

// Last returns the latest date, or the zero time for an empty range.
func (r Range) Last() time.Time {
	if len(r.dates) == 0 {
		return time.Time{}
	}
	return r.dates[len(r.dates)-1]
}

// Index returns the position of the date falling on the same calendar day as
// t, or -1 if the range does not cover that day.
func (r Range) Index(t time.Time) int {
	for i, d := range r.dates {
		if timeutil.SameDay(d, t.In(d.Location())) {
			return i
		}
	}
	return -1
}

// Contains reports whether the range covers the calendar day of t.
func (r Range) Contains(t time.Time) bool {
	return r.Index(t) >= 0
}

func (r Range) String() string {
	if r.IsZero() {
		return KindNone.String()
	}
	return fmt.Sprintf("%s %s..%s (%d days)", r.spec.Kind, r.First().Format(time.DateOnly), r.Last().Format(time.DateOnly), len(r.dates))
}
