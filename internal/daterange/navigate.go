package daterange

import (
	"github.com/xolan/calrange/internal/timeutil"
)

// Navigate derives the range that follows (DirectionNext) or precedes
// (DirectionPrevious) r. The new range is regenerated from a shifted
// reference date with the same parameters, so month lengths and leap years
// are handled by the generator instead of by shifting r's dates.
//
// Day ranges move by their day count and weeks by seven days. Month ranges
// re-anchor to the first of the neighbouring month, so a reference date of
// Jan 31 never overflows into March.
func Navigate(r Range, dir Direction) (Range, error) {
	if r.IsZero() {
		return Range{}, EmptyRange("navigate")
	}

	var sign int
	switch dir {
	case DirectionNext:
		sign = 1
	case DirectionPrevious:
		sign = -1
	default:
		return Range{}, InvalidParameter("direction", dir, "next or previous", "")
	}

	spec := r.spec
	switch spec.Kind {
	case KindDays:
		spec.RefDate = timeutil.AddDays(timeutil.StartOfDay(spec.RefDate), sign*spec.DaysCount)
	case KindWeek:
		spec.RefDate = timeutil.AddDays(timeutil.StartOfDay(spec.RefDate), sign*7)
	case KindMonthExact, KindMonthExtended:
		spec.RefDate = timeutil.StartOfMonth(spec.RefDate).AddDate(0, sign, 0)
	}

	next, err := Generate(spec)
	if err != nil {
		return Range{}, err
	}
	next.direction = dir
	return next, nil
}

// Next returns the range following r.
func (r Range) Next() (Range, error) {
	return Navigate(r, DirectionNext)
}

// Previous returns the range preceding r.
func (r Range) Previous() (Range, error) {
	return Navigate(r, DirectionPrevious)
}
