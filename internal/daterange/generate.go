package daterange

import (
	"time"

	"github.com/xolan/calrange/internal/timeutil"
)

// DefaultWeekday is stored on ranges whose shape ignores the weekday.
const DefaultWeekday = timeutil.Monday

// Generate dispatches to the generator matching spec.Kind.
func Generate(spec Spec) (Range, error) {
	switch spec.Kind {
	case KindDays:
		return Days(spec.RefDate, spec.DaysCount, spec.Offset)
	case KindWeek:
		return Week(spec.RefDate, spec.Weekday, spec.Offset)
	case KindMonthExact:
		return MonthExact(spec.RefDate, spec.Offset)
	case KindMonthExtended:
		return MonthExtended(spec.RefDate, spec.Weekday, spec.Offset)
	}
	return Range{}, InvalidParameter("range kind", spec.Kind, "one of DAYS, WEEK, MONTH-EXACT, MONTH-EXTENDED", "")
}

// Days returns daysCount consecutive days starting on the day of ref.
func Days(ref time.Time, daysCount int, off Offset) (Range, error) {
	if daysCount < 1 {
		return Range{}, InvalidParameter("daysCount", daysCount, "a positive integer", "")
	}

	start := timeutil.StartOfDay(ref)
	dates := make([]time.Time, 0, daysCount)
	for i := 0; i < daysCount; i++ {
		dates = append(dates, timeutil.AddDays(start, i))
	}

	return build(Spec{
		Kind:      KindDays,
		RefDate:   ref,
		Weekday:   DefaultWeekday,
		DaysCount: daysCount,
		Offset:    off,
	}, dates)
}

// Week returns the seven days of the week containing ref, where weeks begin
// on weekday.
func Week(ref time.Time, weekday timeutil.Weekday, off Offset) (Range, error) {
	if err := checkWeekday(weekday); err != nil {
		return Range{}, err
	}

	start := timeutil.StartOfWeek(ref, weekday)

	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, timeutil.AddDays(start, i))
	}

	return build(Spec{
		Kind:    KindWeek,
		RefDate: ref,
		Weekday: weekday,
		Offset:  off,
	}, dates)
}

// MonthExact returns every day of the calendar month containing ref.
func MonthExact(ref time.Time, off Offset) (Range, error) {
	return build(Spec{
		Kind:    KindMonthExact,
		RefDate: ref,
		Weekday: DefaultWeekday,
		Offset:  off,
	}, daysBetween(timeutil.StartOfMonth(ref), timeutil.LastDayOfMonth(ref)))
}

// MonthExtended returns the month containing ref padded at both ends to
// whole weeks beginning on weekday. The result always spans 4 to 6 weeks.
func MonthExtended(ref time.Time, weekday timeutil.Weekday, off Offset) (Range, error) {
	if err := checkWeekday(weekday); err != nil {
		return Range{}, err
	}

	start := timeutil.StartOfWeek(timeutil.StartOfMonth(ref), weekday)

	dates := daysBetween(start, timeutil.LastDayOfMonth(ref))
	closing := weekday.Closing()
	for timeutil.ISOWeekday(dates[len(dates)-1]) != closing {
		dates = append(dates, timeutil.AddDays(dates[len(dates)-1], 1))
	}

	return build(Spec{
		Kind:    KindMonthExtended,
		RefDate: ref,
		Weekday: weekday,
		Offset:  off,
	}, dates)
}

// daysBetween lists every day from start through end inclusive.
func daysBetween(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = timeutil.AddDays(d, 1) {
		dates = append(dates, d)
	}
	return dates
}

func checkWeekday(weekday timeutil.Weekday) error {
	if !weekday.Valid() {
		return InvalidParameter("weekday", int(weekday), "an integer from 1 (Monday) to 7 (Sunday)", "")
	}
	return nil
}

func build(spec Spec, dates []time.Time) (Range, error) {
	if !spec.Offset.IsZero() {
		extended, err := Extend(dates, timeutil.UnitDay, spec.Offset.Start, spec.Offset.End)
		if err != nil {
			return Range{}, err
		}
		dates = extended
	}
	return Range{spec: spec, dates: dates}, nil
}
