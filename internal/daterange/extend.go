package daterange

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/calrange/internal/timeutil"
)

// Extend grows or trims an ascending date sequence at both ends.
//
// A positive startOffset prepends that many dates stepping back from the
// original first date in unit steps; a negative one drops dates from the
// front. endOffset does the same at the tail. New dates are always computed
// from the original boundary, never from a date that was just added.
//
// All limits are checked before anything is built, so Extend either returns
// a complete sequence or an error. The input slice is never modified.
func Extend(dates []time.Time, unit timeutil.Unit, startOffset, endOffset int) ([]time.Time, error) {
	if len(dates) == 0 {
		return nil, InvalidParameter("dates", "[]", "a non-empty sequence of dates", "")
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return nil, InvalidParameter("dates", formatDate(dates[i]), "strictly ascending dates without duplicates",
				fmt.Sprintf("element %d does not follow %s", i, formatDate(dates[i-1])))
		}
	}
	if !unit.Valid() {
		return nil, invalidUnit(string(unit))
	}

	n := len(dates)
	if n+endOffset < 1 {
		return nil, RangeExceeded("endOffset", endOffset, n,
			fmt.Sprintf("negative endOffset (%d) exceeds the date range length (%d)", endOffset, n))
	}
	if n+startOffset < 1 {
		return nil, RangeExceeded("startOffset", startOffset, n,
			fmt.Sprintf("negative startOffset (%d) exceeds the date range length (%d)", startOffset, n))
	}
	if startOffset < 0 && endOffset < 0 && n+startOffset+endOffset < 1 {
		return nil, RangeExceeded("startOffset+endOffset", startOffset+endOffset, n,
			fmt.Sprintf("negative startOffset (%d) and endOffset (%d) together exceed the date range length (%d)", startOffset, endOffset, n))
	}

	lo, hi := 0, n
	if startOffset < 0 {
		lo = -startOffset
	}
	if endOffset < 0 {
		hi = n + endOffset
	}

	first, last := dates[0], dates[n-1]
	out := make([]time.Time, 0, max(startOffset, 0)+hi-lo+max(endOffset, 0))
	for i := startOffset; i >= 1; i-- {
		out = append(out, timeutil.Shift(first, unit, -i))
	}
	out = append(out, dates[lo:hi]...)
	for i := 1; i <= endOffset; i++ {
		out = append(out, timeutil.Shift(last, unit, i))
	}
	return out, nil
}

// ExtendLabel is Extend with the unit given as a label such as "days" or
// "week".
func ExtendLabel(dates []time.Time, label string, startOffset, endOffset int) ([]time.Time, error) {
	unit, err := timeutil.ParseUnit(label)
	if err != nil {
		return nil, invalidUnit(label)
	}
	return Extend(dates, unit, startOffset, endOffset)
}

func invalidUnit(label string) *Error {
	return InvalidParameter("time unit", fmt.Sprintf("%q", label), "one of "+strings.Join(timeutil.UnitLabels(), ", "), "")
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02T15:04:05Z07:00")
}
