// Package service is the layer shared by the CLI and the browser. It fills
// in defaults from the configuration (today's date, the week start day),
// logs what it generates and delegates the calendar work to daterange.
package service

import (
	"time"

	"github.com/xolan/calrange/internal/daterange"
	"github.com/xolan/calrange/internal/timeutil"
)

// RangeRequest describes a range to generate. Nil and zero fields are
// filled from the configuration:
//   - RefDate: today in the configured timezone
//   - Weekday: the configured week_start_day
//   - DaysCount: 1 (only used for KindDays)
type RangeRequest struct {
	Kind        daterange.Kind
	RefDate     *time.Time
	Weekday     *timeutil.Weekday
	DaysCount   int
	StartOffset int
	EndOffset   int
}

// DaysLength returns the length of a DAYS range built from r: DaysCount, or
// one day when it is unset.
func (r RangeRequest) DaysLength() int {
	if r.DaysCount == 0 {
		return 1
	}
	return r.DaysCount
}

// ExtendRequest describes an ad-hoc extension of an arbitrary date list.
type ExtendRequest struct {
	Dates       []time.Time
	Unit        string
	StartOffset int
	EndOffset   int
}
