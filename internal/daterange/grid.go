package daterange

import (
	"slices"
	"time"
)

// Cell is one day of a month grid.
type Cell struct {
	Date    time.Time
	InMonth bool
}

// Weeks splits a MONTH-EXTENDED range into rows of seven days. When offsets
// made the length uneven the last row is shorter.
func (r Range) Weeks() ([][]time.Time, error) {
	if r.IsZero() {
		return nil, EmptyRange("split")
	}
	if r.spec.Kind != KindMonthExtended {
		return nil, InvalidParameter("range kind", r.spec.Kind, KindMonthExtended.String(), "only month-extended ranges split into weeks")
	}

	rows := make([][]time.Time, 0, (len(r.dates)+6)/7)
	for i := 0; i < len(r.dates); i += 7 {
		rows = append(rows, slices.Clone(r.dates[i:min(i+7, len(r.dates))]))
	}
	return rows, nil
}

// Grid is Weeks with every day flagged by whether it belongs to the month of
// the reference date, so renderers can blank the padding days.
func (r Range) Grid() ([][]Cell, error) {
	weeks, err := r.Weeks()
	if err != nil {
		return nil, err
	}

	year, month, _ := r.spec.RefDate.Date()
	grid := make([][]Cell, len(weeks))
	for i, week := range weeks {
		grid[i] = make([]Cell, len(week))
		for j, d := range week {
			y, m, _ := d.Date()
			grid[i][j] = Cell{Date: d, InMonth: y == year && m == month}
		}
	}
	return grid, nil
}
