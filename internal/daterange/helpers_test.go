package daterange

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xolan/calrange/internal/timeutil"
)

// date returns midnight UTC of the given day.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// isoDates renders dates as YYYY-MM-DD for readable comparisons.
func isoDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(time.DateOnly)
	}
	return out
}

// requireContiguous asserts each date is exactly one calendar day after its predecessor.
func requireContiguous(t *testing.T, dates []time.Time) {
	t.Helper()
	for i := 1; i < len(dates); i++ {
		require.Equal(t, timeutil.AddDays(dates[i-1], 1), dates[i], "dates[%d] should follow dates[%d]", i, i-1)
	}
}

// randomDates returns n reproducible reference dates between 1970 and 2069
// with random clock times.
func randomDates(n int) []time.Time {
	rng := rand.New(rand.NewSource(20200110))
	out := make([]time.Time, n)
	for i := range out {
		out[i] = time.Date(1970+rng.Intn(100), time.Month(1+rng.Intn(12)), 1+rng.Intn(31),
			rng.Intn(24), rng.Intn(60), rng.Intn(60), 0, time.UTC)
	}
	return out
}

// allWeekdays lists Monday through Sunday.
func allWeekdays() []timeutil.Weekday {
	return []timeutil.Weekday{
		timeutil.Monday, timeutil.Tuesday, timeutil.Wednesday, timeutil.Thursday,
		timeutil.Friday, timeutil.Saturday, timeutil.Sunday,
	}
}
