package daterange

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xolan/calrange/internal/timeutil"
)

func TestNavigate(t *testing.T) {
	tests := []struct {
		name  string
		spec  Spec
		dir   Direction
		first string
		last  string
	}{
		{
			name:  "week next",
			spec:  Spec{Kind: KindWeek, RefDate: date(2020, 1, 10), Weekday: timeutil.Monday},
			dir:   DirectionNext,
			first: "2020-01-13", last: "2020-01-19",
		},
		{
			name:  "week previous crosses year",
			spec:  Spec{Kind: KindWeek, RefDate: date(2020, 1, 10), Weekday: timeutil.Monday},
			dir:   DirectionPrevious,
			first: "2019-12-30", last: "2020-01-05",
		},
		{
			name:  "week next keeps offsets",
			spec:  Spec{Kind: KindWeek, RefDate: date(2020, 1, 10), Weekday: timeutil.Monday, Offset: Offset{Start: 1, End: 1}},
			dir:   DirectionNext,
			first: "2020-01-12", last: "2020-01-20",
		},
		{
			name:  "days next",
			spec:  Spec{Kind: KindDays, RefDate: date(2020, 1, 10), DaysCount: 3},
			dir:   DirectionNext,
			first: "2020-01-13", last: "2020-01-15",
		},
		{
			name:  "days previous",
			spec:  Spec{Kind: KindDays, RefDate: date(2020, 3, 1), DaysCount: 2},
			dir:   DirectionPrevious,
			first: "2020-02-28", last: "2020-02-29",
		},
		{
			name:  "month exact next from the 31st",
			spec:  Spec{Kind: KindMonthExact, RefDate: date(2023, 1, 31)},
			dir:   DirectionNext,
			first: "2023-02-01", last: "2023-02-28",
		},
		{
			name:  "month exact previous crosses year",
			spec:  Spec{Kind: KindMonthExact, RefDate: date(2023, 1, 31)},
			dir:   DirectionPrevious,
			first: "2022-12-01", last: "2022-12-31",
		},
		{
			name:  "month extended next",
			spec:  Spec{Kind: KindMonthExtended, RefDate: date(2023, 6, 4), Weekday: timeutil.Monday},
			dir:   DirectionNext,
			first: "2023-06-26", last: "2023-08-06",
		},
		{
			name:  "month extended previous",
			spec:  Spec{Kind: KindMonthExtended, RefDate: date(2023, 6, 4), Weekday: timeutil.Monday},
			dir:   DirectionPrevious,
			first: "2023-05-01", last: "2023-06-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Generate(tt.spec)
			require.NoError(t, err)

			moved, err := Navigate(r, tt.dir)
			require.NoError(t, err)

			assert.Equal(t, tt.first, moved.First().Format(time.DateOnly))
			assert.Equal(t, tt.last, moved.Last().Format(time.DateOnly))
			assert.Equal(t, tt.dir, moved.Direction())
			assert.Equal(t, r.Kind(), moved.Kind())
			assert.Equal(t, r.Weekday(), moved.Weekday())
			assert.Equal(t, r.DaysCount(), moved.DaysCount())
			assert.Equal(t, r.Spec().Offset, moved.Spec().Offset)
			requireContiguous(t, moved.Dates())
		})
	}
}

func TestNavigate_MethodsMatchFunction(t *testing.T) {
	r, err := Week(date(2020, 1, 10), timeutil.Monday, Offset{})
	require.NoError(t, err)

	next, err := r.Next()
	require.NoError(t, err)
	viaFunc, err := Navigate(r, DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, viaFunc, next)

	prev, err := r.Previous()
	require.NoError(t, err)
	assert.Equal(t, DirectionPrevious, prev.Direction())
}

func TestNavigate_DoesNotModifyOriginal(t *testing.T) {
	r, err := MonthExtended(date(2023, 6, 4), timeutil.Monday, Offset{})
	require.NoError(t, err)
	before := isoDates(r.Dates())

	_, err = r.Next()
	require.NoError(t, err)

	assert.Equal(t, before, isoDates(r.Dates()))
	assert.Equal(t, DirectionNone, r.Direction())
	assert.Equal(t, date(2023, 6, 4), r.RefDate())
}

func TestNavigate_RoundTrip(t *testing.T) {
	for _, ref := range randomDates(30) {
		for _, spec := range []Spec{
			{Kind: KindDays, RefDate: ref, DaysCount: 5, Offset: Offset{Start: 1}},
			{Kind: KindWeek, RefDate: ref, Weekday: timeutil.Sunday, Offset: Offset{End: -2}},
			{Kind: KindMonthExact, RefDate: ref},
			{Kind: KindMonthExtended, RefDate: ref, Weekday: timeutil.Tuesday, Offset: Offset{Start: 3, End: 3}},
		} {
			r, err := Generate(spec)
			require.NoError(t, err)

			next, err := r.Next()
			require.NoError(t, err)
			back, err := next.Previous()
			require.NoError(t, err)
			assert.Equal(t, isoDates(r.Dates()), isoDates(back.Dates()), "%s from %s", spec.Kind, ref)

			prev, err := r.Previous()
			require.NoError(t, err)
			forward, err := prev.Next()
			require.NoError(t, err)
			assert.Equal(t, isoDates(r.Dates()), isoDates(forward.Dates()), "%s from %s", spec.Kind, ref)
		}
	}
}

func TestNavigate_WeeksAreAdjacent(t *testing.T) {
	r, err := Week(date(2021, 12, 29), timeutil.Thursday, Offset{})
	require.NoError(t, err)

	for i := 0; i < 60; i++ {
		next, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, timeutil.AddDays(r.Last(), 1), next.First())
		r = next
	}
}

func TestNavigate_MonthsAreSequential(t *testing.T) {
	r, err := MonthExact(date(2023, 1, 31), Offset{})
	require.NoError(t, err)

	for i := 0; i < 24; i++ {
		next, err := r.Next()
		require.NoError(t, err)
		assert.Equal(t, timeutil.AddDays(r.Last(), 1), next.First())
		assert.Equal(t, 1, next.First().Day())
		r = next
	}
	assert.Equal(t, "2025-01-01", r.First().Format(time.DateOnly))
}

func TestNavigate_Errors(t *testing.T) {
	t.Run("zero range", func(t *testing.T) {
		_, err := Navigate(Range{}, DirectionNext)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyRange))
		assert.Contains(t, err.Error(), "navigate")

		_, err = Range{}.Previous()
		assert.True(t, errors.Is(err, ErrEmptyRange))
	})

	t.Run("no direction", func(t *testing.T) {
		r, err := Days(date(2020, 1, 1), 1, Offset{})
		require.NoError(t, err)

		for _, dir := range []Direction{DirectionNone, Direction(7)} {
			_, err = Navigate(r, dir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter))

			var paramErr *Error
			require.True(t, errors.As(err, &paramErr))
			assert.Equal(t, "direction", paramErr.Param)
		}
	})
}
