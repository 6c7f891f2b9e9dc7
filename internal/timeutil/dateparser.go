package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

var (
	yearOnlyRe      = regexp.MustCompile(`^\d{4}$`)
	isoPartialRe    = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
	isoPartialDayRe = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)
	euroPartialRe   = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)
	tooManyPartsRe  = regexp.MustCompile(`^\d+[-/]\d+[-/]\d+[-/]`)
)

// dateTimeLayouts are tried in order by ParseDateTime after the plain date formats fail.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseDate parses a date string in YYYY-MM-DD or DD/MM/YYYY format and
// returns midnight of that day in loc. A nil loc means time.Local.
//
// Valid inputs:
//   - "2024-01-15" (ISO format)
//   - "15/01/2024" (European format)
//
// Invalid inputs return an error with suggested formats.
func ParseDate(input string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)")
	}

	// ISO first so ambiguous inputs resolve the same way every time
	if t, err := time.ParseInLocation("2006-01-02", input, loc); err == nil {
		return StartOfDay(t), nil
	}
	if t, err := time.ParseInLocation("02/01/2006", input, loc); err == nil {
		return StartOfDay(t), nil
	}

	return time.Time{}, buildDateParseError(input)
}

// ParseDateTime parses either a plain date (see ParseDate) or a date with a
// clock time, e.g. "2024-01-15 09:30" or an RFC 3339 timestamp. Inputs without
// an explicit offset are read in loc.
func ParseDateTime(input string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if t, err := ParseDate(input, loc); err == nil {
		return t, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date or time '%s' (use YYYY-MM-DD, 'YYYY-MM-DD HH:MM' or RFC 3339)", input)
}

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", input, input)
	case isoPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", input, input)
	case isoPartialDayRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-%s)", input, input)
	case euroPartialRe.MatchString(input):
		return fmt.Errorf("incomplete date '%s': missing year (use format DD/MM/YYYY, e.g., %s/2024)", input, input)
	case tooManyPartsRe.MatchString(input):
		return fmt.Errorf("invalid date '%s': too many date parts (use format YYYY-MM-DD or DD/MM/YYYY)", input)
	default:
		return fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)", input)
	}
}
