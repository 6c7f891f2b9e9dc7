package daterange

import (
	"fmt"
	"strings"
)

// Kind identifies the generator that produced a Range.
type Kind int

const (
	KindNone Kind = iota
	KindDays
	KindWeek
	KindMonthExact
	KindMonthExtended
)

var kindNames = map[Kind]string{
	KindNone:          "NONE",
	KindDays:          "DAYS",
	KindWeek:          "WEEK",
	KindMonthExact:    "MONTH-EXACT",
	KindMonthExtended: "MONTH-EXTENDED",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind accepts the labels produced by Kind.String, case-insensitively,
// plus "month" as shorthand for MONTH-EXACT. Underscores work as separators.
func ParseKind(s string) (Kind, error) {
	label := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "_", "-")
	switch label {
	case "DAYS", "DAY":
		return KindDays, nil
	case "WEEK":
		return KindWeek, nil
	case "MONTH-EXACT", "MONTH":
		return KindMonthExact, nil
	case "MONTH-EXTENDED":
		return KindMonthExtended, nil
	}
	return KindNone, InvalidParameter("range kind", s, "one of DAYS, WEEK, MONTH-EXACT, MONTH-EXTENDED", "")
}

// Direction records how a Range was produced.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionNext
	DirectionPrevious
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionNext:
		return "next"
	case DirectionPrevious:
		return "previous"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
