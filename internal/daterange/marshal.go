package daterange

import (
	"encoding/json"
	"time"
)

// descriptor is the serialized form of a Range. Kind and Direction encode
// through their MarshalText methods.
type descriptor struct {
	Kind        Kind      `json:"kind" yaml:"kind"`
	RefDate     string    `json:"ref_date" yaml:"ref_date"`
	Weekday     string    `json:"weekday" yaml:"weekday"`
	DaysCount   int       `json:"days_count,omitempty" yaml:"days_count,omitempty"`
	StartOffset int       `json:"start_offset" yaml:"start_offset"`
	EndOffset   int       `json:"end_offset" yaml:"end_offset"`
	Direction   Direction `json:"direction" yaml:"direction"`
	Length      int       `json:"length" yaml:"length"`
	Dates       []string  `json:"dates" yaml:"dates"`
}

func (r Range) descriptor() descriptor {
	dates := make([]string, len(r.dates))
	for i, d := range r.dates {
		dates[i] = d.Format(time.DateOnly)
	}

	return descriptor{
		Kind:        r.spec.Kind,
		RefDate:     r.spec.RefDate.Format(time.DateOnly),
		Weekday:     r.spec.Weekday.String(),
		DaysCount:   r.spec.DaysCount,
		StartOffset: r.spec.Offset.Start,
		EndOffset:   r.spec.Offset.End,
		Direction:   r.direction,
		Length:      len(r.dates),
		Dates:       dates,
	}
}

// MarshalJSON describes the range parameters and its dates as ISO days.
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.descriptor())
}

// MarshalYAML implements yaml.Marshaler with the same fields as MarshalJSON.
func (r Range) MarshalYAML() (any, error) {
	return r.descriptor(), nil
}
