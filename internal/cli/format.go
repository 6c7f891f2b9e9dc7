// Package cli renders ranges for the command line in the formats accepted
// by --output: text, json, yaml and grid.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/calrange/internal/config"
	"github.com/xolan/calrange/internal/daterange"
	"github.com/xolan/calrange/internal/timeutil"
	"gopkg.in/yaml.v3"
)

// Render writes r to w in the given format. An empty format means text.
func Render(w io.Writer, r daterange.Range, format string) error {
	switch strings.ToLower(format) {
	case "", config.FormatText:
		return FormatText(w, r)
	case config.FormatJSON:
		return FormatJSON(w, r)
	case config.FormatYAML:
		return FormatYAML(w, r)
	case config.FormatGrid:
		return FormatGrid(w, r)
	}
	return fmt.Errorf("unknown output format %q (use %s)", format, strings.Join(config.OutputFormats(), ", "))
}

// FormatText writes a summary line followed by one date per line
func FormatText(w io.Writer, r daterange.Range) error {
	if _, err := fmt.Fprintln(w, r.String()); err != nil {
		return err
	}

	ref := r.RefDate()
	for _, d := range r.Dates() {
		marker := " "
		if timeutil.SameDay(d, ref.In(d.Location())) {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", marker, d.Format(time.DateOnly), timeutil.ISOWeekday(d).Short()); err != nil {
			return err
		}
	}
	return nil
}

// FormatJSON writes r as an indented JSON object, see daterange.Range.MarshalJSON
func FormatJSON(w io.Writer, r daterange.Range) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// FormatYAML writes r as a YAML document
func FormatYAML(w io.Writer, r daterange.Range) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// FormatDates writes one date per line. Sub-day units also print the clock.
func FormatDates(w io.Writer, dates []time.Time, withClock bool) error {
	layout := time.DateOnly
	if withClock {
		layout = "2006-01-02 15:04:05"
	}
	for _, d := range dates {
		if _, err := fmt.Fprintln(w, d.Format(layout)); err != nil {
			return err
		}
	}
	return nil
}

var (
	gridTitleStyle  = lipgloss.NewStyle().Bold(true)
	gridHeaderStyle = lipgloss.NewStyle().Width(4).Align(lipgloss.Right).Bold(true)
	gridDayStyle    = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	gridOutStyle    = gridDayStyle.Faint(true)
	gridRefStyle    = gridDayStyle.Underline(true)
)

// FormatGrid writes r as a calendar with one week per row. Days outside
// the reference month of a MONTH-EXTENDED range are dimmed.
func FormatGrid(w io.Writer, r daterange.Range) error {
	rows, err := GridRows(r)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(gridTitleStyle.Render(GridTitle(r)))
	b.WriteString("\n")

	if header := GridHeader(rows); header != nil {
		cells := make([]string, len(header))
		for i, wd := range header {
			cells[i] = gridHeaderStyle.Render(wd.Short())
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	ref := r.RefDate()
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := gridDayStyle
			switch {
			case !cell.InMonth:
				style = gridOutStyle
			case timeutil.SameDay(cell.Date, ref.In(cell.Date.Location())):
				style = gridRefStyle
			}
			cells[i] = style.Render(fmt.Sprintf("%d", cell.Date.Day()))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	_, err = io.WriteString(w, b.String())
	return err
}

// GridRows uses the month grid for MONTH-EXTENDED ranges and plain rows of
// seven for every other kind.
func GridRows(r daterange.Range) ([][]daterange.Cell, error) {
	if r.Kind() == daterange.KindMonthExtended {
		return r.Grid()
	}

	dates := r.Dates()
	rows := make([][]daterange.Cell, 0, (len(dates)+6)/7)
	for i := 0; i < len(dates); i += 7 {
		row := make([]daterange.Cell, 0, 7)
		for _, d := range dates[i:min(i+7, len(dates))] {
			row = append(row, daterange.Cell{Date: d, InMonth: true})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GridTitle names the month for month ranges and describes the range otherwise.
func GridTitle(r daterange.Range) string {
	switch r.Kind() {
	case daterange.KindMonthExact, daterange.KindMonthExtended:
		return r.RefDate().Format("January 2006")
	}
	return r.String()
}

// GridHeader returns the seven column weekdays, starting at the weekday of
// the first cell. It returns nil for an empty grid.
func GridHeader(rows [][]daterange.Cell) []timeutil.Weekday {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}

	first := timeutil.ISOWeekday(rows[0][0].Date)
	header := make([]timeutil.Weekday, 7)
	for i := range header {
		header[i] = timeutil.Weekday((int(first)-1+i)%7 + 1)
	}
	return header
}
