package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// CellWidth is the width of one day cell in the calendar grid
const CellWidth = 4

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Header
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Calendar grid
	WeekdayHeader lipgloss.Style
	Day           lipgloss.Style
	DayOutside    lipgloss.Style
	DayRef        lipgloss.Style
	DayToday      lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
	StatusHelp  lipgloss.Style

	// Messages
	Error lipgloss.Style
	Info  lipgloss.Style
}

// palette maps semantic roles to terminal colors
type palette struct {
	primary    lipgloss.TerminalColor
	secondary  lipgloss.TerminalColor
	accent     lipgloss.TerminalColor
	muted      lipgloss.TerminalColor
	success    lipgloss.TerminalColor
	errorColor lipgloss.TerminalColor
	fg         lipgloss.TerminalColor
	bg         lipgloss.TerminalColor
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:    lipgloss.Color("99"),  // Purple
		secondary:  lipgloss.Color("39"),  // Cyan
		accent:     lipgloss.Color("212"), // Pink
		muted:      lipgloss.Color("240"), // Gray
		success:    lipgloss.Color("82"),  // Green
		errorColor: lipgloss.Color("196"), // Red
		fg:         lipgloss.Color("252"),
		bg:         lipgloss.Color("236"),
	})
}

// NewStylesFromRegistry creates Styles using colors of the registry's current theme.
// Titles use purple, weekday headers and keys cyan, the reference day
// bright purple and days outside the month bright black.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:    r.Purple(),
		secondary:  r.Cyan(),
		accent:     r.BrightPurple(),
		muted:      r.BrightBlack(),
		success:    r.Green(),
		errorColor: r.Red(),
		fg:         r.Fg(),
		bg:         r.Bg(),
	})
}

func newStyles(p palette) Styles {
	cell := lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Right)

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.muted).
			MarginBottom(1),

		WeekdayHeader: cell.
			Foreground(p.secondary).
			Bold(true),
		Day: cell.
			Foreground(p.fg),
		DayOutside: cell.
			Foreground(p.muted).
			Faint(true),
		DayRef: cell.
			Foreground(p.accent).
			Bold(true).
			Underline(true),
		DayToday: cell.
			Foreground(p.success).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().
			Foreground(p.fg),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		Error: lipgloss.NewStyle().
			Foreground(p.errorColor),
		Info: lipgloss.NewStyle().
			Foreground(p.success),
	}
}
