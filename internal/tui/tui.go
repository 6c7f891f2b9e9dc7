// Package tui provides the interactive calendar browser of calrange.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/calrange/internal/cli"
	"github.com/xolan/calrange/internal/daterange"
	"github.com/xolan/calrange/internal/service"
	"github.com/xolan/calrange/internal/timeutil"
	"github.com/xolan/calrange/internal/tui/ui"
)

// DefaultDaysCount is the day count the browse command starts with. New
// itself resolves an unset count like the range service does.
const DefaultDaysCount = 7

// Model is the root TUI model
type Model struct {
	// Services
	services *service.Services

	// Range state
	rng       daterange.Range
	weekday   timeutil.Weekday
	daysCount int

	// UI state
	width  int
	height int
	err    error
	status string
	help   help.Model

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a browser showing the range described by req
func New(services *service.Services, req service.RangeRequest) (Model, error) {
	rng, err := services.Range.Generate(req)
	if err != nil {
		return Model{}, err
	}

	weekday := services.Range.WeekStart()
	if req.Weekday != nil {
		weekday = *req.Weekday
	}

	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)

	return Model{
		services:      services,
		rng:           rng,
		weekday:       weekday,
		daysCount:     req.DaysLength(),
		help:          help.New(),
		themeProvider: themeProvider,
		styles:        themeProvider.Styles(),
		keys:          ui.DefaultKeyMap(),
	}, nil
}

// Range returns the range currently shown
func (m Model) Range() daterange.Range {
	return m.rng
}

// Err returns the error of the last rejected action, if any
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ui.ThemeSavedMsg:
		if msg.Err != nil {
			m.err = fmt.Errorf("failed to save theme: %w", msg.Err)
			return m, nil
		}
		m.status = "Theme saved: " + msg.ThemeName
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	off := daterange.Offset{Start: m.rng.StartOffset(), End: m.rng.EndOffset()}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		name := m.themeProvider.NextTheme()
		m.styles = m.themeProvider.Styles()
		m.err = nil
		m.status = "Theme: " + m.themeProvider.CurrentDisplayName()
		return m, m.saveThemeConfig(name)

	case key.Matches(msg, m.keys.Next):
		return m.apply(m.services.Range.Next(m.rng))

	case key.Matches(msg, m.keys.Previous):
		return m.apply(m.services.Range.Previous(m.rng))

	case key.Matches(msg, m.keys.Today):
		return m.apply(m.services.Range.Generate(m.request(m.rng.Kind(), m.services.Range.Today(), off)))

	case key.Matches(msg, m.keys.Days):
		return m.switchKind(daterange.KindDays)

	case key.Matches(msg, m.keys.Week):
		return m.switchKind(daterange.KindWeek)

	case key.Matches(msg, m.keys.MonthExact):
		return m.switchKind(daterange.KindMonthExact)

	case key.Matches(msg, m.keys.MonthExtended):
		return m.switchKind(daterange.KindMonthExtended)

	case key.Matches(msg, m.keys.GrowEnd):
		off.End++
	case key.Matches(msg, m.keys.ShrinkEnd):
		off.End--
	case key.Matches(msg, m.keys.GrowStart):
		off.Start++
	case key.Matches(msg, m.keys.ShrinkStart):
		off.Start--
	case key.Matches(msg, m.keys.ResetOffsets):
		off = daterange.Offset{}

	default:
		return m, nil
	}

	return m.apply(m.services.Range.Regenerate(m.rng, off))
}

// switchKind regenerates the range with a new shape around the same
// reference date, dropping the offsets
func (m Model) switchKind(kind daterange.Kind) (tea.Model, tea.Cmd) {
	return m.apply(m.services.Range.Generate(m.request(kind, m.rng.RefDate(), daterange.Offset{})))
}

func (m Model) request(kind daterange.Kind, ref time.Time, off daterange.Offset) service.RangeRequest {
	weekday := m.weekday
	return service.RangeRequest{
		Kind:        kind,
		RefDate:     &ref,
		Weekday:     &weekday,
		DaysCount:   m.daysCount,
		StartOffset: off.Start,
		EndOffset:   off.End,
	}
}

// apply shows r, or keeps the current range and reports err
func (m Model) apply(r daterange.Range, err error) (tea.Model, tea.Cmd) {
	m.status = ""
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.rng = r
	return m, nil
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		return ui.ThemeSavedMsg{ThemeName: themeName, Err: m.services.Config.Update(cfg)}
	}
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(cli.GridTitle(m.rng)))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(m.rng.String()))
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.App.Render(b.String())
}

// renderGrid renders the weekday header and one line per week
func (m Model) renderGrid() string {
	rows, err := cli.GridRows(m.rng)
	if err != nil {
		return m.styles.Error.Render(err.Error())
	}

	var lines []string
	if header := cli.GridHeader(rows); header != nil {
		cells := make([]string, len(header))
		for i, wd := range header {
			cells[i] = m.styles.WeekdayHeader.Render(wd.Short())
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	ref := m.rng.RefDate()
	today := m.services.Range.Today()
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := m.styles.Day
			switch {
			case !cell.InMonth:
				style = m.styles.DayOutside
			case timeutil.SameDay(cell.Date, ref.In(cell.Date.Location())):
				style = m.styles.DayRef
			case timeutil.SameDay(cell.Date, today.In(cell.Date.Location())):
				style = m.styles.DayToday
			}
			cells[i] = style.Render(fmt.Sprintf("%d", cell.Date.Day()))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(lines, "\n") + "\n"
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	parts := []string{
		m.renderKeyValue("from", m.rng.First().Format(time.DateOnly)),
		m.renderKeyValue("to", m.rng.Last().Format(time.DateOnly)),
		m.renderKeyValue("offsets", fmt.Sprintf("%+d/%+d", m.rng.StartOffset(), m.rng.EndOffset())),
		m.renderKeyValue("theme", m.themeProvider.CurrentName()),
	}

	content := strings.Join(parts, "  ")

	// Fill to width
	padding := m.width - lipgloss.Width(content) - 6
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	bar := m.styles.StatusBar.Render(content)
	switch {
	case m.err != nil:
		bar += "\n" + m.styles.Error.Render("Error: "+m.err.Error())
	case m.status != "":
		bar += "\n" + m.styles.Info.Render(m.status)
	}
	return bar
}

// renderKeyValue renders a single status bar item
func (m Model) renderKeyValue(key, value string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusValue.Render(value))
}

// Run starts the TUI application
func Run(services *service.Services, req service.RangeRequest) error {
	model, err := New(services, req)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
