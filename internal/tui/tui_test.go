package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xolan/calrange/internal/config"
	"github.com/xolan/calrange/internal/daterange"
	calog "github.com/xolan/calrange/internal/log"
	"github.com/xolan/calrange/internal/service"
	"github.com/xolan/calrange/internal/timeutil"
	"github.com/xolan/calrange/internal/tui/ui"
)

// Friday
var fixedNow = time.Date(2020, 1, 10, 9, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), config.ConfigFile)
	cfg := config.DefaultConfig()
	cfg.Timezone = "UTC"

	services := service.NewServicesWithConfig(configPath, cfg, calog.Nop())
	services.Range.SetClock(func() time.Time { return fixedNow })
	return services
}

func newTestModel(t *testing.T, req service.RangeRequest) Model {
	t.Helper()
	m, err := New(setupTestServices(t), req)
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func span(m Model) (string, string) {
	r := m.Range()
	return r.First().Format(time.DateOnly), r.Last().Format(time.DateOnly)
}

func TestNew(t *testing.T) {
	m := newTestModel(t, service.RangeRequest{Kind: daterange.KindWeek})

	first, last := span(m)
	assert.Equal(t, "2020-01-06", first)
	assert.Equal(t, "2020-01-12", last)
	assert.Equal(t, 1, m.daysCount)
	assert.Equal(t, ui.DefaultTheme, m.themeProvider.CurrentName())
	assert.NoError(t, m.Err())
	assert.Nil(t, m.Init())
}

func TestNew_InvalidRequest(t *testing.T) {
	_, err := New(setupTestServices(t), service.RangeRequest{Kind: daterange.KindWeek, StartOffset: -7})

	var rangeErr *daterange.Error
	require.ErrorAs(t, err, &rangeErr)
	assert.ErrorIs(t, err, daterange.ErrRangeExceeded)
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestModel(t, service.RangeRequest{Kind: daterange.KindWeek})

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m = next.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 50, m.height)
	assert.Equal(t, 100, m.help.Width)
}

func TestUpdate_QuitKey(t *testing.T) {
	m := newTestModel(t, service.RangeRequest{Kind: daterange.KindWeek})

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestUpdate_Navigation(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		first string
		last  string
	}{
		{"next", []string{"n"}, "2020-01-13", "2020-01-19"},
		{"next arrow", []string{"right"}, "2020-01-13", "2020-01-19"},
		{"previous", []string{"p"}, "2019-12-30", "2020-01-05"},
		{"previous arrow", []string{"left"}, "2019-12-30", "2020-01-05"},
		{"there and back", []string{"n", "n", "h", "h"}, "2020-01-06", "2020-01-12"},
		{"today", []string{"n", "n", "n", "t"}, "2020-01-06", "2020-01-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, newTestModel(t, service.RangeRequest{Kind: daterange.KindWeek}), tt.keys...)

			first, last := span(m)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
			assert.NoError(t, m.Err())
		})
	}
}

func TestUpdate_SwitchKind(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		kind  daterange.Kind
		first string
		last  string
	}{
		{"days", "d", daterange.KindDays, "2020-01-10", "2020-01-16"},
		{"week", "w", daterange.KindWeek, "2020-01-06", "2020-01-12"},
		{"month", "m", daterange.KindMonthExact, "2020-01-01", "2020-01-31"},
		{"month grid", "e", daterange.KindMonthExtended, "2019-12-30", "2020-02-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, newTestModel(t, service.RangeRequest{Kind: daterange.KindWeek, DaysCount: DefaultDaysCount}), tt.key)

			assert.Equal(t, tt.kind, m.Range().Kind())
			first, last := span(m)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestUpdate_SwitchToDaysWithoutCount(t *testing.T) {
	services := setupTestServices(t)
	req := service.RangeRequest{Kind: daterange.KindWeek}
	m, err := New(services, req)
	require.NoError(t, err)

	m = press(t, m, "d")

	// same length the service gives an unset count
	want, err := services.Range.Generate(service.RangeRequest{Kind: daterange.KindDays, RefDate: ptr(fixedNow)})
	require.NoError(t, err)
	assert.Equal(t, want.Len(), m.Range().Len())
	first, last := span(m)
	assert.Equal(t, "2020-01-10", first)
	assert.Equal(t, "2020-01-10", last)
}

func TestUpdate_SwitchKindKeepsReferenceAndWeekday(t *testing.T) {
	m := newTestModel(t, service.RangeRequest{Kind: daterange.KindWeek, Weekday: ptr(timeutil.Sunday)})
	m = press(t, m, "n", "d", "w")

	// the week after the Sunday-started week of Jan 10, 2020
	first, last := span(m)
	assert.Equal(t, "2020-01-12", first)
	assert.Equal(t, "2020-01-18", last)
}

func TestUpdate_Offsets(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		first string
		last  string
	}{
		{"grow end", []string{"+"}, "2020-01-06", "2020-01-13"},
		{"grow end alias", []string{"="}, "2020-01-06", "2020-01-13"},
		{"shrink end", []string{"-", "-"}, "2020-01-06", "2020-01-10"},
		{"grow start", []string{"["}, "2020-01-05", "2020-01-12"},
		{"shrink start", []string{"]"}, "2020-01-07", "2020-01-12"},
		{"reset", []string{"+", "[", "0"}, "2020-01-06", "2020-01-12"},
		{"kept when navigating", []string{"+", "n"}, "2020-01-13", "2020-01-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, newTestModel(t, service.RangeRequest{Kind: daterange.KindWeek}), tt.keys...)

			first, last := span(m)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
			assert.NoError(t, m.Err())
		})
	}
}

func TestUpdate_ShrinkPastEmptyKeepsRange(t *testing.T) {
	m := newTestModel(t, service.RangeRequest{Kind: daterange.KindWeek})
	m = press(t, m, "-", "-", "-", "-", "-", "-")
	require.NoError(t, m.Err())
	require.Equal(t, 1, m.Range().Len())

	m = press(t, m, "-")

	assert.ErrorIs(t, m.Err(), daterange.ErrRangeExceeded)
	assert.Equal(t, 1, m.Range().Len())
	assert.Equal(t, -6, m.Range().EndOffset())

	// the next successful action clears the error
	m = press(t, m, "0")
	assert.NoError(t, m.Err())
	assert.Equal(t, 7, m.Range().Len())
}

func TestUpdate_Help(t *testing.T) {
	m := newTestModel(t, service.RangeRequest{Kind: daterange.KindWeek})
	assert.False(t, m.help.ShowAll)

	m = press(t, m, "?")
	assert.True(t, m.help.ShowAll)

	m = press(t, m, "?")
	assert.False(t, m.help.ShowAll)
}

func TestUpdate_UnknownKey(t *testing.T) {
	m := newTestModel(t, service.RangeRequest{Kind: daterange.KindWeek})
	before := m.Range()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})

	assert.Nil(t, cmd)
	assert.Equal(t, before.Dates(), next.(Model).Range().Dates())
}

func TestUpdate_ThemeCycleSavesConfig(t *testing.T) {
	m := newTestModel(t, service.RangeRequest{Kind: daterange.KindWeek})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'T'}})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.NotEqual(t, ui.DefaultTheme, m.themeProvider.CurrentName())

	msg := cmd()
	saved, ok := msg.(ui.ThemeSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.Err)
	assert.Equal(t, m.themeProvider.CurrentName(), saved.ThemeName)
	assert.Equal(t, saved.ThemeName, m.services.Config.Get().Theme)

	data, err := os.ReadFile(m.services.Config.GetPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), saved.ThemeName)

	next, _ = m.Update(msg)
	m = next.(Model)
	assert.Equal(t, "Theme saved: "+saved.ThemeName, m.status)
}

func TestUpdate_ThemeSaveError(t *testing.T) {
	m := newTestModel(t, service.RangeRequest{Kind: daterange.KindWeek})

	next, _ := m.Update(ui.ThemeSavedMsg{ThemeName: "nord", Err: errors.New("disk full")})
	m = next.(Model)

	require.Error(t, m.Err())
	assert.Contains(t, m.Err().Error(), "disk full")
}

func TestView(t *testing.T) {
	m := newTestModel(t, service.RangeRequest{Kind: daterange.KindMonthExtended})
	assert.Equal(t, "Loading...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	view := next.(Model).View()

	assert.Contains(t, view, "January 2020")
	assert.Contains(t, view, "Mon")
	assert.Contains(t, view, "Sun")
	assert.Contains(t, view, "31")
	assert.Contains(t, view, "2019-12-30")
	assert.Contains(t, view, "2020-02-02")
	assert.Contains(t, view, ui.DefaultTheme)
	assert.Contains(t, view, "quit")
}

func TestView_ShowsError(t *testing.T) {
	m := newTestModel(t, service.RangeRequest{Kind: daterange.KindDays, DaysCount: 1})
	m = press(t, m, "-")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	assert.Contains(t, next.(Model).View(), "Error:")
}
