package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings of the calendar browser
type KeyMap struct {
	// Navigation
	Next     key.Binding
	Previous key.Binding
	Today    key.Binding

	// Range shape
	Days          key.Binding
	Week          key.Binding
	MonthExact    key.Binding
	MonthExtended key.Binding

	// Offsets
	GrowEnd      key.Binding
	ShrinkEnd    key.Binding
	GrowStart    key.Binding
	ShrinkStart  key.Binding
	ResetOffsets key.Binding

	// Actions
	Theme key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "right", "l"),
			key.WithHelp("n/→", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p", "left", "h"),
			key.WithHelp("p/←", "previous"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),

		Days: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "days"),
		),
		Week: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "week"),
		),
		MonthExact: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "month"),
		),
		MonthExtended: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "month grid"),
		),

		GrowEnd: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow end"),
		),
		ShrinkEnd: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink end"),
		),
		GrowStart: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "grow start"),
		),
		ShrinkStart: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "shrink start"),
		),
		ResetOffsets: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset offsets"),
		),

		Theme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "next theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Today, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Today},
		{k.Days, k.Week, k.MonthExact, k.MonthExtended},
		{k.GrowEnd, k.ShrinkEnd, k.GrowStart, k.ShrinkStart, k.ResetOffsets},
		{k.Theme, k.Help, k.Quit},
	}
}
