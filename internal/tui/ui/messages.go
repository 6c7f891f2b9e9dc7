package ui

// ThemeSavedMsg reports the result of persisting the selected theme.
type ThemeSavedMsg struct {
	ThemeName string
	Err       error
}
