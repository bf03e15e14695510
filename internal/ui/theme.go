package ui

// Theme is the dark/light flag for a single render. The zero value is light.
type Theme struct {
	dark bool
}

// NewTheme seeds the flag from the platform preference.
func NewTheme(prefersDark bool) Theme {
	return Theme{dark: prefersDark}
}

// IsDark reports whether the dark presentation is selected.
func (t Theme) IsDark() bool {
	return t.dark
}

// Toggle flips the flag and returns the new value.
func (t *Theme) Toggle() bool {
	t.dark = !t.dark
	return t.dark
}

// RootClass is the class applied to the application root container.
func (t Theme) RootClass() string {
	if t.dark {
		return "dark"
	}
	return "light"
}

// BodyClass is the document-level class; empty in light mode.
func (t Theme) BodyClass() string {
	if t.dark {
		return "dark-mode"
	}
	return ""
}

// Pick returns dark or light depending on the flag. Views use it for every
// theme-dependent class list.
func (t Theme) Pick(dark, light string) string {
	if t.dark {
		return dark
	}
	return light
}

// ToggleLabel is the accessible label of the toggle button.
func (t Theme) ToggleLabel() string {
	return t.Pick("Switch to light mode", "Switch to dark mode")
}
