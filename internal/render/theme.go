package render

import "github.com/charmbracelet/lipgloss"

// Theme is the read-only color configuration every renderer receives
// at call time. Nothing in this package reads process-wide state; the
// owning application decides which theme is current and passes it in.
type Theme struct {
	Name string
	Dark bool

	Background lipgloss.Color
	Surface    lipgloss.Color
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Text       lipgloss.Color
	TextLight  lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Light is the default light palette.
func Light() Theme {
	return Theme{
		Name:       "light",
		Background: lipgloss.Color("#ffffff"),
		Surface:    lipgloss.Color("#f8f9fc"),
		Primary:    lipgloss.Color("#4a76f5"),
		Secondary:  lipgloss.Color("#6e7891"),
		Text:       lipgloss.Color("#3a3f51"),
		TextLight:  lipgloss.Color("#6e7891"),
		Border:     lipgloss.Color("#e1e4e8"),
		Success:    lipgloss.Color("#28c840"),
		Warning:    lipgloss.Color("#febc2e"),
		Error:      lipgloss.Color("#ff5f57"),
	}
}

// Dark is the default dark palette.
func Dark() Theme {
	return Theme{
		Name:       "dark",
		Dark:       true,
		Background: lipgloss.Color("#1e2233"),
		Surface:    lipgloss.Color("#252a3d"),
		Primary:    lipgloss.Color("#5d8afe"),
		Secondary:  lipgloss.Color("#8e99b7"),
		Text:       lipgloss.Color("#ffffff"),
		TextLight:  lipgloss.Color("#b4bdce"),
		Border:     lipgloss.Color("#323a54"),
		Success:    lipgloss.Color("#30d649"),
		Warning:    lipgloss.Color("#ffca3a"),
		Error:      lipgloss.Color("#ff6b6b"),
	}
}

// ThemeByName resolves a configured theme name. Unknown names fall
// back to dark, the terminal default.
func ThemeByName(name string) Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}
