package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the terminal view. Trail and Background are the two ends
// of the opacity blend used for canvas cells.
type Theme struct {
	Name       string
	Trail      lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Warning    lipgloss.Color
}

func palette(name, trail, bg, text, muted, accent, warning string) Theme {
	return Theme{
		Name:       name,
		Trail:      lipgloss.Color(trail),
		Background: lipgloss.Color(bg),
		Text:       lipgloss.Color(text),
		Muted:      lipgloss.Color(muted),
		Accent:     lipgloss.Color(accent),
		Warning:    lipgloss.Color(warning),
	}
}

// Themes lists the selectable themes in the order T cycles through them.
// The first entry is the fallback for unknown names.
var Themes = []Theme{
	//      name         trail      background text       muted      accent     warning
	palette("cyberpunk", "#ff2bd6", "#0a0a12", "#f2f2f2", "#5c5c70", "#29e7ff", "#ff8800"),
	palette("phosphor", "#33ff66", "#020d04", "#33ff66", "#0f5a1e", "#a6ffbf", "#e6ff4d"),
	palette("mono", "#ffffff", "#000000", "#ffffff", "#808080", "#4da6ff", "#ffaa00"),
	palette("abyss", "#2ec4e6", "#00142b", "#dcefff", "#3f7fa3", "#ffd24a", "#ffb347"),
	palette("ember", "#ffb03b", "#24121f", "#fff2ec", "#86657f", "#ff5e5b", "#ffd166"),
}

// ThemeCyberpunk is the default theme.
var ThemeCyberpunk = Themes[0]

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
