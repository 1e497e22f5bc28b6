package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the palette for every drawing layer.
type Theme struct {
	Name      string
	Reference lipgloss.Color
	Partials  []lipgloss.Color
	Circles   lipgloss.Color
	Vectors   lipgloss.Color
	Tail      lipgloss.Color
	Tip       lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Reference: lipgloss.Color("#3a3a4a"),
		Partials:  []lipgloss.Color{"#ff00ff", "#00ffff", "#ffff00", "#00ff88", "#ff8800"},
		Circles:   lipgloss.Color("#5aa0ff"),
		Vectors:   lipgloss.Color("#aaccff"),
		Tail:      lipgloss.Color("#ff785a"),
		Tip:       lipgloss.Color("#ff3c3c"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Accent:    lipgloss.Color("#ff00ff"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Reference: lipgloss.Color("#004400"),
		Partials:  []lipgloss.Color{"#00ff00", "#88ff88", "#00cc00", "#ccffcc", "#66aa66"},
		Circles:   lipgloss.Color("#007700"),
		Vectors:   lipgloss.Color("#00aa00"),
		Tail:      lipgloss.Color("#aaffaa"),
		Tip:       lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Accent:    lipgloss.Color("#88ff88"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Reference: lipgloss.Color("#444444"),
		Partials:  []lipgloss.Color{"#ffffff", "#cccccc", "#999999", "#0088ff", "#66bbff"},
		Circles:   lipgloss.Color("#555555"),
		Vectors:   lipgloss.Color("#888888"),
		Tail:      lipgloss.Color("#0088ff"),
		Tip:       lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Accent:    lipgloss.Color("#0088ff"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Reference: lipgloss.Color("#1a3350"),
		Partials:  []lipgloss.Color{"#00a8cc", "#ffd700", "#00ff88", "#e0f0ff", "#0077be"},
		Circles:   lipgloss.Color("#0077be"),
		Vectors:   lipgloss.Color("#4488aa"),
		Tail:      lipgloss.Color("#ffd700"),
		Tip:       lipgloss.Color("#ff4444"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Accent:    lipgloss.Color("#ffd700"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Reference: lipgloss.Color("#4a2f4b"),
		Partials:  []lipgloss.Color{"#ff6b6b", "#feca57", "#ff9ff3", "#5fd068", "#ffc048"},
		Circles:   lipgloss.Color("#8b6b8c"),
		Vectors:   lipgloss.Color("#ff9ff3"),
		Tail:      lipgloss.Color("#feca57"),
		Tip:       lipgloss.Color("#ff4757"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Accent:    lipgloss.Color("#ff6b6b"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after the named one, wrapping around.
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

// PartialColor picks the palette entry for the idx-th partial curve.
func (t Theme) PartialColor(idx int) lipgloss.Color {
	if len(t.Partials) == 0 {
		return t.Text
	}
	return t.Partials[idx%len(t.Partials)]
}
