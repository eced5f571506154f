package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the stats panel and the braille scene.
type Theme struct {
	Name    string
	Scene   lipgloss.Color // braille dots
	Header  lipgloss.Color
	Label   lipgloss.Color
	Value   lipgloss.Color
	Graph   lipgloss.Color
	Border  lipgloss.Color
	Running lipgloss.Color
	Paused  lipgloss.Color
	Record  lipgloss.Color
}

var (
	ThemeMinimal = Theme{
		Name:    "minimal",
		Scene:   lipgloss.Color("#ffffff"),
		Header:  lipgloss.Color("#ffffff"),
		Label:   lipgloss.Color("#888888"),
		Value:   lipgloss.Color("#dddddd"),
		Graph:   lipgloss.Color("#0088ff"),
		Border:  lipgloss.Color("#444444"),
		Running: lipgloss.Color("#00ff00"),
		Paused:  lipgloss.Color("#ffaa00"),
		Record:  lipgloss.Color("#ff0000"),
	}

	// Solar follows the warm end of the insolation palette.
	ThemeSolar = Theme{
		Name:    "solar",
		Scene:   lipgloss.Color("#ffd27f"),
		Header:  lipgloss.Color("#ff9a3c"),
		Label:   lipgloss.Color("#a0785a"),
		Value:   lipgloss.Color("#fff2d9"),
		Graph:   lipgloss.Color("#ff5a36"),
		Border:  lipgloss.Color("#5a3a2a"),
		Running: lipgloss.Color("#ffd700"),
		Paused:  lipgloss.Color("#ff8c00"),
		Record:  lipgloss.Color("#ff2020"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Scene:   lipgloss.Color("#00a8cc"),
		Header:  lipgloss.Color("#0077be"),
		Label:   lipgloss.Color("#4488aa"),
		Value:   lipgloss.Color("#e0f0ff"),
		Graph:   lipgloss.Color("#ffd700"),
		Border:  lipgloss.Color("#003355"),
		Running: lipgloss.Color("#00ff88"),
		Paused:  lipgloss.Color("#ffcc00"),
		Record:  lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Scene:   lipgloss.Color("#00ff00"),
		Header:  lipgloss.Color("#88ff88"),
		Label:   lipgloss.Color("#007700"),
		Value:   lipgloss.Color("#00ff00"),
		Graph:   lipgloss.Color("#00cc00"),
		Border:  lipgloss.Color("#005500"),
		Running: lipgloss.Color("#88ff88"),
		Paused:  lipgloss.Color("#ffff00"),
		Record:  lipgloss.Color("#ff0000"),
	}

	CurrentTheme = ThemeMinimal

	Themes = []Theme{
		ThemeMinimal,
		ThemeSolar,
		ThemeOcean,
		ThemeRetroGreen,
	}
)

// GetTheme returns a theme by name, falling back to minimal.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMinimal
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
