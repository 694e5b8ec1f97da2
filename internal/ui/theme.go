package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/storefront/internal/prefs"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header, filter bar, cards
	SurfaceAlt string // Skeletons and badges
	FocusBg    string // Focused search input

	Border      string
	BorderMuted string
	BorderFocus string

	Text     string
	Muted    string
	Faint    string
	Accent   string
	Success  string
	Warning  string
	Danger   string
	Info     string
	Favorite string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		SurfaceAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		FavoriteText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Favorite)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Price: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Info)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	// Text
	Text         lipgloss.Style
	MutedText    lipgloss.Style
	FaintText    lipgloss.Style
	AccentText   lipgloss.Style
	WarningText  lipgloss.Style
	DangerText   lipgloss.Style
	FavoriteText lipgloss.Style

	// Components
	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style
	Price  lipgloss.Style
	Badge  lipgloss.Style
}

// WithBackground returns a copy of Styles with all text styles having the specified background.
// This ensures styled text has explicit backgrounds instead of transparent/inherit.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	return Styles{
		Background: s.Background.Background(bg),
		Surface:    s.Surface.Background(bg),
		SurfaceAlt: s.SurfaceAlt.Background(bg),

		Text:         s.Text.Background(bg),
		MutedText:    s.MutedText.Background(bg),
		FaintText:    s.FaintText.Background(bg),
		AccentText:   s.AccentText.Background(bg),
		WarningText:  s.WarningText.Background(bg),
		DangerText:   s.DangerText.Background(bg),
		FavoriteText: s.FavoriteText.Background(bg),

		Header: s.Header.Background(bg),
		Footer: s.Footer.Background(bg),
		Logo:   s.Logo.Background(bg),
		Price:  s.Price.Background(bg),
		Badge:  s.Badge,
	}
}

// ThemeFor returns the palette for a persisted theme mode.
func ThemeFor(mode prefs.ThemeMode) Theme {
	if mode == prefs.ThemeDark {
		return nightfoxTheme()
	}
	return dayfoxTheme()
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Dark",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#29394f", // bg3

		Border:      "#39506d", // bg4
		BorderMuted: "#212e3f", // bg2
		BorderFocus: "#719cd6", // blue

		Text:     "#cdcecf", // fg1
		Muted:    "#738091", // comment
		Faint:    "#71839b", // fg3
		Accent:   "#719cd6", // blue
		Success:  "#81b29a", // green
		Warning:  "#dbc074", // yellow
		Danger:   "#c94f6d", // red
		Info:     "#63cdcf", // cyan
		Favorite: "#d67ad2", // pink
	}
}

func dayfoxTheme() Theme {
	// Dayfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Light",

		Background: "#e4dcd4", // bg0
		Surface:    "#f6f2ee", // bg1
		SurfaceAlt: "#dbd1dd", // bg2
		FocusBg:    "#d3c7bb", // bg3

		Border:      "#aab0ad", // bg4
		BorderMuted: "#dbd1dd", // bg2
		BorderFocus: "#2848a9", // blue

		Text:     "#3d2b5a", // fg1
		Muted:    "#837a72", // comment
		Faint:    "#824d5b", // fg3
		Accent:   "#2848a9", // blue
		Success:  "#396847", // green
		Warning:  "#ac5402", // yellow
		Danger:   "#a5222f", // red
		Info:     "#287980", // cyan
		Favorite: "#a440b5", // pink
	}
}
