package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/state"
)

// renderHeader renders the top bar: logo, load status or result counter,
// favorites count and theme.
func (m Model) renderHeader() string {
	styles := m.palette.Styles().WithBackground(m.palette.Surface)
	bg := NewBgStyle(m.palette.Surface)

	parts := []string{bg.Render("storefront", styles.Logo)}

	switch m.snapshot.Status {
	case state.StatusLoading:
		spin := m.spinner
		spin.Style = styles.AccentText
		parts = append(parts, spin.View()+bg.Spaces(1)+bg.Render("Loading products", styles.MutedText))
	case state.StatusError:
		parts = append(parts, bg.Render("Failed to load", styles.DangerText))
	default:
		parts = append(parts, bg.Render(itemsLabel(m.browser.View(m.favorites).Page.Total), styles.Text))
	}

	parts = append(parts, bg.Render(fmt.Sprintf("♥ %d", m.favorites.Len()), styles.FavoriteText))
	if m.width >= LayoutCompactWidth {
		parts = append(parts, bg.Render(m.palette.Name, styles.MutedText))
		parts = append(parts, bg.Render(string(m.prices.Currency), styles.FaintText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.palette.Surface)).
		Foreground(lipgloss.Color(m.palette.Text)).
		Padding(0, 1).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

// renderFilterBar renders search, category, sort and the favorites button.
func (m Model) renderFilterBar() string {
	styles := m.palette.Styles()
	fs := m.browser.Filter()

	search := m.search.View()
	if !m.search.Focused() && m.search.Value() == "" {
		search = styles.FaintText.Render(m.search.Placeholder)
	}
	searchBox := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color(ternary(m.search.Focused(), m.palette.BorderFocus, m.palette.Border)))
	if m.search.Focused() {
		searchBox = searchBox.Background(lipgloss.Color(m.palette.FocusBg))
	}

	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if fs.FavoritesOnly {
		button = button.BorderForeground(lipgloss.Color(m.palette.Favorite)).
			Foreground(lipgloss.Color(m.palette.Favorite))
	} else {
		button = button.BorderForeground(lipgloss.Color(m.palette.Border)).
			Foreground(lipgloss.Color(m.palette.Text))
	}

	field := func(label, value string) string {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.palette.Border)).
			Padding(0, 1).
			Render(styles.MutedText.Render(label+" ") + styles.Text.Render(value))
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom,
		searchBox.Render("⌕ "+search),
		"  ",
		field("Category", catalog.CategoryLabel(fs.Category)),
		" ",
		field("Sort", fs.Sort.Label()),
		" ",
		button.Render(favoritesButtonLabel(fs.FavoritesOnly)),
	)
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	if m.screen == screenDetail && m.snapshot.Status == state.StatusSuccess {
		return m.help.ShortHelpView([]key.Binding{m.keys.Back, m.keys.ToggleFavorite, m.keys.Up, m.keys.Down, m.keys.Quit})
	}
	if m.snapshot.Status == state.StatusError {
		return m.help.ShortHelpView([]key.Binding{m.keys.Retry, m.keys.ToggleTheme, m.keys.Quit})
	}
	if m.search.Focused() {
		return m.help.ShortHelpView([]key.Binding{m.keys.Confirm, m.keys.Cancel})
	}
	return m.help.View(m.keys)
}

// itemsLabel renders the result counter, e.g. "12 items".
func itemsLabel(n int) string {
	return fmt.Sprintf("%d items", n)
}

// favoritesButtonLabel names the action the favorites button performs.
func favoritesButtonLabel(favoritesOnly bool) string {
	return ternary(favoritesOnly, "♥ Show All", "♡ Favorites")
}
