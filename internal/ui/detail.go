package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/storefront/internal/catalog"
)

// detailChrome is the number of lines taken by header, footer and spacing
// around the detail viewport.
const detailChrome = 4

// resizeDetail fits the detail viewport to the terminal.
func (m *Model) resizeDetail() {
	m.detail.Width = max(20, min(m.width-2, DetailMaxWidth))
	m.detail.Height = max(3, m.height-detailChrome)
	m.refreshDetail()
}

// refreshDetail re-renders the selected product into the viewport.
func (m *Model) refreshDetail() {
	if m.screen != screenDetail {
		return
	}
	p, ok := m.browser.Catalog().Lookup(m.detailID)
	if !ok {
		m.detail.SetContent(m.palette.Styles().MutedText.Render("Product not found"))
		return
	}
	m.detail.SetContent(m.renderProduct(p, m.detail.Width))
}

// renderProduct renders the full product page: category badge, title,
// price, rating, favorite state and description.
func (m Model) renderProduct(p catalog.Product, width int) string {
	styles := m.palette.Styles()
	textWidth := max(10, width-2)

	var b strings.Builder
	b.WriteString(styles.Badge.Render(catalog.CategoryLabel(p.Category)))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Bold(true).Width(textWidth).Render(p.Title))
	b.WriteString("\n\n")
	b.WriteString(styles.Price.Render(m.prices.Format(p.Price)))
	b.WriteString("\n")

	if p.Rating != nil {
		b.WriteString(styles.WarningText.Render(p.Rating.String()))
		b.WriteString("\n")
	}

	if m.favorites.IsFavorite(p.ID) {
		b.WriteString(styles.FavoriteText.Render("♥ In favorites"))
	} else {
		b.WriteString(styles.FaintText.Render("♡ Not in favorites"))
	}
	b.WriteString("\n\n")

	if desc := strings.TrimSpace(p.Description); desc != "" {
		b.WriteString(styles.AccentText.Bold(true).Render("Description"))
		b.WriteString("\n")
		b.WriteString(styles.Text.Width(textWidth).Render(desc))
		b.WriteString("\n")
	}
	if p.Image != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Width(textWidth).Render(p.Image))
	}
	return b.String()
}

// renderDetail renders the viewport framed for the detail screen.
func (m Model) renderDetail() string {
	back := m.palette.Styles().AccentText.Render("‹ Back to products")
	return lipgloss.JoinVertical(lipgloss.Left, back, "", m.detail.View())
}
