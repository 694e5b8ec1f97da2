package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/storefront/internal/catalog"
)

// cardInnerWidth is the text width inside a card's border and padding.
const cardInnerWidth = CardWidth - 4

// renderGrid renders the visible page as rows of cards, followed by the
// pagination bar when there is more than one page.
func (m Model) renderGrid(v catalog.View) string {
	if v.Empty {
		return m.renderEmpty(v)
	}

	cards := make([]string, len(v.Page.Items))
	for i, p := range v.Page.Items {
		cards[i] = m.renderCard(p, i == m.cursor)
	}
	grid := joinGrid(cards, gridColumns(m.width))
	if !v.ShowPagination {
		return grid
	}
	return grid + "\n\n" + m.renderPagination(v.Page)
}

// renderCard renders one product card.
func (m Model) renderCard(p catalog.Product, selected bool) string {
	styles := m.palette.Styles()

	title := wrapLines(p.Title, cardInnerWidth, 2)
	for len(title) < 2 {
		title = append(title, "")
	}

	rating := p.Rating.String()

	price := styles.Price.Render(m.prices.Format(p.Price))
	heart := styles.FaintText.Render("♡")
	if m.favorites.IsFavorite(p.ID) {
		heart = styles.FavoriteText.Render("♥")
	}
	gap := max(1, cardInnerWidth-lipgloss.Width(price)-lipgloss.Width(heart))

	lines := []string{
		styles.Text.Bold(true).Render(title[0]),
		styles.Text.Bold(true).Render(title[1]),
		styles.MutedText.Render(truncate(catalog.CategoryLabel(p.Category), cardInnerWidth)),
		styles.WarningText.Render(rating),
		price + strings.Repeat(" ", gap) + heart,
	}

	border := m.palette.Border
	if selected {
		border = m.palette.BorderFocus
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(CardWidth - 2)
	if selected {
		card = card.BorderStyle(lipgloss.ThickBorder())
	}
	return card.Render(strings.Join(lines, "\n"))
}

// renderSkeletons renders placeholder cards while the catalog loads.
func (m Model) renderSkeletons() string {
	styles := m.palette.Styles()
	bar := func(n int) string {
		return styles.FaintText.Render(strings.Repeat("░", n))
	}
	lines := []string{
		bar(cardInnerWidth),
		bar(cardInnerWidth * 2 / 3),
		bar(cardInnerWidth / 2),
		"",
		bar(cardInnerWidth / 3),
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.palette.BorderMuted)).
		Padding(0, 1).
		Width(CardWidth - 2).
		Render(strings.Join(lines, "\n"))

	cards := make([]string, SkeletonCards)
	for i := range cards {
		cards[i] = card
	}
	return joinGrid(cards, gridColumns(m.width))
}

// renderPagination renders "‹ Previous  Page X of Y  Next ›" with the
// arrows dimmed at the bounds.
func (m Model) renderPagination(p catalog.Page) string {
	styles := m.palette.Styles()

	pager := m.pager
	pager.TotalPages = p.TotalPages
	pager.Page = p.Number - 1

	prev := styles.FaintText.Render("‹ Previous")
	if p.HasPrev() {
		prev = styles.AccentText.Render("‹ Previous")
	}
	next := styles.FaintText.Render("Next ›")
	if p.HasNext() {
		next = styles.AccentText.Render("Next ›")
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, prev, "   ", styles.Text.Render(pager.View()), "   ", next)
	return lipgloss.PlaceHorizontal(m.gridWidth(), lipgloss.Center, bar)
}

// renderEmpty renders the no-results state.
func (m Model) renderEmpty(v catalog.View) string {
	styles := m.palette.Styles()
	title := "No products found"
	if v.SearchActive {
		title = "No products match your search"
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.MutedText.Render("∅"),
		"",
		styles.Text.Bold(true).Render(title),
		styles.MutedText.Render("Try adjusting your search or filter"),
	)
	return lipgloss.PlaceHorizontal(m.gridWidth(), lipgloss.Center, body)
}

// renderError renders the failure panel with the raw error message.
func (m Model) renderError() string {
	styles := m.palette.Styles()
	width := min(60, max(20, m.width-4))

	message := lipgloss.NewStyle().
		Width(width - 4).
		Align(lipgloss.Center).
		Render(styles.Text.Render(m.snapshot.ErrorMessage()))

	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.DangerText.Render("Oops! Something went wrong"),
		"",
		message,
		"",
		styles.AccentText.Bold(true).Render("[r] Try Again"),
	)
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.palette.Danger)).
		Padding(1, 2).
		Width(width).
		Align(lipgloss.Center).
		Render(body)
	return lipgloss.PlaceHorizontal(max(m.width, width), lipgloss.Center, panel)
}

// gridWidth is the rendered width of a full grid row.
func (m Model) gridWidth() int {
	cols := gridColumns(m.width)
	return cols*CardWidth + (cols-1)*CardGap
}

// joinGrid lays cards out left to right, cols per row.
func joinGrid(cards []string, cols int) string {
	if len(cards) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", CardGap)
	rows := make([]string, 0, (len(cards)+cols-1)/cols)
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		row := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				row = append(row, gap)
			}
			row = append(row, cards[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
