package ui

// Grid geometry.
const (
	// CardWidth is the outer width of one product card, borders included.
	CardWidth = 30

	// CardGap is the blank space between neighbouring cards.
	CardGap = 1

	// MaxGridColumns caps the grid at four cards per row.
	MaxGridColumns = 4

	// SkeletonCards is the number of placeholder cards shown while loading.
	SkeletonCards = 8
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops
	// secondary fields.
	LayoutCompactWidth = 80

	// DetailMaxWidth caps the width of the product detail text.
	DetailMaxWidth = 100
)

// gridColumns returns how many cards fit side by side in width.
func gridColumns(width int) int {
	cols := (width + CardGap) / (CardWidth + CardGap)
	if cols < 1 {
		return 1
	}
	if cols > MaxGridColumns {
		return MaxGridColumns
	}
	return cols
}
