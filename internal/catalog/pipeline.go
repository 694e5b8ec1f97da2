package catalog

import (
	"slices"
	"strings"
)

// AllCategories is the category sentinel that disables category filtering.
const AllCategories = "all"

// ItemsPerPage is the fixed page size of the product grid.
const ItemsPerPage = 8

// SortMode selects the ordering applied after filtering.
type SortMode int

const (
	SortDefault SortMode = iota
	SortPriceAsc
	SortPriceDesc
)

var sortTokens = map[SortMode]string{
	SortDefault:   "default",
	SortPriceAsc:  "price-asc",
	SortPriceDesc: "price-desc",
}

// String returns the wire token for the mode ("default", "price-asc", "price-desc").
func (m SortMode) String() string {
	if tok, ok := sortTokens[m]; ok {
		return tok
	}
	return sortTokens[SortDefault]
}

// Label returns the human readable sort label.
func (m SortMode) Label() string {
	switch m {
	case SortPriceAsc:
		return "Price: Low to High"
	case SortPriceDesc:
		return "Price: High to Low"
	default:
		return "Sort by"
	}
}

// Next cycles default → ascending → descending → default.
func (m SortMode) Next() SortMode {
	switch m {
	case SortDefault:
		return SortPriceAsc
	case SortPriceAsc:
		return SortPriceDesc
	default:
		return SortDefault
	}
}

// ParseSortMode maps a wire token to a SortMode. Unknown tokens report false.
func ParseSortMode(s string) (SortMode, bool) {
	token := strings.ToLower(strings.TrimSpace(s))
	if token == "" {
		return SortDefault, true
	}
	for mode, tok := range sortTokens {
		if tok == token {
			return mode, true
		}
	}
	return SortDefault, false
}

// FilterState is the transient set of user-controlled browse inputs.
type FilterState struct {
	Search        string
	Category      string
	FavoritesOnly bool
	Sort          SortMode
}

// DefaultFilterState matches everything in catalog order.
func DefaultFilterState() FilterState {
	return FilterState{Category: AllCategories}
}

// SearchActive reports whether a search term or category narrows the result.
func (fs FilterState) SearchActive() bool {
	return fs.Search != "" || !isAllCategories(fs.Category)
}

// FavoriteLookup answers membership questions about favorited products.
type FavoriteLookup interface {
	IsFavorite(id int64) bool
}

// Matches reports whether p passes every condition of fs.
func (fs FilterState) Matches(p Product, favs FavoriteLookup) bool {
	if fs.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(fs.Search)) {
		return false
	}
	if !isAllCategories(fs.Category) && p.Category != fs.Category {
		return false
	}
	if fs.FavoritesOnly && (favs == nil || !favs.IsFavorite(p.ID)) {
		return false
	}
	return true
}

// Filter returns the products of c that match fs, in catalog order.
func Filter(c Catalog, fs FilterState, favs FavoriteLookup) []Product {
	out := make([]Product, 0, len(c))
	for _, p := range c {
		if fs.Matches(p, favs) {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns a stably sorted copy of items. Price ties keep input order.
func Sort(items []Product, mode SortMode) []Product {
	out := slices.Clone(items)
	switch mode {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int {
			return b.Price.Cmp(a.Price)
		})
	}
	return out
}

// Apply runs filter then sort.
func Apply(c Catalog, fs FilterState, favs FavoriteLookup) []Product {
	return Sort(Filter(c, fs, favs), fs.Sort)
}

// Categories lists the sentinel followed by each distinct category in
// first-seen order.
func Categories(c Catalog) []string {
	seen := make(map[string]struct{}, len(c))
	out := []string{AllCategories}
	for _, p := range c {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// CategoryLabel renders a category for display.
func CategoryLabel(category string) string {
	if isAllCategories(category) {
		return "All Categories"
	}
	if category == "" {
		return category
	}
	r := []rune(category)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func isAllCategories(category string) bool {
	return category == "" || category == AllCategories
}

// Page is one slice of a filtered result.
type Page struct {
	Items      []Product
	Number     int // 1-based, already clamped
	TotalPages int
	Total      int // filtered item count
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// TotalPages is max(1, ceil(count/perPage)).
func TotalPages(count, perPage int) int {
	if perPage <= 0 {
		perPage = ItemsPerPage
	}
	if count <= 0 {
		return 1
	}
	return (count + perPage - 1) / perPage
}

// ClampPage bounds page to [1, total].
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	return min(max(page, 1), total)
}

// Paginate returns the clamped page of items. An out-of-range page never
// produces an out-of-bounds slice.
func Paginate(items []Product, page, perPage int) Page {
	if perPage <= 0 {
		perPage = ItemsPerPage
	}
	total := TotalPages(len(items), perPage)
	number := ClampPage(page, total)
	start := min((number-1)*perPage, len(items))
	end := min(start+perPage, len(items))
	return Page{
		Items:      items[start:end:end],
		Number:     number,
		TotalPages: total,
		Total:      len(items),
	}
}
