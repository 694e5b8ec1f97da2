package catalog

// Browser holds the mutable browse inputs for one session: the loaded catalog,
// the filter state and the requested page. Every filter mutation resets the
// page to 1 before returning, so the next View is always computed from page 1.
//
// Derived values (categories, filtered list, page slice) are never stored;
// View recomputes them from the current inputs on each call.
type Browser struct {
	catalog Catalog
	filter  FilterState
	page    int
}

// NewBrowser starts a session over c with the default filter state.
func NewBrowser(c Catalog) *Browser {
	return &Browser{catalog: c, filter: DefaultFilterState(), page: 1}
}

// SetCatalog replaces the catalog (e.g. after a retry) and resets the page.
func (b *Browser) SetCatalog(c Catalog) {
	b.catalog = c
	b.page = 1
}

// Catalog returns the session catalog.
func (b *Browser) Catalog() Catalog { return b.catalog }

// Filter returns the current filter state.
func (b *Browser) Filter() FilterState { return b.filter }

// Page returns the requested (unclamped) page number.
func (b *Browser) Page() int { return b.page }

// SetFilter replaces the whole filter state.
func (b *Browser) SetFilter(fs FilterState) {
	if fs.Category == "" {
		fs.Category = AllCategories
	}
	b.filter = fs
	b.page = 1
}

// SetSearch updates the search term.
func (b *Browser) SetSearch(term string) {
	b.filter.Search = term
	b.page = 1
}

// SetCategory selects a category; "" or "all" clears the category filter.
func (b *Browser) SetCategory(category string) {
	if category == "" {
		category = AllCategories
	}
	b.filter.Category = category
	b.page = 1
}

// CycleCategory advances to the next category in Categories order.
func (b *Browser) CycleCategory(step int) {
	cats := Categories(b.catalog)
	idx := 0
	for i, c := range cats {
		if c == b.filter.Category {
			idx = i
			break
		}
	}
	n := len(cats)
	b.SetCategory(cats[((idx+step)%n+n)%n])
}

// SetFavoritesOnly toggles the favorites-only filter to v.
func (b *Browser) SetFavoritesOnly(v bool) {
	b.filter.FavoritesOnly = v
	b.page = 1
}

// ToggleFavoritesOnly flips the favorites-only filter.
func (b *Browser) ToggleFavoritesOnly() {
	b.SetFavoritesOnly(!b.filter.FavoritesOnly)
}

// SetSort selects the sort mode.
func (b *Browser) SetSort(mode SortMode) {
	b.filter.Sort = mode
	b.page = 1
}

// CycleSort advances the sort mode.
func (b *Browser) CycleSort() {
	b.SetSort(b.filter.Sort.Next())
}

// SetPage requests page n. The value is clamped against the current result
// size when favs is known; View clamps again in any case.
func (b *Browser) SetPage(n int, favs FavoriteLookup) {
	total := TotalPages(len(Filter(b.catalog, b.filter, favs)), ItemsPerPage)
	b.page = ClampPage(n, total)
}

// NextPage moves forward one page, stopping at the last page.
func (b *Browser) NextPage(favs FavoriteLookup) {
	b.SetPage(b.View(favs).Page.Number+1, favs)
}

// PrevPage moves back one page, stopping at the first page.
func (b *Browser) PrevPage(favs FavoriteLookup) {
	b.SetPage(b.View(favs).Page.Number-1, favs)
}

// View is everything the view layer needs for one render.
type View struct {
	Filter         FilterState
	Categories     []string
	CatalogSize    int
	Page           Page
	ShowPagination bool
	Empty          bool // filtered result is empty
	SearchActive   bool
}

// View derives the current view from the catalog, filter state, favorites and
// requested page.
func (b *Browser) View(favs FavoriteLookup) View {
	filtered := Apply(b.catalog, b.filter, favs)
	page := Paginate(filtered, b.page, ItemsPerPage)
	return View{
		Filter:         b.filter,
		Categories:     Categories(b.catalog),
		CatalogSize:    len(b.catalog),
		Page:           page,
		ShowPagination: page.TotalPages > 1,
		Empty:          len(filtered) == 0,
		SearchActive:   b.filter.SearchActive(),
	}
}
