package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

var (
	categoryGen = rapid.SampledFrom([]string{"electronics", "jewelery", "men's clothing", "women's clothing"})
	titleGen    = rapid.StringMatching(`[A-Za-z]{1,4}( [A-Za-z]{1,4}){0,2}`)
	queryGen    = rapid.StringMatching(`[a-zA-Z]{0,3}`)
)

func catalogGen() *rapid.Generator[Catalog] {
	return rapid.Custom(func(t *rapid.T) Catalog {
		n := rapid.IntRange(0, 40).Draw(t, "size")
		c := make(Catalog, n)
		for i := range c {
			cents := rapid.Int64Range(1, 5000).Draw(t, "cents")
			c[i] = Product{
				ID:       int64(i + 1),
				Title:    titleGen.Draw(t, "title"),
				Price:    decimal.New(cents, -2),
				Category: categoryGen.Draw(t, "category"),
			}
		}
		return c
	})
}

func favoritesGen(c Catalog) *rapid.Generator[favSet] {
	return rapid.Custom(func(t *rapid.T) favSet {
		favs := favSet{}
		for _, p := range c {
			if rapid.Bool().Draw(t, "fav") {
				favs[p.ID] = true
			}
		}
		// ids outside the catalog must never surface
		stale := rapid.IntRange(0, 5).Draw(t, "stale")
		favs[int64(len(c)+100+stale)] = true
		return favs
	})
}

func filterStateGen(c Catalog) *rapid.Generator[FilterState] {
	return rapid.Custom(func(t *rapid.T) FilterState {
		return FilterState{
			Search:        queryGen.Draw(t, "search"),
			Category:      rapid.SampledFrom(Categories(c)).Draw(t, "category"),
			FavoritesOnly: rapid.Bool().Draw(t, "favoritesOnly"),
			Sort:          rapid.SampledFrom([]SortMode{SortDefault, SortPriceAsc, SortPriceDesc}).Draw(t, "sort"),
		}
	})
}

func TestProperty_Filter_EveryResultMatches(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := catalogGen().Draw(t, "catalog")
		favs := favoritesGen(c).Draw(t, "favs")
		fs := filterStateGen(c).Draw(t, "filter")

		got := Apply(c, fs, favs)
		inResult := map[int64]bool{}
		for _, p := range got {
			inResult[p.ID] = true
			if fs.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(fs.Search)) {
				t.Fatalf("product %d title %q does not contain %q", p.ID, p.Title, fs.Search)
			}
			if fs.Category != AllCategories && p.Category != fs.Category {
				t.Fatalf("product %d category %q, want %q", p.ID, p.Category, fs.Category)
			}
			if fs.FavoritesOnly && !favs[p.ID] {
				t.Fatalf("product %d is not a favorite", p.ID)
			}
		}
		for _, p := range c {
			if fs.Matches(p, favs) && !inResult[p.ID] {
				t.Fatalf("matching product %d missing from result", p.ID)
			}
		}
	})
}

func TestProperty_Filter_PreservesCatalogOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := catalogGen().Draw(t, "catalog")
		fs := filterStateGen(c).Draw(t, "filter")
		fs.Sort = SortDefault

		got := Apply(c, fs, nil)
		for i := 1; i < len(got); i++ {
			if got[i-1].ID >= got[i].ID {
				t.Fatalf("order broken at %d: %d before %d", i, got[i-1].ID, got[i].ID)
			}
		}
	})
}

func TestProperty_Sort_MonotonicAndStable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := catalogGen().Draw(t, "catalog")
		mode := rapid.SampledFrom([]SortMode{SortPriceAsc, SortPriceDesc}).Draw(t, "mode")

		got := Sort(c, mode)
		if len(got) != len(c) {
			t.Fatalf("Sort changed length: %d != %d", len(got), len(c))
		}
		for i := 1; i < len(got); i++ {
			cmp := got[i-1].Price.Cmp(got[i].Price)
			if mode == SortPriceDesc {
				cmp = -cmp
			}
			if cmp > 0 {
				t.Fatalf("not monotonic at %d: %s then %s", i, got[i-1].Price, got[i].Price)
			}
			if cmp == 0 && got[i-1].ID > got[i].ID {
				t.Fatalf("tie at %d not stable: %d before %d", i, got[i-1].ID, got[i].ID)
			}
		}
	})
}

func TestProperty_Paginate_CoversEveryItemOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := catalogGen().Draw(t, "catalog")
		items := []Product(c)

		total := TotalPages(len(items), ItemsPerPage)
		sum := 0
		for n := 1; n <= total; n++ {
			p := Paginate(items, n, ItemsPerPage)
			if n < total && len(p.Items) != ItemsPerPage {
				t.Fatalf("page %d has %d items, want %d", n, len(p.Items), ItemsPerPage)
			}
			for i, item := range p.Items {
				if want := items[(n-1)*ItemsPerPage+i].ID; item.ID != want {
					t.Fatalf("page %d item %d = %d, want %d", n, i, item.ID, want)
				}
			}
			sum += len(p.Items)
		}
		if sum != len(items) {
			t.Fatalf("pages hold %d items, want %d", sum, len(items))
		}
		if len(items) > 0 {
			last := Paginate(items, total, ItemsPerPage)
			want := len(items) - (total-1)*ItemsPerPage
			if len(last.Items) != want {
				t.Fatalf("last page has %d items, want %d", len(last.Items), want)
			}
		}
	})
}

func TestProperty_Paginate_ClampsAnyRequest(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := catalogGen().Draw(t, "catalog")
		page := rapid.IntRange(-50, 50).Draw(t, "page")

		p := Paginate(c, page, ItemsPerPage)
		if p.Number < 1 || p.Number > p.TotalPages {
			t.Fatalf("page %d outside [1, %d]", p.Number, p.TotalPages)
		}
		if len(p.Items) > ItemsPerPage {
			t.Fatalf("page holds %d items", len(p.Items))
		}
	})
}

func TestProperty_Browser_FilterChangesResetPage(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := catalogGen().Draw(t, "catalog")
		favs := favoritesGen(c).Draw(t, "favs")
		b := NewBrowser(c)

		t.Repeat(map[string]func(*rapid.T){
			"search": func(t *rapid.T) {
				b.SetSearch(queryGen.Draw(t, "search"))
				if b.Page() != 1 {
					t.Fatalf("page = %d after search, want 1", b.Page())
				}
			},
			"category": func(t *rapid.T) {
				b.CycleCategory(rapid.SampledFrom([]int{-1, 1}).Draw(t, "step"))
				if b.Page() != 1 {
					t.Fatalf("page = %d after category, want 1", b.Page())
				}
			},
			"favorites": func(t *rapid.T) {
				b.ToggleFavoritesOnly()
				if b.Page() != 1 {
					t.Fatalf("page = %d after favorites toggle, want 1", b.Page())
				}
			},
			"sort": func(t *rapid.T) {
				b.CycleSort()
				if b.Page() != 1 {
					t.Fatalf("page = %d after sort, want 1", b.Page())
				}
			},
			"next": func(t *rapid.T) {
				before := b.View(favs).Page
				b.NextPage(favs)
				after := b.View(favs).Page
				if before.HasNext() && after.Number != before.Number+1 {
					t.Fatalf("next: %d -> %d", before.Number, after.Number)
				}
				if !before.HasNext() && after.Number != before.Number {
					t.Fatalf("next past end moved %d -> %d", before.Number, after.Number)
				}
			},
			"prev": func(t *rapid.T) {
				before := b.View(favs).Page
				b.PrevPage(favs)
				after := b.View(favs).Page
				if before.HasPrev() && after.Number != before.Number-1 {
					t.Fatalf("prev: %d -> %d", before.Number, after.Number)
				}
				if !before.HasPrev() && after.Number != 1 {
					t.Fatalf("prev before start moved to %d", after.Number)
				}
			},
			"": func(t *rapid.T) {
				v := b.View(favs)
				if v.Page.Number < 1 || v.Page.Number > v.Page.TotalPages {
					t.Fatalf("page %d outside [1, %d]", v.Page.Number, v.Page.TotalPages)
				}
				if v.ShowPagination != (v.Page.TotalPages > 1) {
					t.Fatalf("ShowPagination = %v with %d pages", v.ShowPagination, v.Page.TotalPages)
				}
				if v.Empty != (v.Page.Total == 0) {
					t.Fatalf("Empty = %v with %d results", v.Empty, v.Page.Total)
				}
			},
		})
	})
}
