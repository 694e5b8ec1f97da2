package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/go-faster/errors"

	"github.com/five82/storefront/internal/catalog"
)

type ListCmd struct {
	Search    string `short:"s" help:"Case-insensitive title search"`
	Category  string `default:"all" help:"Category token, or all"`
	Favorites bool   `short:"f" help:"Only show favorites"`
	Sort      string `default:"default" enum:"default,price-asc,price-desc" help:"Sort order (default, price-asc, price-desc)"`
	Page      int    `short:"p" default:"1" help:"Page number"`
}

func (c *ListCmd) Run(g *Globals) error {
	mode, ok := catalog.ParseSortMode(c.Sort)
	if !ok {
		return errors.Errorf("unknown sort %q", c.Sort)
	}
	products, err := g.Session.LoadCatalog(g.Ctx)
	if err != nil {
		return err
	}

	favs := g.Session.Favorites
	browser := catalog.NewBrowser(products)
	browser.SetFilter(catalog.FilterState{
		Search:        c.Search,
		Category:      c.Category,
		FavoritesOnly: c.Favorites,
		Sort:          mode,
	})
	browser.SetPage(c.Page, favs)
	view := browser.View(favs)

	if view.Empty {
		if view.SearchActive {
			_, err := fmt.Fprintln(g.Out, "No products match your search")
			return err
		}
		_, err := fmt.Fprintln(g.Out, "No products found")
		return err
	}

	prices := g.Session.Config.PriceFormatter()
	tw := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE\tRATING\tFAV")
	fmt.Fprintln(tw, "--\t-----\t--------\t-----\t------\t---")
	for _, p := range view.Page.Items {
		fav := ""
		if favs.IsFavorite(p.ID) {
			fav = "♥"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			clip(p.Title, 48),
			catalog.CategoryLabel(p.Category),
			prices.Format(p.Price),
			ratingText(p.Rating),
			fav,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(g.Out, "\nPage %d of %d (%d items)\n", view.Page.Number, view.Page.TotalPages, view.Page.Total)
	return err
}
