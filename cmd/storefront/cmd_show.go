package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/go-faster/errors"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/fakestore"
)

type ShowCmd struct {
	ID int64 `arg:"" help:"Product id"`
}

func (c *ShowCmd) Run(g *Globals) error {
	p, err := g.Session.Client.FetchProduct(g.Ctx, c.ID)
	if err != nil {
		if errors.Is(err, fakestore.ErrNotFound) {
			return errors.Errorf("product %d not found", c.ID)
		}
		return err
	}

	prices := g.Session.Config.PriceFormatter()
	fav := "no"
	if g.Session.Favorites.IsFavorite(p.ID) {
		fav = "yes"
	}
	tw := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", p.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", p.Title)
	fmt.Fprintf(tw, "Category:\t%s\n", catalog.CategoryLabel(p.Category))
	fmt.Fprintf(tw, "Price:\t%s\n", prices.Format(p.Price))
	fmt.Fprintf(tw, "Rating:\t%s\n", ratingText(p.Rating))
	fmt.Fprintf(tw, "Favorite:\t%s\n", fav)
	if p.Image != "" {
		fmt.Fprintf(tw, "Image:\t%s\n", p.Image)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if p.Description != "" {
		_, err := fmt.Fprintf(g.Out, "\n%s\n", p.Description)
		return err
	}
	return nil
}
