package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/five82/storefront/internal/catalog"
)

type CategoriesCmd struct{}

func (c *CategoriesCmd) Run(g *Globals) error {
	products, err := g.Session.LoadCatalog(g.Ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	for _, token := range catalog.Categories(products) {
		fmt.Fprintf(tw, "%s\t%s\n", token, catalog.CategoryLabel(token))
	}
	return tw.Flush()
}
