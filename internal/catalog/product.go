// Package catalog holds the product model and the browsing pipeline that
// derives the visible page from the full catalog.
package catalog

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is a single catalog entry as published by the product source.
type Product struct {
	ID          int64
	Title       string
	Price       decimal.Decimal
	Description string
	Category    string
	Image       string
	Rating      *Rating
}

// Rating is the optional review summary attached to a product.
type Rating struct {
	Rate  decimal.Decimal
	Count int
}

// String renders the rating as "★ 4.0 (120)". A nil rating renders empty.
func (r *Rating) String() string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("★ %s (%d)", r.Rate.StringFixed(1), r.Count)
}

// Catalog is the ordered product list for a session. Order is source order and
// nothing in this package reorders or mutates it in place.
type Catalog []Product

// Lookup returns the product with the given id.
func (c Catalog) Lookup(id int64) (Product, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Source fetches catalog data from an external system.
type Source interface {
	FetchCatalog(ctx context.Context) (Catalog, error)
	FetchProduct(ctx context.Context, id int64) (Product, error)
}
