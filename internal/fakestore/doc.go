// Package fakestore provides an HTTP client for the Fake Store product API.
//
// # Overview
//
// The client reads two endpoints and maps them onto the catalog model:
//
//   - GET {base}/products: the full catalog, a JSON array of products
//   - GET {base}/products/{id}: a single product
//
// Responses are decoded with go-faster/jx. Prices and rating rates go straight
// from the JSON number text into decimal.Decimal, never through float64. The
// rating object may be missing or null.
//
// # Client Usage
//
//	client, err := fakestore.NewClient("https://fakestoreapi.com",
//		fakestore.WithTimeout(10*time.Second),
//		fakestore.WithLogger(logger.Named("fetcher")),
//	)
//	if err != nil {
//		return err
//	}
//	products, err := client.FetchCatalog(ctx)
//
// # URL Construction
//
// The base URL keeps its path as a prefix, so a mirror mounted under a
// sub-path works:
//
//   - "" → https://fakestoreapi.com
//   - "fakestoreapi.com" → https://fakestoreapi.com
//   - "http://localhost:3000/api/" → http://localhost:3000/api
//
// # Error Handling
//
// Every failed fetch returns a *FetchError whose Message is safe to show to a
// user as-is ("Failed to fetch products", "Failed to fetch product"). The
// underlying cause is available through errors.Unwrap, so callers can test for
// context.DeadlineExceeded or ErrNotFound. The Fake Store API answers unknown
// product ids with 200 and an empty body; that case is reported as ErrNotFound
// too.
//
// # Concurrency
//
// Client is safe for concurrent use. Concurrent FetchCatalog calls share a
// single request; each caller receives its own copy of the slice.
//
// There is no retry and no cache. Retrying is a user action handled by the
// caller.
package fakestore
