package fakestore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap/zaptest"
)

const productsJSON = `[
  {"id":1,"title":"Fjallraven - Foldsack No. 1 Backpack","price":109.95,"description":"Your perfect pack","category":"men's clothing","image":"https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg","rating":{"rate":3.9,"count":120}},
  {"id":2,"title":"Mens Casual Premium Slim Fit T-Shirts","price":22.3,"description":"Slim-fitting style","category":"men's clothing","image":"https://fakestoreapi.com/img/71-3HjGNDUL.jpg"},
  {"id":5,"title":"John Hardy Women's Legends Naga","price":695,"description":"From our Legends Collection","category":"jewelery","image":"https://fakestoreapi.com/img/71pWzhdJNwL.jpg","rating":null}
]`

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("example.com")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "example.com" {
		t.Fatalf("url = %q, want https://example.com", u.String())
	}

	u, err = parseBaseURL("http://localhost:3000/api/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if got := u.String(); got != "http://localhost:3000/api" {
		t.Fatalf("url = %q, want http://localhost:3000/api", got)
	}
	if got := u.JoinPath("products", "3").String(); got != "http://localhost:3000/api/products/3" {
		t.Fatalf("joined url = %q", got)
	}
}

func TestParseBaseURL_RejectsMissingHost(t *testing.T) {
	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL returned nil error, want error")
	}
}

func TestWithTimeout_LeavesCallerClientAlone(t *testing.T) {
	hc := &http.Client{Timeout: time.Minute}

	c, err := NewClient("http://localhost:1", WithHTTPClient(hc), WithTimeout(2*time.Second))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if hc.Timeout != time.Minute {
		t.Fatalf("caller timeout = %v, want %v", hc.Timeout, time.Minute)
	}
	if c.http == hc {
		t.Fatalf("client shares the caller's http.Client")
	}
	if c.http.Timeout != 2*time.Second {
		t.Fatalf("client timeout = %v, want 2s", c.http.Timeout)
	}
}

func TestClient_FetchCatalog(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		if r.URL.Path != "/products" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productsJSON))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	products, err := c.FetchCatalog(ctx)
	if err != nil {
		t.Fatalf("FetchCatalog returned error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("FetchCatalog returned %d products, want 3", len(products))
	}
	if got := products[0].Price.String(); got != "109.95" {
		t.Fatalf("price = %q, want 109.95", got)
	}
	if products[0].Rating == nil || products[0].Rating.Count != 120 || products[0].Rating.Rate.String() != "3.9" {
		t.Fatalf("rating = %#v, want 3.9 (120)", products[0].Rating)
	}
	if products[1].Rating != nil || products[2].Rating != nil {
		t.Fatalf("missing and null ratings should decode to nil")
	}
	if products[2].Category != "jewelery" || products[2].ID != 5 {
		t.Fatalf("product = %#v, want id 5 jewelery", products[2])
	}
	if !strings.HasPrefix(gotUserAgent, "storefront/") {
		t.Fatalf("User-Agent = %q, want storefront/*", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClient_FetchCatalogDropsInvalidRecords(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"title":"ok","price":2},{"id":2,"title":"bad","price":-1}]`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	products, err := c.FetchCatalog(context.Background())
	if err != nil {
		t.Fatalf("FetchCatalog returned error: %v", err)
	}
	if len(products) != 1 || products[0].ID != 1 {
		t.Fatalf("products = %#v, want only id 1", products)
	}
}

func TestClient_FetchProduct(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/2":
			_, _ = w.Write([]byte(`{"id":2,"title":"Shirt","price":"22.30","category":"men's clothing","extra":{"nested":[1,2]}}`))
		case "/products/999":
			w.WriteHeader(http.StatusOK)
		case "/products/404":
			http.NotFound(w, r)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	p, err := c.FetchProduct(ctx, 2)
	if err != nil {
		t.Fatalf("FetchProduct returned error: %v", err)
	}
	if p.Title != "Shirt" || p.Price.String() != "22.3" {
		t.Fatalf("product = %#v, want Shirt at 22.3", p)
	}

	for _, id := range []int64{999, 404, 0} {
		_, err = c.FetchProduct(ctx, id)
		var fe *FetchError
		if !errors.As(err, &fe) {
			t.Fatalf("FetchProduct(%d) error = %v, want *FetchError", id, err)
		}
		if fe.Error() != "Failed to fetch product" {
			t.Fatalf("FetchProduct(%d) message = %q", id, fe.Error())
		}
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("FetchProduct(%d) error = %v, want ErrNotFound", id, fe.Detail())
		}
	}

	_, err = c.FetchProduct(ctx, 7)
	var fe *FetchError
	if !errors.As(err, &fe) || fe.StatusCode != http.StatusInternalServerError {
		t.Fatalf("FetchProduct(7) error = %#v, want status 500", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("status 500 must not map to ErrNotFound")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "nope", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchCatalog(context.Background())
	if err == nil || err.Error() != "Failed to decode products" {
		t.Fatalf("FetchCatalog error = %v, want decode failure", err)
	}

	fail.Store(true)
	_, err = c.FetchCatalog(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("FetchCatalog error = %v, want *FetchError", err)
	}
	if fe.Message != "Failed to fetch products" || fe.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("FetchError = %+v, want status 503 message", fe)
	}
	if !strings.Contains(fe.Detail(), "returned status 503") {
		t.Fatalf("Detail = %q, want status detail", fe.Detail())
	}
}

func TestClient_TimeoutBecomesFetchError(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.FetchCatalog(ctx)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("FetchCatalog error = %v, want *FetchError", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("FetchCatalog error = %v, want deadline exceeded in chain", fe.Detail())
	}
}

func TestClient_FetchCatalogSharesInFlightRequest(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write([]byte(productsJSON))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	const callers = 4
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.FetchCatalog(context.Background())
			errs <- err
		}()
	}
	// Let every caller join the in-flight request before it completes.
	deadline := time.Now().Add(2 * time.Second)
	for hits.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("FetchCatalog returned error: %v", err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("server hits = %d, want 1", got)
	}
}
