package fakestore

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/five82/storefront/internal/catalog"
)

// Ensure Client implements catalog.Source at compile time.
var _ catalog.Source = (*Client)(nil)

const (
	DefaultBaseURL        = "https://fakestoreapi.com"
	DefaultRequestTimeout = 15 * time.Second
	defaultUserAgent      = "storefront/0.1"
	maxBodyBytes          = 8 << 20
)

// Client talks to a Fake Store compatible HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    *zap.Logger
	group     singleflight.Group
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Non-positive values keep the default.
// A client passed through WithHTTPClient is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(lg *zap.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.logger = lg
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client for baseURL. An empty value uses DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: DefaultRequestTimeout},
		userAgent: defaultUserAgent,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised API root.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// FetchCatalog retrieves the full product collection. Concurrent callers share
// one request.
func (c *Client) FetchCatalog(ctx context.Context) (catalog.Catalog, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	v, err, shared := c.group.Do("catalog", func() (any, error) {
		return c.fetchCatalog(ctx)
	})
	if err != nil {
		return nil, err
	}
	products := v.(catalog.Catalog)
	if shared {
		products = slices.Clone(products)
	}
	return products, nil
}

func (c *Client) fetchCatalog(ctx context.Context) (catalog.Catalog, error) {
	start := time.Now()
	body, err := c.get(ctx, "products")
	if err != nil {
		return nil, newFetchError(msgFetchProducts, err)
	}
	products, skipped, err := DecodeProducts(body)
	if err != nil {
		return nil, newFetchError(msgDecodeProducts, err)
	}
	for _, rec := range skipped {
		c.logger.Warn("Skipping invalid product",
			zap.Int("index", rec.Index),
			zap.Error(rec.Err),
		)
	}
	c.logger.Info("Catalog fetched",
		zap.Int("products", len(products)),
		zap.Duration("took", time.Since(start)),
	)
	return products, nil
}

// FetchProduct retrieves a single product by id.
func (c *Client) FetchProduct(ctx context.Context, id int64) (catalog.Product, error) {
	if c == nil {
		return catalog.Product{}, errors.New("client is nil")
	}
	if id <= 0 {
		return catalog.Product{}, newFetchError(msgFetchProduct, errors.Wrapf(ErrNotFound, "id %d", id))
	}
	body, err := c.get(ctx, "products", strconv.FormatInt(id, 10))
	if err != nil {
		return catalog.Product{}, newFetchError(msgFetchProduct, err)
	}
	// Unknown ids come back as 200 with an empty body.
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return catalog.Product{}, newFetchError(msgFetchProduct, errors.Wrapf(ErrNotFound, "id %d", id))
	}
	p, err := DecodeProduct(body)
	if err != nil {
		return catalog.Product{}, newFetchError(msgFetchProduct, err)
	}
	return p, nil
}

func (c *Client) get(ctx context.Context, elem ...string) ([]byte, error) {
	reqURL := c.baseURL.JoinPath(elem...)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug("Request", zap.String("url", reqURL.String()))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Unexpected status",
			zap.String("url", reqURL.String()),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &StatusError{Path: reqURL.Path, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	return body, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, errors.Wrapf(err, "parse api url %q", raw)
	}
	if u.Host == "" {
		return nil, errors.Errorf("api url %q has no host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
