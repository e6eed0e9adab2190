package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okarpenko/listing-gateway/internal/metrics"
)

// HTTPClient implements Client against the backend's JSON HTTP API.
type HTTPClient struct {
	baseURL     string
	client      *http.Client
	rateLimiter *RateLimiter
}

// HTTPOption configures the HTTPClient.
type HTTPOption func(*HTTPClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// backend call limits. When set, every call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) HTTPOption {
	return func(c *HTTPClient) {
		c.rateLimiter = r
	}
}

// NewHTTPClient creates a new backend API client for the given base URL.
func NewHTTPClient(baseURL string, opts ...HTTPOption) *HTTPClient {
	c := &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Listings implements Client.Listings by querying GET /listings.
func (c *HTTPClient) Listings(ctx context.Context, q Query) ([]RawListing, error) {
	var listings []RawListing
	u := c.baseURL + "/listings?" + q.Values().Encode()
	if err := c.get(ctx, "listings", u, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// Listing implements Client.Listing by querying GET /listings/{id}.
func (c *HTTPClient) Listing(ctx context.Context, id int) (*RawListing, error) {
	var listing RawListing
	u := fmt.Sprintf("%s/listings/%d", c.baseURL, id)
	if err := c.get(ctx, "listing", u, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// Brands implements Client.Brands by querying GET /brands.
func (c *HTTPClient) Brands(ctx context.Context) ([]BrandRef, error) {
	var brands []BrandRef
	if err := c.get(ctx, "brands", c.baseURL+"/brands", &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// Models implements Client.Models by querying GET /brands/{id}/models.
func (c *HTTPClient) Models(ctx context.Context, brandID int) ([]ModelRef, error) {
	var models []ModelRef
	u := fmt.Sprintf("%s/brands/%d/models", c.baseURL, brandID)
	if err := c.get(ctx, "models", u, &models); err != nil {
		return nil, err
	}
	return models, nil
}

// get performs a GET call against the backend and decodes the JSON response
// into dst. Transport and status failures are wrapped in ErrUnavailable.
func (c *HTTPClient) get(ctx context.Context, op, u string, dst any) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.BackendDailyLimitHits.Inc()
			}
			return fmt.Errorf("rate limit: %w", err)
		}
		metrics.BackendDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	metrics.BackendRequestsTotal.WithLabelValues(op).Inc()
	start := time.Now()
	defer func() {
		metrics.BackendRequestDuration.
			WithLabelValues(op).
			Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.BackendErrorsTotal.WithLabelValues(op).Inc()
		return fmt.Errorf("%w: executing %s request: %v", ErrUnavailable, op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.BackendErrorsTotal.WithLabelValues(op).Inc()
		return fmt.Errorf("%w: reading %s response: %v", ErrUnavailable, op, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", ErrNotFound, op, u)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.BackendErrorsTotal.WithLabelValues(op).Inc()
		return fmt.Errorf(
			"%w: %s returned status %d: %s",
			ErrUnavailable, op, resp.StatusCode, string(body),
		)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		metrics.BackendErrorsTotal.WithLabelValues(op).Inc()
		return fmt.Errorf("%w: parsing %s response: %v", ErrUnavailable, op, err)
	}

	return nil
}
