// Package nbp implements a rate source backed by the National Bank of Poland
// exchange rates web API (api.nbp.pl). One request covers one currency code
// over one date range; rates are mid rates from the configured table type.
package nbp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pbialczyk/nbp_rates_app/internal/core/domain"
)

const (
	defaultBaseURL   = "https://api.nbp.pl/api"
	defaultTableType = "a"
)

// Client fetches mid-rate series from the NBP web API.
type Client struct {
	baseURL   string
	tableType string
	client    *http.Client
	now       func() time.Time
}

// New creates a Client with the given options applied.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   defaultBaseURL,
		tableType: defaultTableType,
		client:    &http.Client{Timeout: 30 * time.Second},
		now:       time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithTableType sets the NBP table type to query ("a", "b" or "c").
func WithTableType(t string) Option {
	return func(c *Client) { c.tableType = t }
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithClock overrides the time source used to resolve window offsets.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// ratesResponse mirrors the relevant part of the NBP exchangerates payload.
// Each rates entry carries effectiveDate and mid, which is exactly the shape
// of a domain observation.
type ratesResponse struct {
	Table    string               `json:"table"`
	Currency string               `json:"currency"`
	Code     string               `json:"code"`
	Rates    []domain.Observation `json:"rates"`
}

// FetchSeries retrieves the mid-rate observations for one currency code over
// the window. The NBP API returns at most one observation per publication day;
// weekends and holidays are simply absent from the series.
func (c *Client) FetchSeries(ctx context.Context, currencyCode string, window domain.DateWindow) ([]domain.Observation, error) {
	if currencyCode == "" {
		return nil, fmt.Errorf("currency code cannot be empty")
	}
	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fetch window: %w", err)
	}

	now := c.now()
	reqURL := fmt.Sprintf("%s/exchangerates/rates/%s/%s/%s/%s/",
		c.baseURL,
		c.tableType,
		strings.ToLower(currencyCode),
		window.StartDate(now),
		window.EndDate(now),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build rates request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates for %s: %w", currencyCode, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nbp returned HTTP %d for %s", res.StatusCode, currencyCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read rates response for %s: %w", currencyCode, err)
	}

	var resp ratesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse rates response for %s: %w", currencyCode, err)
	}

	if len(resp.Rates) == 0 {
		return nil, fmt.Errorf("no rates in response for %s", currencyCode)
	}

	return resp.Rates, nil
}
