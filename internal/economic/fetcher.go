// Package economic provides the macroeconomic-indicator source: a World
// Bank API client with documented fallback constants and a TTL cache
// guarding the shared snapshot.
package economic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/domain"
)

const (
	// DefaultBaseURL is the World Bank API v2 endpoint.
	DefaultBaseURL = "https://api.worldbank.org/v2"

	// DefaultCountry scopes the indicator queries.
	DefaultCountry = "IN"

	gdpIndicatorCode = "NY.GDP.MKTP.KD.ZG"
	cpiIndicatorCode = "FP.CPI.TOTL.ZG"

	defaultFetchTimeout = 10 * time.Second
)

// Client fetches GDP-growth and CPI-inflation series from the World
// Bank API. The zero value is not usable; construct with NewClient.
type Client struct {
	baseURL string
	country string
	http    *http.Client
	log     zerolog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint, primarily for tests.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithCountry overrides the country code scoping the queries.
func WithCountry(code string) ClientOption {
	return func(c *Client) { c.country = code }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

func NewClient(log zerolog.Logger, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		country: DefaultCountry,
		http:    &http.Client{Timeout: defaultFetchTimeout},
		log:     log.With().Str("component", "economic").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves the latest non-null GDP-growth and CPI-inflation
// values. Both indicators must resolve for the fetch to succeed.
func (c *Client) Fetch(ctx context.Context) (domain.EconomicIndicators, error) {
	gdp, err := c.fetchIndicator(ctx, gdpIndicatorCode)
	if err != nil {
		return domain.EconomicIndicators{}, fmt.Errorf("fetch GDP growth: %w", err)
	}
	cpi, err := c.fetchIndicator(ctx, cpiIndicatorCode)
	if err != nil {
		return domain.EconomicIndicators{}, fmt.Errorf("fetch CPI inflation: %w", err)
	}
	return domain.EconomicIndicators{
		GDPGrowth:    gdp,
		CPIInflation: cpi,
		FetchedAt:    time.Now().UTC(),
	}, nil
}

// FetchOrFallback degrades to the documented fallback constants on any
// fetch failure instead of surfacing an error.
func (c *Client) FetchOrFallback(ctx context.Context) domain.EconomicIndicators {
	ind, err := c.Fetch(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("indicator fetch failed, using fallback constants")
		return domain.FallbackIndicators()
	}
	return ind
}

// worldBankPoint is one observation in the API's series payload. Null
// values stay nil.
type worldBankPoint struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

func (c *Client) fetchIndicator(ctx context.Context, code string) (domain.Indicator, error) {
	u := fmt.Sprintf("%s/country/%s/indicator/%s?%s",
		c.baseURL, url.PathEscape(c.country), url.PathEscape(code),
		url.Values{"format": {"json"}, "per_page": {"100"}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.Indicator{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Indicator{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Indicator{}, fmt.Errorf("indicator %s: unexpected status %d", code, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.Indicator{}, err
	}

	// The payload is a two-element array: [metadata, observations].
	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return domain.Indicator{}, fmt.Errorf("indicator %s: malformed response: %w", code, err)
	}
	if len(envelope) < 2 {
		return domain.Indicator{}, fmt.Errorf("indicator %s: no data in response", code)
	}
	var points []worldBankPoint
	if err := json.Unmarshal(envelope[1], &points); err != nil {
		return domain.Indicator{}, fmt.Errorf("indicator %s: malformed series: %w", code, err)
	}

	// Pick the most recent non-null observation regardless of the
	// order the API returned them in.
	var latest *worldBankPoint
	for i := range points {
		p := &points[i]
		if p.Value == nil {
			continue
		}
		if latest == nil || p.Date > latest.Date {
			latest = p
		}
	}
	if latest == nil {
		return domain.Indicator{}, fmt.Errorf("indicator %s: no non-null values", code)
	}

	c.log.Debug().Str("indicator", code).Str("period", latest.Date).Float64("value", *latest.Value).Msg("fetched indicator")
	return domain.Indicator{
		Value:  decimal.NewFromFloat(*latest.Value),
		Period: latest.Date,
	}, nil
}
