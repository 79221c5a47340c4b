// Package yahoo fetches daily closing-price histories from the Yahoo Finance
// chart API, with a per-ticker JSON disk cache.
package yahoo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/nroux/assetcorr"
	"github.com/nroux/assetcorr/date"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public Yahoo Finance API host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// History is the full daily history of one ticker, as fetched or cached.
// The currency is reported as-is; rejecting non-USD input is the caller's
// decision (assetcorr.NewSeries enforces it).
type History struct {
	Ticker   string            `json:"ticker"`
	Currency string            `json:"currency"`
	Fetched  date.Date         `json:"fetched"`
	Quotes   []assetcorr.Quote `json:"quotes"`
}

// Client fetches histories over HTTP and caches them on disk.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	CacheDir   string
	CacheDays  int // cached histories older than this are refetched; <= 0 disables reuse
}

// NewClient returns a client caching under cacheDir with the given expiry.
func NewClient(cacheDir string, cacheDays int) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    DefaultBaseURL,
		CacheDir:   cacheDir,
		CacheDays:  cacheDays,
	}
}

// History returns the full daily history for a ticker, serving a fresh
// cached copy when one exists.
func (c *Client) History(ticker string) (*History, error) {
	if h, ok := c.cached(ticker); ok {
		return h, nil
	}
	return c.Refresh(ticker)
}

// Refresh fetches the history from the API, bypassing any cached copy, and
// rewrites the cache on success.
func (c *Client) Refresh(ticker string) (*History, error) {
	h, err := c.fetch(ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", ticker, err)
	}
	c.store(h)
	return h, nil
}

func (c *Client) fetch(ticker string) (*History, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=max",
		c.BaseURL, url.PathEscape(ticker))

	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %s: %s", resp.Status, body)
	}

	return parseChart(ticker, body)
}

// parseChart extracts the daily closes from the chart API payload.
//
// The payload nests the interesting columns quite deep, so the fields are
// pulled out with jsonpath instead of a tower of anonymous structs. Numbers
// are decoded as json.Number and the closes go through decimal to avoid the
// double round-trip of a float re-parse.
func parseChart(ticker string, body []byte) (*History, error) {
	var jobj any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("decode chart payload: %w", err)
	}

	if jdesc, err := jsonpath.Get("$.chart.error.description", jobj); err == nil {
		if desc, ok := jdesc.(string); ok && desc != "" {
			return nil, fmt.Errorf("api error: %s", desc)
		}
	}

	currency, err := stringAt(jobj, "$.chart.result[0].meta.currency")
	if err != nil {
		return nil, err
	}
	timestamps, err := listAt(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, err
	}
	closes, err := listAt(jobj, "$.chart.result[0].indicators.quote[0].close")
	if err != nil {
		return nil, err
	}
	if len(closes) != len(timestamps) {
		return nil, fmt.Errorf("%d timestamps but %d closes", len(timestamps), len(closes))
	}

	h := &History{Ticker: ticker, Currency: currency, Fetched: date.Today()}
	for i, jts := range timestamps {
		num, ok := jts.(json.Number)
		if !ok {
			return nil, fmt.Errorf("timestamp %v is not a number", jts)
		}
		ts, err := strconv.ParseInt(num.String(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q: %w", num, err)
		}
		cnum, ok := closes[i].(json.Number)
		if !ok {
			continue // null bar (holiday, halted session)
		}
		price, err := decimal.NewFromString(cnum.String())
		if err != nil {
			return nil, fmt.Errorf("invalid close %q: %w", cnum, err)
		}
		h.Quotes = append(h.Quotes, assetcorr.Quote{
			Day:   date.New(time.Unix(ts, 0).UTC().Date()),
			Close: price.InexactFloat64(),
		})
	}
	if len(h.Quotes) == 0 {
		return nil, fmt.Errorf("no data returned")
	}
	return h, nil
}

// stringAt extracts a single string at a jsonpath.
func stringAt(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("missing %s: %w", path, err)
	}
	// jsonpath sometimes wraps a single answer in a list.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%s is %T, not a string", path, jval)
	}
	return s, nil
}

// listAt extracts an array at a jsonpath.
func listAt(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("missing %s: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is %T, not a list", path, jval)
	}
	return jlist, nil
}
