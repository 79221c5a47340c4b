package yahoo

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/nroux/assetcorr/date"
)

// The cache is one JSON file per ticker. A file older than CacheDays is
// stale; a file that fails to parse is deleted and the ticker refetched.

func (c *Client) cacheFile(ticker string) string {
	return filepath.Join(c.CacheDir, ticker+"_history.json")
}

// cached returns the cached history for a ticker if it is fresh.
func (c *Client) cached(ticker string) (*History, bool) {
	if c.CacheDir == "" || c.CacheDays <= 0 {
		return nil, false
	}
	file := c.cacheFile(ticker)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, false
	}

	h := new(History)
	if err := json.Unmarshal(content, h); err != nil {
		log.Printf("corrupted cache %s (removed): %v", file, err)
		os.Remove(file)
		return nil, false
	}
	if date.Today().After(h.Fetched.Add(c.CacheDays)) {
		return nil, false // stale
	}
	return h, true
}

// store writes the history to the cache. Cache write failures are logged and
// ignored: the fetched data is still good.
func (c *Client) store(h *History) {
	if c.CacheDir == "" {
		return
	}
	if err := os.MkdirAll(c.CacheDir, 0755); err != nil {
		log.Printf("cache write err (ignored): %v", err)
		return
	}
	content, err := json.MarshalIndent(h, "", " ")
	if err != nil {
		log.Printf("cache write err (ignored): %v", err)
		return
	}
	if err := os.WriteFile(c.cacheFile(h.Ticker), content, 0644); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
}
