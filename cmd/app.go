// Package cmd implements the corrmat CLI.
package cmd

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"
	"github.com/nroux/assetcorr"
	"github.com/nroux/assetcorr/date"
	"github.com/nroux/assetcorr/store"
	"github.com/nroux/assetcorr/uscpi"
	"github.com/nroux/assetcorr/yahoo"
)

// Register the subcommands.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&correlateCmd{}, "statistics")
	c.Register(&autocorrCmd{}, "statistics")
	c.Register(&chartCmd{}, "statistics")
	c.Register(&fetchCmd{}, "data")
}

// as a CLI application with a very short lifecycle, globals flags are ok here.

var configFile = flag.String("config", "corrmat.yaml", "Path to the watchlist configuration file (YAML)")
var offline = flag.Bool("offline", false, "Serve histories from the SQLite archive instead of the network")

// LoadSeries fetches the history of every watchlist asset and builds the
// price series. One failing instrument is logged and skipped, never aborting
// the rest of the batch: it is simply absent from all matrices.
func LoadSeries(cfg *Config) ([]*assetcorr.Series, error) {
	var source func(ticker string) (*yahoo.History, error)

	if *offline {
		archive, err := store.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open archive: %w", err)
		}
		defer archive.Close()
		source = archive.LoadHistory
	} else {
		client := yahoo.NewClient(cfg.CacheDir, cfg.CacheDays)
		source = client.History
	}

	series := make([]*assetcorr.Series, 0, len(cfg.Assets))
	for _, asset := range cfg.Assets {
		h, err := source(asset.Ticker)
		if err != nil {
			log.Printf("skipping %s (%s): %v", asset.Label, asset.Ticker, err)
			continue
		}
		s, err := assetcorr.NewSeries(asset.Label, asset.Ticker, h.Currency, h.Quotes)
		if err != nil {
			log.Printf("skipping %s (%s): %v", asset.Label, asset.Ticker, err)
			continue
		}
		series = append(series, s)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no usable instrument in the watchlist")
	}
	return series, nil
}

// DeflateSeries converts every series to constant purchasing power from the
// given start date, using the configured annual inflation table.
func DeflateSeries(cfg *Config, series []*assetcorr.Series, start date.Date) ([]*assetcorr.Series, error) {
	rates, err := uscpi.Load(cfg.InflationCSV)
	if err != nil {
		return nil, err
	}
	curve, err := assetcorr.BuildCurve(rates, start, cfg.EndYear)
	if err != nil {
		return nil, err
	}

	// The curve covers [start, Dec 31 of EndYear]; quotes outside that window
	// cannot be adjusted and are cut off rather than mixed in nominally.
	end := date.New(cfg.EndYear+1, 1, 0)

	deflated := make([]*assetcorr.Series, 0, len(series))
	for _, s := range series {
		d, err := assetcorr.Deflate(s.Since(start).Until(end), curve)
		if err != nil {
			return nil, fmt.Errorf("deflate %s: %w", s.Label(), err)
		}
		deflated = append(deflated, d)
	}
	return deflated, nil
}
