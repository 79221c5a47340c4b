package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/nroux/assetcorr/store"
	"github.com/nroux/assetcorr/yahoo"
)

type fetchCmd struct {
	list bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "refresh the cache and the offline archive" }
func (*fetchCmd) Usage() string {
	return `fetch [-list]

  Fetches the full history of every watchlist instrument, bypassing the
  cache, and records it into the SQLite archive for offline runs.
  With -list, prints the tickers already archived and exits.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the archived tickers instead of fetching")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	archive, err := store.Open(cfg.SQLitePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer archive.Close()

	if c.list {
		if err := listArchive(os.Stdout, archive); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	client := yahoo.NewClient(cfg.CacheDir, cfg.CacheDays)
	failed := 0
	for _, asset := range cfg.Assets {
		h, err := client.Refresh(asset.Ticker)
		if err != nil {
			log.Printf("fetch %s (%s): %v", asset.Label, asset.Ticker, err)
			failed++
			continue
		}
		if err := archive.SaveHistory(h); err != nil {
			log.Printf("archive %s: %v", asset.Ticker, err)
			failed++
			continue
		}
		fmt.Printf("%-14s %5d quotes, %s .. %s\n", asset.Label, len(h.Quotes),
			h.Quotes[0].Day, h.Quotes[len(h.Quotes)-1].Day)
	}
	if failed == len(cfg.Assets) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// listArchive prints the archived tickers, one per line.
func listArchive(w io.Writer, archive *store.Store) error {
	tickers, err := archive.Tickers()
	if err != nil {
		return err
	}
	if len(tickers) == 0 {
		fmt.Fprintln(w, "archive is empty, run fetch first")
		return nil
	}
	for _, t := range tickers {
		fmt.Fprintln(w, t)
	}
	return nil
}
