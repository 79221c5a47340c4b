package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/nroux/assetcorr"
	"github.com/nroux/assetcorr/date"
	"github.com/nroux/assetcorr/renderer"
)

type correlateCmd struct {
	frequencies string
	useReturns  bool
	deflate     bool
	start       string
}

func (*correlateCmd) Name() string     { return "correlate" }
func (*correlateCmd) Synopsis() string { return "print pairwise correlation matrices for the watchlist" }
func (*correlateCmd) Usage() string {
	return `correlate [-f <freq,...>] [-returns] [-deflate -start <date>]

  Computes the pairwise Pearson correlation matrix of the watchlist
  instruments at each requested resampling frequency, on the longest
  common date coverage of each pair.
`
}

func (c *correlateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.frequencies, "f", "daily,weekly,monthly,semiannual,yearly", "comma-separated resampling frequencies")
	f.BoolVar(&c.useReturns, "returns", false, "correlate period returns instead of price levels")
	f.BoolVar(&c.deflate, "deflate", false, "adjust prices for cumulative inflation first")
	f.StringVar(&c.start, "start", "", "inflation adjustment start date (required with -deflate)")
}

func (c *correlateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var periods []date.Period
	for _, name := range strings.Split(c.frequencies, ",") {
		p, err := date.ParsePeriod(strings.TrimSpace(name))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		periods = append(periods, p)
	}

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	series, err := LoadSeries(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.deflate {
		if c.start == "" {
			fmt.Fprintln(os.Stderr, "-deflate requires -start")
			return subcommands.ExitUsageError
		}
		start, err := date.Parse(c.start)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		if series, err = DeflateSeries(cfg, series, start); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	mode := assetcorr.Prices
	if c.useReturns {
		mode = assetcorr.Returns
	}

	for _, period := range periods {
		m, err := assetcorr.Pairwise(series, period, mode)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		title := fmt.Sprintf("%s correlation (%s)", period, mode)
		renderer.Matrix(os.Stdout, title, m)
		renderer.Skipped(os.Stdout, m)
	}
	return subcommands.ExitSuccess
}
