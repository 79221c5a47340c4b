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

type autocorrCmd struct {
	label       string
	frequencies string
}

func (*autocorrCmd) Name() string     { return "autocorr" }
func (*autocorrCmd) Synopsis() string { return "print lag-1 autocorrelation of period returns" }
func (*autocorrCmd) Usage() string {
	return `autocorr [-s <label>] [-f <freq,...>]

  Computes the lag-1 autocorrelation of period-over-period returns for one
  watchlist instrument, or for all of them when -s is omitted.
`
}

func (c *autocorrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.label, "s", "", "label of a single instrument to report on")
	f.StringVar(&c.frequencies, "f", "daily,monthly,yearly", "comma-separated resampling frequencies")
}

func (c *autocorrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	found := false
	for _, s := range series {
		if c.label != "" && s.Label() != c.label {
			continue
		}
		found = true
		rows := make([]renderer.AutocorrRow, 0, len(periods))
		for _, period := range periods {
			r, err := assetcorr.Lag1Autocorr(s, period)
			rows = append(rows, renderer.AutocorrRow{Period: period.String(), Value: r, Err: err})
		}
		renderer.AutocorrTable(os.Stdout, s.Label(), rows)
	}
	if !found {
		fmt.Fprintf(os.Stderr, "no instrument labeled %q in the watchlist\n", c.label)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
