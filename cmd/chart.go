package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nroux/assetcorr/renderer"
)

type chartCmd struct {
	width  int
	height int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "plot the relative performance of the watchlist" }
func (*chartCmd) Usage() string {
	return `chart [-w <cols>] [-h <rows>]

  Plots the watchlist instruments on one ASCII line chart, normalized to 1.0
  at the first date they all share.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.width, "w", 100, "chart width in columns")
	f.IntVar(&c.height, "h", 20, "chart height in rows")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := renderer.RelativeChart(os.Stdout, series, c.width, c.height); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
