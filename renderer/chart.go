package renderer

import (
	"fmt"
	"io"

	"github.com/Rhymond/go-money"
	"github.com/guptarohit/asciigraph"
	"github.com/nroux/assetcorr"
)

// RelativeChart plots the relative performance of several series on one ASCII
// line chart. All series are restricted to their common dates and normalized
// to 1.0 at the first common date, so only the relative shape matters, not
// the price levels. A legend with the latest nominal price follows the chart.
func RelativeChart(w io.Writer, series []*assetcorr.Series, width, height int) error {
	common, err := assetcorr.CommonDates(series...)
	if err != nil {
		return err
	}
	if len(common) < 2 {
		return fmt.Errorf("only %d common dates, nothing to plot", len(common))
	}

	data := make([][]float64, 0, len(series))
	labels := make([]string, 0, len(series))
	for _, s := range series {
		points := s.At(common)
		base := points[0].Value
		if base == 0 {
			return fmt.Errorf("%s: first common price is zero, cannot normalize", s.Label())
		}
		row := make([]float64, len(points))
		for i, p := range points {
			row[i] = p.Value / base
		}
		data = append(data, row)
		labels = append(labels, s.Label())
	}

	plot := asciigraph.PlotMany(data,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.SeriesLegends(labels...),
		asciigraph.Caption(fmt.Sprintf("relative performance, %s .. %s", common[0], common[len(common)-1])),
	)
	fmt.Fprintln(w, plot)
	fmt.Fprintln(w)

	for _, s := range series {
		day, price := s.Latest()
		fmt.Fprintf(w, "%-14s last %s on %s\n", s.Label(), usd(price), day)
	}
	return nil
}

// usd formats a dollar amount the locale-aware way.
func usd(v float64) string {
	return money.NewFromFloat(v, money.USD).Display()
}
