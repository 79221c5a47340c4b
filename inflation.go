package assetcorr

import (
	"math"
	"time"

	"github.com/nroux/assetcorr/date"
)

// RateTable maps a calendar year to its average annual inflation rate, in
// percent. A table is typically loaded from a CSV source by the uscpi package.
type RateTable map[int]float64

// Curve is a cumulative daily inflation factor curve. It covers every
// calendar day from its start date through the end of its last year, with a
// strictly increasing factor for positive rates. Immutable once built.
type Curve struct {
	start   date.Date
	factors date.History[float64]
}

// Start returns the first day covered by the curve.
func (c *Curve) Start() date.Date { return c.start }

// Len returns the number of days covered.
func (c *Curve) Len() int { return c.factors.Len() }

// Factor returns the cumulative inflation factor on a given day.
func (c *Curve) Factor(day date.Date) (float64, bool) { return c.factors.Get(day) }

// BuildCurve computes the cumulative daily inflation factor curve from start
// through the last day of endYear.
//
// Each year compounds at (1 + rate/100)^(1/daysInYear), where daysInYear is
// 366 on leap years. A fixed 365 divisor would introduce a small but
// systematic drift every leap year. The running multiplier starts at 1.0 on
// the start date and is compounded once per calendar day; only days on or
// after start are recorded.
//
// Every year in [start.Year(), endYear] must be present in rates; a gap is a
// *MissingRateError.
func BuildCurve(rates RateTable, start date.Date, endYear int) (*Curve, error) {
	curve := &Curve{start: start}
	factor := 1.0
	for year := start.Year(); year <= endYear; year++ {
		rate, ok := rates[year]
		if !ok {
			return nil, &MissingRateError{Year: year}
		}
		daily := math.Pow(1+rate/100, 1/float64(date.DaysInYear(year)))
		for day := date.New(year, time.January, 1); day.Year() == year; day = day.Add(1) {
			if day.Before(start) {
				continue
			}
			factor *= daily
			curve.factors.Append(day, factor)
		}
	}
	return curve, nil
}

// Deflate divides each price of the series by the cumulative inflation factor
// of its date, expressing the series in constant purchasing power terms. The
// result is a new derived series; the input is left untouched.
//
// A date outside the curve coverage is a hard *OutsideCurveError: silently
// passing the nominal price through would mix adjusted and unadjusted values
// in one series. Restrict the series with Since(curve.Start()) first when the
// history predates the curve.
func Deflate(s *Series, curve *Curve) (*Series, error) {
	out := &Series{label: s.label, ticker: s.ticker}
	for day, price := range s.prices.Values() {
		factor, ok := curve.Factor(day)
		if !ok {
			return nil, &OutsideCurveError{Day: day}
		}
		out.prices.Append(day, price/factor)
	}
	return out, nil
}
