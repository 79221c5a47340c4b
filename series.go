package assetcorr

import (
	"github.com/Rhymond/go-money"
	"github.com/nroux/assetcorr/date"
)

// Quote is one raw daily observation as produced by a market data provider.
type Quote struct {
	Day   date.Date `json:"day"`
	Close float64   `json:"close"`
}

// Series is an ordered, date-keyed series of closing prices for one instrument.
// Dates are unique; gaps are meaningful (no data that day) and are not an error.
// A Series is never mutated after construction: deflation and restriction
// produce derived copies, preserving the original for traceability.
type Series struct {
	label  string
	ticker string
	prices date.History[float64]
}

// Point is one (date, value) observation of an aligned or resampled series.
type Point struct {
	Day   date.Date
	Value float64
}

// NewSeries builds a Series from raw provider quotes.
//
// The currency is a hard precondition: anything but USD is rejected with a
// *CurrencyError. The currency code itself must be a known ISO-4217 code.
// Duplicate dates keep the last quote.
func NewSeries(label, ticker, currency string, quotes []Quote) (*Series, error) {
	if money.GetCurrency(currency) == nil {
		return nil, &CurrencyError{Ticker: ticker, Currency: currency}
	}
	if currency != money.USD {
		return nil, &CurrencyError{Ticker: ticker, Currency: currency}
	}
	s := &Series{label: label, ticker: ticker}
	for _, q := range quotes {
		s.prices.Append(q.Day, q.Close)
	}
	return s, nil
}

// Label returns the display identifier of the series.
func (s *Series) Label() string { return s.label }

// Ticker returns the provider identifier of the series.
func (s *Series) Ticker() string { return s.ticker }

// Len returns the number of observations.
func (s *Series) Len() int { return s.prices.Len() }

// Price returns the closing price on a given day.
func (s *Series) Price(day date.Date) (float64, bool) { return s.prices.Get(day) }

// Latest returns the most recent observation.
func (s *Series) Latest() (date.Date, float64) { return s.prices.Latest() }

// Days returns all observed dates in ascending order.
func (s *Series) Days() []date.Date { return s.prices.Days() }

// Points returns all observations in ascending date order.
func (s *Series) Points() []Point {
	points := make([]Point, 0, s.prices.Len())
	for day, price := range s.prices.Values() {
		points = append(points, Point{Day: day, Value: price})
	}
	return points
}

// At restricts the series to the given dates, in ascending order.
// Dates absent from the series are skipped, so passing the common dates of
// several series yields equal-length point slices for all of them.
func (s *Series) At(days []date.Date) []Point {
	points := make([]Point, 0, len(days))
	for _, day := range days {
		if price, ok := s.prices.Get(day); ok {
			points = append(points, Point{Day: day, Value: price})
		}
	}
	return points
}

// Since returns a derived series restricted to dates on or after start.
func (s *Series) Since(start date.Date) *Series {
	out := &Series{label: s.label, ticker: s.ticker}
	for day, price := range s.prices.Values() {
		if !day.Before(start) {
			out.prices.Append(day, price)
		}
	}
	return out
}

// Until returns a derived series restricted to dates on or before end.
func (s *Series) Until(end date.Date) *Series {
	out := &Series{label: s.label, ticker: s.ticker}
	for day, price := range s.prices.Values() {
		if !day.After(end) {
			out.prices.Append(day, price)
		}
	}
	return out
}
