package assetcorr

import (
	"errors"
	"fmt"

	"github.com/nroux/assetcorr/date"
)

// ErrInsufficientSeries is returned when fewer than two series are passed to
// an operation that needs at least a pair. This is a programmer error.
var ErrInsufficientSeries = errors.New("at least two series are required")

// ErrTooFewPoints is returned when a series does not carry enough observations
// for the requested statistic.
var ErrTooFewPoints = errors.New("not enough observations")

// ErrZeroVariance is returned when a statistic is undefined because the input
// is constant.
var ErrZeroVariance = errors.New("zero variance")

// CurrencyError reports an instrument quoted in a currency other than USD,
// or in an unknown currency code.
type CurrencyError struct {
	Ticker   string
	Currency string
}

func (e *CurrencyError) Error() string {
	return fmt.Sprintf("instrument %q is quoted in %q, want USD", e.Ticker, e.Currency)
}

// MissingRateError reports a year inside the requested deflation range that is
// absent from the annual rate table. Interpolating silently would corrupt
// every downstream statistic, so this is a hard error.
type MissingRateError struct {
	Year int
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no inflation rate for year %d", e.Year)
}

// OutsideCurveError reports a price dated outside the inflation curve coverage.
// Passing the nominal price through instead would mix adjusted and unadjusted
// values in one series undetectably.
type OutsideCurveError struct {
	Day date.Date
}

func (e *OutsideCurveError) Error() string {
	return fmt.Sprintf("date %s is outside the inflation curve", e.Day)
}
