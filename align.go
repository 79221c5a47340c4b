package assetcorr

import (
	"github.com/nroux/assetcorr/date"
)

// CommonDates returns the dates present in every given series, sorted in
// ascending order. This is the intersection of the date domains, not the
// union: cross-series statistics are only meaningful on common coverage.
//
// Fewer than two series is rejected with ErrInsufficientSeries. An empty
// intersection is a valid result; callers must treat it as "no statistic
// computable", not as a failure.
func CommonDates(series ...*Series) ([]date.Date, error) {
	if len(series) < 2 {
		return nil, ErrInsufficientSeries
	}

	// Count, for each date of the smallest series, the series containing it.
	smallest := series[0]
	for _, s := range series[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	common := make([]date.Date, 0, smallest.Len())
	for _, day := range smallest.Days() {
		shared := true
		for _, s := range series {
			if s == smallest {
				continue
			}
			if _, ok := s.Price(day); !ok {
				shared = false
				break
			}
		}
		if shared {
			common = append(common, day)
		}
	}
	return common, nil
}
