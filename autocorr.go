package assetcorr

import (
	"math"

	"github.com/nroux/assetcorr/date"
	"gonum.org/v1/gonum/stat"
)

// Lag1Autocorr computes the lag-1 autocorrelation of period-over-period
// percentage returns of a single series at the given resampling period.
//
// The series is resampled, converted to percentage changes (the first period
// is dropped, it has nothing to compare against), and the returns are
// correlated against themselves shifted by one period. Fewer than three
// returns leave the statistic undefined (ErrTooFewPoints); constant returns
// leave it undefined too (ErrZeroVariance).
func Lag1Autocorr(s *Series, period date.Period) (float64, error) {
	rets, idx := returns(Resample(s.Points(), period))
	if len(rets) < 3 {
		return 0, ErrTooFewPoints
	}

	// Pair each change with the following one, but never across a skipped
	// period: a zero price leaves a hole in the changes, and the two sides of
	// the hole are more than one period apart.
	var xs, ys []float64
	for i := 1; i < len(rets); i++ {
		if idx[i] != idx[i-1]+1 {
			continue
		}
		xs = append(xs, rets[i-1].Value)
		ys = append(ys, rets[i].Value)
	}
	if len(xs) < 2 {
		return 0, ErrTooFewPoints
	}
	if constant(xs) || constant(ys) {
		return 0, ErrZeroVariance
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0, ErrZeroVariance
	}
	return r, nil
}
