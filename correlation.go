package assetcorr

import (
	"fmt"
	"math"

	"github.com/nroux/assetcorr/date"
	"gonum.org/v1/gonum/stat"
)

// Mode selects what the pairwise correlation is computed on.
type Mode int

const (
	// Prices correlates resampled price levels.
	Prices Mode = iota
	// Returns correlates period-over-period percentage changes of the
	// resampled prices, dropping the first period of each pair.
	Returns
)

func (m Mode) String() string {
	if m == Returns {
		return "returns"
	}
	return "prices"
}

// Reasons a matrix cell can be undefined. A cell is undefined when the
// statistic does not exist, never when it is merely small.
const (
	ReasonNoCommonDates = "no common dates"
	ReasonTooFewPoints  = "not enough observations"
	ReasonZeroVariance  = "zero variance"
)

// Cell is one entry of a correlation matrix. An undefined cell means the
// correlation does not exist for that pair; its Value is meaningless and its
// Reason says why. Undefined is a sentinel, never reported as 0.0.
type Cell struct {
	Value   float64
	Defined bool
	Reason  string
}

// Matrix is a square, label-indexed correlation matrix. The diagonal is
// always exactly 1.0. It is symmetric, although each ordered pair is computed
// independently.
type Matrix struct {
	labels []string
	cells  map[string]map[string]Cell
}

// Labels returns the row/column labels in their original order.
func (m *Matrix) Labels() []string { return m.labels }

// Cell returns the entry for the ordered pair (a, b).
func (m *Matrix) Cell(a, b string) Cell { return m.cells[a][b] }

func (m *Matrix) set(a, b string, c Cell) {
	row, ok := m.cells[a]
	if !ok {
		row = make(map[string]Cell)
		m.cells[a] = row
	}
	row[b] = c
}

// Skip describes a pair excluded from the matrix, with the reason.
type Skip struct {
	A, B   string
	Reason string
}

// Skipped lists the unordered pairs whose correlation is undefined.
// Drivers report these separately from computed, possibly near-zero, cells.
func (m *Matrix) Skipped() []Skip {
	var skips []Skip
	for i, a := range m.labels {
		for _, b := range m.labels[i+1:] {
			if c := m.Cell(a, b); !c.Defined {
				skips = append(skips, Skip{A: a, B: b, Reason: c.Reason})
			}
		}
	}
	return skips
}

// Pairwise computes the full pairwise Pearson correlation matrix over the
// given series at the chosen resampling period.
//
// For each pair, both series are restricted to their common dates, resampled
// on identical calendar buckets, optionally converted to percentage returns,
// and correlated. Self correlation is fixed at 1.0 without computation.
// Pairs with no common dates, fewer than two observations, or zero variance
// yield an undefined cell.
//
// The computation is a pure function of its inputs; each pair is independent.
func Pairwise(series []*Series, period date.Period, mode Mode) (*Matrix, error) {
	if len(series) < 2 {
		return nil, ErrInsufficientSeries
	}

	m := &Matrix{
		labels: make([]string, 0, len(series)),
		cells:  make(map[string]map[string]Cell, len(series)),
	}
	for _, s := range series {
		for _, label := range m.labels {
			if label == s.Label() {
				return nil, fmt.Errorf("duplicate series label %q", label)
			}
		}
		m.labels = append(m.labels, s.Label())
	}

	for _, a := range series {
		for _, b := range series {
			if a == b {
				m.set(a.Label(), b.Label(), Cell{Value: 1.0, Defined: true})
				continue
			}
			m.set(a.Label(), b.Label(), pairCell(a, b, period, mode))
		}
	}
	return m, nil
}

// pairCell computes one off-diagonal cell.
func pairCell(a, b *Series, period date.Period, mode Mode) Cell {
	common, err := CommonDates(a, b)
	if err != nil {
		// unreachable: exactly two series are passed
		return Cell{Reason: err.Error()}
	}
	if len(common) == 0 {
		return Cell{Reason: ReasonNoCommonDates}
	}

	pa := Resample(a.At(common), period)
	pb := Resample(b.At(common), period)
	if mode == Returns {
		pa, pb = pairedReturns(pa, pb)
	}

	xs, ys := values(pa), values(pb)
	if len(xs) < 2 || len(ys) < 2 {
		return Cell{Reason: ReasonTooFewPoints}
	}
	if constant(xs) || constant(ys) {
		return Cell{Reason: ReasonZeroVariance}
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return Cell{Reason: ReasonZeroVariance}
	}
	return Cell{Value: r, Defined: true}
}

// constant reports whether all values are equal, that is, zero variance.
func constant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}
