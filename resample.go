package assetcorr

import (
	"github.com/nroux/assetcorr/date"
)

// Resample aggregates daily points into calendar buckets of the given period
// and averages the values in each bucket. Each bucket is emitted once, keyed
// by its period-end date, in ascending order. Buckets with no observation are
// omitted, never zero-filled.
//
// Points must be in ascending date order, as produced by Series.Points or
// Series.At. Two series restricted to the same dates resample to the same
// buckets, which keeps their resampled sequences aligned pairwise.
func Resample(points []Point, period date.Period) []Point {
	if period == date.Daily || len(points) == 0 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}

	out := make([]Point, 0, len(points))
	var bucket date.Date
	var sum float64
	var n int
	for _, p := range points {
		end := p.Day.EndOf(period)
		if n > 0 && end != bucket {
			out = append(out, Point{Day: bucket, Value: sum / float64(n)})
			sum, n = 0, 0
		}
		bucket = end
		sum += p.Value
		n++
	}
	if n > 0 {
		out = append(out, Point{Day: bucket, Value: sum / float64(n)})
	}
	return out
}

// returns converts a sequence of resampled prices into period-over-period
// percentage changes. The first point has no prior period and is dropped; a
// change whose previous price is zero is undefined and skipped. idx records
// the input position of each emitted change, so callers can tell two adjacent
// periods from two periods straddling a skipped one.
func returns(points []Point) (out []Point, idx []int) {
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Value
		if prev == 0 {
			continue
		}
		change := (points[i].Value - prev) / prev * 100
		out = append(out, Point{Day: points[i].Day, Value: change})
		idx = append(idx, i)
	}
	return out, idx
}

// pairedReturns converts two bucket-aligned price sequences into percentage
// changes jointly. A change whose previous price is zero on either side is
// undefined, and that period is dropped from both sides: dropping it from one
// side only would shift the remaining buckets out of pairwise alignment.
func pairedReturns(pa, pb []Point) ([]Point, []Point) {
	outA := make([]Point, 0, len(pa))
	outB := make([]Point, 0, len(pb))
	for i := 1; i < len(pa) && i < len(pb); i++ {
		prevA, prevB := pa[i-1].Value, pb[i-1].Value
		if prevA == 0 || prevB == 0 {
			continue
		}
		outA = append(outA, Point{Day: pa[i].Day, Value: (pa[i].Value - prevA) / prevA * 100})
		outB = append(outB, Point{Day: pb[i].Day, Value: (pb[i].Value - prevB) / prevB * 100})
	}
	return outA, outB
}

// values extracts the numeric column of a point sequence.
func values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}
