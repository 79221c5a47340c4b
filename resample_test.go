package assetcorr

import (
	"testing"
	"time"

	"github.com/nroux/assetcorr/date"
)

func points(start date.Date, vals ...float64) []Point {
	pts := make([]Point, len(vals))
	for i, v := range vals {
		pts[i] = Point{Day: start.Add(i), Value: v}
	}
	return pts
}

func TestResampleDailyIsIdentity(t *testing.T) {
	in := points(date.New(2024, time.March, 1), 1, 2, 3)
	out := Resample(in, date.Daily)
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}
}

func TestResampleMonthlyMean(t *testing.T) {
	jan30 := date.New(2024, time.January, 30)
	in := []Point{
		{jan30, 10},            // January
		{jan30.Add(1), 20},     // January 31
		{jan30.Add(2), 30},     // February 1
		{jan30.Add(3), 50},     // February 2
	}
	out := Resample(in, date.Monthly)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2 buckets", len(out))
	}
	if out[0].Day != date.New(2024, time.January, 31) || out[0].Value != 15 {
		t.Errorf("January bucket = %v, want mean 15 at month end", out[0])
	}
	if out[1].Day != date.New(2024, time.February, 29) || out[1].Value != 40 {
		t.Errorf("February bucket = %v, want mean 40 at month end", out[1])
	}
}

func TestResampleWeeklyISOBuckets(t *testing.T) {
	// Friday..Monday spans two ISO weeks.
	friday := date.New(2025, time.September, 12)
	in := []Point{
		{friday, 10},
		{friday.Add(3), 30}, // Monday of the next week
	}
	out := Resample(in, date.Weekly)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2 buckets", len(out))
	}
	if out[0].Day != date.New(2025, time.September, 14) {
		t.Errorf("first bucket ends %v, want Sunday 2025-09-14", out[0].Day)
	}
	if out[1].Day != date.New(2025, time.September, 21) {
		t.Errorf("second bucket ends %v, want Sunday 2025-09-21", out[1].Day)
	}
}

func TestResampleOmitsEmptyBuckets(t *testing.T) {
	// Observations in January and March only: no February bucket.
	in := []Point{
		{date.New(2024, time.January, 10), 10},
		{date.New(2024, time.March, 10), 30},
	}
	out := Resample(in, date.Monthly)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2 (no zero-filled February)", len(out))
	}
}

func TestResampleSemiAnnual(t *testing.T) {
	in := []Point{
		{date.New(2024, time.February, 1), 10},
		{date.New(2024, time.May, 1), 20},
		{date.New(2024, time.August, 1), 40},
	}
	out := Resample(in, date.SemiAnnual)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Day != date.New(2024, time.June, 30) || out[0].Value != 15 {
		t.Errorf("H1 bucket = %v, want mean 15 at 2024-06-30", out[0])
	}
	if out[1].Day != date.New(2024, time.December, 31) || out[1].Value != 40 {
		t.Errorf("H2 bucket = %v, want 40 at 2024-12-31", out[1])
	}
}

func TestReturns(t *testing.T) {
	in := points(date.New(2024, time.March, 1), 100, 110, 99)
	out, idx := returns(in)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2 (first point dropped)", len(out))
	}
	if out[0].Value != 10 {
		t.Errorf("first return = %v, want 10", out[0].Value)
	}
	if out[1].Value != -10 {
		t.Errorf("second return = %v, want -10", out[1].Value)
	}
	if idx[0] != 1 || idx[1] != 2 {
		t.Errorf("idx = %v, want [1 2]", idx)
	}
}

func TestReturnsSkipsZeroPrevious(t *testing.T) {
	in := points(date.New(2024, time.March, 1), 100, 0, 50, 60)
	out, idx := returns(in)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2 (change out of the zero price skipped)", len(out))
	}
	if out[0].Value != -100 || out[1].Value != 20 {
		t.Errorf("returns = %v %v, want -100 and 20", out[0].Value, out[1].Value)
	}
	// The skipped period must show as a hole in the indices.
	if idx[0] != 1 || idx[1] != 3 {
		t.Errorf("idx = %v, want [1 3]", idx)
	}
}

func TestPairedReturnsDropsZeroFromBothSides(t *testing.T) {
	start := date.New(2024, time.March, 1)
	pa := points(start, 100, 0, 50, 60)
	pb := points(start, 10, 20, 30, 40)
	outA, outB := pairedReturns(pa, pb)
	if len(outA) != len(outB) {
		t.Fatalf("lengths diverge: %d vs %d", len(outA), len(outB))
	}
	if len(outA) != 2 {
		t.Fatalf("len = %d, want 2 (the period after the zero dropped on both sides)", len(outA))
	}
	for i := range outA {
		if outA[i].Day != outB[i].Day {
			t.Errorf("bucket %d misaligned: %v vs %v", i, outA[i].Day, outB[i].Day)
		}
	}
	if outA[0].Value != -100 || outB[0].Value != 100 {
		t.Errorf("first changes = %v / %v, want -100 / 100", outA[0].Value, outB[0].Value)
	}
	if outA[1].Value != 20 {
		t.Errorf("second change = %v, want 20", outA[1].Value)
	}
}
