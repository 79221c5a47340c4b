package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/nroux/assetcorr"
	"github.com/nroux/assetcorr/date"
)

func testSeries(t *testing.T, label string, start date.Date, closes ...float64) *assetcorr.Series {
	t.Helper()
	quotes := make([]assetcorr.Quote, len(closes))
	for i, c := range closes {
		quotes[i] = assetcorr.Quote{Day: start.Add(i), Close: c}
	}
	s, err := assetcorr.NewSeries(label, label, "USD", quotes)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestMatrixMarkdown(t *testing.T) {
	start := date.New(2020, time.January, 1)
	a := testSeries(t, "Gold", start, 100, 110, 90)
	b := testSeries(t, "Bitcoin", start, 50, 55, 45)
	m, err := assetcorr.Pairwise([]*assetcorr.Series{a, b}, date.Daily, assetcorr.Prices)
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	Matrix(&sb, "Daily", m)
	out := sb.String()

	for _, want := range []string{"## Daily", "| Gold |", "| **Bitcoin** |", "1.0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMatrixUndefinedCell(t *testing.T) {
	a := testSeries(t, "A", date.New(2020, time.January, 1), 1, 2, 3)
	b := testSeries(t, "B", date.New(2021, time.January, 1), 1, 2, 3)
	m, err := assetcorr.Pairwise([]*assetcorr.Series{a, b}, date.Daily, assetcorr.Prices)
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	Matrix(&sb, "Daily", m)
	if !strings.Contains(sb.String(), "n/a") {
		t.Errorf("undefined cell not rendered as n/a:\n%s", sb.String())
	}

	sb.Reset()
	Skipped(&sb, m)
	out := sb.String()
	if !strings.Contains(out, "A / B") || !strings.Contains(out, assetcorr.ReasonNoCommonDates) {
		t.Errorf("skipped report missing pair or reason:\n%s", out)
	}
}

func TestSkippedSilentWhenComplete(t *testing.T) {
	start := date.New(2020, time.January, 1)
	a := testSeries(t, "A", start, 100, 110, 90)
	b := testSeries(t, "B", start, 50, 55, 45)
	m, err := assetcorr.Pairwise([]*assetcorr.Series{a, b}, date.Daily, assetcorr.Prices)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	Skipped(&sb, m)
	if sb.Len() != 0 {
		t.Errorf("Skipped wrote %q for a complete matrix", sb.String())
	}
}

func TestRelativeChart(t *testing.T) {
	start := date.New(2020, time.January, 1)
	a := testSeries(t, "Gold", start, 100, 110, 90, 95)
	b := testSeries(t, "Bitcoin", start, 50, 45, 60, 70)

	var sb strings.Builder
	if err := RelativeChart(&sb, []*assetcorr.Series{a, b}, 40, 8); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "Gold") || !strings.Contains(out, "Bitcoin") {
		t.Errorf("chart legend missing labels:\n%s", out)
	}
	if !strings.Contains(out, "$95.00") {
		t.Errorf("latest price legend missing:\n%s", out)
	}
}

func TestRelativeChartNoOverlap(t *testing.T) {
	a := testSeries(t, "A", date.New(2020, time.January, 1), 1, 2)
	b := testSeries(t, "B", date.New(2021, time.January, 1), 1, 2)
	var sb strings.Builder
	if err := RelativeChart(&sb, []*assetcorr.Series{a, b}, 40, 8); err == nil {
		t.Error("expected an error when there are no common dates")
	}
}
