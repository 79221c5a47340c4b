package store

import (
	"testing"
	"time"

	"github.com/nroux/assetcorr"
	"github.com/nroux/assetcorr/date"
	"github.com/nroux/assetcorr/yahoo"
)

func testHistory() *yahoo.History {
	start := date.New(2024, time.March, 1)
	return &yahoo.History{
		Ticker:   "GC=F",
		Currency: "USD",
		Fetched:  date.New(2024, time.March, 10),
		Quotes: []assetcorr.Quote{
			{Day: start, Close: 2100.5},
			{Day: start.Add(1), Close: 2088.0},
			{Day: start.Add(4), Close: 2110.25},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	want := testHistory()
	if err := s.SaveHistory(want); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadHistory("GC=F")
	if err != nil {
		t.Fatal(err)
	}
	if got.Currency != want.Currency || got.Fetched != want.Fetched {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
	if len(got.Quotes) != len(want.Quotes) {
		t.Fatalf("len(Quotes) = %d, want %d", len(got.Quotes), len(want.Quotes))
	}
	for i := range want.Quotes {
		if got.Quotes[i] != want.Quotes[i] {
			t.Errorf("Quotes[%d] = %+v, want %+v", i, got.Quotes[i], want.Quotes[i])
		}
	}
}

func TestSaveHistoryUpserts(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	h := testHistory()
	if err := s.SaveHistory(h); err != nil {
		t.Fatal(err)
	}
	h.Quotes[0].Close = 2101.0
	h.Fetched = h.Fetched.Add(7)
	if err := s.SaveHistory(h); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadHistory("GC=F")
	if err != nil {
		t.Fatal(err)
	}
	if got.Quotes[0].Close != 2101.0 {
		t.Errorf("Quotes[0].Close = %v, want updated 2101.0", got.Quotes[0].Close)
	}
	if len(got.Quotes) != 3 {
		t.Errorf("len(Quotes) = %d, want 3 (no duplicates)", len(got.Quotes))
	}
}

func TestLoadHistoryUnknownTicker(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := s.LoadHistory("NOPE"); err == nil {
		t.Error("loading an unknown ticker should fail")
	}
}

func TestTickers(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := s.SaveHistory(testHistory()); err != nil {
		t.Fatal(err)
	}
	tickers, err := s.Tickers()
	if err != nil {
		t.Fatal(err)
	}
	if len(tickers) != 1 || tickers[0] != "GC=F" {
		t.Errorf("Tickers() = %v, want [GC=F]", tickers)
	}
}
