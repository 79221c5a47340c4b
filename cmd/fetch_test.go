package cmd

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nroux/assetcorr"
	"github.com/nroux/assetcorr/date"
	"github.com/nroux/assetcorr/store"
	"github.com/nroux/assetcorr/yahoo"
)

func TestListArchive(t *testing.T) {
	archive, err := store.Open(filepath.Join(t.TempDir(), "quotes.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer archive.Close()

	var sb strings.Builder
	if err := listArchive(&sb, archive); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "archive is empty") {
		t.Errorf("empty archive listing = %q", sb.String())
	}

	for _, ticker := range []string{"URTH", "^GSPC"} {
		h := &yahoo.History{
			Ticker:   ticker,
			Currency: "USD",
			Fetched:  date.New(2024, time.June, 1),
			Quotes:   []assetcorr.Quote{{Day: date.New(2024, time.May, 31), Close: 100}},
		}
		if err := archive.SaveHistory(h); err != nil {
			t.Fatal(err)
		}
	}

	sb.Reset()
	if err := listArchive(&sb, archive); err != nil {
		t.Fatal(err)
	}
	if got := sb.String(); got != "URTH\n^GSPC\n" {
		t.Errorf("listing = %q, want the archived tickers in order", got)
	}
}
