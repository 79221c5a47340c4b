// Package uscpi loads annual US inflation rates from the CSV table published
// at usinflationcalculator.com (historical inflation rates). The table has a
// "Year" column, one column per month, and an "Ave" column holding the yearly
// average; only Year and Ave are read.
package uscpi

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nroux/assetcorr"
)

// Load reads an annual rate table from a CSV file.
func Load(path string) (assetcorr.RateTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open inflation table: %w", err)
	}
	defer f.Close()
	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Parse reads the CSV table. The header row names the columns; every row
// below it carries one year. Rows with an empty average (the running year is
// published month by month) are skipped, which surfaces downstream as a
// missing-rate error if that year is actually requested.
func Parse(r io.Reader) (assetcorr.RateTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate a ragged table

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("not enough rows to parse an inflation table")
	}

	yearCol, aveCol := -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "year":
			yearCol = i
		case "ave", "avg", "average":
			aveCol = i
		}
	}
	if yearCol < 0 || aveCol < 0 {
		return nil, fmt.Errorf("header %v has no Year/Ave columns", records[0])
	}

	table := make(assetcorr.RateTable)
	for _, record := range records[1:] {
		if len(record) <= yearCol || len(record) <= aveCol {
			continue
		}
		yearStr := strings.TrimSpace(record[yearCol])
		aveStr := strings.TrimSpace(record[aveCol])
		if yearStr == "" || aveStr == "" {
			continue
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q: %w", yearStr, err)
		}
		rate, err := strconv.ParseFloat(aveStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate %q for year %d: %w", aveStr, year, err)
		}
		table[year] = rate
	}
	return table, nil
}
