package uscpi

import (
	"strings"
	"testing"
)

const sample = `Year,Jan,Feb,Mar,Apr,May,Jun,Jul,Aug,Sep,Oct,Nov,Dec,Ave
2021,1.4,1.7,2.6,4.2,5.0,5.4,5.4,5.3,5.4,6.2,6.8,7.0,4.7
2022,7.5,7.9,8.5,8.3,8.6,9.1,8.5,8.3,8.2,7.7,7.1,6.5,8.0
2023,6.4,6.0,5.0,4.9,4.0,3.0,3.2,3.7,3.7,3.2,3.1,3.4,4.1
2024,3.1,3.2,3.5,3.4,3.3,3.0,2.9,2.5,2.4,2.6,2.7,2.9,2.9
2025,3.0,2.8,2.4,2.3,2.4,2.7,2.7,2.9,,,,,
`

func TestParse(t *testing.T) {
	table, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 4 {
		t.Fatalf("len(table) = %d, want 4 complete years", len(table))
	}
	if table[2022] != 8.0 {
		t.Errorf("table[2022] = %v, want 8.0", table[2022])
	}
	if _, ok := table[2025]; ok {
		t.Error("2025 has no yearly average yet and must be absent")
	}
}

func TestParseMissingColumns(t *testing.T) {
	if _, err := Parse(strings.NewReader("A,B\n1,2\n")); err == nil {
		t.Error("a table without Year/Ave columns should fail")
	}
}

func TestParseBadRate(t *testing.T) {
	bad := "Year,Ave\n2020,not-a-number\n"
	if _, err := Parse(strings.NewReader(bad)); err == nil {
		t.Error("a malformed rate should fail")
	}
}
