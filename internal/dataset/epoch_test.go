package dataset

import (
	"math"
	"testing"
)

func TestParseEpoch(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"2024-01-01", 2024, true},
		{"2023-07-02", 2023 + 182.0/365, true},
		{"1957 CE", 1957, true},
		{"1990", 1990, true},
		{"500 BCE", -500, true},
		{"13.8 billion years ago", -13.8e9, true},
		{"50 million years ago", -50e6, true},
		{"10,000 years ago", -10000, true},
		{"Known since prehistoric times", 0, false},
		{"3 eons ago", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseEpoch(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseEpoch(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 1e-6*math.Max(1, math.Abs(tt.want)) {
				t.Errorf("ParseEpoch(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEpochOrdersMixedFormats(t *testing.T) {
	t.Parallel()
	older, _ := ParseEpoch("4.6 billion years ago")
	newer, _ := ParseEpoch("1608 CE")
	newest, _ := ParseEpoch("2024-02-20")
	if !(older < newer && newer < newest) {
		t.Errorf("epochs out of order: %v, %v, %v", older, newer, newest)
	}
}
