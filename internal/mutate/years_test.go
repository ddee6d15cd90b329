// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package mutate

import (
	"errors"
	"slices"
	"testing"
)

func TestParseYearRange(t *testing.T) {
	tests := []struct {
		in      string
		want    YearRange
		wantErr bool
	}{
		{in: "1990:2031", want: YearRange{1990, 2031}},
		{in: " 2000 - 2005 ", want: YearRange{2000, 2005}},
		{in: "2024", want: YearRange{2024, 2025}},
		{in: "2020:2020", want: YearRange{2020, 2020}},
		{in: "-5:3", want: YearRange{-5, 3}},
		{in: "2031:1990", wantErr: true},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "1990:", wantErr: true},
		{in: ":2000", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseYearRange(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidYearRange) {
				t.Fatalf("ParseYearRange(%q): want ErrInvalidYearRange, got %v (%v)", tt.in, err, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseYearRange(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseYearRange(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestYearRange_LenYearsString(t *testing.T) {
	if n := DefaultYears.Len(); n != 41 {
		t.Fatalf("DefaultYears.Len = %d, want 41", n)
	}
	y := YearRange{Start: 2001, End: 2004}
	if got := y.Years(); !slices.Equal(got, []int{2001, 2002, 2003}) {
		t.Fatalf("Years = %v", got)
	}
	if y.String() != "2001:2004" {
		t.Fatalf("String = %q", y.String())
	}
	inv := YearRange{Start: 5, End: 1}
	if inv.Len() != 0 || len(inv.Years()) != 0 {
		t.Fatal("inverted range must be empty")
	}
	if err := inv.Validate(); err == nil {
		t.Fatal("Validate accepted an inverted range")
	}
	if err := (YearRange{Start: 3, End: 3}).Validate(); err != nil {
		t.Fatalf("empty range rejected: %v", err)
	}
}
