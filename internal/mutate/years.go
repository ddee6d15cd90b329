// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package mutate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidYearRange is the sentinel wrapped by every ConfigurationError.
var ErrInvalidYearRange = errors.New("invalid year range")

// ConfigurationError reports a year range that ends before it starts.
type ConfigurationError struct {
	Range YearRange
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: end %d is before start %d", ErrInvalidYearRange, e.Range.End, e.Range.Start)
}

func (e *ConfigurationError) Unwrap() error { return ErrInvalidYearRange }

// YearRange is the half-open interval [Start, End) of year suffixes.
type YearRange struct {
	Start int `mapstructure:"start" yaml:"start"`
	End   int `mapstructure:"end" yaml:"end"`
}

// DefaultYears covers 1990 through 2030.
var DefaultYears = YearRange{Start: 1990, End: 2031}

// Validate returns a *ConfigurationError when End < Start.
// Start == End is a valid empty range.
func (y YearRange) Validate() error {
	if y.End < y.Start {
		return &ConfigurationError{Range: y}
	}
	return nil
}

// Len returns the number of years in the range; inverted ranges are empty.
func (y YearRange) Len() int {
	if y.End <= y.Start {
		return 0
	}
	return y.End - y.Start
}

// Years returns the years in ascending order.
func (y YearRange) Years() []int {
	out := make([]int, 0, y.Len())
	for yr := y.Start; yr < y.End; yr++ {
		out = append(out, yr)
	}
	return out
}

// String renders the range in the form accepted by ParseYearRange.
func (y YearRange) String() string {
	return fmt.Sprintf("%d:%d", y.Start, y.End)
}

// ParseYearRange parses "1990:2031", "1990-2031" or a single year "2024".
// The upper bound is exclusive.
func ParseYearRange(s string) (YearRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return YearRange{}, fmt.Errorf("%w: empty", ErrInvalidYearRange)
	}

	sep := strings.IndexAny(s, ":-")
	// A leading '-' belongs to a negative number, not a separator.
	if sep == 0 {
		if i := strings.IndexAny(s[1:], ":-"); i >= 0 {
			sep = i + 1
		} else {
			sep = -1
		}
	}

	if sep < 0 {
		yr, err := strconv.Atoi(s)
		if err != nil {
			return YearRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidYearRange, s, err)
		}
		return YearRange{Start: yr, End: yr + 1}, nil
	}

	start, err := strconv.Atoi(strings.TrimSpace(s[:sep]))
	if err != nil {
		return YearRange{}, fmt.Errorf("%w: start %q: %v", ErrInvalidYearRange, s[:sep], err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(s[sep+1:]))
	if err != nil {
		return YearRange{}, fmt.Errorf("%w: end %q: %v", ErrInvalidYearRange, s[sep+1:], err)
	}
	y := YearRange{Start: start, End: end}
	if err := y.Validate(); err != nil {
		return YearRange{}, err
	}
	return y, nil
}
