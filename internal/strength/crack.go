// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"fmt"
	"math"
)

// Scenario names an attacker model for crack time estimates.
type Scenario string

const (
	OnlineThrottled   Scenario = "online_throttling_100_per_hour"
	OnlineUnthrottled Scenario = "online_no_throttling_10_per_second"
	OfflineSlowHash   Scenario = "offline_slow_hashing_1e4_per_second"
	OfflineFastHash   Scenario = "offline_fast_hashing_1e10_per_second"
)

// Scenarios lists every scenario from slowest to fastest attacker.
var Scenarios = []Scenario{OnlineThrottled, OnlineUnthrottled, OfflineSlowHash, OfflineFastHash}

// guessesPerSecond for each scenario.
var guessesPerSecond = map[Scenario]float64{
	OnlineThrottled:   100.0 / 3600.0,
	OnlineUnthrottled: 10,
	OfflineSlowHash:   1e4,
	OfflineFastHash:   1e10,
}

// Rate returns the guesses per second assumed for s.
func (s Scenario) Rate() float64 { return guessesPerSecond[s] }

// GuessesFromEntropy converts bits of entropy to the expected number of
// guesses, which is half the search space.
func GuessesFromEntropy(bits float64) float64 {
	return 0.5 * math.Pow(2, bits)
}

// CrackTimes returns, for every scenario, the seconds needed to make guesses.
func CrackTimes(guesses float64) map[Scenario]float64 {
	out := make(map[Scenario]float64, len(Scenarios))
	for _, s := range Scenarios {
		out[s] = guesses / s.Rate()
	}
	return out
}

const (
	minute  = 60.0
	hour    = minute * 60
	day     = hour * 24
	month   = day * 31
	year    = month * 12
	century = year * 100
)

// DisplayTime renders seconds as a coarse human duration.
func DisplayTime(seconds float64) string {
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < minute:
		return plural(seconds, "second")
	case seconds < hour:
		return plural(seconds/minute, "minute")
	case seconds < day:
		return plural(seconds/hour, "hour")
	case seconds < month:
		return plural(seconds/day, "day")
	case seconds < year:
		return plural(seconds/month, "month")
	case seconds < century:
		return plural(seconds/year, "year")
	default:
		return "centuries"
	}
}

func plural(v float64, unit string) string {
	n := int64(math.Round(v))
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
