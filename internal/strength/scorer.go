// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"strings"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
	"github.com/ccojocar/zxcvbn-go/match"
)

// MaxScore is the best score a password can get.
const MaxScore = 4

// Result is the outcome of scoring one password.
type Result struct {
	Score       int
	Warning     string
	Suggestions []string
	CrackTimes  map[Scenario]string
	Entropy     float64
	Guesses     float64
}

// OnlineCrackTime is the estimate for an unthrottled online attack.
func (r Result) OnlineCrackTime() string {
	return r.CrackTimes[OnlineUnthrottled]
}

// Scorer estimates password strength. userInputs are words the attacker is
// assumed to know (names, dates, pets).
type Scorer interface {
	Score(password string, userInputs []string) Result
}

// Zxcvbn scores passwords with the zxcvbn estimator.
type Zxcvbn struct{}

// NewZxcvbn returns the default scorer.
func NewZxcvbn() Zxcvbn { return Zxcvbn{} }

// Score implements Scorer.
func (Zxcvbn) Score(password string, userInputs []string) Result {
	m := zxcvbn.PasswordStrength(password, userInputs)

	guesses := GuessesFromEntropy(m.Entropy)
	times := make(map[Scenario]string, len(Scenarios))
	for s, secs := range CrackTimes(guesses) {
		times[s] = DisplayTime(secs)
	}

	warning, suggestions := feedback(m.Score, m.MatchSequence)
	return Result{
		Score:       m.Score,
		Warning:     warning,
		Suggestions: suggestions,
		CrackTimes:  times,
		Entropy:     m.Entropy,
		Guesses:     guesses,
	}
}

const (
	suggestMoreWords   = "Use a few words, avoid common phrases"
	suggestAddWord     = "Add another word or two. Uncommon words are better."
	suggestNoPersonal  = "Avoid names, dates and pets that are associated with you"
	suggestLongerKeys  = "Use a longer keyboard pattern with more turns"
	suggestNoRepeats   = "Avoid repeated words and characters"
	suggestNoSequences = "Avoid sequences"
	suggestNoDates     = "Avoid dates and years that are associated with you"
	suggestNoLeet      = "Predictable substitutions like '@' instead of 'a' don't help very much"
)

// feedback derives a warning and suggestions from the dominant matches.
// Strong passwords get neither.
func feedback(score int, seq []match.Match) (string, []string) {
	if len(seq) == 0 {
		return "", []string{suggestMoreWords}
	}
	if score > 2 {
		return "", nil
	}

	var warning string
	suggestions := []string{suggestAddWord}
	add := func(s string) {
		for _, have := range suggestions {
			if have == s {
				return
			}
		}
		suggestions = append(suggestions, s)
	}
	warn := func(w string) {
		if warning == "" {
			warning = w
		}
	}

	for _, m := range seq {
		pattern := strings.ToLower(m.Pattern)
		switch {
		case m.DictionaryName == "user_inputs":
			warn("This contains personal information that is easy to guess")
			add(suggestNoPersonal)
		case pattern == "dictionary":
			if len(seq) == 1 {
				warn("This is similar to a commonly used password")
			} else {
				warn("A word by itself is easy to guess")
			}
		case strings.Contains(pattern, "l33t") || strings.Contains(pattern, "leet"):
			warn("This is similar to a commonly used password")
			add(suggestNoLeet)
		case pattern == "spatial":
			warn("Short keyboard patterns are easy to guess")
			add(suggestLongerKeys)
		case pattern == "repeat":
			warn("Repeats like \"aaa\" are easy to guess")
			add(suggestNoRepeats)
		case pattern == "sequence":
			warn("Sequences like abc or 6543 are easy to guess")
			add(suggestNoSequences)
		case strings.Contains(pattern, "date") || strings.Contains(pattern, "year"):
			warn("Dates are often easy to guess")
			add(suggestNoDates)
		}
	}
	return warning, suggestions
}
