// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"fmt"
	"slices"
	"strings"

	"github.com/toeirei/leetlist/internal/strength"
	"github.com/toeirei/leetlist/internal/wordlist"
)

// Analysis is the strength verdict for one password.
type Analysis struct {
	strength.Result
	// InWordlist is set when the password is one of the generated
	// candidates.
	InWordlist bool
}

// Analyze scores password, treating the seed values as words an attacker
// knows. res may be nil when no wordlist was generated.
func (g *Generator) Analyze(password string, seeds wordlist.Seeds, res *Result) Analysis {
	a := Analysis{Result: g.scorer.Score(password, seeds.Values())}
	if res != nil {
		_, a.InWordlist = slices.BinarySearch(res.Words, password)
	}
	return a
}

// Summary renders the score, crack time, feedback and suggestion lines.
func (a Analysis) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Password Score: %d/%d\n", a.Score, strength.MaxScore)
	fmt.Fprintf(&b, "Crack Time (Online): %s\n", a.OnlineCrackTime())
	warning := a.Warning
	if warning == "" {
		warning = "Looks okay"
	}
	fmt.Fprintf(&b, "Feedback: %s\n", warning)
	if len(a.Suggestions) > 0 {
		fmt.Fprintf(&b, "Suggestions: %s\n", strings.Join(a.Suggestions, "; "))
	}
	return b.String()
}

// Report renders the analysis followed by the wordlist, one word per line.
func Report(a Analysis, res *Result) string {
	var b strings.Builder
	b.WriteString(a.Summary())
	b.WriteString("\nGenerated Wordlist:\n")
	if res != nil {
		b.WriteString(strings.Join(res.Words, "\n"))
	}
	return b.String()
}
