// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/leetlist/internal/export"
	"github.com/toeirei/leetlist/internal/history"
	"github.com/toeirei/leetlist/internal/leet"
	"github.com/toeirei/leetlist/internal/mutate"
	"github.com/toeirei/leetlist/internal/strength"
	"github.com/toeirei/leetlist/internal/wordlist"
)

type fakeScorer struct {
	result      strength.Result
	gotInputs   []string
	gotPassword string
}

func (f *fakeScorer) Score(password string, userInputs []string) strength.Result {
	f.gotPassword = password
	f.gotInputs = userInputs
	return f.result
}

type fakeRecorder struct {
	runs []history.Run
	err  error
}

func (f *fakeRecorder) Record(_ context.Context, r history.Run) (history.Run, error) {
	if f.err != nil {
		return history.Run{}, f.err
	}
	f.runs = append(f.runs, r)
	return r, nil
}

func catSeeds() wordlist.Seeds {
	return wordlist.Seeds{{Label: "name", Value: "cat"}, {Label: "dob", Value: ""}}
}

func TestGenerate_SortedAndComplete(t *testing.T) {
	g := NewGenerator(leet.Default())
	res, err := g.Generate(context.Background(), Request{
		Seeds: catSeeds(),
		Years: mutate.YearRange{Start: 2000, End: 2002},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := []string{"c4t", "c4t2000", "c4t2001", "c@t", "c@t2000", "c@t2001", "ca7", "ca72000", "ca72001", "cat", "cat2000", "cat2001"}
	if strings.Join(res.Words, ",") != strings.Join(want, ",") {
		t.Fatalf("words = %v\nwant    %v", res.Words, want)
	}
	if res.Seeds != 1 || res.Len() != 12 {
		t.Fatalf("seeds=%d len=%d", res.Seeds, res.Len())
	}
}

func TestGenerate_InvertedYears(t *testing.T) {
	g := NewGenerator(leet.Default())
	_, err := g.Generate(context.Background(), Request{Seeds: catSeeds(), Years: mutate.YearRange{Start: 2031, End: 1990}})
	var ce *mutate.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestGenerate_MaxCandidates(t *testing.T) {
	g := NewGenerator(leet.Default())
	req := Request{Seeds: catSeeds(), Years: mutate.DefaultYears, MaxCandidates: 10}
	if _, err := g.Generate(context.Background(), req); !errors.Is(err, ErrTooManyCandidates) {
		t.Fatalf("expected ErrTooManyCandidates, got %v", err)
	}

	req.MaxCandidates = 0
	res, err := g.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("uncapped Generate: %v", err)
	}
	if res.Len() != 4*42 {
		t.Fatalf("expected 168 candidates, got %d", res.Len())
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewGenerator(leet.Default()).Generate(ctx, Request{Seeds: catSeeds()}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSave_WritesAndRecords(t *testing.T) {
	rec := &fakeRecorder{}
	g := NewGenerator(leet.Default(), WithHistory(rec))
	res, err := g.Generate(context.Background(), Request{Seeds: catSeeds(), Years: mutate.YearRange{Start: 2000, End: 2001}})
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "w.txt")
	written, err := g.Save(context.Background(), res, []string{out, "", out})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(written) != 1 || written[0] != out {
		t.Fatalf("written = %v", written)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != strings.Join(res.Words, "\n")+"\n" {
		t.Fatalf("file content %q", data)
	}
	if len(rec.runs) != 1 {
		t.Fatalf("expected one recorded run, got %d", len(rec.runs))
	}
	run := rec.runs[0]
	if run.Destination != out || run.Candidates != res.Len() || run.YearStart != 2000 || run.YearEnd != 2001 || run.Seeds != 1 {
		t.Fatalf("unexpected run %+v", run)
	}
	if run.Digest != history.Digest(res.Words) {
		t.Fatal("digest mismatch")
	}
}

func TestSave_HistoryFailureIsNotFatal(t *testing.T) {
	g := NewGenerator(leet.Default(), WithHistory(&fakeRecorder{err: errors.New("db down")}))
	res := &Result{Words: []string{"a"}, Seeds: 1, Years: mutate.DefaultYears}
	if _, err := g.Save(context.Background(), res, []string{filepath.Join(t.TempDir(), "w.txt")}); err != nil {
		t.Fatalf("history failure leaked: %v", err)
	}
}

func TestSave_Errors(t *testing.T) {
	g := NewGenerator(leet.Default())
	if _, err := g.Save(context.Background(), nil, []string{"x.txt"}); err == nil {
		t.Fatal("expected error for nil result")
	}

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := g.Save(context.Background(), &Result{Words: []string{"a"}}, []string{filepath.Join(blocker, "w.txt")})
	var se *export.SaveError
	if !errors.As(err, &se) {
		t.Fatalf("expected *export.SaveError, got %v", err)
	}
}

func TestSave_NoDestinations(t *testing.T) {
	rec := &fakeRecorder{}
	g := NewGenerator(leet.Default(), WithHistory(rec))
	written, err := g.Save(context.Background(), &Result{Words: []string{"a"}}, []string{"", "  "})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(written) != 0 || len(rec.runs) != 0 {
		t.Fatalf("expected nothing written or recorded, got %v and %d runs", written, len(rec.runs))
	}
}

func TestSave_StdoutOption(t *testing.T) {
	var buf strings.Builder
	g := NewGenerator(leet.Default())
	if _, err := g.Save(context.Background(), &Result{Words: []string{"a", "b"}}, []string{"-", "-"}, export.WithStdout(&buf)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if buf.String() != "a\nb\n" {
		t.Fatalf("stdout got %q", buf.String())
	}
}

func TestAnalyze(t *testing.T) {
	sc := &fakeScorer{result: strength.Result{Score: 1, Warning: "This is similar to a commonly used password.", Suggestions: []string{"Add another word or two. Uncommon words are better."}}}
	g := NewGenerator(leet.Default(), WithScorer(sc))
	res := &Result{Words: []string{"c4t", "cat", "cat1999"}}

	a := g.Analyze("cat1999", catSeeds(), res)
	if !a.InWordlist {
		t.Fatal("expected password to be found in wordlist")
	}
	if sc.gotPassword != "cat1999" || len(sc.gotInputs) != 1 || sc.gotInputs[0] != "cat" {
		t.Fatalf("scorer got %q %v", sc.gotPassword, sc.gotInputs)
	}

	if g.Analyze("dog", nil, res).InWordlist {
		t.Fatal("dog is not a candidate")
	}
	if g.Analyze("cat", nil, nil).InWordlist {
		t.Fatal("nil result cannot contain the password")
	}
}

func TestReport(t *testing.T) {
	a := Analysis{Result: strength.Result{
		Score:       2,
		Warning:     "",
		Suggestions: []string{"Avoid dates and years that are associated with you.", "Add another word or two. Uncommon words are better."},
		CrackTimes:  map[strength.Scenario]string{strength.OnlineUnthrottled: "3 hours"},
	}}
	res := &Result{Words: []string{"c4t", "cat"}}

	want := "Password Score: 2/4\n" +
		"Crack Time (Online): 3 hours\n" +
		"Feedback: Looks okay\n" +
		"Suggestions: Avoid dates and years that are associated with you.; Add another word or two. Uncommon words are better.\n" +
		"\nGenerated Wordlist:\n" +
		"c4t\ncat"
	if got := Report(a, res); got != want {
		t.Fatalf("Report mismatch:\n%s\n---\n%s", got, want)
	}

	a.Warning = "This is a top-10 common password."
	a.Suggestions = nil
	got := Report(a, &Result{})
	if !strings.Contains(got, "Feedback: This is a top-10 common password.\n") || strings.Contains(got, "Suggestions:") {
		t.Fatalf("unexpected report:\n%s", got)
	}
	if !strings.HasSuffix(got, "Generated Wordlist:\n") {
		t.Fatalf("empty wordlist should end with the heading:\n%q", got)
	}
}

func TestHumanCount(t *testing.T) {
	if got := HumanCount(1234567); got != "1,234,567" {
		t.Fatalf("HumanCount = %q", got)
	}
}
