// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package leet_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/toeirei/leetlist/internal/leet"
)

func TestDefault_ReferenceMapping(t *testing.T) {
	tbl := leet.Default()
	want := map[rune][]rune{
		'a': {'@', '4'},
		'e': {'3'},
		'i': {'1', '!'},
		'o': {'0'},
		's': {'$', '5'},
		't': {'7'},
	}
	if tbl.Len() != len(want) {
		t.Fatalf("Len = %d, want %d", tbl.Len(), len(want))
	}
	for letter, repl := range want {
		if got := tbl.Replacements(letter); !slices.Equal(got, repl) {
			t.Fatalf("Replacements(%q) = %q, want %q", letter, got, repl)
		}
	}
}

func TestReplacements_UnknownRuneIsEmpty(t *testing.T) {
	tbl := leet.Default()
	for _, r := range []rune{'b', 'A', '7', ' ', 'é'} {
		if got := tbl.Replacements(r); len(got) != 0 {
			t.Fatalf("Replacements(%q) = %q, want empty", r, got)
		}
		if tbl.Has(r) {
			t.Fatalf("Has(%q) = true", r)
		}
	}
}

func TestReplacements_ReturnsCopy(t *testing.T) {
	tbl := leet.Default()
	got := tbl.Replacements('a')
	got[0] = 'X'
	if again := tbl.Replacements('a'); again[0] != '@' {
		t.Fatalf("table mutated through returned slice: %q", again)
	}
}

func TestWith_ExtendsWithoutMutating(t *testing.T) {
	base := leet.Default()
	ext := base.With('B', '8', '8').With('a', '@', '^')

	if base.Has('b') {
		t.Fatal("base table was mutated")
	}
	if got := ext.Replacements('b'); !slices.Equal(got, []rune{'8'}) {
		t.Fatalf("ext b = %q", got)
	}
	if got := ext.Replacements('a'); !slices.Equal(got, []rune{'@', '4', '^'}) {
		t.Fatalf("ext a = %q", got)
	}
}

func TestLettersAndString(t *testing.T) {
	tbl := leet.Default()
	if got := string(tbl.Letters()); got != "aeiost" {
		t.Fatalf("Letters = %q", got)
	}
	if got := tbl.String(); got != "a=@4 e=3 i=1! o=0 s=$5 t=7" {
		t.Fatalf("String = %q", got)
	}
}

func TestParse(t *testing.T) {
	doc := []byte("A: ['@', '4', '@']\ng: ['9']\n")
	tbl, err := leet.Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := tbl.Replacements('a'); !slices.Equal(got, []rune{'@', '4'}) {
		t.Fatalf("a = %q", got)
	}
	if got := tbl.Replacements('g'); !slices.Equal(got, []rune{'9'}) {
		t.Fatalf("g = %q", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"multi-char key":  "ab: ['4']\n",
		"multi-char repl": "a: ['44']\n",
		"empty repl":      "a: ['']\n",
		"not a mapping":   "- a\n- b\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := leet.Parse([]byte(doc)); !errors.Is(err, leet.ErrInvalidTable) {
				t.Fatalf("want ErrInvalidTable, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subs.yaml")
	if err := os.WriteFile(path, []byte("o: ['0', '()']\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := leet.Load(path); !errors.Is(err, leet.ErrInvalidTable) {
		t.Fatalf("want ErrInvalidTable for two-char replacement, got %v", err)
	}

	if _, err := leet.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
