// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every i18n.T id used in the Go sources exists in
// the primary locale, that every other locale carries the same ids, and
// lists ids nothing uses any more.
//
// Run it from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores where an id was used.
type Location struct {
	Filepath string
	Line     int
}

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

var usedKeyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// report is the outcome of one lint run.
type report struct {
	Undefined map[string][]Location // used in code, absent from the primary locale
	Orphaned  []string              // in the primary locale, never used
	Missing   map[string][]string   // locale file -> ids it lacks
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	fmt.Println("Running i18n linter...")

	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("--- Ids used in code but not defined ---")
	if len(r.Undefined) == 0 {
		fmt.Println("  None found.")
	}
	for _, id := range sortedKeys(r.Undefined) {
		loc := r.Undefined[id][0]
		fmt.Printf("  - Undefined: %s (%s:%d)\n", id, loc.Filepath, loc.Line)
	}

	fmt.Println("\n--- Ids missing from other locales ---")
	if len(r.Missing) == 0 {
		fmt.Println("  All locales complete.")
	}
	for _, file := range sortedKeys(r.Missing) {
		fmt.Printf("%s:\n", file)
		for _, id := range r.Missing[file] {
			fmt.Printf("  - Missing: %s\n", id)
		}
	}

	fmt.Println("\n--- Orphaned ids ---")
	if len(r.Orphaned) == 0 {
		fmt.Println("  None found.")
	}
	for _, id := range r.Orphaned {
		fmt.Printf("  - Orphaned: %s\n", id)
	}

	if r.failed() {
		fmt.Println("\nFound issues that need to be addressed.")
		os.Exit(1)
	}
	fmt.Println("\nAll translation files are consistent.")
}

// lint compares the ids used under root with the locale files in locales.
func lint(root, locales string) (report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return report{}, fmt.Errorf("finding used keys: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return report{}, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}
	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report{}, err
	}

	r := report{Undefined: map[string][]Location{}, Missing: map[string][]string{}}
	for id, locs := range used {
		if _, ok := primary[id]; !ok {
			r.Undefined[id] = locs
		}
	}
	for id := range primary {
		if _, ok := used[id]; !ok {
			r.Orphaned = append(r.Orphaned, id)
		}
	}
	sort.Strings(r.Orphaned)

	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		other, err := loadKeysFromLocale(file)
		if err != nil {
			return report{}, fmt.Errorf("loading %s: %w", file, err)
		}
		var missing []string
		for id := range primary {
			if _, ok := other[id]; !ok {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			r.Missing[file] = missing
		}
	}
	return r, nil
}

// findUsedKeys scans non-test .go files for i18n.T("id") calls, skipping
// tools and underscore-prefixed directories.
func findUsedKeys(root string) (map[string][]Location, error) {
	keys := make(map[string][]Location)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (d.Name() == "tools" || strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			for _, m := range usedKeyRe.FindAllStringSubmatch(line, -1) {
				keys[m[1]] = append(keys[m[1]], Location{Filepath: path, Line: i + 1})
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its ids.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML joins nested map keys with dots. Flat dotted ids pass through
// unchanged.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
