// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/leetlist/internal/export"
	"github.com/toeirei/leetlist/internal/i18n"
	"github.com/toeirei/leetlist/internal/wordlist"
)

// isolate points every config, history and output location at a fresh temp
// dir and makes it the working directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("AppData", filepath.Join(dir, "config"))
	t.Setenv("LEETLIST_DATABASE_TYPE", "sqlite")
	t.Setenv("LEETLIST_DATABASE_DSN", filepath.Join(dir, "history.db"))
	t.Chdir(dir)

	t.Cleanup(func() { i18n.Init("en") })
	return dir
}

// executeCommand runs a fresh root command and returns what it wrote to
// stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestGenerateWritesFile(t *testing.T) {
	dir := isolate(t)

	_, stderr, err := executeCommand(t, "", "generate", "cat", "--years", "2000:2002", "-o", "list.txt")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	lines := readLines(t, filepath.Join(dir, "list.txt"))
	if len(lines) != 12 {
		t.Fatalf("expected 12 candidates, got %d: %v", len(lines), lines)
	}
	if lines[0] != "c4t" || lines[len(lines)-1] != "cat2001" {
		t.Fatalf("unexpected ordering: first=%q last=%q", lines[0], lines[len(lines)-1])
	}
	if !strings.Contains(stderr, "Wrote 12 candidates to list.txt") {
		t.Fatalf("missing saved message, stderr=%q", stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "config", "leetlist", "leetlist.yaml")); err != nil {
		t.Fatalf("default config file not written on first run: %v", err)
	}
}

func TestGenerateToStdout(t *testing.T) {
	isolate(t)

	stdout, _, err := executeCommand(t, "", "generate", "--seed", "pet=cat", "--years", "2000:2002", "-o", "-")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 12 || lines[0] != "c4t" {
		t.Fatalf("unexpected stdout: %q", stdout)
	}
}

func TestGenerateCount(t *testing.T) {
	dir := isolate(t)

	stdout, _, err := executeCommand(t, "", "generate", "cat", "--count")
	if err != nil {
		t.Fatalf("generate --count: %v", err)
	}
	if strings.TrimSpace(stdout) != "168 candidates" {
		t.Fatalf("unexpected count output %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(dir, export.DefaultPath)); !os.IsNotExist(err) {
		t.Fatalf("--count must not write a file, stat err=%v", err)
	}
}

func TestGenerateRejectsInvertedYears(t *testing.T) {
	isolate(t)

	if _, _, err := executeCommand(t, "", "generate", "cat", "--years", "2031:1990", "-o", "-"); err == nil {
		t.Fatal("expected an error for an inverted year range")
	}
}

func TestGenerateRespectsMax(t *testing.T) {
	isolate(t)

	if _, _, err := executeCommand(t, "", "generate", "cat", "--max", "10", "-o", "-"); err == nil {
		t.Fatal("expected an error when the candidate cap is exceeded")
	}
}

func TestAnalyzeArgument(t *testing.T) {
	isolate(t)

	stdout, _, err := executeCommand(t, "", "analyze", "c@t2001", "--seed", "pet=cat")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.HasPrefix(stdout, "Password Score: ") {
		t.Fatalf("missing score line: %q", stdout)
	}
	if !strings.Contains(stdout, "Crack Time (Online): ") {
		t.Fatalf("missing crack time: %q", stdout)
	}
	if !strings.Contains(stdout, i18n.T("cli.analyze.in_wordlist")) {
		t.Fatalf("expected wordlist warning: %q", stdout)
	}
}

func TestAnalyzeFromStdin(t *testing.T) {
	isolate(t)

	stdout, _, err := executeCommand(t, "correct horse battery staple\n", "analyze")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.HasPrefix(stdout, "Password Score: ") {
		t.Fatalf("missing score line: %q", stdout)
	}
	if strings.Contains(stdout, i18n.T("cli.analyze.in_wordlist")) {
		t.Fatalf("no seeds means no wordlist match: %q", stdout)
	}
}

func TestAnalyzeEmptyPassword(t *testing.T) {
	isolate(t)

	if _, _, err := executeCommand(t, "\n", "analyze"); err == nil {
		t.Fatal("expected an error for an empty password")
	}
}

func TestAnalyzeWithList(t *testing.T) {
	isolate(t)

	stdout, _, err := executeCommand(t, "", "analyze", "hunter2", "--seed", "cat", "--list")
	if err != nil {
		t.Fatalf("analyze --list: %v", err)
	}
	if !strings.Contains(stdout, "\nGenerated Wordlist:\nc4t\n") {
		t.Fatalf("missing wordlist section: %q", stdout)
	}
}

func TestHistoryListsRuns(t *testing.T) {
	isolate(t)

	stdout, _, err := executeCommand(t, "", "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if strings.TrimSpace(stdout) != i18n.T("cli.history.empty") {
		t.Fatalf("expected empty history, got %q", stdout)
	}

	if _, _, err := executeCommand(t, "", "generate", "cat", "--years", "2000:2002", "-o", "list.txt"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	stdout, _, err = executeCommand(t, "", "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(stdout, "DESTINATION") || !strings.Contains(stdout, "list.txt") || !strings.Contains(stdout, "2000:2002") {
		t.Fatalf("run missing from history: %q", stdout)
	}

	stdout, _, err = executeCommand(t, "", "history", "prune", "--keep", "0")
	if err != nil {
		t.Fatalf("history prune: %v", err)
	}
	if strings.TrimSpace(stdout) != "Removed 1 runs." {
		t.Fatalf("unexpected prune output %q", stdout)
	}
}

func TestHistoryDisabled(t *testing.T) {
	isolate(t)
	t.Setenv("LEETLIST_HISTORY_ENABLED", "false")

	stdout, _, err := executeCommand(t, "", "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if strings.TrimSpace(stdout) != i18n.T("cli.history.disabled") {
		t.Fatalf("unexpected output %q", stdout)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "custom.yaml")

	stdout, _, err := executeCommand(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(stdout, target) {
		t.Fatalf("unexpected output %q", stdout)
	}
	if _, _, err := executeCommand(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected refusal to overwrite without --force")
	}
	if _, _, err := executeCommand(t, "", "config", "init", "--path", target, "--force"); err != nil {
		t.Fatalf("config init --force: %v", err)
	}

	stdout, _, err = executeCommand(t, "", "--config", target, "--language", "de", "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"language: de", "start: 1990", "end: 2031"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("config show missing %q:\n%s", want, stdout)
		}
	}
}

func TestConfigInitFirstRun(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "config", "leetlist", "leetlist.yaml")

	stdout, _, err := executeCommand(t, "", "config", "init")
	if err != nil {
		t.Fatalf("config init on a fresh machine: %v", err)
	}
	if !strings.Contains(stdout, target) {
		t.Fatalf("unexpected output %q", stdout)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if _, _, err := executeCommand(t, "", "config", "init"); err == nil {
		t.Fatal("expected refusal to overwrite an existing file")
	}
}

func TestConfigShowDoesNotWriteDefaults(t *testing.T) {
	dir := isolate(t)

	if _, _, err := executeCommand(t, "", "config", "show"); err != nil {
		t.Fatalf("config show: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config", "leetlist", "leetlist.yaml")); !os.IsNotExist(err) {
		t.Fatalf("config show wrote a default file, stat err=%v", err)
	}
}

func TestGenerateEmptyOutput(t *testing.T) {
	dir := isolate(t)

	stdout, stderr, err := executeCommand(t, "", "generate", "cat", "--years", "2000:2001", "-o", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if stdout != "" {
		t.Fatalf("nothing should reach stdout, got %q", stdout)
	}
	if strings.Contains(stderr, "Wrote") || !strings.Contains(stderr, i18n.T("cli.generate.nothing_written", "8")) {
		t.Fatalf("unexpected message %q", stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, export.DefaultPath)); !os.IsNotExist(err) {
		t.Fatalf("default path written, stat err=%v", err)
	}
}

func TestGenerateStdoutOnceForRepeatedDash(t *testing.T) {
	isolate(t)

	stdout, stderr, err := executeCommand(t, "", "generate", "cat", "--years", "2000:2002", "-o", "-", "-o", "-")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if n := strings.Count(stdout, "\n"); n != 12 {
		t.Fatalf("expected 12 lines on stdout, got %d", n)
	}
	if !strings.Contains(stderr, "Wrote 12 candidates to -\n") {
		t.Fatalf("unexpected message %q", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(stdout, "leetlist ") {
		t.Fatalf("unexpected version output %q", stdout)
	}
}

func TestParseSeedFlag(t *testing.T) {
	cases := []struct {
		in   string
		want wordlist.Seed
	}{
		{"name=alice", wordlist.Seed{Label: "name", Value: "alice"}},
		{"rex", wordlist.Seed{Label: "seed", Value: "rex"}},
		{"=rex", wordlist.Seed{Label: "seed", Value: "=rex"}},
		{"pet=a=b", wordlist.Seed{Label: "pet", Value: "a=b"}},
	}
	for _, c := range cases {
		if got := parseSeedFlag(c.in); got != c.want {
			t.Errorf("parseSeedFlag(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}
