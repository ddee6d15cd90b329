// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// swapLogger replaces L with a buffer-backed logger for the duration of the
// test.
func swapLogger(t *testing.T, level clog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(level)
	t.Cleanup(func() { L = prev })
	return &buf
}

func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	buf := swapLogger(t, clog.DebugLevel)

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q; got: %s", want, out)
		}
	}
}

func TestDefaultLevelHidesDebug(t *testing.T) {
	buf := swapLogger(t, clog.WarnLevel)

	Debugf("quiet")
	Infof("also quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got: %s", buf.String())
	}
	if DebugEnabled() {
		t.Fatal("debug should be disabled at warn level")
	}
}

func TestSetLevelAndDebug(t *testing.T) {
	swapLogger(t, clog.WarnLevel)

	if err := SetLevel("info"); err != nil {
		t.Fatalf("SetLevel(info): %v", err)
	}
	if L.GetLevel() != clog.InfoLevel {
		t.Fatalf("level = %v", L.GetLevel())
	}
	if err := SetLevel("chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}

	SetDebug(true)
	if !DebugEnabled() {
		t.Fatal("SetDebug(true) did not enable debug")
	}
	SetDebug(false)
	if L.GetLevel() != clog.WarnLevel {
		t.Fatalf("SetDebug(false) left level %v", L.GetLevel())
	}
}
