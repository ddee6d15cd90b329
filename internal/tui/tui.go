// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui is the interactive form: a password to analyse, three personal
// seed fields and a save location, with the report and generated wordlist
// shown in a scrollable pane underneath.
package tui // import "github.com/toeirei/leetlist/internal/tui"

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/leetlist/internal/leet"
	"github.com/toeirei/leetlist/internal/logging"
	"github.com/toeirei/leetlist/internal/state"
)

func defaultTable() leet.Table { return leet.Default() }

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) error {
	defer state.Password.Clear()

	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
