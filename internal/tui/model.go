// Copyright (c) 2026 Leetlist Team
// Leetlist - personal wordlist generator
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/leetlist/internal/core"
	"github.com/toeirei/leetlist/internal/export"
	"github.com/toeirei/leetlist/internal/i18n"
	"github.com/toeirei/leetlist/internal/mutate"
	"github.com/toeirei/leetlist/internal/state"
	"github.com/toeirei/leetlist/internal/wordlist"
)

// Input indices.
const (
	fieldPassword = iota
	fieldName
	fieldDOB
	fieldPet
	fieldSave
	fieldCount
)

// Rows used by everything except the output pane.
const chromeHeight = 17

var (
	errPasswordRequired = errors.New("password required")
	errNothingGenerated = errors.New("nothing generated")
)

type generatedMsg struct {
	result   *core.Result
	analysis core.Analysis
	err      error
}

type savedMsg struct {
	written []string
	err     error
}

type copiedMsg struct {
	count int
	err   error
}

// Options configures the TUI.
type Options struct {
	Generator     *core.Generator
	Years         mutate.YearRange
	MaxCandidates int
	SavePath      string
	Theme         string
}

type model struct {
	gen           *core.Generator
	years         mutate.YearRange
	maxCandidates int

	inputs     []textinput.Model
	focusIndex int
	output     viewport.Model
	help       help.Model

	theme  Theme
	styles styles

	result    *core.Result
	status    string
	statusErr bool
	width     int
}

func newModel(opts Options) model {
	m := model{
		gen:           opts.Generator,
		years:         opts.Years,
		maxCandidates: opts.MaxCandidates,
		inputs:        make([]textinput.Model, fieldCount),
		output:        viewport.New(76, 12),
		help:          help.New(),
		theme:         ThemeByName(opts.Theme),
		width:         80,
	}
	if m.gen == nil {
		m.gen = core.NewGenerator(defaultTable())
	}

	for i := range m.inputs {
		t := textinput.New()
		t.CharLimit = 128
		t.Width = 48
		t.Prompt = ""
		switch i {
		case fieldPassword:
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '*'
		case fieldDOB:
			t.Placeholder = "1990"
		case fieldSave:
			t.Placeholder = export.DefaultPath
			path := opts.SavePath
			if path == "" {
				path = export.DefaultPath
			}
			t.SetValue(path)
		}
		m.inputs[i] = t
	}
	m.inputs[fieldPassword].Focus()
	m.output.SetContent(i18n.T("tui.output.empty"))
	m.applyTheme()
	return m
}

func (m *model) applyTheme() {
	m.styles = newStyles(m.theme)
	for i := range m.inputs {
		m.inputs[i].TextStyle = m.styles.input
		m.inputs[i].PlaceholderStyle = m.styles.subtitle
		m.inputs[i].Cursor.Style = m.styles.cursor
	}
	m.output.Style = m.styles.output
	m.help.Styles.ShortKey = m.styles.help.Bold(true)
	m.help.Styles.ShortDesc = m.styles.help
	m.help.Styles.ShortSeparator = m.styles.help
	m.help.Styles.FullKey = m.styles.help.Bold(true)
	m.help.Styles.FullDesc = m.styles.help
	m.help.Styles.FullSeparator = m.styles.help
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.output.Width = max(20, msg.Width-4)
		m.output.Height = max(3, msg.Height-chromeHeight)
		return m, nil

	case generatedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.result = msg.result
		m.output.SetContent(core.Report(msg.analysis, msg.result))
		m.output.GotoTop()
		m.setStatus(i18n.T("tui.status.generated", core.HumanCount(msg.result.Len())))
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		if len(msg.written) == 0 {
			m.setStatus(i18n.T("tui.status.nothing_saved"))
			return m, nil
		}
		m.setStatus(i18n.T("tui.status.saved", strings.Join(msg.written, ", ")))
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.setStatus(i18n.T("tui.status.copied", core.HumanCount(msg.count)))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			state.Password.Clear()
			return m, tea.Quit

		case key.Matches(msg, keys.Theme):
			m.theme = m.theme.toggled()
			m.applyTheme()
			m.setStatus(i18n.T("tui.status.theme", m.theme.Name))
			return m, nil

		case key.Matches(msg, keys.Generate):
			password := m.inputs[fieldPassword].Value()
			if password == "" {
				m.setError(errPasswordRequired)
				return m, nil
			}
			state.Password.Set([]byte(password))
			return m, m.generateCmd(m.seeds())

		case key.Matches(msg, keys.Save):
			if m.result.Len() == 0 {
				m.setError(errNothingGenerated)
				return m, nil
			}
			return m, m.saveCmd(strings.TrimSpace(m.inputs[fieldSave].Value()))

		case key.Matches(msg, keys.Copy):
			if m.result.Len() == 0 {
				m.setError(errNothingGenerated)
				return m, nil
			}
			return m, m.copyCmd()

		case key.Matches(msg, keys.PageUp), key.Matches(msg, keys.PageDown):
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd

		case key.Matches(msg, keys.Next), key.Matches(msg, keys.Prev):
			if key.Matches(msg, keys.Prev) {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex >= len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs) - 1
			}
			return m, m.focusInputs()
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

func (m *model) focusInputs() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return tea.Batch(cmds...)
}

func (m *model) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m model) seeds() wordlist.Seeds {
	return wordlist.Seeds{
		{Label: "name", Value: strings.TrimSpace(m.inputs[fieldName].Value())},
		{Label: "dob", Value: strings.TrimSpace(m.inputs[fieldDOB].Value())},
		{Label: "pet", Value: strings.TrimSpace(m.inputs[fieldPet].Value())},
	}
}

// generateCmd builds the wordlist and scores the password waiting in
// state.Password, wiping it afterwards.
func (m model) generateCmd(seeds wordlist.Seeds) tea.Cmd {
	gen, years, maxCandidates := m.gen, m.years, m.maxCandidates
	return func() tea.Msg {
		secret := state.Password.Take()
		defer state.Zero(secret)

		res, err := gen.Generate(context.Background(), core.Request{Seeds: seeds, Years: years, MaxCandidates: maxCandidates})
		if err != nil {
			return generatedMsg{err: err}
		}
		return generatedMsg{result: res, analysis: gen.Analyze(string(secret), seeds, res)}
	}
}

func (m model) saveCmd(dest string) tea.Cmd {
	gen, res := m.gen, m.result
	return func() tea.Msg {
		written, err := gen.Save(context.Background(), res, []string{dest})
		return savedMsg{written: written, err: err}
	}
}

func (m model) copyCmd() tea.Cmd {
	words := m.result.Words
	return func() tea.Msg {
		return copiedMsg{count: len(words), err: export.CopyToClipboard(words)}
	}
}

func (m *model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *model) setError(err error) {
	m.statusErr = true
	switch {
	case errors.Is(err, errPasswordRequired):
		m.status = i18n.T("tui.error.password_required")
	case errors.Is(err, errNothingGenerated):
		m.status = i18n.T("tui.error.generate_first")
	default:
		m.status = i18n.T("tui.status.failed", err)
	}
}

func (m model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.title.Render(i18n.T("tui.title")))
	b.WriteString(" ")
	b.WriteString(s.subtitle.Render(i18n.T("tui.subtitle")))
	b.WriteString("\n\n")

	labels := []string{
		i18n.T("tui.field.password"),
		i18n.T("tui.field.name"),
		i18n.T("tui.field.dob"),
		i18n.T("tui.field.pet"),
		i18n.T("tui.field.save_location"),
	}
	for i, in := range m.inputs {
		label := s.label
		if i == m.focusIndex {
			label = s.focusedLabel
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label.Render(labels[i]+":"), " ", in.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.title.Render(i18n.T("tui.output.title")))
	b.WriteString("\n")
	b.WriteString(m.output.View())
	b.WriteString("\n")

	status := m.status
	switch {
	case status == "":
	case m.statusErr:
		status = s.err.Render(status)
	default:
		status = s.success.Render(status)
	}
	b.WriteString(alignFooter(status, s.status.Render(m.theme.Name), max(0, m.width-4)))
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return s.doc.Render(b.String())
}
