// Package ui is the interactive full-screen mode: a Bubble Tea model
// whose Update is the keyboard state machine and whose View draws the
// frame.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gtasks/internal/config"
	"gtasks/internal/store"
)

type mode int

const (
	modeNormal mode = iota
	modeAddTitle
	modeEditTitle
	modeEditDesc
)

type Model struct {
	store  *store.Store
	cfg    config.Config
	cursor int
	mode   mode
	input  textinput.Model
	status string
	width  int
	height int

	// firstRun shows the data-location notice until any key is pressed.
	firstRun bool
}

func New(st *store.Store, cfg config.Config, firstRun bool) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = inputStyle
	ti.TextStyle = inputStyle
	ti.CharLimit = 256

	return Model{
		store:    st,
		cfg:      cfg,
		input:    ti,
		firstRun: firstRun,
	}
}

// Run drives the program until quit. Bubble Tea owns the raw-mode and
// alt-screen lifecycle, restoring the terminal on every exit path.
func Run(st *store.Store, cfg config.Config, firstRun bool) error {
	program := tea.NewProgram(New(st, cfg, firstRun), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 10
		return m, nil
	case tea.KeyMsg:
		if m.firstRun {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			m.firstRun = false
			return m, nil
		}
		m.status = ""
		if m.mode == modeNormal {
			return m.updateNormal(msg.String())
		}
		return m.updateEntry(msg)
	}
	return m, nil
}

func (m Model) updateNormal(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case "down", m.cfg.Keys.Down:
		if m.store.Len() == 0 {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor+1, m.store.Len())
	case "up", m.cfg.Keys.Up:
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, m.store.Len())
		}
	case m.cfg.Keys.Toggle:
		if err := m.store.Toggle(m.cursor); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
		}
	case m.cfg.Keys.Add:
		m.mode = modeAddTitle
		m.input.Placeholder = "Task title"
		m.input.SetValue("")
		m.input.Focus()
	case m.cfg.Keys.EditTitle:
		if t, ok := m.store.Task(m.cursor); ok {
			m.mode = modeEditTitle
			m.input.Placeholder = "Task title"
			m.input.SetValue(t.Title)
			m.input.CursorEnd()
			m.input.Focus()
		}
	case m.cfg.Keys.EditDesc:
		if t, ok := m.store.Task(m.cursor); ok {
			m.mode = modeEditDesc
			m.input.Placeholder = "Task description"
			m.input.SetValue(t.Description)
			m.input.CursorEnd()
			m.input.Focus()
		}
	case m.cfg.Keys.Delete:
		if err := m.store.Delete(m.cursor); err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
		}
		m.cursor = clampCursor(m.cursor, m.store.Len())
	}
	return m, nil
}

func (m Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		return m.leaveEntry(), nil
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m.leaveEntry(), nil
		}
		var err error
		switch m.mode {
		case modeAddTitle:
			_, err = m.store.Add(text, "")
		case modeEditTitle:
			err = m.store.SetTitle(m.cursor, text)
		case modeEditDesc:
			err = m.store.SetDescription(m.cursor, text)
		}
		next := m.leaveEntry()
		if err != nil {
			next.status = fmt.Sprintf("save failed: %v", err)
		}
		return next, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// leaveEntry returns to Normal mode with a cleared buffer, whether the
// edit was committed or discarded.
func (m Model) leaveEntry() Model {
	m.mode = modeNormal
	m.input.SetValue("")
	m.input.Blur()
	return m
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
