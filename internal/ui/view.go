package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gtasks/internal/store"
)

const headerText = " GTasks - Terminal Task Manager"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("4"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("17"))

	instructionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	inputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("15"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View maps the current state onto a full terminal frame: header bar,
// optional entry prompt, task list, footer bar pinned to the last row.
// Tasks past the bottom of the content area are simply not drawn.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.firstRun {
		return m.viewFirstRun()
	}

	lines := []string{
		headerStyle.Width(m.width).Render(headerText),
		"",
	}

	if m.mode != modeNormal {
		lines = append(lines,
			instructionStyle.Render(m.instruction()),
			m.input.View(),
			"",
		)
	}

	maxContent := m.height - 1
	if m.status != "" {
		maxContent--
	}

	if m.store.Len() == 0 {
		hint := fmt.Sprintf("No tasks yet. Press '%s' to add your first task!", keyLabel(m.cfg.Keys.Add))
		lines = append(lines, dimStyle.Render(hint))
	} else {
		for i, t := range m.store.Tasks() {
			if len(lines) >= maxContent {
				break
			}
			lines = append(lines, m.taskLine(i, t))
		}
	}

	if len(lines) > maxContent {
		lines = lines[:maxContent]
	}
	for len(lines) < maxContent {
		lines = append(lines, "")
	}
	if m.status != "" {
		lines = append(lines, warnStyle.Render(m.status))
	}
	lines = append(lines, footerStyle.Width(m.width).Render(m.footer()))
	return strings.Join(lines, "\n")
}

func (m Model) taskLine(index int, t store.Task) string {
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}
	text := fmt.Sprintf("%s %d %s", checkbox, t.ID, t.Title)

	selected := index == m.cursor && m.mode == modeNormal
	switch {
	case selected:
		text = selectedStyle.Render(text)
	case t.Completed:
		text = dimStyle.Render(text)
	}
	if t.Description != "" {
		text += dimStyle.Render(" - " + t.Description)
	}
	return text
}

func (m Model) instruction() string {
	switch m.mode {
	case modeAddTitle:
		return "Adding new task. Type title and press Enter (Esc to cancel):"
	case modeEditTitle:
		return "Editing task title. Type new title and press Enter (Esc to cancel):"
	case modeEditDesc:
		return "Editing description. Type new description and press Enter (Esc to cancel):"
	}
	return ""
}

func (m Model) footer() string {
	if m.mode != modeNormal {
		return " Press Enter to confirm | Esc to cancel"
	}
	k := m.cfg.Keys
	return fmt.Sprintf(" %s/%s navigate | %s toggle | %s add | %s edit | %s describe | %s delete | %s quit",
		keyLabel(k.Up), keyLabel(k.Down), keyLabel(k.Toggle), keyLabel(k.Add),
		keyLabel(k.EditTitle), keyLabel(k.EditDesc), keyLabel(k.Delete), keyLabel(k.Quit))
}

func (m Model) viewFirstRun() string {
	lines := []string{
		headerStyle.Width(m.width).Render(headerText),
		"",
		"Task data will be stored at: " + m.store.Path(),
	}
	if len(lines) > m.height-1 {
		lines = lines[:m.height-1]
	}
	for len(lines) < m.height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, footerStyle.Width(m.width).Render(" Press any key to continue..."))
	return strings.Join(lines, "\n")
}

func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "delete":
		return "del"
	}
	return k
}
