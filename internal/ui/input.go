package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mfletcher/duolist/internal/dual"
	"github.com/mfletcher/duolist/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.submitted = false
		return tea.Quit
	case "ctrl+s":
		m.controller.SelectAllDisplayed(m.toID)
		m.submitted = true
		return tea.Quit
	case "enter":
		m.controller.HandleFilterKey(m.fromID, m.toID, dual.KeyEnter)
		return nil
	case "right":
		m.moveAcross(m.fromID, m.toID)
		return nil
	case "left":
		m.moveAcross(m.toID, m.fromID)
		return nil
	case "down":
		m.controller.HandleFilterKey(m.focusID, m.otherID(m.focusID), dual.KeyDown)
		return nil
	case "up":
		m.controller.HandleFilterKey(m.focusID, m.otherID(m.focusID), dual.KeyUp)
		return nil
	case "tab":
		if box := m.focusedPane(); box != nil && box.ToggleHighlighted() {
			// fzf-style: toggling advances to the next row so repeated tabs
			// walk the list.
			m.controller.HandleFilterKey(m.focusID, m.otherID(m.focusID), dual.KeyDown)
		}
		return nil
	case "shift+tab":
		m.focusID = m.otherID(m.focusID)
		return nil
	case "alt+a":
		m.controller.MoveAll(m.fromID, m.toID)
		return nil
	case "alt+c":
		m.controller.MoveAll(m.toID, m.fromID)
		return nil
	case "ctrl+o":
		m.controller.SortByText(m.focusID)
		return nil
	case "ctrl+u":
		if m.filter.Clear() {
			m.filterCursorDirty = true
			m.errMsg = ""
			events.Filter.Cleared(m.fromID)
			m.applyFilter()
		}
		return nil
	case "ctrl+w":
		before := m.filter.CursorPos()
		if m.filter.DeleteWordBackward() {
			m.noteFilterCursorChange(before)
			events.Filter.WordBackspace(m.fromID, m.filter.Text)
			m.applyFilter()
		}
		return nil
	case "ctrl+a":
		before := m.filter.CursorPos()
		if m.filter.MoveCursorStart() {
			m.noteFilterCursorChange(before)
			events.Filter.Cursor(m.fromID, m.filter.Cursor)
		}
		return nil
	case "ctrl+e":
		before := m.filter.CursorPos()
		if m.filter.MoveCursorEnd() {
			m.noteFilterCursorChange(before)
			events.Filter.Cursor(m.fromID, m.filter.Cursor)
		}
		return nil
	case "ctrl+b":
		before := m.filter.CursorPos()
		if m.filter.MoveCursorRuneBackward() {
			m.noteFilterCursorChange(before)
			events.Filter.Cursor(m.fromID, m.filter.Cursor)
		}
		return nil
	case "ctrl+f":
		before := m.filter.CursorPos()
		if m.filter.MoveCursorRuneForward() {
			m.noteFilterCursorChange(before)
			events.Filter.Cursor(m.fromID, m.filter.Cursor)
		}
		return nil
	case "alt+b":
		before := m.filter.CursorPos()
		if m.filter.MoveCursorWordBackward() {
			m.noteFilterCursorChange(before)
			events.Filter.Cursor(m.fromID, m.filter.Cursor)
		}
		return nil
	case "alt+f":
		before := m.filter.CursorPos()
		if m.filter.MoveCursorWordForward() {
			m.noteFilterCursorChange(before)
			events.Filter.Cursor(m.fromID, m.filter.Cursor)
		}
		return nil
	}

	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		before := m.filter.CursorPos()
		if m.filter.DeleteRuneBackward() {
			m.noteFilterCursorChange(before)
			m.applyFilter()
		}
		return nil
	case tea.KeySpace:
		m.insertFilterText(" ")
		return nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		m.insertFilterText(string(msg.Runes))
		return nil
	}
	return nil
}

func (m *Model) insertFilterText(text string) {
	before := m.filter.CursorPos()
	if m.filter.Insert(text) {
		m.noteFilterCursorChange(before)
		m.applyFilter()
	}
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.filter.CursorPos() {
		m.filterCursorDirty = true
	}
}

func (m *Model) applyFilter() {
	m.controller.ApplyFilter(m.fromID, m.filter.Text)
}

// moveAcross moves the multi-selection when one exists, otherwise the
// highlighted row, from one list to the other.
func (m *Model) moveAcross(fromID, toID string) {
	box := m.panes[fromID]
	if box == nil {
		return
	}
	if selected := box.SelectedValues(); len(selected) > 0 {
		m.controller.MoveSelected(fromID, toID, selected)
		box.ClearSelection()
		return
	}
	m.controller.HandleFilterKey(fromID, toID, dual.KeyRight)
}
