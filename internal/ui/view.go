package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mfletcher/duolist/internal/format"
	"github.com/mfletcher/duolist/internal/i18n"
	"github.com/muesli/reflow/truncate"
)

const (
	// minSplitWidth is the narrowest terminal still rendered side by side.
	minSplitWidth = 40
	paneGap       = 3
)

// View implements tea.Model.
func (m *Model) View() string {
	sideBySide := !m.stacked && (m.width == 0 || m.width >= minSplitWidth)

	var body string
	if sideBySide {
		colWidth := 0
		if m.width > 0 {
			colWidth = (m.width - paneGap) / 2
		}
		left := m.paneView(m.fromID, colWidth, m.maxVisibleItems(sideBySide))
		right := m.paneView(m.toID, colWidth, m.maxVisibleItems(sideBySide))
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", paneGap), right)
	} else {
		top := m.paneView(m.fromID, m.width, m.maxVisibleItems(sideBySide))
		bottom := m.paneView(m.toID, m.width, m.maxVisibleItems(sideBySide))
		body = top + "\n\n" + bottom
	}

	sections := []string{body}
	if m.errMsg != "" {
		sections = append(sections, render(styles.Error, m.errMsg))
	}
	if m.showFooter {
		sections = append(sections, "", m.footerView())
	}
	return strings.Join(sections, "\n") + "\n"
}

func (m *Model) maxVisibleItems(sideBySide bool) int {
	if m.height <= 0 {
		return 0
	}
	// Header, filter row, and footer chrome eat into the item budget.
	chrome := 5
	if !m.showFooter {
		chrome = 3
	}
	budget := m.height - chrome
	if !sideBySide {
		budget = (budget - 2) / 2
	}
	if budget < 1 {
		budget = 1
	}
	return budget
}

func (m *Model) paneView(id string, colWidth, maxVisible int) string {
	box := m.panes[id]
	if box == nil {
		return ""
	}
	focused := id == m.focusID

	lines := make([]string, 0, len(box.rows)+2)
	lines = append(lines, m.paneHeader(id, focused))
	if id == m.fromID {
		lines = append(lines, m.filterView())
	} else {
		lines = append(lines, "")
	}

	box.EnsureVisible(maxVisible)
	rows := box.rows
	start := 0
	if maxVisible > 0 && len(rows) > maxVisible {
		start = box.viewport
		if start+maxVisible > len(rows) {
			start = len(rows) - maxVisible
		}
		rows = rows[start : start+maxVisible]
	}

	if len(box.rows) == 0 {
		msg := m.catalog.Lookup(i18n.KeyEmptyList)
		if id == m.fromID && strings.TrimSpace(m.filter.Text) != "" {
			msg = m.catalog.Sprintf(i18n.KeyNoMatches, m.filter.Text)
		}
		lines = append(lines, render(styles.Info, msg))
	}
	for i, row := range rows {
		lines = append(lines, m.rowView(box, start+i, row.Value, row.Text, colWidth, focused))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) paneHeader(id string, focused bool) string {
	key := i18n.KeyAvailable
	if id == m.toID {
		key = i18n.KeyChosen
	}
	text := m.catalog.Sprintf(key, m.fieldName)
	if focused {
		return render(styles.Header, text)
	}
	return render(styles.InactiveHeader, text)
}

func (m *Model) rowView(box *pane, index int, value, text string, colWidth int, focused bool) string {
	mark := " "
	if box.IsSelected(value) {
		mark = "*"
	}
	indicator := "  "
	if index == box.highlight {
		indicator = "> "
	}
	line := indicator + mark + " " + text
	if colWidth > 0 {
		line = truncate.String(line, uint(colWidth))
	}
	if index == box.highlight && focused {
		return render(styles.HighlightedItem, line)
	}
	if mark == "*" {
		return render(styles.SelectedMark, line)
	}
	return render(styles.Item, line)
}

func (m *Model) filterView() string {
	prompt := render(styles.FilterPrompt, m.catalog.Lookup(i18n.KeyFilterPrompt)+": ")
	runes := []rune(m.filter.Text)
	pos := m.filter.CursorPos()
	under := " "
	if pos < len(runes) {
		under = string(runes[pos])
	}
	m.filterCursor.SetChar(under)
	before := render(styles.Filter, string(runes[:pos]))
	after := ""
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.filterCursor.View() + after
}

func (m *Model) footerView() string {
	hints := []format.Hint{
		{Key: "enter", Action: m.catalog.Lookup(i18n.KeyAdd)},
		{Key: "←", Action: m.catalog.Lookup(i18n.KeyRemove)},
		{Key: "tab", Action: m.catalog.Lookup(i18n.KeySelectHint)},
		{Key: "S-tab", Action: m.catalog.Lookup(i18n.KeyFocusHint)},
		{Key: "C-o", Action: m.catalog.Lookup(i18n.KeySortHint)},
		{Key: "M-a", Action: m.catalog.Lookup(i18n.KeyChooseAll)},
		{Key: "M-c", Action: m.catalog.Lookup(i18n.KeyClearAll)},
		{Key: "C-s", Action: m.catalog.Lookup(i18n.KeySubmitHint)},
		{Key: "esc", Action: m.catalog.Lookup(i18n.KeyCancelHint)},
	}
	return render(styles.Footer, format.HintRow(hints))
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
