package ui

import (
	"github.com/mfletcher/duolist/internal/option"
)

// pane is the terminal binding of one listbox: the rows last rendered from
// the cache, a highlight index, a viewport offset, and the multi-select set.
type pane struct {
	id        string
	rows      []option.Item
	highlight int
	viewport  int
	selected  map[string]struct{}
}

func newPane(id string) *pane {
	return &pane{id: id, selected: make(map[string]struct{})}
}

// Render replaces the visible rows and clamps the highlight into range.
func (p *pane) Render(items []option.Item) {
	p.rows = option.CloneItems(items)
	if len(p.rows) == 0 {
		p.highlight = 0
		p.viewport = 0
		return
	}
	if p.highlight < 0 {
		p.highlight = 0
	}
	if p.highlight >= len(p.rows) {
		p.highlight = len(p.rows) - 1
	}
	if p.viewport > len(p.rows)-1 {
		p.viewport = 0
	}
}

// SelectedValues returns the selected values among the rendered rows, in row
// order.
func (p *pane) SelectedValues() []string {
	if len(p.selected) == 0 {
		return nil
	}
	values := make([]string, 0, len(p.selected))
	for _, row := range p.rows {
		if _, ok := p.selected[row.Value]; ok {
			values = append(values, row.Value)
		}
	}
	return values
}

// SelectAll replaces the selection with the given values.
func (p *pane) SelectAll(values []string) {
	p.selected = make(map[string]struct{}, len(values))
	for _, value := range values {
		p.selected[value] = struct{}{}
	}
}

// HighlightedIndex returns the highlight position within the rendered rows.
func (p *pane) HighlightedIndex() int {
	return p.highlight
}

// SetHighlightedIndex moves the highlight, clamping into the rendered rows.
func (p *pane) SetHighlightedIndex(i int) {
	if len(p.rows) == 0 {
		p.highlight = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p.rows) {
		i = len(p.rows) - 1
	}
	p.highlight = i
}

// ToggleHighlighted toggles selection membership for the highlighted row.
func (p *pane) ToggleHighlighted() bool {
	if len(p.rows) == 0 || p.highlight < 0 || p.highlight >= len(p.rows) {
		return false
	}
	value := p.rows[p.highlight].Value
	if _, ok := p.selected[value]; ok {
		delete(p.selected, value)
	} else {
		p.selected[value] = struct{}{}
	}
	return true
}

// ClearSelection drops every selected value.
func (p *pane) ClearSelection() {
	for value := range p.selected {
		delete(p.selected, value)
	}
}

// IsSelected reports whether the given value is selected.
func (p *pane) IsSelected(value string) bool {
	_, ok := p.selected[value]
	return ok
}

// EnsureVisible adjusts the viewport offset so the highlight stays visible.
func (p *pane) EnsureVisible(maxVisible int) {
	if len(p.rows) == 0 {
		p.highlight = 0
		p.viewport = 0
		return
	}
	if p.highlight < 0 {
		p.highlight = 0
	}
	if p.highlight >= len(p.rows) {
		p.highlight = len(p.rows) - 1
	}
	if maxVisible <= 0 {
		p.viewport = 0
		return
	}
	maxOffset := len(p.rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.viewport > maxOffset {
		p.viewport = maxOffset
	}
	if p.viewport < 0 {
		p.viewport = 0
	}
	if p.highlight < p.viewport {
		p.viewport = p.highlight
	}
	upper := p.viewport + maxVisible - 1
	if p.highlight > upper {
		p.viewport = p.highlight - maxVisible + 1
		if p.viewport < 0 {
			p.viewport = 0
		}
		if p.viewport > maxOffset {
			p.viewport = maxOffset
		}
	}
}
