package ui

import (
	"reflect"
	"testing"

	"github.com/mfletcher/duolist/internal/option"
)

func paneItems(texts ...string) []option.Item {
	items := make([]option.Item, len(texts))
	for i, text := range texts {
		items[i] = option.Item{Value: text, Text: text}
	}
	return items
}

func TestPaneRenderClampsHighlight(t *testing.T) {
	p := newPane("test")
	p.Render(paneItems("a", "b", "c"))
	p.highlight = 5
	p.Render(paneItems("a", "b"))
	if p.highlight != 1 {
		t.Fatalf("expected highlight clamped to 1, got %d", p.highlight)
	}
	p.Render(nil)
	if p.highlight != 0 || p.viewport != 0 {
		t.Fatalf("expected reset for empty render, got %d/%d", p.highlight, p.viewport)
	}
}

func TestPaneSelectionInRowOrder(t *testing.T) {
	p := newPane("test")
	p.Render(paneItems("a", "b", "c"))
	p.SetHighlightedIndex(2)
	if !p.ToggleHighlighted() {
		t.Fatal("expected toggle to succeed")
	}
	p.SetHighlightedIndex(0)
	p.ToggleHighlighted()
	if got := p.SelectedValues(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("expected selection in row order, got %#v", got)
	}

	p.ToggleHighlighted()
	if got := p.SelectedValues(); !reflect.DeepEqual(got, []string{"c"}) {
		t.Fatalf("expected toggle to deselect, got %#v", got)
	}
}

func TestPaneSelectedValuesOmitsHiddenRows(t *testing.T) {
	p := newPane("test")
	p.Render(paneItems("a", "b"))
	p.SetHighlightedIndex(1)
	p.ToggleHighlighted()
	p.Render(paneItems("a"))
	if got := p.SelectedValues(); got != nil {
		t.Fatalf("expected hidden selection omitted, got %#v", got)
	}
}

func TestPaneSelectAllReplacesSelection(t *testing.T) {
	p := newPane("test")
	p.Render(paneItems("a", "b"))
	p.ToggleHighlighted()
	p.SelectAll([]string{"b"})
	if got := p.SelectedValues(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("expected selection replaced, got %#v", got)
	}
}

func TestPaneEnsureVisibleAdjustsViewport(t *testing.T) {
	p := newPane("test")
	p.Render(paneItems("a", "b", "c", "d", "e"))
	p.highlight = 4
	p.EnsureVisible(2)
	if p.viewport != 3 {
		t.Fatalf("expected viewport 3, got %d", p.viewport)
	}

	p.highlight = 0
	p.EnsureVisible(2)
	if p.viewport != 0 {
		t.Fatalf("expected viewport back to 0, got %d", p.viewport)
	}

	p.viewport = 4
	p.EnsureVisible(0)
	if p.viewport != 0 {
		t.Fatalf("expected viewport reset when maxVisible <= 0, got %d", p.viewport)
	}
}
