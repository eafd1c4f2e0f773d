package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

func TestViewShowsBothPaneHeaders(t *testing.T) {
	h := newTestHarness(t, fruitOptions())
	view := plainView(h)
	for _, want := range []string{"Available tags", "Chosen tags", "Filter: "} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestViewListsAllRows(t *testing.T) {
	h := newTestHarness(t, fruitOptions())
	view := plainView(h)
	for _, want := range []string{"Apple", "Banana", "Cherry"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to list %q, got:\n%s", want, view)
		}
	}
	if !strings.Contains(view, "(no entries)") {
		t.Fatalf("expected empty chosen pane placeholder, got:\n%s", view)
	}
}

func TestViewMarksHighlightAndSelection(t *testing.T) {
	h := newTestHarness(t, fruitOptions())
	h.Send(tea.KeyMsg{Type: tea.KeyTab})
	view := plainView(h)
	if !strings.Contains(view, "* Apple") {
		t.Fatalf("expected Apple marked selected, got:\n%s", view)
	}
	if !strings.Contains(view, ">   Banana") {
		t.Fatalf("expected Banana highlighted after tab, got:\n%s", view)
	}
}

func TestViewShowsFilterTextAndNoMatches(t *testing.T) {
	h := newTestHarness(t, fruitOptions())
	h.Type("zzz")
	view := plainView(h)
	if !strings.Contains(view, "Filter: zzz") {
		t.Fatalf("expected filter text rendered, got:\n%s", view)
	}
	if !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match message, got:\n%s", view)
	}
}

func TestViewFooterListsKeyHints(t *testing.T) {
	h := newTestHarness(t, fruitOptions())
	view := plainView(h)
	for _, want := range []string{"Add", "Remove", "select", "focus", "sort", "Choose all", "Clear all", "submit", "cancel"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected footer hint %q, got:\n%s", want, view)
		}
	}

	opts := fruitOptions()
	opts.ShowFooter = false
	bare := plainView(newTestHarness(t, opts))
	if strings.Contains(bare, "Choose all") {
		t.Fatalf("expected footer suppressed, got:\n%s", bare)
	}
}

func TestViewStackedLaysPanesVertically(t *testing.T) {
	opts := fruitOptions()
	opts.Stacked = true
	h := newTestHarness(t, opts)
	view := plainView(h)

	from := strings.Index(view, "Available tags")
	to := strings.Index(view, "Chosen tags")
	if from < 0 || to < 0 || from > to {
		t.Fatalf("expected available pane above chosen pane, got:\n%s", view)
	}
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Available tags") && strings.Contains(line, "Chosen tags") {
			t.Fatalf("expected headers on separate lines, got %q", line)
		}
	}
}

func TestViewNarrowTerminalFallsBackToStacked(t *testing.T) {
	h := newTestHarness(t, fruitOptions())
	h.Send(tea.WindowSizeMsg{Width: 30, Height: 20})
	view := plainView(h)
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Available tags") && strings.Contains(line, "Chosen tags") {
			t.Fatalf("expected stacked layout under narrow width, got %q", line)
		}
	}
}

func TestViewTruncatesRowsToColumnWidth(t *testing.T) {
	opts := fruitOptions()
	opts.Width = 41
	h := newTestHarness(t, opts)
	view := plainView(h)
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "Apple") {
			return
		}
	}
	t.Fatalf("expected truncated rows still listed, got:\n%s", view)
}

func TestViewScrollsLongLists(t *testing.T) {
	opts := fruitOptions()
	opts.Height = 8
	h := newTestHarness(t, opts)
	for i := 0; i < 2; i++ {
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	view := plainView(h)
	if !strings.Contains(view, "> ") {
		t.Fatalf("expected highlight indicator visible, got:\n%s", view)
	}
	if !strings.Contains(view, "Cherry") {
		t.Fatalf("expected highlighted row scrolled into view, got:\n%s", view)
	}
}
