package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mfletcher/duolist/internal/backend"
	"github.com/mfletcher/duolist/internal/dual"
	"github.com/mfletcher/duolist/internal/i18n"
	"github.com/mfletcher/duolist/internal/logging"
	"github.com/mfletcher/duolist/internal/logging/events"
	"github.com/mfletcher/duolist/internal/option"
	"github.com/mfletcher/duolist/internal/theme"
)

var styles = theme.Default()

// Options configures a picker model.
type Options struct {
	FieldName  string
	Available  []option.Item
	Chosen     []option.Item
	Stacked    bool
	Sort       bool
	Fuzzy      bool
	Width      int
	Height     int
	ShowFooter bool
	Catalog    *i18n.Catalog
	Watcher    *backend.Watcher
}

// Model implements the Bubble Tea model for the dual-listbox picker.
type Model struct {
	fieldName  string
	fromID     string
	toID       string
	registry   *option.Registry
	controller *dual.Controller
	panes      map[string]*pane

	filter            FilterField
	filterCursor      cursor.Model
	filterCursorDirty bool

	focusID     string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	stacked     bool
	showFooter  bool
	submitted   bool
	errMsg      string

	catalog *i18n.Catalog
	watcher *backend.Watcher
}

// NewModel initialises the picker state from the loaded choice set.
func NewModel(opts Options) *Model {
	fieldID := fieldID(opts.FieldName)
	fromID := fieldID + "_from"
	toID := fieldID + "_to"

	registry := option.NewRegistry()
	available := option.NewCache(opts.Available)
	if opts.Sort {
		available.SortByText()
	}
	registry.Register(fromID, available)
	registry.Register(toID, option.NewCache(opts.Chosen))

	panes := map[string]*pane{
		fromID: newPane(fromID),
		toID:   newPane(toID),
	}

	m := &Model{
		fieldName:  opts.FieldName,
		fromID:     fromID,
		toID:       toID,
		registry:   registry,
		panes:      panes,
		focusID:    fromID,
		stacked:    opts.Stacked,
		showFooter: opts.ShowFooter,
		catalog:    opts.Catalog,
		watcher:    opts.Watcher,
	}
	if m.catalog == nil {
		m.catalog = i18n.Default()
	}

	m.controller = dual.NewController(registry, func(id string) dual.Listbox {
		box, ok := m.panes[id]
		if !ok {
			return nil
		}
		return box
	})
	if opts.Fuzzy {
		m.controller.SetMatcher(option.FuzzyMatch)
	}
	m.controller.Refresh(fromID, toID)

	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	return m
}

// fieldID normalises a field name into a listbox id prefix.
func fieldID(name string) string {
	trimmed := strings.TrimSpace(strings.ToLower(name))
	if trimmed == "" {
		return "items"
	}
	return strings.Join(strings.Fields(trimmed), "_")
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.watcher != nil {
		cmds = append(cmds, waitForReload(m.watcher))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

type reloadMsg struct {
	event backend.Event
}

func waitForReload(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return nil
		}
		return reloadMsg{event: evt}
	}
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleKeyMsg(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.WindowSizeMsg:
		if !m.fixedWidth {
			m.width = msg.Width
		}
		if !m.fixedHeight {
			m.height = msg.Height
		}
	case reloadMsg:
		m.handleReload(msg.event)
		if m.watcher != nil {
			cmds = append(cmds, waitForReload(m.watcher))
		}
	}

	return m, m.finishUpdate(cmds)
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// handleReload rebuilds the available list from a fresh choice set while
// preserving the session's chosen values and the active filter.
func (m *Model) handleReload(evt backend.Event) {
	if evt.Err != nil {
		logging.Error(evt.Err)
		m.errMsg = evt.Err.Error()
		return
	}
	chosen := m.registry.Lookup(m.toID)
	merged := append(option.CloneItems(evt.Set.Available), evt.Set.Chosen...)
	available := make([]option.Item, 0, len(merged))
	for _, item := range merged {
		if chosen != nil && chosen.Contains(item.Value) {
			continue
		}
		available = append(available, item)
	}
	m.registry.Register(m.fromID, option.NewCache(available))
	m.controller.ApplyFilter(m.fromID, m.filter.Text)
	m.errMsg = ""
	events.App.Reload(m.fieldName, len(available))
}

// Submitted reports whether the picker exited via submit rather than cancel.
func (m *Model) Submitted() bool {
	return m.submitted
}

// ChosenValues returns the values of the chosen list after submit.
func (m *Model) ChosenValues() []string {
	return m.panes[m.toID].SelectedValues()
}

func (m *Model) focusedPane() *pane {
	return m.panes[m.focusID]
}

func (m *Model) otherID(id string) string {
	if id == m.fromID {
		return m.toID
	}
	return m.fromID
}
