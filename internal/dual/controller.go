package dual

import (
	"github.com/mfletcher/duolist/internal/logging/events"
	"github.com/mfletcher/duolist/internal/option"
)

// Listbox is the rendering surface for one list. Any toolkit binding that can
// redraw its rows, report its selection, and track a highlight satisfies it;
// the controller never touches a concrete UI API.
type Listbox interface {
	Render(items []option.Item)
	SelectedValues() []string
	SelectAll(values []string)
	HighlightedIndex() int
	SetHighlightedIndex(i int)
}

// Resolver maps a listbox ID to its rendering surface.
type Resolver func(id string) Listbox

// Key identifies the filter-field keystrokes the controller interprets.
type Key int

const (
	KeyEnter Key = iota
	KeyRight
	KeyDown
	KeyUp
)

// Controller coordinates two option caches, translating user commands into
// cache mutations and re-renders. All state between calls lives in the caches
// and the listboxes' highlight indexes.
type Controller struct {
	registry *option.Registry
	resolve  Resolver
	matcher  option.Matcher
}

// NewController binds a controller to a cache registry and a listbox resolver.
func NewController(registry *option.Registry, resolve Resolver) *Controller {
	return &Controller{registry: registry, resolve: resolve}
}

// SetMatcher overrides the filter matcher. Nil restores token matching.
func (c *Controller) SetMatcher(m option.Matcher) {
	c.matcher = m
}

func (c *Controller) cache(id string) *option.Cache {
	cache := c.registry.Lookup(id)
	if cache == nil {
		events.Widget.UnknownList(id)
	}
	return cache
}

func (c *Controller) render(id string) {
	cache := c.registry.Lookup(id)
	if cache == nil {
		return
	}
	if box := c.resolve(id); box != nil {
		box.Render(cache.Displayed())
	}
}

// Refresh re-renders the given lists from their caches.
func (c *Controller) Refresh(ids ...string) {
	for _, id := range ids {
		c.render(id)
	}
}

// MoveSelected moves each selected value present in the from cache to the to
// cache. Processing follows the from cache's current order, not the selection
// order, so moved items keep their relative order. Both lists re-render.
func (c *Controller) MoveSelected(fromID, toID string, selected []string) {
	from := c.cache(fromID)
	to := c.cache(toID)
	if from == nil || to == nil || len(selected) == 0 {
		return
	}
	wanted := make(map[string]struct{}, len(selected))
	for _, value := range selected {
		wanted[value] = struct{}{}
	}
	moved := make([]string, 0, len(selected))
	for _, item := range from.Items() {
		if _, ok := wanted[item.Value]; !ok {
			continue
		}
		if !from.Contains(item.Value) {
			continue
		}
		to.Add(item)
		from.RemoveByValue(item.Value)
		moved = append(moved, item.Value)
	}
	if len(moved) > 0 {
		events.Widget.Move(fromID, toID, moved)
	}
	c.render(fromID)
	c.render(toID)
}

// MoveAll moves every record, displayed or not, from one cache to the other,
// preserving order. Callers uphold the precondition that no from value is
// already present in to; no Contains check is made here.
func (c *Controller) MoveAll(fromID, toID string) {
	from := c.cache(fromID)
	to := c.cache(toID)
	if from == nil || to == nil {
		return
	}
	items := from.Items()
	for _, item := range items {
		to.Add(item)
		from.RemoveByValue(item.Value)
	}
	if len(items) > 0 {
		events.Widget.MoveAll(fromID, toID, len(items))
	}
	c.render(fromID)
	c.render(toID)
}

// ApplyFilter filters the from cache against the query and re-renders only
// that list. A blank query displays every record.
func (c *Controller) ApplyFilter(fromID, query string) {
	from := c.cache(fromID)
	if from == nil {
		return
	}
	from.FilterQuery(query, c.matcher)
	events.Filter.Applied(fromID, query, len(from.Displayed()))
	c.render(fromID)
}

// SortByText sorts the given cache by display text and re-renders it.
func (c *Controller) SortByText(listID string) {
	cache := c.cache(listID)
	if cache == nil {
		return
	}
	cache.SortByText()
	events.Widget.Sorted(listID)
	c.render(listID)
}

// HandleFilterKey interprets a keystroke arriving in the filter field. The
// return value reports whether the caller must suppress the key's native
// behaviour (for Enter, form submission).
func (c *Controller) HandleFilterKey(fromID, toID string, key Key) bool {
	switch key {
	case KeyEnter:
		from := c.cache(fromID)
		if from == nil {
			return true
		}
		displayed := from.Displayed()
		if len(displayed) > 0 {
			c.MoveSelected(fromID, toID, []string{displayed[0].Value})
		}
		return true
	case KeyRight:
		c.moveHighlighted(fromID, toID)
		return true
	case KeyDown:
		c.stepHighlight(fromID, 1)
		return false
	case KeyUp:
		c.stepHighlight(fromID, -1)
		return false
	}
	return false
}

func (c *Controller) moveHighlighted(fromID, toID string) {
	from := c.cache(fromID)
	box := c.resolve(fromID)
	if from == nil || box == nil {
		return
	}
	displayed := from.Displayed()
	idx := box.HighlightedIndex()
	if idx < 0 || idx >= len(displayed) {
		return
	}
	c.MoveSelected(fromID, toID, []string{displayed[idx].Value})
	remaining := len(from.Displayed())
	if remaining == 0 {
		box.SetHighlightedIndex(0)
		return
	}
	if idx > remaining-1 {
		idx = remaining - 1
	}
	box.SetHighlightedIndex(idx)
}

func (c *Controller) stepHighlight(listID string, delta int) {
	cache := c.cache(listID)
	box := c.resolve(listID)
	if cache == nil || box == nil {
		return
	}
	n := len(cache.Displayed())
	if n == 0 {
		return
	}
	idx := box.HighlightedIndex() + delta
	if idx >= n {
		idx = 0
	}
	if idx < 0 {
		idx = n - 1
	}
	box.SetHighlightedIndex(idx)
	events.Widget.Highlight(listID, idx)
}

// SelectAllDisplayed marks every rendered row of the given list as selected,
// so all of its values reach the submitted payload even when the user never
// touched the list.
func (c *Controller) SelectAllDisplayed(listID string) {
	cache := c.cache(listID)
	box := c.resolve(listID)
	if cache == nil || box == nil {
		return
	}
	displayed := cache.Displayed()
	values := make([]string, 0, len(displayed))
	for _, item := range displayed {
		values = append(values, item.Value)
	}
	box.SelectAll(values)
}
