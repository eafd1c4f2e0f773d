package option

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Item is a value/text pair backing one selectable listbox entry.
type Item struct {
	Value string
	Text  string
}

// Record is a cached item plus its current visibility under the active filter.
type Record struct {
	Value     string
	Text      string
	Displayed bool
}

// Cache mirrors one listbox's full content as an ordered record sequence.
// Insertion order is significant: it determines render order.
type Cache struct {
	records []Record
}

// NewCache builds a cache from the given items, all displayed, order preserved.
func NewCache(items []Item) *Cache {
	c := &Cache{records: make([]Record, 0, len(items))}
	for _, item := range items {
		c.records = append(c.records, Record{Value: item.Value, Text: item.Text, Displayed: true})
	}
	return c
}

// Len returns the number of records, displayed or not.
func (c *Cache) Len() int {
	return len(c.records)
}

// Tokenize lowercases the query and splits it on runs of whitespace.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Filter marks each record displayed only when every token appears as a
// substring of its lowercased text. An empty token list displays everything.
// Records are never reordered or removed.
func (c *Cache) Filter(tokens []string) {
	for i := range c.records {
		c.records[i].Displayed = matchTokens(c.records[i].Text, tokens)
	}
}

func matchTokens(text string, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, token := range tokens {
		if !strings.Contains(lower, token) {
			return false
		}
	}
	return true
}

// Matcher reports whether a record's text satisfies the query.
type Matcher func(text, query string) bool

// TokenMatch is the default matcher: whitespace-tokenized AND substring.
func TokenMatch(text, query string) bool {
	return matchTokens(text, Tokenize(query))
}

// FuzzyMatch is the opt-in matcher backed by normalized fuzzy matching.
func FuzzyMatch(text, query string) bool {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return true
	}
	return fuzzy.MatchNormalizedFold(trimmed, text)
}

// FilterQuery applies an arbitrary matcher against the raw query string.
// A nil matcher falls back to TokenMatch.
func (c *Cache) FilterQuery(query string, match Matcher) {
	if match == nil {
		match = TokenMatch
	}
	for i := range c.records {
		c.records[i].Displayed = match(c.records[i].Text, query)
	}
}

// Contains reports whether some record has the given value. Exact match.
func (c *Cache) Contains(value string) bool {
	_, ok := c.Lookup(value)
	return ok
}

// Lookup returns the first record with the given value.
func (c *Cache) Lookup(value string) (Item, bool) {
	for _, rec := range c.records {
		if rec.Value == value {
			return Item{Value: rec.Value, Text: rec.Text}, true
		}
	}
	return Item{}, false
}

// Add appends a record, displayed, to the end of the order. No dedup check is
// performed here; callers preserving uniqueness must consult Contains first.
func (c *Cache) Add(item Item) {
	c.records = append(c.records, Record{Value: item.Value, Text: item.Text, Displayed: true})
}

// RemoveByValue removes the first record with the given value, preserving the
// relative order of the rest. Absent values are a no-op.
func (c *Cache) RemoveByValue(value string) {
	for i, rec := range c.records {
		if rec.Value == value {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return
		}
	}
}

// SortByText sorts records by lowercased text. The sort is stable so records
// whose texts differ only in case keep their original relative order.
func (c *Cache) SortByText() {
	sort.SliceStable(c.records, func(i, j int) bool {
		return strings.ToLower(c.records[i].Text) < strings.ToLower(c.records[j].Text)
	})
}

// Displayed returns a snapshot of the displayed records in current order.
func (c *Cache) Displayed() []Item {
	items := make([]Item, 0, len(c.records))
	for _, rec := range c.records {
		if rec.Displayed {
			items = append(items, Item{Value: rec.Value, Text: rec.Text})
		}
	}
	return items
}

// Items returns a snapshot of every record in current order.
func (c *Cache) Items() []Item {
	items := make([]Item, 0, len(c.records))
	for _, rec := range c.records {
		items = append(items, Item{Value: rec.Value, Text: rec.Text})
	}
	return items
}

// Values returns every record's value in current order.
func (c *Cache) Values() []string {
	values := make([]string, 0, len(c.records))
	for _, rec := range c.records {
		values = append(values, rec.Value)
	}
	return values
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
