// Package i18n resolves UI labels by message key. Keys double as the English
// text, so an empty catalog still yields a usable interface; translation files
// overlay the defaults.
package i18n

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Message keys used by the widget.
const (
	KeyAvailable    = "Available %s"
	KeyChosen       = "Chosen %s"
	KeyChooseAll    = "Choose all"
	KeyAdd          = "Add"
	KeyRemove       = "Remove"
	KeyClearAll     = "Clear all"
	KeyFilterPrompt = "Filter"
	KeyNoMatches    = "No matches for %q"
	KeyEmptyList    = "(no entries)"
	KeySubmitHint   = "submit"
	KeyCancelHint   = "cancel"
	KeySortHint     = "sort"
	KeySelectHint   = "select"
	KeyFocusHint    = "focus"
)

// Catalog maps message keys to translated text.
type Catalog struct {
	messages map[string]string
}

// Default returns a catalog with no overlays: every key resolves to itself.
func Default() *Catalog {
	return &Catalog{messages: make(map[string]string)}
}

// LoadFile reads a YAML translation file (a flat key/text map) and returns a
// catalog overlaying the defaults.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	overlay := map[string]string{}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	c := Default()
	c.Merge(overlay)
	return c, nil
}

// Merge applies overlay entries on top of the catalog. Empty texts are
// ignored so a sparse file cannot blank out labels.
func (c *Catalog) Merge(overlay map[string]string) {
	for key, text := range overlay {
		if text == "" {
			continue
		}
		c.messages[key] = text
	}
}

// Lookup resolves a key, falling back to the key itself when untranslated.
func (c *Catalog) Lookup(key string) string {
	if c != nil {
		if text, ok := c.messages[key]; ok {
			return text
		}
	}
	return key
}

// Sprintf resolves a key and interpolates arguments into it.
func (c *Catalog) Sprintf(key string, args ...interface{}) string {
	return fmt.Sprintf(c.Lookup(key), args...)
}
