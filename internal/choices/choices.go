package choices

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mfletcher/duolist/internal/option"
	"gopkg.in/yaml.v3"
)

// Set holds the loaded items split into the two initial lists.
type Set struct {
	Available []option.Item
	Chosen    []option.Item
}

// Entry is one choice in a YAML choices file.
type Entry struct {
	Value  string `yaml:"value"`
	Text   string `yaml:"text"`
	Chosen bool   `yaml:"chosen"`
}

// Load reads a choices file. "-" reads stdin in line format; .yaml/.yml files
// parse as a YAML entry list, anything else as lines.
func Load(path string) (Set, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return Set{}, fmt.Errorf("read choices from stdin: %w", err)
		}
		return ParseLines(data)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read choices file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseLines(data)
	}
}

// ParseYAML decodes a YAML list of entries. A missing value falls back to the
// text. Duplicate values keep the first occurrence.
func ParseYAML(data []byte) (Set, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return Set{}, fmt.Errorf("parse choices yaml: %w", err)
	}
	builder := newSetBuilder()
	for i, entry := range entries {
		if entry.Text == "" && entry.Value == "" {
			return Set{}, fmt.Errorf("choices entry %d has neither value nor text", i)
		}
		if entry.Text == "" {
			entry.Text = entry.Value
		}
		if entry.Value == "" {
			entry.Value = entry.Text
		}
		builder.add(option.Item{Value: entry.Value, Text: entry.Text}, entry.Chosen)
	}
	return builder.set, nil
}

// ParseLines decodes the plain line format: one item per line, either
// "value<TAB>text" or bare text (value defaults to text). A leading "*" marks
// the item as already chosen. Blank lines and "#" comments are skipped.
func ParseLines(data []byte) (Set, error) {
	builder := newSetBuilder()
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		chosen := false
		if strings.HasPrefix(trimmed, "*") {
			chosen = true
			trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "*"))
			if trimmed == "" {
				continue
			}
		}
		value, text := trimmed, trimmed
		if tab := strings.IndexByte(trimmed, '\t'); tab >= 0 {
			value = strings.TrimSpace(trimmed[:tab])
			text = strings.TrimSpace(trimmed[tab+1:])
			if value == "" {
				value = text
			}
			if text == "" {
				text = value
			}
		}
		builder.add(option.Item{Value: value, Text: text}, chosen)
	}
	return builder.set, nil
}

// setBuilder enforces first-occurrence-wins across both lists.
type setBuilder struct {
	set  Set
	seen map[string]struct{}
}

func newSetBuilder() *setBuilder {
	return &setBuilder{seen: make(map[string]struct{})}
}

func (b *setBuilder) add(item option.Item, chosen bool) {
	if _, ok := b.seen[item.Value]; ok {
		return
	}
	b.seen[item.Value] = struct{}{}
	if chosen {
		b.set.Chosen = append(b.set.Chosen, item)
		return
	}
	b.set.Available = append(b.set.Available, item)
}
