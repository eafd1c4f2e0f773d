package format

import "strings"

// Hint pairs a key chord with its action label for the footer help row.
type Hint struct {
	Key    string
	Action string
}

// HintRow joins hints into a single footer line, padding each key to the
// widest chord so columns line up across rows.
func HintRow(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}
	keyWidth := 0
	for _, hint := range hints {
		if w := len([]rune(hint.Key)); w > keyWidth {
			keyWidth = w
		}
	}
	parts := make([]string, 0, len(hints))
	for _, hint := range hints {
		var b strings.Builder
		b.WriteString(hint.Key)
		for i := len([]rune(hint.Key)); i < keyWidth; i++ {
			b.WriteByte(' ')
		}
		b.WriteByte(' ')
		b.WriteString(hint.Action)
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "   ")
}
