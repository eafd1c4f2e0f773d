package ui

import "unicode"

// FilterField holds the filter query text and a rune-offset cursor. It only
// edits text; applying the query to a cache is the model's job.
type FilterField struct {
	Text   string
	Cursor int
}

// CursorPos returns the rune offset of the cursor, clamped to the text.
func (f *FilterField) CursorPos() int {
	runes := []rune(f.Text)
	if f.Cursor < 0 {
		return 0
	}
	if f.Cursor > len(runes) {
		return len(runes)
	}
	return f.Cursor
}

// Set replaces the text and cursor, clamping the cursor into range.
func (f *FilterField) Set(text string, cursor int) {
	f.Text = text
	runes := []rune(text)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	f.Cursor = cursor
}

// Clear empties the field. Reports whether anything changed.
func (f *FilterField) Clear() bool {
	if f.Text == "" && f.CursorPos() == 0 {
		return false
	}
	f.Set("", 0)
	return true
}

// Insert inserts text at the cursor position.
func (f *FilterField) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(f.Text)
	pos := f.CursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	f.Set(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes a rune before the cursor.
func (f *FilterField) DeleteRuneBackward() bool {
	runes := []rune(f.Text)
	pos := f.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	f.Set(string(updated), pos-1)
	return true
}

// DeleteWordBackward deletes the word preceding the cursor.
func (f *FilterField) DeleteWordBackward() bool {
	runes := []rune(f.Text)
	pos := f.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	f.Set(string(updated), i)
	return true
}

// MoveCursorStart moves the cursor to the start.
func (f *FilterField) MoveCursorStart() bool {
	if f.CursorPos() == 0 {
		return false
	}
	f.Cursor = 0
	return true
}

// MoveCursorEnd moves the cursor to the end.
func (f *FilterField) MoveCursorEnd() bool {
	end := len([]rune(f.Text))
	if f.CursorPos() == end {
		return false
	}
	f.Cursor = end
	return true
}

// MoveCursorWordBackward moves the cursor one word backward.
func (f *FilterField) MoveCursorWordBackward() bool {
	runes := []rune(f.Text)
	pos := f.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	if i == pos {
		return false
	}
	f.Cursor = i
	return true
}

// MoveCursorWordForward moves the cursor one word forward.
func (f *FilterField) MoveCursorWordForward() bool {
	runes := []rune(f.Text)
	pos := f.CursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	f.Cursor = i
	return true
}

// MoveCursorRuneBackward moves the cursor one rune backward.
func (f *FilterField) MoveCursorRuneBackward() bool {
	if f.CursorPos() == 0 {
		return false
	}
	f.Cursor = f.CursorPos() - 1
	return true
}

// MoveCursorRuneForward moves the cursor one rune forward.
func (f *FilterField) MoveCursorRuneForward() bool {
	runes := []rune(f.Text)
	pos := f.CursorPos()
	if pos >= len(runes) {
		return false
	}
	f.Cursor = pos + 1
	return true
}
