package ui

import "testing"

func TestFilterFieldInsertAndDelete(t *testing.T) {
	var f FilterField

	if !f.Insert("ab") {
		t.Fatal("expected insert to succeed")
	}
	if f.Text != "ab" || f.CursorPos() != 2 {
		t.Fatalf("unexpected field state %q/%d", f.Text, f.CursorPos())
	}

	f.Cursor = 1
	if !f.Insert("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if f.Text != "azb" || f.CursorPos() != 2 {
		t.Fatalf("unexpected field state %q/%d", f.Text, f.CursorPos())
	}

	if !f.DeleteRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if f.Text != "ab" || f.CursorPos() != 1 {
		t.Fatalf("unexpected field state after delete %q/%d", f.Text, f.CursorPos())
	}

	f.Set("abc def", len("abc def"))
	if !f.DeleteWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if f.Text != "abc " {
		t.Fatalf("expected trailing word removed, got %q", f.Text)
	}

	f.Set("abc", 0)
	if f.DeleteRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterFieldCursorNavigation(t *testing.T) {
	var f FilterField
	f.Set("one two", len("one two"))

	if !f.MoveCursorWordBackward() {
		t.Fatal("expected word backward movement")
	}
	if f.CursorPos() != 4 {
		t.Fatalf("expected cursor at 4, got %d", f.CursorPos())
	}
	if !f.MoveCursorWordForward() {
		t.Fatal("expected word forward movement")
	}
	if f.CursorPos() != len("one two") {
		t.Fatalf("expected cursor at end, got %d", f.CursorPos())
	}

	if !f.MoveCursorRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if !f.MoveCursorRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if f.MoveCursorRuneForward() {
		t.Fatal("expected no movement past end")
	}
	if !f.MoveCursorStart() {
		t.Fatal("expected move to start")
	}
	if f.MoveCursorStart() {
		t.Fatal("expected no movement at start")
	}
	if !f.MoveCursorEnd() {
		t.Fatal("expected move to end")
	}
}

func TestFilterFieldClear(t *testing.T) {
	var f FilterField
	if f.Clear() {
		t.Fatal("expected clear of empty field to report no change")
	}
	f.Set("abc", 2)
	if !f.Clear() {
		t.Fatal("expected clear to report change")
	}
	if f.Text != "" || f.CursorPos() != 0 {
		t.Fatalf("unexpected state after clear %q/%d", f.Text, f.CursorPos())
	}
}

func TestFilterFieldSetClampsCursor(t *testing.T) {
	var f FilterField
	f.Set("ab", 99)
	if f.CursorPos() != 2 {
		t.Fatalf("expected cursor clamped to end, got %d", f.CursorPos())
	}
	f.Set("ab", -5)
	if f.CursorPos() != 0 {
		t.Fatalf("expected cursor clamped to start, got %d", f.CursorPos())
	}
}
