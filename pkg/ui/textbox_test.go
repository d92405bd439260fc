package ui_test

import (
	"strings"
	"testing"

	"github.com/ranveeraggarwal/dipy/pkg/ui"
	"github.com/ranveeraggarwal/dipy/pkg/uitest"
)

func newEditingBox(t *testing.T, width, height int) *ui.TextBox {
	t.Helper()
	box, err := ui.NewTextBox(&uitest.FakeFactory{}, width, height, "Enter text")
	if err != nil {
		t.Fatalf("NewTextBox: %v", err)
	}
	box.EnterEditMode()
	return box
}

func typeString(box *ui.TextBox, s string) {
	for _, r := range s {
		box.AddCharacter(string(r))
	}
}

func checkWindowInvariants(t *testing.T, box *ui.TextBox, capacity int) {
	t.Helper()
	left, right := box.Window()
	if left < 0 || left > right {
		t.Fatalf("window edges out of order: left=%d right=%d", left, right)
	}
	if right-left > capacity {
		t.Fatalf("window wider than capacity: left=%d right=%d capacity=%d", left, right, capacity)
	}
}

func TestTextBoxScrollsToKeepCaretVisible(t *testing.T) {
	box := newEditingBox(t, 5, 2)
	typeString(box, "HELLOWORLD")

	left, right := box.Window()
	if right-left != 9 {
		t.Errorf("window span = %d, want 9", right-left)
	}
	visible := box.ShowableText(false)
	if !strings.HasSuffix(visible, "WORLD") {
		t.Errorf("visible text = %q, want suffix %q", visible, "WORLD")
	}
}

func TestTextBoxWindowInvariantsHold(t *testing.T) {
	box := newEditingBox(t, 5, 2)
	const capacity = 5*2 - 1

	ops := []func(){
		func() { box.AddCharacter("a") },
		func() { box.AddCharacter("b") },
		func() { box.RemoveCharacter() },
		func() { box.MoveLeft() },
		func() { box.AddCharacter("c") },
		func() { box.MoveRight() },
		func() { box.RemoveCharacter() },
	}
	for round := 0; round < 10; round++ {
		for i, op := range ops {
			op()
			checkWindowInvariants(t, box, capacity)
			if box.CaretPos() < 0 || box.CaretPos() > len(box.Text()) {
				t.Fatalf("round %d op %d: caret %d outside [0, %d]", round, i, box.CaretPos(), len(box.Text()))
			}
		}
	}
}

func TestTextBoxInsertDeleteRoundTrip(t *testing.T) {
	seeds := []string{"", "AB", "HELLOWORLD", "HELLOWORLDWIDE"}
	for _, seed := range seeds {
		box := newEditingBox(t, 5, 2)
		typeString(box, seed)

		text := box.Text()
		caret := box.CaretPos()
		left, right := box.Window()

		box.AddCharacter("X")
		box.RemoveCharacter()

		if box.Text() != text {
			t.Errorf("seed %q: text = %q, want %q", seed, box.Text(), text)
		}
		if box.CaretPos() != caret {
			t.Errorf("seed %q: caret = %d, want %d", seed, box.CaretPos(), caret)
		}
		if l, r := box.Window(); l != left || r != right {
			t.Errorf("seed %q: window = [%d,%d], want [%d,%d]", seed, l, r, left, right)
		}
	}
}

func TestTextBoxRejectsMultiCharacterTokens(t *testing.T) {
	box := newEditingBox(t, 5, 2)
	box.AddCharacter("shift")
	box.AddCharacter("ctrl")
	if box.Text() != "" {
		t.Errorf("text = %q, want empty after ignored tokens", box.Text())
	}
	box.AddCharacter("space")
	if box.Text() != " " {
		t.Errorf("text = %q, want single space", box.Text())
	}
}

func TestTextBoxDeleteAtStartIsNoop(t *testing.T) {
	box := newEditingBox(t, 5, 2)
	typeString(box, "AB")
	box.MoveLeft()
	box.MoveLeft()
	box.RemoveCharacter()
	if box.Text() != "AB" || box.CaretPos() != 0 {
		t.Errorf("got text=%q caret=%d, want AB at caret 0", box.Text(), box.CaretPos())
	}
}

func TestTextBoxCaretMovesThroughFullWindow(t *testing.T) {
	box := newEditingBox(t, 5, 2)
	typeString(box, "HELLOWORLD")

	// Walk the caret back to the start; the full window must follow.
	for i := 0; i < len("HELLOWORLD"); i++ {
		box.MoveLeft()
	}
	if box.CaretPos() != 0 {
		t.Fatalf("caret = %d, want 0", box.CaretPos())
	}
	left, _ := box.Window()
	if left != 0 {
		t.Errorf("windowLeft = %d, want 0 after walking caret home", left)
	}

	for i := 0; i < len("HELLOWORLD"); i++ {
		box.MoveRight()
	}
	_, right := box.Window()
	if right != len("HELLOWORLD") {
		t.Errorf("windowRight = %d, want %d after walking caret to end", right, len("HELLOWORLD"))
	}
}

func TestTextBoxHandleKey(t *testing.T) {
	f := &uitest.FakeFactory{}
	box, err := ui.NewTextBox(f, 5, 2, "Enter text")
	if err != nil {
		t.Fatalf("NewTextBox: %v", err)
	}
	box.EnterEditMode()

	for _, key := range []string{"h", "i", "space", "G", "o"} {
		if done := box.HandleKey(key); done {
			t.Fatalf("HandleKey(%q) reported done", key)
		}
	}
	if box.Text() != "hi Go" {
		t.Errorf("text = %q, want %q", box.Text(), "hi Go")
	}
	if done := box.HandleKey("BackSpace"); done {
		t.Fatal("backspace reported done")
	}
	if box.Text() != "hi G" {
		t.Errorf("text = %q, want %q", box.Text(), "hi G")
	}
	if done := box.HandleKey("Return"); !done {
		t.Fatal("return did not report done")
	}

	// Commit renders without the caret marker.
	actor := f.Texts[0]
	if strings.Contains(actor.Message(), "_") {
		t.Errorf("committed message %q still shows caret", actor.Message())
	}
}

func TestTextBoxRenderWrapsAndFallsBackToPlaceholder(t *testing.T) {
	f := &uitest.FakeFactory{}
	box, err := ui.NewTextBox(f, 5, 2, "Enter text")
	if err != nil {
		t.Fatalf("NewTextBox: %v", err)
	}
	actor := f.Texts[0]

	box.EnterEditMode()
	box.RenderText(false)
	if actor.Message() != "Enter text" {
		t.Errorf("empty buffer renders %q, want placeholder", actor.Message())
	}

	typeString(box, "HELLOWORLD")
	box.RenderText(false)
	if actor.Message() != "ELLOW\nORLD" {
		t.Errorf("rendered %q, want %q", actor.Message(), "ELLOW\nORLD")
	}
}

func TestTextBoxConstructionValidation(t *testing.T) {
	f := &uitest.FakeFactory{}
	if _, err := ui.NewTextBox(f, 0, 2, ""); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := ui.NewTextBox(f, 5, 0, ""); err == nil {
		t.Error("zero height accepted")
	}
}
