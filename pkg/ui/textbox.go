package ui

import (
	"strings"

	"github.com/ranveeraggarwal/dipy/pkg/errors"
	"github.com/ranveeraggarwal/dipy/pkg/events"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// caretMarker is rendered at the caret position while editing.
const caretMarker = '_'

// TextBox is an editable text leaf widget. It keeps the full text
// buffer plus a scrolling display window of width*height-1 characters,
// so long text moves through the fixed-size viewport while the caret
// stays visible.
//
// The window invariants hold after every operation:
//
//	0 <= windowLeft <= windowRight
//	windowRight - windowLeft <= width*height - 1
//	windowLeft <= caretPos <= windowRight+1 while editing
//
// They are maintained by the movement, insert and delete operations
// themselves, not by a separate clamp step.
type TextBox struct {
	Base
	actor scene.TextActor

	text        []rune
	placeholder string
	width       int // characters per line
	height      int // lines
	caretPos    int
	windowLeft  int
	windowRight int
	editing     bool
}

// NewTextBox builds a text box showing width characters per line over
// height lines. The placeholder is displayed until editing starts.
func NewTextBox(f scene.Factory, width, height int, placeholder string) (*TextBox, error) {
	if width < 1 {
		return nil, &errors.ConstructionError{Widget: "TextBox", Param: "width", Reason: "must be at least 1"}
	}
	if height < 1 {
		return nil, &errors.ConstructionError{Widget: "TextBox", Param: "height", Reason: "must be at least 1"}
	}
	t := &TextBox{
		text:        []rune(placeholder),
		placeholder: placeholder,
		width:       width,
		height:      height,
	}
	t.Base.init(t)
	t.actor = f.Text(placeholder)
	t.AddCallback(events.KindLeftButtonPress, func(events.Event) bool {
		t.EnterEditMode()
		return true
	})
	return t, nil
}

func (t *TextBox) Kind() Kind { return KindTextBox }

func (t *TextBox) Actor() scene.Actor2D { return t.actor }

func (t *TextBox) AddToScene(s scene.Scene) {
	s.Add(t.actor)
}

func (t *TextBox) SetCenter(pos graphics.Offset) {
	t.center = pos
	t.actor.SetPosition(pos)
}

// Text returns the full text buffer.
func (t *TextBox) Text() string { return string(t.text) }

// CaretPos returns the caret position in [0, len(text)].
func (t *TextBox) CaretPos() int { return t.caretPos }

// Window returns the inclusive display bounds into the text buffer.
func (t *TextBox) Window() (left, right int) {
	return t.windowLeft, t.windowRight
}

// Editing reports whether the box has entered edit mode.
func (t *TextBox) Editing() bool { return t.editing }

// EnterEditMode transitions the box into the editing state. The first
// entry clears the placeholder text.
func (t *TextBox) EnterEditMode() {
	if !t.editing {
		t.text = t.text[:0]
		t.caretPos = 0
		t.windowLeft = 0
		t.windowRight = 0
		t.editing = true
	}
	t.RenderText(true)
}

// HandleKey interprets one logical key token, case-insensitively.
// "return" commits the text and reports done; "backspace", "left" and
// "right" edit and move; any other single character (or the token
// "space") is inserted at the caret.
func (t *TextBox) HandleKey(keySym string) bool {
	key := strings.ToLower(keySym)
	if key == "return" {
		t.RenderText(false)
		return true
	}
	switch key {
	case "backspace":
		t.RemoveCharacter()
	case "left":
		t.MoveLeft()
	case "right":
		t.MoveRight()
	default:
		t.AddCharacter(keySym)
	}
	t.RenderText(true)
	return false
}

// windowFull reports whether the display window holds the maximum
// width*height-1 characters.
func (t *TextBox) windowFull() bool {
	return t.windowRight-t.windowLeft == t.width*t.height-1
}

func (t *TextBox) caretRight() {
	t.caretPos++
	if t.caretPos > len(t.text) {
		t.caretPos = len(t.text)
	}
}

func (t *TextBox) caretLeft() {
	t.caretPos--
	if t.caretPos < 0 {
		t.caretPos = 0
	}
}

func (t *TextBox) rightEdgeRight() {
	if t.windowRight <= len(t.text) {
		t.windowRight++
	}
}

func (t *TextBox) rightEdgeLeft() {
	if t.windowRight > 0 {
		t.windowRight--
	}
}

func (t *TextBox) leftEdgeRight() {
	if t.windowLeft <= len(t.text) {
		t.windowLeft++
	}
}

func (t *TextBox) leftEdgeLeft() {
	if t.windowLeft > 0 {
		t.windowLeft--
	}
}

// AddCharacter splices a character at the caret and scrolls the window
// right if it was already full, keeping the caret visible. Input
// longer than one character is silently ignored, except the logical
// token "space".
func (t *TextBox) AddCharacter(character string) {
	runes := []rune(character)
	if len(runes) > 1 && strings.ToLower(character) != "space" {
		return
	}
	if strings.ToLower(character) == "space" {
		runes = []rune{' '}
	}
	t.text = append(t.text[:t.caretPos:t.caretPos], append(runes, t.text[t.caretPos:]...)...)
	t.caretRight()
	if t.windowFull() {
		t.leftEdgeRight()
	}
	t.rightEdgeRight()
}

// RemoveCharacter removes the character immediately before the caret
// and scrolls the window left so a full buffer stays pinned to the
// visible region without overscrolling past the start. A caret at
// position zero makes this a no-op.
func (t *TextBox) RemoveCharacter() {
	if t.caretPos == 0 {
		return
	}
	t.text = append(t.text[:t.caretPos-1:t.caretPos-1], t.text[t.caretPos:]...)
	t.caretLeft()
	if len(t.text) < t.height*t.width-1 {
		t.rightEdgeLeft()
	}
	if t.windowFull() && t.windowLeft > 0 {
		t.leftEdgeLeft()
		t.rightEdgeLeft()
	}
}

// MoveLeft moves the caret one position left, sliding a full window
// along when the caret would leave it.
func (t *TextBox) MoveLeft() {
	t.caretLeft()
	if t.caretPos == t.windowLeft-1 && t.windowFull() {
		t.leftEdgeLeft()
		t.rightEdgeLeft()
	}
}

// MoveRight moves the caret one position right, sliding a full window
// along when the caret would leave it.
func (t *TextBox) MoveRight() {
	t.caretRight()
	if t.caretPos == t.windowRight+1 && t.windowFull() {
		t.leftEdgeRight()
		t.rightEdgeRight()
	}
}

// ShowableText returns the visible substring of the buffer, with the
// caret marker spliced in when showCaret is true.
func (t *TextBox) ShowableText(showCaret bool) string {
	display := t.text
	if showCaret {
		display = append(display[:t.caretPos:t.caretPos],
			append([]rune{caretMarker}, t.text[t.caretPos:]...)...)
	}
	left := t.windowLeft
	right := t.windowRight + 1
	if left > len(display) {
		left = len(display)
	}
	if right > len(display) {
		right = len(display)
	}
	return string(display[left:right])
}

// wrap inserts a line break every width characters so multi-line boxes
// flow the window across their lines.
func (t *TextBox) wrap(text string) string {
	var sb strings.Builder
	for i, r := range []rune(text) {
		sb.WriteRune(r)
		if (i+1)%t.width == 0 {
			sb.WriteByte('\n')
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderText pushes the visible, re-wrapped text to the text actor. An
// empty buffer renders the placeholder.
func (t *TextBox) RenderText(showCaret bool) {
	text := t.ShowableText(showCaret)
	if text == "" {
		text = t.placeholder
	}
	t.actor.SetMessage(t.wrap(text))
}
