package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ranveeraggarwal/dipy/pkg/events"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
)

type inputState struct {
	lastX int
	lastY int
	runes []rune
}

var mouseButtons = []struct {
	button  ebiten.MouseButton
	press   events.Kind
	release events.Kind
}{
	{ebiten.MouseButtonLeft, events.KindLeftButtonPress, events.KindLeftButtonRelease},
	{ebiten.MouseButtonRight, events.KindRightButtonPress, events.KindRightButtonRelease},
	{ebiten.MouseButtonMiddle, events.KindMiddleButtonPress, events.KindMiddleButtonRelease},
}

// editingKeys maps ebiten keys to the logical tokens the text box
// understands.
var editingKeys = []struct {
	key ebiten.Key
	sym string
}{
	{ebiten.KeyEnter, "return"},
	{ebiten.KeyBackspace, "backspace"},
	{ebiten.KeyArrowLeft, "left"},
	{ebiten.KeyArrowRight, "right"},
	{ebiten.KeySpace, "space"},
}

// pollInput translates one tick of ebiten input into observer events.
// Pointer positions are flipped into widget space.
func (s *Surface) pollInput() {
	x, y := ebiten.CursorPosition()
	pos := graphics.Offset{X: float64(x), Y: s.flipY(float64(y))}

	if x != s.input.lastX || y != s.input.lastY {
		s.input.lastX, s.input.lastY = x, y
		s.notify(events.Event{Kind: events.KindMouseMove, Pos: pos})
	}

	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.button) {
			s.notify(events.Event{Kind: mb.press, Pos: pos})
		}
		if inpututil.IsMouseButtonJustReleased(mb.button) {
			s.notify(events.Event{Kind: mb.release, Pos: pos})
		}
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		kind := events.KindMouseWheelForward
		if wheelY < 0 {
			kind = events.KindMouseWheelBackward
		}
		s.notify(events.Event{Kind: kind, Pos: pos})
	}

	s.input.runes = ebiten.AppendInputChars(s.input.runes[:0])
	for _, r := range s.input.runes {
		if r == ' ' {
			// Delivered through the space key below.
			continue
		}
		s.notify(events.Event{Kind: events.KindChar, Pos: pos, KeySym: string(r)})
	}
	// Observer hosts deliver a KeyPressEvent before the CharEvent for
	// the same stroke, so both fire here. Text editing listens to the
	// char kind; press subscribers see the key token too.
	for _, ek := range editingKeys {
		if inpututil.IsKeyJustPressed(ek.key) {
			s.notify(events.Event{Kind: events.KindKeyPress, Pos: pos, KeySym: ek.sym})
			s.notify(events.Event{Kind: events.KindChar, Pos: pos, KeySym: ek.sym})
		}
		if inpututil.IsKeyJustReleased(ek.key) {
			s.notify(events.Event{Kind: events.KindKeyRelease, Pos: pos, KeySym: ek.sym})
		}
	}
}
