// Package events defines the named input-event kinds delivered by the
// host render loop and the event value routed to widgets. The names
// follow the render surface's observer vocabulary so recordings stay
// readable.
package events

import "github.com/ranveeraggarwal/dipy/pkg/graphics"

// Kind identifies a raw input event delivered by the host.
type Kind int

const (
	// KindUnknown is the zero Kind; it is never dispatched.
	KindUnknown Kind = iota
	KindLeftButtonPress
	KindLeftButtonRelease
	KindRightButtonPress
	KindRightButtonRelease
	KindMiddleButtonPress
	KindMiddleButtonRelease
	KindMouseMove
	KindMouseWheelForward
	KindMouseWheelBackward
	KindChar
	KindKeyPress
	KindKeyRelease
)

var kindNames = map[Kind]string{
	KindLeftButtonPress:     "LeftButtonPressEvent",
	KindLeftButtonRelease:   "LeftButtonReleaseEvent",
	KindRightButtonPress:    "RightButtonPressEvent",
	KindRightButtonRelease:  "RightButtonReleaseEvent",
	KindMiddleButtonPress:   "MiddleButtonPressEvent",
	KindMiddleButtonRelease: "MiddleButtonReleaseEvent",
	KindMouseMove:           "MouseMoveEvent",
	KindMouseWheelForward:   "MouseWheelForwardEvent",
	KindMouseWheelBackward:  "MouseWheelBackwardEvent",
	KindChar:                "CharEvent",
	KindKeyPress:            "KeyPressEvent",
	KindKeyRelease:          "KeyReleaseEvent",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UnknownEvent"
}

// ParseKind resolves an event name back to its Kind. The second return
// value reports whether the name was recognized.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindUnknown, false
}

// Kinds returns every dispatchable event kind, in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindLeftButtonPress, KindLeftButtonRelease,
		KindRightButtonPress, KindRightButtonRelease,
		KindMiddleButtonPress, KindMiddleButtonRelease,
		KindMouseMove,
		KindMouseWheelForward, KindMouseWheelBackward,
		KindChar, KindKeyPress, KindKeyRelease,
	}
}

// IsPress reports whether the kind is a pointer-button press.
func (k Kind) IsPress() bool {
	return k == KindLeftButtonPress || k == KindRightButtonPress || k == KindMiddleButtonPress
}

// IsRelease reports whether the kind is a pointer-button release.
func (k Kind) IsRelease() bool {
	return k == KindLeftButtonRelease || k == KindRightButtonRelease || k == KindMiddleButtonRelease
}

// PressKind maps a release kind to the matching press kind. Any other
// kind maps to itself.
func (k Kind) PressKind() Kind {
	switch k {
	case KindLeftButtonRelease:
		return KindLeftButtonPress
	case KindRightButtonRelease:
		return KindRightButtonPress
	case KindMiddleButtonRelease:
		return KindMiddleButtonPress
	}
	return k
}

// IsKeyboard reports whether the kind carries a key symbol instead of a
// pointer position.
func (k Kind) IsKeyboard() bool {
	return k == KindChar || k == KindKeyPress || k == KindKeyRelease
}

// Event is a raw input event as delivered by the host.
type Event struct {
	// Kind names the event.
	Kind Kind
	// Pos is the screen position for pointer events.
	Pos graphics.Offset
	// KeySym is the logical key token for keyboard events ("a",
	// "space", "return", "backspace", "left", "right", ...). Key
	// tokens are interpreted case-insensitively.
	KeySym string
}

// Handler processes a routed event. Returning true stops propagation to
// any remaining handlers registered for the same actor and event kind.
type Handler func(e Event) bool
