// Package ui implements the retained-mode overlay widgets: rectangles,
// text labels, icon buttons, editable text boxes, linear and radial
// sliders, panels, and the follower menu. Widgets build their visuals
// through a scene.Factory once at construction time and mutate them in
// place for the life of the session.
package ui

import (
	"github.com/ranveeraggarwal/dipy/pkg/events"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// Kind enumerates the widget kinds. It names widgets in logs, errors,
// and test output; dispatch capabilities are resolved from interfaces
// such as KeyHandler once at registration.
type Kind int

const (
	KindUnknown Kind = iota
	KindRectangle
	KindText
	KindDisk
	KindButton
	KindTextBox
	KindLineSlider
	KindDiskSlider
	KindPanel
	KindFollowerMenu
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindText:
		return "text"
	case KindDisk:
		return "disk"
	case KindButton:
		return "button"
	case KindTextBox:
		return "textbox"
	case KindLineSlider:
		return "lineslider"
	case KindDiskSlider:
		return "diskslider"
	case KindPanel:
		return "panel"
	case KindFollowerMenu:
		return "followermenu"
	default:
		return "unknown"
	}
}

// Widget is the common contract every UI element satisfies.
//
// Composite widgets (Panel, the sliders, FollowerMenu) own typed
// children and fan positioning and visibility changes out to them, but
// never more than one level deep: children of a composite are always
// leaves. CollectLeaves makes that contract explicit and is the only
// traversal used by render registration and repositioning.
type Widget interface {
	// Kind reports the widget kind.
	Kind() Kind
	// Actor returns the widget's exclusive visual representation, or
	// nil for composites, which have no single actor of their own.
	Actor() scene.Actor2D
	// AddToScene adds the widget's visuals (all leaves) to the surface.
	AddToScene(s scene.Scene)
	// SetCenter moves the widget's screen-space anchor.
	SetCenter(pos graphics.Offset)
	// CollectLeaves returns the leaf widgets carrying actors. A leaf
	// returns itself.
	CollectLeaves() []Widget
	// HandleEvent invokes the widget's registered callbacks for the
	// event's kind, in registration order, until one consumes it.
	HandleEvent(e events.Event) bool
}

// KeyHandler is implemented by widgets that accept keyboard focus. The
// router forwards key tokens to the focused KeyHandler; a true result
// signals the widget is done with keyboard input.
type KeyHandler interface {
	Widget
	HandleKey(keySym string) (done bool)
}

// Base carries the state shared by every widget: the screen anchor and
// the callback registry. Concrete widgets embed it and call init with
// themselves so CollectLeaves can return the leaf.
type Base struct {
	self      Widget
	center    graphics.Offset
	callbacks map[events.Kind][]events.Handler
}

func (b *Base) init(self Widget) {
	b.self = self
	b.callbacks = make(map[events.Kind][]events.Handler)
}

// Center returns the widget's screen-space anchor.
func (b *Base) Center() graphics.Offset {
	return b.center
}

// AddCallback registers a handler for the given event kind. Handlers
// run in registration order until one returns true.
func (b *Base) AddCallback(kind events.Kind, h events.Handler) {
	b.callbacks[kind] = append(b.callbacks[kind], h)
}

// HandleEvent dispatches the event to the registered handlers.
func (b *Base) HandleEvent(e events.Event) bool {
	for _, h := range b.callbacks[e.Kind] {
		if h(e) {
			return true
		}
	}
	return false
}

// CollectLeaves returns the widget itself; composites override this.
func (b *Base) CollectLeaves() []Widget {
	return []Widget{b.self}
}
