// Package interactor routes raw input events to widgets, 3D props, or
// the camera controller, based on picking.
package interactor

import (
	"github.com/ranveeraggarwal/dipy/pkg/errors"
	"github.com/ranveeraggarwal/dipy/pkg/events"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
	"github.com/ranveeraggarwal/dipy/pkg/ui"
)

// EventSource is the input side of a render host. Observers receive
// the named event kinds the host recognizes.
type EventSource interface {
	AddObserver(kind events.Kind, fn func(events.Event))
	RemoveObservers(kind events.Kind)
}

// Router dispatches events from an EventSource. Pointer presses are
// resolved by picking; scene props reachable through a traversal path
// get first priority, then 2D overlay actors, then pathless 3D props.
// Events that hit nothing fall through to the camera controller.
// Widget interaction and camera manipulation are mutually exclusive
// per event.
type Router struct {
	scene  scene.Scene
	picker scene.Picker
	camera *CameraController

	actors   map[scene.Actor2D]ui.Widget
	keyables map[ui.Widget]ui.KeyHandler
	handlers map[scene.Prop3D]events.Handler
	active   []activeProp

	grab    map[events.Kind]ui.Widget
	focused ui.KeyHandler
}

type activeProp struct {
	prop    scene.Prop3D
	handler events.Handler
}

// NewRouter builds a router over a scene and its picker. The camera
// controller drives the scene's camera on fallthrough.
func NewRouter(s scene.Scene, picker scene.Picker) *Router {
	return &Router{
		scene:    s,
		picker:   picker,
		camera:   NewCameraController(s.Camera()),
		actors:   make(map[scene.Actor2D]ui.Widget),
		keyables: make(map[ui.Widget]ui.KeyHandler),
		handlers: make(map[scene.Prop3D]events.Handler),
		grab:     make(map[events.Kind]ui.Widget),
	}
}

// Camera exposes the fallthrough controller, for tests and for hosts
// that want to tune its speeds.
func (r *Router) Camera() *CameraController { return r.camera }

// Register tracks a widget tree. Every leaf's actor is indexed for
// constant-time pick resolution, and key-capable leaves are resolved
// here rather than per event.
func (r *Router) Register(w ui.Widget) {
	for _, leaf := range w.CollectLeaves() {
		if actor := leaf.Actor(); actor != nil {
			r.actors[actor] = leaf
		}
		if kh, ok := leaf.(ui.KeyHandler); ok {
			r.keyables[leaf] = kh
		}
	}
	w.AddToScene(r.scene)
}

// Register3D tracks a 3D prop with a raw event handler. Props picked
// with a traversal path are forwarded here before any 2D lookup.
func (r *Router) Register3D(p scene.Prop3D, h events.Handler) {
	r.handlers[p] = h
}

// AddActiveProp subscribes a prop to keyboard events regardless of
// picking. Active handlers run in registration order until one
// consumes the event.
func (r *Router) AddActiveProp(p scene.Prop3D, h events.Handler) {
	r.active = append(r.active, activeProp{prop: p, handler: h})
}

// RemoveActiveProp drops the prop's keyboard subscription.
func (r *Router) RemoveActiveProp(p scene.Prop3D) {
	for i, ap := range r.active {
		if ap.prop == p {
			r.active = append(r.active[:i], r.active[i+1:]...)
			return
		}
	}
}

// SetInteractor attaches the router to an input source. Any observers
// the host auto-attached for camera manipulation are removed first so
// each event kind is delivered exactly once.
func (r *Router) SetInteractor(src EventSource) {
	for _, kind := range events.Kinds() {
		src.RemoveObservers(kind)
		src.AddObserver(kind, r.Dispatch)
	}
}

// Dispatch routes one event to completion. A panic inside a handler
// is reported and must not stop delivery of subsequent events.
func (r *Router) Dispatch(e events.Event) {
	defer errors.Recover("interactor.Dispatch")

	if e.Kind.IsKeyboard() {
		r.dispatchKey(e)
		return
	}

	consumed := false
	switch {
	case e.Kind.IsPress():
		consumed = r.dispatchPress(e)
	case e.Kind.IsRelease():
		consumed = r.dispatchRelease(e)
	case e.Kind == events.KindMouseMove:
		consumed = r.dispatchMove(e)
	case e.Kind == events.KindMouseWheelForward || e.Kind == events.KindMouseWheelBackward:
		consumed = r.dispatchWheel(e)
	}

	if consumed {
		r.scene.Render()
	}
}

func (r *Router) dispatchPress(e events.Event) bool {
	pick := r.picker.Pick(e.Pos)

	if pick.Prop3D != nil && len(pick.Path) > 0 {
		if h, ok := r.handlers[pick.Prop3D]; ok {
			return h(e)
		}
	}
	if pick.Actor2D != nil {
		if w, ok := r.actors[pick.Actor2D]; ok {
			r.grab[e.Kind] = w
			r.focus(w)
			return w.HandleEvent(e)
		}
	}
	if pick.Prop3D != nil {
		if h, ok := r.handlers[pick.Prop3D]; ok {
			return h(e)
		}
	}

	r.focused = nil
	r.camera.Press(e)
	return true
}

func (r *Router) dispatchRelease(e events.Event) bool {
	press := e.Kind.PressKind()
	if w, ok := r.grab[press]; ok {
		delete(r.grab, press)
		return w.HandleEvent(e)
	}
	r.camera.Release(e)
	return true
}

func (r *Router) dispatchMove(e events.Event) bool {
	if w, ok := r.grab[events.KindLeftButtonPress]; ok {
		return w.HandleEvent(e)
	}
	return r.camera.Move(e)
}

func (r *Router) dispatchWheel(e events.Event) bool {
	pick := r.picker.Pick(e.Pos)
	if pick.Actor2D != nil {
		if w, ok := r.actors[pick.Actor2D]; ok {
			return w.HandleEvent(e)
		}
	}
	r.camera.Wheel(e)
	return true
}

// focus moves keyboard focus to the pressed leaf if it was registered
// as key-capable, and drops it otherwise.
func (r *Router) focus(w ui.Widget) {
	r.focused = r.keyables[w]
}

func (r *Router) dispatchKey(e events.Event) {
	consumed := false
	for _, ap := range r.active {
		if ap.handler(e) {
			consumed = true
			break
		}
	}
	if !consumed && e.Kind == events.KindChar && r.focused != nil {
		if done := r.focused.HandleKey(e.KeySym); done {
			r.focused = nil
		}
		consumed = true
	}
	if consumed {
		r.scene.Render()
	}
}

// Focused returns the widget currently receiving key events, or nil.
func (r *Router) Focused() ui.KeyHandler { return r.focused }

// Grabbed reports the widget holding a pointer grab for the given
// press kind, or nil.
func (r *Router) Grabbed(press events.Kind) ui.Widget {
	return r.grab[press]
}
