package uitest

import (
	"testing"

	"github.com/ranveeraggarwal/dipy/pkg/events"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/interactor"
)

// SceneTester wires a fake scene, factory, picker and a real router
// into one harness so tests can drive widgets with synthetic input.
type SceneTester struct {
	Scene   *FakeScene
	Factory *FakeFactory
	Picker  *FakePicker
	Router  *interactor.Router
}

// NewSceneTester creates an empty harness.
func NewSceneTester() *SceneTester {
	s := &FakeScene{}
	t := &SceneTester{
		Scene:   s,
		Factory: &FakeFactory{},
		Picker:  &FakePicker{Scene: s},
	}
	t.Router = interactor.NewRouter(s, t.Picker)
	return t
}

// NewSceneTesterWithT is the recommended constructor for tests.
func NewSceneTesterWithT(t *testing.T) *SceneTester {
	t.Helper()
	return NewSceneTester()
}

// Press sends a left button press at pos.
func (t *SceneTester) Press(pos graphics.Offset) {
	t.Router.Dispatch(events.Event{Kind: events.KindLeftButtonPress, Pos: pos})
}

// Move sends a pointer move to pos.
func (t *SceneTester) Move(pos graphics.Offset) {
	t.Router.Dispatch(events.Event{Kind: events.KindMouseMove, Pos: pos})
}

// Release sends a left button release at pos.
func (t *SceneTester) Release(pos graphics.Offset) {
	t.Router.Dispatch(events.Event{Kind: events.KindLeftButtonRelease, Pos: pos})
}

// Drag presses at from, moves through each waypoint, and releases at
// the last position.
func (t *SceneTester) Drag(from graphics.Offset, waypoints ...graphics.Offset) {
	t.Press(from)
	last := from
	for _, p := range waypoints {
		t.Move(p)
		last = p
	}
	t.Release(last)
}

// Type sends one char event per key token.
func (t *SceneTester) Type(keys ...string) {
	for _, key := range keys {
		t.Router.Dispatch(events.Event{Kind: events.KindChar, KeySym: key})
	}
}
