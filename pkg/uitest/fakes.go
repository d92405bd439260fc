// Package uitest provides in-memory fakes for the scene interfaces so
// widget and routing behavior can be tested without a real backend.
package uitest

import (
	"fmt"

	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// FakeActor records the state a backend actor would carry. Its Bounds
// method makes it pickable by the FakePicker.
type FakeActor struct {
	Pos     graphics.Offset
	Dim     graphics.Size
	Color   graphics.Color
	Opacity float64
	Hidden  bool
}

func (a *FakeActor) Visible() bool                   { return !a.Hidden }
func (a *FakeActor) SetVisible(v bool)               { a.Hidden = !v }
func (a *FakeActor) Position() graphics.Offset       { return a.Pos }
func (a *FakeActor) SetPosition(pos graphics.Offset) { a.Pos = pos }
func (a *FakeActor) Size() graphics.Size             { return a.Dim }
func (a *FakeActor) SetColor(c graphics.Color)       { a.Color = c }
func (a *FakeActor) SetOpacity(opacity float64)      { a.Opacity = opacity }

// Bounds returns the actor's rectangle from its lower-left anchor.
func (a *FakeActor) Bounds() graphics.Rect {
	return graphics.RectFromLTWH(a.Pos.X, a.Pos.Y, a.Dim.Width, a.Dim.Height)
}

// FakeTextActor additionally records every message pushed to it.
type FakeTextActor struct {
	FakeActor
	Msg      string
	FontSize float64
	History  []string
}

func (a *FakeTextActor) Message() string { return a.Msg }

func (a *FakeTextActor) SetMessage(msg string) {
	a.Msg = msg
	a.History = append(a.History, msg)
}

func (a *FakeTextActor) SetFontSize(size float64) { a.FontSize = size }

// FakeImageActor records the icon currently shown.
type FakeImageActor struct {
	FakeActor
	Current scene.Icon
}

func (a *FakeImageActor) SetIcon(icon scene.Icon) {
	a.Current = icon
	a.Dim = icon.Size
}

// FakeFactory builds fake actors and remembers everything it built.
type FakeFactory struct {
	Rectangles []*FakeActor
	Disks      []*FakeActor
	Texts      []*FakeTextActor
	Images     []*FakeImageActor
}

func (f *FakeFactory) Rectangle(size graphics.Size) scene.Actor2D {
	a := &FakeActor{Dim: size, Opacity: 1}
	f.Rectangles = append(f.Rectangles, a)
	return a
}

func (f *FakeFactory) Disk(innerRadius, outerRadius float64) scene.Actor2D {
	a := &FakeActor{
		Dim:     graphics.Size{Width: 2 * outerRadius, Height: 2 * outerRadius},
		Opacity: 1,
	}
	f.Disks = append(f.Disks, a)
	return a
}

func (f *FakeFactory) Text(message string) scene.TextActor {
	a := &FakeTextActor{Msg: message, History: []string{message}}
	a.Opacity = 1
	f.Texts = append(f.Texts, a)
	return a
}

func (f *FakeFactory) Image(icon scene.Icon) scene.ImageActor {
	a := &FakeImageActor{Current: icon}
	a.Dim = icon.Size
	a.Opacity = 1
	f.Images = append(f.Images, a)
	return a
}

// FakeIconLoader serves icons from a name set without touching disk.
type FakeIconLoader struct {
	Icons map[string]scene.Icon
}

func (l *FakeIconLoader) Load(name string) (scene.Icon, error) {
	if icon, ok := l.Icons[name]; ok {
		return icon, nil
	}
	return scene.Icon{}, fmt.Errorf("icon %q not found", name)
}

// NamedIcons builds a loader that resolves every listed name to a
// fixed-size icon.
func NamedIcons(size graphics.Size, names ...string) *FakeIconLoader {
	l := &FakeIconLoader{Icons: make(map[string]scene.Icon, len(names))}
	for _, name := range names {
		l.Icons[name] = scene.Icon{Name: name, Size: size}
	}
	return l
}

// FakeCamera counts the manipulations applied to it.
type FakeCamera struct {
	Azimuths   []float64
	Elevations []float64
	Rolls      []float64
	Dollies    []float64
	Pans       []graphics.Offset
	Resets     int
}

func (c *FakeCamera) Azimuth(angle float64)     { c.Azimuths = append(c.Azimuths, angle) }
func (c *FakeCamera) Elevation(angle float64)   { c.Elevations = append(c.Elevations, angle) }
func (c *FakeCamera) Roll(angle float64)        { c.Rolls = append(c.Rolls, angle) }
func (c *FakeCamera) Dolly(value float64)       { c.Dollies = append(c.Dollies, value) }
func (c *FakeCamera) Pan(delta graphics.Offset) { c.Pans = append(c.Pans, delta) }
func (c *FakeCamera) Reset()                    { c.Resets++ }

// FakeScene tracks the props added to it and counts render calls.
type FakeScene struct {
	Props      []scene.Prop
	Renders    int
	Background graphics.Color
	Cam        FakeCamera
}

func (s *FakeScene) Add(props ...scene.Prop) {
	s.Props = append(s.Props, props...)
}

func (s *FakeScene) Remove(p scene.Prop) {
	for i, q := range s.Props {
		if q == p {
			s.Props = append(s.Props[:i], s.Props[i+1:]...)
			return
		}
	}
}

func (s *FakeScene) Render()                        { s.Renders++ }
func (s *FakeScene) Camera() scene.Camera           { return &s.Cam }
func (s *FakeScene) SetBackground(c graphics.Color) { s.Background = c }

// Contains reports whether p was added to the scene.
func (s *FakeScene) Contains(p scene.Prop) bool {
	for _, q := range s.Props {
		if q == p {
			return true
		}
	}
	return false
}

// bounded is satisfied by fake actors that expose hit bounds.
type bounded interface {
	Bounds() graphics.Rect
}

// FakePicker picks the topmost visible 2D actor in the fake scene
// whose bounds contain the position. Added props later in the list
// are considered on top. Entries of Props3D that report themselves
// under the pointer win over 2D actors, matching scene-first pick
// priority.
type FakePicker struct {
	Scene  *FakeScene
	Props3 []Pickable3D
}

// Pickable3D pairs a 3D prop with the region where it picks, plus an
// optional traversal path.
type Pickable3D struct {
	Prop   scene.Prop3D
	Region graphics.Rect
	Path   []scene.Prop3D
}

func (p *FakePicker) Pick(pos graphics.Offset) scene.PickResult {
	for _, p3 := range p.Props3 {
		if p3.Region.Contains(pos) {
			return scene.PickResult{Prop3D: p3.Prop, Path: p3.Path}
		}
	}
	for i := len(p.Scene.Props) - 1; i >= 0; i-- {
		actor, ok := p.Scene.Props[i].(scene.Actor2D)
		if !ok || !actor.Visible() {
			continue
		}
		b, ok := actor.(bounded)
		if !ok || !b.Bounds().Contains(pos) {
			continue
		}
		return scene.PickResult{Actor2D: actor}
	}
	return scene.PickResult{}
}
