// Package ebitenbackend hosts the overlay on ebiten: it implements the
// scene, factory, picker and input-source contracts over an ebiten
// game loop. Widget coordinates use a lower-left origin; the backend
// flips to ebiten's top-left screen space at the draw and input
// boundaries so core code never sees screen convention.
package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"
	etext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/ranveeraggarwal/dipy/pkg/events"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/rendering"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// Config configures a Surface.
type Config struct {
	Width  int
	Height int
	Title  string
	// Icons resolves button icon files. Required when buttons are used.
	Icons *IconLoader
	// Fonts measures and draws text. Defaults to the basic bitmap face.
	Fonts *rendering.FontManager
}

// Surface is the ebiten render host. It satisfies scene.Scene,
// scene.Factory and scene.Picker.
type Surface struct {
	width      int
	height     int
	title      string
	background graphics.Color
	camera     *OverlayCamera
	icons      *IconLoader
	fonts      *rendering.FontManager
	textFace   etext.Face

	props     []scene.Prop
	observers map[events.Kind][]func(events.Event)
	input     inputState
}

// NewSurface builds a host surface of the given logical size.
func NewSurface(cfg Config) *Surface {
	fonts := cfg.Fonts
	if fonts == nil {
		fonts = rendering.NewBasicFontManager()
	}
	return &Surface{
		width:      cfg.Width,
		height:     cfg.Height,
		title:      cfg.Title,
		background: graphics.ColorBlack,
		camera:     &OverlayCamera{},
		icons:      cfg.Icons,
		fonts:      fonts,
		textFace:   etext.NewGoXFace(fonts.Face()),
		observers:  make(map[events.Kind][]func(events.Event)),
	}
}

// Add appends props in draw order; later props draw on top.
func (s *Surface) Add(props ...scene.Prop) {
	s.props = append(s.props, props...)
}

// Remove drops a prop from the draw list.
func (s *Surface) Remove(p scene.Prop) {
	for i, q := range s.props {
		if q == p {
			s.props = append(s.props[:i], s.props[i+1:]...)
			return
		}
	}
}

// Render is a no-op request: ebiten redraws every frame, so the next
// Draw call already reflects the mutated actors.
func (s *Surface) Render() {}

// Camera returns the overlay camera state.
func (s *Surface) Camera() scene.Camera { return s.camera }

// Icons returns the surface's icon loader, or nil when unset.
func (s *Surface) Icons() *IconLoader { return s.icons }

// SetBackground sets the clear color.
func (s *Surface) SetBackground(c graphics.Color) { s.background = c }

// Pick returns the topmost visible actor whose bounds contain pos.
// The ebiten host has no 3D prop layer, so picks resolve to 2D overlay
// actors only.
func (s *Surface) Pick(pos graphics.Offset) scene.PickResult {
	for i := len(s.props) - 1; i >= 0; i-- {
		actor, ok := s.props[i].(hittable)
		if !ok || !actor.Visible() {
			continue
		}
		if actor.hitBounds().Contains(pos) {
			return scene.PickResult{Actor2D: actor}
		}
	}
	return scene.PickResult{}
}

// AddObserver subscribes to an input event kind.
func (s *Surface) AddObserver(kind events.Kind, fn func(events.Event)) {
	s.observers[kind] = append(s.observers[kind], fn)
}

// RemoveObservers drops all subscribers for the kind.
func (s *Surface) RemoveObservers(kind events.Kind) {
	delete(s.observers, kind)
}

func (s *Surface) notify(e events.Event) {
	for _, fn := range s.observers[e.Kind] {
		fn(e)
	}
}

// flipY converts between lower-left widget space and top-left screen
// space. The conversion is its own inverse.
func (s *Surface) flipY(y float64) float64 {
	return float64(s.height) - y
}

// hittable is the actor side needed for picking and drawing.
type hittable interface {
	scene.Actor2D
	hitBounds() graphics.Rect
	draw(dst *ebiten.Image, s *Surface)
}

func (s *Surface) drawProps(dst *ebiten.Image) {
	for _, p := range s.props {
		actor, ok := p.(hittable)
		if !ok || !actor.Visible() {
			continue
		}
		actor.draw(dst, s)
	}
}

// OverlayCamera accumulates the camera manipulation applied through
// fallthrough events. A host embedding a 3D world layer reads these
// values each frame to orient its own projection.
type OverlayCamera struct {
	AzimuthDeg   float64
	ElevationDeg float64
	RollDeg      float64
	Distance     float64
	PanOffset    graphics.Offset
}

func (c *OverlayCamera) Azimuth(angle float64)   { c.AzimuthDeg += angle }
func (c *OverlayCamera) Elevation(angle float64) { c.ElevationDeg += angle }
func (c *OverlayCamera) Roll(angle float64)      { c.RollDeg += angle }

func (c *OverlayCamera) Dolly(value float64) {
	if c.Distance == 0 {
		c.Distance = 1
	}
	c.Distance /= value
}

func (c *OverlayCamera) Pan(delta graphics.Offset) {
	c.PanOffset = c.PanOffset.Add(delta)
}

func (c *OverlayCamera) Reset() {
	*c = OverlayCamera{}
}
