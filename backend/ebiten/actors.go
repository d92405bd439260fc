package ebitenbackend

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// Rectangle builds a filled-quad actor.
func (s *Surface) Rectangle(size graphics.Size) scene.Actor2D {
	return &rectActor{baseActor: baseActor{size: size, opacity: 1, color: graphics.ColorWhite}}
}

// Disk builds a filled disk, or a ring when innerRadius is positive.
func (s *Surface) Disk(innerRadius, outerRadius float64) scene.Actor2D {
	return &diskActor{
		baseActor: baseActor{
			size:    graphics.Size{Width: 2 * outerRadius, Height: 2 * outerRadius},
			opacity: 1,
			color:   graphics.ColorWhite,
		},
		inner: innerRadius,
		outer: outerRadius,
	}
}

// Text builds a text actor measured with the surface's font manager.
func (s *Surface) Text(message string) scene.TextActor {
	a := &textActor{
		baseActor: baseActor{opacity: 1, color: graphics.ColorWhite},
		surface:   s,
	}
	a.SetMessage(message)
	return a
}

// Image builds a textured actor for a decoded icon.
func (s *Surface) Image(icon scene.Icon) scene.ImageActor {
	a := &imageActor{
		baseActor: baseActor{opacity: 1, color: graphics.ColorWhite},
		surface:   s,
	}
	a.SetIcon(icon)
	return a
}

// baseActor carries the state shared by all ebiten actors. Positions
// are the lower-left corner in widget space.
type baseActor struct {
	pos     graphics.Offset
	size    graphics.Size
	color   graphics.Color
	opacity float64
	hidden  bool
}

func (a *baseActor) Visible() bool                   { return !a.hidden }
func (a *baseActor) SetVisible(v bool)               { a.hidden = !v }
func (a *baseActor) Position() graphics.Offset       { return a.pos }
func (a *baseActor) SetPosition(pos graphics.Offset) { a.pos = pos }
func (a *baseActor) Size() graphics.Size             { return a.size }
func (a *baseActor) SetColor(c graphics.Color)       { a.color = c }
func (a *baseActor) SetOpacity(opacity float64)      { a.opacity = opacity }

func (a *baseActor) hitBounds() graphics.Rect {
	return graphics.RectFromLTWH(a.pos.X, a.pos.Y, a.size.Width, a.size.Height)
}

// fill returns the premultiplied draw color with opacity applied.
func (a *baseActor) fill() color.RGBA {
	c := a.color.WithAlpha(a.color.Alpha() * a.opacity)
	alpha := c.Alpha()
	scale := func(v uint8) uint8 { return uint8(float64(v) * alpha) }
	return color.RGBA{
		R: scale(uint8(c >> 16)),
		G: scale(uint8(c >> 8)),
		B: scale(uint8(c)),
		A: uint8(alpha*255 + 0.5),
	}
}

// colorValue converts an opaque overlay color for the background fill.
func colorValue(c graphics.Color) color.RGBA {
	return color.RGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c.Alpha()*255 + 0.5),
	}
}

type rectActor struct {
	baseActor
}

func (a *rectActor) draw(dst *ebiten.Image, s *Surface) {
	vector.DrawFilledRect(dst,
		float32(a.pos.X), float32(s.flipY(a.pos.Y+a.size.Height)),
		float32(a.size.Width), float32(a.size.Height),
		a.fill(), true)
}

type diskActor struct {
	baseActor
	inner float64
	outer float64
}

func (a *diskActor) draw(dst *ebiten.Image, s *Surface) {
	cx := float32(a.pos.X + a.outer)
	cy := float32(s.flipY(a.pos.Y + a.outer))
	if a.inner > 0 {
		mid := float32((a.inner + a.outer) / 2)
		vector.StrokeCircle(dst, cx, cy, mid, float32(a.outer-a.inner), a.fill(), true)
		return
	}
	vector.DrawFilledCircle(dst, cx, cy, float32(a.outer), a.fill(), true)
}
