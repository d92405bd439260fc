package ui

import (
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// Rectangle is a filled quad leaf widget. Unlike Button, its anchor is
// its geometric center: SetCenter positions the actor so the rectangle
// is centered on the given point.
type Rectangle struct {
	Base
	size  graphics.Size
	actor scene.Actor2D
}

// NewRectangle builds a rectangle of the given size centered on center.
func NewRectangle(f scene.Factory, size graphics.Size, center graphics.Offset, color graphics.Color, opacity float64) *Rectangle {
	r := &Rectangle{size: size}
	r.Base.init(r)
	r.actor = f.Rectangle(size)
	r.actor.SetColor(color)
	r.actor.SetOpacity(opacity)
	r.SetCenter(center)
	return r
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Actor() scene.Actor2D { return r.actor }

// Size returns the rectangle's dimensions.
func (r *Rectangle) Size() graphics.Size { return r.size }

func (r *Rectangle) AddToScene(s scene.Scene) {
	s.Add(r.actor)
}

func (r *Rectangle) SetCenter(pos graphics.Offset) {
	r.center = pos
	r.actor.SetPosition(graphics.Offset{
		X: pos.X - r.size.Width/2,
		Y: pos.Y - r.size.Height/2,
	})
}
