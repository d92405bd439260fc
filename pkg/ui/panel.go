package ui

import (
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// Panel is a container with a background rectangle. Children are
// placed by normalized coordinates relative to the panel's lower-left
// corner, so (0, 0) is the corner and (1, 1) is the opposite one.
type Panel struct {
	Base
	background *Rectangle
	children   []Widget

	size        graphics.Size
	lowerLimits graphics.Offset
}

// NewPanel builds the background rectangle at center with the given
// fill and opacity.
func NewPanel(f scene.Factory, size graphics.Size, center graphics.Offset, color graphics.Color, opacity float64) *Panel {
	p := &Panel{
		size: size,
		lowerLimits: graphics.Offset{
			X: center.X - size.Width/2,
			Y: center.Y - size.Height/2,
		},
	}
	p.Base.init(p)
	p.center = center
	p.background = NewRectangle(f, size, center, color, opacity)
	return p
}

func (p *Panel) Kind() Kind { return KindPanel }

// Actor returns nil; a composite has no single backing actor.
func (p *Panel) Actor() scene.Actor2D { return nil }

// AddElement places a child widget inside the panel. rel is the
// normalized position of the child's center within the panel bounds.
func (p *Panel) AddElement(w Widget, rel graphics.Offset) {
	w.SetCenter(graphics.Offset{
		X: p.lowerLimits.X + rel.X*p.size.Width,
		Y: p.lowerLimits.Y + rel.Y*p.size.Height,
	})
	p.children = append(p.children, w)
}

func (p *Panel) AddToScene(s scene.Scene) {
	p.background.AddToScene(s)
	for _, c := range p.children {
		c.AddToScene(s)
	}
}

func (p *Panel) CollectLeaves() []Widget {
	leaves := []Widget{p.background}
	for _, c := range p.children {
		leaves = append(leaves, c.CollectLeaves()...)
	}
	return leaves
}

// SetCenter moves the panel background and its placement origin.
// Children already added keep their absolute positions; only elements
// added afterwards pick up the new origin.
func (p *Panel) SetCenter(pos graphics.Offset) {
	p.center = pos
	p.lowerLimits = graphics.Offset{
		X: pos.X - p.size.Width/2,
		Y: pos.Y - p.size.Height/2,
	}
	p.background.SetCenter(pos)
}

// Size returns the panel's dimensions.
func (p *Panel) Size() graphics.Size { return p.size }

// Children returns the widgets added so far, in insertion order.
func (p *Panel) Children() []Widget { return p.children }
