package ui

import (
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// Disk is a filled-annulus leaf widget. The sliders use it for both
// ring tracks (inner radius close to outer) and draggable handles
// (inner radius zero).
type Disk struct {
	Base
	outerRadius float64
	actor       scene.Actor2D
}

// NewDisk builds a disk with the given radii centered on center.
func NewDisk(f scene.Factory, innerRadius, outerRadius float64, center graphics.Offset) *Disk {
	d := &Disk{outerRadius: outerRadius}
	d.Base.init(d)
	d.actor = f.Disk(innerRadius, outerRadius)
	d.SetCenter(center)
	return d
}

func (d *Disk) Kind() Kind { return KindDisk }

func (d *Disk) Actor() scene.Actor2D { return d.actor }

func (d *Disk) AddToScene(s scene.Scene) {
	s.Add(d.actor)
}

// SetColor sets the disk's fill color.
func (d *Disk) SetColor(color graphics.Color) {
	d.actor.SetColor(color)
}

func (d *Disk) SetCenter(pos graphics.Offset) {
	d.center = pos
	d.actor.SetPosition(graphics.Offset{
		X: pos.X - d.outerRadius,
		Y: pos.Y - d.outerRadius,
	})
}
