package ui

import (
	"fmt"
	"math"

	"github.com/ranveeraggarwal/dipy/pkg/errors"
	"github.com/ranveeraggarwal/dipy/pkg/events"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// DiskSliderConfig carries construction parameters for a DiskSlider.
type DiskSliderConfig struct {
	Center          graphics.Offset
	RingInnerRadius float64
	RingOuterRadius float64
	HandleRadius    float64
	RingColor       graphics.Color
	HandleColor     graphics.Color
	Initial         float64 // initial percentage in [0, 100)
}

const (
	defaultRingInnerRadius = 44
	defaultRingOuterRadius = 50
	defaultHandleRadius    = 10
)

// DiskSlider is a radial slider: a fixed ring, a handle disk that
// snaps onto the ring, and a percentage label at the ring's center.
// The handle travels the circle of radius (inner+outer)/2 so it rides
// the middle of the drawn ring.
//
// The percentage readout is floor(angle/360*100) zero-padded to two
// digits, which is deliberately coarser than LineSlider's format.
type DiskSlider struct {
	Base
	ring   *Disk
	handle *Disk
	label  *Text

	ringRadius float64
}

func NewDiskSlider(f scene.Factory, cfg DiskSliderConfig) (*DiskSlider, error) {
	if cfg.RingInnerRadius == 0 {
		cfg.RingInnerRadius = defaultRingInnerRadius
	}
	if cfg.RingOuterRadius == 0 {
		cfg.RingOuterRadius = defaultRingOuterRadius
	}
	if cfg.HandleRadius == 0 {
		cfg.HandleRadius = defaultHandleRadius
	}
	if cfg.RingOuterRadius <= cfg.RingInnerRadius {
		return nil, &errors.ConstructionError{Widget: "DiskSlider", Param: "ringOuterRadius", Reason: "must exceed ringInnerRadius"}
	}
	if cfg.RingColor == graphics.ColorTransparent {
		cfg.RingColor = graphics.RGBF(1, 0, 0)
	}
	if cfg.HandleColor == graphics.ColorTransparent {
		cfg.HandleColor = graphics.ColorWhite
	}

	s := &DiskSlider{
		ringRadius: (cfg.RingInnerRadius + cfg.RingOuterRadius) / 2,
	}
	s.Base.init(s)
	s.center = cfg.Center

	s.ring = NewDisk(f, cfg.RingInnerRadius, cfg.RingOuterRadius, cfg.Center)
	s.ring.SetColor(cfg.RingColor)
	s.handle = NewDisk(f, 0, cfg.HandleRadius, cfg.Center)
	s.handle.SetColor(cfg.HandleColor)
	s.label = NewText(f, "", TextConfig{
		Position: graphics.Offset{X: cfg.Center.X - 16, Y: cfg.Center.Y - 8},
	})

	drag := func(e events.Event) bool {
		s.SetHandlePosition(e.Pos)
		return true
	}
	s.handle.AddCallback(events.KindMouseMove, drag)
	s.handle.AddCallback(events.KindLeftButtonPress, drag)
	s.ring.AddCallback(events.KindLeftButtonPress, drag)

	s.SetPercentage(cfg.Initial)
	return s, nil
}

func (s *DiskSlider) Kind() Kind { return KindDiskSlider }

// Actor returns nil; a composite has no single backing actor.
func (s *DiskSlider) Actor() scene.Actor2D { return nil }

func (s *DiskSlider) AddToScene(sc scene.Scene) {
	s.ring.AddToScene(sc)
	s.handle.AddToScene(sc)
	s.label.AddToScene(sc)
}

func (s *DiskSlider) CollectLeaves() []Widget {
	return []Widget{s.ring, s.handle, s.label}
}

func (s *DiskSlider) SetCenter(pos graphics.Offset) {
	delta := pos.Sub(s.center)
	s.center = pos
	s.ring.SetCenter(s.ring.Center().Add(delta))
	s.handle.SetCenter(s.handle.Center().Add(delta))
	s.label.SetCenter(s.label.Center().Add(delta))
}

// HandlePosition returns the handle's current center.
func (s *DiskSlider) HandlePosition() graphics.Offset {
	return s.handle.Center()
}

// SetHandlePosition snaps the handle to the ring point nearest the
// pointer and refreshes the label.
func (s *DiskSlider) SetHandlePosition(pos graphics.Offset) {
	s.handle.SetCenter(s.NearestRingPoint(pos))
	s.updateLabel()
}

// NearestRingPoint projects a pointer position onto the handle ring.
// The line through the ring center and the point meets the circle
// twice; the intersection closer to the pointer wins, with squared
// distance as the tie-break. A pointer exactly at the center maps to
// the zero-angle point.
func (s *DiskSlider) NearestRingPoint(pos graphics.Offset) graphics.Offset {
	d := pos.Sub(s.center)
	var a, b graphics.Offset
	switch {
	case d.X == 0 && d.Y == 0:
		return graphics.Offset{X: s.center.X + s.ringRadius, Y: s.center.Y}
	case d.X == 0:
		a = graphics.Offset{X: s.center.X, Y: s.center.Y + s.ringRadius}
		b = graphics.Offset{X: s.center.X, Y: s.center.Y - s.ringRadius}
	case d.Y == 0:
		a = graphics.Offset{X: s.center.X + s.ringRadius, Y: s.center.Y}
		b = graphics.Offset{X: s.center.X - s.ringRadius, Y: s.center.Y}
	default:
		scale := s.ringRadius / math.Hypot(d.X, d.Y)
		a = s.center.Add(d.Scale(scale))
		b = s.center.Sub(d.Scale(scale))
	}
	if pos.DistanceSquared(a) <= pos.DistanceSquared(b) {
		return a
	}
	return b
}

// Angle returns the handle's angle on the ring in degrees, in [0, 360).
func (s *DiskSlider) Angle() float64 {
	d := s.handle.Center().Sub(s.center)
	angle := math.Atan2(d.Y, d.X) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return angle
}

// Percentage derives the current value from the handle's angle.
func (s *DiskSlider) Percentage() int {
	return int(math.Floor(s.Angle() / 360 * 100))
}

// SetPercentage places the handle on the ring at the angle for pct.
func (s *DiskSlider) SetPercentage(pct float64) {
	pct = graphics.Clamp(pct, 0, 100)
	angle := pct / 100 * 2 * math.Pi
	s.handle.SetCenter(graphics.Offset{
		X: s.center.X + s.ringRadius*math.Cos(angle),
		Y: s.center.Y + s.ringRadius*math.Sin(angle),
	})
	s.updateLabel()
}

func (s *DiskSlider) updateLabel() {
	s.label.SetMessage(fmt.Sprintf("%02d%%", s.Percentage()))
}
