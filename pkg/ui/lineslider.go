package ui

import (
	"fmt"

	"github.com/ranveeraggarwal/dipy/pkg/errors"
	"github.com/ranveeraggarwal/dipy/pkg/events"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// LineSliderConfig carries construction parameters for a LineSlider.
// Zero values fall back to the defaults below.
type LineSliderConfig struct {
	Center      graphics.Offset
	Length      float64
	LineWidth   float64
	InnerRadius float64
	OuterRadius float64
	TrackColor  graphics.Color
	HandleColor graphics.Color
	Initial     float64 // initial percentage in [0, 100]
}

const (
	defaultSliderLength    = 200
	defaultSliderLineWidth = 5
	defaultSliderRadius    = 8
	sliderLabelGap         = 40
)

// LineSlider is a horizontal slider composed of a track rectangle, a
// draggable handle disk and a percentage label. There is no stored
// value field; the percentage is always re-derived from the handle's
// x position so the readout can never drift from the visual state.
type LineSlider struct {
	Base
	track  *Rectangle
	handle *Disk
	label  *Text

	length float64
	leftX  float64
	rightX float64
}

// NewLineSlider builds the three sub-widgets and wires drag handling
// on the handle disk.
func NewLineSlider(f scene.Factory, cfg LineSliderConfig) (*LineSlider, error) {
	if cfg.Length < 0 {
		return nil, &errors.ConstructionError{Widget: "LineSlider", Param: "length", Reason: "must be positive"}
	}
	if cfg.Length == 0 {
		cfg.Length = defaultSliderLength
	}
	if cfg.LineWidth == 0 {
		cfg.LineWidth = defaultSliderLineWidth
	}
	if cfg.OuterRadius == 0 {
		cfg.OuterRadius = defaultSliderRadius
	}
	if cfg.TrackColor == graphics.ColorTransparent {
		cfg.TrackColor = graphics.RGBF(1, 0, 0)
	}
	if cfg.HandleColor == graphics.ColorTransparent {
		cfg.HandleColor = graphics.ColorWhite
	}

	s := &LineSlider{
		length: cfg.Length,
		leftX:  cfg.Center.X - cfg.Length/2,
		rightX: cfg.Center.X + cfg.Length/2,
	}
	s.Base.init(s)
	s.center = cfg.Center

	s.track = NewRectangle(f, graphics.Size{Width: cfg.Length, Height: cfg.LineWidth},
		cfg.Center, cfg.TrackColor, 1)
	s.handle = NewDisk(f, cfg.InnerRadius, cfg.OuterRadius, cfg.Center)
	s.handle.SetColor(cfg.HandleColor)
	s.label = NewText(f, "", TextConfig{
		Position: graphics.Offset{X: s.leftX - sliderLabelGap, Y: cfg.Center.Y - 10},
	})

	s.handle.AddCallback(events.KindMouseMove, func(e events.Event) bool {
		s.SetHandlePosition(e.Pos)
		return true
	})
	s.handle.AddCallback(events.KindLeftButtonPress, func(e events.Event) bool {
		s.SetHandlePosition(e.Pos)
		return true
	})

	s.SetPercentage(cfg.Initial)
	return s, nil
}

func (s *LineSlider) Kind() Kind { return KindLineSlider }

// Actor returns nil; a composite has no single backing actor.
func (s *LineSlider) Actor() scene.Actor2D { return nil }

func (s *LineSlider) AddToScene(sc scene.Scene) {
	s.track.AddToScene(sc)
	s.handle.AddToScene(sc)
	s.label.AddToScene(sc)
}

func (s *LineSlider) CollectLeaves() []Widget {
	return []Widget{s.track, s.handle, s.label}
}

func (s *LineSlider) SetCenter(pos graphics.Offset) {
	delta := pos.Sub(s.center)
	s.center = pos
	s.leftX += delta.X
	s.rightX += delta.X
	s.track.SetCenter(s.track.Center().Add(delta))
	s.handle.SetCenter(s.handle.Center().Add(delta))
	s.label.SetCenter(s.label.Center().Add(delta))
	s.updateLabel()
}

// HandlePosition returns the handle's current center.
func (s *LineSlider) HandlePosition() graphics.Offset {
	return s.handle.Center()
}

// SetHandlePosition moves the handle to the pointer position, clamped
// to the track, and refreshes the label.
func (s *LineSlider) SetHandlePosition(pos graphics.Offset) {
	x := graphics.Clamp(pos.X, s.leftX, s.rightX)
	s.handle.SetCenter(graphics.Offset{X: x, Y: s.center.Y})
	s.updateLabel()
}

// Percentage derives the current value from the handle position.
func (s *LineSlider) Percentage() float64 {
	return s.percentageAt(s.handle.Center().X)
}

// SetPercentage places the handle at the track position for pct.
func (s *LineSlider) SetPercentage(pct float64) {
	pct = graphics.Clamp(pct, 0, 100)
	s.SetHandlePosition(graphics.Offset{
		X: s.leftX + pct/100*(s.rightX-s.leftX),
		Y: s.center.Y,
	})
}

func (s *LineSlider) percentageAt(x float64) float64 {
	return graphics.Clamp((x-s.leftX)/(s.rightX-s.leftX)*100, 0, 100)
}

func (s *LineSlider) updateLabel() {
	s.label.SetMessage(fmt.Sprintf("%g%%", s.Percentage()))
}
