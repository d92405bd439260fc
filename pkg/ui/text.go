package ui

import (
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// Text is a text-label leaf widget. Its anchor is the lower-left corner
// of the first line, matching the text actor convention.
type Text struct {
	Base
	actor scene.TextActor
}

// TextConfig carries the optional text-label parameters.
type TextConfig struct {
	Position graphics.Offset
	Color    graphics.Color
	FontSize float64
}

// NewText builds a text label displaying message.
func NewText(f scene.Factory, message string, cfg TextConfig) *Text {
	t := &Text{}
	t.Base.init(t)
	t.actor = f.Text(message)
	if cfg.Color != graphics.ColorTransparent {
		t.actor.SetColor(cfg.Color)
	}
	if cfg.FontSize > 0 {
		t.actor.SetFontSize(cfg.FontSize)
	}
	t.SetCenter(cfg.Position)
	return t
}

func (t *Text) Kind() Kind { return KindText }

func (t *Text) Actor() scene.Actor2D { return t.actor }

// Message returns the displayed text.
func (t *Text) Message() string { return t.actor.Message() }

// SetMessage replaces the displayed text.
func (t *Text) SetMessage(text string) { t.actor.SetMessage(text) }

func (t *Text) AddToScene(s scene.Scene) {
	s.Add(t.actor)
}

func (t *Text) SetCenter(pos graphics.Offset) {
	t.center = pos
	t.actor.SetPosition(pos)
}
