package ui

import (
	"github.com/ranveeraggarwal/dipy/pkg/errors"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// IconSpec names an icon and the image file backing it.
type IconSpec struct {
	Name string
	File string
}

type namedIcon struct {
	name string
	icon scene.Icon
}

// Button is a clickable leaf widget cycling through a fixed set of
// icons. Icons are decoded once at construction; NextIcon only rebinds
// the existing actor to the next resource.
//
// The button's anchor is its lower-left corner, not its geometric
// center. This asymmetry with Rectangle follows the underlying
// textured-actor convention.
type Button struct {
	Base
	icons   []namedIcon
	current int
	actor   scene.ImageActor
}

// NewButton builds a button from the given icon set. The insertion
// order of icons is the cycle order. An empty set or an unreadable
// icon file is a construction-time contract violation.
func NewButton(f scene.Factory, loader scene.IconLoader, icons []IconSpec) (*Button, error) {
	if len(icons) == 0 {
		return nil, &errors.ConstructionError{
			Widget: "Button", Param: "icons", Reason: "empty icon set",
		}
	}
	b := &Button{}
	b.Base.init(b)
	for _, spec := range icons {
		icon, err := loader.Load(spec.File)
		if err != nil {
			return nil, &errors.UIError{
				Op:       "ui.NewButton",
				Kind:     errors.KindResource,
				Resource: spec.File,
				Err:      err,
			}
		}
		b.icons = append(b.icons, namedIcon{name: spec.Name, icon: icon})
	}
	b.actor = f.Image(b.icons[0].icon)
	return b, nil
}

func (b *Button) Kind() Kind { return KindButton }

func (b *Button) Actor() scene.Actor2D { return b.actor }

func (b *Button) AddToScene(s scene.Scene) {
	s.Add(b.actor)
}

// SetCenter positions the button's lower-left corner at pos.
func (b *Button) SetCenter(pos graphics.Offset) {
	b.center = pos
	b.actor.SetPosition(pos)
}

// CurrentIconName returns the name of the icon currently shown.
func (b *Button) CurrentIconName() string {
	return b.icons[b.current].name
}

// CurrentIconIndex returns the index of the icon currently shown.
func (b *Button) CurrentIconIndex() int {
	return b.current
}

// NextIcon advances the cycle index and swaps the visual to the next
// icon, wrapping after the last one.
func (b *Button) NextIcon() {
	b.current++
	if b.current == len(b.icons) {
		b.current = 0
	}
	b.actor.SetIcon(b.icons[b.current].icon)
}
