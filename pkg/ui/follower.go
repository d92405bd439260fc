package ui

import (
	"math"

	"github.com/ranveeraggarwal/dipy/pkg/errors"
	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/scene"
)

// orbitThickness is the drawn width of the follower menu's orbit ring.
const orbitThickness = 1

// FollowerMenu arranges a set of widgets on an orbit circle around a
// shared center, evenly spaced by angle. Each slot has two candidate
// points where the slot's diameter line crosses the orbit; the
// candidate farther from all previously placed items wins, which
// spreads the items out instead of bunching them on one side.
type FollowerMenu struct {
	Base
	orbit *Disk
	items []Widget

	position graphics.Offset
	diameter float64
}

// NewFollowerMenu places the given widgets on an orbit of the given
// diameter around position.
func NewFollowerMenu(f scene.Factory, position graphics.Offset, diameter float64, items []Widget) (*FollowerMenu, error) {
	if diameter <= 0 {
		return nil, &errors.ConstructionError{Widget: "FollowerMenu", Param: "diameter", Reason: "must be positive"}
	}
	if len(items) == 0 {
		return nil, &errors.ConstructionError{Widget: "FollowerMenu", Param: "items", Reason: "requires at least one item"}
	}
	m := &FollowerMenu{
		items:    items,
		position: position,
		diameter: diameter,
	}
	m.Base.init(m)
	m.center = position
	m.orbit = NewDisk(f, diameter/2, diameter/2+orbitThickness, position)
	m.arrange()
	return m, nil
}

func (m *FollowerMenu) Kind() Kind { return KindFollowerMenu }

// Actor returns nil; a composite has no single backing actor.
func (m *FollowerMenu) Actor() scene.Actor2D { return nil }

func (m *FollowerMenu) AddToScene(s scene.Scene) {
	m.orbit.AddToScene(s)
	for _, it := range m.items {
		it.AddToScene(s)
	}
}

func (m *FollowerMenu) CollectLeaves() []Widget {
	leaves := []Widget{m.orbit}
	for _, it := range m.items {
		leaves = append(leaves, it.CollectLeaves()...)
	}
	return leaves
}

func (m *FollowerMenu) SetCenter(pos graphics.Offset) {
	m.center = pos
	m.position = pos
	m.orbit.SetCenter(pos)
	m.arrange()
}

// Items returns the arranged widgets in slot order.
func (m *FollowerMenu) Items() []Widget { return m.items }

// totalDist sums the distances from p to every already placed point.
func totalDist(p graphics.Offset, placed []graphics.Offset) float64 {
	var sum float64
	for _, q := range placed {
		sum += p.Distance(q)
	}
	return sum
}

func (m *FollowerMenu) arrange() {
	radius := m.diameter / 2
	step := 2 * math.Pi / float64(len(m.items))
	placed := make([]graphics.Offset, 0, len(m.items))
	for i, it := range m.items {
		theta := step * float64(i+1)
		offset := graphics.Offset{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
		a := m.position.Add(offset)
		b := m.position.Sub(offset)
		p := a
		if totalDist(b, placed) > totalDist(a, placed) {
			p = b
		}
		placed = append(placed, p)
		it.SetCenter(p)
	}
}
