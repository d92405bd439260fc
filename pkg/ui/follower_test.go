package ui_test

import (
	"math"
	"testing"

	"github.com/ranveeraggarwal/dipy/pkg/graphics"
	"github.com/ranveeraggarwal/dipy/pkg/ui"
	"github.com/ranveeraggarwal/dipy/pkg/uitest"
)

func TestFollowerMenuPlacesItemsOnOrbit(t *testing.T) {
	f := &uitest.FakeFactory{}
	center := graphics.Offset{X: 200, Y: 200}
	items := []ui.Widget{
		newIconButton(t, f, "a"),
		newIconButton(t, f, "b"),
		newIconButton(t, f, "c"),
		newIconButton(t, f, "d"),
	}
	m, err := ui.NewFollowerMenu(f, center, 100, items)
	if err != nil {
		t.Fatalf("NewFollowerMenu: %v", err)
	}

	seen := make(map[graphics.Offset]bool)
	for _, it := range m.Items() {
		p := it.(*ui.Button).Center()
		if d := p.Distance(center); math.Abs(d-50) > 1e-9 {
			t.Errorf("item at %v: distance %g from center, want 50", p, d)
		}
		if seen[p] {
			t.Errorf("two items share position %v", p)
		}
		seen[p] = true
	}
}

func TestFollowerMenuSetCenterRearranges(t *testing.T) {
	f := &uitest.FakeFactory{}
	items := []ui.Widget{newIconButton(t, f, "a"), newIconButton(t, f, "b")}
	m, err := ui.NewFollowerMenu(f, graphics.Offset{X: 200, Y: 200}, 100, items)
	if err != nil {
		t.Fatalf("NewFollowerMenu: %v", err)
	}

	next := graphics.Offset{X: 500, Y: 100}
	m.SetCenter(next)
	for _, it := range m.Items() {
		p := it.(*ui.Button).Center()
		if d := p.Distance(next); math.Abs(d-50) > 1e-9 {
			t.Errorf("item at %v: distance %g from new center, want 50", p, d)
		}
	}
}

func TestFollowerMenuValidation(t *testing.T) {
	f := &uitest.FakeFactory{}
	if _, err := ui.NewFollowerMenu(f, graphics.Offset{}, 0, []ui.Widget{newIconButton(t, f, "a")}); err == nil {
		t.Error("zero diameter accepted")
	}
	if _, err := ui.NewFollowerMenu(f, graphics.Offset{}, 100, nil); err == nil {
		t.Error("empty item list accepted")
	}
}
