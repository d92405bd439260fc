package graphics

import (
	"math"
	"testing"
)

func TestOffsetArithmetic(t *testing.T) {
	a := Offset{X: 3, Y: 4}
	b := Offset{X: 1, Y: 2}

	if got := a.Add(b); got != (Offset{X: 4, Y: 6}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Offset{X: 2, Y: 2}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Offset{X: 6, Y: 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Distance(Offset{}); got != 5 {
		t.Errorf("Distance = %g, want 5", got)
	}
	if got := a.DistanceSquared(Offset{}); got != 25 {
		t.Errorf("DistanceSquared = %g, want 25", got)
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	cases := []struct {
		p    Offset
		want bool
	}{
		{Offset{X: 10, Y: 20}, true},
		{Offset{X: 25, Y: 40}, true},
		{Offset{X: 39.9, Y: 59.9}, true},
		// Right and bottom edges are exclusive.
		{Offset{X: 40, Y: 30}, false},
		{Offset{X: 25, Y: 60}, false},
		{Offset{X: 9.9, Y: 30}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(Offset{X: 100, Y: 50}, Size{Width: 20, Height: 10})
	if c := r.Center(); c != (Offset{X: 100, Y: 50}) {
		t.Errorf("Center = %v", c)
	}
	if r.Width() != 20 || r.Height() != 10 {
		t.Errorf("size = %gx%g", r.Width(), r.Height())
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{math.Inf(1), 0, 10, 10},
		{math.Inf(-1), 0, 10, 0},
	}
	for _, tc := range cases {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%g, %g, %g) = %g, want %g", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}
