package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in screen pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Scale returns the offset with both components multiplied by f.
func (o Offset) Scale(f float64) Offset {
	return Offset{X: o.X * f, Y: o.Y * f}
}

// Distance returns the Euclidean distance to another offset.
func (o Offset) Distance(other Offset) float64 {
	dx := other.X - o.X
	dy := other.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared returns the squared Euclidean distance to another offset.
// Useful for comparisons that do not need the actual distance.
func (o Offset) DistanceSquared(other Offset) float64 {
	dx := other.X - o.X
	dy := other.Y - o.Y
	return dx*dx + dy*dy
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromCenter constructs a Rect of the given size centered on center.
func RectFromCenter(center Offset, size Size) Rect {
	return RectFromLTWH(center.X-size.Width/2, center.Y-size.Height/2,
		size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Contains reports whether the point lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(o Offset) Rect {
	return Rect{
		Left:   r.Left + o.X,
		Top:    r.Top + o.Y,
		Right:  r.Right + o.X,
		Bottom: r.Bottom + o.Y,
	}
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// floatEqual reports whether two floats are equal within epsilon.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}
