// Package core provides fundamental types and utilities for the breakout
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep simulation logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectF is an axis-aligned box in world coordinates.
// The origin is top-left and y grows downward.
type RectF struct {
	Left, Top, Right, Bottom float64
}

// NewRectF creates a world rectangle from a top-left corner and a size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent.
func (r RectF) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r RectF) Height() float64 {
	return r.Bottom - r.Top
}

// CenterX returns the horizontal center.
func (r RectF) CenterX() float64 {
	return r.Left + r.Width()/2
}

// Intersects reports whether the two boxes overlap.
// Shared edges do not count: every side comparison is strict.
func (r RectF) Intersects(other RectF) bool {
	return r.Left < other.Right && other.Left < r.Right &&
		r.Top < other.Bottom && other.Top < r.Bottom
}

// Intersection returns the overlapping region and whether one exists.
func (r RectF) Intersection(other RectF) (RectF, bool) {
	if !r.Intersects(other) {
		return RectF{}, false
	}
	return RectF{
		Left:   math.Max(r.Left, other.Left),
		Top:    math.Max(r.Top, other.Top),
		Right:  math.Min(r.Right, other.Right),
		Bottom: math.Min(r.Bottom, other.Bottom),
	}, true
}

// ToCells projects the box onto a cell grid. Every box covers at least one cell.
func (r RectF) ToCells(scaleX, scaleY float64) Rect {
	x := int(math.Floor(r.Left * scaleX))
	y := int(math.Floor(r.Top * scaleY))
	right := int(math.Ceil(r.Right * scaleX))
	bottom := int(math.Ceil(r.Bottom * scaleY))
	return NewRect(x, y, max(right-x, 1), max(bottom-y, 1))
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return min(max(val, lo), hi)
}
