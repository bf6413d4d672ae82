// Package engine implements the entity/boundary/collision model shared by
// the game objects: entities own axis-aligned boundaries, and pair
// collisions watch two boundaries for the moment they start to overlap.
//
// Everything here is stepped from a single goroutine. Nothing blocks and
// nothing is locked; callers tick entities in a fixed order.
package engine

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Boundary is an axis-aligned box that follows its owning entity.
// Its rectangle is only as fresh as the last Refresh call.
type Boundary struct {
	owner  *Entity
	width  float64
	height float64
	rect   core.RectF
}

// NewBoundary creates a boundary of a fixed size for owner and computes its
// initial rectangle.
func NewBoundary(owner *Entity, width, height float64) *Boundary {
	b := &Boundary{
		owner:  owner,
		width:  width,
		height: height,
	}
	b.Refresh()
	return b
}

// Refresh recomputes the rectangle from the owner's current position.
func (b *Boundary) Refresh() {
	b.rect = core.NewRectF(b.owner.X, b.owner.Y, b.width, b.height)
}

// Owner returns the entity this boundary follows.
func (b *Boundary) Owner() *Entity {
	return b.owner
}

// Size returns the fixed width and height, free of the rounding that
// Right-Left picks up once the owner has moved.
func (b *Boundary) Size() (width, height float64) {
	return b.width, b.height
}

// Rect returns the rectangle as of the last Refresh.
func (b *Boundary) Rect() core.RectF {
	return b.rect
}

// Intersects reports whether the two boundaries overlap. Touching edges do
// not count.
func (b *Boundary) Intersects(other *Boundary) bool {
	return b.rect.Intersects(other.rect)
}

// Draw outlines the boundary on the surface. Debug only.
func (b *Boundary) Draw(s Surface) {
	if s.Screen == nil {
		return
	}
	s.Screen.DrawBox(s.Project(b.rect), core.ColorBrightMagenta)
}
