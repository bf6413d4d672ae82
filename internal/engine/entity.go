package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Actor is a live game object driven by the game loop.
type Actor interface {
	// Tick advances the actor by one simulation step. It must not block.
	Tick()

	// Render draws the actor. It must not change simulation state.
	Render(s Surface)

	// Base returns the embedded entity.
	Base() *Entity
}

// Entity holds the state every game object shares: identity, position,
// size, boundaries, collisions and the most recent collision.
//
// Concrete objects embed *Entity, add their boundaries and collisions once
// in their constructor, and follow the tick order boundaries -> collisions
// -> own motion.
type Entity struct {
	ID     uuid.UUID
	Label  string
	X, Y   float64 // Top-left corner, y grows downward
	Width  float64
	Height float64

	boundaries    []*Boundary
	collisions    []*PairCollision
	lastCollision *PairCollision
	lastEvent     *Event
}

// NewEntity creates an entity with a fresh random id at the origin.
func NewEntity(label string, width, height float64) *Entity {
	return &Entity{
		ID:     uuid.New(),
		Label:  label,
		Width:  width,
		Height: height,
	}
}

// Base returns the entity itself, so that embedding types satisfy Actor.
func (e *Entity) Base() *Entity {
	return e
}

// AddBoundary attaches a new boundary of the given size.
func (e *Entity) AddBoundary(width, height float64) *Boundary {
	b := NewBoundary(e, width, height)
	e.boundaries = append(e.boundaries, b)
	return b
}

// AddCollision attaches a pair collision between one of this entity's
// boundaries and another boundary.
func (e *Entity) AddCollision(self, other *Boundary, react Reaction) *PairCollision {
	c := NewPairCollision(self, other, react)
	e.collisions = append(e.collisions, c)
	return c
}

// Boundaries returns the entity's boundaries in the order they were added.
func (e *Entity) Boundaries() []*Boundary {
	return e.boundaries
}

// Collisions returns the entity's pair collisions in the order they were added.
func (e *Entity) Collisions() []*PairCollision {
	return e.collisions
}

// LastCollision returns the pair that most recently fired for this entity,
// or nil if none has.
func (e *Entity) LastCollision() *PairCollision {
	return e.lastCollision
}

// LastEvent returns the most recent collision event, or nil if none has
// happened.
func (e *Entity) LastEvent() *Event {
	return e.lastEvent
}

func (e *Entity) record(c *PairCollision, ev Event) {
	e.lastCollision = c
	e.lastEvent = &ev
}

// RefreshBoundaries moves every boundary to the current position.
func (e *Entity) RefreshBoundaries() {
	for _, b := range e.boundaries {
		b.Refresh()
	}
}

// TickCollisions evaluates every pair collision in order.
func (e *Entity) TickCollisions() {
	for _, c := range e.collisions {
		c.Tick()
	}
}

// Tick runs the shared part of a step: boundaries, then collisions.
func (e *Entity) Tick() {
	e.RefreshBoundaries()
	e.TickCollisions()
}

// Bounds returns the entity's own box at its current position.
func (e *Entity) Bounds() core.RectF {
	return core.NewRectF(e.X, e.Y, e.Width, e.Height)
}

// CenterX returns the horizontal center of the entity.
func (e *Entity) CenterX() float64 {
	return e.X + e.Width/2
}

// String returns the name tag text, e.g. "Ball#1b4e28ba".
func (e *Entity) String() string {
	id := e.ID.String()
	return fmt.Sprintf("%s#%s", e.Label, id[:8])
}

// DrawDebug outlines every boundary and draws a name tag centered above
// the entity. It does nothing unless the surface has debug enabled.
func (e *Entity) DrawDebug(s Surface) {
	if !s.Debug || s.Screen == nil {
		return
	}

	for _, b := range e.boundaries {
		b.Draw(s)
	}

	tag := " " + e.String() + " "
	box := s.Project(e.Bounds())
	cx, _ := box.Center()
	x := cx - len([]rune(tag))/2
	y := box.Y - 1
	if y < 0 {
		y = box.Bottom()
	}
	s.Screen.DrawTextColor(x, y, tag, core.ColorYellow)
}
