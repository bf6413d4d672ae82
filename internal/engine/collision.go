package engine

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Event describes the tick on which two boundaries started overlapping.
type Event struct {
	// Collision is the pair that fired.
	Collision *PairCollision

	// Self owns the first boundary of the pair, Other the second.
	Self  *Entity
	Other *Entity

	// Overlap is the intersection of the two boundaries on that tick.
	Overlap core.RectF
}

// Reaction runs when a pair collision starts.
type Reaction func(ev Event)

// PairCollision watches two boundaries and runs its reaction once per
// overlap episode.
//
// It is a two-state machine. IDLE->ACTIVE fires the reaction, ACTIVE->IDLE
// re-arms it silently, and staying in either state does nothing.
type PairCollision struct {
	first    *Boundary
	second   *Boundary
	react    Reaction
	active   bool
	episodes int
}

// NewPairCollision creates an idle collision between first and second.
// The reaction receives first's owner as Self and second's owner as Other.
func NewPairCollision(first, second *Boundary, react Reaction) *PairCollision {
	return &PairCollision{
		first:  first,
		second: second,
		react:  react,
	}
}

// Tick re-evaluates the overlap. Both boundaries must already have been
// refreshed this tick; the collision does not refresh them.
func (c *PairCollision) Tick() {
	overlap, ok := c.first.rect.Intersection(c.second.rect)
	if !ok {
		c.active = false
		return
	}
	if c.active {
		return
	}

	c.active = true
	c.episodes++

	ev := Event{
		Collision: c,
		Self:      c.first.owner,
		Other:     c.second.owner,
		Overlap:   overlap,
	}
	c.first.owner.record(c, ev)
	if c.second.owner != c.first.owner {
		c.second.owner.record(c, ev)
	}

	if c.react != nil {
		c.react(ev)
	}
}

// Active reports whether the boundaries overlapped on the last tick.
func (c *PairCollision) Active() bool {
	return c.active
}

// Episodes returns how many times the reaction has fired.
func (c *PairCollision) Episodes() int {
	return c.episodes
}

// Boundaries returns the pair in construction order.
func (c *PairCollision) Boundaries() (first, second *Boundary) {
	return c.first, c.second
}

// Disarm forces the collision back to IDLE, so an overlap on the next tick
// counts as a new episode.
func (c *PairCollision) Disarm() {
	c.active = false
}
