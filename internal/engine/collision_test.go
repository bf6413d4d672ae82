package engine

import (
	"testing"
)

// pair builds two 10x10 entities with one boundary each and a collision
// owned by the first that counts reactions.
func pair(t *testing.T) (a, b *Entity, c *PairCollision, fired *int) {
	t.Helper()

	a = NewEntity("A", 10, 10)
	b = NewEntity("B", 10, 10)
	b.X = 100
	ba := a.AddBoundary(10, 10)
	bb := b.AddBoundary(10, 10)

	count := 0
	c = a.AddCollision(ba, bb, func(Event) { count++ })
	return a, b, c, &count
}

func step(a, b *Entity) {
	b.Tick()
	a.Tick()
}

func TestPairCollisionFiresOncePerEpisode(t *testing.T) {
	a, b, c, fired := pair(t)

	// Overlap for 10 consecutive ticks.
	b.X = 5
	for i := 0; i < 10; i++ {
		step(a, b)
		if !c.Active() {
			t.Fatalf("tick %d: collision should be active while overlapping", i)
		}
	}
	if *fired != 1 {
		t.Errorf("reaction fired %d times over one episode, expected 1", *fired)
	}

	// Separate, then overlap again.
	b.X = 50
	step(a, b)
	if c.Active() {
		t.Error("collision should be idle after separating")
	}
	if *fired != 1 {
		t.Errorf("separating should not fire, got %d", *fired)
	}

	b.X = 9
	step(a, b)
	step(a, b)
	if *fired != 2 {
		t.Errorf("reaction fired %d times over two episodes, expected 2", *fired)
	}
	if c.Episodes() != 2 {
		t.Errorf("Episodes() = %d, expected 2", c.Episodes())
	}
}

func TestPairCollisionTouchingIsNotOverlap(t *testing.T) {
	a, b, c, fired := pair(t)

	b.X = 10 // shares the right edge of a
	step(a, b)
	if c.Active() || *fired != 0 {
		t.Errorf("touching edges should not collide (active=%v fired=%d)", c.Active(), *fired)
	}
}

func TestPairCollisionUsesRefreshedBoundaries(t *testing.T) {
	a, b, c, fired := pair(t)

	// Moving b without refreshing its boundary keeps the stale rectangle.
	b.X = 5
	a.Tick()
	if *fired != 0 {
		t.Fatal("collision should see the stale boundary until b ticks")
	}

	step(a, b)
	if *fired != 1 || !c.Active() {
		t.Errorf("after b refreshes the collision should fire (fired=%d)", *fired)
	}
}

func TestPairCollisionEvent(t *testing.T) {
	a := NewEntity("Ball", 10, 10)
	b := NewEntity("Paddle", 40, 10)
	a.X, a.Y = 30, 5
	b.X, b.Y = 0, 10
	ba := a.AddBoundary(10, 10)
	bb := b.AddBoundary(40, 10)

	var got Event
	c := a.AddCollision(ba, bb, func(ev Event) { got = ev })

	if a.LastEvent() != nil || a.LastCollision() != nil {
		t.Fatal("last event should be nil before any collision")
	}

	step(a, b)

	if got.Self != a || got.Other != b {
		t.Errorf("event order = (%s, %s), expected (Ball, Paddle)", got.Self.Label, got.Other.Label)
	}
	if got.Collision != c {
		t.Error("event should reference the firing collision")
	}
	if got.Overlap.Left != 30 || got.Overlap.Right != 40 || got.Overlap.Top != 10 || got.Overlap.Bottom != 15 {
		t.Errorf("Overlap = %+v, expected {30 10 40 15}", got.Overlap)
	}

	for _, e := range []*Entity{a, b} {
		if e.LastCollision() != c {
			t.Errorf("%s.LastCollision() should be the firing pair", e.Label)
		}
		if e.LastEvent() == nil || e.LastEvent().Self != a {
			t.Errorf("%s.LastEvent() should be recorded", e.Label)
		}
	}
}

func TestPairCollisionDisarm(t *testing.T) {
	a, b, c, fired := pair(t)

	b.X = 5
	step(a, b)
	c.Disarm()
	step(a, b)

	if *fired != 2 {
		t.Errorf("disarmed collision should fire again on overlap, fired=%d", *fired)
	}
}

func TestPairCollisionNilReaction(t *testing.T) {
	a := NewEntity("A", 4, 4)
	b := NewEntity("B", 4, 4)
	c := a.AddCollision(a.AddBoundary(4, 4), b.AddBoundary(4, 4), nil)

	step(a, b)
	if !c.Active() || c.Episodes() != 1 {
		t.Error("a collision without a reaction should still track state")
	}
}
