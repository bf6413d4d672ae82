package breakout

// Autopilot steers a paddle under the ball. It aims a different part of
// the paddle at the ball after every return so that the demo sweeps the
// whole deflection range.
type Autopilot struct {
	rng  *SimpleRNG
	aim  float64 // Fraction of the paddle width under the ball center
	seen int     // Deflection count the aim was picked for
}

// NewAutopilot creates an autopilot with a deterministic aim sequence.
func NewAutopilot(seed int64) *Autopilot {
	a := &Autopilot{rng: NewSimpleRNG(seed)}
	a.pick()
	return a
}

func (a *Autopilot) pick() {
	a.aim = 0.1 + 0.8*a.rng.Float64()
}

// Steer queues paddle movement toward the ball. Call once per tick before
// the paddle ticks.
func (a *Autopilot) Steer(p *Paddle, b *Ball) {
	if _, n := b.LastDeflection(); n != a.seen {
		a.seen = n
		a.pick()
	}
	p.SteerToward(b.CenterX() - a.aim*p.Width)
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
