package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func defaultParams() DeflectionParams {
	return ParamsFromConfig(config.DefaultBreakoutConfig().Ball)
}

func TestDeflectBuckets(t *testing.T) {
	p := defaultParams()
	v := p.Velocity

	tests := []struct {
		angle float64
		h, v  float64
	}{
		{0, v, 0},
		{30, v - 30.0/90*v, 30.0 / 90 * v},
		{45, v / 2, v / 2},
		{90, 0, v},
		{120, -30.0 / 90 * v, v - 30.0/90*v},
		{135, -v / 2, v / 2},
		{180, -v, 0},
	}

	for _, tt := range tests {
		d, ok := Deflect(tt.angle, p)
		if !ok {
			t.Errorf("Deflect(%v) rejected an in-range angle", tt.angle)
			continue
		}
		if !approx(d.Horizontal, tt.h) || !approx(d.Vertical, tt.v) {
			t.Errorf("Deflect(%v) = (%v, %v), expected (%v, %v)",
				tt.angle, d.Horizontal, d.Vertical, tt.h, tt.v)
		}
	}
}

func TestDeflectStraightUp(t *testing.T) {
	p := defaultParams()

	d, ok := Deflect(90, p)
	if !ok {
		t.Fatal("Deflect(90) rejected")
	}
	if d.Horizontal != 0 || d.Vertical != p.Velocity {
		t.Errorf("Deflect(90) = (%v, %v), expected (0, %v)", d.Horizontal, d.Vertical, p.Velocity)
	}

	h, v := d.Scaled()
	if h != 0 || !approx(v, p.Velocity*p.SpeedScale) {
		t.Errorf("Scaled() = (%v, %v), expected (0, %v)", h, v, p.Velocity*p.SpeedScale)
	}
}

func TestDeflectSymmetry(t *testing.T) {
	p := defaultParams()

	for a := 0.0; a <= 90; a += 0.5 {
		left, ok1 := Deflect(a, p)
		right, ok2 := Deflect(180-a, p)
		if !ok1 || !ok2 {
			t.Fatalf("Deflect(%v) or Deflect(%v) rejected", a, 180-a)
		}

		if !approx(left.Vertical, right.Vertical) {
			t.Errorf("vertical(%v) = %v, vertical(%v) = %v, expected equal",
				a, left.Vertical, 180-a, right.Vertical)
		}
		if !approx(left.Horizontal, -right.Horizontal) {
			t.Errorf("horizontal(%v) = %v, horizontal(%v) = %v, expected opposite",
				a, left.Horizontal, 180-a, right.Horizontal)
		}
	}
}

func TestDeflectOutOfRange(t *testing.T) {
	p := defaultParams()

	for _, a := range []float64{-0.001, -90, 180.5, 360, math.NaN(), math.Inf(1)} {
		if _, ok := Deflect(a, p); ok {
			t.Errorf("Deflect(%v) accepted an out-of-range angle", a)
		}
	}
}

func TestDeflectMarginOfError(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
	}{
		{"bucket scale equals velocity", 2.325},
		{"unit bucket scale", 1},
		{"steep bucket scale", 3},
		{"very steep bucket scale", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultParams()
			p.BucketScale = tt.scale

			for a := 0.0; a <= 180; a += 0.25 {
				d, ok := Deflect(a, p)
				if !ok {
					t.Fatalf("Deflect(%v) rejected", a)
				}

				sum := math.Abs(d.Horizontal) + math.Abs(d.Vertical)
				if math.Abs(sum-p.Velocity) > p.Velocity*p.Tolerance+eps {
					t.Errorf("Deflect(%v): |h|+|v| = %v, expected within 10%% of %v", a, sum, p.Velocity)
				}
				if math.Abs(d.FinalMOE) > p.Tolerance+eps {
					t.Errorf("Deflect(%v): FinalMOE = %v", a, d.FinalMOE)
				}
			}
		})
	}
}

func TestDeflectCorrection(t *testing.T) {
	p := defaultParams()
	p.BucketScale = 4

	// v = 80/90*4 overshoots the velocity, so h goes negative and the sum
	// is well past tolerance.
	d, _ := Deflect(80, p)
	if !d.Corrected {
		t.Fatalf("Deflect(80) with bucket scale 4 should be corrected, MOE = %v", d.MOE)
	}
	if d.MOE <= p.Tolerance {
		t.Errorf("MOE = %v, expected above tolerance", d.MOE)
	}
	if d.RawHorizontal >= 0 {
		t.Errorf("RawHorizontal = %v, expected negative", d.RawHorizontal)
	}
	// Correction keeps the sign and never crosses zero
	if d.Horizontal > 0 {
		t.Errorf("Horizontal = %v, expected sign preserved", d.Horizontal)
	}
	if !approx(math.Abs(d.Horizontal)+math.Abs(d.Vertical), p.Velocity) {
		t.Errorf("corrected sum = %v, expected %v", math.Abs(d.Horizontal)+math.Abs(d.Vertical), p.Velocity)
	}

	// Default parameters never need a correction
	for a := 0.0; a <= 180; a++ {
		if d, _ := Deflect(a, defaultParams()); d.Corrected {
			t.Errorf("Deflect(%v) corrected with default params, MOE = %v", a, d.MOE)
		}
	}
}

func TestImpactAngle(t *testing.T) {
	const (
		left  = 100.0
		width = 96.0
		r     = 22.5
	)

	tests := []struct {
		name     string
		centerX  float64
		expected float64
	}{
		{"left edge", left, r},
		{"left quarter", left + width/4, 45 + r},
		{"just left of center", left + width/2 - 1e-12, 90 + r},
		{"center", left + width/2, 180 - r},
		{"right quarter", left + 3*width/4, 180 - (45 + r)},
		{"right edge", left + width, 180 - (90 + r)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImpactAngle(tt.centerX, left, width, r)
			if math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("ImpactAngle(%v) = %v, expected %v", tt.centerX, got, tt.expected)
			}
		})
	}
}
