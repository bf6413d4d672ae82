package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// DeflectionParams holds the constants of the angle-to-delta conversion.
type DeflectionParams struct {
	Velocity    float64 // Target |h|+|v|
	BucketScale float64 // Multiplier in the sloped buckets
	Refraction  float64 // Degrees added to the impact angle
	Tolerance   float64 // Relative error allowed before correcting
	SpeedScale  float64 // Applied to the corrected deltas
}

// ParamsFromConfig extracts the deflection constants from the ball config.
func ParamsFromConfig(cfg config.BallConfig) DeflectionParams {
	return DeflectionParams{
		Velocity:    cfg.ApparentVelocity,
		BucketScale: cfg.BucketScale,
		Refraction:  cfg.Refraction,
		Tolerance:   cfg.MOETolerance,
		SpeedScale:  cfg.SpeedScale,
	}
}

// Deflection is the result of converting an angle to per-tick deltas.
// Horizontal and Vertical are corrected but not yet speed-scaled.
type Deflection struct {
	Angle      float64
	Horizontal float64
	Vertical   float64

	// Bucket output before correction.
	RawHorizontal float64
	RawVertical   float64

	// MOE before and after correction. They are equal when no correction
	// was needed.
	MOE       float64
	FinalMOE  float64
	Corrected bool

	SpeedScale float64
}

// Scaled returns the deltas the ball moves by.
func (d Deflection) Scaled() (h, v float64) {
	return d.Horizontal * d.SpeedScale, d.Vertical * d.SpeedScale
}

// ImpactAngle maps the ball's center on the paddle to a deflection angle.
// The left half sweeps up from refraction, the right half down from
// 180 - refraction.
func ImpactAngle(ballCenterX, paddleLeft, paddleWidth, refraction float64) float64 {
	half := paddleWidth / 2
	center := paddleLeft + half

	if ballCenterX < center {
		return 90*(ballCenterX-paddleLeft)/half + refraction
	}
	return 180 - (90*(ballCenterX-center)/half + refraction)
}

// Deflect converts an angle in degrees to horizontal and vertical deltas.
// It returns false for angles outside [0, 180]; the caller keeps its
// previous deltas.
func Deflect(angle float64, p DeflectionParams) (Deflection, bool) {
	if math.IsNaN(angle) || angle < 0 || angle > 180 {
		return Deflection{Angle: angle}, false
	}

	v0 := p.Velocity
	var h, v float64

	switch {
	case angle == 45:
		h = v0 / 2
		v = h
	case angle < 90:
		v = angle / 90 * p.BucketScale
		h = v0 - v
	case angle == 90:
		h = 0
		v = v0
	case angle == 135:
		h = v0 / -2
		v = math.Abs(h)
	case angle < 180:
		h = (angle - 90) / -90 * p.BucketScale
		v = v0 - math.Abs(h)
	default:
		h = -v0
		v = 0
	}

	d := Deflection{
		Angle:         angle,
		RawHorizontal: h,
		RawVertical:   v,
		SpeedScale:    p.SpeedScale,
	}
	d.MOE = marginOfError(h, v, v0)

	if math.Abs(d.MOE) > p.Tolerance {
		correction := v0 * d.MOE / 2
		h = shrink(h, correction)
		v = shrink(v, correction)
		d.Corrected = true
	}

	d.Horizontal = h
	d.Vertical = v
	d.FinalMOE = marginOfError(h, v, v0)
	return d, true
}

// marginOfError is the relative deviation of |h|+|v| from the target.
func marginOfError(h, v, target float64) float64 {
	return (math.Abs(h) + math.Abs(v) - target) / target
}

// shrink removes amount from the magnitude of x, keeping its sign and
// never crossing zero.
func shrink(x, amount float64) float64 {
	return math.Copysign(math.Max(math.Abs(x)-amount, 0), x)
}
