package engine

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Surface is the drawing target handed to Render. It maps world
// coordinates onto screen cells.
type Surface struct {
	Screen *core.Screen

	// Cells per world unit on each axis.
	ScaleX, ScaleY float64

	// Cell position of the world origin.
	OffsetX, OffsetY int

	// Debug turns on boundary outlines and name tags. It is owned by the
	// platform and has no effect on simulation.
	Debug bool
}

// NewSurface fits a world of worldW x worldH into the given cell area.
func NewSurface(screen *core.Screen, area core.Rect, worldW, worldH float64, debug bool) Surface {
	s := Surface{
		Screen:  screen,
		OffsetX: area.X,
		OffsetY: area.Y,
		Debug:   debug,
	}
	if worldW > 0 {
		s.ScaleX = float64(area.W) / worldW
	}
	if worldH > 0 {
		s.ScaleY = float64(area.H) / worldH
	}
	return s
}

// Project converts a world rectangle to screen cells.
func (s Surface) Project(r core.RectF) core.Rect {
	cells := r.ToCells(s.ScaleX, s.ScaleY)
	cells.X += s.OffsetX
	cells.Y += s.OffsetY
	return cells
}
