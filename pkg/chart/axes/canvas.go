package axes

import (
	"image/color"

	"github.com/matzehuels/chartaxes/pkg/chart/geom"
)

// Computator is the chart geometry the renderer reads and insets.
// *computator.Computator implements it.
type Computator interface {
	InsetContentRectWithAxesMargins(left, top, right, bottom float64)
	ContentRectMinusAxesMargins() geom.Rect
	ContentRectMinusAllMargins() geom.Rect
	MaximumViewport() geom.Viewport
	VisibleViewport() geom.Viewport
	ComputeRawX(x float64) float64
	ComputeRawY(y float64) float64
}

// TextMeasurer reports text metrics in pixels for a text size in pixels.
// Ascent and descent are both positive distances from the baseline.
type TextMeasurer interface {
	Metrics(size float64) (ascent, descent float64)
	MeasureText(size float64, text string) float64
}

// Align is the horizontal anchoring of text relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "unknown"
}

// TextStyle describes how one piece of text is drawn.
type TextStyle struct {
	Size  float64 // pixels
	Color color.Color
	Align Align
	// Rotation in degrees around the anchor point; negative turns
	// counter-clockwise on screen, so -90 reads bottom to top.
	Rotation float64
}

// Canvas is the drawing surface. Coordinates are pixels with Y growing down.
type Canvas interface {
	DrawLine(x1, y1, x2, y2 float64, c color.Color)
	// DrawLines draws one segment per four consecutive values
	// (x1, y1, x2, y2) of pts.
	DrawLines(pts []float64, c color.Color)
	// DrawText draws text with its baseline at y, anchored at x per style.Align.
	DrawText(text string, x, y float64, style TextStyle)
}
