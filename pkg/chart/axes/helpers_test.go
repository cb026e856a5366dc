package axes

import (
	"image/color"

	"github.com/matzehuels/chartaxes/pkg/chart/axis"
	"github.com/matzehuels/chartaxes/pkg/chart/computator"
	"github.com/matzehuels/chartaxes/pkg/chart/geom"
)

// fixedMeasurer reports 10px ascent, 3px descent and 10px per character at
// every size.
type fixedMeasurer struct{}

func (fixedMeasurer) Metrics(float64) (float64, float64)         { return 10, 3 }
func (fixedMeasurer) MeasureText(_ float64, text string) float64 { return 10 * float64(len(text)) }

type lineCall struct {
	x1, y1, x2, y2 float64
	c              color.Color
}

type textCall struct {
	text  string
	x, y  float64
	style TextStyle
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	lines   []lineCall
	batches [][]float64
	texts   []textCall
}

func (r *recorder) DrawLine(x1, y1, x2, y2 float64, c color.Color) {
	r.lines = append(r.lines, lineCall{x1, y1, x2, y2, c})
}

func (r *recorder) DrawLines(pts []float64, c color.Color) {
	r.batches = append(r.batches, append([]float64(nil), pts...))
}

func (r *recorder) DrawText(text string, x, y float64, style TextStyle) {
	r.texts = append(r.texts, textCall{text, x, y, style})
}

// newChart returns a computator of the given size with no padding and the
// given maximum and visible viewports.
func newChart(width, height float64, max, visible geom.Viewport) *computator.Computator {
	c := computator.New()
	c.SetContentRect(width, height, 0, 0, 0, 0)
	c.SetMaxViewport(max)
	c.SetCurrentViewport(visible)
	return c
}

func vp(left, right, bottom, top float64) geom.Viewport {
	return geom.Viewport{Left: left, Top: top, Right: right, Bottom: bottom}
}

func explicit(values ...float64) *axis.Axis {
	return axis.FromValues(values, nil)
}

func sequence(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
