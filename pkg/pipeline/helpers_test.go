package pipeline

import (
	"image/color"

	"github.com/matzehuels/chartaxes/pkg/chart/axes"
)

type recorder struct {
	lines int
	texts []string
}

func (r *recorder) DrawLine(_, _, _, _ float64, _ color.Color) { r.lines++ }
func (r *recorder) DrawLines(pts []float64, _ color.Color)     { r.lines += len(pts) / 4 }
func (r *recorder) DrawText(text string, _, _ float64, _ axes.TextStyle) {
	r.texts = append(r.texts, text)
}
