package sink

import (
	"github.com/matzehuels/chartaxes/pkg/render"
)

// RenderPDF closes svg and converts it to PDF.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(svg *SVG) ([]byte, error) {
	return render.ToPDF(svg.Bytes())
}
