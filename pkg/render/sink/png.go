package sink

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/chartaxes/pkg/chart/axes"
)

// FaceSource supplies font faces by pixel size. *fonts.Measurer implements it.
type FaceSource interface {
	Face(size float64) (font.Face, error)
}

// PNGOption configures a [PNG] canvas.
type PNGOption func(*PNG)

// WithPNGBackground fills the image with c. The default is white.
func WithPNGBackground(c color.Color) PNGOption { return func(p *PNG) { p.background = c } }

// WithPNGStrokeWidth sets the width of separation lines and gridlines.
func WithPNGStrokeWidth(w float64) PNGOption {
	return func(p *PNG) {
		if w > 0 {
			p.strokeWidth = w
		}
	}
}

// PNG is an [axes.Canvas] that rasterizes into an RGBA image. Lay the chart
// out at the target pixel density; the canvas applies no scaling of its own.
type PNG struct {
	dc          *gg.Context
	faces       FaceSource
	background  color.Color
	strokeWidth float64
	err         error
}

// NewPNG creates a canvas of the given pixel size, rounded up.
func NewPNG(width, height float64, faces FaceSource, opts ...PNGOption) *PNG {
	p := &PNG{
		dc:          gg.NewContext(int(math.Ceil(width)), int(math.Ceil(height))),
		faces:       faces,
		background:  color.White,
		strokeWidth: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.background != nil {
		p.dc.SetColor(p.background)
		p.dc.Clear()
	}
	return p
}

// DrawLine implements [axes.Canvas].
func (p *PNG) DrawLine(x1, y1, x2, y2 float64, c color.Color) {
	p.dc.SetColor(c)
	p.dc.SetLineWidth(p.strokeWidth)
	p.dc.DrawLine(x1, y1, x2, y2)
	p.dc.Stroke()
}

// DrawLines implements [axes.Canvas]. All segments are stroked together.
func (p *PNG) DrawLines(pts []float64, c color.Color) {
	if len(pts) < 4 {
		return
	}
	p.dc.SetColor(c)
	p.dc.SetLineWidth(p.strokeWidth)
	for i := 0; i+3 < len(pts); i += 4 {
		p.dc.DrawLine(pts[i], pts[i+1], pts[i+2], pts[i+3])
	}
	p.dc.Stroke()
}

// DrawText implements [axes.Canvas]. The first face error is kept and
// reported by [PNG.Err]; later text is skipped.
func (p *PNG) DrawText(text string, x, y float64, style axes.TextStyle) {
	if p.err != nil {
		return
	}
	face, err := p.faces.Face(style.Size)
	if err != nil {
		p.err = err
		return
	}
	p.dc.SetFontFace(face)
	p.dc.SetColor(style.Color)

	ax := 0.0
	switch style.Align {
	case axes.AlignCenter:
		ax = 0.5
	case axes.AlignRight:
		ax = 1
	}
	if style.Rotation == 0 {
		p.dc.DrawStringAnchored(text, x, y, ax, 0)
		return
	}
	p.dc.Push()
	p.dc.RotateAbout(gg.Radians(style.Rotation), x, y)
	p.dc.DrawStringAnchored(text, x, y, ax, 0)
	p.dc.Pop()
}

// Err returns the first error met while drawing.
func (p *PNG) Err() error { return p.err }

// Image returns the rasterized frame.
func (p *PNG) Image() image.Image { return p.dc.Image() }

// EncodePNG writes the frame as PNG.
func (p *PNG) EncodePNG(w io.Writer) error {
	if p.err != nil {
		return p.err
	}
	return p.dc.EncodePNG(w)
}
