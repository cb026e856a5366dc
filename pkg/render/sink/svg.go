package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"

	"github.com/matzehuels/chartaxes/pkg/chart/axes"
	"github.com/matzehuels/chartaxes/pkg/fonts"
)

// SVGOption configures an [SVG] canvas.
type SVGOption func(*SVG)

// WithBackground fills the frame with c before anything is drawn.
func WithBackground(c color.Color) SVGOption { return func(s *SVG) { s.background = c } }

// WithStrokeWidth sets the width of separation lines and gridlines.
func WithStrokeWidth(w float64) SVGOption {
	return func(s *SVG) {
		if w > 0 {
			s.strokeWidth = w
		}
	}
}

// WithFontFamily overrides the CSS font-family of text elements.
func WithFontFamily(family string) SVGOption { return func(s *SVG) { s.fontFamily = family } }

// SVG is an [axes.Canvas] that writes SVG markup.
type SVG struct {
	buf           bytes.Buffer
	width, height float64
	background    color.Color
	strokeWidth   float64
	fontFamily    string
	closed        bool
}

// NewSVG starts an SVG document of the given pixel size.
func NewSVG(width, height float64, opts ...SVGOption) *SVG {
	s := &SVG{width: width, height: height, strokeWidth: 1, fontFamily: fonts.FontFamily}
	for _, opt := range opts {
		opt(s)
	}
	fmt.Fprintf(&s.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	if s.background != nil {
		fmt.Fprintf(&s.buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" %s/>`+"\n",
			width, height, paintAttrs("fill", s.background))
	}
	return s
}

// DrawLine implements [axes.Canvas].
func (s *SVG) DrawLine(x1, y1, x2, y2 float64, c color.Color) {
	fmt.Fprintf(&s.buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" %s stroke-width="%.2f"/>`+"\n",
		x1, y1, x2, y2, paintAttrs("stroke", c), s.strokeWidth)
}

// DrawLines implements [axes.Canvas]. All segments share one path element.
func (s *SVG) DrawLines(pts []float64, c color.Color) {
	if len(pts) < 4 {
		return
	}
	s.buf.WriteString(`  <path d="`)
	for i := 0; i+3 < len(pts); i += 4 {
		if i > 0 {
			s.buf.WriteByte(' ')
		}
		fmt.Fprintf(&s.buf, "M%.2f %.2fL%.2f %.2f", pts[i], pts[i+1], pts[i+2], pts[i+3])
	}
	fmt.Fprintf(&s.buf, `" fill="none" %s stroke-width="%.2f"/>`+"\n", paintAttrs("stroke", c), s.strokeWidth)
}

// DrawText implements [axes.Canvas].
func (s *SVG) DrawText(text string, x, y float64, style axes.TextStyle) {
	fmt.Fprintf(&s.buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.2f" %s text-anchor="%s"`,
		x, y, s.fontFamily, style.Size, paintAttrs("fill", style.Color), textAnchor(style.Align))
	if style.Rotation != 0 {
		fmt.Fprintf(&s.buf, ` transform="rotate(%g %.2f %.2f)"`, style.Rotation, x, y)
	}
	s.buf.WriteByte('>')
	xml.EscapeText(&s.buf, []byte(text))
	s.buf.WriteString("</text>\n")
}

// Bytes closes the document and returns it. Drawing after Bytes is not
// allowed.
func (s *SVG) Bytes() []byte {
	if !s.closed {
		s.buf.WriteString("</svg>\n")
		s.closed = true
	}
	return s.buf.Bytes()
}

func textAnchor(a axes.Align) string {
	switch a {
	case axes.AlignCenter:
		return "middle"
	case axes.AlignRight:
		return "end"
	default:
		return "start"
	}
}
