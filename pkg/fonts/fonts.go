// Package fonts provides the embedded Go Regular typeface and text metrics
// derived from it.
//
// The font is compiled into the binary (golang.org/x/image/font/gofont), so
// label measurement and PNG rasterization work without system fonts. SVG
// output names [FontFamily] and lets the viewer pick a matching face.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontFamily is the CSS font-family used for SVG text.
const FontFamily = "'Go', 'Helvetica Neue', Arial, sans-serif"

// Parsed once on first access.
var (
	regular     *sfnt.Font
	regularErr  error
	regularOnce sync.Once
)

// Regular returns the parsed Go Regular font.
func Regular() (*sfnt.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = opentype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Measurer measures text set in Go Regular. Faces are created per pixel size
// and cached. A Measurer is safe for concurrent use.
type Measurer struct {
	mu    sync.Mutex
	font  *sfnt.Font
	faces map[float64]font.Face
}

// NewMeasurer returns a Measurer backed by the embedded font.
func NewMeasurer() (*Measurer, error) {
	f, err := Regular()
	if err != nil {
		return nil, err
	}
	return &Measurer{font: f, faces: make(map[float64]font.Face)}, nil
}

// Face returns the face for a pixel size. Faces are not safe for concurrent
// use; callers drawing from several goroutines need their own Measurer.
func (m *Measurer) Face(size float64) (font.Face, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.face(size)
}

func (m *Measurer) face(size float64) (font.Face, error) {
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // one point per pixel
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m.faces[size] = f
	return f, nil
}

// Metrics returns the ascent and descent in pixels of text at size. It
// returns zeros when no face can be built for size.
func (m *Measurer) Metrics(size float64) (ascent, descent float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, err := m.face(size)
	if err != nil {
		return 0, 0
	}
	met := f.Metrics()
	return toFloat(met.Ascent), toFloat(met.Descent)
}

// MeasureText returns the advance width in pixels of text at size.
func (m *Measurer) MeasureText(size float64, text string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, err := m.face(size)
	if err != nil {
		return 0
	}
	return toFloat(font.MeasureString(f, text))
}

// Close releases every cached face.
func (m *Measurer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for size, f := range m.faces {
		f.Close()
		delete(m.faces, size)
	}
	return nil
}

func toFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
