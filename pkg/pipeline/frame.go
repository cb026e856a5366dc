package pipeline

import (
	"bytes"
	"context"
	"image/color"
	"math"
	"time"

	"github.com/matzehuels/chartaxes/pkg/chart/axes"
	"github.com/matzehuels/chartaxes/pkg/chart/computator"
	"github.com/matzehuels/chartaxes/pkg/config"
	"github.com/matzehuels/chartaxes/pkg/errors"
	"github.com/matzehuels/chartaxes/pkg/fonts"
	"github.com/matzehuels/chartaxes/pkg/observability"
	"github.com/matzehuels/chartaxes/pkg/render"
	"github.com/matzehuels/chartaxes/pkg/render/sink"
)

// frame is one laid-out chart at a fixed pixel scale.
type frame struct {
	width, height float64
	strokeWidth   float64
	background    color.Color
	comp          *computator.Computator
	axes          *axes.Renderer
	faces         *fonts.Measurer
}

// Frame is a laid-out chart returned by [Runner.Layout].
type Frame struct{ frame *frame }

// Size returns the frame size in pixels.
func (f *Frame) Size() (width, height float64) { return f.frame.width, f.frame.height }

// Computator returns the frame geometry.
func (f *Frame) Computator() *computator.Computator { return f.frame.comp }

// Axes returns the frame's axes renderer.
func (f *Frame) Axes() *axes.Renderer { return f.frame.axes }

// Draw paints the axes onto c, around series drawn by drawSeries. drawSeries
// may be nil.
func (f *Frame) Draw(c axes.Canvas, drawSeries func(axes.Canvas)) {
	f.frame.draw(c, drawSeries)
}

func (r *Runner) layout(ctx context.Context, chart *config.Chart, m *fonts.Measurer, scale float64) (*frame, error) {
	set, err := chart.AxisSet()
	if err != nil {
		return nil, err
	}
	bg, err := chart.BackgroundColor()
	if err != nil {
		return nil, err
	}

	density := chart.Density * scale
	comp := chart.Computator(scale)
	renderer := axes.New(comp, set, m,
		axes.WithDensity(density),
		axes.WithScaledDensity(chart.ScaledDensity*scale),
		axes.WithLogger(r.Logger))

	slots := 0
	for _, s := range axes.Slots {
		if set.Axis(s) != nil {
			slots++
		}
	}
	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, slots)
	renderer.Layout()
	observability.Pipeline().OnLayoutComplete(ctx, slots, time.Since(start))

	w, h := comp.ChartSize()
	r.Logger.Debug("laid out chart",
		"scale", scale,
		"size", [2]float64{w, h},
		"content", comp.ContentRectMinusAxesMargins())

	return &frame{
		width:       w,
		height:      h,
		strokeWidth: math.Max(1, math.Round(density)),
		background:  bg,
		comp:        comp,
		axes:        renderer,
		faces:       m,
	}, nil
}

func (f *frame) draw(c axes.Canvas, drawSeries func(axes.Canvas)) {
	f.axes.DrawInBackground(c)
	if drawSeries != nil {
		drawSeries(c)
	}
	f.axes.DrawInForeground(c)
}

func (r *Runner) render(ctx context.Context, f *frame, format string) (data []byte, err error) {
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, format)
	defer func() {
		observability.Pipeline().OnRenderComplete(ctx, format, len(data), time.Since(start), err)
	}()

	switch format {
	case FormatSVG:
		return f.svg().Bytes(), nil
	case FormatPDF:
		return render.ToPDFContext(ctx, f.svg().Bytes())
	case FormatPNG:
		return f.png()
	case FormatJSON:
		return f.json()
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
}

func (f *frame) svg() *sink.SVG {
	c := sink.NewSVG(f.width, f.height,
		sink.WithBackground(f.background),
		sink.WithStrokeWidth(f.strokeWidth))
	f.draw(c, nil)
	return c
}

func (f *frame) png() ([]byte, error) {
	c := sink.NewPNG(f.width, f.height, f.faces,
		sink.WithPNGBackground(f.background),
		sink.WithPNGStrokeWidth(f.strokeWidth))
	f.draw(c, nil)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (f *frame) json() ([]byte, error) {
	f.axes.Prepare()
	out := sink.Frame{
		Width:           f.width,
		Height:          f.height,
		AxesRect:        f.comp.ContentRectMinusAxesMargins(),
		ContentRect:     f.comp.ContentRectMinusAllMargins(),
		MaxViewport:     f.comp.MaximumViewport(),
		VisibleViewport: f.comp.VisibleViewport(),
	}
	for _, s := range axes.Slots {
		if sel, ok := f.axes.Selection(s); ok {
			out.Selections = append(out.Selections, sel)
		}
	}
	data, err := sink.RenderJSON(out)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return data, nil
}
