package sink

import (
	"encoding/json"

	"github.com/matzehuels/chartaxes/pkg/chart/axes"
	"github.com/matzehuels/chartaxes/pkg/chart/geom"
)

// Frame is everything [RenderJSON] exports about one laid-out chart.
type Frame struct {
	Width, Height   float64
	AxesRect        geom.Rect // content minus axes margins; gridlines span it
	ContentRect     geom.Rect // content minus all margins; data maps into it
	MaxViewport     geom.Viewport
	VisibleViewport geom.Viewport
	Selections      []axes.Selection
}

type jsonFrame struct {
	Width           float64      `json:"width"`
	Height          float64      `json:"height"`
	AxesRect        jsonRect     `json:"axes_rect"`
	ContentRect     jsonRect     `json:"content_rect"`
	MaxViewport     jsonViewport `json:"max_viewport"`
	VisibleViewport jsonViewport `json:"visible_viewport"`
	Axes            []jsonAxis   `json:"axes"`
}

type jsonRect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

type jsonViewport jsonRect

type jsonAxis struct {
	Slot         string     `json:"slot"`
	Align        string     `json:"align"`
	Fixed        float64    `json:"fixed"`
	NameBaseline float64    `json:"name_baseline"`
	Separation   float64    `json:"separation"`
	LabelWidth   float64    `json:"label_width"`
	Ascent       float64    `json:"ascent"`
	Descent      float64    `json:"descent"`
	Decimals     int        `json:"decimals"`
	Ticks        []jsonTick `json:"ticks"`
}

type jsonTick struct {
	Value float64 `json:"value"`
	Raw   float64 `json:"raw"`
	Label string  `json:"label"`
	// Line is the gridline segment x1, y1, x2, y2.
	Line [4]float64 `json:"line"`
}

// RenderJSON exports f as a pretty-printed JSON document.
func RenderJSON(f Frame) ([]byte, error) {
	out := jsonFrame{
		Width:           f.Width,
		Height:          f.Height,
		AxesRect:        rectOf(f.AxesRect),
		ContentRect:     rectOf(f.ContentRect),
		MaxViewport:     viewportOf(f.MaxViewport),
		VisibleViewport: viewportOf(f.VisibleViewport),
		Axes:            make([]jsonAxis, 0, len(f.Selections)),
	}
	for _, sel := range f.Selections {
		a := jsonAxis{
			Slot:         sel.Slot.String(),
			Align:        sel.Align.String(),
			Fixed:        sel.Fixed,
			NameBaseline: sel.NameBaseline,
			Separation:   sel.Separation,
			LabelWidth:   sel.LabelWidth,
			Ascent:       sel.Ascent,
			Descent:      sel.Descent,
			Decimals:     sel.Decimals,
			Ticks:        make([]jsonTick, len(sel.Raw)),
		}
		for i := range sel.Raw {
			t := jsonTick{Value: sel.Values[i], Raw: sel.Raw[i], Label: sel.Labels[i]}
			copy(t.Line[:], sel.Lines[4*i:4*i+4])
			a.Ticks[i] = t
		}
		out.Axes = append(out.Axes, a)
	}
	return json.MarshalIndent(out, "", "  ")
}

func rectOf(r geom.Rect) jsonRect {
	return jsonRect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

func viewportOf(v geom.Viewport) jsonViewport {
	return jsonViewport{Left: v.Left, Top: v.Top, Right: v.Right, Bottom: v.Bottom}
}
