package sink

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/chartaxes/pkg/chart/axes"
	"github.com/matzehuels/chartaxes/pkg/chart/geom"
)

func TestRenderJSON(t *testing.T) {
	f := Frame{
		Width:           300,
		Height:          200,
		AxesRect:        geom.Rect{Left: 32, Top: 0, Right: 300, Bottom: 185},
		ContentRect:     geom.Rect{Left: 32, Top: 0, Right: 300, Bottom: 185},
		MaxViewport:     geom.Viewport{Left: 0, Top: 10, Right: 100, Bottom: 0},
		VisibleViewport: geom.Viewport{Left: 0, Top: 10, Right: 50, Bottom: 0},
		Selections: []axes.Selection{{
			Slot:   axes.Bottom,
			Align:  axes.AlignCenter,
			Fixed:  197,
			Raw:    []float64{32, 300},
			Values: []float64{0, 50},
			Labels: []string{"0", "50"},
			Lines:  []float64{32, 0, 32, 185, 300, 0, 300, 185},
		}},
	}

	data, err := RenderJSON(f)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var got jsonFrame
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.VisibleViewport.Right != 50 || got.AxesRect.Left != 32 {
		t.Errorf("frame geometry lost: %+v", got)
	}
	if len(got.Axes) != 1 {
		t.Fatalf("got %d axes, want 1", len(got.Axes))
	}
	a := got.Axes[0]
	if a.Slot != "bottom" || a.Align != "center" || a.Fixed != 197 {
		t.Errorf("axis = %+v", a)
	}
	if len(a.Ticks) != 2 {
		t.Fatalf("got %d ticks, want 2", len(a.Ticks))
	}
	if tk := a.Ticks[1]; tk.Label != "50" || tk.Raw != 300 || tk.Line != [4]float64{300, 0, 300, 185} {
		t.Errorf("tick = %+v", tk)
	}
}

func TestRenderJSONNoAxes(t *testing.T) {
	data, err := RenderJSON(Frame{Width: 10, Height: 10})
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if list, ok := got["axes"].([]any); !ok || len(list) != 0 {
		t.Errorf("axes = %v, want empty list", got["axes"])
	}
}
