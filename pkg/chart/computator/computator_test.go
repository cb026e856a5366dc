package computator

import (
	"testing"

	"github.com/matzehuels/chartaxes/pkg/chart/geom"
)

func newTestComputator() *Computator {
	c := New()
	c.SetContentRect(400, 300, 10, 20, 30, 40)
	c.SetMaxViewport(geom.Viewport{Left: 0, Top: 100, Right: 100, Bottom: 0})
	c.SetCurrentViewport(geom.Viewport{Left: 0, Top: 100, Right: 100, Bottom: 0})
	return c
}

func TestSetContentRect(t *testing.T) {
	c := newTestComputator()
	want := geom.Rect{Left: 10, Top: 20, Right: 370, Bottom: 260}
	if got := c.ContentRectMinusAxesMargins(); got != want {
		t.Errorf("ContentRectMinusAxesMargins() = %+v, want %+v", got, want)
	}
	if got := c.ContentRectMinusAllMargins(); got != want {
		t.Errorf("ContentRectMinusAllMargins() = %+v, want %+v", got, want)
	}
	if w, h := c.ChartSize(); w != 400 || h != 300 {
		t.Errorf("ChartSize() = %v,%v", w, h)
	}
}

func TestInsets(t *testing.T) {
	c := newTestComputator()
	c.InsetContentRectWithAxesMargins(5, 0, 0, 15)
	c.InsetContentRectWithInternalMargins(2, 2, 2, 2)

	if got, want := c.ContentRectMinusAxesMargins(), (geom.Rect{Left: 15, Top: 20, Right: 370, Bottom: 245}); got != want {
		t.Errorf("axes rect = %+v, want %+v", got, want)
	}
	if got, want := c.ContentRectMinusAllMargins(), (geom.Rect{Left: 17, Top: 22, Right: 368, Bottom: 243}); got != want {
		t.Errorf("all-margins rect = %+v, want %+v", got, want)
	}

	// A fresh size change discards every inset.
	c.SetContentRect(400, 300, 0, 0, 0, 0)
	if got := c.ContentRectMinusAllMargins(); got != (geom.Rect{Right: 400, Bottom: 300}) {
		t.Errorf("after reset = %+v", got)
	}
}

func TestInsetNeverNegative(t *testing.T) {
	c := New()
	c.SetContentRect(100, 100, 0, 0, 0, 0)
	c.InsetContentRectWithAxesMargins(60, 0, 0, 0)
	c.InsetContentRectWithAxesMargins(0, 0, 60, 0)

	r := c.ContentRectMinusAxesMargins()
	if r.Width() < 0 {
		t.Errorf("width = %v, want >= 0", r.Width())
	}
	if !r.Empty() {
		t.Errorf("rect %+v should be empty", r)
	}
}

func TestComputeRaw(t *testing.T) {
	c := New()
	c.SetContentRect(300, 200, 0, 0, 0, 0)
	c.SetMaxViewport(geom.Viewport{Left: 0, Top: 100, Right: 100, Bottom: 0})
	c.SetCurrentViewport(geom.Viewport{Left: 50, Top: 100, Right: 100, Bottom: 0})

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"x at left", c.ComputeRawX(50), 0},
		{"x at right", c.ComputeRawX(100), 300},
		{"x middle", c.ComputeRawX(75), 150},
		{"y at bottom", c.ComputeRawY(0), 200},
		{"y at top", c.ComputeRawY(100), 0},
		{"y quarter", c.ComputeRawY(25), 150},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if z := c.ZoomX(); z != 2 {
		t.Errorf("ZoomX() = %v, want 2", z)
	}
	if z := c.ZoomY(); z != 1 {
		t.Errorf("ZoomY() = %v, want 1", z)
	}
}

func TestViewportConstrainedIntoMax(t *testing.T) {
	c := New()
	c.SetMaxViewport(geom.Viewport{Left: 0, Top: 10, Right: 10, Bottom: 0})
	c.SetCurrentViewport(geom.Viewport{Left: 8, Top: 5, Right: 12, Bottom: 1})

	want := geom.Viewport{Left: 6, Top: 5, Right: 10, Bottom: 1}
	if got := c.VisibleViewport(); got != want {
		t.Errorf("VisibleViewport() = %+v, want %+v", got, want)
	}

	c.SetCurrentViewport(geom.Viewport{Left: 3, Top: 1, Right: 3, Bottom: 0})
	if got := c.VisibleViewport(); got != want {
		t.Errorf("invalid viewport should be ignored, got %+v", got)
	}
}
