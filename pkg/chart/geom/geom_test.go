package geom

import "testing"

func TestRectSpans(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 110, Bottom: 70}
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("size = %vx%v, want 100x50", r.Width(), r.Height())
	}
	if r.CenterX() != 60 || r.CenterY() != 45 {
		t.Errorf("center = (%v,%v), want (60,45)", r.CenterX(), r.CenterY())
	}
	if r.Empty() {
		t.Error("Empty() = true for a 100x50 rect")
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name                     string
		left, top, right, bottom float64
		want                     Rect
	}{
		{"left only", 12, 0, 0, 0, Rect{12, 0, 100, 50}},
		{"bottom only", 0, 0, 0, 8, Rect{0, 0, 100, 42}},
		{"all edges", 1, 2, 3, 4, Rect{1, 2, 97, 46}},
		{"left overflow collapses", 150, 0, 0, 0, Rect{100, 0, 100, 50}},
		{"right overflow collapses", 0, 0, 150, 0, Rect{0, 0, 0, 50}},
		{"top overflow collapses", 0, 80, 0, 0, Rect{0, 50, 100, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rect{0, 0, 100, 50}.Inset(tt.left, tt.top, tt.right, tt.bottom)
			if got != tt.want {
				t.Errorf("Inset() = %+v, want %+v", got, tt.want)
			}
			if got.Width() < 0 || got.Height() < 0 {
				t.Errorf("Inset() produced negative span: %+v", got)
			}
		})
	}
}

func TestViewportConstrain(t *testing.T) {
	max := Viewport{Left: 0, Top: 100, Right: 100, Bottom: 0}

	tests := []struct {
		name string
		in   Viewport
		want Viewport
	}{
		{"inside", Viewport{10, 60, 50, 20}, Viewport{10, 60, 50, 20}},
		{"shift right", Viewport{-10, 60, 30, 20}, Viewport{0, 60, 40, 20}},
		{"shift left", Viewport{80, 60, 120, 20}, Viewport{60, 60, 100, 20}},
		{"shift down", Viewport{10, 130, 50, 90}, Viewport{10, 100, 50, 60}},
		{"too wide", Viewport{-50, 60, 150, 20}, Viewport{0, 60, 100, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := max.Constrain(tt.in)
			if got != tt.want {
				t.Errorf("Constrain() = %+v, want %+v", got, tt.want)
			}
			if !max.Contains(got) {
				t.Errorf("result %+v not contained in %+v", got, max)
			}
		})
	}
}

func TestViewportValid(t *testing.T) {
	if !(Viewport{0, 1, 1, 0}).Valid() {
		t.Error("unit viewport should be valid")
	}
	if (Viewport{0, 0, 1, 0}).Valid() {
		t.Error("zero-height viewport should be invalid")
	}
}
