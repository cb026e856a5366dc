// Package geom defines the two rectangles the axes renderer works with: the
// pixel-space content rectangle and the data-space viewport.
//
// Pixel rectangles grow downward (Top < Bottom) like every raster surface;
// viewports grow upward (Bottom < Top) like a plotted Y axis.
package geom

// Rect is a rectangle in pixel space. Top < Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool { return !(r.Width() > 0) || !(r.Height() > 0) }

// Inset shrinks each edge by the given delta. An edge never moves past the
// opposite edge: a rectangle inset by more than its span collapses to zero
// span at the inset edge.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	r.Left += left
	r.Top += top
	r.Right -= right
	r.Bottom -= bottom
	if r.Left > r.Right {
		if left > 0 {
			r.Left = r.Right
		} else {
			r.Right = r.Left
		}
	}
	if r.Top > r.Bottom {
		if top > 0 {
			r.Top = r.Bottom
		} else {
			r.Bottom = r.Top
		}
	}
	return r
}

// Viewport is a rectangle in data space. Left < Right and Bottom < Top.
type Viewport struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal data span.
func (v Viewport) Width() float64 { return v.Right - v.Left }

// Height returns the vertical data span.
func (v Viewport) Height() float64 { return v.Top - v.Bottom }

// Valid reports whether both spans are positive.
func (v Viewport) Valid() bool { return v.Width() > 0 && v.Height() > 0 }

// Contains reports whether o lies entirely within v.
func (v Viewport) Contains(o Viewport) bool {
	return o.Left >= v.Left && o.Right <= v.Right && o.Bottom >= v.Bottom && o.Top <= v.Top
}

// Constrain returns o clipped so that it lies within v. Spans wider than v are
// reduced to v's span; narrower spans are shifted back inside without being
// resized.
func (v Viewport) Constrain(o Viewport) Viewport {
	if o.Width() >= v.Width() {
		o.Left, o.Right = v.Left, v.Right
	} else if o.Left < v.Left {
		o.Right += v.Left - o.Left
		o.Left = v.Left
	} else if o.Right > v.Right {
		o.Left -= o.Right - v.Right
		o.Right = v.Right
	}
	if o.Height() >= v.Height() {
		o.Bottom, o.Top = v.Bottom, v.Top
	} else if o.Bottom < v.Bottom {
		o.Top += v.Bottom - o.Bottom
		o.Bottom = v.Bottom
	} else if o.Top > v.Top {
		o.Bottom -= o.Top - v.Top
		o.Top = v.Top
	}
	return o
}
