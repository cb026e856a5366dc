// Package computator maps a data-space viewport onto a pixel-space content
// rectangle.
//
// A Computator tracks two content rectangles. The axes rectangle is the chart
// frame minus padding minus the margins consumed by axis labels and names.
// The "all margins" rectangle additionally excludes internal margins that
// series renderers reserve (for example half a point radius). Data is mapped
// into the latter; gridlines span the former.
package computator

import (
	"github.com/matzehuels/chartaxes/pkg/chart/geom"
)

// Computator holds the current layout of one chart. It is not safe for
// concurrent use; a chart lays out and draws on a single goroutine.
type Computator struct {
	chartWidth, chartHeight float64

	contentRectMinusAllMargins  geom.Rect
	contentRectMinusAxesMargins geom.Rect

	maxViewport     geom.Viewport
	currentViewport geom.Viewport
}

// New returns a Computator with a unit viewport and an empty content rect.
func New() *Computator {
	unit := geom.Viewport{Left: 0, Top: 1, Right: 1, Bottom: 0}
	return &Computator{maxViewport: unit, currentViewport: unit}
}

// SetContentRect resets both content rectangles to the chart frame minus the
// given padding. Call it on every size change, before the axes lay out.
func (c *Computator) SetContentRect(width, height, padLeft, padTop, padRight, padBottom float64) {
	c.chartWidth = width
	c.chartHeight = height
	r := geom.Rect{Left: 0, Top: 0, Right: width, Bottom: height}.Inset(padLeft, padTop, padRight, padBottom)
	c.contentRectMinusAllMargins = r
	c.contentRectMinusAxesMargins = r
}

// InsetContentRectWithAxesMargins shrinks both content rectangles.
func (c *Computator) InsetContentRectWithAxesMargins(left, top, right, bottom float64) {
	c.contentRectMinusAxesMargins = c.contentRectMinusAxesMargins.Inset(left, top, right, bottom)
	c.contentRectMinusAllMargins = c.contentRectMinusAllMargins.Inset(left, top, right, bottom)
}

// InsetContentRectWithInternalMargins shrinks only the rectangle data is
// mapped into.
func (c *Computator) InsetContentRectWithInternalMargins(left, top, right, bottom float64) {
	c.contentRectMinusAllMargins = c.contentRectMinusAllMargins.Inset(left, top, right, bottom)
}

// ChartSize returns the size passed to the last SetContentRect.
func (c *Computator) ChartSize() (width, height float64) { return c.chartWidth, c.chartHeight }

// ContentRectMinusAxesMargins returns the frame minus padding and axes margins.
func (c *Computator) ContentRectMinusAxesMargins() geom.Rect { return c.contentRectMinusAxesMargins }

// ContentRectMinusAllMargins returns the rectangle data is mapped into.
func (c *Computator) ContentRectMinusAllMargins() geom.Rect { return c.contentRectMinusAllMargins }

// SetMaxViewport sets the full data extent and re-constrains the visible
// viewport into it. Invalid viewports are ignored.
func (c *Computator) SetMaxViewport(v geom.Viewport) {
	if !v.Valid() {
		return
	}
	c.maxViewport = v
	c.currentViewport = v.Constrain(c.currentViewport)
}

// SetCurrentViewport sets the visible window, constrained into the maximum
// viewport. Invalid viewports are ignored.
func (c *Computator) SetCurrentViewport(v geom.Viewport) {
	if !v.Valid() {
		return
	}
	c.currentViewport = c.maxViewport.Constrain(v)
}

// MaximumViewport returns the full data extent.
func (c *Computator) MaximumViewport() geom.Viewport { return c.maxViewport }

// VisibleViewport returns the current pan/zoom window.
func (c *Computator) VisibleViewport() geom.Viewport { return c.currentViewport }

// ComputeRawX maps a data X value to a pixel X coordinate.
func (c *Computator) ComputeRawX(x float64) float64 {
	r, v := c.contentRectMinusAllMargins, c.currentViewport
	return r.Left + (x-v.Left)*(r.Width()/v.Width())
}

// ComputeRawY maps a data Y value to a pixel Y coordinate. Pixels grow
// downward, so larger values map closer to the top.
func (c *Computator) ComputeRawY(y float64) float64 {
	r, v := c.contentRectMinusAllMargins, c.currentViewport
	return r.Bottom - (y-v.Bottom)*(r.Height()/v.Height())
}

// ZoomX returns how many times narrower the visible viewport is than the maximum.
func (c *Computator) ZoomX() float64 { return c.maxViewport.Width() / c.currentViewport.Width() }

// ZoomY returns how many times shorter the visible viewport is than the maximum.
func (c *Computator) ZoomY() float64 { return c.maxViewport.Height() / c.currentViewport.Height() }
