package axes

import (
	"math"

	"github.com/matzehuels/chartaxes/pkg/chart/axis"
	"github.com/matzehuels/chartaxes/pkg/chart/geom"
	"github.com/matzehuels/chartaxes/pkg/chart/ticks"
)

// tickSource selects the ticks of one slot for the current frame and formats
// them. Auto axes and explicit axes differ only here.
type tickSource interface {
	// selectTicks fills st.raw and the source's value buffer and sets
	// st.count. The content rectangle is non-empty and the visible viewport
	// valid when it is called.
	selectTicks(r *Renderer, s Slot, st *slotState, a *axis.Axis)
	value(st *slotState, i int) float64
	format(buf []byte, st *slotState, a *axis.Axis, i int) int
}

var (
	autoTicks     tickSource = autoSource{}
	explicitTicks tickSource = explicitSource{}
)

func sourceFor(a *axis.Axis) tickSource {
	if a.AutoGenerated {
		return autoTicks
	}
	return explicitTicks
}

// axisRange is the visible data range along one slot's direction and the
// pixel span it maps onto.
type axisRange struct {
	start, end float64 // visible data range
	maxSpan    float64 // data span of the maximum viewport
	pixels     float64 // content span in pixels
}

func (r *Renderer) rangeFor(s Slot) axisRange {
	vis := r.comp.VisibleViewport()
	maxVP := r.comp.MaximumViewport()
	content := r.comp.ContentRectMinusAllMargins()
	if s.Horizontal() {
		return axisRange{start: vis.Left, end: vis.Right, maxSpan: maxVP.Width(), pixels: content.Width()}
	}
	return axisRange{start: vis.Bottom, end: vis.Top, maxSpan: maxVP.Height(), pixels: content.Height()}
}

func (ar axisRange) zoom() float64 { return ar.maxSpan / (ar.end - ar.start) }

func (r *Renderer) toRaw(s Slot, v float64) float64 {
	if s.Horizontal() {
		return r.comp.ComputeRawX(v)
	}
	return r.comp.ComputeRawY(v)
}

// fits reports whether a label at raw can be drawn. Labels outside the content
// area always fit. Inside labels must not overflow the content rectangle:
// horizontal axes keep half a label width clear of each edge; vertical axes
// keep clear of the top and bottom axes' label ascent plus padding. Both
// bounds are inclusive.
func (r *Renderer) fits(s Slot, a *axis.Axis, raw float64, content geom.Rect) bool {
	if !a.Inside {
		return true
	}
	if s.Horizontal() {
		half := r.slots[s].labelWidth / 2
		return raw >= content.Left+half && raw <= content.Right-half
	}
	marginBottom := r.slots[Bottom].ascent + r.axisMargin
	marginTop := r.slots[Top].ascent + r.axisMargin
	return raw <= content.Bottom-marginBottom && raw >= content.Top+marginTop
}

// autoTarget converts the ratio of content span to label span into a tick
// count for the generator.
func autoTarget(pixels, labelSpan float64) int {
	t := math.Floor(pixels / labelSpan / 2)
	if !(t >= 1) {
		return 1
	}
	if t > ticks.MaxTarget {
		return ticks.MaxTarget
	}
	return int(t)
}

// thinning returns the stride used to skip explicit ticks so that n labels of
// size labelSpan fit into available pixels. It is at least 1.
func thinning(n int, labelSpan, available float64) int {
	m := math.Ceil(float64(n) * labelSpan / available)
	if !(m >= 1) {
		return 1
	}
	if m > float64(n) {
		return max(n, 1)
	}
	return int(m)
}

type autoSource struct{}

func (autoSource) selectTicks(r *Renderer, s Slot, st *slotState, a *axis.Axis) {
	ar := r.rangeFor(s)
	labelSpan := st.labelWidth
	if !s.Horizontal() {
		// One ascent here; explicit thinning below uses two.
		labelSpan = st.ascent
	}
	ticks.Generate(ar.start, ar.end, autoTarget(ar.pixels, labelSpan), &st.auto)

	n := st.auto.Len()
	st.growCandidates(n)
	if cap(st.autoValues) < n {
		st.autoValues = make([]float64, n)
	}
	st.autoValues = st.autoValues[:n]

	// The generator overshoots the range to cover it; only ticks inside the
	// visible range are drawn.
	tol := st.auto.Step * 1e-9
	lo, hi := ar.start-tol, ar.end+tol
	content := r.comp.ContentRectMinusAllMargins()

	count := 0
	for _, v := range st.auto.Values {
		if v < lo || v > hi {
			continue
		}
		raw := r.toRaw(s, v)
		if !r.fits(s, a, raw, content) {
			continue
		}
		st.raw[count] = raw
		st.autoValues[count] = v
		count++
	}
	st.autoValues = st.autoValues[:count]
	st.setCount(count)
}

func (autoSource) value(st *slotState, i int) float64 { return st.autoValues[i] }

func (autoSource) format(buf []byte, st *slotState, a *axis.Axis, i int) int {
	return a.LabelFormatter().FormatAuto(buf, st.autoValues[i], st.auto.Decimals)
}

type explicitSource struct{}

func (explicitSource) selectTicks(r *Renderer, s Slot, st *slotState, a *axis.Axis) {
	ar := r.rangeFor(s)
	labelSpan := st.labelWidth
	if !s.Horizontal() {
		labelSpan = 2 * st.ascent
	}
	module := thinning(len(a.Values), labelSpan, ar.pixels*ar.zoom())

	n := len(a.Values)
	st.growCandidates(n)
	if cap(st.values) < n {
		st.values = make([]axis.Value, n)
	}
	st.values = st.values[:n]
	content := r.comp.ContentRectMinusAllMargins()

	// Thinning counts positions among the visible ticks, not absolute indices.
	visibleIndex, count := 0, 0
	for _, v := range a.Values {
		if v.Value < ar.start || v.Value > ar.end {
			continue
		}
		if visibleIndex%module == 0 {
			raw := r.toRaw(s, v.Value)
			if r.fits(s, a, raw, content) {
				st.raw[count] = raw
				st.values[count] = v
				count++
			}
		}
		visibleIndex++
	}
	st.values = st.values[:count]
	st.setCount(count)
}

func (explicitSource) value(st *slotState, i int) float64 { return st.values[i].Value }

func (explicitSource) format(buf []byte, st *slotState, a *axis.Axis, i int) int {
	return a.LabelFormatter().FormatValue(buf, st.values[i])
}
