package axes

import (
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartaxes/pkg/chart/axis"
	"github.com/matzehuels/chartaxes/pkg/chart/ticks"
)

// defaultAxisMarginDP is the padding between labels, names and content, in
// density-independent pixels.
const defaultAxisMarginDP = 2

// Renderer lays out and draws the axes of one chart.
type Renderer struct {
	comp   Computator
	axes   AxisProvider
	text   TextMeasurer
	logger *log.Logger

	density       float64
	scaledDensity float64
	axisMargin    float64

	slots [slotCount]slotState

	// laidOut holds the slots measured by the latest Layout; prepared holds
	// the slots filled by the latest Prepare. Drawing reads only prepared slots.
	laidOut  bitset.BitSet
	prepared bitset.BitSet

	labelBuf [axis.LabelBufferSize]byte
}

// slotState is the derived, per-frame state of one slot.
type slotState struct {
	textSize   float64
	ascent     float64
	descent    float64
	labelWidth float64

	fixed        float64 // baseline (horizontal) or x anchor (vertical) of labels
	nameBaseline float64
	separation   float64
	align        Align

	source tickSource
	auto   ticks.Auto

	// Selected ticks: raw[i] is the pixel coordinate of autoValues[i] or
	// values[i], depending on the source. Capacity only grows.
	raw        []float64
	autoValues []float64
	values     []axis.Value
	lines      []float64
	count      int
}

func (st *slotState) resetMetrics() {
	st.textSize, st.ascent, st.descent, st.labelWidth = 0, 0, 0, 0
}

// growCandidates makes room for n candidate ticks. Old contents are discarded
// when a larger buffer is needed.
func (st *slotState) growCandidates(n int) {
	if cap(st.raw) < n {
		st.raw = make([]float64, n)
	}
	st.raw = st.raw[:n]
}

func (st *slotState) setCount(n int) {
	st.count = n
	st.raw = st.raw[:n]
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDensity sets the ratio of device pixels to density-independent pixels.
func WithDensity(d float64) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.density = d
		}
	}
}

// WithScaledDensity sets the ratio of device pixels to scale-independent
// pixels, used for text sizes.
func WithScaledDensity(d float64) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.scaledDensity = d
		}
	}
}

// WithLogger sets the logger used for layout diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a renderer drawing the axes supplied by axes over the geometry
// of comp, measuring text with text.
func New(comp Computator, axes AxisProvider, text TextMeasurer, opts ...Option) *Renderer {
	r := &Renderer{
		comp:          comp,
		axes:          axes,
		text:          text,
		logger:        log.Default(),
		density:       1,
		scaledDensity: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.axisMargin = math.Round(defaultAxisMarginDP * r.density)
	return r
}

// AxisMargin returns the padding in pixels used between labels, names and
// content.
func (r *Renderer) AxisMargin() float64 { return r.axisMargin }

// Selection is a read-only snapshot of one prepared slot.
type Selection struct {
	Slot         Slot
	Fixed        float64
	NameBaseline float64
	Separation   float64
	Align        Align
	LabelWidth   float64
	Ascent       float64
	Descent      float64
	// Decimals is the precision hint of auto axes.
	Decimals int
	// Raw holds the pixel coordinate of each selected tick along the axis.
	Raw []float64
	// Values holds the data value of each selected tick.
	Values []float64
	// Labels holds the formatted text of each selected tick.
	Labels []string
	// Lines holds gridline segments, four values per selected tick.
	Lines []float64
}

// Selection returns a copy of the state Prepare computed for s. ok is false
// when the slot is empty or has not been prepared since the last Layout.
func (r *Renderer) Selection(s Slot) (sel Selection, ok bool) {
	s.mustBeValid()
	a := r.axes.Axis(s)
	if a == nil || !r.prepared.Test(uint(s)) {
		return Selection{Slot: s}, false
	}
	st := &r.slots[s]
	sel = Selection{
		Slot:         s,
		Fixed:        st.fixed,
		NameBaseline: st.nameBaseline,
		Separation:   st.separation,
		Align:        st.align,
		LabelWidth:   st.labelWidth,
		Ascent:       st.ascent,
		Descent:      st.descent,
		Decimals:     st.auto.Decimals,
		Raw:          append([]float64(nil), st.raw[:st.count]...),
		Values:       make([]float64, st.count),
		Labels:       make([]string, st.count),
		Lines:        append([]float64(nil), st.lines...),
	}
	for i := 0; i < st.count; i++ {
		sel.Values[i] = st.source.value(st, i)
		n := st.source.format(r.labelBuf[:], st, a, i)
		sel.Labels[i] = string(r.labelBuf[len(r.labelBuf)-n:])
	}
	return sel, true
}
