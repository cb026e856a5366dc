package axes

import (
	"github.com/matzehuels/chartaxes/pkg/chart/axis"
	"github.com/matzehuels/chartaxes/pkg/chart/geom"
)

// Prepare computes, for every slot laid out by the last Layout, where the axis
// sits and which ticks are drawn this frame, and fills the gridline buffers.
// A slot whose content rectangle or visible range is degenerate selects no
// ticks.
func (r *Renderer) Prepare() {
	r.prepared.ClearAll()
	for _, s := range Slots {
		if !r.laidOut.Test(uint(s)) {
			continue
		}
		a := r.axes.Axis(s)
		if a == nil {
			continue
		}
		r.prepareSlot(s, a)
		r.prepared.Set(uint(s))
	}
}

func (r *Renderer) prepareSlot(s Slot, a *axis.Axis) {
	st := &r.slots[s]
	axesRect := r.comp.ContentRectMinusAxesMargins()
	allRect := r.comp.ContentRectMinusAllMargins()

	r.placeSlot(s, a, st, axesRect, allRect)

	st.source = sourceFor(a)
	st.auto.Reset()
	if allRect.Empty() || !r.comp.VisibleViewport().Valid() || !a.HasLabels() {
		st.growCandidates(0)
		st.setCount(0)
	} else {
		st.source.selectTicks(r, s, st, a)
	}
	r.fillLines(s, st, axesRect)
}

// placeSlot computes the fixed coordinate, name baseline, separation line and
// label alignment of a slot.
func (r *Renderer) placeSlot(s Slot, a *axis.Axis, st *slotState, axesRect, allRect geom.Rect) {
	pad := r.axisMargin
	switch s {
	case Bottom:
		st.align = AlignCenter
		if a.Inside {
			st.fixed = axesRect.Bottom - pad - st.descent
			st.nameBaseline = axesRect.Bottom + st.ascent + pad
		} else {
			st.fixed = axesRect.Bottom + st.ascent + pad
			st.nameBaseline = st.fixed + pad + st.ascent + st.descent
		}
		st.separation = allRect.Bottom

	case Top:
		st.align = AlignCenter
		if a.Inside {
			st.fixed = axesRect.Top + pad + st.ascent
			st.nameBaseline = axesRect.Top - pad - st.descent
		} else {
			st.fixed = axesRect.Top - pad - st.descent
			st.nameBaseline = st.fixed - pad - st.ascent - st.descent
		}
		st.separation = allRect.Top

	case Left:
		if a.Inside {
			st.align = AlignLeft
			st.fixed = axesRect.Left + pad
			st.nameBaseline = axesRect.Left - pad - st.descent
		} else {
			st.align = AlignRight
			st.fixed = axesRect.Left - pad
			st.nameBaseline = st.fixed - st.labelWidth - pad - st.descent
		}
		st.separation = allRect.Left

	case Right:
		if a.Inside {
			st.align = AlignRight
			st.fixed = axesRect.Right - pad
			st.nameBaseline = axesRect.Right + pad + st.ascent
		} else {
			st.align = AlignLeft
			st.fixed = axesRect.Right + pad
			st.nameBaseline = st.fixed + st.labelWidth + pad + st.ascent
		}
		st.separation = allRect.Right

	default:
		s.mustBeValid()
	}
}

// fillLines builds one gridline segment per selected tick, spanning the axes
// rectangle perpendicular to the axis. The buffer holds exactly 4*count values.
func (r *Renderer) fillLines(s Slot, st *slotState, rect geom.Rect) {
	need := 4 * st.count
	if cap(st.lines) < need {
		st.lines = make([]float64, need)
	}
	st.lines = st.lines[:need]

	horizontal := s.Horizontal()
	for i, raw := range st.raw[:st.count] {
		seg := st.lines[4*i : 4*i+4]
		if horizontal {
			seg[0], seg[1], seg[2], seg[3] = raw, rect.Top, raw, rect.Bottom
		} else {
			seg[0], seg[1], seg[2], seg[3] = rect.Left, raw, rect.Right, raw
		}
	}
}
