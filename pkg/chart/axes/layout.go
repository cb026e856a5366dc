package axes

import (
	"strings"

	"github.com/matzehuels/chartaxes/pkg/chart/axis"
)

// digitProbe is measured to size label boxes: MaxLabelChars zeros.
var digitProbe = strings.Repeat("0", axis.LabelBufferSize)

// Layout measures every configured axis and insets the computator's content
// rectangle by the margin each one needs. Call it whenever the chart size or
// data changes, after the computator's content rectangle has been reset.
// Layout invalidates the previous Prepare.
func (r *Renderer) Layout() {
	r.laidOut.ClearAll()
	r.prepared.ClearAll()

	for _, s := range layoutOrder {
		a := r.axes.Axis(s)
		if a == nil {
			r.slots[s].resetMetrics()
			continue
		}
		margin := r.measure(s, a)
		r.insetContentRect(s, margin)
		r.laidOut.Set(uint(s))

		r.logger.Debug("axis laid out",
			"slot", s,
			"margin", margin,
			"label_width", r.slots[s].labelWidth,
			"ascent", r.slots[s].ascent,
			"descent", r.slots[s].descent)
	}
}

// measure resolves the text metrics of a and returns the margin the axis
// consumes on its side of the content rectangle.
func (r *Renderer) measure(s Slot, a *axis.Axis) float64 {
	st := &r.slots[s]
	st.textSize = a.TextSize * r.scaledDensity
	st.ascent, st.descent = r.text.Metrics(st.textSize)
	st.labelWidth = r.text.MeasureText(st.textSize, digitProbe[:a.LabelChars()])

	var margin float64
	if a.HasLabels() && !a.Inside {
		if s.Horizontal() {
			margin += st.ascent + st.descent
		} else {
			margin += st.labelWidth
		}
		margin += r.axisMargin
	}
	if a.HasName() {
		margin += st.ascent + st.descent + r.axisMargin
	}
	return margin
}

func (r *Renderer) insetContentRect(s Slot, margin float64) {
	switch s {
	case Left:
		r.comp.InsetContentRectWithAxesMargins(margin, 0, 0, 0)
	case Top:
		r.comp.InsetContentRectWithAxesMargins(0, margin, 0, 0)
	case Right:
		r.comp.InsetContentRectWithAxesMargins(0, 0, margin, 0)
	case Bottom:
		r.comp.InsetContentRectWithAxesMargins(0, 0, 0, margin)
	default:
		s.mustBeValid()
	}
}
