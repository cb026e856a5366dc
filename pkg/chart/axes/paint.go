package axes

import (
	"github.com/matzehuels/chartaxes/pkg/chart/axis"
)

// DrawInBackground prepares the axes for this frame and draws separation lines
// and gridlines. Call it before the chart's series are drawn.
func (r *Renderer) DrawInBackground(c Canvas) {
	r.Prepare()
	for _, s := range Slots {
		if a := r.preparedAxis(s); a != nil {
			r.drawLines(c, s, a)
		}
	}
}

// DrawInForeground draws tick labels and axis names prepared by the last
// DrawInBackground or Prepare. Call it after the chart's series are drawn.
func (r *Renderer) DrawInForeground(c Canvas) {
	for _, s := range Slots {
		if a := r.preparedAxis(s); a != nil {
			r.drawLabels(c, s, a)
		}
	}
}

func (r *Renderer) preparedAxis(s Slot) *axis.Axis {
	if !r.prepared.Test(uint(s)) {
		return nil
	}
	return r.axes.Axis(s)
}

func (r *Renderer) drawLines(c Canvas, s Slot, a *axis.Axis) {
	st := &r.slots[s]
	rect := r.comp.ContentRectMinusAxesMargins()

	// The separation line uses the text color.
	if a.HasSeparationLine {
		if s.Horizontal() {
			c.DrawLine(rect.Left, st.separation, rect.Right, st.separation, a.TextColorOrDefault())
		} else {
			c.DrawLine(st.separation, rect.Bottom, st.separation, rect.Top, a.TextColorOrDefault())
		}
	}

	if a.HasLines && st.count > 0 {
		c.DrawLines(st.lines, a.LineColorOrDefault())
	}
}

func (r *Renderer) drawLabels(c Canvas, s Slot, a *axis.Axis) {
	st := &r.slots[s]
	style := TextStyle{Size: st.textSize, Color: a.TextColorOrDefault(), Align: st.align}
	horizontal := s.Horizontal()

	for i := 0; i < st.count; i++ {
		n := st.source.format(r.labelBuf[:], st, a, i)
		label := string(r.labelBuf[len(r.labelBuf)-n:])
		if horizontal {
			c.DrawText(label, st.raw[i], st.fixed, style)
		} else {
			c.DrawText(label, st.fixed, st.raw[i], style)
		}
	}

	if !a.HasName() {
		return
	}
	rect := r.comp.ContentRectMinusAxesMargins()
	style.Align = AlignCenter
	if horizontal {
		c.DrawText(a.Name, rect.CenterX(), st.nameBaseline, style)
		return
	}
	style.Rotation = -90
	c.DrawText(a.Name, st.nameBaseline, rect.CenterY(), style)
}
