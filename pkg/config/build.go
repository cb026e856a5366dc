package config

import (
	"image/color"

	"github.com/matzehuels/chartaxes/pkg/chart/axes"
	"github.com/matzehuels/chartaxes/pkg/chart/axis"
	"github.com/matzehuels/chartaxes/pkg/chart/computator"
	"github.com/matzehuels/chartaxes/pkg/chart/geom"
)

// Computator returns the chart geometry at the given output scale: frame
// and padding are multiplied by scale and the density.
func (c *Chart) Computator(scale float64) *computator.Computator {
	px := c.Density * scale
	comp := computator.New()
	comp.SetContentRect(c.Width*scale, c.Height*scale,
		c.Padding.Left*px, c.Padding.Top*px, c.Padding.Right*px, c.Padding.Bottom*px)

	maxVP := c.Viewport.Max.geom()
	comp.SetMaxViewport(maxVP)
	if v := c.Viewport.Visible; v != nil {
		comp.SetCurrentViewport(v.geom())
	} else {
		comp.SetCurrentViewport(maxVP)
	}
	return comp
}

// AxisSet builds the configured axes.
func (c *Chart) AxisSet() (*axes.Set, error) {
	var set axes.Set
	slots := c.Axes.slots()
	for i, s := range [4]axes.Slot{axes.Top, axes.Left, axes.Right, axes.Bottom} {
		cfg := slots[i].axis
		if cfg == nil {
			continue
		}
		a, err := cfg.Build()
		if err != nil {
			return nil, err
		}
		set.SetAxis(s, a)
	}
	return &set, nil
}

// Build converts the description into an axis.
func (a *Axis) Build() (*axis.Axis, error) {
	var out *axis.Axis
	switch {
	case a.Range != nil:
		out = axis.FromRange(a.Range.Start, a.Range.Stop, a.Range.Step)
	case len(a.Values) > 0 || (a.Auto != nil && !*a.Auto):
		out = axis.FromValues(a.Values, a.Labels)
	default:
		out = axis.New()
	}

	out.Name = a.Name
	out.Inside = a.Inside
	out.HasLines = a.Lines
	if a.SeparationLine != nil {
		out.HasSeparationLine = *a.SeparationLine
	}
	if a.MaxLabelChars != nil {
		out.MaxLabelChars = *a.MaxLabelChars
	}
	if a.TextSize != nil {
		out.TextSize = *a.TextSize
	}

	textColor, err := parseColor(a.TextColor)
	if err != nil {
		return nil, err
	}
	if textColor != nil {
		out.TextColor = textColor
	}
	lineColor, err := parseColor(a.LineColor)
	if err != nil {
		return nil, err
	}
	if lineColor != nil {
		out.LineColor = lineColor
	}

	f := axis.SimpleFormatter{DecimalDigits: -1, Prepended: a.Prepend, Appended: a.Append}
	if a.DecimalDigits != nil {
		f.DecimalDigits = *a.DecimalDigits
	}
	if a.DecimalSeparator != "" {
		f.DecimalSeparator = a.DecimalSeparator[0]
	}
	out.Formatter = f
	return out, nil
}

// BackgroundColor returns the parsed frame background.
func (c *Chart) BackgroundColor() (color.Color, error) {
	bg, err := parseColor(c.Background)
	if err != nil || bg != nil {
		return bg, err
	}
	return color.White, nil
}

func (v Viewport) geom() geom.Viewport {
	return geom.Viewport{Left: v.Left, Top: v.Top, Right: v.Right, Bottom: v.Bottom}
}
