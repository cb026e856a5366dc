// Package axis describes the configuration of one chart axis and how its tick
// labels are turned into text.
//
// An [Axis] either generates its tick values from the visible data range
// (AutoGenerated) or draws an explicit, ascending list of [Value]s. Labels are
// produced by a [Formatter] that writes right-aligned into a fixed-size byte
// buffer that the renderer reuses for every label of every frame.
package axis

import (
	"image/color"
	"math"
)

// Defaults applied by [New].
const (
	DefaultTextSize      = 12 // scale-independent pixels
	DefaultMaxLabelChars = 3
)

// MaxRangeTicks bounds the number of ticks [FromRange] builds.
const MaxRangeTicks = 100_000

// Default colors applied by [New].
var (
	DefaultTextColor = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	DefaultLineColor = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
)

// Value is one explicit tick. Label, when set, replaces the formatted number.
type Value struct {
	Value float64
	Label string
}

// Axis is the configuration of one axis slot. It is read, never modified, by
// the renderer during a frame.
type Axis struct {
	// Values are explicit ticks in ascending order, used when AutoGenerated
	// is false.
	Values []Value
	// Name is drawn once beside the labels; empty means no name.
	Name string

	AutoGenerated     bool // generate ticks from the visible range
	Inside            bool // draw labels inside the content area
	HasLines          bool // draw gridlines at each selected tick
	HasSeparationLine bool // draw a line between labels and content

	// MaxLabelChars sizes the label box: the width of this many digits.
	MaxLabelChars int
	// TextSize is in scale-independent pixels.
	TextSize float64

	TextColor color.Color
	LineColor color.Color

	// Formatter turns tick values into label text; nil uses a SimpleFormatter.
	Formatter Formatter
}

// New returns an auto-generated axis with default styling.
func New() *Axis {
	return &Axis{
		AutoGenerated:     true,
		HasSeparationLine: true,
		MaxLabelChars:     DefaultMaxLabelChars,
		TextSize:          DefaultTextSize,
		TextColor:         DefaultTextColor,
		LineColor:         DefaultLineColor,
	}
}

// NewWithValues returns an axis that draws the given explicit ticks.
func NewWithValues(values []Value) *Axis {
	a := New()
	a.AutoGenerated = false
	a.Values = values
	return a
}

// FromRange builds an explicit axis with ticks start, start+step, ... up to
// and including stop. A non-positive step, an empty range or a range of more
// than MaxRangeTicks ticks yields no ticks.
func FromRange(start, stop, step float64) *Axis {
	var values []Value
	if count := RangeCount(start, stop, step); count > 0 && count <= MaxRangeTicks {
		n := int(count)
		values = make([]Value, 0, n)
		for i := 0; i < n; i++ {
			values = append(values, Value{Value: start + float64(i)*step})
		}
	}
	return NewWithValues(values)
}

// RangeCount returns how many ticks FromRange(start, stop, step) describes,
// or 0 when the range is empty or not finite. It is a float so that huge
// counts do not overflow.
func RangeCount(start, stop, step float64) float64 {
	if !(step > 0) || !(start <= stop) {
		return 0
	}
	n := math.Floor((stop-start)/step+1e-9) + 1
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return 0
	}
	return n
}

// FromValues builds an explicit axis from parallel value and label slices.
// Labels may be shorter than values; missing labels are formatted numerically.
func FromValues(values []float64, labels []string) *Axis {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i].Value = v
		if i < len(labels) {
			out[i].Label = labels[i]
		}
	}
	return NewWithValues(out)
}

// HasLabels reports whether the axis draws any tick labels.
func (a *Axis) HasLabels() bool { return a.AutoGenerated || len(a.Values) > 0 }

// HasName reports whether the axis draws a name.
func (a *Axis) HasName() bool { return a.Name != "" }

// LabelChars returns MaxLabelChars clamped to [0, LabelBufferSize].
func (a *Axis) LabelChars() int { return min(max(a.MaxLabelChars, 0), LabelBufferSize) }

// LabelFormatter returns the configured formatter or the default one.
func (a *Axis) LabelFormatter() Formatter {
	if a.Formatter == nil {
		return defaultFormatter
	}
	return a.Formatter
}

// TextColorOrDefault returns TextColor, or DefaultTextColor when unset.
func (a *Axis) TextColorOrDefault() color.Color {
	if a.TextColor == nil {
		return DefaultTextColor
	}
	return a.TextColor
}

// LineColorOrDefault returns LineColor, or DefaultLineColor when unset.
func (a *Axis) LineColorOrDefault() color.Color {
	if a.LineColor == nil {
		return DefaultLineColor
	}
	return a.LineColor
}
