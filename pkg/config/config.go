// Package config reads chart descriptions written in TOML.
//
// A description fixes the frame size and pixel densities, the padding around
// the content area, the maximum and visible data viewports, and up to four
// axes:
//
//	width = 640
//	height = 400
//
//	[viewport.max]
//	left = 0
//	right = 100
//	bottom = 0
//	top = 10
//
//	[axes.bottom]
//	name = "time (s)"
//	lines = true
//
//	[axes.left]
//	values = [0, 5, 10]
//	labels = ["low", "mid", "high"]
//
// [Chart.Computator] and [Chart.AxisSet] turn a validated description into
// the objects the axes renderer consumes.
package config

import (
	"bytes"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/chartaxes/pkg/chart/axis"
	"github.com/matzehuels/chartaxes/pkg/errors"
)

// Defaults applied by [Chart.ApplyDefaults].
const (
	DefaultWidth         = 640.0
	DefaultHeight        = 400.0
	DefaultDensity       = 1.0
	DefaultScaledDensity = 1.0
	DefaultBackground    = "#ffffff"
)

// Chart is a complete chart description.
type Chart struct {
	Width         float64   `toml:"width"`
	Height        float64   `toml:"height"`
	Density       float64   `toml:"density"`
	ScaledDensity float64   `toml:"scaled_density"`
	Background    string    `toml:"background"`
	Padding       Padding   `toml:"padding"`
	Viewport      Viewports `toml:"viewport"`
	Axes          Axes      `toml:"axes"`
}

// Padding is the frame inset around the content area, in density-independent
// pixels.
type Padding struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
}

// Viewport is a data-space rectangle.
type Viewport struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
}

// Viewports holds the full data extent and the visible window. A nil Visible
// shows the whole extent.
type Viewports struct {
	Max     Viewport  `toml:"max"`
	Visible *Viewport `toml:"visible"`
}

// Axes holds one optional axis per slot.
type Axes struct {
	Top    *Axis `toml:"top"`
	Left   *Axis `toml:"left"`
	Right  *Axis `toml:"right"`
	Bottom *Axis `toml:"bottom"`
}

// Axis describes one axis. Unset optional fields keep the renderer defaults.
type Axis struct {
	Name string `toml:"name"`

	// Auto generates ticks from the visible range. It defaults to true unless
	// Values or Range is given.
	Auto           *bool `toml:"auto"`
	Inside         bool  `toml:"inside"`
	Lines          bool  `toml:"lines"`
	SeparationLine *bool `toml:"separation_line"`

	MaxLabelChars *int     `toml:"max_label_chars"`
	TextSize      *float64 `toml:"text_size"`
	TextColor     string   `toml:"text_color"`
	LineColor     string   `toml:"line_color"`

	Values []float64 `toml:"values"`
	Labels []string  `toml:"labels"`
	Range  *Range    `toml:"range"`

	// DecimalDigits fixes label precision; nil follows the tick step.
	DecimalDigits    *int   `toml:"decimal_digits"`
	Prepend          string `toml:"prepend"`
	Append           string `toml:"append"`
	DecimalSeparator string `toml:"decimal_separator"`
}

// Range generates explicit ticks start, start+step, ... up to stop.
type Range struct {
	Start float64 `toml:"start"`
	Stop  float64 `toml:"stop"`
	Step  float64 `toml:"step"`
}

// Load reads, defaults and validates the chart description at path.
func Load(path string) (*Chart, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart description not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes, defaults and validates a chart description. Unknown keys
// are rejected.
func Parse(data []byte) (*Chart, error) {
	var c Chart
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode chart description")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyDefaults fills unset frame fields.
func (c *Chart) ApplyDefaults() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Density == 0 {
		c.Density = DefaultDensity
	}
	if c.ScaledDensity == 0 {
		c.ScaledDensity = DefaultScaledDensity
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
}

// Validate checks the description for values the renderer cannot use.
func (c *Chart) Validate() error {
	if !(c.Width > 0) || !(c.Height > 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "width and height must be positive, got %gx%g", c.Width, c.Height)
	}
	if !(c.Density > 0) || !(c.ScaledDensity > 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "density and scaled_density must be positive")
	}
	p := c.Padding
	if p.Left < 0 || p.Top < 0 || p.Right < 0 || p.Bottom < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "padding must not be negative")
	}
	if err := errors.ValidateColor(c.Background); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "background")
	}

	m := c.Viewport.Max
	if err := errors.ValidateViewport("max", m.Left, m.Top, m.Right, m.Bottom); err != nil {
		return err
	}
	if v := c.Viewport.Visible; v != nil {
		if err := errors.ValidateViewport("visible", v.Left, v.Top, v.Right, v.Bottom); err != nil {
			return err
		}
	}

	for _, slot := range c.Axes.slots() {
		if slot.axis == nil {
			continue
		}
		if err := slot.axis.validate(); err != nil {
			return errors.Wrap(errors.GetCode(err), err, "axes.%s", slot.name)
		}
	}
	return nil
}

func (a *Axis) validate() error {
	if a.MaxLabelChars != nil && *a.MaxLabelChars < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_label_chars must not be negative")
	}
	if a.TextSize != nil && !(*a.TextSize > 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "text_size must be positive")
	}
	if err := errors.ValidateColor(a.TextColor); err != nil {
		return err
	}
	if err := errors.ValidateColor(a.LineColor); err != nil {
		return err
	}
	if len(a.Values) > 0 && a.Range != nil {
		return errors.New(errors.ErrCodeInvalidConfig, "values and range are mutually exclusive")
	}
	if len(a.Labels) > len(a.Values) {
		return errors.New(errors.ErrCodeInvalidConfig, "%d labels for %d values", len(a.Labels), len(a.Values))
	}
	for i := 1; i < len(a.Values); i++ {
		if !(a.Values[i] > a.Values[i-1]) {
			return errors.New(errors.ErrCodeInvalidConfig, "values must be strictly ascending (index %d)", i)
		}
	}
	if r := a.Range; r != nil && (!(r.Step > 0) || r.Stop < r.Start) {
		return errors.New(errors.ErrCodeInvalidConfig, "range needs step > 0 and stop >= start")
	}
	if r := a.Range; r != nil {
		if n := axis.RangeCount(r.Start, r.Stop, r.Step); !(n > 0) || n > axis.MaxRangeTicks {
			return errors.New(errors.ErrCodeInvalidConfig, "range must describe 1 to %d ticks", axis.MaxRangeTicks)
		}
	}
	if a.Auto != nil && *a.Auto && (len(a.Values) > 0 || a.Range != nil) {
		return errors.New(errors.ErrCodeInvalidConfig, "auto axes take no values or range")
	}
	if len(a.DecimalSeparator) > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "decimal_separator must be a single byte")
	}
	return nil
}

// Encode writes c back as TOML. The output is stable for equal descriptions
// and serves as the artifact cache key.
func (c *Chart) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode chart description")
	}
	return buf.Bytes(), nil
}

type namedAxis struct {
	name string
	axis *Axis
}

func (a *Axes) slots() [4]namedAxis {
	return [4]namedAxis{{"top", a.Top}, {"left", a.Left}, {"right", a.Right}, {"bottom", a.Bottom}}
}

// parseColor converts "#rrggbb" into a color. Empty strings yield nil.
func parseColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
