package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/chartaxes/pkg/chart/axis"
	"github.com/matzehuels/chartaxes/pkg/chart/geom"
	"github.com/matzehuels/chartaxes/pkg/errors"
)

const minimal = `
[viewport.max]
left = 0
right = 100
bottom = 0
top = 10

[axes.bottom]
`

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]byte(minimal))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Width != DefaultWidth || c.Height != DefaultHeight {
		t.Errorf("size = %gx%g, want defaults", c.Width, c.Height)
	}
	if c.Density != 1 || c.ScaledDensity != 1 || c.Background != DefaultBackground {
		t.Errorf("defaults not applied: %+v", c)
	}
	if c.Axes.Bottom == nil || c.Axes.Left != nil {
		t.Errorf("axes = %+v, want only bottom", c.Axes)
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "latency.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Width != 480 || c.Density != 2 || c.Padding.Left != 4 {
		t.Errorf("frame = %+v", c)
	}
	if c.Viewport.Visible == nil || c.Viewport.Visible.Right != 30 {
		t.Errorf("visible viewport = %+v", c.Viewport.Visible)
	}
	if got := c.Axes.Right.Labels; len(got) != 3 || got[2] != "p99" {
		t.Errorf("right labels = %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
	if _, err := Load(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("empty path: error = %v, want %s", err, errors.ErrCodeInvalidPath)
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("width = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("bad TOML: error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		toml string
		code errors.Code
	}{
		{"negative width", "width = -1\n", errors.ErrCodeInvalidConfig},
		{"negative padding", "[padding]\nleft = -2\n", errors.ErrCodeInvalidConfig},
		{"bad background", "background = \"white\"\n", errors.ErrCodeInvalidConfig},
		{"unknown key", "colour = 1\n", errors.ErrCodeInvalidConfig},
		{"empty visible", "[viewport.visible]\nleft = 5\nright = 5\nbottom = 0\ntop = 1\n", errors.ErrCodeInvalidViewport},
		{"bad text color", "[axes.left]\ntext_color = \"#12\"\n", errors.ErrCodeInvalidColor},
		{"descending values", "[axes.left]\nvalues = [3, 2]\n", errors.ErrCodeInvalidConfig},
		{"too many labels", "[axes.left]\nvalues = [1]\nlabels = [\"a\", \"b\"]\n", errors.ErrCodeInvalidConfig},
		{"values and range", "[axes.top]\nvalues = [1]\nrange = {start = 0, stop = 1, step = 1}\n", errors.ErrCodeInvalidConfig},
		{"zero step", "[axes.top]\nrange = {start = 0, stop = 1, step = 0}\n", errors.ErrCodeInvalidConfig},
		{"too many range ticks", "[axes.bottom]\nrange = {start = 0, stop = 1e12, step = 1e-9}\n", errors.ErrCodeInvalidConfig},
		{"infinite range", "[axes.bottom]\nrange = {start = 0, stop = inf, step = 1}\n", errors.ErrCodeInvalidConfig},
		{"auto with values", "[axes.top]\nauto = true\nvalues = [1]\n", errors.ErrCodeInvalidConfig},
		{"zero text size", "[axes.right]\ntext_size = 0\n", errors.ErrCodeInvalidConfig},
		{"long separator", "[axes.right]\ndecimal_separator = \"::\"\n", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Max viewport first so each case only breaks one thing.
			doc := "[viewport.max]\nleft = 0\nright = 10\nbottom = 0\ntop = 10\n"
			if strings.HasPrefix(tt.toml, "[") {
				doc += tt.toml
			} else {
				doc = tt.toml + doc
			}
			_, err := Parse([]byte(doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v (code %s), want code %s", err, errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestMissingMaxViewport(t *testing.T) {
	_, err := Parse([]byte("width = 100\n"))
	if !errors.Is(err, errors.ErrCodeInvalidViewport) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidViewport)
	}
}

func TestComputator(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "latency.toml"))
	if err != nil {
		t.Fatal(err)
	}

	comp := c.Computator(1.5)
	w, h := comp.ChartSize()
	if w != 720 || h != 480 {
		t.Errorf("ChartSize() = %gx%g, want 720x480", w, h)
	}
	// Padding 4dp at density 2 and scale 1.5.
	want := geom.Rect{Left: 12, Top: 12, Right: 708, Bottom: 468}
	if got := comp.ContentRectMinusAllMargins(); got != want {
		t.Errorf("content = %+v, want %+v", got, want)
	}
	if got := comp.VisibleViewport(); got.Right != 30 || got.Top != 250 {
		t.Errorf("visible = %+v", got)
	}

	c.Viewport.Visible = nil
	if got := c.Computator(1).VisibleViewport(); got.Right != 60 {
		t.Errorf("visible without window = %+v, want max", got)
	}
}

func TestAxisSet(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "latency.toml"))
	if err != nil {
		t.Fatal(err)
	}
	set, err := c.AxisSet()
	if err != nil {
		t.Fatalf("AxisSet() error = %v", err)
	}

	if set.Top != nil {
		t.Error("top axis should be empty")
	}
	if b := set.Bottom; !b.AutoGenerated || !b.HasLines || b.Name != "elapsed (s)" || !b.HasSeparationLine {
		t.Errorf("bottom = %+v", b)
	}
	if l := set.Left; l.MaxLabelChars != 6 {
		t.Errorf("left MaxLabelChars = %d, want 6", l.MaxLabelChars)
	}
	if got := axis.AutoLabel(set.Left.LabelFormatter(), 150, 0); got != "150 ms" {
		t.Errorf("left label = %q, want %q", got, "150 ms")
	}

	r := set.Right
	if r.AutoGenerated || !r.Inside || r.HasSeparationLine {
		t.Errorf("right flags = %+v", r)
	}
	if len(r.Values) != 3 || r.Values[1] != (axis.Value{Value: 100, Label: "p90"}) {
		t.Errorf("right values = %+v", r.Values)
	}
	if r.TextColor != (color.RGBA{R: 0xcc, G: 0x33, B: 0x33, A: 0xff}) {
		t.Errorf("right text color = %v", r.TextColor)
	}
	if r.LineColor != axis.DefaultLineColor {
		t.Errorf("right line color = %v, want default", r.LineColor)
	}
}

func TestAxisBuild(t *testing.T) {
	intp := func(v int) *int { return &v }
	boolp := func(v bool) *bool { return &v }

	tests := []struct {
		name     string
		cfg      Axis
		auto     bool
		values   int
		label    string
		labelFor float64
	}{
		{name: "default auto", cfg: Axis{}, auto: true, label: "2.5", labelFor: 2.5},
		{name: "range", cfg: Axis{Range: &Range{Start: 0, Stop: 1, Step: 0.25}}, values: 5, label: "1", labelFor: 1},
		{name: "explicit off", cfg: Axis{Auto: boolp(false)}, values: 0, label: "3", labelFor: 3},
		{
			name:     "fixed digits and separator",
			cfg:      Axis{DecimalDigits: intp(2), DecimalSeparator: ",", Prepend: "$"},
			auto:     true,
			label:    "$1,50",
			labelFor: 1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.cfg.Build()
			if err != nil {
				t.Fatal(err)
			}
			if a.AutoGenerated != tt.auto || len(a.Values) != tt.values {
				t.Errorf("auto = %v, values = %d; want %v, %d", a.AutoGenerated, len(a.Values), tt.auto, tt.values)
			}
			got := axis.Label(a.LabelFormatter(), axis.Value{Value: tt.labelFor})
			if a.AutoGenerated {
				got = axis.AutoLabel(a.LabelFormatter(), tt.labelFor, 1)
			}
			if got != tt.label {
				t.Errorf("label = %q, want %q", got, tt.label)
			}
		})
	}
}

func TestEncodeStable(t *testing.T) {
	a, err := Load(filepath.Join("testdata", "latency.toml"))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Load(filepath.Join("testdata", "latency.toml"))

	ea, err := a.Encode()
	if err != nil {
		t.Fatal(err)
	}
	eb, _ := b.Encode()
	if string(ea) != string(eb) {
		t.Error("Encode should be deterministic")
	}

	b.Axes.Left.Name = "other"
	eb, _ = b.Encode()
	if string(ea) == string(eb) {
		t.Error("Encode should change with the description")
	}

	back, err := Parse(ea)
	if err != nil {
		t.Fatalf("re-parse encoded description: %v", err)
	}
	if back.Axes.Right.Labels[0] != "p50" {
		t.Errorf("round trip lost labels: %+v", back.Axes.Right)
	}
}

func TestBackgroundColor(t *testing.T) {
	c := &Chart{Background: "#000000"}
	bg, err := c.BackgroundColor()
	if err != nil || bg != (color.RGBA{A: 0xff}) {
		t.Errorf("BackgroundColor() = %v, %v", bg, err)
	}
	c.Background = ""
	if bg, _ := c.BackgroundColor(); bg != color.White {
		t.Errorf("empty background = %v, want white", bg)
	}
}
