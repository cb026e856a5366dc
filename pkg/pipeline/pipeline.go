// Package pipeline renders chart descriptions into output artifacts.
//
// A run has two stages:
//
//  1. Layout: build the computator and axes from a [config.Chart] and let the
//     axes renderer measure labels and inset the content rectangle
//  2. Render: prepare the visible ticks and draw a frame per output format
//     (SVG, PNG, PDF, JSON)
//
// Artifacts are cached by a hash of the chart description, so re-running an
// unchanged chart skips both stages.
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), logger)
//	result, err := runner.Execute(ctx, chart, pipeline.Options{Formats: []string{"svg"}})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"slices"
	"time"

	"github.com/matzehuels/chartaxes/pkg/errors"
)

const (
	// DefaultScale is the raster scale factor for PNG output (2x resolution).
	DefaultScale = 2.0

	// MaxScale bounds the PNG scale factor.
	MaxScale = 8.0

	// DefaultCacheTTL is how long rendered artifacts stay cached.
	DefaultCacheTTL = 7 * 24 * time.Hour
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// SupportedFormats lists every output format in render order.
var SupportedFormats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// Options controls one pipeline run.
type Options struct {
	// Formats to produce; empty means SVG only.
	Formats []string
	// Scale multiplies the frame size and densities of PNG output.
	Scale float64
	// Refresh ignores cached artifacts (they are still rewritten).
	Refresh bool
}

// ValidateAndSetDefaults checks the options and fills defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	seen := make(map[string]bool, len(o.Formats))
	formats := o.Formats[:0:0]
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f, SupportedFormats); err != nil {
			return err
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	slices.SortFunc(formats, func(a, b string) int {
		return slices.Index(SupportedFormats, a) - slices.Index(SupportedFormats, b)
	})
	o.Formats = formats

	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if !(o.Scale > 0) || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be in (0, %g], got %g", MaxScale, o.Scale)
	}
	return nil
}

// scaleFor returns the scale a format is laid out at. Only PNG is raster.
func (o *Options) scaleFor(format string) float64 {
	if format == FormatPNG {
		return o.Scale
	}
	return 1
}

// Result holds the artifacts and timings of one run.
type Result struct {
	// ChartHash identifies the chart description; artifact cache keys derive
	// from it.
	ChartHash string
	// Artifacts maps each requested format to its bytes.
	Artifacts map[string][]byte
	Stats     Stats
}

// Stats reports where a run spent its time.
type Stats struct {
	LayoutTime  time.Duration
	RenderTime  time.Duration
	CacheHits   int
	CacheMisses int
}
