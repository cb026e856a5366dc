// Package pkg provides the libraries behind chartaxes, an axes renderer for
// two-dimensional charts.
//
// # Overview
//
// Chartaxes decides how much room each of a chart's four axes needs, which
// tick values are worth drawing for the current zoom, and where every label,
// gridline and axis name goes. The pkg directory is organized into:
//
//  1. [chart] - Layout math (tick generation, viewports, the axes renderer)
//  2. [render] - Canvases and converters (SVG, PNG, PDF, JSON)
//  3. [pipeline] - Orchestration (config → layout → render) with caching
//  4. Support - [config], [cache], [fonts], [errors], [observability]
//
// # Architecture
//
//	TOML chart description
//	         ↓
//	    [config] package (decode, validate, build axes)
//	         ↓
//	    [chart/axes] Layout (measure labels, inset content rect)
//	         ↓
//	    [chart/axes] Prepare (select visible ticks, fix label positions)
//	         ↓
//	    [render/sink] canvases
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
//	comp := computator.New()
//	comp.SetContentRect(640, 400, 8, 8, 8, 8)
//	comp.SetMaxViewport(geom.Viewport{Left: 0, Top: 100, Right: 60, Bottom: 0})
//	comp.SetCurrentViewport(geom.Viewport{Left: 0, Top: 100, Right: 30, Bottom: 0})
//
//	m, _ := fonts.NewMeasurer()
//	r := axes.New(comp, &axes.Set{Left: axis.New(), Bottom: axis.New()}, m)
//	r.Layout()
//
//	svg := sink.NewSVG(640, 400)
//	r.DrawInBackground(svg)
//	// draw series here
//	r.DrawInForeground(svg)
//
// # Main Packages
//
// [chart/ticks] - Nice tick values (1, 2, 2.5 and 5 times a power of ten)
// covering a range, with the decimals needed to print them.
//
// [chart/axes] - The axes renderer. Layout runs when the chart size or data
// changes; Prepare and the two draw passes run every frame and do not
// allocate once buffers have grown.
//
// [pipeline] - Complete run used by the CLI: builds a frame per output scale,
// renders every requested format and caches artifacts by chart hash.
//
// # Testing
//
//	go test ./pkg/...               # All tests
//	go test ./pkg/chart/axes/...    # Specific package
//	go test -run Example ./pkg/...  # Examples only
//
// [chart]: https://pkg.go.dev/github.com/matzehuels/chartaxes/pkg/chart
// [chart/ticks]: https://pkg.go.dev/github.com/matzehuels/chartaxes/pkg/chart/ticks
// [chart/axes]: https://pkg.go.dev/github.com/matzehuels/chartaxes/pkg/chart/axes
// [render]: https://pkg.go.dev/github.com/matzehuels/chartaxes/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/chartaxes/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chartaxes/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/chartaxes/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/chartaxes/pkg/cache
// [fonts]: https://pkg.go.dev/github.com/matzehuels/chartaxes/pkg/fonts
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartaxes/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/chartaxes/pkg/observability
package pkg
