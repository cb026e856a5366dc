// Package sink draws prepared chart axes into concrete output formats.
//
// Each sink implements [axes.Canvas]:
//
//   - [SVG] writes vector markup into a buffer
//   - [PNG] rasterizes with fogleman/gg and the embedded Go Regular font
//
// [RenderPDF] converts finished SVG through rsvg-convert, and [RenderJSON]
// exports the per-slot tick selections of a frame for inspection and tests.
//
// A typical frame:
//
//	svg := sink.NewSVG(width, height, sink.WithStrokeWidth(2))
//	r.DrawInBackground(svg)
//	// ... series ...
//	r.DrawInForeground(svg)
//	out := svg.Bytes()
package sink
