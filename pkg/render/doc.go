// Package render converts finished SVG charts into other document formats.
//
// [ToPDF] shells out to rsvg-convert from librsvg, which must be on PATH.
// Raster output does not go through here: the [sink] package draws PNG
// frames directly with fogleman/gg at the target pixel density.
//
//	pdf, err := render.ToPDF(svg)
package render
