package sink

import (
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// paint converts c into an SVG color and opacity. Fully transparent colors
// become "none".
func paint(c color.Color) (hex string, opacity float64) {
	if c == nil {
		return "none", 0
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "none", 0
	}
	_, _, _, a := c.RGBA()
	return cf.Hex(), float64(a) / 0xffff
}

// paintAttrs renders the color attribute named attr and, for translucent
// colors, its matching opacity attribute.
func paintAttrs(attr string, c color.Color) string {
	hex, opacity := paint(c)
	out := attr + `="` + hex + `"`
	if hex != "none" && opacity < 1 {
		out += " " + attr + `-opacity="` + strconv.FormatFloat(opacity, 'f', 3, 64) + `"`
	}
	return out
}
