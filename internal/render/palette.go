package render

import (
	"github.com/huangsam/gitplots/schema"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// paletteShades holds sequential shades per palette, darkest first.
var paletteShades = map[schema.Palette][]string{
	schema.BluesPalette:   {"08306b", "08519c", "2171b5", "4292c6", "6baed6", "9ecae1", "c6dbef"},
	schema.RedsPalette:    {"67000d", "a50f15", "cb181d", "ef3b2c", "fb6a4a", "fc9272", "fcbba1"},
	schema.GreensPalette:  {"00441b", "006d2c", "238b45", "41ab5d", "74c476", "a1d99b", "c7e9c0"},
	schema.PurplesPalette: {"3f007d", "54278f", "6a51a3", "807dba", "9e9ac8", "bcbddc", "dadaeb"},
	schema.OrangesPalette: {"7f2704", "a63603", "d94801", "f16913", "fd8d3c", "fdae6b", "fdd0a2"},
	schema.GreysPalette:   {"000000", "252525", "525252", "737373", "969696", "bdbdbd", "d9d9d9"},
}

// shade returns the color for the i-th of n repositories in a palette.
// Shades are spread across the palette so few repositories still contrast.
func shade(p schema.Palette, i, n int) drawing.Color {
	shades, ok := paletteShades[p]
	if !ok {
		shades = paletteShades[schema.GreysPalette]
	}
	if n <= 1 {
		return drawing.ColorFromHex(shades[len(shades)/2])
	}
	pos := i * (len(shades) - 1) / (n - 1)
	if n > len(shades) {
		pos = i % len(shades)
	}
	return drawing.ColorFromHex(shades[pos])
}

// paletteFor picks the palette of the i-th category, cycling when there are
// more categories than palettes.
func paletteFor(palettes []schema.Palette, i int) schema.Palette {
	if len(palettes) == 0 {
		return schema.DefaultPalettes[i%len(schema.DefaultPalettes)]
	}
	return palettes[i%len(palettes)]
}
