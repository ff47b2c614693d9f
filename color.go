package ampl

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components, each
// in the range [0, 1]. The zero value is fully transparent black, which the
// plotting calls treat as "no color set": such histograms get their color
// from the figure's cycle.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// IsZero reports whether the color is unset.
func (c RGBA) IsZero() bool {
	return c == RGBA{}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// RGB creates an opaque color from RGB components in [0, 1].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Gray creates an opaque gray with the given lightness in [0, 1].
func Gray(l float64) RGBA {
	return RGBA{R: l, G: l, B: l, A: 1}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Invalid input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return RGBA{R: 0, G: 0, B: 0, A: 1}
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		}
	}
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)

// namedColors is the house color table. Names are namespaced by palette:
// "petroff:blue", "paper:red", "on:bg" (Oceanic Next), "series:cyan",
// "hdbs:spacecadet", "hh:darkpink", "tab:blue" (the matplotlib default
// cycle, kept for familiarity).
var namedColors = map[string]RGBA{
	"petroff:blue":      Hex("3f90da"),
	"petroff:orange":    Hex("ffa90e"),
	"petroff:red":       Hex("bd1f01"),
	"petroff:gray":      Hex("94a4a2"),
	"petroff:purple":    Hex("832db6"),
	"petroff:brown":     Hex("a96b59"),
	"petroff:orange2":   Hex("e76300"),
	"petroff:tan":       Hex("b9ac70"),
	"petroff:gray2":     Hex("717581"),
	"petroff:lightBlue": Hex("92dadd"),

	"paper:bg":        Hex("eeeeee"),
	"paper:fg":        Hex("444444"),
	"paper:bgAlt":     Hex("e4e4e4"),
	"paper:red":       Hex("af0000"),
	"paper:green":     Hex("008700"),
	"paper:blue":      Hex("005f87"),
	"paper:yellow":    Hex("afaf00"),
	"paper:orange":    Hex("d75f00"),
	"paper:pink":      Hex("d70087"),
	"paper:purple":    Hex("8700af"),
	"paper:lightBlue": Hex("0087af"),
	"paper:olive":     Hex("5f7800"),

	"on:bg":     Hex("1b2b34"),
	"on:fg":     Hex("cdd3de"),
	"on:bgAlt":  Hex("343d46"),
	"on:fgAlt":  Hex("d8dee9"),
	"on:red":    Hex("ec5f67"),
	"on:orange": Hex("f99157"),
	"on:yellow": Hex("fac863"),
	"on:green":  Hex("99c794"),
	"on:cyan":   Hex("5fb3b3"),
	"on:blue":   Hex("6699cc"),
	"on:pink":   Hex("c594c5"),
	"on:brown":  Hex("ab7967"),

	"series:cyan":      Hex("54c9d1"),
	"series:orange":    Hex("eca89a"),
	"series:blue":      Hex("95bced"),
	"series:olive":     Hex("ceb776"),
	"series:purple":    Hex("d3a9ea"),
	"series:green":     Hex("9bc57f"),
	"series:pink":      Hex("f0a1ca"),
	"series:turquoise": Hex("5fcbaa"),

	"atlas:onesigma": Hex("00ff26"),
	"atlas:twosigma": Hex("fbff1f"),

	"hdbs:starcommandblue":  Hex("047cbc"),
	"hdbs:spacecadet":       Hex("283044"),
	"hdbs:mintcream":        Hex("ebf5ee"),
	"hdbs:outrageousorange": Hex("fa7e61"),
	"hdbs:pictorialcarmine": Hex("ca1551"),
	"hdbs:maroonX11":        Hex("b8336a"),

	"hh:darkpink":       Hex("f2385a"),
	"hh:darkblue":       Hex("343844"),
	"hh:medturquoise":   Hex("36b1bf"),
	"hh:lightturquoise": Hex("4ad9d9"),
	"hh:offwhite":       Hex("e9f1df"),
	"hh:darkyellow":     Hex("fdc536"),
	"hh:darkgreen":      Hex("125125"),

	"tab:blue":   Hex("1f77b4"),
	"tab:orange": Hex("ff7f0e"),
	"tab:green":  Hex("2ca02c"),
	"tab:red":    Hex("d62728"),
	"tab:purple": Hex("9467bd"),
	"tab:brown":  Hex("8c564b"),
	"tab:pink":   Hex("e377c2"),
	"tab:gray":   Hex("7f7f7f"),
	"tab:olive":  Hex("bcbd22"),
	"tab:cyan":   Hex("17becf"),

	"transparent": {},
}

// ColorNamed looks up a color from the house table by its namespaced name,
// e.g. "paper:red".
func ColorNamed(name string) (RGBA, bool) {
	c, ok := namedColors[name]
	return c, ok
}

// MustColor looks up a named color and panics if the name is unknown.
// Intended for palette literals and package-level setup.
func MustColor(name string) RGBA {
	c, ok := namedColors[name]
	if !ok {
		panic("ampl: unknown color name " + name)
	}
	return c
}
