package ampl

// Palettes for color cycling. PalettePetroff picks the variant tuned for the
// number of histograms on the plot; the fixed palettes below mirror the
// house style sheets.

// PalettePetroff returns the Petroff palette sized for n histograms: the
// 6-color variant for n <= 6, the 8-color variant for n <= 8, and the
// 10-color variant otherwise. The 6- and 8-color variants are perceptually
// re-tuned sets, not prefixes of the 10-color one.
func PalettePetroff(n int) []RGBA {
	switch {
	case n <= 6:
		return []RGBA{
			RGB(87.0/255, 144.0/255, 252.0/255),
			RGB(248.0/255, 156.0/255, 32.0/255),
			RGB(228.0/255, 37.0/255, 54.0/255),
			RGB(150.0/255, 74.0/255, 139.0/255),
			RGB(156.0/255, 156.0/255, 161.0/255),
			RGB(122.0/255, 33.0/255, 221.0/255),
		}
	case n <= 8:
		return []RGBA{
			RGB(24.0/255, 69.0/255, 251.0/255),
			RGB(255.0/255, 94.0/255, 2.0/255),
			RGB(201.0/255, 31.0/255, 22.0/255),
			RGB(200.0/255, 73.0/255, 169.0/255),
			RGB(173.0/255, 173.0/255, 125.0/255),
			RGB(134.0/255, 200.0/255, 221.0/255),
			RGB(87.0/255, 141.0/255, 255.0/255),
			RGB(101.0/255, 99.0/255, 100.0/255),
		}
	default:
		return []RGBA{
			MustColor("petroff:blue"),
			MustColor("petroff:orange"),
			MustColor("petroff:red"),
			MustColor("petroff:gray"),
			MustColor("petroff:purple"),
			MustColor("petroff:brown"),
			MustColor("petroff:orange2"),
			MustColor("petroff:tan"),
			MustColor("petroff:gray2"),
			MustColor("petroff:lightBlue"),
		}
	}
}

// PalettePaper is the light print-friendly palette.
func PalettePaper() []RGBA {
	return []RGBA{
		MustColor("paper:green"),
		MustColor("paper:red"),
		MustColor("paper:blue"),
		MustColor("paper:orange"),
		MustColor("paper:purple"),
		MustColor("paper:yellow"),
		MustColor("paper:lightBlue"),
		MustColor("paper:olive"),
	}
}

// PaletteOceanic is the dark Oceanic Next palette.
func PaletteOceanic() []RGBA {
	return []RGBA{
		MustColor("on:green"),
		MustColor("on:red"),
		MustColor("on:blue"),
		MustColor("on:cyan"),
		MustColor("on:orange"),
		MustColor("on:pink"),
		MustColor("on:yellow"),
	}
}

// PaletteMPL is the classic matplotlib tab10 cycle.
func PaletteMPL() []RGBA {
	return []RGBA{
		MustColor("tab:blue"),
		MustColor("tab:orange"),
		MustColor("tab:green"),
		MustColor("tab:red"),
		MustColor("tab:purple"),
		MustColor("tab:brown"),
		MustColor("tab:pink"),
		MustColor("tab:gray"),
		MustColor("tab:olive"),
		MustColor("tab:cyan"),
	}
}

// PaletteHDBS is the HDBS analysis palette.
func PaletteHDBS() []RGBA {
	return []RGBA{
		MustColor("hdbs:starcommandblue"),
		MustColor("hdbs:spacecadet"),
		MustColor("hdbs:maroonX11"),
		MustColor("hdbs:outrageousorange"),
		MustColor("hdbs:pictorialcarmine"),
	}
}

// PaletteHH is the HH analysis palette.
func PaletteHH() []RGBA {
	return []RGBA{
		MustColor("hh:darkblue"),
		MustColor("hh:darkpink"),
		MustColor("hh:darkyellow"),
		MustColor("hh:medturquoise"),
	}
}

// PaletteSeries is the pastel series palette.
func PaletteSeries() []RGBA {
	return []RGBA{
		MustColor("series:cyan"),
		MustColor("series:orange"),
		MustColor("series:blue"),
		MustColor("series:olive"),
		MustColor("series:purple"),
		MustColor("series:green"),
		MustColor("series:pink"),
		MustColor("series:turquoise"),
	}
}

// Cycle hands out palette colors for histograms drawn without an explicit
// color. It wraps around when exhausted. Not safe for concurrent use; each
// Figure owns its own cycle.
type Cycle struct {
	colors []RGBA
	next   int
}

// NewCycle creates a Cycle over the given palette. An empty palette falls
// back to the 10-color Petroff set.
func NewCycle(colors []RGBA) *Cycle {
	if len(colors) == 0 {
		colors = PalettePetroff(10)
	}
	return &Cycle{colors: append([]RGBA(nil), colors...)}
}

// Next returns the next color in the cycle.
func (c *Cycle) Next() RGBA {
	col := c.colors[c.next%len(c.colors)]
	c.next++
	return col
}

// Reset rewinds the cycle to its first color.
func (c *Cycle) Reset() {
	c.next = 0
}
