package ampl

// Style is the house style sheet applied to a Figure: colors, font sizes,
// line widths and tick geometry. It is an explicit configuration object
// threaded through figure construction; there is no process-global style
// state, and a Style affects rendering only, never the numeric results of
// Stack or ComputeRatio.
//
// Presets return a fresh value each call, so callers may tweak fields
// freely without affecting other figures.
type Style struct {
	// Background and Foreground color the figure canvas and the frame,
	// ticks, labels and default text.
	Background RGBA
	Foreground RGBA

	// FontSize is the base text size in pixels. AxisLabelSize and
	// ExperimentLabelSize scale the axis labels and the experiment label.
	FontSize            float64
	AxisLabelSize       float64
	ExperimentLabelSize float64

	// LineWidth is the default stroke width for histogram outlines and
	// error bars.
	LineWidth float64

	// TickLength and MinorTickLength are in pixels. MinorTicks enables
	// minor tick marks between major ones.
	TickLength      float64
	MinorTickLength float64
	MinorTicks      bool

	// MarkerSize is the radius of data points in pixels.
	MarkerSize float64

	// ExperimentLabel replaces "ATLAS" in the experiment label.
	ExperimentLabel string

	// LegendFrame draws a background box behind the legend.
	LegendFrame bool

	// Palette is the color cycle assigned to histograms drawn without an
	// explicit color.
	Palette []RGBA
}

// defaultDPI is the resolution all style sizes are tuned for.
const defaultDPI = 96.0

// scaled returns a copy of the style with every size multiplied by f.
func (s *Style) scaled(f float64) *Style {
	c := *s
	c.FontSize *= f
	c.AxisLabelSize *= f
	c.ExperimentLabelSize *= f
	c.LineWidth *= f
	c.TickLength *= f
	c.MinorTickLength *= f
	c.MarkerSize *= f
	return &c
}

// AtlasStyle returns the standard publication style: white background,
// black frame, Petroff color cycle, minor ticks on.
func AtlasStyle() *Style {
	return &Style{
		Background:          White,
		Foreground:          Black,
		FontSize:            14,
		AxisLabelSize:       16,
		ExperimentLabelSize: 18,
		LineWidth:           1,
		TickLength:          8,
		MinorTickLength:     4,
		MinorTicks:          true,
		MarkerSize:          3.5,
		ExperimentLabel:     "ATLAS",
		Palette:             PalettePetroff(6),
	}
}

// PaperStyle returns a light gray style matched to printed paper.
func PaperStyle() *Style {
	s := AtlasStyle()
	s.Background = MustColor("paper:bg")
	s.Foreground = MustColor("paper:fg")
	s.Palette = PalettePaper()
	return s
}

// OceanicStyle returns a dark style based on the Oceanic Next scheme,
// intended for slides.
func OceanicStyle() *Style {
	s := AtlasStyle()
	s.Background = MustColor("on:bg")
	s.Foreground = MustColor("on:fg")
	s.Palette = PaletteOceanic()
	return s
}
