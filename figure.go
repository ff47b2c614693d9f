package ampl

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Figure is a drawing surface with a style sheet and one or more Axes.
// It wraps a gg drawing context; all rendering goes through that context,
// while the numeric core (Stack, ComputeRatio) stays renderer-free.
type Figure struct {
	ctx    *gg.Context
	style  *Style
	cycle  *Cycle
	width  int
	height int
	axes   []*Axes
}

// Figure margins as fractions of the canvas, tuned so right-aligned axis
// labels and the experiment label fit.
const (
	marginLeft   = 0.14
	marginRight  = 0.05
	marginTop    = 0.06
	marginBottom = 0.11
)

// NewFigure creates a figure of the given pixel dimensions, clears it with
// the style background, and prepares the color cycle.
func NewFigure(width, height int, opts ...FigureOption) *Figure {
	o := defaultFigureOptions()
	for _, opt := range opts {
		opt(&o)
	}
	style := o.style
	if style == nil {
		style = AtlasStyle()
	}
	if o.dpi > 0 && o.dpi != defaultDPI {
		style = style.scaled(o.dpi / defaultDPI)
	}
	ctx := o.context
	if ctx == nil {
		ctx = gg.NewContext(width, height)
	}
	palette := o.palette
	if palette == nil {
		palette = style.Palette
	}

	f := &Figure{
		ctx:    ctx,
		style:  style,
		cycle:  NewCycle(palette),
		width:  width,
		height: height,
	}
	ctx.ClearWithColor(toGG(style.Background))
	return f
}

// Context exposes the underlying gg drawing context for custom drawing on
// top of the plots.
func (f *Figure) Context() *gg.Context { return f.ctx }

// Style returns the figure's style sheet.
func (f *Figure) Style() *Style { return f.style }

// Width returns the canvas width in pixels.
func (f *Figure) Width() int { return f.width }

// Height returns the canvas height in pixels.
func (f *Figure) Height() int { return f.height }

// NextColor returns the next color from the figure's cycle. Plot calls use
// it for histograms without an explicit color.
func (f *Figure) NextColor() RGBA { return f.cycle.Next() }

// SavePNG writes the rendered figure to a PNG file.
func (f *Figure) SavePNG(path string) error {
	if err := f.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("ampl: saving figure: %w", err)
	}
	Logger().Debug("ampl: figure saved", "path", path)
	return nil
}

// Axes creates a single full-figure axes inside the standard margins.
func (f *Figure) Axes() *Axes {
	w, h := float64(f.width), float64(f.height)
	a := f.newAxes(
		marginLeft*w, marginTop*h,
		(1-marginRight)*w, (1-marginBottom)*h,
	)
	a.labelBottom = true
	return a
}

// RatioAxes creates a figure split into a main axes and one ratio axes
// below it sharing the x axis, in the usual 3:1 height ratio with no gap.
// The main axes suppresses its x tick labels.
func RatioAxes(width, height int, opts ...FigureOption) (*Figure, *Axes, *Axes) {
	fig, main, lower := RatioAxesExtra(width, height, 1, opts...)
	return fig, main, lower[0]
}

// RatioAxesExtra is RatioAxes with extra ratio panes: the main axes keeps
// three height units and each of the n lower panes gets one. Only the
// bottom pane draws x tick labels.
func RatioAxesExtra(width, height, extra int, opts ...FigureOption) (*Figure, *Axes, []*Axes) {
	if extra < 1 {
		extra = 1
	}
	f := NewFigure(width, height, opts...)
	w, h := float64(width), float64(height)
	x0 := marginLeft * w
	x1 := (1 - marginRight) * w
	top := marginTop * h
	bottom := (1 - marginBottom) * h
	unit := (bottom - top) / float64(3+extra)

	main := f.newAxes(x0, top, x1, top+3*unit)
	main.labelBottom = false

	lower := make([]*Axes, extra)
	for i := 0; i < extra; i++ {
		a := f.newAxes(x0, top+float64(3+i)*unit, x1, top+float64(4+i)*unit)
		a.main = main
		a.labelBottom = i == extra-1
		lower[i] = a
	}
	Logger().Debug("ampl: ratio layout",
		"main_height", 3*unit, "pane_height", unit, "panes", extra)
	return f, main, lower
}

func (f *Figure) newAxes(x0, y0, x1, y1 float64) *Axes {
	a := &Axes{
		fig: f,
		x0:  x0, y0: y0, x1: x1, y1: y1,
	}
	f.axes = append(f.axes, a)
	return a
}

// toGG converts an ampl color to the backend's color type.
func toGG(c RGBA) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// stroke and fill run the backend operations and report failures through
// the logger; a failed primitive leaves a gap in the plot but never aborts
// the plotting call.
func (f *Figure) stroke() {
	f.ctx.Stroke()
}

func (f *Figure) fill() {
	f.ctx.Fill()
}
