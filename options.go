package ampl

import "github.com/gogpu/gg"

// FigureOption configures a Figure during creation.
// Use functional options to customize Figure behavior.
//
// Example:
//
//	// Default ATLAS style
//	fig := ampl.NewFigure(800, 800)
//
//	// Dark style for slides
//	fig := ampl.NewFigure(800, 800, ampl.WithStyle(ampl.OceanicStyle()))
type FigureOption func(*figureOptions)

// figureOptions holds optional configuration for Figure creation.
type figureOptions struct {
	style   *Style
	context *gg.Context
	palette []RGBA
	dpi     float64
}

// defaultFigureOptions returns the default figure options.
func defaultFigureOptions() figureOptions {
	return figureOptions{
		style:   nil, // AtlasStyle() if nil
		context: nil, // created by NewFigure if nil
	}
}

// WithStyle sets the style sheet for the figure. The Figure keeps the
// pointer, so later changes to the Style affect subsequent draw calls on
// this figure only.
func WithStyle(s *Style) FigureOption {
	return func(o *figureOptions) {
		o.style = s
	}
}

// WithContext renders the figure onto an existing gg drawing context
// instead of creating one. Use this for dependency injection of a
// GPU-backed or shared context. The context dimensions should match the
// figure dimensions.
func WithContext(ctx *gg.Context) FigureOption {
	return func(o *figureOptions) {
		o.context = ctx
	}
}

// WithPalette overrides the style's color cycle for histograms drawn
// without an explicit color.
func WithPalette(colors []RGBA) FigureOption {
	return func(o *figureOptions) {
		o.palette = colors
	}
}

// WithDPI scales text sizes, line widths and tick lengths relative to the
// default of 96 DPI. The canvas pixel dimensions are unchanged; pair a
// higher DPI with a larger canvas for print-resolution output.
func WithDPI(dpi float64) FigureOption {
	return func(o *figureOptions) {
		o.dpi = dpi
	}
}
