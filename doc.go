// Package ampl provides particle-physics plotting in the ATLAS house style
// on top of the gg 2D graphics library.
//
// # Overview
//
// ampl has two layers. The numeric core (Histogram, Stack, ComputeRatio,
// Significance) turns pre-binned histogram data into stacked bin heights
// and ratio series with propagated statistical uncertainties. It is pure,
// synchronous, and renderer-free. The rendering layer (Figure, Axes and
// the Plot* functions) draws those arrays through a gg context using the
// house style sheets, color palettes and label conventions.
//
// # Quick Start
//
//	bkg1, _ := ampl.NewHistogram(edges, ttbar, nil)
//	bkg2, _ := ampl.NewHistogram(edges, wjets, nil)
//	obs, _ := ampl.NewHistogram(edges, data, nil)
//
//	fig, main, ratio := ampl.RatioAxes(800, 800)
//	total, totalErr, _ := ampl.PlotBackgrounds(main, []ampl.Background{
//	    {Label: "ttbar", Hist: bkg1},
//	    {Label: "W+jets", Hist: bkg2},
//	})
//	ampl.PlotData(main, obs, "Data", ampl.RGBA{})
//
//	denomVar := make([]float64, len(totalErr))
//	for i, e := range totalErr {
//	    denomVar[i] = e * e
//	}
//	ampl.PlotRatio(ratio, obs, total, denomVar, ampl.ModeRatio, 0)
//	main.DrawFrame()
//	ratio.DrawFrame()
//	main.DrawLegend(ampl.LegendUpperRight)
//	fig.SavePNG("dist.png")
//
// # Data Model
//
// All histograms are pre-binned: N+1 strictly increasing bin edges, N bin
// values, N variances. Inputs without variances get Poisson defaults.
// Everything participating in one plot must share identical bin edges;
// combining operations verify this and fail with ErrIncompatibleBinning.
// Constructors copy their inputs, so callers can reuse their buffers.
//
// # Styles
//
// A Style is an explicit configuration object attached to a Figure; there
// is no global style state. AtlasStyle is the publication default;
// PaperStyle and OceanicStyle match print and slide backgrounds. Styles
// affect rendering only, never numeric results.
//
// # Logging
//
// ampl is silent by default. Call SetLogger to receive diagnostics about
// layout geometry and non-fatal rendering problems.
package ampl
