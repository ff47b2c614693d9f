package ampl

import (
	"fmt"
	"math"
)

// Uncertainty band legend labels shared by PlotBackgrounds and PlotSignal.
const (
	statLabel = "Stat. Uncertainty"
	systLabel = "Stat. ⊕ Syst. Unc."
)

// PlotBackgrounds stacks the given backgrounds in order (bottom to top) and
// draws them as filled step regions, followed by the total uncertainty
// bands: a solid gray band for stat ⊕ syst when any background carries
// systematics, and a hatched band for the statistical component.
//
// Backgrounds without an explicit color get the next color from the
// figure's cycle. If the axes limits are unset, the x limits adopt the bin
// range and the y limits [0, 1.4 * max(total + error)] to leave space for
// labels and the legend.
//
// Returns the total background histogram and its total per-bin error, the
// pair PlotRatio expects as denominator.
func PlotBackgrounds(a *Axes, bkgs []Background) (total, totalErr []float64, err error) {
	assigned := append([]Background(nil), bkgs...)
	for i := range assigned {
		if assigned[i].Color.IsZero() {
			assigned[i].Color = a.fig.NextColor()
		}
	}
	s, err := Stack(assigned)
	if err != nil {
		return nil, nil, err
	}
	total = s.TotalValues()
	totalErr = s.TotalErrors()
	statErr := sqrtAll(s.TotalStatVariance())

	a.ensureXLim(s.Edges[0], s.Edges[len(s.Edges)-1])
	maxTop := 0.0
	for i := range total {
		if v := total[i] + totalErr[i]; v > maxTop {
			maxTop = v
		}
	}
	a.ensureYLim(0, 1.4*maxTop)

	ctx := a.fig.ctx
	st := a.fig.style
	restore := a.clipToAxes()
	for _, layer := range s.Layers {
		a.bandPath(s.Edges, layer.Bottom, layer.Values)
		ctx.SetColor(layer.Color.Color())
		a.fig.fill()
		a.bandPath(s.Edges, layer.Bottom, layer.Values)
		ctx.SetColor(st.Foreground.Color())
		ctx.SetLineWidth(st.LineWidth)
		a.fig.stroke()
		a.addLegendEntry(layer.Label, layer.Color, legendFill)
	}
	restore()

	if s.HasSyst() {
		band := Gray(0.5).WithAlpha(0.5)
		if err := a.Band(s.Edges, subArr(total, totalErr), addArr(total, totalErr), band); err != nil {
			return nil, nil, err
		}
		a.addLegendEntry(systLabel, band, legendSolidBand)
	}
	if anyNonzero(statErr) {
		if err := a.HatchBand(s.Edges, subArr(total, statErr), addArr(total, statErr), st.Foreground); err != nil {
			return nil, nil, err
		}
		a.addLegendEntry(statLabel, st.Foreground, legendHatchBand)
	}
	return total, totalErr, nil
}

// PlotData draws a histogram as points with vertical error bars at the bin
// centers, the house rendering of observed data. An unset color defaults to
// the style foreground, an empty label to "Data".
//
// Returns the bin values and statistical errors, convenient as the
// numerator inputs of a later ratio pane.
func PlotData(a *Axes, h Histogram, label string, col RGBA) (values, errs []float64, err error) {
	if h.NBins() == 0 {
		return nil, nil, fmt.Errorf("%w: empty data histogram", ErrShapeMismatch)
	}
	if label == "" {
		label = "Data"
	}
	st := a.fig.style
	if col.IsZero() {
		col = st.Foreground
	}
	errs = h.Errors()

	a.ensureXLim(h.Edges[0], h.Edges[len(h.Edges)-1])
	maxTop := 0.0
	for i, v := range h.Values {
		if t := v + errs[i]; t > maxTop {
			maxTop = t
		}
	}
	a.ensureYLim(0, 1.4*maxTop)

	ctx := a.fig.ctx
	restore := a.clipToAxes()
	defer restore()
	ctx.SetColor(col.Color())
	ctx.SetLineWidth(st.LineWidth)
	for i, c := range h.Edges.Centers() {
		x := a.PX(c)
		if errs[i] > 0 {
			ctx.DrawLine(x, a.PY(h.Values[i]-errs[i]), x, a.PY(h.Values[i]+errs[i]))
			a.fig.stroke()
		}
		ctx.DrawCircle(x, a.PY(h.Values[i]), st.MarkerSize)
		a.fig.fill()
	}
	a.addLegendEntry(label, col, legendMarker)
	return append([]float64(nil), h.Values...), errs, nil
}

// PlotSignal draws a signal histogram as an unfilled step outline with a
// translucent total-uncertainty band and a hatched statistical band.
// systErrs is an optional array of absolute per-bin systematic errors.
func PlotSignal(a *Axes, h Histogram, label string, systErrs []float64, col RGBA) error {
	n := h.NBins()
	if systErrs != nil && len(systErrs) != n {
		return fmt.Errorf("%w: %d syst errors for %d bins", ErrShapeMismatch, len(systErrs), n)
	}
	if col.IsZero() {
		col = a.fig.NextColor()
	}
	statErr := h.Errors()
	totalErr := make([]float64, n)
	for i := range totalErr {
		se := 0.0
		if systErrs != nil {
			se = systErrs[i]
		}
		totalErr[i] = math.Sqrt(statErr[i]*statErr[i] + se*se)
	}

	a.ensureXLim(h.Edges[0], h.Edges[len(h.Edges)-1])
	maxTop := 0.0
	for i, v := range h.Values {
		if t := v + totalErr[i]; t > maxTop {
			maxTop = t
		}
	}
	a.ensureYLim(0, 1.4*maxTop)

	if anyNonzero(totalErr) {
		if err := a.Band(h.Edges, subArr(h.Values, totalErr), addArr(h.Values, totalErr), col.WithAlpha(0.25)); err != nil {
			return err
		}
	}
	if anyNonzero(statErr) {
		if err := a.HatchBand(h.Edges, subArr(h.Values, statErr), addArr(h.Values, statErr), col); err != nil {
			return err
		}
	}
	a.strokeStep(h.Edges, h.Values, col)
	a.addLegendEntry(label, col, legendLine)
	return nil
}

// Plot1D draws a single histogram as a step outline with a translucent
// statistical error band.
func Plot1D(a *Axes, h Histogram, label string, col RGBA) error {
	if h.NBins() == 0 {
		return fmt.Errorf("%w: empty histogram", ErrShapeMismatch)
	}
	if col.IsZero() {
		col = a.fig.NextColor()
	}
	statErr := h.Errors()

	a.ensureXLim(h.Edges[0], h.Edges[len(h.Edges)-1])
	maxTop := 0.0
	for i, v := range h.Values {
		if t := v + statErr[i]; t > maxTop {
			maxTop = t
		}
	}
	a.ensureYLim(0, 1.4*maxTop)

	if anyNonzero(statErr) {
		if err := a.Band(h.Edges, subArr(h.Values, statErr), addArr(h.Values, statErr), col.WithAlpha(0.3)); err != nil {
			return err
		}
	}
	a.strokeStep(h.Edges, h.Values, col)
	a.addLegendEntry(label, col, legendLine)
	return nil
}

// strokeStep strokes the step outline of a histogram.
func (a *Axes) strokeStep(edges, values []float64, col RGBA) {
	ctx := a.fig.ctx
	restore := a.clipToAxes()
	defer restore()
	xs, ys := stepPoints(edges, values)
	ctx.MoveTo(a.PX(xs[0]), a.PY(ys[0]))
	for i := 1; i < len(xs); i++ {
		ctx.LineTo(a.PX(xs[i]), a.PY(ys[i]))
	}
	ctx.SetColor(col.Color())
	ctx.SetLineWidth(a.fig.style.LineWidth * 1.5)
	a.fig.stroke()
}

func addArr(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

func subArr(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func anyNonzero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return true
		}
	}
	return false
}
