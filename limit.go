package ampl

import "fmt"

// Limit describes one exclusion limit curve with optional uncertainty bands
// and an optional observed curve. Sigma bands must be provided in pairs;
// Observed requires ObservedLabel and vice versa.
type Limit struct {
	ExpectedLabel string
	Expected      []float64

	MinusOneSigma []float64
	PlusOneSigma  []float64
	MinusTwoSigma []float64
	PlusTwoSigma  []float64

	ObservedLabel string
	Observed      []float64

	// Color draws the curves in a single color with translucent bands,
	// for overlaying several limits. Unset uses black curves with the
	// conventional green/yellow bands.
	Color RGBA
}

// PlotLimit draws an exclusion limit: the ±2σ band, the ±1σ band on top,
// the dashed expected curve, and the solid observed curve if present.
// x carries the scan positions; every provided array must match its length.
func PlotLimit(a *Axes, x []float64, lim Limit) error {
	n := len(x)
	if n == 0 {
		return fmt.Errorf("%w: empty limit scan", ErrShapeMismatch)
	}
	check := func(name string, v []float64) error {
		if v != nil && len(v) != n {
			return fmt.Errorf("%w: %s has %d points for %d scan positions", ErrShapeMismatch, name, len(v), n)
		}
		return nil
	}
	for _, c := range []struct {
		name string
		v    []float64
	}{
		{"expected", lim.Expected},
		{"minus_one_sigma", lim.MinusOneSigma},
		{"plus_one_sigma", lim.PlusOneSigma},
		{"minus_two_sigma", lim.MinusTwoSigma},
		{"plus_two_sigma", lim.PlusTwoSigma},
		{"observed", lim.Observed},
	} {
		if err := check(c.name, c.v); err != nil {
			return err
		}
	}
	if lim.Expected == nil {
		return fmt.Errorf("%w: expected curve is required", ErrShapeMismatch)
	}
	if (lim.MinusOneSigma == nil) != (lim.PlusOneSigma == nil) {
		return fmt.Errorf("ampl: both or neither of the one sigma bounds must be provided")
	}
	if (lim.MinusTwoSigma == nil) != (lim.PlusTwoSigma == nil) {
		return fmt.Errorf("ampl: both or neither of the two sigma bounds must be provided")
	}
	if (lim.Observed == nil) != (lim.ObservedLabel == "") {
		return fmt.Errorf("ampl: both or neither of observed and its label must be provided")
	}

	lineCol := lim.Color
	oneSig := MustColor("atlas:onesigma")
	twoSig := MustColor("atlas:twosigma")
	if lineCol.IsZero() {
		lineCol = Black
	} else {
		oneSig = lineCol.WithAlpha(0.5)
		twoSig = lineCol.WithAlpha(0.25)
	}

	a.ensureXLim(x[0], x[n-1])
	lo, hi := limitRange(lim)
	a.ensureYLim(lo, hi)

	restore := a.clipToAxes()
	defer restore()

	if lim.MinusTwoSigma != nil {
		a.fillBetween(x, lim.MinusTwoSigma, lim.PlusTwoSigma, twoSig)
		a.addLegendEntry("Expected ±2σ", twoSig, legendSolidBand)
	}
	if lim.MinusOneSigma != nil {
		a.fillBetween(x, lim.MinusOneSigma, lim.PlusOneSigma, oneSig)
		a.addLegendEntry("Expected ±1σ", oneSig, legendSolidBand)
	}
	a.polyline(x, lim.Expected, lineCol, true)
	a.addLegendEntry(lim.ExpectedLabel, lineCol, legendDashedLine)
	if lim.Observed != nil {
		a.polyline(x, lim.Observed, lineCol, false)
		a.addLegendEntry(lim.ObservedLabel, lineCol, legendLine)
	}
	return nil
}

// limitRange finds y limits covering every provided curve with 10% headroom.
func limitRange(lim Limit) (lo, hi float64) {
	first := true
	scan := func(v []float64) {
		for _, y := range v {
			if first {
				lo, hi = y, y
				first = false
				continue
			}
			if y < lo {
				lo = y
			}
			if y > hi {
				hi = y
			}
		}
	}
	scan(lim.Expected)
	scan(lim.MinusTwoSigma)
	scan(lim.PlusTwoSigma)
	scan(lim.Observed)
	span := hi - lo
	if span == 0 {
		span = 1
	}
	return lo - 0.1*span, hi + 0.1*span
}

// fillBetween fills the region between two curves over shared x positions.
func (a *Axes) fillBetween(x, low, high []float64, col RGBA) {
	ctx := a.fig.ctx
	ctx.MoveTo(a.PX(x[0]), a.PY(high[0]))
	for i := 1; i < len(x); i++ {
		ctx.LineTo(a.PX(x[i]), a.PY(high[i]))
	}
	for i := len(x) - 1; i >= 0; i-- {
		ctx.LineTo(a.PX(x[i]), a.PY(low[i]))
	}
	ctx.ClosePath()
	ctx.SetColor(col.Color())
	a.fig.fill()
}

// polyline strokes a curve through the given points.
func (a *Axes) polyline(x, y []float64, col RGBA, dashed bool) {
	ctx := a.fig.ctx
	ctx.SetColor(col.Color())
	ctx.SetLineWidth(a.fig.style.LineWidth * 1.5)
	if dashed {
		ctx.SetDash(6, 4)
	}
	ctx.MoveTo(a.PX(x[0]), a.PY(y[0]))
	for i := 1; i < len(x); i++ {
		ctx.LineTo(a.PX(x[i]), a.PY(y[i]))
	}
	a.fig.stroke()
	if dashed {
		ctx.ClearDash()
	}
}
