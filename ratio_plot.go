package ampl

import "math"

// PlotRatio draws a comparison pane for data against a background total, as
// produced by PlotBackgrounds. maxRatio bounds the pane; pass 0 for the
// mode's conventional default (0.2 for relative difference, 1.2 for ratio,
// 3 for significance, data-driven for difference). The displayed range is
// widened by 30% so edge tick labels don't clash with the main axes.
//
// Bins whose comparison is invalid (zero denominator) are skipped entirely.
// Valid bins falling outside the displayed range are marked with a caret at
// the pane boundary instead of an error bar.
func PlotRatio(a *Axes, data Histogram, denomValues, denomVariance []float64, mode RatioMode, maxRatio float64) (RatioResult, error) {
	res, err := ComputeRatio(data, denomValues, denomVariance, mode)
	if err != nil {
		return RatioResult{}, err
	}

	if maxRatio == 0 {
		switch mode {
		case ModeRelativeDifference:
			maxRatio = 0.2
		case ModeRatio:
			maxRatio = 1.2
		case ModeSignificance:
			maxRatio = 3
		case ModeDifference:
			for i, v := range res.Values {
				if res.Valid[i] {
					maxRatio = math.Max(maxRatio, 1.2*(math.Abs(v)+res.Errors[i]))
				}
			}
			if maxRatio == 0 {
				maxRatio = 1
			}
		}
	}
	minRatio := -maxRatio
	center := 0.0
	if mode == ModeRatio {
		minRatio = 1 - maxRatio
		center = 1
	}
	// Widen by 30% to keep boundary tick labels off the shared axis.
	maxRatio *= 1.3
	minRatio *= 1.3

	a.ensureXLim(data.Edges[0], data.Edges[len(data.Edges)-1])
	a.SetYLim(minRatio, maxRatio)

	st := a.fig.style
	red := MustColor("paper:red")
	a.DrawHLine(center, red, st.LineWidth, false)

	// Relative denominator uncertainty band around the reference line.
	if mode == ModeRatio || mode == ModeRelativeDifference {
		n := data.NBins()
		low := make([]float64, n)
		high := make([]float64, n)
		for i := 0; i < n; i++ {
			rel := 0.0
			if denomValues[i] != 0 {
				rel = math.Sqrt(denomVariance[i]) / denomValues[i]
			}
			low[i] = center - rel
			high[i] = center + rel
		}
		if err := a.Band(data.Edges, low, high, Gray(0.5).WithAlpha(0.5)); err != nil {
			return RatioResult{}, err
		}
	}
	if mode == ModeSignificance {
		fg := st.Foreground
		a.DrawHLine(1, fg.WithAlpha(0.5), st.LineWidth, true)
		a.DrawHLine(-1, fg.WithAlpha(0.5), st.LineWidth, true)
		a.DrawHLine(2, fg.WithAlpha(0.25), st.LineWidth, true)
		a.DrawHLine(-2, fg.WithAlpha(0.25), st.LineWidth, true)
	}

	ctx := a.fig.ctx
	centers := data.Edges.Centers()
	restore := a.clipToAxes()
	defer restore()
	skipped := 0
	for i, c := range centers {
		if !res.Valid[i] {
			skipped++
			continue
		}
		v := res.Values[i]
		x := a.PX(c)
		switch {
		case v > maxRatio:
			a.drawCaret(x, a.PY(maxRatio), red, true)
		case v < minRatio:
			a.drawCaret(x, a.PY(minRatio), red, false)
		default:
			ctx.SetColor(st.Foreground.Color())
			ctx.SetLineWidth(st.LineWidth)
			if res.Errors[i] > 0 {
				ctx.DrawLine(x, a.PY(v-res.Errors[i]), x, a.PY(v+res.Errors[i]))
				a.fig.stroke()
			}
			ctx.DrawCircle(x, a.PY(v), st.MarkerSize*0.85)
			a.fig.fill()
		}
	}
	if skipped > 0 {
		Logger().Debug("ampl: ratio bins skipped", "mode", mode.String(), "bins", skipped)
	}
	return res, nil
}

// drawCaret draws a small triangle pointing out of the pane, marking an
// off-scale ratio value.
func (a *Axes) drawCaret(x, y float64, col RGBA, up bool) {
	ctx := a.fig.ctx
	s := a.fig.style.MarkerSize * 1.8
	dir := 1.0
	if up {
		dir = -1
	}
	// Tip sits on the boundary, base inside the pane.
	ctx.MoveTo(x, y)
	ctx.LineTo(x-s, y-dir*s*1.4)
	ctx.LineTo(x+s, y-dir*s*1.4)
	ctx.ClosePath()
	ctx.SetColor(col.Color())
	a.fig.fill()
}
