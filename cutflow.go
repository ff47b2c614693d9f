package ampl

import (
	"fmt"
	"strconv"
)

// PlotCutflow draws a cutflow: one labeled bar per selection stage, with
// the surviving count printed on the bar. Horizontal orientation (the
// default in the house style) lists stages top to bottom.
//
// Cutflow bins are labeled, not edged, so this takes names and values
// directly rather than a Histogram.
func PlotCutflow(a *Axes, labels []string, values []float64, horizontal bool) error {
	n := len(labels)
	if n == 0 {
		return fmt.Errorf("%w: empty cutflow", ErrShapeMismatch)
	}
	if len(values) != n {
		return fmt.Errorf("%w: %d values for %d cutflow stages", ErrShapeMismatch, len(values), n)
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	if horizontal {
		a.ensureXLim(0, 1.1*maxVal)
		a.ensureYLim(0, float64(n))
	} else {
		a.ensureXLim(0, float64(n))
		a.ensureYLim(0, 1.1*maxVal)
	}

	ctx := a.fig.ctx
	st := a.fig.style
	barCol := a.fig.NextColor()
	textCol := White

	labelFace := face(fontRegular, st.FontSize)
	ctx.SetFont(labelFace)

	const rel = 0.8 // bar thickness as a fraction of the category slot
	for i := 0; i < n; i++ {
		v := values[i]
		count := strconv.FormatFloat(v, 'g', 6, 64)
		if horizontal {
			// Stage 0 at the top.
			cy := float64(n-i) - 0.5
			y0 := a.PY(cy + rel/2)
			y1 := a.PY(cy - rel/2)
			ctx.SetColor(barCol.Color())
			ctx.DrawRectangle(a.PX(0), y0, a.PX(v)-a.PX(0), y1-y0)
			a.fig.fill()
			ctx.SetColor(textCol.Color())
			ctx.DrawStringAnchored(count, a.PX(v)-6, a.PY(cy)+st.FontSize*0.35, 1, 0)
			ctx.SetColor(st.Foreground.Color())
			ctx.DrawStringAnchored(labels[i], a.x0-6, a.PY(cy)+st.FontSize*0.35, 1, 0)
		} else {
			cx := float64(i) + 0.5
			x0 := a.PX(cx - rel/2)
			x1 := a.PX(cx + rel/2)
			ctx.SetColor(barCol.Color())
			ctx.DrawRectangle(x0, a.PY(v), x1-x0, a.PY(0)-a.PY(v))
			a.fig.fill()
			ctx.SetColor(textCol.Color())
			ctx.DrawStringAnchored(count, a.PX(cx), a.PY(v)+st.FontSize*1.2, 0.5, 0)
			ctx.SetColor(st.Foreground.Color())
			ctx.DrawStringAnchored(labels[i], a.PX(cx), a.y1+st.FontSize+4, 0.5, 0)
		}
	}
	return nil
}
