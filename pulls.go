package ampl

import (
	"fmt"
	"math"
	"sort"
)

// Pull is one fitted nuisance parameter: its post-fit central value and
// asymmetric errors, in units of the pre-fit standard deviation.
type Pull struct {
	Name    string
	Value   float64
	ErrLow  float64
	ErrHigh float64

	// ImpactUp and ImpactDown record the shift of the parameter of
	// interest when this parameter is fixed to ±1σ. Only used for
	// sorting; zero when impacts were not computed.
	ImpactUp   float64
	ImpactDown float64
}

// SortPullsByImpact orders pulls by descending maximum absolute impact,
// the conventional ranking order of impact plots.
func SortPullsByImpact(pulls []Pull) {
	sort.SliceStable(pulls, func(i, j int) bool {
		return maxImpact(pulls[i]) > maxImpact(pulls[j])
	})
}

func maxImpact(p Pull) float64 {
	return math.Max(math.Abs(p.ImpactUp), math.Abs(p.ImpactDown))
}

// PlotPulls draws a pull plot: one row per parameter, a marker at the
// post-fit value with horizontal error bars, and dashed guide lines at 0
// and ±1. The x range is fixed to [-2, 2] by convention.
func PlotPulls(a *Axes, pulls []Pull) error {
	n := len(pulls)
	if n == 0 {
		return fmt.Errorf("%w: no pulls to plot", ErrEmptyInput)
	}

	a.SetXLim(-2, 2)
	a.ensureYLim(-0.5, float64(n)-0.5)

	st := a.fig.style
	ctx := a.fig.ctx
	fg := st.Foreground

	a.DrawVLine(0, fg.WithAlpha(0.5), st.LineWidth*2, true)
	a.DrawVLine(-1, fg.WithAlpha(0.2), st.LineWidth*2, true)
	a.DrawVLine(1, fg.WithAlpha(0.2), st.LineWidth*2, true)

	nameFace := face(fontRegular, st.FontSize)
	ctx.SetFont(nameFace)

	for i, p := range pulls {
		// Row 0 at the top.
		y := a.PY(float64(n-1-i))
		ctx.SetColor(fg.Color())
		ctx.SetLineWidth(st.LineWidth)
		lo := p.Value - math.Abs(p.ErrLow)
		hi := p.Value + math.Abs(p.ErrHigh)
		ctx.DrawLine(a.PX(lo), y, a.PX(hi), y)
		a.fig.stroke()
		// End caps.
		capLen := st.MarkerSize * 1.6
		ctx.DrawLine(a.PX(lo), y-capLen, a.PX(lo), y+capLen)
		a.fig.stroke()
		ctx.DrawLine(a.PX(hi), y-capLen, a.PX(hi), y+capLen)
		a.fig.stroke()
		ctx.DrawCircle(a.PX(p.Value), y, st.MarkerSize)
		a.fig.fill()

		ctx.DrawStringAnchored(p.Name, a.x0-6, y+st.FontSize*0.35, 1, 0)
	}
	return nil
}

// DrawVLine draws a vertical reference line across the axes at data
// coordinate x.
func (a *Axes) DrawVLine(x float64, col RGBA, width float64, dashed bool) {
	if x < a.xmin || x > a.xmax {
		return
	}
	ctx := a.fig.ctx
	ctx.SetColor(col.Color())
	ctx.SetLineWidth(width)
	if dashed {
		ctx.SetDash(6, 4)
	}
	ctx.DrawLine(a.PX(x), a.y0, a.PX(x), a.y1)
	a.fig.stroke()
	if dashed {
		ctx.ClearDash()
	}
}
