package ampl

import (
	"math"
	"strconv"
)

// Axes is one plotting region inside a Figure: a pixel rectangle plus the
// data limits mapped onto it. Plot calls draw in data coordinates through
// PX/PY; labels position themselves in axes-fraction coordinates.
type Axes struct {
	fig            *Figure
	x0, y0, x1, y1 float64 // pixel bounds, y0 is the top

	xmin, xmax float64
	ymin, ymax float64
	xset, yset bool

	// labelBottom controls whether DrawFrame writes x tick labels; the
	// main axes of a ratio split suppresses them.
	labelBottom bool

	// main points to the primary axes when this is a ratio pane sharing
	// its x axis.
	main *Axes

	legend []legendEntry
}

// Figure returns the owning figure.
func (a *Axes) Figure() *Figure { return a.fig }

// SetXLim fixes the x data limits. For a main axes with attached ratio
// panes, the limits propagate to the panes so they stay aligned.
func (a *Axes) SetXLim(lo, hi float64) {
	a.xmin, a.xmax = lo, hi
	a.xset = true
	for _, other := range a.fig.axes {
		if other.main == a {
			other.xmin, other.xmax = lo, hi
			other.xset = true
		}
	}
}

// SetYLim fixes the y data limits.
func (a *Axes) SetYLim(lo, hi float64) {
	a.ymin, a.ymax = lo, hi
	a.yset = true
}

// XLim returns the current x limits.
func (a *Axes) XLim() (lo, hi float64) { return a.xmin, a.xmax }

// YLim returns the current y limits.
func (a *Axes) YLim() (lo, hi float64) { return a.ymin, a.ymax }

// ensureXLim adopts limits from the shared main axes if present, otherwise
// sets them from the data if the caller has not fixed them.
func (a *Axes) ensureXLim(lo, hi float64) {
	if a.xset {
		return
	}
	if a.main != nil && a.main.xset {
		a.SetXLim(a.main.xmin, a.main.xmax)
		return
	}
	a.SetXLim(lo, hi)
}

func (a *Axes) ensureYLim(lo, hi float64) {
	if a.yset {
		return
	}
	a.SetYLim(lo, hi)
}

// PX maps a data x coordinate to a pixel x coordinate.
func (a *Axes) PX(x float64) float64 {
	return a.x0 + (x-a.xmin)/(a.xmax-a.xmin)*(a.x1-a.x0)
}

// PY maps a data y coordinate to a pixel y coordinate. Pixel y grows
// downward, so larger data values map to smaller pixel values.
func (a *Axes) PY(y float64) float64 {
	return a.y1 - (y-a.ymin)/(a.ymax-a.ymin)*(a.y1-a.y0)
}

// AxesToPixel maps normalized axes-fraction coordinates, (0,0) bottom-left
// to (1,1) top-right, to pixel coordinates.
func (a *Axes) AxesToPixel(fx, fy float64) (px, py float64) {
	return a.x0 + fx*(a.x1-a.x0), a.y1 - fy*(a.y1-a.y0)
}

// Width and Height return the axes size in pixels.
func (a *Axes) Width() float64  { return a.x1 - a.x0 }
func (a *Axes) Height() float64 { return a.y1 - a.y0 }

// clipToAxes restricts subsequent drawing to the axes rectangle. Callers
// must pair it with ctx.Pop via the returned function.
func (a *Axes) clipToAxes() func() {
	ctx := a.fig.ctx
	ctx.Push()
	ctx.ClipRect(a.x0, a.y0, a.x1-a.x0, a.y1-a.y0)
	return ctx.Pop
}

// DrawFrame draws the axes rectangle, tick marks on all four sides, and
// tick labels (bottom labels only when this axes owns them in a ratio
// split). Call it after the plot calls so the frame sits on top of filled
// regions.
func (a *Axes) DrawFrame() {
	ctx := a.fig.ctx
	st := a.fig.style

	ctx.SetColor(st.Foreground.Color())
	ctx.SetLineWidth(st.LineWidth)
	ctx.DrawRectangle(a.x0, a.y0, a.x1-a.x0, a.y1-a.y0)
	a.fig.stroke()

	xticks, xstep := niceTicks(a.xmin, a.xmax, 6)
	yticks, ystep := niceTicks(a.ymin, a.ymax, 6)

	tickFace := face(fontRegular, st.FontSize)
	ctx.SetFont(tickFace)

	for _, t := range xticks {
		px := a.PX(t)
		ctx.DrawLine(px, a.y1, px, a.y1-st.TickLength)
		ctx.DrawLine(px, a.y0, px, a.y0+st.TickLength)
		a.fig.stroke()
		if a.labelBottom {
			ctx.DrawStringAnchored(formatTick(t, xstep), px, a.y1+st.FontSize+4, 0.5, 0)
		}
	}
	for _, t := range yticks {
		py := a.PY(t)
		ctx.DrawLine(a.x0, py, a.x0+st.TickLength, py)
		ctx.DrawLine(a.x1, py, a.x1-st.TickLength, py)
		a.fig.stroke()
		ctx.DrawStringAnchored(formatTick(t, ystep), a.x0-6, py+st.FontSize*0.35, 1, 0)
	}

	if st.MinorTicks {
		a.drawMinorTicks(xticks, xstep, yticks, ystep)
	}
}

// drawMinorTicks subdivides each major interval into five.
func (a *Axes) drawMinorTicks(xticks []float64, xstep float64, yticks []float64, ystep float64) {
	ctx := a.fig.ctx
	st := a.fig.style
	minor := func(t float64, vertical bool) {
		if vertical {
			if t < a.xmin || t > a.xmax {
				return
			}
			px := a.PX(t)
			ctx.DrawLine(px, a.y1, px, a.y1-st.MinorTickLength)
			ctx.DrawLine(px, a.y0, px, a.y0+st.MinorTickLength)
		} else {
			if t < a.ymin || t > a.ymax {
				return
			}
			py := a.PY(t)
			ctx.DrawLine(a.x0, py, a.x0+st.MinorTickLength, py)
			ctx.DrawLine(a.x1, py, a.x1-st.MinorTickLength, py)
		}
		a.fig.stroke()
	}
	if len(xticks) > 0 && xstep > 0 {
		for t := xticks[0] - xstep; t < a.xmax+xstep; t += xstep {
			for i := 1; i < 5; i++ {
				minor(t+float64(i)*xstep/5, true)
			}
		}
	}
	if len(yticks) > 0 && ystep > 0 {
		for t := yticks[0] - ystep; t < a.ymax+ystep; t += ystep {
			for i := 1; i < 5; i++ {
				minor(t+float64(i)*ystep/5, false)
			}
		}
	}
}

// DrawHLine draws a horizontal reference line across the axes at data
// coordinate y, e.g. the unity line of a ratio pane.
func (a *Axes) DrawHLine(y float64, col RGBA, width float64, dashed bool) {
	if y < a.ymin || y > a.ymax {
		return
	}
	ctx := a.fig.ctx
	ctx.SetColor(col.Color())
	ctx.SetLineWidth(width)
	if dashed {
		ctx.SetDash(6, 4)
	}
	ctx.DrawLine(a.x0, a.PY(y), a.x1, a.PY(y))
	a.fig.stroke()
	if dashed {
		ctx.ClearDash()
	}
}

// niceTicks places major ticks on multiples of 1, 2, 2.5 or 5 times a power
// of ten, covering [lo, hi] with at most maxTicks ticks. Returns the tick
// positions and the chosen step.
func niceTicks(lo, hi float64, maxTicks int) ([]float64, float64) {
	if !(hi > lo) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, 0
	}
	raw := (hi - lo) / float64(maxTicks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	var step float64
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		step = m * mag
		if step >= raw {
			break
		}
	}
	start := math.Ceil(lo/step) * step
	var ticks []float64
	for t := start; t <= hi+step*1e-9; t += step {
		// Snap near-zero ticks produced by float accumulation.
		if math.Abs(t) < step*1e-9 {
			t = 0
		}
		ticks = append(ticks, t)
	}
	return ticks, step
}

// formatTick renders a tick value with just enough decimals for the step:
// the smallest precision at which the step itself is exact.
func formatTick(t, step float64) string {
	decimals := 0
	for ; decimals < 9; decimals++ {
		scaled := step * math.Pow(10, float64(decimals))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9 {
			break
		}
	}
	return strconv.FormatFloat(t, 'f', decimals, 64)
}
