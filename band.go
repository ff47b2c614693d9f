package ampl

import "fmt"

// stepPoints expands bin edges and per-bin values into the vertices of a
// step outline: every interior edge appears twice, once ending the previous
// bin's level and once starting the next one.
func stepPoints(edges, y []float64) (xs, ys []float64) {
	n := len(y)
	xs = make([]float64, 0, 2*n)
	ys = make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		xs = append(xs, edges[i], edges[i+1])
		ys = append(ys, y[i], y[i])
	}
	return xs, ys
}

func checkBand(edges, low, high []float64) error {
	n := len(edges) - 1
	if n < 1 || len(low) != n || len(high) != n {
		return fmt.Errorf("%w: band of %d/%d values for %d bins", ErrShapeMismatch, len(low), len(high), n)
	}
	return nil
}

// bandPath traces the closed stepped region between low and high onto the
// current path: forward along the top, backward along the bottom.
func (a *Axes) bandPath(edges, low, high []float64) {
	ctx := a.fig.ctx
	xs, hy := stepPoints(edges, high)
	_, ly := stepPoints(edges, low)

	ctx.MoveTo(a.PX(xs[0]), a.PY(hy[0]))
	for i := 1; i < len(xs); i++ {
		ctx.LineTo(a.PX(xs[i]), a.PY(hy[i]))
	}
	for i := len(xs) - 1; i >= 0; i-- {
		ctx.LineTo(a.PX(xs[i]), a.PY(ly[i]))
	}
	ctx.ClosePath()
}

// Band fills the stepped region between low and high with a solid color.
// Use this for drawing error bands. low and high are bin contents over the
// shared edges.
func (a *Axes) Band(edges, low, high []float64, col RGBA) error {
	if err := checkBand(edges, low, high); err != nil {
		return err
	}
	restore := a.clipToAxes()
	defer restore()

	ctx := a.fig.ctx
	a.bandPath(edges, low, high)
	ctx.SetColor(col.Color())
	a.fig.fill()
	return nil
}

// HatchBand draws the stepped region between low and high with a diagonal
// hatch pattern and an outline in the edge color, the house rendering of
// statistical uncertainty bands.
func (a *Axes) HatchBand(edges, low, high []float64, edge RGBA) error {
	if err := checkBand(edges, low, high); err != nil {
		return err
	}
	ctx := a.fig.ctx
	st := a.fig.style

	restore := a.clipToAxes()
	defer restore()

	// Hatch: clip to the band, then run diagonal lines across its bounding
	// box at a fixed pixel spacing.
	ctx.Push()
	a.bandPath(edges, low, high)
	ctx.Clip()
	ctx.SetColor(edge.Color())
	ctx.SetLineWidth(st.LineWidth * 0.8)
	const spacing = 7.0
	x0, x1 := a.PX(edges[0]), a.PX(edges[len(edges)-1])
	height := a.y1 - a.y0
	for x := x0 - height; x < x1; x += spacing {
		ctx.DrawLine(x, a.y1, x+height, a.y0)
		a.fig.stroke()
	}
	ctx.Pop()

	a.bandPath(edges, low, high)
	ctx.SetColor(edge.Color())
	ctx.SetLineWidth(st.LineWidth * 0.8)
	a.fig.stroke()
	return nil
}
