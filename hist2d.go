package ampl

import (
	"fmt"
	"math"
)

// Plot2D draws a 2D histogram as a colored mesh. values is indexed
// [xbin][ybin]; its dimensions must match the edge arrays. Cell colors come
// from mapping each value onto cmap over the data range.
//
// The axes limits are forced to the edge ranges, since padding around a
// mesh has no meaning.
func Plot2D(a *Axes, xedges, yedges []float64, values [][]float64, cmap Colormap) error {
	nx := len(xedges) - 1
	ny := len(yedges) - 1
	if nx < 1 || len(values) != nx {
		return fmt.Errorf("%w: %d value rows for %d x bins", ErrShapeMismatch, len(values), nx)
	}
	for i, row := range values {
		if len(row) != ny {
			return fmt.Errorf("%w: row %d has %d values for %d y bins", ErrShapeMismatch, i, len(row), ny)
		}
	}

	vmin, vmax := math.Inf(1), math.Inf(-1)
	for _, row := range values {
		for _, v := range row {
			vmin = math.Min(vmin, v)
			vmax = math.Max(vmax, v)
		}
	}
	span := vmax - vmin
	if span == 0 {
		span = 1
	}

	a.SetXLim(xedges[0], xedges[nx])
	a.SetYLim(yedges[0], yedges[ny])

	ctx := a.fig.ctx
	restore := a.clipToAxes()
	defer restore()
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			col := cmap.At((values[ix][iy] - vmin) / span)
			x0 := a.PX(xedges[ix])
			y0 := a.PY(yedges[iy+1])
			ctx.SetColor(col.Color())
			// Extend each cell by half a pixel so antialiased seams
			// between adjacent cells don't show the background.
			ctx.DrawRectangle(x0-0.5, y0-0.5, a.PX(xedges[ix+1])-x0+1, a.PY(yedges[iy])-y0+1)
			a.fig.fill()
		}
	}
	return nil
}
