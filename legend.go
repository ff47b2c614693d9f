package ampl

// legendKind selects the swatch drawn next to a legend label.
type legendKind int

const (
	legendFill legendKind = iota
	legendLine
	legendMarker
	legendHatchBand
	legendSolidBand
	legendDashedLine
)

type legendEntry struct {
	label string
	color RGBA
	kind  legendKind
}

// addLegendEntry records an entry for DrawLegend. Entries with an empty
// label are not listed.
func (a *Axes) addLegendEntry(label string, col RGBA, kind legendKind) {
	if label == "" {
		return
	}
	a.legend = append(a.legend, legendEntry{label: label, color: col, kind: kind})
}

// LegendLoc positions the legend inside the axes.
type LegendLoc int

const (
	LegendUpperRight LegendLoc = iota
	LegendUpperLeft
	LegendLowerRight
	LegendLowerLeft
)

// DrawLegend draws the legend collected from previous plot calls on this
// axes. Entries appear in the order the plot calls were made. With the
// style's LegendFrame set, the legend gets a translucent background box.
func (a *Axes) DrawLegend(loc LegendLoc) {
	if len(a.legend) == 0 {
		return
	}
	ctx := a.fig.ctx
	st := a.fig.style

	f := face(fontRegular, st.FontSize)
	ctx.SetFont(f)

	const (
		swatchW = 22.0
		swatchH = 12.0
		gap     = 6.0
		pad     = 10.0
	)
	rowH := st.FontSize * 1.6

	var maxText float64
	for _, e := range a.legend {
		w, _ := ctx.MeasureString(e.label)
		if w > maxText {
			maxText = w
		}
	}
	boxW := swatchW + gap + maxText + 2*pad
	boxH := rowH*float64(len(a.legend)) + pad

	var bx, by float64
	switch loc {
	case LegendUpperLeft:
		bx, by = a.x0+pad, a.y0+pad
	case LegendUpperRight:
		bx, by = a.x1-pad-boxW, a.y0+pad
	case LegendLowerLeft:
		bx, by = a.x0+pad, a.y1-pad-boxH
	case LegendLowerRight:
		bx, by = a.x1-pad-boxW, a.y1-pad-boxH
	}

	if st.LegendFrame {
		ctx.SetColor(st.Background.WithAlpha(0.75).Color())
		ctx.DrawRectangle(bx, by, boxW, boxH)
		a.fig.fill()
	}

	for i, e := range a.legend {
		sy := by + pad/2 + float64(i)*rowH
		a.drawSwatch(e, bx+pad, sy, swatchW, swatchH)
		ctx.SetColor(st.Foreground.Color())
		ctx.DrawStringAnchored(e.label, bx+pad+swatchW+gap, sy+swatchH/2+st.FontSize*0.35, 0, 0)
	}
}

func (a *Axes) drawSwatch(e legendEntry, x, y, w, h float64) {
	ctx := a.fig.ctx
	st := a.fig.style
	cy := y + h/2
	switch e.kind {
	case legendFill:
		ctx.SetColor(e.color.Color())
		ctx.DrawRectangle(x, y, w, h)
		a.fig.fill()
		ctx.SetColor(st.Foreground.Color())
		ctx.SetLineWidth(st.LineWidth)
		ctx.DrawRectangle(x, y, w, h)
		a.fig.stroke()
	case legendLine, legendDashedLine:
		ctx.SetColor(e.color.Color())
		ctx.SetLineWidth(st.LineWidth * 1.5)
		if e.kind == legendDashedLine {
			ctx.SetDash(5, 4)
		}
		ctx.DrawLine(x, cy, x+w, cy)
		a.fig.stroke()
		ctx.ClearDash()
	case legendMarker:
		ctx.SetColor(e.color.Color())
		ctx.DrawCircle(x+w/2, cy, st.MarkerSize)
		a.fig.fill()
	case legendHatchBand:
		ctx.SetColor(e.color.Color())
		ctx.SetLineWidth(st.LineWidth * 0.8)
		ctx.DrawRectangle(x, y, w, h)
		a.fig.stroke()
		ctx.DrawLine(x, y+h, x+h, y)
		a.fig.stroke()
		ctx.DrawLine(x+w/2, y+h, x+w/2+h, y)
		a.fig.stroke()
	case legendSolidBand:
		ctx.SetColor(e.color.Color())
		ctx.DrawRectangle(x, y, w, h)
		a.fig.fill()
	}
}
