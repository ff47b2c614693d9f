package ampl

import "fmt"

// LabelStatus is the approval status line of the experiment label.
type LabelStatus int

const (
	// StatusInternal marks plots for internal circulation.
	StatusInternal LabelStatus = iota
	// StatusWIP marks work in progress.
	StatusWIP
	// StatusPreliminary marks preliminary results.
	StatusPreliminary
	// StatusFinal omits the status line entirely.
	StatusFinal
	// StatusOpenData marks plots made from public open data.
	StatusOpenData
)

func (s LabelStatus) String() string {
	switch s {
	case StatusInternal:
		return "Internal"
	case StatusWIP:
		return "Work in Progress"
	case StatusPreliminary:
		return "Preliminary"
	case StatusFinal:
		return ""
	case StatusOpenData:
		return "Open Data"
	default:
		return ""
	}
}

// AtlasLabelOptions configures DrawAtlasLabel.
type AtlasLabelOptions struct {
	Status     LabelStatus
	Simulation bool

	// Energy is the centre-of-mass energy including units, e.g. "13 TeV".
	Energy string

	// Lumi is the integrated luminosity in /fb; zero omits it. LumiLT
	// prefixes "< " when only a subset of the data was processed.
	Lumi   float64
	LumiLT bool

	// Desc is an additional description line.
	Desc string
}

// DrawAtlasLabel draws the experiment label at normalized axes coordinates
// (fx, fy), measured from the bottom-left, with the text anchored at its
// top-left. The experiment name renders bold italic, the rest regular,
// stacked lines below:
//
//	ATLAS Internal
//	√s = 13 TeV, 139 fb⁻¹
//	<desc>
func DrawAtlasLabel(a *Axes, fx, fy float64, o AtlasLabelOptions) {
	ctx := a.fig.ctx
	st := a.fig.style
	size := st.ExperimentLabelSize
	px, py := a.AxesToPixel(fx, fy)
	py += size // anchor top-left; DrawString positions the baseline

	name := st.ExperimentLabel
	if name == "" {
		name = "ATLAS"
	}

	ctx.SetColor(st.Foreground.Color())
	ctx.SetFont(face(fontBoldItalic, size))
	nameW, _ := ctx.MeasureString(name + " ")
	ctx.DrawStringAnchored(name, px, py, 0, 0)

	status := ""
	if o.Simulation {
		status = "Simulation "
	}
	status += o.Status.String()
	ctx.SetFont(face(fontRegular, size))
	if status != "" {
		ctx.DrawStringAnchored(status, px+nameW, py, 0, 0)
	}

	line := py
	ctx.SetFont(face(fontRegular, st.FontSize))
	advance := func(text string) {
		line += st.FontSize * 1.5
		ctx.DrawStringAnchored(text, px, line, 0, 0)
	}

	if o.Status == StatusOpenData {
		advance("for education only")
	}
	eLine := ""
	if o.Energy != "" {
		eLine = "√s = " + o.Energy
	}
	if o.Lumi != 0 {
		lt := ""
		if o.LumiLT {
			lt = "< "
		}
		if eLine != "" {
			eLine += ", "
		}
		eLine += fmt.Sprintf("%s%.4g fb⁻¹", lt, o.Lumi)
	}
	if eLine != "" {
		advance(eLine)
	}
	if o.Desc != "" {
		advance(o.Desc)
	}
}

// SetXLabel draws the x axis label right-aligned under the axes, the house
// convention.
func SetXLabel(a *Axes, label string) {
	ctx := a.fig.ctx
	st := a.fig.style
	ctx.SetColor(st.Foreground.Color())
	ctx.SetFont(face(fontRegular, st.AxisLabelSize))
	ctx.DrawStringAnchored(label, a.x1, a.y1+st.FontSize+st.AxisLabelSize+10, 1, 0)
}

// SetYLabel draws the y axis label rotated, top-aligned beside the axes.
func SetYLabel(a *Axes, label string) {
	ctx := a.fig.ctx
	st := a.fig.style
	x := a.x0 - st.FontSize*3.2
	y := a.y0
	ctx.SetColor(st.Foreground.Color())
	ctx.SetFont(face(fontRegular, st.AxisLabelSize))
	ctx.Push()
	ctx.RotateAbout(-halfPi, x, y)
	ctx.DrawStringAnchored(label, x, y, 1, 0)
	ctx.Pop()
}

const halfPi = 1.5707963267948966

// DrawTag draws a small tag just outside the top-right corner of the axes,
// for plot identifiers like internal ticket numbers.
func DrawTag(a *Axes, text string) {
	ctx := a.fig.ctx
	st := a.fig.style
	ctx.SetColor(st.Foreground.Color())
	ctx.SetFont(face(fontRegular, st.FontSize*0.65))
	ctx.DrawStringAnchored(text, a.x1, a.y0-3, 1, 0)
}
