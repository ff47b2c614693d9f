package ampl

import "testing"

func TestLabelStatusString(t *testing.T) {
	tests := []struct {
		status LabelStatus
		want   string
	}{
		{StatusInternal, "Internal"},
		{StatusWIP, "Work in Progress"},
		{StatusPreliminary, "Preliminary"},
		{StatusFinal, ""},
		{StatusOpenData, "Open Data"},
		{LabelStatus(99), ""},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("LabelStatus(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}

func TestDrawAtlasLabel(t *testing.T) {
	fig := NewFigure(400, 400)
	a := fig.Axes()
	a.SetXLim(0, 1)
	a.SetYLim(0, 1)

	DrawAtlasLabel(a, 0.05, 0.95, AtlasLabelOptions{
		Status:     StatusInternal,
		Simulation: true,
		Energy:     "13 TeV",
		Lumi:       139,
		Desc:       "H → γγ selection",
	})
	// The label must leave ink near the top-left corner.
	px, py := a.AxesToPixel(0.08, 0.93)
	found := false
	img := fig.Context().Image()
	for dx := -20; dx <= 60 && !found; dx++ {
		for dy := -20; dy <= 20 && !found; dy++ {
			r, g, b, _ := img.At(int(px)+dx, int(py)+dy).RGBA()
			if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
				found = true
			}
		}
	}
	if !found {
		t.Error("no label pixels drawn near the anchor")
	}
}

func TestDrawAtlasLabelOpenData(t *testing.T) {
	fig := NewFigure(400, 400)
	a := fig.Axes()
	// The open-data variant adds its education line; just exercise the path.
	DrawAtlasLabel(a, 0.05, 0.95, AtlasLabelOptions{Status: StatusOpenData, Lumi: 10, LumiLT: true})
}

func TestAxisLabelsAndTag(t *testing.T) {
	fig := NewFigure(400, 400)
	a := fig.Axes()
	a.SetXLim(0, 1)
	a.SetYLim(0, 1)
	SetXLabel(a, "m [GeV]")
	SetYLabel(a, "Events / 10 GeV")
	DrawTag(a, "fig-042")
}

func TestExperimentLabelOverride(t *testing.T) {
	st := AtlasStyle()
	st.ExperimentLabel = "DUNE"
	fig := NewFigure(200, 200, WithStyle(st))
	a := fig.Axes()
	DrawAtlasLabel(a, 0.1, 0.9, AtlasLabelOptions{Status: StatusWIP})
}
