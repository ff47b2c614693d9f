package ampl

import (
	"errors"
	"testing"
)

func TestSortPullsByImpact(t *testing.T) {
	pulls := []Pull{
		{Name: "small", ImpactUp: 0.1, ImpactDown: -0.05},
		{Name: "big", ImpactUp: 0.4, ImpactDown: -0.6},
		{Name: "mid", ImpactUp: -0.3, ImpactDown: 0.2},
	}
	SortPullsByImpact(pulls)
	want := []string{"big", "mid", "small"}
	for i, p := range pulls {
		if p.Name != want[i] {
			t.Errorf("pulls[%d] = %q, want %q", i, p.Name, want[i])
		}
	}
}

func TestSortPullsByImpactStable(t *testing.T) {
	pulls := []Pull{
		{Name: "first", ImpactUp: 0.2},
		{Name: "second", ImpactUp: 0.2},
	}
	SortPullsByImpact(pulls)
	if pulls[0].Name != "first" {
		t.Error("equal impacts were reordered")
	}
}

func TestPlotPulls(t *testing.T) {
	fig := NewFigure(400, 400)
	a := fig.Axes()

	pulls := []Pull{
		{Name: "JES", Value: 0.3, ErrLow: 0.9, ErrHigh: 0.8},
		{Name: "lumi", Value: -0.1, ErrLow: 1, ErrHigh: 1},
	}
	if err := PlotPulls(a, pulls); err != nil {
		t.Fatalf("PlotPulls: %v", err)
	}
	if lo, hi := a.XLim(); lo != -2 || hi != 2 {
		t.Errorf("XLim = (%v,%v), want conventional (-2,2)", lo, hi)
	}
	if lo, hi := a.YLim(); lo != -0.5 || hi != 1.5 {
		t.Errorf("YLim = (%v,%v), want (-0.5,1.5)", lo, hi)
	}
}

func TestPlotPullsEmpty(t *testing.T) {
	fig := NewFigure(100, 100)
	a := fig.Axes()
	if err := PlotPulls(a, nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("PlotPulls error = %v, want ErrEmptyInput", err)
	}
}
