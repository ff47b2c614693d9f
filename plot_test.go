package ampl

import (
	"errors"
	"math"
	"testing"
)

func TestPlotBackgroundsTotals(t *testing.T) {
	fig := NewFigure(400, 400)
	a := fig.Axes()

	edges := []float64{0, 1, 2}
	b1 := Background{Label: "a", Hist: mustHist(t, edges, []float64{4, 4}, nil)}
	b2 := Background{Label: "b", Hist: mustHist(t, edges, []float64{5, 5}, nil)}

	total, totalErr, err := PlotBackgrounds(a, []Background{b1, b2})
	if err != nil {
		t.Fatalf("PlotBackgrounds: %v", err)
	}
	if total[0] != 9 || total[1] != 9 {
		t.Errorf("total = %v, want [9 9]", total)
	}
	if math.Abs(totalErr[0]-3) > 1e-12 {
		t.Errorf("totalErr[0] = %v, want 3", totalErr[0])
	}
}

func TestPlotBackgroundsAutoLimits(t *testing.T) {
	fig := NewFigure(400, 400)
	a := fig.Axes()

	h := mustHist(t, []float64{-1, 0, 3}, []float64{10, 10}, []float64{0, 0})
	if _, _, err := PlotBackgrounds(a, []Background{{Label: "bkg", Hist: h}}); err != nil {
		t.Fatalf("PlotBackgrounds: %v", err)
	}
	if lo, hi := a.XLim(); lo != -1 || hi != 3 {
		t.Errorf("XLim = (%v,%v), want bin range (-1,3)", lo, hi)
	}
	// Headroom of 40% above the highest total.
	if lo, hi := a.YLim(); lo != 0 || math.Abs(hi-14) > 1e-9 {
		t.Errorf("YLim = (%v,%v), want (0,14)", lo, hi)
	}
}

func TestPlotBackgroundsFillsRegion(t *testing.T) {
	fig := NewFigure(400, 400)
	a := fig.Axes()

	h := mustHist(t, []float64{0, 1, 2}, []float64{10, 10}, []float64{0, 0})
	bkg := Background{Label: "bkg", Hist: h, Color: RGB(1, 0, 0)}
	if _, _, err := PlotBackgrounds(a, []Background{bkg}); err != nil {
		t.Fatalf("PlotBackgrounds: %v", err)
	}

	px := int(a.PX(1))
	py := int(a.PY(4))
	r, g, b, _ := fig.Context().Image().At(px, py).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("stack pixel = (%d,%d,%d), want red", r>>8, g>>8, b>>8)
	}
	// Above the stack the canvas stays at the background color.
	py = int(a.PY(13))
	r, g, b, _ = fig.Context().Image().At(px, py).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("pixel above stack = (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

func TestPlotBackgroundsCycleColors(t *testing.T) {
	fig := NewFigure(400, 400, WithPalette([]RGBA{RGB(0, 1, 0), RGB(0, 0, 1)}))
	a := fig.Axes()

	edges := []float64{0, 1}
	b1 := Background{Label: "a", Hist: mustHist(t, edges, []float64{4}, []float64{0})}
	b2 := Background{Label: "b", Hist: mustHist(t, edges, []float64{4}, []float64{0})}
	if _, _, err := PlotBackgrounds(a, []Background{b1, b2}); err != nil {
		t.Fatalf("PlotBackgrounds: %v", err)
	}

	// Lower layer gets the first cycle color, upper the second.
	px := int(a.PX(0.5))
	r, g, b, _ := fig.Context().Image().At(px, int(a.PY(2))).RGBA()
	if g>>8 != 255 || r>>8 != 0 {
		t.Errorf("lower layer pixel = (%d,%d,%d), want green", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = fig.Context().Image().At(px, int(a.PY(6))).RGBA()
	if b>>8 != 255 || r>>8 != 0 {
		t.Errorf("upper layer pixel = (%d,%d,%d), want blue", r>>8, g>>8, b>>8)
	}
}

func TestPlotBackgroundsPropagatesStackErrors(t *testing.T) {
	fig := NewFigure(100, 100)
	a := fig.Axes()
	if _, _, err := PlotBackgrounds(a, nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("PlotBackgrounds error = %v, want ErrEmptyInput", err)
	}
}

func TestPlotDataReturnsSeries(t *testing.T) {
	fig := NewFigure(400, 400)
	a := fig.Axes()

	h := mustHist(t, []float64{0, 1, 2}, []float64{9, 16}, nil)
	values, errs, err := PlotData(a, h, "", RGBA{})
	if err != nil {
		t.Fatalf("PlotData: %v", err)
	}
	if values[0] != 9 || values[1] != 16 {
		t.Errorf("values = %v, want [9 16]", values)
	}
	if errs[0] != 3 || errs[1] != 4 {
		t.Errorf("errs = %v, want [3 4]", errs)
	}
	if len(a.legend) != 1 || a.legend[0].label != "Data" {
		t.Errorf("legend = %+v, want one entry labeled Data", a.legend)
	}
}

func TestPlotDataEmpty(t *testing.T) {
	fig := NewFigure(100, 100)
	a := fig.Axes()
	if _, _, err := PlotData(a, Histogram{}, "", RGBA{}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("PlotData error = %v, want ErrShapeMismatch", err)
	}
}

func TestPlotSignalSystMismatch(t *testing.T) {
	fig := NewFigure(100, 100)
	a := fig.Axes()
	h := mustHist(t, []float64{0, 1, 2}, []float64{1, 2}, nil)
	if err := PlotSignal(a, h, "sig", []float64{1}, RGBA{}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("PlotSignal error = %v, want ErrShapeMismatch", err)
	}
}

func TestPlotSignalDraws(t *testing.T) {
	fig := NewFigure(400, 400)
	a := fig.Axes()
	h := mustHist(t, []float64{0, 1, 2}, []float64{10, 12}, nil)
	if err := PlotSignal(a, h, "sig", []float64{1, 1}, RGB(0, 0, 1)); err != nil {
		t.Fatalf("PlotSignal: %v", err)
	}
	if len(a.legend) != 1 || a.legend[0].kind != legendLine {
		t.Errorf("legend = %+v, want one line entry", a.legend)
	}
}

func TestPlot1D(t *testing.T) {
	fig := NewFigure(400, 400)
	a := fig.Axes()
	h := mustHist(t, []float64{0, 1, 2}, []float64{5, 8}, nil)
	if err := Plot1D(a, h, "mc", RGBA{}); err != nil {
		t.Fatalf("Plot1D: %v", err)
	}
	if err := Plot1D(a, Histogram{}, "", RGBA{}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Plot1D on empty histogram error = %v, want ErrShapeMismatch", err)
	}
}

func TestArrHelpers(t *testing.T) {
	sum := addArr([]float64{1, 2}, []float64{3, 4})
	if sum[0] != 4 || sum[1] != 6 {
		t.Errorf("addArr = %v", sum)
	}
	diff := subArr([]float64{1, 2}, []float64{3, 4})
	if diff[0] != -2 || diff[1] != -2 {
		t.Errorf("subArr = %v", diff)
	}
	if anyNonzero([]float64{0, 0}) {
		t.Error("anyNonzero on zeros = true")
	}
	if !anyNonzero([]float64{0, 1e-300}) {
		t.Error("anyNonzero missed a nonzero")
	}
}
