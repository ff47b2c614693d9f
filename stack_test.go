package ampl

import (
	"errors"
	"math"
	"testing"
)

func mustHist(t *testing.T, edges, values, variances []float64) Histogram {
	t.Helper()
	h, err := NewHistogram(edges, values, variances)
	if err != nil {
		t.Fatalf("NewHistogram: %v", err)
	}
	return h
}

func TestStackEmptyInput(t *testing.T) {
	if _, err := Stack(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Stack(nil) error = %v, want ErrEmptyInput", err)
	}
	if _, err := Stack([]Background{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Stack(empty) error = %v, want ErrEmptyInput", err)
	}
}

func TestStackIncompatibleBinning(t *testing.T) {
	a := Background{Label: "a", Hist: mustHist(t, []float64{0, 1, 2}, []float64{1, 1}, nil)}
	b := Background{Label: "b", Hist: mustHist(t, []float64{0, 1, 3}, []float64{1, 1}, nil)}
	_, err := Stack([]Background{a, b})
	if !errors.Is(err, ErrIncompatibleBinning) {
		t.Errorf("Stack error = %v, want ErrIncompatibleBinning", err)
	}
}

func TestStackCumulativeLayers(t *testing.T) {
	edges := []float64{0, 1, 2, 3}
	a := Background{Label: "a", Hist: mustHist(t, edges, []float64{1, 2, 3}, nil)}
	b := Background{Label: "b", Hist: mustHist(t, edges, []float64{4, 5, 6}, nil)}
	c := Background{Label: "c", Hist: mustHist(t, edges, []float64{7, 8, 9}, nil)}

	s, err := Stack([]Background{a, b, c})
	if err != nil {
		t.Fatalf("Stack: %v", err)
	}
	if len(s.Layers) != 3 {
		t.Fatalf("len(Layers) = %d, want 3", len(s.Layers))
	}

	// The bottom of layer i is the top of layer i-1, and the first layer
	// starts at zero.
	for j, v := range s.Layers[0].Bottom {
		if v != 0 {
			t.Errorf("Layers[0].Bottom[%d] = %v, want 0", j, v)
		}
	}
	for i := 1; i < len(s.Layers); i++ {
		for j := range s.Layers[i].Bottom {
			if s.Layers[i].Bottom[j] != s.Layers[i-1].Values[j] {
				t.Errorf("Layers[%d].Bottom[%d] = %v, want %v",
					i, j, s.Layers[i].Bottom[j], s.Layers[i-1].Values[j])
			}
		}
	}

	wantTop := []float64{12, 15, 18}
	top := s.TotalValues()
	for j := range wantTop {
		if top[j] != wantTop[j] {
			t.Errorf("TotalValues[%d] = %v, want %v", j, top[j], wantTop[j])
		}
	}
}

func TestStackOrderPreserved(t *testing.T) {
	edges := []float64{0, 1}
	a := Background{Label: "small", Hist: mustHist(t, edges, []float64{1}, nil)}
	b := Background{Label: "big", Hist: mustHist(t, edges, []float64{100}, nil)}

	s, err := Stack([]Background{b, a})
	if err != nil {
		t.Fatalf("Stack: %v", err)
	}
	if s.Layers[0].Label != "big" || s.Layers[1].Label != "small" {
		t.Errorf("layer order = [%s %s], want caller order [big small]",
			s.Layers[0].Label, s.Layers[1].Label)
	}
	if s.Layers[1].Bottom[0] != 100 {
		t.Errorf("Layers[1].Bottom[0] = %v, want 100", s.Layers[1].Bottom[0])
	}
}

func TestStackLayerVarianceIsOwn(t *testing.T) {
	edges := []float64{0, 1}
	a := Background{Label: "a", Hist: mustHist(t, edges, []float64{9}, []float64{9})}
	b := Background{Label: "b", Hist: mustHist(t, edges, []float64{16}, []float64{16})}

	s, err := Stack([]Background{a, b})
	if err != nil {
		t.Fatalf("Stack: %v", err)
	}
	if s.Layers[1].Variances[0] != 16 {
		t.Errorf("Layers[1].Variances[0] = %v, want own variance 16", s.Layers[1].Variances[0])
	}
	if got := s.TotalStatVariance()[0]; got != 25 {
		t.Errorf("TotalStatVariance[0] = %v, want 25", got)
	}
}

func TestStackTotalVarianceWithSyst(t *testing.T) {
	edges := []float64{0, 1}
	a, err := NewBackground("a", mustHist(t, edges, []float64{9}, []float64{9}), []float64{4})
	if err != nil {
		t.Fatalf("NewBackground: %v", err)
	}
	b, err := NewBackground("b", mustHist(t, edges, []float64{16}, []float64{16}), []float64{3})
	if err != nil {
		t.Fatalf("NewBackground: %v", err)
	}

	s, err := Stack([]Background{a, b})
	if err != nil {
		t.Fatalf("Stack: %v", err)
	}
	if !s.HasSyst() {
		t.Error("HasSyst() = false, want true")
	}
	// stat 9+16 plus syst 4^2+3^2
	if got := s.TotalVariance()[0]; got != 50 {
		t.Errorf("TotalVariance[0] = %v, want 50", got)
	}
	if got := s.TotalErrors()[0]; math.Abs(got-math.Sqrt(50)) > 1e-12 {
		t.Errorf("TotalErrors[0] = %v, want sqrt(50)", got)
	}
}

func TestStackNoSyst(t *testing.T) {
	edges := []float64{0, 1}
	a := Background{Label: "a", Hist: mustHist(t, edges, []float64{9}, nil)}
	s, err := Stack([]Background{a})
	if err != nil {
		t.Fatalf("Stack: %v", err)
	}
	if s.HasSyst() {
		t.Error("HasSyst() = true, want false")
	}
}

func TestNewBackgroundSystLengthMismatch(t *testing.T) {
	h := mustHist(t, []float64{0, 1, 2}, []float64{1, 2}, nil)
	_, err := NewBackground("bad", h, []float64{1})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("NewBackground error = %v, want ErrShapeMismatch", err)
	}
}
