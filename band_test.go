package ampl

import (
	"errors"
	"testing"
)

func TestStepPoints(t *testing.T) {
	xs, ys := stepPoints([]float64{0, 1, 2}, []float64{3, 7})
	wantX := []float64{0, 1, 1, 2}
	wantY := []float64{3, 3, 7, 7}
	if len(xs) != len(wantX) {
		t.Fatalf("xs = %v, want %v", xs, wantX)
	}
	for i := range wantX {
		if xs[i] != wantX[i] || ys[i] != wantY[i] {
			t.Errorf("point %d = (%v,%v), want (%v,%v)", i, xs[i], ys[i], wantX[i], wantY[i])
		}
	}
}

func TestBandShapeMismatch(t *testing.T) {
	fig := NewFigure(100, 100)
	a := fig.Axes()
	a.SetXLim(0, 2)
	a.SetYLim(0, 10)

	tests := []struct {
		name      string
		edges     []float64
		low, high []float64
	}{
		{"short low", []float64{0, 1, 2}, []float64{1}, []float64{2, 2}},
		{"short high", []float64{0, 1, 2}, []float64{1, 1}, []float64{2}},
		{"no bins", []float64{0}, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := a.Band(tt.edges, tt.low, tt.high, Black); !errors.Is(err, ErrShapeMismatch) {
				t.Errorf("Band error = %v, want ErrShapeMismatch", err)
			}
			if err := a.HatchBand(tt.edges, tt.low, tt.high, Black); !errors.Is(err, ErrShapeMismatch) {
				t.Errorf("HatchBand error = %v, want ErrShapeMismatch", err)
			}
		})
	}
}

func TestBandFillsRegion(t *testing.T) {
	fig := NewFigure(200, 200)
	a := fig.Axes()
	a.SetXLim(0, 2)
	a.SetYLim(0, 10)

	if err := a.Band([]float64{0, 1, 2}, []float64{2, 2}, []float64{8, 8}, RGB(0, 0, 1)); err != nil {
		t.Fatalf("Band: %v", err)
	}
	// Probe the middle of the band.
	px := int(a.PX(1))
	py := int(a.PY(5))
	r, g, b, _ := fig.Context().Image().At(px, py).RGBA()
	if r>>8 != 0 || g>>8 != 0 || b>>8 != 255 {
		t.Errorf("band pixel = (%d,%d,%d), want blue", r>>8, g>>8, b>>8)
	}
	// Outside the band the background stays untouched.
	py = int(a.PY(9.5))
	r, g, b, _ = fig.Context().Image().At(px, py).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("outside pixel = (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

func TestHatchBandLeavesGaps(t *testing.T) {
	fig := NewFigure(200, 200)
	a := fig.Axes()
	a.SetXLim(0, 2)
	a.SetYLim(0, 10)

	if err := a.HatchBand([]float64{0, 1, 2}, []float64{2, 2}, []float64{8, 8}, Black); err != nil {
		t.Fatalf("HatchBand: %v", err)
	}
	// A hatched band is not a solid fill: some interior pixels stay at the
	// background color.
	img := fig.Context().Image()
	white := 0
	for px := int(a.PX(0.2)); px < int(a.PX(1.8)); px++ {
		r, g, b, _ := img.At(px, int(a.PY(5))).RGBA()
		if r>>8 == 255 && g>>8 == 255 && b>>8 == 255 {
			white++
		}
	}
	if white == 0 {
		t.Error("hatch band filled solid, want gaps between hatch lines")
	}
}
