package ampl

import "fmt"

// Background is one component of a stacked background prediction: a
// histogram, an optional per-bin systematic error, a legend label and a
// fill color. A zero Color means "assign from the figure's color cycle"
// at draw time.
type Background struct {
	Label    string
	Hist     Histogram
	SystErrs []float64
	Color    RGBA
}

// NewBackground builds a Background. systErrs is an optional array of
// absolute per-bin systematic errors; nil means none.
func NewBackground(label string, h Histogram, systErrs []float64) (Background, error) {
	if systErrs != nil && len(systErrs) != h.NBins() {
		return Background{}, fmt.Errorf("%w: %d syst errors for %d bins", ErrShapeMismatch, len(systErrs), h.NBins())
	}
	return Background{
		Label:    label,
		Hist:     h,
		SystErrs: append([]float64(nil), systErrs...),
	}, nil
}

// WithColor returns a copy of the background with its fill color set.
func (b Background) WithColor(c RGBA) Background {
	b.Color = c
	return b
}

// Layer is one stacked component ready for drawing: Bottom is the running
// total of everything stacked below it, Values the running total including
// this component. Variances holds the component's own statistical variance,
// not the accumulated one, so a per-layer error band reflects only that
// component's contribution.
type Layer struct {
	Label     string
	Color     RGBA
	Values    []float64
	Bottom    []float64
	Variances []float64
}

// Stacked is the result of stacking an ordered sequence of backgrounds.
// Layers are in the caller's order, bottom to top.
type Stacked struct {
	Edges  BinEdges
	Layers []Layer

	statVariance []float64 // elementwise sum of all layer variances
	systVariance []float64 // elementwise sum of squared syst errors
}

// Stack turns an ordered sequence of backgrounds into cumulative stacked
// layers. The stacking order is exactly the order given: it is a caller
// contract with visual meaning (bottom to top), never inferred or sorted.
//
// Every input must share identical bin edges within a small tolerance;
// otherwise Stack fails with ErrIncompatibleBinning. An empty sequence
// fails with ErrEmptyInput.
func Stack(bkgs []Background) (*Stacked, error) {
	if len(bkgs) == 0 {
		return nil, ErrEmptyInput
	}
	edges := bkgs[0].Hist.Edges
	n := edges.NBins()

	s := &Stacked{
		Edges:        append(BinEdges(nil), edges...),
		Layers:       make([]Layer, 0, len(bkgs)),
		statVariance: make([]float64, n),
		systVariance: make([]float64, n),
	}

	running := make([]float64, n)
	for i, b := range bkgs {
		if !edges.EqualWithin(b.Hist.Edges, binTolerance) {
			return nil, fmt.Errorf("%w: background %d (%q)", ErrIncompatibleBinning, i, b.Label)
		}
		if b.SystErrs != nil && len(b.SystErrs) != n {
			return nil, fmt.Errorf("%w: syst errors for background %d (%q)", ErrShapeMismatch, i, b.Label)
		}

		// Bottom must be a snapshot: the running total keeps growing and
		// must not retroactively change layers already emitted.
		bottom := append([]float64(nil), running...)
		for j, v := range b.Hist.Values {
			running[j] += v
			s.statVariance[j] += b.Hist.Variances[j]
			if b.SystErrs != nil {
				s.systVariance[j] += b.SystErrs[j] * b.SystErrs[j]
			}
		}
		s.Layers = append(s.Layers, Layer{
			Label:     b.Label,
			Color:     b.Color,
			Values:    append([]float64(nil), running...),
			Bottom:    bottom,
			Variances: append([]float64(nil), b.Hist.Variances...),
		})
	}
	return s, nil
}

// TotalValues returns the top of the stack, the elementwise sum of all
// stacked inputs.
func (s *Stacked) TotalValues() []float64 {
	top := s.Layers[len(s.Layers)-1].Values
	return append([]float64(nil), top...)
}

// TotalStatVariance returns the per-bin statistical variance of the stack
// total: the elementwise sum of every layer's variance, assuming the
// components are independent.
func (s *Stacked) TotalStatVariance() []float64 {
	return append([]float64(nil), s.statVariance...)
}

// TotalVariance returns the per-bin total variance of the stack: statistical
// plus squared systematic, summed across layers.
func (s *Stacked) TotalVariance() []float64 {
	tot := make([]float64, len(s.statVariance))
	for i := range tot {
		tot[i] = s.statVariance[i] + s.systVariance[i]
	}
	return tot
}

// TotalErrors returns sqrt of TotalVariance per bin.
func (s *Stacked) TotalErrors() []float64 {
	return sqrtAll(s.TotalVariance())
}

// HasSyst reports whether any stacked background carried systematic errors.
func (s *Stacked) HasSyst() bool {
	for _, v := range s.systVariance {
		if v != 0 {
			return true
		}
	}
	return false
}
