package ampl

import (
	"fmt"
	"math"
)

// binTolerance is the absolute and relative tolerance used when comparing
// bin edges from different histograms.
const binTolerance = 1e-9

// BinEdges is an ordered sequence of N+1 strictly increasing boundaries
// defining N bins. All histograms participating in one plot share the same
// edges.
type BinEdges []float64

// NBins returns the number of bins described by the edges.
func (e BinEdges) NBins() int {
	if len(e) == 0 {
		return 0
	}
	return len(e) - 1
}

// Centers returns the midpoint of each bin. Data points and markers are
// drawn at bin centers.
func (e BinEdges) Centers() []float64 {
	n := e.NBins()
	c := make([]float64, n)
	for i := 0; i < n; i++ {
		c[i] = 0.5 * (e[i] + e[i+1])
	}
	return c
}

// EqualWithin reports whether two edge sequences describe the same binning,
// comparing each boundary with absolute or relative tolerance tol.
func (e BinEdges) EqualWithin(o BinEdges, tol float64) bool {
	if len(e) != len(o) {
		return false
	}
	for i := range e {
		d := math.Abs(e[i] - o[i])
		if d <= tol {
			continue
		}
		if d <= tol*math.Max(math.Abs(e[i]), math.Abs(o[i])) {
			continue
		}
		return false
	}
	return true
}

func (e BinEdges) validate() error {
	if len(e) < 2 {
		return fmt.Errorf("%w: need at least 2 edges, got %d", ErrShapeMismatch, len(e))
	}
	for i := 1; i < len(e); i++ {
		if !(e[i] > e[i-1]) {
			return fmt.Errorf("%w: edges must be strictly increasing (edge %d)", ErrShapeMismatch, i)
		}
	}
	return nil
}

// Histogram is a normalized, pre-binned 1D histogram: bin edges, bin values
// and per-bin variances. It is an immutable snapshot; the constructors copy
// every input slice, so callers may mutate or discard their buffers after a
// plotting call returns.
type Histogram struct {
	Edges     BinEdges
	Values    []float64
	Variances []float64
}

// NewHistogram builds a Histogram from explicit bin edges and bin values.
//
// If variances is nil, Poisson counting statistics are assumed and each
// bin's variance defaults to max(value, 0). The clamp keeps the variance
// non-negative when a background-subtracted input carries negative bin
// contents; it is an approximation, not a statistically exact treatment of
// such bins.
func NewHistogram(edges, values, variances []float64) (Histogram, error) {
	e := BinEdges(append([]float64(nil), edges...))
	if err := e.validate(); err != nil {
		return Histogram{}, err
	}
	n := e.NBins()
	if len(values) != n {
		return Histogram{}, fmt.Errorf("%w: %d values for %d bins", ErrShapeMismatch, len(values), n)
	}
	v := append([]float64(nil), values...)

	var vars []float64
	if variances == nil {
		vars = make([]float64, n)
		for i, val := range v {
			vars[i] = math.Max(val, 0)
		}
	} else {
		if len(variances) != n {
			return Histogram{}, fmt.Errorf("%w: %d variances for %d bins", ErrShapeMismatch, len(variances), n)
		}
		vars = append([]float64(nil), variances...)
		for i, vv := range vars {
			if vv < 0 {
				return Histogram{}, fmt.Errorf("%w: negative variance in bin %d", ErrShapeMismatch, i)
			}
		}
	}
	return Histogram{Edges: e, Values: v, Variances: vars}, nil
}

// PlottableHistogram is the capability set satisfied by external histogram
// objects: expose bin edges, per-bin values, and optionally per-bin
// variances. BinVariances may return nil, in which case Poisson statistics
// are assumed on adaptation.
type PlottableHistogram interface {
	BinEdges() []float64
	BinValues() []float64
	BinVariances() []float64
}

// FromPlottable adapts any PlottableHistogram into a Histogram, copying all
// exposed slices. A source returning nil edges or values violates the
// protocol and yields ErrNotPlottable.
func FromPlottable(p PlottableHistogram) (Histogram, error) {
	if p == nil {
		return Histogram{}, ErrNotPlottable
	}
	edges := p.BinEdges()
	values := p.BinValues()
	if edges == nil || values == nil {
		return Histogram{}, ErrNotPlottable
	}
	return NewHistogram(edges, values, p.BinVariances())
}

// NBins returns the number of bins.
func (h Histogram) NBins() int { return h.Edges.NBins() }

// Errors returns the per-bin statistical error, sqrt of each variance.
func (h Histogram) Errors() []float64 {
	return sqrtAll(h.Variances)
}

func sqrtAll(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = math.Sqrt(x)
	}
	return out
}
