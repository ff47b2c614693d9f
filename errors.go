package ampl

import "errors"

// Sentinel errors returned by the histogram core. All of them indicate
// caller programming errors rather than transient conditions: nothing here
// is retried or recovered internally. Zero-denominator bins in ratio
// computations are NOT errors; they are reported through RatioResult.Valid.
var (
	// ErrShapeMismatch is returned when an array length is inconsistent
	// with the declared bin count (len(values) != len(edges)-1, or an
	// error array of the wrong length).
	ErrShapeMismatch = errors.New("ampl: array length inconsistent with bin count")

	// ErrIncompatibleBinning is returned when bin edges differ between
	// histograms combined in a single operation.
	ErrIncompatibleBinning = errors.New("ampl: bin edges differ between histograms")

	// ErrEmptyInput is returned when an operation requiring at least one
	// histogram receives none.
	ErrEmptyInput = errors.New("ampl: at least one histogram is required")

	// ErrNotPlottable is returned when a source object violates the
	// plottable histogram protocol (nil edges or values).
	ErrNotPlottable = errors.New("ampl: source does not satisfy the plottable histogram protocol")
)
