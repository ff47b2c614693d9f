package ampl

import (
	"fmt"
	"math"
)

// RatioMode selects how a ratio pane compares a numerator histogram
// (typically observed data) against a denominator aggregate (typically the
// stack total).
type RatioMode int

const (
	// ModeRatio plots numerator / denominator per bin.
	ModeRatio RatioMode = iota

	// ModeDifference plots numerator - denominator per bin.
	ModeDifference

	// ModeRelativeDifference plots (numerator - denominator) / denominator.
	ModeRelativeDifference

	// ModeSignificance plots the per-bin signed significance of the
	// numerator against the denominator.
	ModeSignificance
)

func (m RatioMode) String() string {
	switch m {
	case ModeRatio:
		return "ratio"
	case ModeDifference:
		return "difference"
	case ModeRelativeDifference:
		return "relative difference"
	case ModeSignificance:
		return "significance"
	default:
		return fmt.Sprintf("RatioMode(%d)", int(m))
	}
}

// RatioResult holds a per-bin comparison series. All three arrays have the
// numerator's bin count and align index-for-index with its bin edges.
//
// Bins where the comparison is undefined (zero denominator in ratio and
// relative-difference modes, undefined significance) carry a NaN value and
// Valid=false. Such bins are expected in sparsely populated denominators
// and are a data condition, not an error: renderers skip them instead of
// drawing an error bar there.
type RatioResult struct {
	Values []float64
	Errors []float64
	Valid  []bool
}

// ComputeRatio compares a numerator histogram against a denominator given
// as per-bin total values and total variance (as produced by
// Stacked.TotalValues and Stacked.TotalVariance).
//
// The numerator and denominator must share the same bin count; otherwise
// ComputeRatio fails with ErrIncompatibleBinning.
func ComputeRatio(num Histogram, denomValues, denomVariance []float64, mode RatioMode) (RatioResult, error) {
	n := num.NBins()
	if len(denomValues) != n || len(denomVariance) != n {
		return RatioResult{}, fmt.Errorf("%w: numerator has %d bins, denominator %d",
			ErrIncompatibleBinning, n, len(denomValues))
	}

	res := RatioResult{
		Values: make([]float64, n),
		Errors: make([]float64, n),
		Valid:  make([]bool, n),
	}

	switch mode {
	case ModeRatio, ModeRelativeDifference:
		for i := 0; i < n; i++ {
			d := denomValues[i]
			if d == 0 {
				res.Values[i] = math.NaN()
				res.Valid[i] = false
				continue
			}
			v := num.Values[i] / d
			if mode == ModeRelativeDifference {
				v = (num.Values[i] - d) / d
			}
			res.Values[i] = v
			res.Errors[i] = quotientError(v, num.Values[i], num.Variances[i], d, denomVariance[i])
			res.Valid[i] = true
		}
	case ModeDifference:
		for i := 0; i < n; i++ {
			res.Values[i] = num.Values[i] - denomValues[i]
			res.Errors[i] = math.Sqrt(num.Variances[i] + denomVariance[i])
			res.Valid[i] = true
		}
	case ModeSignificance:
		sig, valid, err := Significance(num.Values, num.Errors(), denomValues, sqrtAll(denomVariance))
		if err != nil {
			return RatioResult{}, err
		}
		res.Values = sig
		res.Valid = valid
		// Significances are drawn as bare points without error bars.
	default:
		return RatioResult{}, fmt.Errorf("ampl: unknown ratio mode %d", int(mode))
	}
	return res, nil
}

// quotientError propagates the uncertainty of a quotient of two independent
// random variables to first order:
//
//	err = |value| * sqrt(varNum/num^2 + varDen/den^2)
//
// A zero numerator would divide by zero in its relative-variance term; that
// term is treated as zero instead, since a zero count contributes no
// relative spread in this approximation.
func quotientError(value, num, varNum, den, varDen float64) float64 {
	rel := varDen / (den * den)
	if num != 0 {
		rel += varNum / (num * num)
	}
	return math.Abs(value) * math.Sqrt(rel)
}
