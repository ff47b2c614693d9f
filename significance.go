package ampl

import (
	"fmt"
	"math"
)

// Significance calculates the signed per-bin significance of observed
// counts against a background prediction, using the definition in
// https://cds.cern.ch/record/2643488:
//
//	s2 = dataErr^2 + bkgErr^2
//	z  = sign(n - b) * sqrt(2 * (n*ln(n*(b+s2)/(b^2+n*s2))
//	                             - (b^2/s2)*ln(1 + s2*(n-b)/(b*(b+s2)))))
//
// The formula is undefined for b <= 0 or s2 <= 0; those bins are reported
// with a NaN value and valid=false rather than emitting infinities, the same
// policy the ratio engine uses for zero-denominator bins. A zero count n
// takes the n*ln(...) term at its limit of 0.
//
// All four arrays must have the same length; otherwise Significance fails
// with ErrIncompatibleBinning.
func Significance(data, dataErrs, bkg, bkgErrs []float64) ([]float64, []bool, error) {
	n := len(data)
	if len(dataErrs) != n || len(bkg) != n || len(bkgErrs) != n {
		return nil, nil, fmt.Errorf("%w: significance inputs have lengths %d, %d, %d, %d",
			ErrIncompatibleBinning, n, len(dataErrs), len(bkg), len(bkgErrs))
	}

	vals := make([]float64, n)
	valid := make([]bool, n)
	for i := 0; i < n; i++ {
		obs, b := data[i], bkg[i]
		s2 := dataErrs[i]*dataErrs[i] + bkgErrs[i]*bkgErrs[i]
		if b <= 0 || s2 <= 0 {
			vals[i] = math.NaN()
			continue
		}

		var term1 float64
		if obs > 0 {
			term1 = obs * math.Log(obs*(b+s2)/(b*b+obs*s2))
		}
		term2 := (b * b / s2) * math.Log(1+s2*(obs-b)/(b*(b+s2)))
		inner := 2 * (term1 - term2)
		// Floating-point cancellation can push inner marginally negative
		// when obs is very close to b.
		if inner < 0 {
			inner = 0
		}
		z := math.Sqrt(inner)
		if obs < b {
			z = -z
		}
		vals[i] = z
		valid[i] = true
	}
	return vals, valid, nil
}
