package zscore

import (
	"errors"
	"math"
)

// ErrDistribution indicates an unusable (L, M, S) triplet: the
// transform divides by L·S, so neither parameter may be zero. This is
// a reference-data defect, never a caller-input problem, and retrying
// cannot help.
var ErrDistribution = errors.New("zscore: invalid distribution parameter (need L ≠ 0 and S ≠ 0)")

// Compute maps a raw measurement to its z-score under the Box-Cox
// distribution (L, M, S).
//
// Core formula (L ≠ 0; the L = 0 logarithmic branch is exercised by
// no supported reference and is rejected alongside S = 0):
//
//	z = ((x/M)^L − 1) / (L·S)
//
// When tailCorrection is true and |z| > 3, z is re-derived with the
// published WHO correction: the power transform grows unstable in the
// extreme tails, so beyond ±3 SD the score is restated linearly in
// units of the local SD2→SD3 gap,
//
//	z > 3:   z' =  3 + (x − SD3) / (SD3 − SD2)
//	z < −3:  z' = −3 + (x − SD3neg) / (SD2neg − SD3neg)
//
// where SDk = M·(1 + L·S·k)^(1/L). The knee at exactly ±3 is exact —
// scores in [−3, 3] pass through untouched — and the corrected score
// is continuous across the boundary.
func Compute(measurement, l, m, s float64, tailCorrection bool) (float64, error) {
	if s == 0 || l == 0 {
		return 0, ErrDistribution
	}

	z := (math.Pow(measurement/m, l) - 1) / (l * s)
	if !tailCorrection {
		return z, nil
	}

	switch {
	case z > 3:
		sd3 := cutoff(l, m, s, 3)
		sd2 := cutoff(l, m, s, 2)
		z = 3 + (measurement-sd3)/(sd3-sd2)
	case z < -3:
		sd3 := cutoff(l, m, s, -3)
		sd2 := cutoff(l, m, s, -2)
		z = -3 + (measurement-sd3)/(sd2-sd3)
	}

	return z, nil
}

// cutoff returns the measurement value sitting exactly k standard
// deviations from the median under (L, M, S).
func cutoff(l, m, s, k float64) float64 {
	return m * math.Pow(1+l*s*k, 1/l)
}

// Flag returns the standard-deviation-based flag value
// (measurement − M) / stddev, where stddev is the one-sided SD gap on
// whichever side of the median the measurement falls:
//
//	x > M:  stddev = SD(+1) − M
//	x < M:  stddev = M − SD(−1)
//
// One historical code path emits this value for compatibility with an
// external epidemiology tool; it is independent of the z-score and
// never feeds back into it.
func Flag(measurement, l, m, s float64) (float64, error) {
	if s == 0 || l == 0 {
		return 0, ErrDistribution
	}

	switch {
	case measurement > m:
		return (measurement - m) / (cutoff(l, m, s, 1) - m), nil
	case measurement < m:
		return (measurement - m) / (m - cutoff(l, m, s, -1)), nil
	default:
		return 0, nil
	}
}
