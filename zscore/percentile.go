package zscore

import "math"

// AS66 branch boundaries (Hill, 1973, Algorithm AS 66 "alnorm").
const (
	// as66Center bounds the low-|z| branch served by the first rational
	// polynomial; beyond it the continued-fraction form takes over.
	as66Center = 1.28
	// as66LowerTail is the largest |z| the lower-tail evaluation keeps
	// resolving before underflowing to zero.
	as66LowerTail = 7.0
	// as66UpperTail is the far-tail cutoff: beyond it the tail
	// probability is treated as exactly zero (percentile 0 or 100).
	as66UpperTail = 18.66
)

// AS66 rational-polynomial coefficients, reproduced verbatim from the
// published algorithm. Do not "tidy" these: the accuracy contract
// (~1e-7 near the center) holds only for the exact published values.
const (
	as66A1 = 0.398942280444
	as66A2 = 0.399903438504
	as66A3 = 5.75885480458
	as66A4 = 29.8213557808
	as66A5 = 2.62433121679
	as66A6 = 48.6959930692
	as66A7 = 5.92885724438

	as66B1  = 0.398942280385
	as66B2  = 3.8052e-8
	as66B3  = 1.00000615302
	as66B4  = 3.98064794e-4
	as66B5  = 1.98615381364
	as66B6  = 0.151679116635
	as66B7  = 5.29330324926
	as66B8  = 4.8385912808
	as66B9  = 15.1508972451
	as66B10 = 0.742380924027
	as66B11 = 30.789933034
	as66B12 = 3.99019417011
)

// Percentile converts a z-score to the percentage of the reference
// population expected to fall below the measurement: 100·Φ(z),
// evaluated with the AS66 approximation. The result is always within
// [0, 100], and the algorithm evaluates symmetric arguments through
// the same branch, so Percentile(z) and Percentile(−z) complement each
// other to within one rounding step.
func Percentile(z float64) float64 {
	return 100 * alnorm(z, false)
}

// alnorm evaluates the normal integral: the upper-tail probability
// P(Z > x) when upper is true, the lower tail P(Z ≤ x) otherwise.
// Structure and coefficients follow AS66 exactly: a low-|x| rational
// polynomial, a mid-range continued-fraction form, and a far tail
// treated as zero beyond as66UpperTail.
func alnorm(x float64, upper bool) float64 {
	up, z := upper, x
	if z < 0 {
		up = !up
		z = -z
	}

	var tail float64
	if z <= as66LowerTail || (up && z <= as66UpperTail) {
		y := 0.5 * z * z
		if z <= as66Center {
			tail = 0.5 - z*(as66A1-as66A2*y/
				(y+as66A3-as66A4/
					(y+as66A5+as66A6/
						(y+as66A7))))
		} else {
			tail = as66B1 * math.Exp(-y) /
				(z - as66B2 + as66B3/
					(z+as66B4+as66B5/
						(z-as66B6+as66B7/
							(z+as66B8-as66B9/
								(z+as66B10+as66B11/
									(z+as66B12))))))
		}
	}

	if !up {
		return 1 - tail
	}

	return tail
}
