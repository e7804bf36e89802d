// Package zscore implements the Box-Cox (LMS) z-score transform used
// by the WHO and CDC growth references, the WHO extreme-tail
// correction, and the AS66 normal-CDF approximation that maps a
// z-score to a percentile.
//
// 🚀 What is an LMS z-score?
//
//	Growth references tabulate, per age and sex, three parameters of a
//	Box-Cox power-normal distribution: L (power), M (median) and S
//	(coefficient of variation). A raw measurement x maps to
//
//	    z = ((x/M)^L − 1) / (L·S)
//
//	the number of standard deviations x lies from the reference median.
//
// ✨ Key pieces:
//   - Compute — the transform above, with the WHO piecewise tail
//     correction for |z| > 3 when the standard calls for it.
//   - Flag    — the standard-deviation-based flag value some
//     epidemiology tools expect; independent of z.
//   - Percentile — 100·Φ(z) via the published AS66 rational-polynomial
//     approximation (Hill, 1973), accurate to ~1e-7 near the center.
//
// All functions are pure arithmetic: no state, no I/O, safe for any
// number of concurrent callers.
package zscore
