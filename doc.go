// Package growthref converts raw anthropometric measurements (height,
// weight, BMI, head circumference, skinfolds…) plus a child's age and
// sex into standardized z-scores and percentiles against the WHO 2006,
// WHO 2007 and CDC 2000 growth references.
//
// 🚀 How it works
//
//	Each reference publishes, per sex and per tabulated age or length,
//	three Box-Cox distribution parameters L, M and S. growthref locates
//	(or linearly interpolates) the triplet for your input, applies the
//	LMS transform — with the WHO extreme-tail correction where the
//	standard calls for it — and optionally maps z to a percentile via
//	the AS66 normal-CDF approximation.
//
// ✨ Why choose growthref?
//
//   - Faithful numerics — exact table grids, documented interpolation
//     weights, published AS66 coefficients, exact tail-correction knees
//   - Rock-solid guarantees — immutable tables, pure functions, safe
//     for unbounded concurrent callers with zero synchronization
//   - Pure Go — no cgo, no hidden deps
//   - Pluggable data — the full WHO/CDC datasets load through the same
//     Dataset interface the bundled refsample excerpts use
//
// Under the hood, everything is organized under four packages:
//
//	(root)     — Standard facades: WHO2006 / WHO2007 / CDC2000 validity,
//	             range windows, table selection, rounding, tail policy
//	lms/       — LMS records, reference tables, keys, interpolation
//	zscore/    — Box-Cox transform, tail correction, AS66 percentile
//	refsample/ — excerpt reference data for examples and tests
//
// ⚙️ Quick start:
//
//	std := growthref.NewWHO2007(refsample.WHO2007())
//	z, err := std.ZScore(growthref.BMIForAge, 15.25, 61, lms.Female)
//	p := growthref.Percentile(z)
//
// Callers who only need a boolean gate can use TryZScore; callers who
// must distinguish invalid input from internal table gaps pre-check
// with IsValidMeasurement or inspect the error with errors.Is.
package growthref
