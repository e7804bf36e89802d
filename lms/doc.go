// Package lms models the Box-Cox LMS reference tables that growth
// standards (WHO 2006, WHO 2007, CDC 2000) publish per indicator:
// for each sex and each tabulated age or length, three distribution
// parameters L (power), M (median) and S (coefficient of variation).
//
// 🚀 What lives here?
//
//	• Record    — an immutable (sex, measurement, L, M, S) table entry.
//	• Key       — the lightweight (sex, measurement) identity used for
//	  ordering and binary search; Male sorts before Female, then by
//	  numeric measurement.
//	• Table     — an ordered, immutable collection of Records for one
//	  (standard, indicator) pair, exposing O(1) exact lookup through an
//	  integer-cent keyed map and O(log n) neighbor queries through a
//	  sorted slice. Both views hold the same invariant: at most one
//	  Record per (sex, measurement).
//	• Increment — the finest measurement spacing a table supports
//	  (whole, half, or tenth units); measurements finer than the
//	  increment have no exact key and must be interpolated.
//	• Interpolation — linear blending of L, M and S between two
//	  bracketing Records, with weights rounded to a fixed precision.
//
// ✨ Guarantees:
//
//   - Tables are populated once at construction and never mutated:
//     any number of goroutines may call Lookup / Neighbors /
//     Interpolate concurrently without synchronization.
//   - No panics on caller input — only sentinel errors from errors.go.
//   - Lookup and interpolation are pure functions of table contents.
//
// ⚙️ Usage:
//
//	tbl, err := lms.NewTable("bmi-for-age", lms.Half, rows)
//	rec, ok := tbl.Lookup(lms.Female, 24.5)   // exact entry
//	syn, err := lms.Interpolate(tbl, lms.Female, 24.25)
//
// See example_test.go for runnable scenarios.
package lms
