// SPDX-License-Identifier: MIT
// Package: lms
//
// Purpose:
//   - Synthesize an (L, M, S) triplet for a measurement that falls strictly
//     between two tabulated neighbors, by linear blending weighted with the
//     normalized distance to each bound.
//   - Support the two neighbor-finding policies the published standards
//     need: a fixed-step policy for uniform grids (1.0-spaced ages,
//     0.1-spaced lengths) and an ordered search for the CDC-style mixed
//     0.5/1.0 grids.
//
// Determinism:
//   - Blend weights are rounded to five decimal places before use: the
//     neighbor spacing is not always 1.0 (it may be 0.5 or 0.1), and the
//     division producing the weights would otherwise leak float drift into
//     every blended parameter. The rounding is a fixed, testable contract.
package lms

import (
	"fmt"
	"math"
)

// weightScale fixes blend-weight precision at five decimal places.
const weightScale = 1e5

// roundWeight rounds a blend weight to the fixed precision.
func roundWeight(w float64) float64 { return math.Round(w*weightScale) / weightScale }

// blend linearly mixes the L, M and S of two bracketing records at
// measurement m. lower and upper may be the same record (exact hit),
// in which case the stored parameters pass through untouched.
func blend(lower, upper Record, m float64) Record {
	diff := upper.Measurement - lower.Measurement
	if diff == 0 {
		return Record{Sex: lower.Sex, Measurement: m, L: lower.L, M: lower.M, S: lower.S}
	}

	wl := roundWeight((upper.Measurement - m) / diff)
	wu := roundWeight(1 - wl)

	return Record{
		Sex:         lower.Sex,
		Measurement: m,
		L:           lower.L*wl + upper.L*wu,
		M:           lower.M*wl + upper.M*wu,
		S:           lower.S*wl + upper.S*wu,
	}
}

// InterpolateFixed resolves measurement m against a uniformly spaced
// grid: lower = floor_to_grid(m), upper = lower + step. Both bounds
// must be tabulated; a miss means m is outside the populated span (or
// the table has a gap) and surfaces as ErrNoNeighbors.
func InterpolateFixed(t *Table, sex Sex, m, step float64) (Record, error) {
	lower, upper, err := t.NeighborsOnGrid(sex, m, step)
	if err != nil {
		return Record{}, err
	}

	return blend(lower, upper, m), nil
}

// NeighborsOnGrid finds the bracketing records of m on a uniform grid
// of the given step, using the integer-cent keyed view.
func (t *Table) NeighborsOnGrid(sex Sex, m, step float64) (lower, upper Record, err error) {
	stepCents := int64(math.Round(step * centsPerUnit))
	if stepCents <= 0 || !sex.Valid() || m < 0 {
		return Record{}, Record{}, fmt.Errorf("table %q: %w: step %g, %v %g",
			t.name, ErrNoNeighbors, step, sex, m)
	}

	lowerCents := int64(math.Floor(m/step)) * stepCents
	lo, okLo := t.at(sex, lowerCents)
	up, okUp := t.at(sex, lowerCents+stepCents)
	if !okLo || !okUp {
		return Record{}, Record{}, fmt.Errorf("table %q: %w: %v %g on %g grid",
			t.name, ErrNoNeighbors, sex, m, step)
	}

	return lo, up, nil
}

// Interpolate resolves measurement m against a table of arbitrary,
// possibly non-uniform spacing by ordered neighbor search (see
// Table.Neighbors) and linear blending. This is the policy for the
// CDC grids, whose rows are 0.5 apart near the range ends and 1.0
// apart in between.
func Interpolate(t *Table, sex Sex, m float64) (Record, error) {
	lower, upper, err := t.Neighbors(sex, m)
	if err != nil {
		return Record{}, err
	}

	return blend(lower, upper, m), nil
}
