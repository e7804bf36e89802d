package growthref

import (
	"fmt"
	"math"

	"github.com/katalvlaran/growthref/lms"
	"github.com/katalvlaran/growthref/zscore"
)

// Dataset supplies the per-indicator reference tables a Standard
// dispatches over. The three published datasets are static constant
// data; any implementation must be read-only after construction
// (the bundled refsample package is the canonical shape).
type Dataset interface {
	// Table returns the reference table for an indicator, or ok=false
	// when the dataset carries none.
	Table(ind Indicator) (*lms.Table, bool)
}

// axisMode selects how the age-or-length axis is resolved against a
// table when no exact entry matches.
type axisMode uint8

const (
	// axisRoundWhole rounds the axis to a whole number before lookup;
	// the grid is dense enough (day-by-day) that interpolating between
	// rows is not worthwhile.
	axisRoundWhole axisMode = iota
	// axisFixedStep interpolates on a uniformly spaced grid.
	axisFixedStep
	// axisOrdered interpolates by ordered neighbor search, for grids
	// with mixed spacing (the CDC 0.5/1.0 pattern).
	axisOrdered
)

// axisSpec is one indicator's configuration within a standard: the
// admissible [Min, Max] window on the age-or-length axis, the exact-key
// increment, the miss policy, and whether the WHO tail correction
// applies to the resulting z-score.
type axisSpec struct {
	Min, Max    float64
	Inc         lms.Increment
	Mode        axisMode
	Step        float64 // grid step for axisFixedStep
	CorrectTail bool
}

// Standard is one growth reference's facade: pure configuration and
// dispatch over the lms tables and the zscore transform. Construct via
// NewWHO2006, NewWHO2007 or NewCDC2000; a Standard is immutable and
// safe for concurrent use.
type Standard struct {
	name string
	axes map[Indicator]axisSpec
	data Dataset
}

// Name returns the reference's display name, e.g. "WHO 2006".
func (s *Standard) Name() string { return s.name }

// IsValidIndicator reports whether the standard supports ind.
func (s *Standard) IsValidIndicator(ind Indicator) bool {
	_, ok := s.axes[ind]

	return ok
}

// IsValidMeasurement reports whether ageOrLength falls inside the
// indicator's declared validity window (boundaries inclusive).
// Unsupported indicators are never valid.
func (s *Standard) IsValidMeasurement(ind Indicator, ageOrLength float64) bool {
	spec, ok := s.axes[ind]

	return ok && ageOrLength >= spec.Min && ageOrLength <= spec.Max
}

// ZScore computes the z-score of measurement for a child of the given
// sex at the given age (or length), against this standard's reference
// table for ind.
//
// Failure modes, all immediate and never retried:
//   - ErrIndicator / ErrSex / ErrMeasurement / ErrRange — invalid input;
//   - ErrNoTable, lms.ErrNoNeighbors — a dataset gap for an in-range
//     query, i.e. an internal configuration defect;
//   - zscore.ErrDistribution — malformed reference data (S = 0).
func (s *Standard) ZScore(ind Indicator, measurement, ageOrLength float64, sex lms.Sex) (float64, error) {
	spec, err := s.validate(ind, measurement, ageOrLength, sex)
	if err != nil {
		return 0, err
	}

	rec, err := s.locate(spec, ind, ageOrLength, sex)
	if err != nil {
		return 0, err
	}

	return zscore.Compute(measurement, rec.L, rec.M, rec.S, spec.CorrectTail)
}

// TryZScore is the non-erroring variant of ZScore: it reports success
// and stores the score through z only when the computation succeeds,
// leaving *z untouched otherwise. The distinction between invalid
// input and internal failure is deliberately hidden; callers who need
// it use ZScore, or pre-check with IsValidMeasurement.
func (s *Standard) TryZScore(ind Indicator, measurement, ageOrLength float64, sex lms.Sex, z *float64) bool {
	v, err := s.ZScore(ind, measurement, ageOrLength, sex)
	if err != nil {
		return false
	}
	*z = v

	return true
}

// Flag computes the standard-deviation-based flag value for the same
// inputs ZScore takes. See zscore.Flag.
func (s *Standard) Flag(ind Indicator, measurement, ageOrLength float64, sex lms.Sex) (float64, error) {
	spec, err := s.validate(ind, measurement, ageOrLength, sex)
	if err != nil {
		return 0, err
	}

	rec, err := s.locate(spec, ind, ageOrLength, sex)
	if err != nil {
		return 0, err
	}

	return zscore.Flag(measurement, rec.L, rec.M, rec.S)
}

// Percentile converts a z-score to its percentile in [0, 100].
// Exposed at package level because it depends on nothing per-standard.
func Percentile(z float64) float64 { return zscore.Percentile(z) }

// locate resolves the (L, M, S) record for the age-or-length axis
// value: exact lookup first, then the axis miss policy.
func (s *Standard) locate(spec axisSpec, ind Indicator, ageOrLength float64, sex lms.Sex) (lms.Record, error) {
	tbl, ok := s.data.Table(ind)
	if !ok {
		return lms.Record{}, fmt.Errorf("%w: %s/%s", ErrNoTable, s.name, ind)
	}

	axis := ageOrLength
	if spec.Mode == axisRoundWhole {
		axis = math.Round(axis)
	}

	if rec, found := tbl.Lookup(sex, axis); found {
		return rec, nil
	}

	switch spec.Mode {
	case axisFixedStep:
		return lms.InterpolateFixed(tbl, sex, axis, spec.Step)
	case axisOrdered:
		return lms.Interpolate(tbl, sex, axis)
	default:
		// Whole-rounded axes admit no interpolation: a miss after
		// rounding means the table lacks a row it is declared to have.
		return lms.Record{}, fmt.Errorf("table %q: %w: %v %g",
			tbl.Name(), lms.ErrNoNeighbors, sex, axis)
	}
}
