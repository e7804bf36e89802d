// Package growthref - request validation shared by the facade entry points.
//
// Staged checks, cheapest first; only sentinel errors from errors.go.
// Range validation lives here — one layer above table lookup — so the
// tables themselves stay free of "is this input sane" concerns.
package growthref

import (
	"fmt"

	"github.com/katalvlaran/growthref/lms"
)

// validate verifies one facade request end to end and returns the
// indicator's axis configuration on success.
//
// Contract:
//   - sex must be lms.Male or lms.Female.
//   - ind must be configured for this standard.
//   - measurement must be strictly positive (the Box-Cox transform
//     raises measurement/M to a real power).
//   - ageOrLength must fall inside the indicator's [Min, Max] window,
//     boundaries inclusive; the raw value is checked, before any
//     rounding the axis policy may later apply.
func (s *Standard) validate(ind Indicator, measurement, ageOrLength float64, sex lms.Sex) (axisSpec, error) {
	if !sex.Valid() {
		return axisSpec{}, fmt.Errorf("%w: got %v", ErrSex, sex)
	}

	spec, ok := s.axes[ind]
	if !ok {
		return axisSpec{}, fmt.Errorf("%w: %s does not define %s", ErrIndicator, s.name, ind)
	}

	if measurement <= 0 {
		return axisSpec{}, fmt.Errorf("%w: got %g", ErrMeasurement, measurement)
	}

	if ageOrLength < spec.Min || ageOrLength > spec.Max {
		return axisSpec{}, fmt.Errorf("%w: %s/%s accepts [%g, %g], got %g",
			ErrRange, s.name, ind, spec.Min, spec.Max, ageOrLength)
	}

	return spec, nil
}
