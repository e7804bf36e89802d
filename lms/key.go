package lms

import "math"

// Increment is the finest measurement spacing a table supports,
// expressed in integer cents (hundredths of the measurement unit).
// A measurement finer than the increment has no exact key and must
// be resolved by interpolation instead.
type Increment int64

const (
	// Whole accepts only whole-number measurements (age in days or months
	// on a 1.0-spaced grid).
	Whole Increment = 100
	// Half accepts whole numbers and exact .5 fractions (the CDC grids,
	// which mix 0.5- and 1.0-spaced rows).
	Half Increment = 50
	// Tenth accepts one decimal place (length/height axes tabulated at
	// 0.1 cm).
	Tenth Increment = 10
)

// Valid reports whether inc is one of the supported increments.
func (inc Increment) Valid() bool {
	return inc == Whole || inc == Half || inc == Tenth
}

// Step returns the increment as a measurement-unit grid step.
func (inc Increment) Step() float64 { return float64(inc) / centsPerUnit }

const (
	centsPerUnit = 100.0
	// keyTolerance bounds how far (in cents) a measurement may sit from
	// the nearest cent before it is considered finer than any table grid.
	keyTolerance = 1e-6
)

// ExactKey derives the integer map key for (sex, measurement):
// round(measurement·100) + sexOffset, where the sex offset is the
// numeric Sex value. The boolean is false — "no exact key" — when the
// measurement carries more fractional precision than the increment
// supports; that sentinel is the caller's signal to fall through to
// interpolation.
func ExactKey(sex Sex, measurement float64, inc Increment) (int64, bool) {
	if !sex.Valid() || !inc.Valid() || measurement < 0 {
		return 0, false
	}

	scaled := measurement * centsPerUnit
	cents := math.Round(scaled)
	if math.Abs(scaled-cents) > keyTolerance {
		return 0, false // finer than a cent: no table carries it
	}
	c := int64(cents)
	if c%int64(inc) != 0 {
		return 0, false // between grid points of this table
	}

	return c + int64(sex), true
}

// gridKey builds the map key for a probe already expressed in cents.
// Probes are synthesized by the interpolator and always sit on a grid,
// so no exactness check is needed.
func gridKey(sex Sex, cents int64) int64 { return cents + int64(sex) }
