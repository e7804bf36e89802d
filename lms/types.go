package lms

import "fmt"

// Sex selects the male or female half of a reference table.
// The numeric values double as the per-sex key offset in the
// integer-cent keying scheme (see ExactKey), so Male and Female
// entries can never collide inside one table.
type Sex uint8

const (
	// Male sorts before Female in table order.
	Male Sex = 1
	// Female sorts after Male in table order.
	Female Sex = 2
)

// Valid reports whether s is Male or Female.
func (s Sex) Valid() bool { return s == Male || s == Female }

// String implements fmt.Stringer.
func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return fmt.Sprintf("Sex(%d)", uint8(s))
	}
}

// Parameter bounds guarding against malformed table data. Published
// WHO/CDC values sit far inside these windows; anything outside them
// is a transcription error, not a legitimate reference entry.
const (
	maxAbsL = 130.0
	maxAbsM = 200.0
	maxAbsS = 100.0
)

// Record is one immutable reference-table entry: the Box-Cox L
// (power), M (median) and S (coefficient of variation) tabulated for
// one sex at one measurement of the age-or-length axis.
//
// Identity and ordering are defined by (Sex, Measurement) only;
// L, M and S are payload. Records are plain values — copy freely.
type Record struct {
	Sex         Sex
	Measurement float64
	L, M, S     float64
}

// Key returns the ordering identity of the record.
func (r Record) Key() Key { return Key{Sex: r.Sex, Measurement: r.Measurement} }

// Validate checks the record against the LMS parameter bounds.
// S must be non-zero: the z-score transform divides by it.
func (r Record) Validate() error {
	switch {
	case !r.Sex.Valid():
		return fmt.Errorf("%w: sex %v", ErrBadRecord, r.Sex)
	case r.Measurement < 0:
		return fmt.Errorf("%w: measurement %g < 0", ErrBadRecord, r.Measurement)
	case r.L < -maxAbsL || r.L > maxAbsL:
		return fmt.Errorf("%w: L = %g", ErrBadRecord, r.L)
	case r.M < -maxAbsM || r.M > maxAbsM:
		return fmt.Errorf("%w: M = %g", ErrBadRecord, r.M)
	case r.S < -maxAbsS || r.S > maxAbsS || r.S == 0:
		return fmt.Errorf("%w: S = %g", ErrBadRecord, r.S)
	}

	return nil
}

// Key is the lightweight (sex, measurement) lookup identity used to
// drive ordering and binary search. It replaces the original design's
// zero-valued placeholder records: a Key carries no L/M/S at all, so
// there is nothing meaningless to special-case.
type Key struct {
	Sex         Sex
	Measurement float64
}

// Less reports whether k orders strictly before o: Male before Female,
// then by numeric measurement. The order is total and consistent with
// Key equality, which binary search over sorted tables relies on.
func (k Key) Less(o Key) bool {
	if k.Sex != o.Sex {
		return k.Sex < o.Sex
	}

	return k.Measurement < o.Measurement
}
