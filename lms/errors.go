package lms

import "errors"

var (
	// ErrEmptyTable indicates a table was constructed with no records.
	ErrEmptyTable = errors.New("lms: table must contain at least one record")
	// ErrBadRecord indicates a record violates the LMS parameter bounds
	// (measurement < 0, |L| > 130, |M| > 200, |S| > 100, or S = 0).
	ErrBadRecord = errors.New("lms: record parameter out of bounds")
	// ErrOffGrid indicates a record's measurement does not sit on the
	// table's declared increment and would be unreachable by exact lookup.
	ErrOffGrid = errors.New("lms: record measurement off the table increment")
	// ErrDuplicateRecord indicates two records collide on (sex, measurement).
	ErrDuplicateRecord = errors.New("lms: duplicate (sex, measurement) record")
	// ErrBadIncrement indicates an unsupported table increment.
	ErrBadIncrement = errors.New("lms: increment must be Whole, Half, or Tenth")
	// ErrNoNeighbors indicates no bracketing neighbors exist within the
	// populated span of the table. Measurements that passed the standard's
	// declared range checks must always find neighbors, so this error
	// signals a gap in reference-table construction, not caller misuse.
	ErrNoNeighbors = errors.New("lms: no bracketing neighbors in table span")
)
