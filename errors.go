package growthref

import "errors"

// The facade's error taxonomy. Three kinds propagate out of ZScore:
// caller-input errors (ErrIndicator, ErrSex, ErrMeasurement, ErrRange),
// reference-data defects (zscore.ErrDistribution), and internal table
// gaps (ErrNoTable here, lms.ErrNoNeighbors from the interpolator).
// TryZScore deliberately collapses all of them into a bare false;
// callers who need the distinction use ZScore plus errors.Is, or
// pre-check with IsValidMeasurement.
var (
	// ErrIndicator indicates the indicator is not supported by this standard.
	ErrIndicator = errors.New("growthref: indicator not supported by standard")
	// ErrSex indicates a sex value other than lms.Male or lms.Female.
	ErrSex = errors.New("growthref: sex must be male or female")
	// ErrMeasurement indicates a non-positive primary measurement.
	ErrMeasurement = errors.New("growthref: measurement must be positive")
	// ErrRange indicates the age-or-length value falls outside the
	// indicator's declared validity window. This is the expected failure
	// mode for untrusted input.
	ErrRange = errors.New("growthref: age or length outside the indicator's valid window")
	// ErrNoTable indicates the dataset wired into the standard carries no
	// table for a configured indicator — a wiring defect, not bad input.
	ErrNoTable = errors.New("growthref: dataset has no table for indicator")
)
