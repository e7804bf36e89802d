package growthref

import "fmt"

// Indicator names a measured quantity paired with its covariate axis,
// e.g. "BMI-for-age" (axis: age) or "weight-for-length" (axis: length).
// Which indicators a Standard supports, and over which axis window,
// is per-standard configuration.
type Indicator uint8

const (
	// WeightForAge — body weight (kg) against age.
	WeightForAge Indicator = iota + 1
	// LengthForAge — recumbent length (cm) against age.
	LengthForAge
	// HeightForAge — standing height (cm) against age.
	HeightForAge
	// BMIForAge — body-mass index (kg/m²) against age.
	BMIForAge
	// HeadCircumferenceForAge — head circumference (cm) against age.
	HeadCircumferenceForAge
	// ArmCircumferenceForAge — mid-upper-arm circumference (cm) against age.
	ArmCircumferenceForAge
	// TricepsSkinfoldForAge — triceps skinfold thickness (mm) against age.
	TricepsSkinfoldForAge
	// SubscapularSkinfoldForAge — subscapular skinfold thickness (mm) against age.
	SubscapularSkinfoldForAge
	// WeightForLength — body weight (kg) against recumbent length (cm).
	WeightForLength
	// WeightForHeight — body weight (kg) against standing height (cm).
	WeightForHeight
)

var indicatorNames = map[Indicator]string{
	WeightForAge:              "weight-for-age",
	LengthForAge:              "length-for-age",
	HeightForAge:              "height-for-age",
	BMIForAge:                 "bmi-for-age",
	HeadCircumferenceForAge:   "head-circumference-for-age",
	ArmCircumferenceForAge:    "arm-circumference-for-age",
	TricepsSkinfoldForAge:     "triceps-skinfold-for-age",
	SubscapularSkinfoldForAge: "subscapular-skinfold-for-age",
	WeightForLength:           "weight-for-length",
	WeightForHeight:           "weight-for-height",
}

// String implements fmt.Stringer.
func (ind Indicator) String() string {
	if name, ok := indicatorNames[ind]; ok {
		return name
	}

	return fmt.Sprintf("Indicator(%d)", uint8(ind))
}
