package growthref

import "github.com/katalvlaran/growthref/lms"

// NewWHO2007 configures the WHO 2007 Growth Reference for school-age
// children and adolescents (age axis in months).
//
// Tables are month-grained: whole-month ages hit exact rows, and
// fractional ages interpolate on the 1.0-month grid. BMI and height
// run to 19 years (228 months); weight-for-age is published only to
// 10 years (120 months).
//
// Tail correction applies to weight-for-age only: this reference
// defines no correction for BMI or height, whose scores pass through
// the raw transform however extreme.
func NewWHO2007(data Dataset) *Standard {
	return &Standard{
		name: "WHO 2007",
		data: data,
		axes: map[Indicator]axisSpec{
			BMIForAge:    {Min: 61, Max: 228, Inc: lms.Whole, Mode: axisFixedStep, Step: 1},
			HeightForAge: {Min: 61, Max: 228, Inc: lms.Whole, Mode: axisFixedStep, Step: 1},
			WeightForAge: {Min: 61, Max: 120, Inc: lms.Whole, Mode: axisFixedStep, Step: 1, CorrectTail: true},
		},
	}
}
