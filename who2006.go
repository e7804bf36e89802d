package growthref

import "github.com/katalvlaran/growthref/lms"

// NewWHO2006 configures the WHO 2006 Child Growth Standards
// (birth to 5 years; age axis in days, length/height axes in cm).
//
// Age-based indicators are tabulated day by day, so the axis rounds to
// the nearest whole day and interpolation never applies. The
// weight-for-length and weight-for-height tables are spaced at 0.1 cm
// and preserve decimal precision for interpolation.
//
// The WHO tail correction applies to the weight-derived and
// skinfold/arm-circumference indicators, whose extreme tails the power
// transform distorts; length/height and head circumference stay
// uncorrected, matching the published standard.
func NewWHO2006(data Dataset) *Standard {
	return &Standard{
		name: "WHO 2006",
		data: data,
		axes: map[Indicator]axisSpec{
			WeightForAge:            {Min: 0, Max: 1856, Inc: lms.Whole, Mode: axisRoundWhole, CorrectTail: true},
			LengthForAge:            {Min: 0, Max: 1856, Inc: lms.Whole, Mode: axisRoundWhole},
			BMIForAge:               {Min: 0, Max: 1856, Inc: lms.Whole, Mode: axisRoundWhole, CorrectTail: true},
			HeadCircumferenceForAge: {Min: 0, Max: 1856, Inc: lms.Whole, Mode: axisRoundWhole},
			// Skinfolds and arm circumference start at 91 days (3 months).
			ArmCircumferenceForAge:    {Min: 91, Max: 1856, Inc: lms.Whole, Mode: axisRoundWhole, CorrectTail: true},
			TricepsSkinfoldForAge:     {Min: 91, Max: 1856, Inc: lms.Whole, Mode: axisRoundWhole, CorrectTail: true},
			SubscapularSkinfoldForAge: {Min: 91, Max: 1856, Inc: lms.Whole, Mode: axisRoundWhole, CorrectTail: true},
			WeightForLength:           {Min: 45, Max: 110, Inc: lms.Tenth, Mode: axisFixedStep, Step: 0.1, CorrectTail: true},
			WeightForHeight:           {Min: 65, Max: 120, Inc: lms.Tenth, Mode: axisFixedStep, Step: 0.1, CorrectTail: true},
		},
	}
}
