package growthref

import "github.com/katalvlaran/growthref/lms"

// NewCDC2000 configures the CDC 2000 Growth Charts (age axis in
// months, length/height axes in cm).
//
// CDC grids mix spacings: rows sit 0.5 apart at the range boundaries
// and 1.0 apart (at half-month offsets) in between — e.g. the BMI
// table runs 24, 24.5, 25.5, 26.5, …, 239.5, 240.5. Exact lookup
// therefore admits any half-unit value, and misses resolve by ordered
// neighbor search rather than a fixed-step walk.
//
// CDC 2000 defines no extreme-tail correction for any indicator.
func NewCDC2000(data Dataset) *Standard {
	return &Standard{
		name: "CDC 2000",
		data: data,
		axes: map[Indicator]axisSpec{
			BMIForAge:               {Min: 24, Max: 240.5, Inc: lms.Half, Mode: axisOrdered},
			LengthForAge:            {Min: 0, Max: 35.5, Inc: lms.Half, Mode: axisOrdered},
			HeightForAge:            {Min: 24, Max: 240, Inc: lms.Half, Mode: axisOrdered},
			WeightForAge:            {Min: 0, Max: 240, Inc: lms.Half, Mode: axisOrdered},
			HeadCircumferenceForAge: {Min: 0, Max: 36, Inc: lms.Half, Mode: axisOrdered},
			WeightForLength:         {Min: 45, Max: 103.5, Inc: lms.Half, Mode: axisOrdered},
			WeightForHeight:         {Min: 77, Max: 121.5, Inc: lms.Half, Mode: axisOrdered},
		},
	}
}
