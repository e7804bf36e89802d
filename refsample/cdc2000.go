package refsample

import (
	"github.com/katalvlaran/growthref"
	"github.com/katalvlaran/growthref/lms"
)

// CDC2000 returns the CDC 2000 growth-chart excerpt (age axis in
// months). The BMI rows reproduce the chart's mixed grid — 0.5-spaced
// at the window boundaries, 1.0-spaced in between — which is what the
// ordered neighbor search exists for.
func CDC2000() growthref.Dataset {
	return cdc2000Data
}

var cdc2000Data = dataset{
	growthref.BMIForAge: mustTable("cdc2000/bmi-for-age", lms.Half, []lms.Record{
		{Sex: lms.Male, Measurement: 24, L: -2.01118002, M: 16.57502768, S: 0.08052515},
		{Sex: lms.Male, Measurement: 24.5, L: -1.98471513, M: 16.54777487, S: 0.08035010},
		{Sex: lms.Male, Measurement: 25.5, L: -1.93137183, M: 16.49343072, S: 0.08003225},
		{Sex: lms.Male, Measurement: 26.5, L: -1.87751229, M: 16.43935606, S: 0.07974406},
		{Sex: lms.Male, Measurement: 239.5, L: -1.94955960, M: 23.58952447, S: 0.13927510},
		{Sex: lms.Male, Measurement: 240.5, L: -1.95121235, M: 23.59962885, S: 0.13939408},
		{Sex: lms.Female, Measurement: 24, L: -1.10224087, M: 16.42528571, S: 0.08485182},
		{Sex: lms.Female, Measurement: 24.5, L: -1.11189727, M: 16.36841484, S: 0.08494914},
		{Sex: lms.Female, Measurement: 25.5, L: -1.12986526, M: 16.25865156, S: 0.08514786},
		{Sex: lms.Female, Measurement: 26.5, L: -1.14654326, M: 16.15545025, S: 0.08535367},
		{Sex: lms.Female, Measurement: 239.5, L: -2.18302117, M: 21.71987942, S: 0.13542333},
		{Sex: lms.Female, Measurement: 240.5, L: -2.18338816, M: 21.72587201, S: 0.13557217},
	}),
	growthref.LengthForAge: mustTable("cdc2000/length-for-age", lms.Half, []lms.Record{
		{Sex: lms.Male, Measurement: 0, L: 1.26707077, M: 49.98888408, S: 0.05312848},
		{Sex: lms.Male, Measurement: 0.5, L: 0.51710514, M: 52.69578777, S: 0.04790785},
		{Sex: lms.Male, Measurement: 1.5, L: 0.34079250, M: 56.62842855, S: 0.04442954},
		{Sex: lms.Female, Measurement: 0, L: 1.11220933, M: 49.28639612, S: 0.05011226},
		{Sex: lms.Female, Measurement: 0.5, L: 0.82922218, M: 51.68358057, S: 0.04668283},
		{Sex: lms.Female, Measurement: 1.5, L: 0.49949527, M: 55.28612813, S: 0.04382521},
	}),
	growthref.WeightForAge: mustTable("cdc2000/weight-for-age", lms.Half, []lms.Record{
		{Sex: lms.Male, Measurement: 0, L: 1.81551371, M: 3.53021612, S: 0.15218411},
		{Sex: lms.Male, Measurement: 0.5, L: 1.54726595, M: 4.00328338, S: 0.14624539},
		{Sex: lms.Male, Measurement: 1.5, L: 1.06124879, M: 4.87943331, S: 0.13680899},
		{Sex: lms.Female, Measurement: 0, L: 1.55954359, M: 3.39918645, S: 0.14237882},
		{Sex: lms.Female, Measurement: 0.5, L: 1.35754820, M: 3.79790618, S: 0.13860556},
		{Sex: lms.Female, Measurement: 1.5, L: 1.01807716, M: 4.54482561, S: 0.13257129},
	}),
}
