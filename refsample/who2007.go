package refsample

import (
	"github.com/katalvlaran/growthref"
	"github.com/katalvlaran/growthref/lms"
)

// WHO2007 returns the WHO 2007 growth-reference excerpt: BMI-for-age,
// height-for-age and weight-for-age rows around the start and end of
// each indicator's window (age axis in months).
func WHO2007() growthref.Dataset {
	return who2007Data
}

var who2007Data = dataset{
	growthref.BMIForAge: mustTable("who2007/bmi-for-age", lms.Whole, []lms.Record{
		{Sex: lms.Male, Measurement: 61, L: -0.7387, M: 15.2641, S: 0.08390},
		{Sex: lms.Male, Measurement: 62, L: -0.7621, M: 15.2616, S: 0.08414},
		{Sex: lms.Male, Measurement: 63, L: -0.7856, M: 15.2604, S: 0.08439},
		{Sex: lms.Male, Measurement: 227, L: -0.8157, M: 22.4644, S: 0.10936},
		{Sex: lms.Male, Measurement: 228, L: -0.8223, M: 22.4847, S: 0.10952},
		{Sex: lms.Female, Measurement: 61, L: -0.8886, M: 15.2441, S: 0.09692},
		{Sex: lms.Female, Measurement: 62, L: -0.9068, M: 15.2381, S: 0.09718},
		{Sex: lms.Female, Measurement: 63, L: -0.9248, M: 15.2326, S: 0.09743},
		{Sex: lms.Female, Measurement: 227, L: -0.9617, M: 21.6858, S: 0.12679},
		{Sex: lms.Female, Measurement: 228, L: -0.9662, M: 21.7015, S: 0.12688},
	}),
	growthref.HeightForAge: mustTable("who2007/height-for-age", lms.Whole, []lms.Record{
		{Sex: lms.Male, Measurement: 61, L: 1, M: 110.2647, S: 0.04164},
		{Sex: lms.Male, Measurement: 62, L: 1, M: 110.8006, S: 0.04172},
		{Sex: lms.Male, Measurement: 227, L: 1, M: 176.5433, S: 0.04327},
		{Sex: lms.Male, Measurement: 228, L: 1, M: 176.5706, S: 0.04328},
		{Sex: lms.Female, Measurement: 61, L: 1, M: 109.6016, S: 0.04355},
		{Sex: lms.Female, Measurement: 62, L: 1, M: 110.1258, S: 0.04364},
		{Sex: lms.Female, Measurement: 227, L: 1, M: 163.1468, S: 0.03934},
		{Sex: lms.Female, Measurement: 228, L: 1, M: 163.1516, S: 0.03934},
	}),
	growthref.WeightForAge: mustTable("who2007/weight-for-age", lms.Whole, []lms.Record{
		{Sex: lms.Male, Measurement: 61, L: -0.1506, M: 18.3366, S: 0.12619},
		{Sex: lms.Male, Measurement: 62, L: -0.1602, M: 18.4346, S: 0.12674},
		{Sex: lms.Male, Measurement: 119, L: -0.2682, M: 31.1337, S: 0.14761},
		{Sex: lms.Male, Measurement: 120, L: -0.2697, M: 31.3626, S: 0.14796},
		{Sex: lms.Female, Measurement: 61, L: -0.5185, M: 18.2193, S: 0.14142},
		{Sex: lms.Female, Measurement: 62, L: -0.5309, M: 18.3124, S: 0.14205},
		{Sex: lms.Female, Measurement: 119, L: -0.7599, M: 31.9068, S: 0.16961},
		{Sex: lms.Female, Measurement: 120, L: -0.7662, M: 32.1443, S: 0.17011},
	}),
}
