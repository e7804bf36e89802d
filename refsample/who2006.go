package refsample

import (
	"github.com/katalvlaran/growthref"
	"github.com/katalvlaran/growthref/lms"
)

// WHO2006 returns the WHO 2006 child-growth-standards excerpt: the
// first days of the age-based tables (age axis in days) and the low
// end of the 0.1 cm weight-for-length grid.
func WHO2006() growthref.Dataset {
	return who2006Data
}

var who2006Data = dataset{
	growthref.WeightForAge: mustTable("who2006/weight-for-age", lms.Whole, []lms.Record{
		{Sex: lms.Male, Measurement: 0, L: 0.3487, M: 3.3464, S: 0.14602},
		{Sex: lms.Male, Measurement: 1, L: 0.3487, M: 3.3215, S: 0.14606},
		{Sex: lms.Male, Measurement: 2, L: 0.3487, M: 3.3363, S: 0.14610},
		{Sex: lms.Male, Measurement: 3, L: 0.3487, M: 3.3609, S: 0.14614},
		{Sex: lms.Female, Measurement: 0, L: 0.3809, M: 3.2322, S: 0.14171},
		{Sex: lms.Female, Measurement: 1, L: 0.3809, M: 3.2077, S: 0.14175},
		{Sex: lms.Female, Measurement: 2, L: 0.3809, M: 3.2214, S: 0.14179},
		{Sex: lms.Female, Measurement: 3, L: 0.3809, M: 3.2452, S: 0.14184},
	}),
	growthref.LengthForAge: mustTable("who2006/length-for-age", lms.Whole, []lms.Record{
		{Sex: lms.Male, Measurement: 0, L: 1, M: 49.8842, S: 0.03795},
		{Sex: lms.Male, Measurement: 1, L: 1, M: 50.0601, S: 0.03790},
		{Sex: lms.Female, Measurement: 0, L: 1, M: 49.1477, S: 0.03790},
		{Sex: lms.Female, Measurement: 1, L: 1, M: 49.3166, S: 0.03785},
	}),
	growthref.BMIForAge: mustTable("who2006/bmi-for-age", lms.Whole, []lms.Record{
		{Sex: lms.Male, Measurement: 0, L: -0.3053, M: 13.4069, S: 0.09559},
		{Sex: lms.Male, Measurement: 1, L: -0.3053, M: 13.3211, S: 0.09560},
		{Sex: lms.Female, Measurement: 0, L: -0.0631, M: 13.3363, S: 0.09272},
		{Sex: lms.Female, Measurement: 1, L: -0.0631, M: 13.2521, S: 0.09274},
	}),
	growthref.HeadCircumferenceForAge: mustTable("who2006/head-circumference-for-age", lms.Whole, []lms.Record{
		{Sex: lms.Male, Measurement: 0, L: 1, M: 34.4618, S: 0.03686},
		{Sex: lms.Male, Measurement: 1, L: 1, M: 34.5529, S: 0.03671},
		{Sex: lms.Female, Measurement: 0, L: 1, M: 33.8787, S: 0.03496},
		{Sex: lms.Female, Measurement: 1, L: 1, M: 33.9617, S: 0.03481},
	}),
	growthref.WeightForLength: mustTable("who2006/weight-for-length", lms.Tenth, []lms.Record{
		{Sex: lms.Male, Measurement: 45.0, L: -0.3521, M: 2.4410, S: 0.09182},
		{Sex: lms.Male, Measurement: 45.1, L: -0.3521, M: 2.4527, S: 0.09185},
		{Sex: lms.Male, Measurement: 45.2, L: -0.3521, M: 2.4644, S: 0.09189},
		{Sex: lms.Female, Measurement: 45.0, L: -0.3833, M: 2.4607, S: 0.09029},
		{Sex: lms.Female, Measurement: 45.1, L: -0.3833, M: 2.4723, S: 0.09033},
		{Sex: lms.Female, Measurement: 45.2, L: -0.3833, M: 2.4839, S: 0.09037},
	}),
}
