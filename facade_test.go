package growthref_test

import (
	"testing"

	"github.com/katalvlaran/growthref"
	"github.com/katalvlaran/growthref/lms"
	"github.com/katalvlaran/growthref/refsample"
	"github.com/katalvlaran/growthref/zscore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWHO2007_BMIAcceptance reproduces the reference acceptance data:
// exact whole-month lookups at both ends of the BMI window.
func TestWHO2007_BMIAcceptance(t *testing.T) {
	std := growthref.NewWHO2007(refsample.WHO2007())

	z, err := std.ZScore(growthref.BMIForAge, 15.25, 61, lms.Female)
	require.NoError(t, err)
	assert.InDelta(t, 0.00399188592946362, z, 1e-7, "girl, 61 months, BMI 15.25")

	// BMI 48 at 228 months scores far beyond +3, and stays raw: this
	// reference defines no tail correction for BMI.
	z, err = std.ZScore(growthref.BMIForAge, 48, 228, lms.Male)
	require.NoError(t, err)
	assert.InDelta(t, 5.15211823593907, z, 1e-7, "boy, 228 months, BMI 48, uncorrected")
}

// TestCDC2000_InterpolatedAcceptance: 24.25 months has no exact row
// (the CDC grid is 0.5-spaced near 24), so the score comes from the
// blended 24/24.5 rows.
func TestCDC2000_InterpolatedAcceptance(t *testing.T) {
	std := growthref.NewCDC2000(refsample.CDC2000())

	z, err := std.ZScore(growthref.BMIForAge, 15.25, 24.25, lms.Female)
	require.NoError(t, err)
	assert.InDelta(t, -0.889270794214663, z, 1e-7, "girl, 24.25 months, BMI 15.25")
}

// TestCDC2000_NoTailCorrection: an extreme CDC score passes through
// the raw transform untouched.
func TestCDC2000_NoTailCorrection(t *testing.T) {
	std := growthref.NewCDC2000(refsample.CDC2000())

	z, err := std.ZScore(growthref.BMIForAge, 30, 24, lms.Female)
	require.NoError(t, err)
	assert.InDelta(t, 5.187721723801016, z, 1e-9, "raw z beyond +3, no correction for CDC")
}

// TestCDC2000_GridSpacingTransition scores a probe straddling the
// 0.5→1.0 spacing change (24.75 sits between the 24.5 and 25.5 rows).
func TestCDC2000_GridSpacingTransition(t *testing.T) {
	std := growthref.NewCDC2000(refsample.CDC2000())

	z, err := std.ZScore(growthref.BMIForAge, 16.0, 24.75, lms.Female)
	require.NoError(t, err)
	assert.InDelta(t, -0.251028676582286, z, 1e-9)
}

// TestWHO2007_FractionalAgeInterpolates: month tables interpolate on
// the 1.0 grid for fractional ages.
func TestWHO2007_FractionalAgeInterpolates(t *testing.T) {
	std := growthref.NewWHO2007(refsample.WHO2007())

	z, err := std.ZScore(growthref.BMIForAge, 15.5, 61.4, lms.Female)
	require.NoError(t, err)
	assert.InDelta(t, 0.1719065691378119, z, 1e-9)
}

// TestWHO2006_AgeRoundsToWholeDays: day-grained indicators round the
// age axis instead of interpolating, so 1.4 days scores exactly like
// day 1.
func TestWHO2006_AgeRoundsToWholeDays(t *testing.T) {
	std := growthref.NewWHO2006(refsample.WHO2006())

	zRounded, err := std.ZScore(growthref.WeightForAge, 3.2, 1.4, lms.Male)
	require.NoError(t, err)
	zWhole, err := std.ZScore(growthref.WeightForAge, 3.2, 1, lms.Male)
	require.NoError(t, err)
	assert.Equal(t, zWhole, zRounded, "1.4 days must resolve to the day-1 row")
}

// TestWHO2006_WeightForLengthInterpolates: the 0.1 cm length grid
// preserves decimal precision instead of rounding.
func TestWHO2006_WeightForLengthInterpolates(t *testing.T) {
	std := growthref.NewWHO2006(refsample.WHO2006())

	z, err := std.ZScore(growthref.WeightForLength, 2.5, 45.05, lms.Female)
	require.NoError(t, err)
	assert.InDelta(t, 0.14899535695934457, z, 1e-9)
}

// TestWHO2006_TailCorrectionApplied: weight-for-age carries the WHO
// correction, so an extreme low weight is restated in SD2→SD3 units.
func TestWHO2006_TailCorrectionApplied(t *testing.T) {
	std := growthref.NewWHO2006(refsample.WHO2006())

	z, err := std.ZScore(growthref.WeightForAge, 1.5, 0, lms.Male)
	require.NoError(t, err)
	assert.InDelta(t, -4.53113649167937, z, 1e-9, "corrected, not the raw -4.793")

	z, err = std.ZScore(growthref.WeightForAge, 2.5, 0, lms.Male)
	require.NoError(t, err)
	assert.InDelta(t, -1.8987798238641445, z, 1e-9, "inside ±3: untouched")
}

// TestStandard_Flag exercises the facade path to the epidemiology
// flag value.
func TestStandard_Flag(t *testing.T) {
	std := growthref.NewWHO2006(refsample.WHO2006())

	flag, err := std.Flag(growthref.WeightForAge, 2.5, 0, lms.Male)
	require.NoError(t, err)
	assert.InDelta(t, -1.8172896020946119, flag, 1e-12)
}

// TestTryZScore_LeavesOutputUntouched: the non-erroring variant must
// not clobber the caller's sentinel on any failure.
func TestTryZScore_LeavesOutputUntouched(t *testing.T) {
	std := growthref.NewWHO2007(refsample.WHO2007())

	z := -99.0
	ok := std.TryZScore(growthref.BMIForAge, 15.25, 60, lms.Female, &z) // age below window
	assert.False(t, ok)
	assert.Equal(t, -99.0, z, "failed Try must leave the sentinel in place")

	ok = std.TryZScore(growthref.HeadCircumferenceForAge, 40, 100, lms.Female, &z) // bad indicator
	assert.False(t, ok)
	assert.Equal(t, -99.0, z)

	ok = std.TryZScore(growthref.BMIForAge, 15.25, 61, lms.Female, &z)
	require.True(t, ok)
	assert.InDelta(t, 0.00399188592946362, z, 1e-7, "success must store the score")
}

// TestPercentile_FacadeEntry: the package-level converter matches the
// zscore package and stays within [0, 100].
func TestPercentile_FacadeEntry(t *testing.T) {
	assert.Equal(t, zscore.Percentile(1.23), growthref.Percentile(1.23))
	assert.Equal(t, 50.0, growthref.Percentile(0))
}
