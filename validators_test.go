package growthref_test

import (
	"testing"

	"github.com/katalvlaran/growthref"
	"github.com/katalvlaran/growthref/lms"
	"github.com/katalvlaran/growthref/refsample"
	"github.com/stretchr/testify/assert"
)

// TestIsValidIndicator_PerStandard checks each facade's validity table.
func TestIsValidIndicator_PerStandard(t *testing.T) {
	who2006 := growthref.NewWHO2006(refsample.WHO2006())
	who2007 := growthref.NewWHO2007(refsample.WHO2007())
	cdc := growthref.NewCDC2000(refsample.CDC2000())

	assert.True(t, who2006.IsValidIndicator(growthref.TricepsSkinfoldForAge))
	assert.True(t, who2006.IsValidIndicator(growthref.WeightForLength))
	assert.False(t, who2006.IsValidIndicator(growthref.HeightForAge),
		"WHO 2006 tabulates recumbent length, not standing height")

	assert.True(t, who2007.IsValidIndicator(growthref.BMIForAge))
	assert.False(t, who2007.IsValidIndicator(growthref.HeadCircumferenceForAge))
	assert.False(t, who2007.IsValidIndicator(growthref.WeightForLength))

	assert.True(t, cdc.IsValidIndicator(growthref.WeightForHeight))
	assert.False(t, cdc.IsValidIndicator(growthref.ArmCircumferenceForAge))
}

// TestIsValidMeasurement_InclusiveBoundaries pins the window contract:
// [61, 228] accepts both endpoints and rejects one step outside.
func TestIsValidMeasurement_InclusiveBoundaries(t *testing.T) {
	std := growthref.NewWHO2007(refsample.WHO2007())

	assert.True(t, std.IsValidMeasurement(growthref.BMIForAge, 61), "lower boundary is inclusive")
	assert.True(t, std.IsValidMeasurement(growthref.BMIForAge, 228), "upper boundary is inclusive")
	assert.False(t, std.IsValidMeasurement(growthref.BMIForAge, 60))
	assert.False(t, std.IsValidMeasurement(growthref.BMIForAge, 229))

	assert.True(t, std.IsValidMeasurement(growthref.WeightForAge, 120))
	assert.False(t, std.IsValidMeasurement(growthref.WeightForAge, 121),
		"weight-for-age runs only to 120 months")

	assert.False(t, std.IsValidMeasurement(growthref.WeightForLength, 50),
		"unsupported indicators are never valid")
}

// TestZScore_InputErrors walks the caller-input failure modes and
// their sentinel errors.
func TestZScore_InputErrors(t *testing.T) {
	std := growthref.NewWHO2007(refsample.WHO2007())

	_, err := std.ZScore(growthref.BMIForAge, 15.25, 61, lms.Sex(3))
	assert.ErrorIs(t, err, growthref.ErrSex)

	_, err = std.ZScore(growthref.WeightForLength, 2.5, 45, lms.Female)
	assert.ErrorIs(t, err, growthref.ErrIndicator)

	_, err = std.ZScore(growthref.BMIForAge, 0, 61, lms.Female)
	assert.ErrorIs(t, err, growthref.ErrMeasurement)

	_, err = std.ZScore(growthref.BMIForAge, -15.25, 61, lms.Female)
	assert.ErrorIs(t, err, growthref.ErrMeasurement)

	_, err = std.ZScore(growthref.BMIForAge, 15.25, 60.9, lms.Female)
	assert.ErrorIs(t, err, growthref.ErrRange, "raw age is range-checked before any rounding")
}

// emptyData is a Dataset carrying no tables at all.
type emptyData struct{}

func (emptyData) Table(growthref.Indicator) (*lms.Table, bool) { return nil, false }

// TestZScore_InternalErrors distinguishes wiring and data gaps from
// caller mistakes: a missing table and an in-range age the dataset
// has no rows for are internal defects, not ErrRange.
func TestZScore_InternalErrors(t *testing.T) {
	bare := growthref.NewWHO2007(emptyData{})
	_, err := bare.ZScore(growthref.BMIForAge, 15.25, 61, lms.Female)
	assert.ErrorIs(t, err, growthref.ErrNoTable)

	// The refsample excerpt declares the full [61, 228] window but only
	// carries rows near its ends; a mid-window age exhausts the search.
	std := growthref.NewWHO2007(refsample.WHO2007())
	_, err = std.ZScore(growthref.BMIForAge, 15.25, 100, lms.Female)
	assert.ErrorIs(t, err, lms.ErrNoNeighbors)
	assert.NotErrorIs(t, err, growthref.ErrRange, "exhaustion is not an input error")
}
