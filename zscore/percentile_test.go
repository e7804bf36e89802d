package zscore_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/growthref/zscore"
	"github.com/stretchr/testify/assert"
)

// TestPercentile_ReferenceValues checks well-known points of the
// normal CDF against the AS66 evaluation.
func TestPercentile_ReferenceValues(t *testing.T) {
	assert.Equal(t, 50.0, zscore.Percentile(0), "the median is the 50th percentile exactly")
	assert.InDelta(t, 97.50021048508248, zscore.Percentile(1.96), 1e-9)
	assert.InDelta(t, 15.865525392828372, zscore.Percentile(-1), 1e-9)
	assert.InDelta(t, 99.86501019683745, zscore.Percentile(3), 1e-9)
}

// TestPercentile_Symmetry: P(z) + P(−z) = 100 holds by the symmetry of
// the AS66 branch structure, not merely within tolerance.
func TestPercentile_Symmetry(t *testing.T) {
	for z := -10.0; z <= 10.0; z += 0.137 {
		sum := zscore.Percentile(z) + zscore.Percentile(-z)
		assert.InDelta(t, 100, sum, 1e-12, "symmetry must hold at z = %g", z)
	}
}

// TestPercentile_AgainstErf cross-checks AS66 against the closed-form
// Φ via math.Erf across the center and both tails; published AS66
// accuracy is ~1e-7 in probability (~1e-5 percentage points).
func TestPercentile_AgainstErf(t *testing.T) {
	for z := -8.0; z <= 8.0; z += 0.0973 {
		want := 100 * 0.5 * (1 + math.Erf(z/math.Sqrt2))
		assert.InDelta(t, want, zscore.Percentile(z), 1e-5, "AS66 must track Φ at z = %g", z)
	}
}

// TestPercentile_FarTails: beyond |z| ≈ 18.66 the tail probability is
// treated as exactly zero.
func TestPercentile_FarTails(t *testing.T) {
	assert.Equal(t, 100.0, zscore.Percentile(19))
	assert.Equal(t, 0.0, zscore.Percentile(-19))
	assert.Equal(t, 100.0, zscore.Percentile(1e6))
	assert.Equal(t, 0.0, zscore.Percentile(-1e6))
}

// TestPercentile_Bounds: every output lands in [0, 100].
func TestPercentile_Bounds(t *testing.T) {
	for z := -25.0; z <= 25.0; z += 0.491 {
		p := zscore.Percentile(z)
		assert.GreaterOrEqual(t, p, 0.0, "z = %g", z)
		assert.LessOrEqual(t, p, 100.0, "z = %g", z)
	}
}
