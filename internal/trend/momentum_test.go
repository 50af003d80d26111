package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMomentum(t *testing.T) {
	tests := []struct {
		name        string
		current     float64
		previous    float64
		days        int
		expectedPct float64
		expectedDir string
	}{
		{
			name:        "strong growth surges",
			current:     80,
			previous:    50,
			days:        30,
			expectedPct: 60,
			expectedDir: "surging",
		},
		{
			name:        "moderate growth rises",
			current:     57.5,
			previous:    50,
			days:        30,
			expectedPct: 15,
			expectedDir: "rising",
		},
		{
			name:        "small change is stable",
			current:     52,
			previous:    50,
			days:        30,
			expectedPct: 4,
			expectedDir: "stable",
		},
		{
			name:        "moderate drop declines",
			current:     42,
			previous:    50,
			days:        30,
			expectedPct: -16,
			expectedDir: "declining",
		},
		{
			name:        "steep drop collapses",
			current:     20,
			previous:    50,
			days:        30,
			expectedPct: -60,
			expectedDir: "collapsing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Momentum(tt.current, tt.previous, tt.days)

			assert.InDelta(t, tt.expectedPct, res.MomentumPct, 1e-9)
			assert.Equal(t, tt.expectedDir, res.Direction)
			assert.InDelta(t, tt.expectedPct/float64(tt.days), res.VelocityPerDay, 0.01)
			assert.True(t, res.IsVerified)
			assert.Empty(t, res.Error)
		})
	}
}

func TestMomentumZeroPrevious(t *testing.T) {
	for _, current := range []float64{0, 10, 100} {
		res := Momentum(current, 0, 30)

		assert.Equal(t, 0.0, res.MomentumPct)
		assert.Equal(t, "stable", res.Direction)
		assert.Equal(t, 0.0, res.VelocityPerDay)
		assert.NotEmpty(t, res.Error)
		assert.True(t, res.IsVerified)
	}
}

func TestMomentumZeroDaysSkipsVelocity(t *testing.T) {
	res := Momentum(60, 50, 0)

	assert.InDelta(t, 20.0, res.MomentumPct, 1e-9)
	assert.Equal(t, 0.0, res.VelocityPerDay)
}
