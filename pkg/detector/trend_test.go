package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_DetectTrendChange(t *testing.T) {
	det := newTestDetector()

	t.Run("too few points is a no-op", func(t *testing.T) {
		change := det.DetectTrendChange([]float64{1, 2, 3})
		assert.False(t, change.Detected)
	})

	t.Run("small drift is not significant", func(t *testing.T) {
		series := []float64{100, 100, 100, 100, 100, 101, 101, 101, 101, 101}
		change := det.DetectTrendChange(series)
		assert.False(t, change.Detected)
	})

	t.Run("moderate move is an acceleration", func(t *testing.T) {
		series := []float64{100, 100, 100, 100, 100, 103, 103, 103, 103, 103}
		change := det.DetectTrendChange(series)
		require.True(t, change.Detected)
		assert.Equal(t, "trend_acceleration", change.Type)
		assert.Equal(t, "up", change.Direction)
		assert.InDelta(t, 3.0, change.ChangePct, 0.01)
	})

	t.Run("large move is a reversal", func(t *testing.T) {
		series := []float64{100, 100, 100, 100, 100, 90, 90, 90, 90, 90}
		change := det.DetectTrendChange(series)
		require.True(t, change.Detected)
		assert.Equal(t, "trend_reversal", change.Type)
		assert.Equal(t, "down", change.Direction)
		assert.Greater(t, change.Confidence, 0.5)
		assert.GreaterOrEqual(t, change.Significance, change.Confidence)
	})
}

func TestDetector_DetectBreakout(t *testing.T) {
	det := newTestDetector()

	t.Run("too few points is a no-op", func(t *testing.T) {
		series := make([]float64, 19)
		for i := range series {
			series[i] = 100
		}
		assert.False(t, det.DetectBreakout(series).Detected)
	})

	t.Run("breach above the recent range", func(t *testing.T) {
		series := make([]float64, 20)
		for i := range series {
			series[i] = 100
		}
		series[19] = 104
		breakout := det.DetectBreakout(series)
		require.True(t, breakout.Detected)
		assert.Equal(t, "above", breakout.Direction)
		assert.InDelta(t, 0.04, breakout.Strength, 0.001)
	})

	t.Run("breach below the recent range", func(t *testing.T) {
		series := make([]float64, 20)
		for i := range series {
			series[i] = 100
		}
		series[18] = 95
		breakout := det.DetectBreakout(series)
		require.True(t, breakout.Detected)
		assert.Equal(t, "below", breakout.Direction)
		assert.InDelta(t, 0.05, breakout.Strength, 0.001)
	})

	t.Run("flat series has no breakout", func(t *testing.T) {
		series := make([]float64, 25)
		for i := range series {
			series[i] = 100
		}
		assert.False(t, det.DetectBreakout(series).Detected)
	})
}
