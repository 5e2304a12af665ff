package detector

import (
	"math"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

// DetectTrendChange compares the mean of the most recent window against the
// preceding window of a numeric series. Fewer than 10 points is a no-op.
// A relative change over 2% is significant; over 5% it is classified as a
// trend reversal, otherwise a trend acceleration.
func (d *Detector) DetectTrendChange(series []float64) domain.TrendChange {
	if len(series) < 10 {
		return domain.TrendChange{}
	}

	window := 10
	if len(series) < 2*window {
		window = len(series) / 2
	}

	recent := mean(series[len(series)-window:])
	previous := mean(series[len(series)-2*window : len(series)-window])
	if previous == 0 {
		return domain.TrendChange{}
	}

	change := (recent - previous) / previous
	magnitude := math.Abs(change)
	if magnitude <= 0.02 {
		return domain.TrendChange{}
	}

	changeType := "trend_acceleration"
	if magnitude > 0.05 {
		changeType = "trend_reversal"
	}

	direction := "up"
	if change < 0 {
		direction = "down"
	}

	return domain.TrendChange{
		Detected:     true,
		Type:         changeType,
		Direction:    direction,
		ChangePct:    change * 100,
		Confidence:   math.Min(magnitude*10, 1),
		Significance: math.Min(magnitude*20, 1),
	}
}

// DetectBreakout compares the last 5 points' range against the preceding 15
// points' range. Requires at least 20 points; a breach over 2% is reported
// with its direction and relative magnitude as strength.
func (d *Detector) DetectBreakout(series []float64) domain.Breakout {
	if len(series) < 20 {
		return domain.Breakout{}
	}

	recent := series[len(series)-5:]
	previous := series[len(series)-20 : len(series)-5]

	recentMin, recentMax := minMax(recent)
	prevMin, prevMax := minMax(previous)

	if prevMax > 0 && recentMax > prevMax*1.02 {
		return domain.Breakout{
			Detected:  true,
			Direction: "above",
			Strength:  (recentMax - prevMax) / prevMax,
		}
	}
	if prevMin > 0 && recentMin < prevMin*0.98 {
		return domain.Breakout{
			Detected:  true,
			Direction: "below",
			Strength:  (prevMin - recentMin) / prevMin,
		}
	}
	return domain.Breakout{}
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func minMax(vals []float64) (minV, maxV float64) {
	minV, maxV = vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return minV, maxV
}
