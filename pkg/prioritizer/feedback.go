package prioritizer

import (
	"math"
	"strings"
	"time"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

// adjustmentValidity is how long a feedback-driven adjustment remains valid
const adjustmentValidity = 24 * time.Hour

// AdjustPriority computes a feedback-driven priority change for a source
// from a recent-performance sample. Three independent factors are averaged:
// performance (success weighted highest), recency (boost for fresh updates,
// penalty for stale ones) and reliability (inverse error rate, floored).
// The new priority is the old one scaled by the factor average, rounded and
// clamped to [1,10].
func (p *Prioritizer) AdjustPriority(src domain.Source, m domain.PerformanceMetrics, now time.Time) domain.PriorityAdjustment {
	performance := performanceFactor(m)
	recency := recencyFactor(m.LastUpdate, now)
	reliability := reliabilityFactor(m)

	avg := (performance + recency + reliability) / 3
	newPriority := clampInt(int(math.Round(float64(src.Priority)*avg)), 1, 10)

	return domain.PriorityAdjustment{
		SourceID:    src.ID,
		OldPriority: src.Priority,
		NewPriority: newPriority,
		Reason:      adjustmentReason(performance, recency, reliability),
		AdjustedAt:  now,
		ValidUntil:  now.Add(adjustmentValidity),
	}
}

// performanceFactor blends success rate, response speed and content quality,
// with success weighted highest. Perfect inputs yield 1.3, worst-case 0.5.
func performanceFactor(m domain.PerformanceMetrics) float64 {
	speed := 1.0
	switch {
	case m.AverageResponseTime > 10*time.Second:
		speed = 0.2
	case m.AverageResponseTime > 5*time.Second:
		speed = 0.5
	case m.AverageResponseTime > 2*time.Second:
		speed = 0.8
	}

	blended := 0.6*m.SuccessRate + 0.2*speed + 0.2*m.ContentQualityScore
	return 0.5 + 0.8*blended
}

// recencyFactor boosts sources updated within 30 minutes by 20% and
// penalizes those stale for over 6 hours by 20%
func recencyFactor(lastUpdate, now time.Time) float64 {
	if lastUpdate.IsZero() {
		return 1
	}
	age := now.Sub(lastUpdate)
	switch {
	case age <= 30*time.Minute:
		return 1.2
	case age > 6*time.Hour:
		return 0.8
	default:
		return 1
	}
}

// reliabilityFactor is 1 minus the error rate, floored at 0.5
func reliabilityFactor(m domain.PerformanceMetrics) float64 {
	errorRate := float64(len(m.ErrorHistory)) / float64(historyCap)
	if errorRate > 1 {
		errorRate = 1
	}
	factor := 1 - errorRate
	if factor < 0.5 {
		factor = 0.5
	}
	return factor
}

// adjustmentReason assembles a human-readable reason from whichever factors
// deviated from neutral (above 1.1 or below 0.9)
func adjustmentReason(performance, recency, reliability float64) string {
	var parts []string
	switch {
	case performance > 1.1:
		parts = append(parts, "strong recent performance")
	case performance < 0.9:
		parts = append(parts, "weak recent performance")
	}
	switch {
	case recency > 1.1:
		parts = append(parts, "fresh updates")
	case recency < 0.9:
		parts = append(parts, "stale updates")
	}
	switch {
	case reliability > 1.1:
		parts = append(parts, "high reliability")
	case reliability < 0.9:
		parts = append(parts, "elevated error rate")
	}
	if len(parts) == 0 {
		return "performance within normal range"
	}
	return strings.Join(parts, ", ")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
