package detector

import (
	"time"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

// DeriveCondition infers the current market condition from a batch of recent
// classifications. Anything at or above the low threshold counts as
// noteworthy news flow; full emergencies and critical detections escalate
// volatility and news intensity.
func (d *Detector) DeriveCondition(classifications []domain.EmergencyClassification, now time.Time) domain.MarketCondition {
	var noteworthy, emergencies, critical int
	for _, cl := range classifications {
		if cl.Confidence >= d.cfg.LowThreshold {
			noteworthy++
		}
		if cl.IsEmergency {
			emergencies++
		}
		if cl.UrgencyLevel == domain.UrgencyCritical {
			critical++
		}
	}

	cond := domain.MarketCondition{
		Volatility:     domain.VolatilityLow,
		TrendDirection: "neutral",
		NewsIntensity:  domain.NewsLow,
		SessionTime:    now,
	}

	switch {
	case critical > 0:
		cond.Volatility = domain.VolatilityExtreme
	case emergencies >= 3:
		cond.Volatility = domain.VolatilityHigh
	case emergencies > 0 || noteworthy >= 3:
		cond.Volatility = domain.VolatilityMedium
	}

	switch {
	case critical > 0:
		cond.NewsIntensity = domain.NewsBreaking
	case emergencies > 0:
		cond.NewsIntensity = domain.NewsHigh
	case noteworthy > 0:
		cond.NewsIntensity = domain.NewsMedium
	}

	return cond
}
