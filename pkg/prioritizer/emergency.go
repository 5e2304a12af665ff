package prioritizer

import (
	"time"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

// weightThreshold is the stored-weight level a source must exceed to join the
// emergency set
const weightThreshold = 0.6

// EmergencyPlan is the outcome of emergency-mode reprioritization: the
// re-ranked emergency and normal source sets plus the shortened collection
// profile for the current conditions.
type EmergencyPlan struct {
	Emergency       []domain.Source
	Normal          []domain.Source
	RefreshInterval time.Duration
	FetchTimeout    time.Duration
}

// EmergencyPrioritize reclassifies sources into emergency and normal sets
// under volatile conditions. Under high or extreme volatility a source joins
// the emergency set when its stored market-impact and timeliness weights both
// exceed threshold; under breaking news, timeliness and relevance. Emergency
// mode also shortens the refresh interval and fetch timeout.
func (p *Prioritizer) EmergencyPrioritize(sources []domain.Source, cond domain.MarketCondition) EmergencyPlan {
	plan := EmergencyPlan{RefreshInterval: 30 * time.Second, FetchTimeout: 15 * time.Second}

	switch cond.Volatility {
	case domain.VolatilityExtreme:
		plan.RefreshInterval = 15 * time.Second
		plan.FetchTimeout = 10 * time.Second
	case domain.VolatilityHigh:
		plan.RefreshInterval = 20 * time.Second
		plan.FetchTimeout = 12 * time.Second
	}

	volatile := cond.Volatility == domain.VolatilityHigh || cond.Volatility == domain.VolatilityExtreme
	breaking := cond.NewsIntensity == domain.NewsBreaking

	for _, src := range sources {
		w := p.Weight(src.ID)
		emergency := false
		switch {
		case volatile:
			emergency = w.MarketImpact > weightThreshold && w.Timeliness > weightThreshold
		case breaking:
			emergency = w.Timeliness > weightThreshold && w.RelevanceScore > weightThreshold
		}
		if emergency {
			plan.Emergency = append(plan.Emergency, src)
			continue
		}
		plan.Normal = append(plan.Normal, src)
	}
	return plan
}
