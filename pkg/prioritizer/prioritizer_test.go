package prioritizer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedwatch/feedwatch/pkg/config"
	"github.com/feedwatch/feedwatch/pkg/domain"
	"github.com/feedwatch/feedwatch/pkg/prioritizer"
)

func newTestPrioritizer() *prioritizer.Prioritizer {
	cfg := config.Default()
	return prioritizer.New(cfg.Priority)
}

func TestPrioritizer_RankSources(t *testing.T) {
	p := newTestPrioritizer()

	t.Run("dense processing order without gaps", func(t *testing.T) {
		sources := []domain.Source{
			{ID: "a", Name: "A", Category: domain.CategoryForex, Priority: 5, SuccessRate: 0.9},
			{ID: "b", Name: "B", Category: domain.CategoryNews, Priority: 5, SuccessRate: 0.9},
			{ID: "c", Name: "C", Category: domain.CategoryAnalysis, Priority: 5, SuccessRate: 0.9},
		}
		ranked := p.RankSources(sources)
		require.Len(t, ranked, 3)
		for i, ps := range ranked {
			assert.Equal(t, i+1, ps.ProcessingOrder)
			assert.GreaterOrEqual(t, ps.Priority, 1.0)
			assert.LessOrEqual(t, ps.Priority, 10.0)
			assert.NotEmpty(t, ps.Reasoning)
		}
		// forex outranks news outranks analysis with everything else equal
		assert.Equal(t, "a", ranked[0].Source.ID)
		assert.Equal(t, "b", ranked[1].Source.ID)
		assert.Equal(t, "c", ranked[2].Source.ID)
	})

	t.Run("higher success rate never ranks lower", func(t *testing.T) {
		strong := domain.Source{ID: "strong", Category: domain.CategoryForex, Priority: 5, SuccessRate: 0.95}
		weak := domain.Source{ID: "weak", Category: domain.CategoryForex, Priority: 5, SuccessRate: 0.2}

		ranked := p.RankSources([]domain.Source{weak, strong})
		require.Len(t, ranked, 2)
		assert.Equal(t, "strong", ranked[0].Source.ID)
		assert.Greater(t, ranked[0].Priority, ranked[1].Priority)
	})

	t.Run("reliable source name gets a bonus", func(t *testing.T) {
		plain := domain.Source{ID: "plain", Name: "Some Blog", Category: domain.CategoryNews, Priority: 5, SuccessRate: 0.8}
		reliable := domain.Source{ID: "rel", Name: "Reuters Markets", Category: domain.CategoryNews, Priority: 5, SuccessRate: 0.8}

		ranked := p.RankSources([]domain.Source{plain, reliable})
		require.Len(t, ranked, 2)
		assert.Equal(t, "rel", ranked[0].Source.ID)
	})

	t.Run("urgency buckets follow final priority", func(t *testing.T) {
		high := domain.Source{ID: "h", Category: domain.CategoryForex, Priority: 10, SuccessRate: 1.0}
		low := domain.Source{ID: "l", Category: domain.CategoryAnalysis, Priority: 1, SuccessRate: 0.1, ErrorCount: 9}

		ranked := p.RankSources([]domain.Source{high, low})
		require.Len(t, ranked, 2)
		assert.Equal(t, domain.UrgencyHigh, ranked[0].UrgencyLevel)
		assert.Equal(t, domain.UrgencyLow, ranked[1].UrgencyLevel)
	})

	t.Run("near-saturated priority reaches emergency urgency", func(t *testing.T) {
		src := domain.Source{ID: "max", Name: "Reuters Markets", Category: domain.CategoryForex, Priority: 10, SuccessRate: 1.0}
		ranked := p.RankSources([]domain.Source{src})
		require.Len(t, ranked, 1)
		assert.Equal(t, domain.UrgencyEmergency, ranked[0].UrgencyLevel)
	})
}

func TestPrioritizer_Weights(t *testing.T) {
	p := newTestPrioritizer()

	t.Run("unknown source gets neutral weights", func(t *testing.T) {
		w := p.Weight("unknown")
		assert.InDelta(t, 0.5, w.RelevanceScore, 0.001)
		assert.InDelta(t, 0.5, w.MarketImpact, 0.001)
	})

	t.Run("stored weights round-trip", func(t *testing.T) {
		p.SetWeight("src1", domain.PriorityWeight{MarketImpact: 0.9, Timeliness: 0.8})
		w := p.Weight("src1")
		assert.InDelta(t, 0.9, w.MarketImpact, 0.001)
		assert.InDelta(t, 0.8, w.Timeliness, 0.001)
	})
}

func TestPrioritizer_EmergencyPrioritize(t *testing.T) {
	p := newTestPrioritizer()
	p.SetWeight("hot", domain.PriorityWeight{MarketImpact: 0.9, Timeliness: 0.8, RelevanceScore: 0.7})
	p.SetWeight("cold", domain.PriorityWeight{MarketImpact: 0.2, Timeliness: 0.3, RelevanceScore: 0.4})

	sources := []domain.Source{{ID: "hot"}, {ID: "cold"}}

	t.Run("extreme volatility selects impact and timeliness", func(t *testing.T) {
		plan := p.EmergencyPrioritize(sources, domain.MarketCondition{Volatility: domain.VolatilityExtreme})
		require.Len(t, plan.Emergency, 1)
		assert.Equal(t, "hot", plan.Emergency[0].ID)
		require.Len(t, plan.Normal, 1)
		assert.Equal(t, "cold", plan.Normal[0].ID)
		assert.Equal(t, 15*time.Second, plan.RefreshInterval)
		assert.Equal(t, 10*time.Second, plan.FetchTimeout)
	})

	t.Run("breaking news selects timeliness and relevance", func(t *testing.T) {
		plan := p.EmergencyPrioritize(sources, domain.MarketCondition{
			Volatility:    domain.VolatilityLow,
			NewsIntensity: domain.NewsBreaking,
		})
		require.Len(t, plan.Emergency, 1)
		assert.Equal(t, "hot", plan.Emergency[0].ID)
	})

	t.Run("calm conditions keep everything normal", func(t *testing.T) {
		plan := p.EmergencyPrioritize(sources, domain.MarketCondition{Volatility: domain.VolatilityLow})
		assert.Empty(t, plan.Emergency)
		assert.Len(t, plan.Normal, 2)
		assert.Equal(t, 30*time.Second, plan.RefreshInterval)
	})
}
