package detector_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedwatch/feedwatch/pkg/config"
	"github.com/feedwatch/feedwatch/pkg/detector"
	"github.com/feedwatch/feedwatch/pkg/domain"
)

func newTestDetector() *detector.Detector {
	cfg := config.Default()
	return detector.New(cfg.Detection)
}

func TestDetector_ClassifyEmergency(t *testing.T) {
	det := newTestDetector()

	t.Run("fed emergency rate cut is a high urgency emergency", func(t *testing.T) {
		cl := det.ClassifyEmergency("Fed emergency rate cut announced amid market crash!!!")
		assert.True(t, cl.IsEmergency)
		assert.Contains(t, []domain.UrgencyLevel{domain.UrgencyHigh, domain.UrgencyCritical}, cl.UrgencyLevel)
		assert.Equal(t, domain.CategoryMonetaryPolicy, cl.Category)
		assert.NotEmpty(t, cl.Triggers)
		assert.Greater(t, cl.EstimatedImpact, 60.0)
	})

	t.Run("irrelevant content is not an emergency", func(t *testing.T) {
		cl := det.ClassifyEmergency("Local bakery wins award for best croissant")
		assert.False(t, cl.IsEmergency)
		assert.Equal(t, domain.UrgencyLow, cl.UrgencyLevel)
		assert.Equal(t, domain.CategoryGeneral, cl.Category)
		assert.Empty(t, cl.Triggers)
	})

	t.Run("band between emergency and high thresholds yields medium", func(t *testing.T) {
		cl := det.ClassifyEmergency("Breaking urgent: major fed rate cut as inflation crisis deepens")
		require.True(t, cl.IsEmergency)
		assert.Equal(t, domain.UrgencyMedium, cl.UrgencyLevel)
		assert.GreaterOrEqual(t, cl.Confidence, 0.6)
		assert.Less(t, cl.Confidence, 0.75)
	})

	t.Run("saturated signals reach critical", func(t *testing.T) {
		cl := det.ClassifyEmergency("BREAKING URGENT!!! Fed emergency rate cut, market crash panic, massive unprecedented collapse")
		require.True(t, cl.IsEmergency)
		assert.Equal(t, domain.UrgencyCritical, cl.UrgencyLevel)
	})

	t.Run("trigger vocabulary matches whole words only", func(t *testing.T) {
		// "Software" and "Delaware" both embed "war"
		cl := det.ClassifyEmergency("Software award ceremony hosted in Delaware")
		assert.False(t, cl.IsEmergency)
		assert.Empty(t, cl.Triggers)
		assert.Equal(t, domain.CategoryGeneral, cl.Category)
	})

	t.Run("empty content degrades to neutral", func(t *testing.T) {
		cl := det.ClassifyEmergency("   ")
		assert.False(t, cl.IsEmergency)
		assert.Equal(t, domain.UrgencyLow, cl.UrgencyLevel)
		assert.Zero(t, cl.Confidence)
	})

	t.Run("category follows first matching group", func(t *testing.T) {
		cl := det.ClassifyEmergency("GDP data shows unemployment rising")
		assert.Equal(t, domain.CategoryEconomicData, cl.Category)
	})
}

func TestDetector_ScreenItems(t *testing.T) {
	det := newTestDetector()

	items := []domain.FeedItem{
		{ID: "1", Title: "Weather stays sunny", SourceID: "s1"},
		{ID: "2", Title: "Fed emergency rate cut announced amid market crash!!!", SourceID: "s1"},
		{ID: "3", Title: "Breaking urgent: major fed rate cut as inflation crisis deepens", SourceID: "s2"},
	}

	found := det.ScreenItems(items)
	require.Len(t, found, 2)

	// most urgent first
	assert.GreaterOrEqual(t, found[0].Classification.Confidence, found[1].Classification.Confidence)
	assert.Equal(t, "Fed emergency rate cut announced amid market crash!!!", found[0].Title)
	for _, f := range found {
		assert.True(t, f.Classification.IsEmergency)
		assert.False(t, f.DetectedAt.IsZero())
	}
}

func TestDetector_ScreenItems_InstrumentExtraction(t *testing.T) {
	det := newTestDetector()

	items := []domain.FeedItem{
		{ID: "1", Title: "Fed emergency rate cut crash hits USD/JPY and gold!!!", SourceID: "s1"},
	}
	found := det.ScreenItems(items)
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Instruments, "usd/jpy")
	assert.Contains(t, found[0].Instruments, "gold")
	assert.LessOrEqual(t, len(found[0].Instruments), 5)
}

func TestDetector_DeriveCondition(t *testing.T) {
	det := newTestDetector()
	now := time.Now()

	t.Run("quiet flow is low everywhere", func(t *testing.T) {
		cond := det.DeriveCondition(nil, now)
		assert.Equal(t, domain.VolatilityLow, cond.Volatility)
		assert.Equal(t, domain.NewsLow, cond.NewsIntensity)
		assert.Equal(t, "neutral", cond.TrendDirection)
	})

	t.Run("critical detection escalates to extreme and breaking", func(t *testing.T) {
		cond := det.DeriveCondition([]domain.EmergencyClassification{
			{IsEmergency: true, UrgencyLevel: domain.UrgencyCritical, Confidence: 0.95},
		}, now)
		assert.Equal(t, domain.VolatilityExtreme, cond.Volatility)
		assert.Equal(t, domain.NewsBreaking, cond.NewsIntensity)
	})

	t.Run("single emergency raises intensity without extremes", func(t *testing.T) {
		cond := det.DeriveCondition([]domain.EmergencyClassification{
			{IsEmergency: true, UrgencyLevel: domain.UrgencyMedium, Confidence: 0.65},
		}, now)
		assert.Equal(t, domain.VolatilityMedium, cond.Volatility)
		assert.Equal(t, domain.NewsHigh, cond.NewsIntensity)
	})
}
