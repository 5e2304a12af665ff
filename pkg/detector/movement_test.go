package detector_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

func TestDetector_DetectMovements(t *testing.T) {
	det := newTestDetector()

	t.Run("fresh emergency wording is a news impact", func(t *testing.T) {
		items := []domain.FeedItem{
			{ID: "1", Title: "central bank emergency rate decision", SourceID: "s1", Published: time.Now()},
		}
		movements := det.DetectMovements(items)
		require.Len(t, movements, 1)
		assert.Equal(t, domain.MovementNewsImpact, movements[0].Type)
		assert.Equal(t, domain.SeverityMajor, movements[0].Severity)
		assert.NotEmpty(t, movements[0].Recommendations)
	})

	t.Run("volume spike beats price surge classification", func(t *testing.T) {
		items := []domain.FeedItem{
			{ID: "1", Title: "bitcoin volume spike on exchanges", SourceID: "s1"},
		}
		movements := det.DetectMovements(items)
		require.Len(t, movements, 1)
		assert.Equal(t, domain.MovementVolumeSpike, movements[0].Type)
	})

	t.Run("surge wording is a price surge", func(t *testing.T) {
		items := []domain.FeedItem{
			{ID: "1", Title: "gold surge continues", SourceID: "s1"},
		}
		movements := det.DetectMovements(items)
		require.Len(t, movements, 1)
		assert.Equal(t, domain.MovementPriceSurge, movements[0].Type)
		assert.Contains(t, movements[0].Instruments, "gold")
	})

	t.Run("neutral content yields no movement", func(t *testing.T) {
		items := []domain.FeedItem{
			{ID: "1", Title: "company updates office address", SourceID: "s1"},
		}
		movements := det.DetectMovements(items)
		assert.Empty(t, movements)
	})

	t.Run("embedded trigger substrings do not fire", func(t *testing.T) {
		items := []domain.FeedItem{
			// "newsletter" embeds "news", "award" embeds "war"
			{ID: "1", Title: "company releases quarterly newsletter after award win", SourceID: "s1"},
		}
		movements := det.DetectMovements(items)
		assert.Empty(t, movements)
	})

	t.Run("critical movements get the emergency protocol action", func(t *testing.T) {
		items := []domain.FeedItem{
			{ID: "1", Title: "market crash panic selloff deepens", SourceID: "reuters", Published: time.Now()},
		}
		movements := det.DetectMovements(items)
		require.Len(t, movements, 1)
		assert.Equal(t, domain.SeverityCritical, movements[0].Severity)
		assert.Contains(t, movements[0].Recommendations, "activate emergency protocol")
	})

	t.Run("sorted by severity desc", func(t *testing.T) {
		items := []domain.FeedItem{
			{ID: "1", Title: "yen sentiment declines slightly", SourceID: "s1"},
			{ID: "2", Title: "market crash panic selloff deepens", SourceID: "reuters", Published: time.Now()},
		}
		movements := det.DetectMovements(items)
		require.Len(t, movements, 2)
		assert.Equal(t, domain.SeverityCritical, movements[0].Severity)
	})
}
