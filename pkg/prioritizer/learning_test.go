package prioritizer_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

func TestPrioritizer_Learn(t *testing.T) {
	now := time.Now()

	t.Run("failing source triggers an adjustment", func(t *testing.T) {
		p := newTestPrioritizer()
		sources := []domain.Source{{ID: "bad", Priority: 7}}
		results := []domain.CollectionResult{
			{SourceID: "bad", Status: domain.StatusFailure, ProcessingTime: 20 * time.Second, Timestamp: now.Add(-12 * time.Hour)},
		}

		out := p.Learn(sources, results, now)
		require.Len(t, out.Adjustments, 1)
		assert.Equal(t, "bad", out.Adjustments[0].SourceID)
		assert.Less(t, out.Adjustments[0].NewPriority, 7)
	})

	t.Run("healthy source triggers nothing", func(t *testing.T) {
		p := newTestPrioritizer()
		sources := []domain.Source{{ID: "good", Priority: 5}}
		results := []domain.CollectionResult{
			{
				SourceID:       "good",
				Status:         domain.StatusSuccess,
				ProcessingTime: time.Second,
				Timestamp:      now,
				Metadata:       domain.ResultMetadata{QualityScore: 0.8},
			},
		}

		out := p.Learn(sources, results, now)
		assert.Empty(t, out.Adjustments)
	})

	t.Run("patterns report best hours", func(t *testing.T) {
		p := newTestPrioritizer()
		results := []domain.CollectionResult{
			{SourceID: "a", Status: domain.StatusSuccess, Timestamp: now, Metadata: domain.ResultMetadata{QualityScore: 0.8}},
			{SourceID: "b", Status: domain.StatusSuccess, Timestamp: now, Metadata: domain.ResultMetadata{QualityScore: 0.8}},
		}
		out := p.Learn([]domain.Source{{ID: "a", Priority: 5}, {ID: "b", Priority: 5}}, results, now)
		require.Len(t, out.Patterns, 1)
		assert.Equal(t, "best_hours", out.Patterns[0].Name)
		assert.Contains(t, out.Patterns[0].Value, fmt.Sprintf("%d", now.Hour()))
	})

	t.Run("suggestions flag slow sources and failing batches", func(t *testing.T) {
		p := newTestPrioritizer()
		results := []domain.CollectionResult{
			{SourceID: "slow", Status: domain.StatusSuccess, ProcessingTime: 15 * time.Second, Timestamp: now, Metadata: domain.ResultMetadata{QualityScore: 0.8}},
			{SourceID: "dead", Status: domain.StatusFailure, Timestamp: now},
		}
		out := p.Learn(nil, results, now)

		require.NotEmpty(t, out.Suggestions)
		joined := fmt.Sprint(out.Suggestions)
		assert.Contains(t, joined, "slow")
		assert.Contains(t, joined, "20% of the batch failed")
	})

	t.Run("confidence grows with sample volume", func(t *testing.T) {
		p := newTestPrioritizer()
		results := []domain.CollectionResult{
			{SourceID: "a", Status: domain.StatusSuccess, ProcessingTime: time.Second, Timestamp: now, Metadata: domain.ResultMetadata{QualityScore: 0.8}},
		}

		out := p.Learn(nil, results, now)
		assert.InDelta(t, 0.5, out.Confidence, 0.001)

		// feed enough samples to leave the low-confidence regime
		for i := 0; i < 120; i++ {
			res := results[0]
			res.SourceID = fmt.Sprintf("src-%d", i%5)
			out = p.Learn(nil, []domain.CollectionResult{res}, now)
		}
		assert.InDelta(t, 0.95, out.Confidence, 0.001)
	})

	t.Run("history is bounded per source", func(t *testing.T) {
		p := newTestPrioritizer()
		for i := 0; i < 200; i++ {
			p.Learn(nil, []domain.CollectionResult{
				{SourceID: "only", Status: domain.StatusSuccess, ProcessingTime: time.Second, Timestamp: now, Metadata: domain.ResultMetadata{QualityScore: 0.8}},
			}, now)
		}
		out := p.Learn(nil, []domain.CollectionResult{
			{SourceID: "only", Status: domain.StatusSuccess, ProcessingTime: time.Second, Timestamp: now, Metadata: domain.ResultMetadata{QualityScore: 0.8}},
		}, now)
		// 200 results were fed but only 50 remain in the rolling window,
		// so confidence reflects 50 samples, not 200
		assert.InDelta(t, 0.7, out.Confidence, 0.001)
	})
}
