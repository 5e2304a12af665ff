package collector_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedwatch/feedwatch/pkg/config"
	"github.com/feedwatch/feedwatch/pkg/domain"
	"github.com/feedwatch/feedwatch/pkg/quality"
)

func TestCollector_CollectByPriority(t *testing.T) {
	t.Run("top ranked slice fetched in rank order", func(t *testing.T) {
		d := newTestDeps()
		d.fetch.MaxConcurrentFunc = func() int { return 3 }
		c := d.collector(config.CollectorConfig{})

		sources := []domain.Source{
			activeSource("s1", 1), activeSource("s2", 2), activeSource("s3", 3),
			activeSource("s4", 4), activeSource("s5", 5),
		}

		results, err := c.CollectByPriority(context.Background(), sources)
		require.NoError(t, err)
		assert.Len(t, results, 3)

		calls := d.fetch.FetchCalls()
		require.Len(t, calls, 3)
		assert.Equal(t, "s5", calls[0].Src.ID)
		assert.Equal(t, "s4", calls[1].Src.ID)
		assert.Equal(t, "s3", calls[2].Src.ID)
	})

	t.Run("failed source skipped, outcome still recorded", func(t *testing.T) {
		d := newTestDeps()
		d.fetch.FetchFunc = func(ctx context.Context, src domain.Source) domain.CollectionResult {
			if src.ID == "s2" {
				return domain.CollectionResult{SourceID: "s2", Status: domain.StatusFailure, ErrorMessage: "boom"}
			}
			return successResult(src.ID)
		}
		c := d.collector(config.CollectorConfig{})

		results, err := c.CollectByPriority(context.Background(), []domain.Source{
			activeSource("s1", 3), activeSource("s2", 2), activeSource("s3", 1),
		})
		require.NoError(t, err)
		assert.Len(t, results, 2)
		for _, r := range results {
			assert.NotEqual(t, "s2", r.Result.SourceID)
		}

		// all three attempts land in the store, failure included
		require.Len(t, d.store.RecordFetchOutcomeCalls(), 3)
		assert.Equal(t, "boom", d.store.RecordFetchOutcomeCalls()[1].ErrMsg)
		assert.False(t, d.store.RecordFetchOutcomeCalls()[1].Success)
	})

	t.Run("results ordered by realized value", func(t *testing.T) {
		d := newTestDeps()
		d.analyze.AnalyzeFunc = func(result *domain.CollectionResult) quality.BatchResult {
			score := 0.1
			if result.SourceID == "underdog" {
				score = 0.95
			}
			result.Metadata.QualityScore = score
			return quality.BatchResult{Accepted: result.Items, BatchQuality: score}
		}
		c := d.collector(config.CollectorConfig{})

		results, err := c.CollectByPriority(context.Background(), []domain.Source{
			activeSource("favorite", 9), activeSource("underdog", 4),
		})
		require.NoError(t, err)
		require.Len(t, results, 2)

		// quality delivered outweighs scheduled priority
		assert.Equal(t, "underdog", results[0].Result.SourceID)
		assert.Greater(t, results[0].RealizedValue, results[1].RealizedValue)
		assert.LessOrEqual(t, results[0].RealizedValue, 100.0)
	})

	t.Run("cancelled context stops the sequence", func(t *testing.T) {
		d := newTestDeps()
		c := d.collector(config.CollectorConfig{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results, err := c.CollectByPriority(ctx, []domain.Source{activeSource("s1", 5)})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, results)
		assert.Empty(t, d.fetch.FetchCalls())
	})
}
