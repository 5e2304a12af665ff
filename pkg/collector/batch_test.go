package collector_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedwatch/feedwatch/pkg/config"
	"github.com/feedwatch/feedwatch/pkg/domain"
)

func TestCollector_ProcessBatches(t *testing.T) {
	t.Run("aggregates across batches", func(t *testing.T) {
		d := newTestDeps()
		c := d.collector(config.CollectorConfig{})

		sources := []domain.Source{
			activeSource("s1", 5), activeSource("s2", 5),
			activeSource("s3", 5), activeSource("s4", 5),
		}

		summary, err := c.ProcessBatches(context.Background(), sources, 2)
		require.NoError(t, err)

		assert.Equal(t, 2, summary.Batches)
		assert.Equal(t, 4, summary.Successful)
		assert.Zero(t, summary.Failed)
		assert.Equal(t, 4, summary.TotalItems)
		assert.Len(t, summary.Outcomes, 2)
		assert.Positive(t, summary.Elapsed)

		require.Len(t, d.fetch.DistributeLoadCalls(), 1)
		assert.Equal(t, 2, d.fetch.DistributeLoadCalls()[0].BatchSize)
	})

	t.Run("failures counted without stopping later batches", func(t *testing.T) {
		d := newTestDeps()
		d.fetch.FetchAllFunc = func(ctx context.Context, sources []domain.Source) []domain.CollectionResult {
			results := make([]domain.CollectionResult, len(sources))
			for i, src := range sources {
				if src.ID == "s3" {
					results[i] = domain.CollectionResult{SourceID: src.ID, Status: domain.StatusFailure, ErrorMessage: "unreachable"}
					continue
				}
				results[i] = successResult(src.ID)
			}
			return results
		}
		c := d.collector(config.CollectorConfig{})

		sources := []domain.Source{
			activeSource("s1", 5), activeSource("s2", 5),
			activeSource("s3", 5), activeSource("s4", 5),
		}

		summary, err := c.ProcessBatches(context.Background(), sources, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.Successful)
		assert.Equal(t, 1, summary.Failed)
		assert.Equal(t, 3, summary.TotalItems)
		assert.Len(t, summary.Outcomes, 2)
	})

	t.Run("cancellation between batches returns partial summary", func(t *testing.T) {
		d := newTestDeps()
		c := d.collector(config.CollectorConfig{BatchDelay: 50 * time.Millisecond})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		summary, err := c.ProcessBatches(ctx, []domain.Source{
			activeSource("s1", 5), activeSource("s2", 5),
		}, 1)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 2, summary.Batches)
		assert.Len(t, summary.Outcomes, 1) // second batch never ran
	})

	t.Run("no valid sources yields empty summary", func(t *testing.T) {
		d := newTestDeps()
		c := d.collector(config.CollectorConfig{})

		summary, err := c.ProcessBatches(context.Background(), nil, 3)
		require.NoError(t, err)
		assert.Zero(t, summary.Batches)
		assert.Empty(t, summary.Outcomes)
	})
}
