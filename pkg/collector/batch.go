package collector

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedwatch/feedwatch/pkg/domain"
	"github.com/feedwatch/feedwatch/pkg/fetcher"
)

// BatchSummary aggregates outcomes across all processed batches
type BatchSummary struct {
	Batches     int
	Successful  int
	Failed      int
	TotalItems  int
	Emergencies int
	Elapsed     time.Duration
	Outcomes    []*Outcome
}

// ProcessBatches splits the sources into priority-balanced batches and runs a
// full collection pass per batch with a configured delay between batches.
// One batch's failures never stop the remaining batches.
func (c *Collector) ProcessBatches(ctx context.Context, sources []domain.Source, batchSize int) (BatchSummary, error) {
	started := time.Now()
	valid := fetcher.ValidateSources(sources)
	batches := c.fetcher.DistributeLoad(valid, batchSize)

	summary := BatchSummary{Batches: len(batches)}
	lgr.Printf("[INFO] batch processing %d sources in %d batches", len(valid), len(batches))

	for i, batch := range batches {
		if i > 0 && c.cfg.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				summary.Elapsed = time.Since(started)
				return summary, ctx.Err()
			case <-time.After(c.cfg.BatchDelay):
			}
		}

		outcome, err := c.Collect(ctx, batch)
		if err != nil {
			lgr.Printf("[WARN] batch %d/%d failed: %v", i+1, len(batches), err)
			summary.Failed += len(batch)
			continue
		}

		for _, res := range outcome.Results {
			if res.Status == domain.StatusSuccess {
				summary.Successful++
			} else {
				summary.Failed++
			}
		}
		summary.TotalItems += len(outcome.Items)
		summary.Emergencies += len(outcome.Emergencies)
		summary.Outcomes = append(summary.Outcomes, outcome)
	}

	summary.Elapsed = time.Since(started)
	lgr.Printf("[INFO] batch processing done: %d ok, %d failed, %d items in %v",
		summary.Successful, summary.Failed, summary.TotalItems, summary.Elapsed)
	return summary, nil
}
