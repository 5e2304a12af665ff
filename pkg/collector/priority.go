package collector

import (
	"context"
	"sort"

	"github.com/go-pkgz/lgr"

	"github.com/feedwatch/feedwatch/pkg/domain"
	"github.com/feedwatch/feedwatch/pkg/fetcher"
)

// PrioritizedResult pairs a collection result with the ranking that scheduled
// it and the value realized after the fetch completed
type PrioritizedResult struct {
	Result        domain.CollectionResult
	Ranked        domain.PrioritizedSource
	RealizedValue float64 // 0-100
}

// CollectByPriority ranks the sources, takes the top slice up to the
// concurrency ceiling and fetches them one at a time in rank order. A failed
// source is logged and skipped, its outcome still recorded. Results come back
// ordered by realized value, highest first.
func (c *Collector) CollectByPriority(ctx context.Context, sources []domain.Source) ([]PrioritizedResult, error) {
	valid := fetcher.ValidateSources(sources)
	ranked := c.prioritizer.RankSources(valid)

	if limit := c.fetcher.MaxConcurrent(); len(ranked) > limit {
		ranked = ranked[:limit]
	}
	lgr.Printf("[INFO] priority collection of top %d of %d sources", len(ranked), len(valid))

	results := make([]PrioritizedResult, 0, len(ranked))
	for _, ps := range ranked {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}

		res := c.fetcher.Fetch(ctx, ps.Source)
		if err := c.store.RecordFetchOutcome(ctx, res.SourceID, res.Status == domain.StatusSuccess, res.ErrorMessage); err != nil {
			lgr.Printf("[WARN] failed to record outcome for %s: %v", res.SourceID, err)
		}
		if res.Status != domain.StatusSuccess {
			lgr.Printf("[WARN] priority fetch %s failed (%s), skipping", ps.Source.ID, res.Status)
			continue
		}

		c.analyzer.Analyze(&res)
		results = append(results, PrioritizedResult{
			Result:        res,
			Ranked:        ps,
			RealizedValue: realizedValue(res, ps),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RealizedValue > results[j].RealizedValue
	})
	return results, nil
}

// realizedValue scores what a completed fetch actually delivered: quality
// carries half the weight, item yield (saturating at 10 items) and the
// scheduled priority split the rest
func realizedValue(res domain.CollectionResult, ps domain.PrioritizedSource) float64 {
	yield := float64(len(res.Items)) / 10
	if yield > 1 {
		yield = 1
	}
	return (0.5*res.Metadata.QualityScore + 0.3*yield + 0.2*ps.Priority/10) * 100
}
