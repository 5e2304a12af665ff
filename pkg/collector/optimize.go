package collector

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedwatch/feedwatch/pkg/domain"
	"github.com/feedwatch/feedwatch/pkg/fetcher"
)

// applyImpactFloor and applyEffortCeil gate which recommendations the
// optimization cycle applies automatically
const (
	applyImpactFloor = 0.6
	applyEffortCeil  = 0.3
)

// OptimizationReport describes one optimization cycle: the state before, the
// recommendations considered, which were applied, and the measured change
// after a live test pass
type OptimizationReport struct {
	Before          domain.PerformanceSnapshot
	After           domain.PerformanceSnapshot
	Recommendations []fetcher.Recommendation
	Applied         []fetcher.Recommendation
	ResponseTimePct float64 // negative is faster
	SuccessRatePct  float64
	ThroughputPct   float64
	QualityPct      float64
}

// OptimizePerformance reviews the rolling performance history, applies the
// high-impact low-effort recommendations to the fetcher and verifies the
// effect with a live collection pass over a few registered sources.
func (c *Collector) OptimizePerformance(ctx context.Context) (OptimizationReport, error) {
	history := c.History()
	report := OptimizationReport{}
	if len(history) > 0 {
		report.Before = history[len(history)-1]
	}

	report.Recommendations = c.fetcher.OptimizeAllocation(history)
	for _, rec := range report.Recommendations {
		if rec.Impact < applyImpactFloor || rec.Effort > applyEffortCeil {
			continue
		}
		switch rec.Parameter {
		case "timeout":
			c.fetcher.SetFetchTimeout(time.Duration(rec.Value * float64(time.Second)))
		case "concurrency":
			c.fetcher.SetMaxConcurrent(int(rec.Value))
		default:
			continue
		}
		lgr.Printf("[INFO] applied optimization: %s", rec.Description)
		report.Applied = append(report.Applied, rec)
	}

	// live verification against a handful of real sources
	sources, err := c.store.GetSources(ctx, true)
	if err != nil {
		return report, err
	}
	if len(sources) > 3 {
		sources = sources[:3]
	}
	if len(sources) > 0 {
		outcome, cerr := c.Collect(ctx, sources)
		if cerr != nil {
			return report, cerr
		}
		report.After = outcome.Snapshot
		report.ResponseTimePct = pctChange(report.Before.AverageResponseTime.Seconds(), report.After.AverageResponseTime.Seconds())
		report.SuccessRatePct = pctChange(report.Before.SuccessRate, report.After.SuccessRate)
		report.ThroughputPct = pctChange(report.Before.Throughput, report.After.Throughput)
		report.QualityPct = pctChange(report.Before.QualityScore, report.After.QualityScore)
	}

	return report, nil
}

// pctChange returns the relative change in percent, zero when there is no
// baseline to compare against
func pctChange(before, after float64) float64 {
	if before == 0 {
		return 0
	}
	return (after - before) / before * 100
}
