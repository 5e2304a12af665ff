package prioritizer

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

// adjustment trigger thresholds
const (
	triggerSuccessRate  = 0.7
	triggerResponseTime = 10 * time.Second
	triggerQuality      = 0.5
)

// Learn mines a batch of collection results for priority adjustments,
// time-of-day performance patterns and improvement suggestions. Each result
// is appended to the per-source rolling history (bounded at 50 samples) and
// the derived metrics trigger an adjustment when success rate, latency or
// quality cross their thresholds. Confidence scales with total sample size.
func (p *Prioritizer) Learn(sources []domain.Source, results []domain.CollectionResult, now time.Time) domain.LearningResult {
	bySource := make(map[string]domain.Source, len(sources))
	for _, s := range sources {
		bySource[s.ID] = s
	}

	out := domain.LearningResult{}

	for _, res := range results {
		metrics := p.recordSample(res)

		src, ok := bySource[res.SourceID]
		if !ok {
			continue
		}

		if metrics.SuccessRate < triggerSuccessRate ||
			metrics.AverageResponseTime > triggerResponseTime ||
			metrics.ContentQualityScore < triggerQuality {
			adj := p.AdjustPriority(src, metrics, now)
			out.Adjustments = append(out.Adjustments, adj)
			lgr.Printf("[DEBUG] priority adjustment for %s: %d -> %d (%s)",
				src.ID, adj.OldPriority, adj.NewPriority, adj.Reason)
		}
	}

	out.Patterns = p.minePatterns(results)
	out.Suggestions = p.suggestions(results)
	out.Confidence = p.confidence()
	return out
}

// recordSample appends a sample derived from one result to the source's
// rolling history and returns metrics averaged over that history
func (p *Prioritizer) recordSample(res domain.CollectionResult) domain.PerformanceMetrics {
	p.mu.Lock()
	defer p.mu.Unlock()

	hist := append(p.history[res.SourceID], sample{
		success:      res.Status == domain.StatusSuccess,
		responseTime: res.ProcessingTime,
		quality:      res.Metadata.QualityScore,
		timestamp:    res.Timestamp,
	})
	if len(hist) > historyCap {
		hist = hist[len(hist)-historyCap:] // oldest evicted first
	}
	p.history[res.SourceID] = hist

	metrics := domain.PerformanceMetrics{SourceID: res.SourceID, LastUpdate: res.Timestamp}
	var successes int
	var totalTime time.Duration
	var totalQuality float64
	for _, s := range hist {
		if s.success {
			successes++
		} else {
			metrics.ErrorHistory = append(metrics.ErrorHistory, s.timestamp.Format(time.RFC3339))
		}
		totalTime += s.responseTime
		totalQuality += s.quality
	}
	n := float64(len(hist))
	metrics.SuccessRate = float64(successes) / n
	metrics.AverageResponseTime = totalTime / time.Duration(len(hist))
	metrics.ContentQualityScore = totalQuality / n
	return metrics
}

// minePatterns finds the best three hours of day by success count
func (p *Prioritizer) minePatterns(results []domain.CollectionResult) []domain.LearningPattern {
	successByHour := make(map[int]int)
	for _, res := range results {
		if res.Status == domain.StatusSuccess {
			successByHour[res.Timestamp.Hour()]++
		}
	}
	if len(successByHour) == 0 {
		return nil
	}

	hours := make([]int, 0, len(successByHour))
	for h := range successByHour {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if successByHour[hours[i]] != successByHour[hours[j]] {
			return successByHour[hours[i]] > successByHour[hours[j]]
		}
		return hours[i] < hours[j]
	})
	if len(hours) > 3 {
		hours = hours[:3]
	}

	return []domain.LearningPattern{{
		Name:        "best_hours",
		Description: "hours of day with the most successful collections",
		Value:       fmt.Sprintf("%v", hours),
	}}
}

// suggestions generates improvement hints from batch-level symptoms
func (p *Prioritizer) suggestions(results []domain.CollectionResult) []string {
	if len(results) == 0 {
		return nil
	}

	var out []string

	failed := 0
	var totalQuality float64
	for _, res := range results {
		if res.Status != domain.StatusSuccess {
			failed++
		}
		totalQuality += res.Metadata.QualityScore
		if res.ProcessingTime > triggerResponseTime {
			out = append(out, fmt.Sprintf("source %s exceeds 10s fetch latency, consider a longer timeout or deactivation", res.SourceID))
		}
	}

	if float64(failed)/float64(len(results)) > 0.2 {
		out = append(out, "over 20% of the batch failed, review failing sources and retry policy")
	}
	if totalQuality/float64(len(results)) < triggerQuality {
		out = append(out, "aggregate content quality is low, review source selection for topical fit")
	}
	return out
}

// confidence scales with the total number of recorded samples: 0.5 below 10
// samples, rising linearly to 0.95 at 100 or more
func (p *Prioritizer) confidence() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := 0
	for _, h := range p.history {
		total += len(h)
	}
	if total < 10 {
		return 0.5
	}
	if total >= 100 {
		return 0.95
	}
	return 0.5 + 0.45*float64(total-10)/90
}
