package fetcher

import (
	"fmt"
	"sort"
	"time"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

// Recommendation is one suggested resource-allocation change, ranked by
// expected impact against implementation effort
type Recommendation struct {
	Parameter   string // concurrency or timeout
	Description string
	Impact      float64 // 0-1 expected improvement
	Effort      float64 // 0-1 cost to apply
	Score       float64 // impact weighted by effort, higher is better
	Value       float64 // suggested new value (count or seconds)
}

// OptimizeAllocation inspects recent performance snapshots and returns
// ranked recommendations for concurrency and timeout tuning. An empty
// history yields no recommendations.
func (p *Processor) OptimizeAllocation(history []domain.PerformanceSnapshot) []Recommendation {
	if len(history) == 0 {
		return nil
	}

	var avgResponse time.Duration
	var successRate, efficiency float64
	for _, s := range history {
		avgResponse += s.AverageResponseTime
		successRate += s.SuccessRate
		efficiency += s.ResourceEfficiency
	}
	n := len(history)
	avgResponse /= time.Duration(n)
	successRate /= float64(n)
	efficiency /= float64(n)

	maxConcurrent := p.MaxConcurrent()
	fetchTimeout := p.currentFetchTimeout()

	var recs []Recommendation

	if successRate < 0.8 && avgResponse > 5*time.Second {
		// slow and failing: likely saturated, back off concurrency
		recs = append(recs, Recommendation{
			Parameter:   "concurrency",
			Description: fmt.Sprintf("reduce concurrency from %d to relieve saturation", maxConcurrent),
			Impact:      0.8,
			Effort:      0.2,
			Value:       float64(maxInt(maxConcurrent-5, 5)),
		})
	}

	if successRate >= 0.9 && efficiency < 0.5 {
		// fast and healthy but underutilized: room for more parallelism
		recs = append(recs, Recommendation{
			Parameter:   "concurrency",
			Description: fmt.Sprintf("increase concurrency from %d to use idle capacity", maxConcurrent),
			Impact:      0.6,
			Effort:      0.2,
			Value:       float64(maxConcurrent + 5),
		})
	}

	if avgResponse > fetchTimeout/2 {
		recs = append(recs, Recommendation{
			Parameter:   "timeout",
			Description: fmt.Sprintf("raise fetch timeout from %v, responses are close to the budget", fetchTimeout),
			Impact:      0.7,
			Effort:      0.1,
			Value:       (fetchTimeout + 5*time.Second).Seconds(),
		})
	} else if avgResponse < fetchTimeout/10 {
		recs = append(recs, Recommendation{
			Parameter:   "timeout",
			Description: fmt.Sprintf("tighten fetch timeout from %v to fail slow sources faster", fetchTimeout),
			Impact:      0.4,
			Effort:      0.1,
			Value:       maxFloat((fetchTimeout / 2).Seconds(), 5),
		})
	}

	for i := range recs {
		recs[i].Score = recs[i].Impact * (1 - recs[i].Effort)
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	return recs
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
