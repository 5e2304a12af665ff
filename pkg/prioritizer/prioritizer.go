package prioritizer

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/feedwatch/feedwatch/pkg/config"
	"github.com/feedwatch/feedwatch/pkg/domain"
)

// Prioritizer computes and continuously adjusts per-source priority and value
// scores. It owns the per-source weight table and the rolling performance
// history used by feedback learning; both are guarded for concurrent use.
type Prioritizer struct {
	cfg config.PriorityConfig

	mu      sync.Mutex
	weights map[string]domain.PriorityWeight
	history map[string][]sample // bounded per-source rolling history
}

const historyCap = 50

type sample struct {
	success      bool
	responseTime time.Duration
	quality      float64
	timestamp    time.Time
}

// New creates a prioritizer with the given configuration
func New(cfg config.PriorityConfig) *Prioritizer {
	return &Prioritizer{
		cfg:     cfg,
		weights: make(map[string]domain.PriorityWeight),
		history: make(map[string][]sample),
	}
}

// SetWeight stores the weighting factors for a source
func (p *Prioritizer) SetWeight(sourceID string, w domain.PriorityWeight) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.weights[sourceID] = w
}

// Weight returns the stored weighting factors for a source, or neutral
// mid-range weights when none are stored
func (p *Prioritizer) Weight(sourceID string) domain.PriorityWeight {
	p.mu.Lock()
	defer p.mu.Unlock()
	if w, ok := p.weights[sourceID]; ok {
		return w
	}
	return domain.PriorityWeight{
		RelevanceScore:    0.5,
		Timeliness:        0.5,
		SourceReliability: 0.5,
		ContentQuality:    0.5,
		MarketImpact:      0.5,
	}
}

// RankSources scores each source on quality, topical relevance and
// reliability (each 1-10), blends the assessment 70/30 with the source's
// stored priority and returns the sources sorted by the final 1-10 value
// with a dense 1..N processing order.
func (p *Prioritizer) RankSources(sources []domain.Source) []domain.PrioritizedSource {
	ranked := make([]domain.PrioritizedSource, 0, len(sources))
	for _, src := range sources {
		quality := qualityScore(src)
		relevance := relevanceScore(src)
		reliability := p.reliabilityScore(src)

		assessment := (quality + relevance + reliability) / 3
		final := 0.7*assessment + 0.3*float64(src.Priority)
		final = clampFloat(final, 1, 10)

		ranked = append(ranked, domain.PrioritizedSource{
			Source:        src,
			Priority:      final,
			Reasoning:     fmt.Sprintf("quality %.1f, relevance %.1f, reliability %.1f, stored priority %d", quality, relevance, reliability, src.Priority),
			ExpectedValue: final * 10,
			UrgencyLevel:  urgencyForPriority(final),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Priority > ranked[j].Priority })
	for i := range ranked {
		ranked[i].ProcessingOrder = i + 1
	}
	return ranked
}

// qualityScore derives a 1-10 quality assessment from the source's rolling
// success rate
func qualityScore(src domain.Source) float64 {
	return clampFloat(1+src.SuccessRate*9, 1, 10)
}

// relevanceScore rates how close a source category is to market-moving content
func relevanceScore(src domain.Source) float64 {
	switch src.Category {
	case domain.CategoryForex, domain.CategoryCrypto, domain.CategoryFinance:
		return 9
	case domain.CategoryNews:
		return 7
	case domain.CategoryAnalysis:
		return 6
	default:
		return 5
	}
}

// reliabilityScore rates a source on error history and known-reliable
// membership
func (p *Prioritizer) reliabilityScore(src domain.Source) float64 {
	score := 8.0 - float64(src.ErrorCount)
	name := strings.ToLower(src.Name)
	for _, rs := range p.cfg.ReliableSources {
		if strings.Contains(name, strings.ToLower(rs)) {
			score += 2
			break
		}
	}
	return clampFloat(score, 1, 10)
}

// urgencyForPriority buckets a final 1-10 priority into an urgency level.
// Near-saturated priorities mark drop-everything sources.
func urgencyForPriority(priority float64) domain.UrgencyLevel {
	switch {
	case priority >= 9.5:
		return domain.UrgencyEmergency
	case priority >= 8:
		return domain.UrgencyHigh
	case priority >= 5:
		return domain.UrgencyMedium
	default:
		return domain.UrgencyLow
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
