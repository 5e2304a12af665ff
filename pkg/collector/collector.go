package collector

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedwatch/feedwatch/pkg/config"
	"github.com/feedwatch/feedwatch/pkg/domain"
	"github.com/feedwatch/feedwatch/pkg/fetcher"
	"github.com/feedwatch/feedwatch/pkg/prioritizer"
	"github.com/feedwatch/feedwatch/pkg/quality"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/analyzer.go -pkg mocks -skip-ensure -fmt goimports . Analyzer
//go:generate moq -out mocks/prioritizer.go -pkg mocks -skip-ensure -fmt goimports . Prioritizer
//go:generate moq -out mocks/detector.go -pkg mocks -skip-ensure -fmt goimports . Detector
//go:generate moq -out mocks/responder.go -pkg mocks -skip-ensure -fmt goimports . Responder
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . SourceStore

// Fetcher is the parallel fetch capability
type Fetcher interface {
	FetchAll(ctx context.Context, sources []domain.Source) []domain.CollectionResult
	Fetch(ctx context.Context, src domain.Source) domain.CollectionResult
	DistributeLoad(sources []domain.Source, batchSize int) [][]domain.Source
	OptimizeAllocation(history []domain.PerformanceSnapshot) []fetcher.Recommendation
	MaxConcurrent() int
	SetMaxConcurrent(n int)
	SetFetchTimeout(d time.Duration)
}

// Analyzer is the feed quality scoring capability
type Analyzer interface {
	Analyze(result *domain.CollectionResult) quality.BatchResult
}

// Prioritizer is the source scoring and feedback-learning capability
type Prioritizer interface {
	RankSources(sources []domain.Source) []domain.PrioritizedSource
	Learn(sources []domain.Source, results []domain.CollectionResult, now time.Time) domain.LearningResult
	EmergencyPrioritize(sources []domain.Source, cond domain.MarketCondition) prioritizer.EmergencyPlan
}

// Detector is the emergency and movement classification capability
type Detector interface {
	ClassifyEmergency(content string) domain.EmergencyClassification
	ScreenItems(items []domain.FeedItem) []domain.EmergencyInformation
	DetectMovements(items []domain.FeedItem) []domain.MarketMovement
	GenerateAlerts(detections []domain.EmergencyInformation) []domain.Alert
	DeriveCondition(classifications []domain.EmergencyClassification, now time.Time) domain.MarketCondition
}

// Responder is the bounded-time emergency response capability
type Responder interface {
	HandleAll(ctx context.Context, infos []domain.EmergencyInformation) []domain.EmergencyResult
}

// SourceStore is the registry surface the collector needs
type SourceStore interface {
	GetSources(ctx context.Context, activeOnly bool) ([]domain.Source, error)
	RecordFetchOutcome(ctx context.Context, id string, success bool, errMsg string) error
	UpdatePriority(ctx context.Context, id string, priority int) error
}

// Recorder is the metrics surface, optional
type Recorder interface {
	RecordCollection()
	RecordItems(n int)
	RecordEmergency(urgency string)
	RecordFetchDuration(ms float64)
	SessionStarted()
	SessionStopped()
}

// Params holds all collector dependencies and settings
type Params struct {
	Fetcher     Fetcher
	Analyzer    Analyzer
	Prioritizer Prioritizer
	Detector    Detector
	Responder   Responder
	Store       SourceStore
	Metrics     Recorder // optional

	Config config.CollectorConfig
}

// Collector coordinates fetching, quality analysis, detection, response and
// feedback learning across three operating modes: one-shot parallel
// collection, priority-driven sequential collection and continuous
// monitoring sessions.
type Collector struct {
	fetcher     Fetcher
	analyzer    Analyzer
	prioritizer Prioritizer
	detector    Detector
	responder   Responder
	store       SourceStore
	metrics     Recorder
	cfg         config.CollectorConfig

	historyMu sync.Mutex
	history   []domain.PerformanceSnapshot // bounded rolling window

	sessionsMu sync.Mutex
	sessions   map[string]*session
	wg         sync.WaitGroup
}

// snapshotCap bounds the rolling performance history
const snapshotCap = 100

// New creates a collector from its dependencies
func New(p Params) *Collector {
	if p.Config.MonitorInterval == 0 {
		p.Config.MonitorInterval = 60 * time.Second
	}
	if p.Config.MonitorSources == 0 {
		p.Config.MonitorSources = 5
	}
	return &Collector{
		fetcher:     p.Fetcher,
		analyzer:    p.Analyzer,
		prioritizer: p.Prioritizer,
		detector:    p.Detector,
		responder:   p.Responder,
		store:       p.Store,
		metrics:     p.Metrics,
		cfg:         p.Config,
		sessions:    make(map[string]*session),
	}
}

// Outcome is the result of one collection pass
type Outcome struct {
	Results     []domain.CollectionResult
	Items       []domain.FeedItem // quality-filtered union across sources
	Emergencies []domain.EmergencyResult
	Movements   []domain.MarketMovement
	Alerts      []domain.Alert
	Learning    domain.LearningResult
	Snapshot    domain.PerformanceSnapshot
}

// Collect runs one-shot parallel collection: validate, fetch under the
// global ceiling, quality-filter, scan for emergencies and movements,
// dispatch critical findings to the responder concurrently, then record
// performance and feed outcomes back into prioritization. Results come back
// sorted by quality score, not fetch-completion order.
func (c *Collector) Collect(ctx context.Context, sources []domain.Source) (*Outcome, error) {
	valid := fetcher.ValidateSources(sources)
	lgr.Printf("[INFO] one-shot collection of %d sources (%d valid)", len(sources), len(valid))

	results := c.fetcher.FetchAll(ctx, valid)

	var items []domain.FeedItem
	for i := range results {
		batch := c.analyzer.Analyze(&results[i])
		items = append(items, batch.Accepted...)
	}

	emergencies := c.detector.ScreenItems(items)
	movements := c.detector.DetectMovements(items)
	alerts := c.detector.GenerateAlerts(emergencies)

	outcome := &Outcome{
		Results:   results,
		Items:     items,
		Movements: movements,
		Alerts:    alerts,
	}

	if dispatch := c.dispatchSet(emergencies, movements); len(dispatch) > 0 {
		lgr.Printf("[WARN] dispatching %d emergencies to response handler", len(dispatch))
		outcome.Emergencies = c.responder.HandleAll(ctx, dispatch)
	}

	c.recordPass(ctx, valid, results, outcome)

	sort.SliceStable(outcome.Results, func(i, j int) bool {
		return outcome.Results[i].Metadata.QualityScore > outcome.Results[j].Metadata.QualityScore
	})
	return outcome, nil
}

// dispatchSet unions screened emergencies with critical/major market
// movements, promoting the latter to emergency information so news-driven
// events reach the responder even when their wording is terse
func (c *Collector) dispatchSet(emergencies []domain.EmergencyInformation, movements []domain.MarketMovement) []domain.EmergencyInformation {
	dispatch := make([]domain.EmergencyInformation, 0, len(emergencies))
	seen := make(map[string]struct{})
	for _, e := range emergencies {
		dispatch = append(dispatch, e)
		seen[e.Link+e.Title] = struct{}{}
	}

	for _, m := range movements {
		if m.Severity != domain.SeverityCritical && m.Severity != domain.SeverityMajor {
			continue
		}
		item := m.SourceItem
		if _, ok := seen[item.Link+item.Title]; ok {
			continue
		}
		seen[item.Link+item.Title] = struct{}{}
		dispatch = append(dispatch, domain.EmergencyInformation{
			Classification: c.detector.ClassifyEmergency(item.Title + " " + item.Description),
			Content:        item.Title + " " + item.Description,
			Title:          item.Title,
			Link:           item.Link,
			SourceID:       item.SourceID,
			DetectedAt:     m.DetectedAt,
			Instruments:    m.Instruments,
		})
	}
	return dispatch
}

// recordPass updates metrics, the rolling snapshot history, the registry's
// reliability stats and the prioritizer's feedback loop after a pass
func (c *Collector) recordPass(ctx context.Context, sources []domain.Source, results []domain.CollectionResult, outcome *Outcome) {
	snapshot := snapshotOf(results)
	outcome.Snapshot = snapshot
	c.appendSnapshot(snapshot)

	if c.metrics != nil {
		c.metrics.RecordCollection()
		c.metrics.RecordItems(len(outcome.Items))
		for _, e := range outcome.Emergencies {
			c.metrics.RecordEmergency(string(e.Emergency.Classification.UrgencyLevel))
		}
		for _, res := range results {
			c.metrics.RecordFetchDuration(float64(res.ProcessingTime.Milliseconds()))
		}
	}

	// reliability stats are mutated through the store only, one source at a
	// time, so concurrent batches cannot lose updates
	for _, res := range results {
		success := res.Status == domain.StatusSuccess
		if err := c.store.RecordFetchOutcome(ctx, res.SourceID, success, res.ErrorMessage); err != nil {
			lgr.Printf("[WARN] failed to record outcome for %s: %v", res.SourceID, err)
		}
	}

	outcome.Learning = c.prioritizer.Learn(sources, results, time.Now())
	for _, adj := range outcome.Learning.Adjustments {
		if err := c.store.UpdatePriority(ctx, adj.SourceID, adj.NewPriority); err != nil {
			lgr.Printf("[WARN] failed to apply priority adjustment for %s: %v", adj.SourceID, err)
		}
	}
}

// snapshotOf condenses one pass into a performance snapshot
func snapshotOf(results []domain.CollectionResult) domain.PerformanceSnapshot {
	snap := domain.PerformanceSnapshot{Timestamp: time.Now()}
	if len(results) == 0 {
		return snap
	}

	var totalTime time.Duration
	var successes, items int
	var usage, qualitySum float64
	for _, res := range results {
		totalTime += res.ProcessingTime
		if res.Status == domain.StatusSuccess {
			successes++
		}
		items += len(res.Items)
		usage += res.Metadata.ResourceUsage
		qualitySum += res.Metadata.QualityScore
	}

	n := float64(len(results))
	snap.AverageResponseTime = totalTime / time.Duration(len(results))
	snap.SuccessRate = float64(successes) / n
	if totalTime > 0 {
		snap.Throughput = float64(items) / totalTime.Seconds()
	}
	snap.ResourceEfficiency = 1 - clamp01(usage/n)
	snap.QualityScore = qualitySum / n
	return snap
}

// appendSnapshot adds to the bounded history, evicting oldest first
func (c *Collector) appendSnapshot(snap domain.PerformanceSnapshot) {
	c.historyMu.Lock()
	defer c.historyMu.Unlock()
	c.history = append(c.history, snap)
	if len(c.history) > snapshotCap {
		c.history = c.history[len(c.history)-snapshotCap:]
	}
}

// History returns a copy of the rolling performance history
func (c *Collector) History() []domain.PerformanceSnapshot {
	c.historyMu.Lock()
	defer c.historyMu.Unlock()
	out := make([]domain.PerformanceSnapshot, len(c.history))
	copy(out, c.history)
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
