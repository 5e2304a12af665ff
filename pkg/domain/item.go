package domain

import "time"

// FeedItem represents one discrete piece of content retrieved from a source.
// Immutable once fetched; owned by the CollectionResult that produced it.
type FeedItem struct {
	ID          string
	Title       string
	Description string
	Link        string
	Published   time.Time
	Author      string
	Categories  []string
	SourceID    string
	Raw         string // opaque raw payload
}

// CollectionStatus is the terminal state of one fetch attempt
type CollectionStatus string

const (
	StatusSuccess CollectionStatus = "success"
	StatusFailure CollectionStatus = "failure"
	StatusTimeout CollectionStatus = "timeout"
	StatusRetry   CollectionStatus = "retry"
)

// ResultMetadata carries per-result accounting
type ResultMetadata struct {
	TotalItems    int
	NewItems      int
	Duplicates    int
	ResourceUsage float64
	QualityScore  float64 // 0-1
}

// CollectionResult is the outcome of one fetch attempt against one source.
// One source's failure never changes the status of any other source's result.
type CollectionResult struct {
	SourceID       string
	Items          []FeedItem
	Status         CollectionStatus
	ProcessingTime time.Duration
	Timestamp      time.Time
	ErrorMessage   string
	Metadata       ResultMetadata
}

// PerformanceSnapshot is a point-in-time view of collection performance,
// appended to a bounded rolling history (oldest evicted first)
type PerformanceSnapshot struct {
	Timestamp           time.Time
	AverageResponseTime time.Duration
	SuccessRate         float64
	Throughput          float64
	ResourceEfficiency  float64
	QualityScore        float64
}

// PerformanceMetrics is a recent-performance sample for one source,
// used by feedback-driven priority adjustment
type PerformanceMetrics struct {
	SourceID            string
	SuccessRate         float64
	AverageResponseTime time.Duration
	ContentQualityScore float64
	LastUpdate          time.Time
	ErrorHistory        []string
}
