package domain

import "time"

// SourceCategory is the closed set of source categories
type SourceCategory string

const (
	CategoryForex    SourceCategory = "forex"
	CategoryCrypto   SourceCategory = "crypto"
	CategoryFinance  SourceCategory = "finance"
	CategoryNews     SourceCategory = "news"
	CategoryAnalysis SourceCategory = "analysis"
)

// SourceFormat is the feed wire format
type SourceFormat string

const (
	FormatRSS  SourceFormat = "rss"
	FormatAtom SourceFormat = "atom"
	FormatJSON SourceFormat = "json"
)

// Source represents a configured, independently fetchable feed of items.
// Sources are created at registration, mutated by feedback learning and
// never deleted, only deactivated.
type Source struct {
	ID          string
	URL         string
	Name        string
	Category    SourceCategory
	Format      SourceFormat
	RefreshRate time.Duration
	Priority    int // 1-10
	Active      bool
	ErrorCount  int
	SuccessRate float64 // decaying rolling statistic, 0-1
	LastFetched *time.Time
	LastError   string
	CreatedAt   time.Time
}

// PriorityWeight holds the per-source weighting factors, each 0-1.
// Mutated only by the prioritizer.
type PriorityWeight struct {
	RelevanceScore    float64
	Timeliness        float64
	SourceReliability float64
	ContentQuality    float64
	MarketImpact      float64
}

// UrgencyLevel describes how quickly a source or event needs attention
type UrgencyLevel string

const (
	UrgencyLow       UrgencyLevel = "low"
	UrgencyMedium    UrgencyLevel = "medium"
	UrgencyHigh      UrgencyLevel = "high"
	UrgencyEmergency UrgencyLevel = "emergency"
	UrgencyCritical  UrgencyLevel = "critical"
)

// PrioritizedSource is a Source with a computed ranking attached.
// Recomputed on every prioritization pass, never persisted.
type PrioritizedSource struct {
	Source          Source
	Priority        float64 // 0-10
	Reasoning       string
	ExpectedValue   float64
	UrgencyLevel    UrgencyLevel
	ProcessingOrder int // dense 1-based rank, no gaps or ties
}
