package domain

import "time"

// EmergencyCategory groups emergencies by the vocabulary that triggered them
type EmergencyCategory string

const (
	CategoryMonetaryPolicy EmergencyCategory = "monetary_policy"
	CategoryEconomicData   EmergencyCategory = "economic_data"
	CategoryMarketCrisis   EmergencyCategory = "market_crisis"
	CategoryGeopolitical   EmergencyCategory = "geopolitical"
	CategoryTechnical      EmergencyCategory = "technical"
	CategoryGeneral        EmergencyCategory = "general"
)

// EmergencyClassification is the outcome of screening one piece of content
type EmergencyClassification struct {
	IsEmergency     bool
	UrgencyLevel    UrgencyLevel // low|medium|high|critical
	Category        EmergencyCategory
	Confidence      float64 // 0-1
	Triggers        []string
	EstimatedImpact float64 // 0-100
}

// EmergencyInformation wraps a classification with the content that produced it
type EmergencyInformation struct {
	Classification EmergencyClassification
	Content        string
	Title          string
	Link           string
	SourceID       string
	DetectedAt     time.Time
	Instruments    []string
}

// MovementType identifies the kind of market movement inferred from content
type MovementType string

const (
	MovementPriceSurge     MovementType = "price_surge"
	MovementVolumeSpike    MovementType = "volume_spike"
	MovementNewsImpact     MovementType = "news_impact"
	MovementSentimentShift MovementType = "sentiment_shift"
)

// MovementSeverity buckets movement impact
type MovementSeverity string

const (
	SeverityMinor    MovementSeverity = "minor"
	SeverityModerate MovementSeverity = "moderate"
	SeverityMajor    MovementSeverity = "major"
	SeverityCritical MovementSeverity = "critical"
)

// MarketMovement is a detected price/volume/sentiment event inferred from content
type MarketMovement struct {
	Type            MovementType
	Severity        MovementSeverity
	Instruments     []string
	DetectedAt      time.Time
	ResponseTime    time.Duration
	Recommendations []string
	SourceItem      FeedItem
}

// ResponseStatus describes the state of an emergency response
type ResponseStatus string

const (
	ResponseCompleted ResponseStatus = "completed"
	ResponseExecuting ResponseStatus = "executing"
	ResponseFailed    ResponseStatus = "failed"
)

// EmergencyResponse is the responder's outcome for one emergency.
// A failed response preserves elapsed time and error text instead of
// surfacing an error to the caller.
type EmergencyResponse struct {
	ResponseType     string
	ImmediateActions []string
	Status           ResponseStatus
	Elapsed          time.Duration
	Error            string
}

// EmergencyResult is the downstream-facing pairing of an emergency with
// its response and impact assessment
type EmergencyResult struct {
	Emergency        EmergencyInformation
	Response         EmergencyResponse
	ImpactAssessment string
	FollowUpRequired bool
}

// AlertSeverity ranks generated alerts
type AlertSeverity string

const (
	AlertInfo     AlertSeverity = "info"
	AlertWarning  AlertSeverity = "warning"
	AlertError    AlertSeverity = "error"
	AlertCritical AlertSeverity = "critical"
)

// Alert is an operator-facing notification derived from a detection
type Alert struct {
	Severity       AlertSeverity
	Message        string
	Confidence     float64
	ActionRequired bool
	Timestamp      time.Time
}
