package domain

import "time"

// Volatility buckets market volatility
type Volatility string

const (
	VolatilityLow     Volatility = "low"
	VolatilityMedium  Volatility = "medium"
	VolatilityHigh    Volatility = "high"
	VolatilityExtreme Volatility = "extreme"
)

// NewsIntensity buckets the current news flow
type NewsIntensity string

const (
	NewsLow      NewsIntensity = "low"
	NewsMedium   NewsIntensity = "medium"
	NewsHigh     NewsIntensity = "high"
	NewsBreaking NewsIntensity = "breaking"
)

// MarketCondition is a snapshot of market state, supplied by the caller or
// derived from recent detections. It drives emergency-mode source selection.
type MarketCondition struct {
	Volatility          Volatility
	TrendDirection      string
	NewsIntensity       NewsIntensity
	SessionTime         time.Time
	MajorEventScheduled bool
}

// TrendChange is a detected change in a numeric time series
type TrendChange struct {
	Detected     bool
	Type         string // trend_reversal or trend_acceleration
	Direction    string // up or down
	ChangePct    float64
	Confidence   float64 // 0-1
	Significance float64 // 0-1
}

// Breakout is a detected breach of a recent price range
type Breakout struct {
	Detected  bool
	Direction string  // above or below
	Strength  float64 // relative breach magnitude
}
