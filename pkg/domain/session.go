package domain

import "time"

// SessionStatus is the lifecycle state of a monitoring session
type SessionStatus string

const (
	SessionRunning SessionStatus = "running"
	SessionPaused  SessionStatus = "paused"
	SessionStopped SessionStatus = "stopped"
)

// MonitoringSession is a long-lived, stoppable background collection loop.
// Created by the collector's StartMonitoring, terminated by explicit stop
// or process shutdown.
type MonitoringSession struct {
	ID                  string
	StartTime           time.Time
	IsActive            bool
	SourceIDs           []string
	CollectionsCount    int
	EmergencyDetections int
	AverageResponseTime time.Duration
	Status              SessionStatus
}

// LearningPattern is a pattern observed by the feedback loop,
// e.g. time-of-day performance
type LearningPattern struct {
	Name        string
	Description string
	Value       string
}

// PriorityAdjustment records a feedback-driven priority change for a source.
// Adjustments are valid for 24 hours.
type PriorityAdjustment struct {
	SourceID    string
	OldPriority int
	NewPriority int
	Reason      string
	AdjustedAt  time.Time
	ValidUntil  time.Time
}

// LearningResult is the output of one feedback-learning pass
type LearningResult struct {
	Adjustments []PriorityAdjustment
	Patterns    []LearningPattern
	Suggestions []string
	Confidence  float64 // 0-1, scales with sample size
}
