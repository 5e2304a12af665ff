package collector

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedwatch/feedwatch/pkg/domain"
	"github.com/feedwatch/feedwatch/pkg/fetcher"
)

// session is the collector-internal view of a monitoring loop
type session struct {
	mu                  sync.Mutex
	info                domain.MonitoringSession
	cancel              context.CancelFunc
	lastClassifications []domain.EmergencyClassification
}

func (s *session) snapshot() domain.MonitoringSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// StartMonitoring launches a continuous background collection loop over the
// configured number of top sources. The loop re-collects on every tick,
// switching to the emergency refresh profile when market conditions call for
// it. The returned session describes the running loop; it stays registered
// until StopMonitoring or Stop.
func (c *Collector) StartMonitoring(ctx context.Context, sources []domain.Source, cond *domain.MarketCondition) (domain.MonitoringSession, error) {
	valid := fetcher.ValidateSources(sources)
	if len(valid) == 0 {
		return domain.MonitoringSession{}, fmt.Errorf("no valid sources to monitor")
	}

	subset := valid
	if len(subset) > c.cfg.MonitorSources {
		subset = subset[:c.cfg.MonitorSources]
	}

	ids := make([]string, len(subset))
	for i, src := range subset {
		ids[i] = src.ID
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s := &session{
		info: domain.MonitoringSession{
			ID:        fmt.Sprintf("session-%d", time.Now().UnixNano()),
			StartTime: time.Now(),
			IsActive:  true,
			SourceIDs: ids,
			Status:    domain.SessionRunning,
		},
		cancel: cancel,
	}

	c.sessionsMu.Lock()
	c.sessions[s.info.ID] = s
	c.sessionsMu.Unlock()

	if c.metrics != nil {
		c.metrics.SessionStarted()
	}
	lgr.Printf("[INFO] monitoring session %s started, %d sources, interval %v", s.info.ID, len(subset), c.cfg.MonitorInterval)

	c.wg.Add(1)
	go c.monitorLoop(loopCtx, s, subset, cond)

	return s.snapshot(), nil
}

// monitorLoop runs collection passes until the session is stopped or the
// context ends. The ticker is reset when emergency conditions shorten the
// refresh interval.
func (c *Collector) monitorLoop(ctx context.Context, s *session, subset []domain.Source, cond *domain.MarketCondition) {
	defer c.wg.Done()

	interval := c.cfg.MonitorInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.finishSession(s)
			return
		case <-ticker.C:
		}

		active := cond
		targets := subset
		if active == nil {
			derived := c.deriveFromHistory(s)
			active = &derived
		}

		if active.Volatility == domain.VolatilityHigh || active.Volatility == domain.VolatilityExtreme ||
			active.NewsIntensity == domain.NewsBreaking {
			plan := c.prioritizer.EmergencyPrioritize(subset, *active)
			if len(plan.Emergency) > 0 {
				targets = plan.Emergency
			}
			c.fetcher.SetFetchTimeout(plan.FetchTimeout)
			if plan.RefreshInterval != interval {
				interval = plan.RefreshInterval
				ticker.Reset(interval)
				lgr.Printf("[WARN] session %s switched to emergency profile, interval %v", s.info.ID, interval)
			}
		}

		started := time.Now()
		outcome, err := c.Collect(ctx, targets)
		if err != nil {
			lgr.Printf("[WARN] session %s collection failed: %v", s.info.ID, err)
			continue
		}
		c.recordTick(s, outcome, time.Since(started))
	}
}

// deriveFromHistory infers market conditions from the session's latest pass
func (c *Collector) deriveFromHistory(s *session) domain.MarketCondition {
	s.mu.Lock()
	classifications := s.lastClassifications
	s.mu.Unlock()
	return c.detector.DeriveCondition(classifications, time.Now())
}

// recordTick folds one pass into the session counters
func (c *Collector) recordTick(s *session, outcome *Outcome, elapsed time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.info.CollectionsCount
	s.info.CollectionsCount = n + 1
	s.info.EmergencyDetections += len(outcome.Emergencies)
	// running average over all completed passes
	s.info.AverageResponseTime = (s.info.AverageResponseTime*time.Duration(n) + elapsed) / time.Duration(n+1)

	s.lastClassifications = s.lastClassifications[:0]
	for _, e := range outcome.Emergencies {
		s.lastClassifications = append(s.lastClassifications, e.Emergency.Classification)
	}
}

// finishSession marks a session stopped and drops the active-session gauge
func (c *Collector) finishSession(s *session) {
	s.mu.Lock()
	wasActive := s.info.IsActive
	s.info.IsActive = false
	s.info.Status = domain.SessionStopped
	s.mu.Unlock()

	if wasActive && c.metrics != nil {
		c.metrics.SessionStopped()
	}
	lgr.Printf("[INFO] monitoring session %s stopped", s.info.ID)
}

// StopMonitoring terminates one session by ID. Stopping an unknown or
// already-stopped session returns an error.
func (c *Collector) StopMonitoring(id string) (domain.MonitoringSession, error) {
	c.sessionsMu.Lock()
	s, ok := c.sessions[id]
	c.sessionsMu.Unlock()
	if !ok {
		return domain.MonitoringSession{}, fmt.Errorf("unknown session %s", id)
	}
	if !s.snapshot().IsActive {
		return s.snapshot(), fmt.Errorf("session %s already stopped", id)
	}

	s.cancel()
	c.finishSession(s)
	return s.snapshot(), nil
}

// Sessions lists all known sessions, active and stopped
func (c *Collector) Sessions() []domain.MonitoringSession {
	c.sessionsMu.Lock()
	defer c.sessionsMu.Unlock()
	out := make([]domain.MonitoringSession, 0, len(c.sessions))
	for _, s := range c.sessions {
		out = append(out, s.snapshot())
	}
	return out
}

// Stop cancels all active sessions and waits for their loops to exit
func (c *Collector) Stop() {
	c.sessionsMu.Lock()
	for _, s := range c.sessions {
		if s.snapshot().IsActive {
			s.cancel()
		}
	}
	c.sessionsMu.Unlock()
	c.wg.Wait()
}
