package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

// sourceInfo is the wire representation of a registered source
type sourceInfo struct {
	ID          string  `json:"id"`
	URL         string  `json:"url"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Priority    int     `json:"priority"`
	Active      bool    `json:"active"`
	SuccessRate float64 `json:"success_rate"`
	ErrorCount  int     `json:"error_count"`
	LastError   string  `json:"last_error,omitempty"`
}

// sourcesHandler lists registered sources, active only unless ?all=true
func (s *Server) sourcesHandler(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"
	sources, err := s.registry.GetSources(r.Context(), activeOnly)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	infos := make([]sourceInfo, 0, len(sources))
	for _, src := range sources {
		infos = append(infos, sourceInfo{
			ID:          src.ID,
			URL:         src.URL,
			Name:        src.Name,
			Category:    string(src.Category),
			Priority:    src.Priority,
			Active:      src.Active,
			SuccessRate: src.SuccessRate,
			ErrorCount:  src.ErrorCount,
			LastError:   src.LastError,
		})
	}
	RenderJSON(w, r, http.StatusOK, infos)
}

// addSourceRequest is the payload for registering a new source
type addSourceRequest struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Format      string `json:"format"`
	Priority    int    `json:"priority"`
	RefreshRate string `json:"refresh_rate"`
}

// addSourceHandler registers a new source in the registry
func (s *Server) addSourceHandler(w http.ResponseWriter, r *http.Request) {
	var req addSourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("decode request: %w", err), http.StatusBadRequest)
		return
	}
	if req.ID == "" || req.URL == "" {
		RenderError(w, r, fmt.Errorf("id and url are required"), http.StatusBadRequest)
		return
	}

	src := domain.Source{
		ID:       req.ID,
		URL:      req.URL,
		Name:     req.Name,
		Category: domain.SourceCategory(req.Category),
		Format:   domain.SourceFormat(req.Format),
		Priority: req.Priority,
		Active:   true,
	}
	if src.Priority == 0 {
		src.Priority = 5
	}
	if src.Format == "" {
		src.Format = domain.FormatRSS
	}
	if req.RefreshRate != "" {
		rate, err := time.ParseDuration(req.RefreshRate)
		if err != nil {
			RenderError(w, r, fmt.Errorf("invalid refresh_rate: %w", err), http.StatusBadRequest)
			return
		}
		src.RefreshRate = rate
	}

	if err := s.registry.AddSource(r.Context(), src); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusCreated, map[string]string{"id": src.ID})
}

// collectResponse summarizes an on-demand collection pass
type collectResponse struct {
	Sources     int     `json:"sources"`
	Items       int     `json:"items"`
	Emergencies int     `json:"emergencies"`
	Alerts      int     `json:"alerts"`
	SuccessRate float64 `json:"success_rate"`
}

// collectHandler runs one on-demand collection pass over active sources
func (s *Server) collectHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := s.registry.GetSources(r.Context(), true)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if len(sources) == 0 {
		RenderError(w, r, fmt.Errorf("no active sources registered"), http.StatusConflict)
		return
	}

	outcome, err := s.orchestrator.Collect(r.Context(), sources)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, collectResponse{
		Sources:     len(outcome.Results),
		Items:       len(outcome.Items),
		Emergencies: len(outcome.Emergencies),
		Alerts:      len(outcome.Alerts),
		SuccessRate: outcome.Snapshot.SuccessRate,
	})
}

// sessionInfo is the wire representation of a monitoring session
type sessionInfo struct {
	ID                  string   `json:"id"`
	StartTime           string   `json:"start_time"`
	IsActive            bool     `json:"is_active"`
	Status              string   `json:"status"`
	SourceIDs           []string `json:"source_ids"`
	CollectionsCount    int      `json:"collections_count"`
	EmergencyDetections int      `json:"emergency_detections"`
	AverageResponseMs   int64    `json:"average_response_ms"`
}

func toSessionInfo(s domain.MonitoringSession) sessionInfo {
	return sessionInfo{
		ID:                  s.ID,
		StartTime:           s.StartTime.UTC().Format(time.RFC3339),
		IsActive:            s.IsActive,
		Status:              string(s.Status),
		SourceIDs:           s.SourceIDs,
		CollectionsCount:    s.CollectionsCount,
		EmergencyDetections: s.EmergencyDetections,
		AverageResponseMs:   s.AverageResponseTime.Milliseconds(),
	}
}

// sessionsHandler lists all monitoring sessions
func (s *Server) sessionsHandler(w http.ResponseWriter, r *http.Request) {
	sessions := s.orchestrator.Sessions()
	infos := make([]sessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		infos = append(infos, toSessionInfo(sess))
	}
	RenderJSON(w, r, http.StatusOK, infos)
}

// startSessionHandler launches a new monitoring session over active sources.
// The session outlives the request, so it runs on the server's background
// context, not the request context.
func (s *Server) startSessionHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := s.registry.GetSources(r.Context(), true)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	sess, err := s.orchestrator.StartMonitoring(context.Background(), sources, nil)
	if err != nil {
		RenderError(w, r, err, http.StatusConflict)
		return
	}
	RenderJSON(w, r, http.StatusCreated, toSessionInfo(sess))
}

// stopSessionHandler terminates a monitoring session by ID
func (s *Server) stopSessionHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	sess, err := s.orchestrator.StopMonitoring(id)
	if err != nil {
		RenderError(w, r, err, http.StatusNotFound)
		return
	}
	RenderJSON(w, r, http.StatusOK, toSessionInfo(sess))
}

// snapshotInfo is the wire representation of a performance snapshot
type snapshotInfo struct {
	Timestamp          string  `json:"timestamp"`
	AvgResponseMs      int64   `json:"avg_response_ms"`
	SuccessRate        float64 `json:"success_rate"`
	Throughput         float64 `json:"throughput"`
	ResourceEfficiency float64 `json:"resource_efficiency"`
	QualityScore       float64 `json:"quality_score"`
}

// snapshotsHandler returns the rolling performance history
func (s *Server) snapshotsHandler(w http.ResponseWriter, r *http.Request) {
	history := s.orchestrator.History()
	infos := make([]snapshotInfo, 0, len(history))
	for _, snap := range history {
		infos = append(infos, snapshotInfo{
			Timestamp:          snap.Timestamp.UTC().Format(time.RFC3339),
			AvgResponseMs:      snap.AverageResponseTime.Milliseconds(),
			SuccessRate:        snap.SuccessRate,
			Throughput:         snap.Throughput,
			ResourceEfficiency: snap.ResourceEfficiency,
			QualityScore:       snap.QualityScore,
		})
	}
	RenderJSON(w, r, http.StatusOK, infos)
}
