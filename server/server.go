package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/feedwatch/feedwatch/pkg/collector"
	"github.com/feedwatch/feedwatch/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/registry.go -pkg mocks -skip-ensure -fmt goimports . Registry
//go:generate moq -out mocks/orchestrator.go -pkg mocks -skip-ensure -fmt goimports . Orchestrator

// Server exposes the collection pipeline over HTTP: status, source listing,
// on-demand collection, monitoring session control and Prometheus metrics
type Server struct {
	config       ConfigProvider
	registry     Registry
	orchestrator Orchestrator
	version      string
	debug        bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Registry is the source store surface the server needs
type Registry interface {
	GetSources(ctx context.Context, activeOnly bool) ([]domain.Source, error)
	AddSource(ctx context.Context, src domain.Source) error
}

// Orchestrator is the collection surface the server needs
type Orchestrator interface {
	Collect(ctx context.Context, sources []domain.Source) (*collector.Outcome, error)
	StartMonitoring(ctx context.Context, sources []domain.Source, cond *domain.MarketCondition) (domain.MonitoringSession, error)
	StopMonitoring(id string) (domain.MonitoringSession, error)
	Sessions() []domain.MonitoringSession
	History() []domain.PerformanceSnapshot
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, registry Registry, orchestrator Orchestrator, version string, debug bool) *Server {
	s := &Server{
		config:       cfg,
		registry:     registry,
		orchestrator: orchestrator,
		version:      version,
		debug:        debug,
		router:       routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedwatch", "feedwatch", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /sources", s.sourcesHandler)
		r.HandleFunc("POST /sources", s.addSourceHandler)
		r.HandleFunc("POST /collect", s.collectHandler)
		r.HandleFunc("GET /sessions", s.sessionsHandler)
		r.HandleFunc("POST /sessions", s.startSessionHandler)
		r.HandleFunc("DELETE /sessions/{id}", s.stopSessionHandler)
		r.HandleFunc("GET /snapshots", s.snapshotsHandler)
	})

	s.router.Handle("GET /metrics", promhttp.Handler())
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"sessions": len(s.orchestrator.Sessions()),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
