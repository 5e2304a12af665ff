package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedwatch/feedwatch/pkg/collector"
	"github.com/feedwatch/feedwatch/pkg/domain"
	"github.com/feedwatch/feedwatch/server/mocks"
)

func testMocks() (*mocks.ConfigProviderMock, *mocks.RegistryMock, *mocks.OrchestratorMock) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 5 * time.Second },
	}
	registry := &mocks.RegistryMock{
		GetSourcesFunc: func(ctx context.Context, activeOnly bool) ([]domain.Source, error) {
			return []domain.Source{
				{ID: "reuters", URL: "https://example.com/rss", Name: "Reuters", Category: domain.CategoryNews, Priority: 8, Active: true, SuccessRate: 0.97},
			}, nil
		},
		AddSourceFunc: func(ctx context.Context, src domain.Source) error { return nil },
	}
	orchestrator := &mocks.OrchestratorMock{
		CollectFunc: func(ctx context.Context, sources []domain.Source) (*collector.Outcome, error) {
			return &collector.Outcome{
				Results:  []domain.CollectionResult{{SourceID: "reuters", Status: domain.StatusSuccess}},
				Items:    []domain.FeedItem{{ID: "1", Title: "market update"}},
				Snapshot: domain.PerformanceSnapshot{SuccessRate: 1.0},
			}, nil
		},
		StartMonitoringFunc: func(ctx context.Context, sources []domain.Source, cond *domain.MarketCondition) (domain.MonitoringSession, error) {
			return domain.MonitoringSession{ID: "session-1", IsActive: true, Status: domain.SessionRunning, StartTime: time.Now()}, nil
		},
		StopMonitoringFunc: func(id string) (domain.MonitoringSession, error) {
			return domain.MonitoringSession{ID: id, IsActive: false, Status: domain.SessionStopped}, nil
		},
		SessionsFunc: func() []domain.MonitoringSession { return nil },
		HistoryFunc:  func() []domain.PerformanceSnapshot { return nil },
	}
	return cfg, registry, orchestrator
}

func testServer(t *testing.T) (*httptest.Server, *mocks.RegistryMock, *mocks.OrchestratorMock) {
	t.Helper()
	cfg, registry, orchestrator := testMocks()
	srv := New(cfg, registry, orchestrator, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts, registry, orchestrator
}

func TestServer_Status(t *testing.T) {
	ts, _, orchestrator := testServer(t)
	orchestrator.SessionsFunc = func() []domain.MonitoringSession {
		return []domain.MonitoringSession{{ID: "session-1"}}
	}

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
	assert.InDelta(t, 1, status["sessions"], 0.001)
}

func TestServer_Ping(t *testing.T) {
	ts, _, _ := testServer(t)

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Sources(t *testing.T) {
	t.Run("active only by default", func(t *testing.T) {
		ts, registry, _ := testServer(t)

		resp, err := http.Get(ts.URL + "/api/v1/sources")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var infos []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&infos))
		require.Len(t, infos, 1)
		assert.Equal(t, "reuters", infos[0]["id"])
		assert.InDelta(t, 0.97, infos[0]["success_rate"], 0.001)

		require.Len(t, registry.GetSourcesCalls(), 1)
		assert.True(t, registry.GetSourcesCalls()[0].ActiveOnly)
	})

	t.Run("all=true includes deactivated", func(t *testing.T) {
		ts, registry, _ := testServer(t)

		resp, err := http.Get(ts.URL + "/api/v1/sources?all=true")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Len(t, registry.GetSourcesCalls(), 1)
		assert.False(t, registry.GetSourcesCalls()[0].ActiveOnly)
	})

	t.Run("registry failure is a 500", func(t *testing.T) {
		ts, registry, _ := testServer(t)
		registry.GetSourcesFunc = func(ctx context.Context, activeOnly bool) ([]domain.Source, error) {
			return nil, errors.New("db down")
		}

		resp, err := http.Get(ts.URL + "/api/v1/sources")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_AddSource(t *testing.T) {
	t.Run("registers with defaults filled", func(t *testing.T) {
		ts, registry, _ := testServer(t)

		body := `{"id":"bloomberg","url":"https://example.com/feed","name":"Bloomberg","refresh_rate":"5m"}`
		resp, err := http.Post(ts.URL+"/api/v1/sources", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		require.Len(t, registry.AddSourceCalls(), 1)
		added := registry.AddSourceCalls()[0].Src
		assert.Equal(t, "bloomberg", added.ID)
		assert.Equal(t, 5, added.Priority)
		assert.Equal(t, domain.FormatRSS, added.Format)
		assert.Equal(t, 5*time.Minute, added.RefreshRate)
		assert.True(t, added.Active)
	})

	t.Run("missing id or url is a 400", func(t *testing.T) {
		ts, registry, _ := testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/sources", "application/json", strings.NewReader(`{"name":"no id"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Empty(t, registry.AddSourceCalls())
	})

	t.Run("malformed json is a 400", func(t *testing.T) {
		ts, _, _ := testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/sources", "application/json", strings.NewReader("{not json"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad refresh_rate is a 400", func(t *testing.T) {
		ts, _, _ := testServer(t)

		body := `{"id":"x","url":"https://example.com/feed","refresh_rate":"fast"}`
		resp, err := http.Post(ts.URL+"/api/v1/sources", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_Collect(t *testing.T) {
	t.Run("runs a pass over active sources", func(t *testing.T) {
		ts, _, orchestrator := testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/collect", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var summary map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
		assert.InDelta(t, 1, summary["sources"], 0.001)
		assert.InDelta(t, 1, summary["items"], 0.001)
		assert.InDelta(t, 1.0, summary["success_rate"], 0.001)

		require.Len(t, orchestrator.CollectCalls(), 1)
		assert.Len(t, orchestrator.CollectCalls()[0].Sources, 1)
	})

	t.Run("no active sources is a 409", func(t *testing.T) {
		ts, registry, orchestrator := testServer(t)
		registry.GetSourcesFunc = func(ctx context.Context, activeOnly bool) ([]domain.Source, error) {
			return nil, nil
		}

		resp, err := http.Post(ts.URL+"/api/v1/collect", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Empty(t, orchestrator.CollectCalls())
	})

	t.Run("collection failure is a 500", func(t *testing.T) {
		ts, _, orchestrator := testServer(t)
		orchestrator.CollectFunc = func(ctx context.Context, sources []domain.Source) (*collector.Outcome, error) {
			return nil, errors.New("fetch blew up")
		}

		resp, err := http.Post(ts.URL+"/api/v1/collect", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_Sessions(t *testing.T) {
	t.Run("start returns the new session", func(t *testing.T) {
		ts, _, orchestrator := testServer(t)

		resp, err := http.Post(ts.URL+"/api/v1/sessions", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var sess map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&sess))
		assert.Equal(t, "session-1", sess["id"])
		assert.Equal(t, true, sess["is_active"])

		require.Len(t, orchestrator.StartMonitoringCalls(), 1)
	})

	t.Run("start failure is a 409", func(t *testing.T) {
		ts, _, orchestrator := testServer(t)
		orchestrator.StartMonitoringFunc = func(ctx context.Context, sources []domain.Source, cond *domain.MarketCondition) (domain.MonitoringSession, error) {
			return domain.MonitoringSession{}, errors.New("no valid sources to monitor")
		}

		resp, err := http.Post(ts.URL+"/api/v1/sessions", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("list sessions", func(t *testing.T) {
		ts, _, orchestrator := testServer(t)
		orchestrator.SessionsFunc = func() []domain.MonitoringSession {
			return []domain.MonitoringSession{
				{ID: "session-1", IsActive: true, Status: domain.SessionRunning, CollectionsCount: 3, AverageResponseTime: 250 * time.Millisecond},
			}
		}

		resp, err := http.Get(ts.URL + "/api/v1/sessions")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var infos []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&infos))
		require.Len(t, infos, 1)
		assert.Equal(t, "session-1", infos[0]["id"])
		assert.InDelta(t, 3, infos[0]["collections_count"], 0.001)
		assert.InDelta(t, 250, infos[0]["average_response_ms"], 0.001)
	})

	t.Run("stop by id", func(t *testing.T) {
		ts, _, orchestrator := testServer(t)

		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/v1/sessions/session-1", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		require.Len(t, orchestrator.StopMonitoringCalls(), 1)
		assert.Equal(t, "session-1", orchestrator.StopMonitoringCalls()[0].ID)
	})

	t.Run("stop unknown session is a 404", func(t *testing.T) {
		ts, _, orchestrator := testServer(t)
		orchestrator.StopMonitoringFunc = func(id string) (domain.MonitoringSession, error) {
			return domain.MonitoringSession{}, fmt.Errorf("unknown session %s", id)
		}

		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/v1/sessions/nope", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_Snapshots(t *testing.T) {
	ts, _, orchestrator := testServer(t)
	orchestrator.HistoryFunc = func() []domain.PerformanceSnapshot {
		return []domain.PerformanceSnapshot{
			{Timestamp: time.Now(), AverageResponseTime: 120 * time.Millisecond, SuccessRate: 0.9, QualityScore: 0.7},
		}
	}

	resp, err := http.Get(ts.URL + "/api/v1/snapshots")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var infos []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&infos))
	require.Len(t, infos, 1)
	assert.InDelta(t, 120, infos[0]["avg_response_ms"], 0.001)
	assert.InDelta(t, 0.9, infos[0]["success_rate"], 0.001)
}

func TestServer_Metrics(t *testing.T) {
	ts, _, _ := testServer(t)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_AppInfoHeader(t *testing.T) {
	ts, _, _ := testServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "feedwatch", resp.Header.Get("App-Name"))
	assert.Equal(t, "test", resp.Header.Get("App-Version"))
}
