package registry_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedwatch/feedwatch/pkg/domain"
	"github.com/feedwatch/feedwatch/pkg/registry"
)

func newTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?cache=shared&mode=rwc"
	reg, err := registry.New(context.Background(), registry.Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Close() })
	return reg
}

func testSource(id string, priority int) domain.Source {
	return domain.Source{
		ID:          id,
		URL:         "https://example.com/" + id,
		Name:        "Source " + id,
		Category:    domain.CategoryForex,
		Format:      domain.FormatRSS,
		RefreshRate: 5 * time.Minute,
		Priority:    priority,
		Active:      true,
	}
}

func TestRegistry_AddAndGetSource(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, reg.AddSource(ctx, testSource("s1", 7)))

	got, err := reg.GetSource(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, "https://example.com/s1", got.URL)
	assert.Equal(t, domain.CategoryForex, got.Category)
	assert.Equal(t, 7, got.Priority)
	assert.True(t, got.Active)
	// fresh sources start with an optimistic success rate
	assert.InDelta(t, 1.0, got.SuccessRate, 0.001)
	assert.Equal(t, 5*time.Minute, got.RefreshRate)
}

func TestRegistry_AddSource_DuplicateID(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, reg.AddSource(ctx, testSource("dup", 5)))
	assert.Error(t, reg.AddSource(ctx, testSource("dup", 5)))
}

func TestRegistry_GetSources(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, reg.AddSource(ctx, testSource("low", 2)))
	require.NoError(t, reg.AddSource(ctx, testSource("high", 9)))
	require.NoError(t, reg.AddSource(ctx, testSource("off", 5)))
	require.NoError(t, reg.DeactivateSource(ctx, "off"))

	t.Run("active only, priority descending", func(t *testing.T) {
		sources, err := reg.GetSources(ctx, true)
		require.NoError(t, err)
		require.Len(t, sources, 2)
		assert.Equal(t, "high", sources[0].ID)
		assert.Equal(t, "low", sources[1].ID)
	})

	t.Run("all includes deactivated", func(t *testing.T) {
		sources, err := reg.GetSources(ctx, false)
		require.NoError(t, err)
		assert.Len(t, sources, 3)
	})
}

func TestRegistry_UpdatePriority(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, reg.AddSource(ctx, testSource("s1", 5)))
	require.NoError(t, reg.UpdatePriority(ctx, "s1", 9))

	got, err := reg.GetSource(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Priority)
}

func TestRegistry_RecordFetchOutcome(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, reg.AddSource(ctx, testSource("s1", 5)))

	t.Run("failure decays the success rate and bumps errors", func(t *testing.T) {
		require.NoError(t, reg.RecordFetchOutcome(ctx, "s1", false, "connection refused"))

		got, err := reg.GetSource(ctx, "s1")
		require.NoError(t, err)
		assert.InDelta(t, 0.9, got.SuccessRate, 0.001)
		assert.Equal(t, 1, got.ErrorCount)
		assert.Equal(t, "connection refused", got.LastError)
		require.NotNil(t, got.LastFetched)
	})

	t.Run("success pulls the rate back up", func(t *testing.T) {
		require.NoError(t, reg.RecordFetchOutcome(ctx, "s1", true, ""))

		got, err := reg.GetSource(ctx, "s1")
		require.NoError(t, err)
		assert.InDelta(t, 0.91, got.SuccessRate, 0.001)
		assert.Equal(t, 1, got.ErrorCount)
	})

	t.Run("rate stays within bounds under repeated outcomes", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			require.NoError(t, reg.RecordFetchOutcome(ctx, "s1", i%2 == 0, ""))
		}
		got, err := reg.GetSource(ctx, "s1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.SuccessRate, 0.0)
		assert.LessOrEqual(t, got.SuccessRate, 1.0)
	})
}

func TestRegistry_DeactivateSource(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	require.NoError(t, reg.AddSource(ctx, testSource("s1", 5)))
	require.NoError(t, reg.DeactivateSource(ctx, "s1"))

	got, err := reg.GetSource(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, got.Active)

	// deactivation never deletes
	all, err := reg.GetSources(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
