package registry

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/feedwatch/feedwatch/pkg/domain"
)

//go:embed schema.sql
var schemaFS embed.FS

// decayFactor controls how fast the rolling success rate forgets old outcomes
const decayFactor = 0.9

// Registry holds the catalog of feed sources and their rolling reliability
// statistics. Sources are never deleted, only deactivated. Stat mutations go
// through single-writer SQL updates retried on lock errors, so concurrent
// batches cannot lose updates.
type Registry struct {
	db *sqlx.DB
}

// Config represents registry database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// sourceSQL represents a source row
type sourceSQL struct {
	ID          string     `db:"id"`
	URL         string     `db:"url"`
	Name        string     `db:"name"`
	Category    string     `db:"category"`
	Format      string     `db:"format"`
	RefreshSecs int        `db:"refresh_secs"`
	Priority    int        `db:"priority"`
	Active      bool       `db:"active"`
	ErrorCount  int        `db:"error_count"`
	SuccessRate float64    `db:"success_rate"`
	LastFetched *time.Time `db:"last_fetched"`
	LastError   string     `db:"last_error"`
	CreatedAt   time.Time  `db:"created_at"`
}

// New opens the registry database and applies the schema
func New(ctx context.Context, cfg Config) (*Registry, error) {
	if cfg.DSN == "" {
		cfg.DSN = "file:feedwatch.db?cache=shared&mode=rwc&_txlock=immediate"
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, string(schema)); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Registry{db: db}, nil
}

// Close closes the underlying database
func (r *Registry) Close() error { return r.db.Close() }

// AddSource registers a new source. The initial success rate is optimistic
// so a fresh source gets a fair chance in ranking.
func (r *Registry) AddSource(ctx context.Context, src domain.Source) error {
	row := &sourceSQL{
		ID:          src.ID,
		URL:         src.URL,
		Name:        src.Name,
		Category:    string(src.Category),
		Format:      string(src.Format),
		RefreshSecs: int(src.RefreshRate.Seconds()),
		Priority:    src.Priority,
		Active:      src.Active,
		SuccessRate: 1.0,
	}

	query := `
		INSERT INTO sources (id, url, name, category, format, refresh_secs, priority, active, success_rate)
		VALUES (:id, :url, :name, :category, :format, :refresh_secs, :priority, :active, :success_rate)
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("add source: %w", err)
	}
	return nil
}

// GetSource retrieves one source by ID
func (r *Registry) GetSource(ctx context.Context, id string) (*domain.Source, error) {
	var row sourceSQL
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM sources WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("get source %s: %w", id, err)
	}
	src := toDomain(&row)
	return &src, nil
}

// GetSources retrieves sources, optionally only active ones
func (r *Registry) GetSources(ctx context.Context, activeOnly bool) ([]domain.Source, error) {
	query := "SELECT * FROM sources"
	if activeOnly {
		query += " WHERE active = 1"
	}
	query += " ORDER BY priority DESC, name"

	var rows []sourceSQL
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	sources := make([]domain.Source, len(rows))
	for i, row := range rows {
		sources[i] = toDomain(&row)
	}
	return sources, nil
}

// UpdatePriority applies a feedback-driven priority change
func (r *Registry) UpdatePriority(ctx context.Context, id string, priority int) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE sources SET priority = ? WHERE id = ?", priority, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update priority: %w", err)}
		}
		return nil
	})
}

// RecordFetchOutcome folds one fetch outcome into the source's rolling
// reliability stats. The success rate is a decaying average so it always
// stays within [0,1]; failures also bump the error counter.
func (r *Registry) RecordFetchOutcome(ctx context.Context, id string, success bool, errMsg string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	outcome := 0.0
	if success {
		outcome = 1.0
	}

	return retrier.Do(ctx, func() error {
		query := `
			UPDATE sources
			SET success_rate = success_rate * ? + ? * ?,
			    error_count = error_count + ?,
			    last_fetched = datetime('now'),
			    last_error = ?
			WHERE id = ?
		`
		errInc := 1
		if success {
			errInc = 0
		}
		_, err := r.db.ExecContext(ctx, query, decayFactor, 1-decayFactor, outcome, errInc, errMsg, id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("record fetch outcome: %w", err)}
		}
		return nil
	})
}

// DeactivateSource marks a source inactive; sources are never deleted
func (r *Registry) DeactivateSource(ctx context.Context, id string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE sources SET active = 0 WHERE id = ?", id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("deactivate source: %w", err)}
		}
		return nil
	})
}

func toDomain(row *sourceSQL) domain.Source {
	return domain.Source{
		ID:          row.ID,
		URL:         row.URL,
		Name:        row.Name,
		Category:    domain.SourceCategory(row.Category),
		Format:      domain.SourceFormat(row.Format),
		RefreshRate: time.Duration(row.RefreshSecs) * time.Second,
		Priority:    row.Priority,
		Active:      row.Active,
		ErrorCount:  row.ErrorCount,
		SuccessRate: row.SuccessRate,
		LastFetched: row.LastFetched,
		LastError:   row.LastError,
		CreatedAt:   row.CreatedAt,
	}
}
