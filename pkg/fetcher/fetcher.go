package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/feedwatch/feedwatch/pkg/domain"
)

// Processor fetches and parses items from many sources in parallel under a
// global concurrency ceiling. Each fetch writes only its own result slot, so
// one source's failure never aborts or delays an unrelated source.
type Processor struct {
	client    *http.Client
	userAgent string

	mu            sync.RWMutex // guards the tunables below
	maxConcurrent int
	fetchTimeout  time.Duration
}

// Config holds processor settings
type Config struct {
	MaxConcurrent int           // global ceiling on in-flight fetches, default 15
	FetchTimeout  time.Duration // per-source budget, default 15s
	UserAgent     string
}

// New creates a fetch processor
func New(cfg Config) *Processor {
	if cfg.MaxConcurrent == 0 {
		cfg.MaxConcurrent = 15
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 15 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Feedwatch/1.0"
	}
	return &Processor{
		client: &http.Client{
			Timeout: cfg.FetchTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:     cfg.UserAgent,
		maxConcurrent: cfg.MaxConcurrent,
		fetchTimeout:  cfg.FetchTimeout,
	}
}

// MaxConcurrent returns the configured concurrency ceiling
func (p *Processor) MaxConcurrent() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.maxConcurrent
}

// SetFetchTimeout adjusts the per-source budget, used by emergency mode and
// the optimization cycle. Safe to call while fetches are in flight; running
// fetches keep the budget they started with.
func (p *Processor) SetFetchTimeout(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fetchTimeout = d
}

// SetMaxConcurrent adjusts the concurrency ceiling. Safe to call while fetches
// are in flight; a running FetchAll keeps the ceiling it started with.
func (p *Processor) SetMaxConcurrent(n int) {
	if n <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maxConcurrent = n
}

// currentFetchTimeout snapshots the per-source budget
func (p *Processor) currentFetchTimeout() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.fetchTimeout
}

// ValidateSources filters a source list down to fetchable entries: active,
// non-empty http(s) URL, priority above zero. Inactive sources are always
// excluded regardless of priority or URL validity.
func ValidateSources(sources []domain.Source) []domain.Source {
	valid := make([]domain.Source, 0, len(sources))
	for _, src := range sources {
		if !src.Active {
			continue
		}
		if src.Priority <= 0 {
			continue
		}
		if !strings.HasPrefix(src.URL, "http://") && !strings.HasPrefix(src.URL, "https://") {
			continue
		}
		valid = append(valid, src)
	}
	return valid
}

// FetchAll fetches every source concurrently under the global ceiling and
// returns one CollectionResult per input source, in input order, regardless
// of individual failures.
func (p *Processor) FetchAll(ctx context.Context, sources []domain.Source) []domain.CollectionResult {
	results := make([]domain.CollectionResult, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.MaxConcurrent())

	for i, src := range sources {
		g.Go(func() error {
			results[i] = p.Fetch(ctx, src)
			return nil
		})
	}

	_ = g.Wait() // per-source errors live in the results, never escalate
	return results
}

// Fetch retrieves one source with the source's retry policy applied. The
// returned result carries a terminal status: success, failure, timeout or
// retry (transient, re-attempted on the next cycle).
func (p *Processor) Fetch(ctx context.Context, src domain.Source) domain.CollectionResult {
	started := time.Now()
	result := domain.CollectionResult{SourceID: src.ID, Timestamp: started}
	timeout := p.currentFetchTimeout()

	var items []domain.FeedItem
	retrier := repeater.NewBackoff(p.attemptsFor(src), 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		fetchCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		fetched, ferr := p.fetchOnce(fetchCtx, src)
		if ferr != nil {
			return ferr
		}
		items = fetched
		return nil
	})

	result.ProcessingTime = time.Since(started)
	result.Metadata.ResourceUsage = result.ProcessingTime.Seconds() / timeout.Seconds()

	if err != nil {
		result.ErrorMessage = err.Error()
		result.Status = statusForError(err)
		lgr.Printf("[WARN] fetch %s (%s) failed: %v", src.ID, src.URL, err)
		return result
	}

	result.Items = items
	result.Status = domain.StatusSuccess
	result.Metadata.TotalItems = len(items)
	result.Metadata.NewItems, result.Metadata.Duplicates = countDuplicates(items)
	return result
}

// fetchOnce performs a single fetch and parse attempt
func (p *Processor) fetchOnce(ctx context.Context, src domain.Source) ([]domain.FeedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, src.URL)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", src.URL, err)
	}

	items := make([]domain.FeedItem, 0, len(feed.Items))
	for _, fi := range feed.Items {
		item := domain.FeedItem{
			Title:       fi.Title,
			Description: fi.Description,
			Link:        fi.Link,
			Categories:  fi.Categories,
			SourceID:    src.ID,
			Raw:         fi.Content,
		}

		// stable item identity: GUID, then link, then source+title
		switch {
		case fi.GUID != "":
			item.ID = fi.GUID
		case fi.Link != "":
			item.ID = fi.Link
		default:
			item.ID = fmt.Sprintf("%s-%s", src.ID, fi.Title)
		}

		if fi.Author != nil {
			item.Author = fi.Author.Name
		}
		if fi.PublishedParsed != nil {
			item.Published = *fi.PublishedParsed
		} else if fi.UpdatedParsed != nil {
			item.Published = *fi.UpdatedParsed
		}

		items = append(items, item)
	}
	return items, nil
}

// attemptsFor derives the retry attempt count from source priority:
// high-priority sources get one extra attempt
func (p *Processor) attemptsFor(src domain.Source) int {
	if src.Priority >= 8 {
		return 3
	}
	return 2
}

// statusForError maps a terminal fetch error to a result status
func statusForError(err error) domain.CollectionStatus {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.StatusTimeout
	}
	msg := err.Error()
	if strings.Contains(msg, "status code 5") || strings.Contains(msg, "connection refused") {
		return domain.StatusRetry
	}
	return domain.StatusFailure
}

// countDuplicates splits items into new and duplicate counts by identity
func countDuplicates(items []domain.FeedItem) (newItems, duplicates int) {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			duplicates++
			continue
		}
		seen[item.ID] = struct{}{}
		newItems++
	}
	return newItems, duplicates
}
