// Package manager caches per-location forecasts in front of the provider
// clients. Fresh-enough cache entries are served directly; expired entries
// trigger a refetch, and stale data is the fallback of last resort when
// every provider fails. Entries survive restarts as msgpack snapshots.
package manager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/providers"
	"github.com/ctrln3rd/lunara-watch/internal/types"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

// DefaultMaxAge is how long a cached forecast is considered fresh.
const DefaultMaxAge = 30 * time.Minute

// Entry is one location's cached forecast.
type Entry struct {
	LocationName string                 `msgpack:"location_name"`
	Latitude     float64                `msgpack:"latitude"`
	Longitude    float64                `msgpack:"longitude"`
	Provider     string                 `msgpack:"provider"`
	FetchedAt    time.Time              `msgpack:"fetched_at"`
	Dataset      *types.ForecastDataset `msgpack:"dataset"`
}

// Manager coordinates the cache and the provider chain. Providers are tried
// in order; the first success wins.
type Manager struct {
	mu          sync.RWMutex
	cache       map[string]*Entry
	providers   []providers.Provider
	maxAge      time.Duration
	snapshotDir string
	now         func() time.Time
	logger      *zap.SugaredLogger
}

// Option configures a Manager.
type Option func(*Manager)

// WithMaxAge overrides the cache freshness window.
func WithMaxAge(d time.Duration) Option {
	return func(m *Manager) { m.maxAge = d }
}

// WithSnapshotDir enables msgpack snapshot persistence under dir.
func WithSnapshotDir(dir string) Option {
	return func(m *Manager) { m.snapshotDir = dir }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// New creates a Manager over the given provider chain and loads any
// snapshots found in the snapshot directory.
func New(provs []providers.Provider, logger *zap.SugaredLogger, opts ...Option) *Manager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	m := &Manager{
		cache:     make(map[string]*Entry),
		providers: provs,
		maxAge:    DefaultMaxAge,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.loadSnapshots()
	return m
}

func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}

// Get returns the forecast for a location, fetching when the cache is
// missing or older than the freshness window. When every provider fails, a
// stale entry is returned rather than an error.
func (m *Manager) Get(ctx context.Context, locationName string, lat, lon float64) (*Entry, error) {
	key := cacheKey(lat, lon)

	m.mu.RLock()
	cached := m.cache[key]
	m.mu.RUnlock()

	if cached != nil && m.now().Sub(cached.FetchedAt) < m.maxAge {
		m.logger.Debugw("serving cached forecast", "location", locationName, "age", m.now().Sub(cached.FetchedAt))
		return cached, nil
	}

	entry, err := m.fetch(ctx, locationName, lat, lon)
	if err != nil {
		if cached != nil {
			m.logger.Warnw("all providers failed, serving stale forecast",
				"location", locationName, "age", m.now().Sub(cached.FetchedAt), "error", err)
			return cached, nil
		}
		return nil, err
	}

	m.mu.Lock()
	m.cache[key] = entry
	m.mu.Unlock()
	m.saveSnapshot(key, entry)

	return entry, nil
}

// Refresh fetches unconditionally, bypassing the freshness check. The cache
// keeps the old entry when the fetch fails.
func (m *Manager) Refresh(ctx context.Context, locationName string, lat, lon float64) (*Entry, error) {
	entry, err := m.fetch(ctx, locationName, lat, lon)
	if err != nil {
		return nil, err
	}

	key := cacheKey(lat, lon)
	m.mu.Lock()
	m.cache[key] = entry
	m.mu.Unlock()
	m.saveSnapshot(key, entry)

	return entry, nil
}

// Delete drops a location's cached forecast and its snapshot.
func (m *Manager) Delete(lat, lon float64) {
	key := cacheKey(lat, lon)
	m.mu.Lock()
	delete(m.cache, key)
	m.mu.Unlock()

	if m.snapshotDir != "" {
		os.Remove(m.snapshotPath(key))
	}
}

func (m *Manager) fetch(ctx context.Context, locationName string, lat, lon float64) (*Entry, error) {
	var lastErr error
	for _, p := range m.providers {
		ds, err := p.FetchForecast(ctx, lat, lon)
		if err != nil {
			m.logger.Warnw("provider fetch failed", "provider", p.Name(), "location", locationName, "error", err)
			lastErr = err
			continue
		}
		m.logger.Infow("fetched forecast", "provider", p.Name(), "location", locationName,
			"hourly", len(ds.Hourly), "daily", len(ds.Daily))
		return &Entry{
			LocationName: locationName,
			Latitude:     lat,
			Longitude:    lon,
			Provider:     p.Name(),
			FetchedAt:    m.now(),
			Dataset:      ds,
		}, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no providers configured")
	}
	return nil, fmt.Errorf("all providers failed: %w", lastErr)
}

func (m *Manager) snapshotPath(key string) string {
	return filepath.Join(m.snapshotDir, strings.ReplaceAll(key, ",", "_")+".msgpack")
}

func (m *Manager) saveSnapshot(key string, entry *Entry) {
	if m.snapshotDir == "" {
		return
	}
	if err := os.MkdirAll(m.snapshotDir, 0o755); err != nil {
		m.logger.Errorw("error creating snapshot directory", "dir", m.snapshotDir, "error", err)
		return
	}
	data, err := msgpack.Marshal(entry)
	if err != nil {
		m.logger.Errorw("error encoding forecast snapshot", "key", key, "error", err)
		return
	}
	if err := os.WriteFile(m.snapshotPath(key), data, 0o644); err != nil {
		m.logger.Errorw("error writing forecast snapshot", "key", key, "error", err)
	}
}

func (m *Manager) loadSnapshots() {
	if m.snapshotDir == "" {
		return
	}
	matches, err := filepath.Glob(filepath.Join(m.snapshotDir, "*.msgpack"))
	if err != nil {
		return
	}
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			m.logger.Warnw("error reading forecast snapshot", "path", path, "error", err)
			continue
		}
		var entry Entry
		if err := msgpack.Unmarshal(data, &entry); err != nil {
			m.logger.Warnw("error decoding forecast snapshot", "path", path, "error", err)
			continue
		}
		m.cache[cacheKey(entry.Latitude, entry.Longitude)] = &entry
	}
	if len(m.cache) > 0 {
		m.logger.Infof("loaded %d forecast snapshot(s) from %s", len(m.cache), m.snapshotDir)
	}
}
