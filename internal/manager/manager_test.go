package manager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/providers"
	"github.com/ctrln3rd/lunara-watch/internal/types"
)

// fakeProvider counts fetches and can be switched into failure mode.
type fakeProvider struct {
	name    string
	fetches int
	fail    bool
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) FetchForecast(ctx context.Context, lat, lon float64) (*types.ForecastDataset, error) {
	f.fetches++
	if f.fail {
		return nil, errors.New("provider down")
	}
	return &types.ForecastDataset{
		Hourly: []types.HourlyPoint{{Timestamp: time.Now(), Temperature: 20}},
	}, nil
}

func newTestManager(p providers.Provider, opts ...Option) (*Manager, *time.Time) {
	now := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)
	opts = append(opts, WithClock(func() time.Time { return now }))
	return New([]providers.Provider{p}, nil, opts...), &now
}

func TestGetCachesWithinMaxAge(t *testing.T) {
	p := &fakeProvider{name: "fake"}
	m, now := newTestManager(p)

	ctx := context.Background()
	if _, err := m.Get(ctx, "home", 51.5, -0.12); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := m.Get(ctx, "home", 51.5, -0.12); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.fetches != 1 {
		t.Errorf("fetches = %d, want 1 (second call should hit cache)", p.fetches)
	}

	*now = now.Add(DefaultMaxAge + time.Minute)
	if _, err := m.Get(ctx, "home", 51.5, -0.12); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.fetches != 2 {
		t.Errorf("fetches = %d, want 2 (cache expired)", p.fetches)
	}
}

func TestGetFallsBackToStaleOnFailure(t *testing.T) {
	p := &fakeProvider{name: "fake"}
	m, now := newTestManager(p)

	ctx := context.Background()
	first, err := m.Get(ctx, "home", 51.5, -0.12)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	*now = now.Add(time.Hour)
	p.fail = true

	stale, err := m.Get(ctx, "home", 51.5, -0.12)
	if err != nil {
		t.Fatalf("Get with stale fallback: %v", err)
	}
	if stale != first {
		t.Error("expected the stale cached entry when providers fail")
	}
}

func TestGetErrorsWithoutCacheOrProviders(t *testing.T) {
	p := &fakeProvider{name: "fake", fail: true}
	m, _ := newTestManager(p)

	if _, err := m.Get(context.Background(), "home", 51.5, -0.12); err == nil {
		t.Fatal("expected error when providers fail and no cache exists")
	}
}

func TestProviderChainFallsThrough(t *testing.T) {
	primary := &fakeProvider{name: "primary", fail: true}
	secondary := &fakeProvider{name: "secondary"}
	now := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)
	m := New([]providers.Provider{primary, secondary}, nil,
		WithClock(func() time.Time { return now }))

	entry, err := m.Get(context.Background(), "home", 51.5, -0.12)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if entry.Provider != "secondary" {
		t.Errorf("provider = %q, want secondary", entry.Provider)
	}
	if primary.fetches != 1 {
		t.Errorf("primary fetches = %d, want 1", primary.fetches)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := &fakeProvider{name: "fake"}
	m, _ := newTestManager(p, WithSnapshotDir(dir))

	if _, err := m.Get(context.Background(), "home", 51.5, -0.12); err != nil {
		t.Fatalf("Get: %v", err)
	}

	// A fresh manager over the same directory starts warm.
	p2 := &fakeProvider{name: "fake"}
	m2, _ := newTestManager(p2, WithSnapshotDir(dir))

	entry, err := m2.Get(context.Background(), "home", 51.5, -0.12)
	if err != nil {
		t.Fatalf("Get after snapshot reload: %v", err)
	}
	if p2.fetches != 0 {
		t.Errorf("fetches = %d, want 0 (should serve reloaded snapshot)", p2.fetches)
	}
	if entry.LocationName != "home" || len(entry.Dataset.Hourly) != 1 {
		t.Errorf("reloaded entry mismatch: %+v", entry)
	}
}

func TestDeleteRemovesCacheAndSnapshot(t *testing.T) {
	dir := t.TempDir()
	p := &fakeProvider{name: "fake"}
	m, _ := newTestManager(p, WithSnapshotDir(dir))

	ctx := context.Background()
	if _, err := m.Get(ctx, "home", 51.5, -0.12); err != nil {
		t.Fatalf("Get: %v", err)
	}

	m.Delete(51.5, -0.12)

	if _, err := m.Get(ctx, "home", 51.5, -0.12); err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if p.fetches != 2 {
		t.Errorf("fetches = %d, want 2 (delete should force a refetch)", p.fetches)
	}
}
