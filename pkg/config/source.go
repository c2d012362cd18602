package config

import (
	"context"
	"sync"
)

// Source yields the current settings. The notifier takes one snapshot per
// incoming event so a single pipeline run never observes a mid-flight
// admin change.
type Source interface {
	Snapshot(ctx context.Context) (Settings, error)
}

// Store extends Source with the write half of the admin contract. Hosts
// that persist settings in their own config table implement this.
type Store interface {
	Source
	Save(ctx context.Context, settings Settings) error
}

// StaticSource wraps a fixed Settings value. Useful for tests and hosts
// that reload configuration out of band.
type StaticSource struct {
	mu       sync.RWMutex
	settings Settings
}

var _ Store = (*StaticSource)(nil)

// NewStaticSource builds a source seeded with the provided settings.
func NewStaticSource(settings Settings) *StaticSource {
	return &StaticSource{settings: settings}
}

func (s *StaticSource) Snapshot(ctx context.Context) (Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

func (s *StaticSource) Save(ctx context.Context, settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}
