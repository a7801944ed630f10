package app

import (
	"context"
	"path/filepath"
	"sync"

	"overlay-config/internal/core"
)

// configCache is an explicit, lazily initialized cache of resolved
// results keyed by root directory. An entry is assigned once on first
// use and replaced only by an explicit Rescan; there is no implicit
// invalidation.
type configCache struct {
	mu      sync.RWMutex
	results map[string]core.Result
}

func newConfigCache() *configCache {
	return &configCache{results: map[string]core.Result{}}
}

// Cached returns the resolved result for rootDir, resolving on first
// use. Repeated queries for the same root avoid re-scanning until
// Rescan is called.
func (s *Service) Cached(ctx context.Context, rootDir string) (core.Result, error) {
	key := filepath.Clean(rootDir)

	s.cache.mu.RLock()
	result, ok := s.cache.results[key]
	s.cache.mu.RUnlock()
	if ok {
		return result, nil
	}

	s.cache.mu.Lock()
	defer s.cache.mu.Unlock()
	if result, ok := s.cache.results[key]; ok {
		return result, nil
	}
	result, err := s.resolver().Resolve(ctx, rootDir)
	if err != nil {
		return core.Result{}, err
	}
	s.cache.results[key] = result
	return result, nil
}

// Rescan forces a fresh resolution for rootDir and replaces any cached
// entry with the new snapshot.
func (s *Service) Rescan(ctx context.Context, rootDir string) (core.Result, error) {
	result, err := s.resolver().Resolve(ctx, rootDir)
	if err != nil {
		return core.Result{}, err
	}
	key := filepath.Clean(rootDir)
	s.cache.mu.Lock()
	s.cache.results[key] = result
	s.cache.mu.Unlock()
	return result, nil
}
