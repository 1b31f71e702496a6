package main

import (
	"fmt"
	"path/filepath"

	"fieldscope/internal/cache"
	"fieldscope/internal/classifier"
	"fieldscope/internal/util"
)

// newService builds a classifier backed by the local SQLite cache. The
// returned cleanup closes the cache database.
func newService() (*classifier.Service, func(), error) {
	cleanup := func() {}
	var store cache.Store
	if cfg.CacheEnabled && cfg.CachePath != "" {
		if err := util.EnsureDir(filepath.Dir(cfg.CachePath)); err != nil {
			return nil, nil, err
		}
		s, err := cache.NewSQLite(cfg.CachePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open cache: %w", err)
		}
		store = s
		cleanup = func() { _ = s.Close() }
	}
	svc, err := classifier.New(cfg, nil, store)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
