// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/gbooks/internal/catalog"
	"github.com/pdiddy/gbooks/internal/readinglist"
	"github.com/pdiddy/gbooks/internal/search"
	"github.com/pdiddy/gbooks/internal/secrets"
	"github.com/pdiddy/gbooks/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.base_url", search.DefaultBaseURL)
	v.SetDefault("catalog.max_results", search.DefaultMaxResults)
	v.SetDefault("catalog.timeout", defaultTimeout)
	v.SetDefault("catalog.user_agent", "gbooks/"+version)
	v.SetDefault("catalog.api_key", "")
	v.SetDefault("catalog.rate_limit", 0.0)
	v.SetDefault("catalog.max_retries", defaultMaxRetries)
	v.SetDefault("storage.backend", string(types.BackendFile))
	v.SetDefault("storage.path", "")
	v.SetDefault("log.level", "warn")
}

// loadConfig assembles the configuration from v. The catalog API key falls
// back to the google-books-api-key secret.
func loadConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.Config{
		Catalog: types.CatalogConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("catalog.timeout"),
				UserAgent: v.GetString("catalog.user_agent"),
			},
			BaseURL:    v.GetString("catalog.base_url"),
			MaxResults: v.GetInt("catalog.max_results"),
			APIKey:     v.GetString("catalog.api_key"),
			RateLimit:  v.GetFloat64("catalog.rate_limit"),
			MaxRetries: v.GetInt("catalog.max_retries"),
		},
		Storage: types.StorageConfig{
			Backend: types.StorageBackend(v.GetString("storage.backend")),
			Path:    v.GetString("storage.path"),
		},
		LogLevel: v.GetString("log.level"),
	}

	if cfg.Catalog.APIKey == "" {
		cfg.Catalog.APIKey = loadedSecrets[secrets.GoogleBooksAPIKey]
	}

	switch cfg.Storage.Backend {
	case types.BackendFile, types.BackendSQLite:
	case "":
		cfg.Storage.Backend = types.BackendFile
	default:
		return types.Config{}, fmt.Errorf("unknown storage backend %q: use file or sqlite", cfg.Storage.Backend)
	}
	return cfg, nil
}

// storeOpener opens the configured reading-list store. The returned func
// releases it.
type storeOpener func(cfg types.StorageConfig) (readinglist.Store, func() error, error)

// fetcherFactory builds the catalog transport.
type fetcherFactory func(cfg types.CatalogConfig) search.Fetcher

var (
	openStore  storeOpener    = openConfiguredStore
	newFetcher fetcherFactory = func(cfg types.CatalogConfig) search.Fetcher { return catalog.NewClient(cfg) }
)

func openConfiguredStore(cfg types.StorageConfig) (readinglist.Store, func() error, error) {
	switch cfg.Backend {
	case types.BackendSQLite:
		s, err := readinglist.NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		s, err := readinglist.NewFileStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	}
}
