package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "gbooks/1.0.0").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CatalogConfig holds settings for the catalog client and the search orchestrator.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the volumes API root (default https://www.googleapis.com/books/v1).
	BaseURL string `json:"base_url" yaml:"base_url"`

	// MaxResults is the number of volumes requested per search (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// APIKey is an optional Google API key sent as the key query parameter.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// RateLimit caps outgoing requests per second. Zero disables limiting.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit"`

	// MaxRetries is the number of retries on HTTP 429 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// StorageBackend identifies where the reading list is persisted.
type StorageBackend string

const (
	BackendFile   StorageBackend = "file"
	BackendSQLite StorageBackend = "sqlite"
)

// StorageConfig holds settings for the reading-list store.
type StorageConfig struct {
	// Backend selects the store: file or sqlite.
	Backend StorageBackend `json:"backend" yaml:"backend"`

	// Path is the store location. Empty means the backend's default under
	// the user config directory.
	Path string `json:"path" yaml:"path"`
}

// Config groups all component configurations.
type Config struct {
	Catalog  CatalogConfig `json:"catalog" yaml:"catalog"`
	Storage  StorageConfig `json:"storage" yaml:"storage"`
	LogLevel string        `json:"log_level" yaml:"log_level"`
}
