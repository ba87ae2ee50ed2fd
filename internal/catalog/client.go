// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog is the HTTP transport for the Google Books volumes API.
// It performs the calls that search.Searcher builds and hands back the raw
// status and body.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/gbooks/internal/httputil"
	"github.com/pdiddy/gbooks/internal/logger"
	"github.com/pdiddy/gbooks/internal/search"
	"github.com/pdiddy/gbooks/pkg/types"
)

const (
	// DefaultTimeout is the HTTP request timeout when none is configured.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = "gbooks/dev"

	// maxBodyBytes bounds how much of a response body is read.
	maxBodyBytes = 10 << 20
)

// Client fetches catalog URLs with optional rate limiting and 429 retries.
type Client struct {
	httpClient httputil.Doer
	limiter    *rate.Limiter
	apiKey     string
	userAgent  string
	maxRetries int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc httputil.Doer) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAPIKey sets the Google API key sent as the key query parameter.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithRateLimit caps requests per second. Zero or negative disables limiting.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a catalog client from cfg. Options are applied after
// the configuration.
func NewClient(cfg types.CatalogConfig, opts ...ClientOption) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     cfg.APIKey,
		userAgent:  ua,
		maxRetries: cfg.MaxRetries,
	}
	WithRateLimit(cfg.RateLimit)(c)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch performs req and returns the status and body. Non-2xx statuses are
// not errors; only transport failures and context cancellation are.
func (c *Client) Fetch(ctx context.Context, req search.Request) (*search.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	reqURL, err := c.withKey(req.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog URL: %w", err)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("User-Agent", c.userAgent)

	log := logger.For(ctx).WithField("url", redact(reqURL))
	log.Debug("fetching catalog")
	defer logger.Track(ctx, "catalog fetch")()

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, httpReq, c.maxRetries)
	if err != nil {
		return nil, redactError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading catalog response: %w", err)
	}

	log.WithField("status", resp.StatusCode).Debug("catalog responded")
	return &search.Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// withKey appends the API key parameter to rawURL when one is configured.
func (c *Client) withKey(rawURL string) (string, error) {
	if c.apiKey == "" {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.RawQuery != "" {
		u.RawQuery += "&"
	}
	u.RawQuery += "key=" + url.QueryEscape(c.apiKey)
	return u.String(), nil
}

// redact masks the key parameter so it never reaches logs or user output.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if q.Get("key") == "" {
		return rawURL
	}
	q.Set("key", "REDACTED")
	u.RawQuery = q.Encode()
	return u.String()
}

func redactError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = redact(uerr.URL)
	}
	return err
}
