package shopapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/nomad3/shopapi/internal/backoff"
)

// WithBaseURL sets the base URL relative endpoints are resolved against.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient swaps the underlying *http.Client (custom transports,
// proxies, test doubles). Timeouts stay per-attempt and context-driven.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithMaxRetries sets the default retry budget: n additional attempts after
// the first, so a call makes at most n+1 network calls.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithRetryDelay sets the default base backoff delay.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithMaxBackoff caps the computed backoff delay. Zero means uncapped.
func WithMaxBackoff(d time.Duration) Option {
	return func(c *Client) {
		c.maxBackoff = d
	}
}

// WithBackoffMultiplier sets the exponential growth factor (default 2.0).
func WithBackoffMultiplier(f float64) Option {
	return func(c *Client) {
		c.backoffMultiplier = f
	}
}

// WithJitter adds a uniform random fraction (0.0 to 1.0) on top of each
// backoff delay. The default is 0: waits follow retryDelay * 2^attempt exactly.
func WithJitter(f float64) Option {
	return func(c *Client) {
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		c.jitter = f
	}
}

// WithBackoffStrategy replaces the backoff calculation wholesale.
func WithBackoffStrategy(s backoff.Strategy) Option {
	return func(c *Client) {
		c.strategy = s
	}
}

// WithTimeout sets the default per-attempt timeout. The whole retry sequence
// is not bounded by it; each attempt gets its own deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithCacheTTL sets the default freshness window for cached GET responses.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) {
		c.cacheTTL = d
	}
}

// WithCache swaps the cache implementation.
func WithCache(cache Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithCacheDisabled turns response caching off for the whole client.
func WithCacheDisabled() Option {
	return func(c *Client) {
		c.cache = nil
	}
}

// WithDefaultHeader adds a header to every request (auth tokens, tenant IDs).
// Per-request headers of the same name win.
func WithDefaultHeader(key, value string) Option {
	return func(c *Client) {
		if c.headers == nil {
			c.headers = make(map[string]string)
		}
		c.headers[key] = value
	}
}

// WithLogger enables diagnostic logging (retry notices, cache traffic).
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics enables Prometheus metrics on the default registerer.
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsRegistry enables Prometheus metrics on a supplied registerer.
func WithMetricsRegistry(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollectorWithRegistry(reg)
	}
}

// WithRateLimit throttles outgoing attempts to rps requests per second with
// the given burst. Off by default.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// ValidateConfiguration checks the assembled configuration. New runs it once
// and stores the result; an invalid Client fails every call.
func (c *Client) ValidateConfiguration() error {
	var problems []string

	if c.httpClient == nil {
		problems = append(problems, "http client must not be nil")
	}
	if c.baseURL == "" {
		problems = append(problems, "base URL must not be empty")
	}
	if c.maxRetries < 0 {
		problems = append(problems, "maxRetries must be non-negative")
	}
	if c.retryDelay <= 0 {
		problems = append(problems, "retryDelay must be positive")
	}
	if c.maxBackoff < 0 {
		problems = append(problems, "maxBackoff must be non-negative")
	}
	if c.maxBackoff > 0 && c.maxBackoff < c.retryDelay {
		problems = append(problems, "maxBackoff must be at least retryDelay")
	}
	if c.backoffMultiplier <= 0 {
		problems = append(problems, "backoffMultiplier must be positive")
	}
	if c.jitter < 0 || c.jitter > 1 {
		problems = append(problems, "jitter must be between 0 and 1")
	}
	if c.timeout <= 0 {
		problems = append(problems, "timeout must be positive")
	}
	if c.cache != nil && c.cacheTTL <= 0 {
		problems = append(problems, "cacheTTL must be positive when caching is enabled")
	}
	if c.strategy == nil {
		problems = append(problems, "backoff strategy must not be nil")
	}

	if len(problems) > 0 {
		return &Error{
			Type:    ErrorTypeValidation,
			Message: "configuration validation failed",
			Cause:   fmt.Errorf("%v", problems),
		}
	}
	return nil
}
