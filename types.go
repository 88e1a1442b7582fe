package shopapi

import (
	"net/http"
	"net/url"
	"time"
)

// Default request parameters. Each can be overridden at client construction
// or per call via request options.
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 1 * time.Second
	DefaultTimeout    = 30 * time.Second
	DefaultCacheTTL   = 60 * time.Second

	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://localhost:8000"
)

// Response is the outcome of a successful request: a 2xx status and the full
// response body. Bodies are buffered; there is no streaming.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// CacheEntry is a stored response body. Entries expire lazily: an expired
// entry is treated as absent on read, there is no background sweep.
type CacheEntry struct {
	Body       []byte
	StatusCode int
	Header     http.Header
	StoredAt   time.Time
	ExpiresAt  time.Time
}

// Cache stores responses keyed by request identity (method + resolved URL).
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(key string) (*CacheEntry, bool)
	Set(key string, entry *CacheEntry, ttl time.Duration)
	Delete(key string)
	Clear()
	Len() int
}

// Logger is the minimal structured logging surface the client emits to.
// keysAndValues are alternating keys and values.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Option configures a Client at construction time.
type Option func(*Client)

// RequestOption overrides client defaults for a single call.
type RequestOption func(*requestConfig)

type requestConfig struct {
	headers    map[string]string
	query      url.Values
	maxRetries int
	retryDelay time.Duration
	timeout    time.Duration
	cacheTTL   time.Duration
	cache      *bool
}

// Retries sets the retry budget (additional attempts after the first) for one call.
func Retries(n int) RequestOption {
	return func(cfg *requestConfig) { cfg.maxRetries = n }
}

// RetryDelay sets the base backoff delay for one call.
func RetryDelay(d time.Duration) RequestOption {
	return func(cfg *requestConfig) { cfg.retryDelay = d }
}

// Timeout bounds each individual attempt of one call.
func Timeout(d time.Duration) RequestOption {
	return func(cfg *requestConfig) { cfg.timeout = d }
}

// CacheTTL sets the freshness window for the entry written by one call.
func CacheTTL(d time.Duration) RequestOption {
	return func(cfg *requestConfig) { cfg.cacheTTL = d }
}

// CacheEnabled toggles cache participation for one call. Non-GET calls never
// touch the cache regardless of this flag.
func CacheEnabled(enabled bool) RequestOption {
	return func(cfg *requestConfig) { cfg.cache = &enabled }
}

// Header adds a header to one call, overriding any client default of the same name.
func Header(key, value string) RequestOption {
	return func(cfg *requestConfig) {
		if cfg.headers == nil {
			cfg.headers = make(map[string]string)
		}
		cfg.headers[key] = value
	}
}

// Query appends an encoded query string to the endpoint. Encoding is
// deterministic, so identical values always map to the same cache key.
func Query(values url.Values) RequestOption {
	return func(cfg *requestConfig) { cfg.query = values }
}
