package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/nomad3/shopapi/internal/backoff"
)

// maxResponseBytes caps buffered response bodies (cached or not).
const maxResponseBytes = 10 * 1024 * 1024

// Client is the single chokepoint for every call to the shop engine backend.
// It layers response caching, retries with exponential backoff, per-attempt
// timeouts and a uniform error taxonomy around net/http. A Client is safe for
// concurrent use; the cache it owns lives and dies with it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string

	maxRetries        int
	retryDelay        time.Duration
	maxBackoff        time.Duration
	backoffMultiplier float64
	jitter            float64
	strategy          backoff.Strategy
	timeout           time.Duration

	cache    Cache
	cacheTTL time.Duration

	limiter *rate.Limiter
	metrics *MetricsCollector
	logger  Logger

	validationError error
}

// New constructs a Client from functional options. Configuration is validated
// once; an invalid Client fails every call with a Validation error.
func New(options ...Option) *Client {
	c := &Client{
		httpClient:        &http.Client{},
		baseURL:           DefaultBaseURL,
		maxRetries:        DefaultMaxRetries,
		retryDelay:        DefaultRetryDelay,
		backoffMultiplier: 2.0,
		jitter:            0,
		strategy:          backoff.Exponential{},
		timeout:           DefaultTimeout,
		cache:             NewMemoryCache(),
		cacheTTL:          DefaultCacheTTL,
	}

	for _, option := range options {
		option(c)
	}

	if err := c.ValidateConfiguration(); err != nil {
		c.validationError = err
	}

	return c
}

// Do executes one logical request: cache lookup, up to maxRetries+1 attempts
// with backoff in between, cache write on a successful GET. body is JSON
// serialized when non-nil. Non-2xx outcomes are returned as *Error.
func (c *Client) Do(ctx context.Context, method, endpoint string, body any, opts ...RequestOption) (*Response, error) {
	if c.validationError != nil {
		return nil, c.validationError
	}

	cfg := c.newRequestConfig(opts)
	fullURL := c.resolveURL(endpoint, cfg)
	label := endpointLabel(fullURL)

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, &Error{
				Type:    ErrorTypeEncoding,
				Message: "serializing request body",
				Method:  method,
				URL:     fullURL,
				Cause:   err,
			}
		}
	}

	var requestID string
	if c.logger != nil {
		requestID = uuid.NewString()
		c.logger.Debug("starting request", "requestID", requestID, "method", method, "url", fullURL)
	}

	start := time.Now()
	c.metrics.RecordRequestStart(method, label)
	defer c.metrics.RecordRequestEnd(method, label)

	cacheable := c.cacheEligible(method, cfg)
	key := cacheKey(method, fullURL)

	if cacheable {
		if entry, ok := c.cache.Get(key); ok {
			if c.logger != nil {
				c.logger.Debug("cache hit", "requestID", requestID, "key", key)
			}
			c.metrics.RecordCacheHit(method, label)
			c.metrics.RecordRequest(method, label, entry.StatusCode, time.Since(start))
			return responseFromCache(entry), nil
		}
		c.metrics.RecordCacheMiss(method, label)
	}

	resp, err := c.doWithRetry(ctx, method, fullURL, payload, cfg, requestID)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	} else {
		statusCode = StatusCode(err)
	}
	c.metrics.RecordRequest(method, label, statusCode, time.Since(start))

	if err != nil {
		return nil, err
	}

	if cacheable {
		c.cache.Set(key, newCacheEntry(resp), cfg.cacheTTL)
		c.metrics.RecordCacheSize("default", c.cache.Len())
		if c.logger != nil {
			c.logger.Debug("response cached", "requestID", requestID, "key", key, "ttl", cfg.cacheTTL)
		}
	}

	return resp, nil
}

// doWithRetry runs the strictly sequential attempt loop. Attempt N+1 is never
// issued before attempt N has terminated. Timeouts and non-429 4xx responses
// end the loop immediately; transient failures consume the retry budget.
func (c *Client) doWithRetry(ctx context.Context, method, fullURL string, payload []byte, cfg *requestConfig, requestID string) (*Response, error) {
	label := endpointLabel(fullURL)

	for attempt := 0; ; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, &Error{
					Type:    ErrorTypeCanceled,
					Message: "context ended while waiting for rate limiter",
					Method:  method,
					URL:     fullURL,
					Attempt: attempt,
					Cause:   err,
				}
			}
		}

		if attempt > 0 {
			c.metrics.RecordRetry(method, label, attempt)
		}

		resp, err := c.attempt(ctx, method, fullURL, payload, cfg)
		if err == nil {
			return resp, nil
		}

		var apiErr *Error
		if !errors.As(err, &apiErr) {
			return nil, err
		}
		apiErr.Attempt = attempt
		apiErr.MaxRetries = cfg.maxRetries
		c.metrics.RecordError(string(apiErr.Type), method, label)

		if !apiErr.Transient() || attempt >= cfg.maxRetries {
			return nil, apiErr
		}

		delay := c.strategy.Delay(attempt, cfg.retryDelay, c.maxBackoff, c.backoffMultiplier, c.jitter)
		if c.logger != nil {
			c.logger.Info("retrying request",
				"requestID", requestID,
				"method", method,
				"url", fullURL,
				"attempt", attempt+1,
				"maxRetries", cfg.maxRetries,
				"delay", delay,
				"cause", apiErr.Error(),
			)
		}

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, &Error{
				Type:       ErrorTypeCanceled,
				Message:    "context ended during backoff wait",
				Method:     method,
				URL:        fullURL,
				Attempt:    attempt,
				MaxRetries: cfg.maxRetries,
				Cause:      ctx.Err(),
			}
		}
	}
}

// attempt issues a single network call bounded by its own timeout. The
// response body is fully read before the attempt context is released.
func (c *Client) attempt(ctx context.Context, method, fullURL string, payload []byte, cfg *requestConfig) (*Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, fullURL, reader)
	if err != nil {
		return nil, &Error{
			Type:    ErrorTypeNetwork,
			Message: "building request",
			Method:  method,
			URL:     fullURL,
			Cause:   err,
		}
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range cfg.headers {
		req.Header.Set(k, v)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, attemptCtx, err, method, fullURL)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, c.transportError(ctx, attemptCtx, err, method, fullURL)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header.Clone(),
		Body:       respBody,
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	return nil, statusError(resp, method, fullURL)
}

// transportError distinguishes a per-attempt timeout from a caller
// cancellation and from ordinary network failures.
func (c *Client) transportError(ctx, attemptCtx context.Context, err error, method, fullURL string) *Error {
	switch {
	case ctx.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded):
		return &Error{
			Type:    ErrorTypeTimeout,
			Message: "attempt exceeded its timeout",
			Method:  method,
			URL:     fullURL,
			Cause:   err,
		}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{
			Type:    ErrorTypeTimeout,
			Message: "attempt exceeded its timeout",
			Method:  method,
			URL:     fullURL,
			Cause:   err,
		}
	case errors.Is(err, context.Canceled):
		return &Error{
			Type:    ErrorTypeCanceled,
			Message: "request canceled",
			Method:  method,
			URL:     fullURL,
			Cause:   err,
		}
	default:
		return &Error{
			Type:    ErrorTypeNetwork,
			Message: "network request failed",
			Method:  method,
			URL:     fullURL,
			Cause:   err,
		}
	}
}

// statusError classifies a non-2xx response. The body is attached when it is
// valid JSON so callers can inspect the backend's error payload.
func statusError(resp *Response, method, fullURL string) *Error {
	e := &Error{
		StatusCode: resp.StatusCode,
		Method:     method,
		URL:        fullURL,
	}
	if json.Valid(resp.Body) {
		e.Body = json.RawMessage(resp.Body)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		e.Type = ErrorTypeRateLimited
		e.Message = "rate limited by server"
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		e.Type = ErrorTypeClient
		e.Message = "request rejected"
	case resp.StatusCode >= 500:
		e.Type = ErrorTypeServer
		e.Message = "server error"
	default:
		e.Type = ErrorTypeServer
		e.Message = "unexpected status"
	}
	return e
}

// Invalidate removes the cached GET entry for endpoint. Removing an entry
// that does not exist is a no-op. Request options (Query in particular)
// participate in the key the same way they do on reads.
func (c *Client) Invalidate(endpoint string, opts ...RequestOption) {
	if c.cache == nil {
		return
	}
	cfg := c.newRequestConfig(opts)
	c.cache.Delete(cacheKey(http.MethodGet, c.resolveURL(endpoint, cfg)))
}

// InvalidateAll empties the cache.
func (c *Client) InvalidateAll() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

func (c *Client) newRequestConfig(opts []RequestOption) *requestConfig {
	cfg := &requestConfig{
		maxRetries: c.maxRetries,
		retryDelay: c.retryDelay,
		timeout:    c.timeout,
		cacheTTL:   c.cacheTTL,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// resolveURL joins a relative endpoint with the base URL, or passes an
// absolute endpoint through untouched. The query string is appended verbatim:
// no normalization happens, so it participates in cache identity as given.
func (c *Client) resolveURL(endpoint string, cfg *requestConfig) string {
	full := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		base := strings.TrimSuffix(c.baseURL, "/")
		if !strings.HasPrefix(endpoint, "/") {
			endpoint = "/" + endpoint
		}
		full = base + endpoint
	}

	if len(cfg.query) > 0 {
		sep := "?"
		if strings.Contains(full, "?") {
			sep = "&"
		}
		full += sep + cfg.query.Encode()
	}
	return full
}

// endpointLabel reduces a URL to host+path for metric labels, keeping the
// query string out of label cardinality.
func endpointLabel(fullURL string) string {
	rest := fullURL
	if i := strings.Index(rest, "://"); i != -1 {
		rest = rest[i+3:]
	}
	if i := strings.IndexByte(rest, '?'); i != -1 {
		rest = rest[:i]
	}
	if rest == "" {
		return "unknown"
	}
	return rest
}

// IsValid reports whether configuration validation passed at construction.
func (c *Client) IsValid() bool {
	return c.validationError == nil
}

// ValidationError returns the configuration validation error, if any.
func (c *Client) ValidationError() error {
	return c.validationError
}
