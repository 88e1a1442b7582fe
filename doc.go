// Package shopapi is the resilient HTTP client the shop dashboard uses to
// talk to the engine backend. Every call goes through one chokepoint that
// layers:
//
//   - Short-lived response caching keyed by method + resolved URL (GET only)
//   - Retries with exponential backoff for transient failures (network, 5xx, 429)
//   - A hard per-attempt timeout, surfaced immediately and never retried
//   - A uniform error taxonomy carrying status code and parsed error body
//
// Design goals:
//   - Small surface area: functional options configure everything
//   - Safe concurrent use of a single *Client instance
//   - Pluggable cache, metrics and logging
//
// Typical usage:
//
//	client := shopapi.New(
//	    shopapi.WithBaseURL(cfg.BaseURL),
//	    shopapi.WithMaxRetries(3),
//	    shopapi.WithCacheTTL(time.Minute),
//	    shopapi.WithLogger(shopapi.NewLogger("info", false)),
//	)
//	overview, err := shopapi.Fetch[Overview](ctx, client, http.MethodGet, "/analytics/overview", nil)
//
// Client errors (4xx other than 429) and timeouts are terminal; everything
// else is retried with retryDelay * 2^attempt between attempts. Mutating
// verbs bypass the cache entirely; call Invalidate after a mutation that
// stales a cached GET. The dashboard package builds the typed API surface on
// top of this client.
package shopapi
