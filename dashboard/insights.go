package dashboard

import (
	"context"
	"net/http"
	"strconv"

	"github.com/nomad3/shopapi"
)

const insightsBase = "/api/insights"

// InsightsService reads the AI-generated analysis endpoints. These are slow
// on the backend side, so the client cache matters most here; callers that
// want a longer-lived digest can pass shopapi.CacheTTL per request.
type InsightsService struct {
	client *shopapi.Client
}

// DailyDigest returns the generated morning summary.
func (s *InsightsService) DailyDigest(ctx context.Context, opts ...shopapi.RequestOption) (DailyDigest, error) {
	return shopapi.Fetch[DailyDigest](ctx, s.client, http.MethodGet, insightsBase+"/daily-digest", nil, opts...)
}

// Product returns the AI analysis for one product.
func (s *InsightsService) Product(ctx context.Context, productID int64) (ProductInsight, error) {
	return shopapi.Fetch[ProductInsight](ctx, s.client, http.MethodGet,
		insightsBase+"/product/"+strconv.FormatInt(productID, 10), nil)
}

// Anomalies returns the currently detected anomalies.
func (s *InsightsService) Anomalies(ctx context.Context) ([]Anomaly, error) {
	return shopapi.Fetch[[]Anomaly](ctx, s.client, http.MethodGet, insightsBase+"/anomalies", nil)
}

// Predictions returns trend predictions across the catalog.
func (s *InsightsService) Predictions(ctx context.Context) ([]TrendPrediction, error) {
	return shopapi.Fetch[[]TrendPrediction](ctx, s.client, http.MethodGet, insightsBase+"/predictions", nil)
}

// PriceOptimization returns pricing suggestions across the catalog.
func (s *InsightsService) PriceOptimization(ctx context.Context) ([]PricingSuggestion, error) {
	return shopapi.Fetch[[]PricingSuggestion](ctx, s.client, http.MethodGet, insightsBase+"/price-optimization", nil)
}

// Summary returns the condensed cross-insight counters. The payload shape is
// loose on the backend, so it is surfaced as a generic map.
func (s *InsightsService) Summary(ctx context.Context) (map[string]any, error) {
	return shopapi.Fetch[map[string]any](ctx, s.client, http.MethodGet, insightsBase+"/summary", nil)
}
