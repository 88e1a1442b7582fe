package dashboard

import (
	"context"
	"net/http"
	"strconv"

	"github.com/nomad3/shopapi"
)

const analyticsBase = "/api/analytics"

// AnalyticsService reads the sales and traffic charts. All endpoints are
// GETs and benefit from the client's response cache.
type AnalyticsService struct {
	client *shopapi.Client
}

// Overview returns the headline metrics for the last days days compared with
// the period before it. days <= 0 uses the backend default window.
func (s *AnalyticsService) Overview(ctx context.Context, days int) (Overview, error) {
	return shopapi.Fetch[Overview](ctx, s.client, http.MethodGet, analyticsBase+"/overview", nil,
		shopapi.Query(daysQuery(days)))
}

// Revenue returns the daily revenue series for the chart.
func (s *AnalyticsService) Revenue(ctx context.Context, days int) ([]RevenuePoint, error) {
	return shopapi.Fetch[[]RevenuePoint](ctx, s.client, http.MethodGet, analyticsBase+"/revenue", nil,
		shopapi.Query(daysQuery(days)))
}

// Orders returns the daily order counts bucketed by status.
func (s *AnalyticsService) Orders(ctx context.Context, days int) ([]OrdersPoint, error) {
	return shopapi.Fetch[[]OrdersPoint](ctx, s.client, http.MethodGet, analyticsBase+"/orders", nil,
		shopapi.Query(daysQuery(days)))
}

// TopProducts ranks products by revenue over the window. limit <= 0 uses the
// backend default.
func (s *AnalyticsService) TopProducts(ctx context.Context, limit, days int) ([]TopProduct, error) {
	q := daysQuery(days)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return shopapi.Fetch[[]TopProduct](ctx, s.client, http.MethodGet, analyticsBase+"/top-products", nil,
		shopapi.Query(q))
}

// ConversionFunnel returns the view/cart/purchase funnel stages.
func (s *AnalyticsService) ConversionFunnel(ctx context.Context, days int) ([]FunnelStage, error) {
	return shopapi.Fetch[[]FunnelStage](ctx, s.client, http.MethodGet, analyticsBase+"/conversion-funnel", nil,
		shopapi.Query(daysQuery(days)))
}
