package dashboard

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nomad3/shopapi"
)

const adminBase = "/api/admin"

// AdminService covers the review queue, orders and product management.
// Queue and stats reads are cached; approving or rejecting a suggestion and
// every order or product mutation invalidates the views it stales.
type AdminService struct {
	client *shopapi.Client
}

// OrderFilter narrows an Orders call. Zero values are omitted.
type OrderFilter struct {
	Status string
	Skip   int
	Limit  int
}

func (f OrderFilter) query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Skip > 0 {
		q.Set("skip", strconv.Itoa(f.Skip))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// Stats returns the admin dashboard headline numbers.
func (s *AdminService) Stats(ctx context.Context) (AdminStats, error) {
	return shopapi.Fetch[AdminStats](ctx, s.client, http.MethodGet, adminBase+"/stats", nil)
}

// Queue lists trend suggestions awaiting review.
func (s *AdminService) Queue(ctx context.Context) ([]TrendSuggestion, error) {
	return shopapi.Fetch[[]TrendSuggestion](ctx, s.client, http.MethodGet, adminBase+"/queue", nil)
}

// Approve turns a suggestion into a live product, optionally overriding the
// suggested name and price.
func (s *AdminService) Approve(ctx context.Context, suggestionID int64, req ApproveSuggestion) (Product, error) {
	out, err := shopapi.Fetch[Product](ctx, s.client, http.MethodPost,
		adminBase+"/queue/"+strconv.FormatInt(suggestionID, 10)+"/approve", req)
	if err == nil {
		s.client.Invalidate(adminBase + "/queue")
		s.client.Invalidate(adminBase + "/stats")
	}
	return out, err
}

// Reject discards a suggestion.
func (s *AdminService) Reject(ctx context.Context, suggestionID int64) error {
	err := s.client.PostJSON(ctx, adminBase+"/queue/"+strconv.FormatInt(suggestionID, 10)+"/reject", nil, nil)
	if err == nil {
		s.client.Invalidate(adminBase + "/queue")
		s.client.Invalidate(adminBase + "/stats")
	}
	return err
}

// Orders lists orders newest first.
func (s *AdminService) Orders(ctx context.Context, filter OrderFilter) ([]Order, error) {
	return shopapi.Fetch[[]Order](ctx, s.client, http.MethodGet, adminBase+"/orders", nil,
		shopapi.Query(filter.query()))
}

// Order returns one order with its tracking info.
func (s *AdminService) Order(ctx context.Context, orderID int64) (Order, error) {
	return shopapi.Fetch[Order](ctx, s.client, http.MethodGet, s.orderPath(orderID), nil)
}

// UpdateOrderStatus moves an order to a new status.
func (s *AdminService) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	err := s.client.PatchJSON(ctx, s.orderPath(orderID)+"/status", body, nil)
	if err == nil {
		s.invalidateOrderViews(orderID)
	}
	return err
}

// AddOrderTracking attaches shipment tracking to an order.
func (s *AdminService) AddOrderTracking(ctx context.Context, orderID int64, tracking OrderTracking) error {
	err := s.client.PostJSON(ctx, s.orderPath(orderID)+"/tracking", tracking, nil)
	if err == nil {
		s.invalidateOrderViews(orderID)
	}
	return err
}

// UpdateProduct applies a partial product patch.
func (s *AdminService) UpdateProduct(ctx context.Context, productID int64, update ProductUpdate) (Product, error) {
	out, err := shopapi.Fetch[Product](ctx, s.client, http.MethodPatch,
		adminBase+"/products/"+strconv.FormatInt(productID, 10), update)
	if err == nil {
		s.client.Invalidate(adminBase + "/stats")
	}
	return out, err
}

// RecordProductView logs a storefront page view for conversion tracking.
// sessionID groups views from the same visitor and may be empty.
func (s *AdminService) RecordProductView(ctx context.Context, slug, sessionID string) error {
	q := url.Values{}
	if sessionID != "" {
		q.Set("session_id", sessionID)
	}
	return s.client.PostJSON(ctx, adminBase+"/products/"+slug+"/view", nil, nil, shopapi.Query(q))
}

func (s *AdminService) orderPath(orderID int64) string {
	return adminBase + "/orders/" + strconv.FormatInt(orderID, 10)
}

// invalidateOrderViews drops the single-order entry and the unfiltered
// listing. Filtered listings expire with their TTL.
func (s *AdminService) invalidateOrderViews(orderID int64) {
	s.client.Invalidate(s.orderPath(orderID))
	s.client.Invalidate(adminBase + "/orders")
	s.client.Invalidate(adminBase + "/stats")
}
