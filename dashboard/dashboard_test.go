package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomad3/shopapi"
)

func newTestAPI(t *testing.T, handler http.Handler) *API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := shopapi.New(
		shopapi.WithBaseURL(srv.URL),
		shopapi.WithMaxRetries(0),
		shopapi.WithRetryDelay(time.Millisecond),
	)
	return New(client)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestAnalyticsOverview(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analytics/overview", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("days"))
		writeJSON(t, w, Overview{
			TotalRevenueCents:  125000,
			TotalOrders:        42,
			ConversionRate:     3.1,
			AvgOrderValueCents: 2976,
			RevenueChange:      12.5,
			OrdersChange:       -4.2,
		})
	}))

	got, err := api.Analytics.Overview(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(125000), got.TotalRevenueCents)
	assert.Equal(t, 42, got.TotalOrders)
	assert.InDelta(t, -4.2, got.OrdersChange, 0.001)
}

func TestAnalyticsTopProductsOmitsDefaultWindow(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analytics/top-products", r.URL.Path)
		assert.False(t, r.URL.Query().Has("days"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		writeJSON(t, w, []TopProduct{{ID: 1, Name: "LED Strip", UnitsSold: 9, Revenue: 8991}})
	}))

	got, err := api.Analytics.TopProducts(context.Background(), 5, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "LED Strip", got[0].Name)
}

func TestNotificationListFilter(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notifications", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "merchant-1", q.Get("user_id"))
		assert.Equal(t, "true", q.Get("unread_only"))
		assert.Equal(t, "alert", q.Get("notification_type"))
		assert.Equal(t, "10", q.Get("limit"))
		writeJSON(t, w, NotificationList{
			Notifications: []Notification{{ID: "n1", Type: "alert", Title: "Stock low", Priority: "high"}},
			UnreadCount:   3,
		})
	}))

	got, err := api.Notifications.List(context.Background(), NotificationFilter{
		UserID:     "merchant-1",
		UnreadOnly: true,
		Type:       "alert",
		Limit:      10,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, got.UnreadCount)
	require.Len(t, got.Notifications, 1)
	assert.Equal(t, "Stock low", got.Notifications[0].Title)
}

func TestNotificationMarkReadInvalidatesCounters(t *testing.T) {
	var countReads atomic.Int64
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/notifications/unread-count":
			countReads.Add(1)
			writeJSON(t, w, map[string]int{"unread_count": int(5 - countReads.Load())})
		case r.Method == http.MethodPut && r.URL.Path == "/api/notifications/n1/read":
			writeJSON(t, w, map[string]any{"success": true, "notification_id": "n1"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	ctx := context.Background()

	first, err := api.Notifications.UnreadCount(ctx, "merchant-1")
	require.NoError(t, err)
	assert.Equal(t, 4, first)

	// Still cached: no second backend read.
	again, err := api.Notifications.UnreadCount(ctx, "merchant-1")
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, int64(1), countReads.Load())

	require.NoError(t, api.Notifications.MarkRead(ctx, "merchant-1", "n1"))

	fresh, err := api.Notifications.UnreadCount(ctx, "merchant-1")
	require.NoError(t, err)
	assert.Equal(t, 3, fresh)
	assert.Equal(t, int64(2), countReads.Load())
}

func TestChatSendMessageAndHistory(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/chatbot/message":
			var msg ChatMessage
			require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
			assert.Equal(t, "where is my order?", msg.Message)
			writeJSON(t, w, ChatReply{
				SessionID:  "sess-1",
				Response:   "Let me check that for you.",
				Intent:     "order_status",
				Confidence: 0.92,
			})
		case r.Method == http.MethodGet && r.URL.Path == "/api/chatbot/session/sess-1/history":
			writeJSON(t, w, ConversationHistory{
				SessionID: "sess-1",
				Status:    "active",
				Messages: []ConversationMessage{
					{Role: "user", Content: "where is my order?"},
					{Role: "assistant", Content: "Let me check that for you."},
				},
			})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	ctx := context.Background()

	reply, err := api.Chat.SendMessage(ctx, ChatMessage{Message: "where is my order?"})
	require.NoError(t, err)
	assert.Equal(t, "sess-1", reply.SessionID)
	assert.Equal(t, "order_status", reply.Intent)

	history, err := api.Chat.History(ctx, reply.SessionID)
	require.NoError(t, err)
	assert.Len(t, history.Messages, 2)
}

func TestAdminApproveInvalidatesQueue(t *testing.T) {
	var queueReads atomic.Int64
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/admin/queue":
			queueReads.Add(1)
			if queueReads.Load() == 1 {
				writeJSON(t, w, []TrendSuggestion{{ID: 7, Hashtag: "#ledstrip", Status: "pending"}})
				return
			}
			writeJSON(t, w, []TrendSuggestion{})
		case r.Method == http.MethodPost && r.URL.Path == "/api/admin/queue/7/approve":
			var req ApproveSuggestion
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.NotNil(t, req.PriceCents)
			assert.Equal(t, int64(1999), *req.PriceCents)
			writeJSON(t, w, Product{ID: 31, Name: "LED Strip", PriceCents: 1999, Status: "live"})
		case r.Method == http.MethodGet && r.URL.Path == "/api/admin/stats":
			writeJSON(t, w, AdminStats{})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	ctx := context.Background()

	queue, err := api.Admin.Queue(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 1)

	price := int64(1999)
	product, err := api.Admin.Approve(ctx, queue[0].ID, ApproveSuggestion{PriceCents: &price})
	require.NoError(t, err)
	assert.Equal(t, "live", product.Status)

	queue, err = api.Admin.Queue(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue)
	assert.Equal(t, int64(2), queueReads.Load())
}

func TestAdminOrderLifecycle(t *testing.T) {
	var status atomic.Value
	status.Store("paid")
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/admin/orders":
			assert.Equal(t, "paid", r.URL.Query().Get("status"))
			assert.Equal(t, "20", r.URL.Query().Get("limit"))
			writeJSON(t, w, []Order{{ID: 9, Email: "buyer@example.com", AmountCents: 1999, Status: status.Load().(string)}})
		case r.Method == http.MethodGet && r.URL.Path == "/api/admin/orders/9":
			writeJSON(t, w, Order{ID: 9, Email: "buyer@example.com", AmountCents: 1999, Status: status.Load().(string)})
		case r.Method == http.MethodPatch && r.URL.Path == "/api/admin/orders/9/status":
			var req struct {
				Status string `json:"status"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			status.Store(req.Status)
			writeJSON(t, w, map[string]any{"status": req.Status, "id": 9})
		case r.Method == http.MethodPost && r.URL.Path == "/api/admin/orders/9/tracking":
			var req OrderTracking
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "1Z999", req.TrackingNumber)
			writeJSON(t, w, map[string]any{"status": "ok"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	ctx := context.Background()

	orders, err := api.Admin.Orders(ctx, OrderFilter{Status: "paid", Limit: 20})
	require.NoError(t, err)
	require.Len(t, orders, 1)

	require.NoError(t, api.Admin.UpdateOrderStatus(ctx, 9, "shipped"))
	require.NoError(t, api.Admin.AddOrderTracking(ctx, 9, OrderTracking{TrackingNumber: "1Z999"}))

	order, err := api.Admin.Order(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "shipped", order.Status)
}

func TestSettingsUpdateRefreshesCachedRead(t *testing.T) {
	var name atomic.Value
	name.Store("Urgency Store")
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/settings", r.URL.Path)
		if r.Method == http.MethodPut {
			var req StoreSettings
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			name.Store(req.StoreName)
		}
		writeJSON(t, w, StoreSettings{StoreName: name.Load().(string), PrimaryColor: "#FE2C55"})
	}))

	ctx := context.Background()

	got, err := api.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Urgency Store", got.StoreName)

	updated, err := api.Settings.Update(ctx, StoreSettings{StoreName: "Trend Store"})
	require.NoError(t, err)
	assert.Equal(t, "Trend Store", updated.StoreName)

	got, err = api.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Trend Store", got.StoreName)
}

func TestInsightsDigest(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/insights/daily-digest", r.URL.Path)
		writeJSON(t, w, DailyDigest{
			Summary:         "Revenue up 12% day over day.",
			Highlights:      []string{"LED Strip is trending"},
			Recommendations: []string{"Restock LED Strip"},
			GeneratedAt:     time.Now().UTC(),
		})
	}))

	got, err := api.Insights.DailyDigest(context.Background())
	require.NoError(t, err)
	assert.Contains(t, got.Summary, "Revenue up")
	assert.Len(t, got.Highlights, 1)
}
