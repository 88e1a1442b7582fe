// Package dashboard is the typed API surface of the shop engine backend,
// built on top of the resilient shopapi client. Each service wraps one router
// of the backend with strongly typed requests and responses; reads go through
// the client's cache, mutations invalidate the GET entries they stale.
package dashboard

import (
	"net/url"
	"strconv"

	"github.com/nomad3/shopapi"
)

// API bundles every dashboard service around a shared client.
type API struct {
	Analytics     *AnalyticsService
	Insights      *InsightsService
	Notifications *NotificationService
	Chat          *ChatService
	Admin         *AdminService
	Settings      *SettingsService
}

// New builds the full API surface on top of client.
func New(client *shopapi.Client) *API {
	return &API{
		Analytics:     &AnalyticsService{client: client},
		Insights:      &InsightsService{client: client},
		Notifications: &NotificationService{client: client},
		Chat:          &ChatService{client: client},
		Admin:         &AdminService{client: client},
		Settings:      &SettingsService{client: client},
	}
}

// daysQuery builds the ?days=N window parameter shared by the analytics and
// insights endpoints. Zero means "use the backend default" and sends nothing.
func daysQuery(days int) url.Values {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	return q
}
