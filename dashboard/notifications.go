package dashboard

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nomad3/shopapi"
)

const notificationsBase = "/api/notifications"

// NotificationService manages the dashboard's in-app notifications. Every
// mutation invalidates the unfiltered list, stats and unread-count entries
// for the affected user; filtered listings simply expire with their TTL.
type NotificationService struct {
	client *shopapi.Client
}

// NotificationFilter narrows a List call. Zero values are omitted.
type NotificationFilter struct {
	UserID     string
	UnreadOnly bool
	Type       string
	Limit      int
}

func (f NotificationFilter) query() url.Values {
	q := url.Values{}
	if f.UserID != "" {
		q.Set("user_id", f.UserID)
	}
	if f.UnreadOnly {
		q.Set("unread_only", "true")
	}
	if f.Type != "" {
		q.Set("notification_type", f.Type)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

func userQuery(userID string) url.Values {
	q := url.Values{}
	if userID != "" {
		q.Set("user_id", userID)
	}
	return q
}

// List returns notifications matching the filter plus the unread counter.
func (s *NotificationService) List(ctx context.Context, filter NotificationFilter) (NotificationList, error) {
	return shopapi.Fetch[NotificationList](ctx, s.client, http.MethodGet, notificationsBase, nil,
		shopapi.Query(filter.query()))
}

// Stats returns totals broken down by notification type.
func (s *NotificationService) Stats(ctx context.Context, userID string) (NotificationStats, error) {
	return shopapi.Fetch[NotificationStats](ctx, s.client, http.MethodGet, notificationsBase+"/stats", nil,
		shopapi.Query(userQuery(userID)))
}

// UnreadCount returns the number of unread notifications for the user.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	out, err := shopapi.Fetch[struct {
		UnreadCount int `json:"unread_count"`
	}](ctx, s.client, http.MethodGet, notificationsBase+"/unread-count", nil,
		shopapi.Query(userQuery(userID)))
	return out.UnreadCount, err
}

// Create publishes a notification for the user.
func (s *NotificationService) Create(ctx context.Context, userID string, n NotificationCreate) (Notification, error) {
	out, err := shopapi.Fetch[Notification](ctx, s.client, http.MethodPost, notificationsBase, n,
		shopapi.Query(userQuery(userID)))
	if err == nil {
		s.invalidate(userID)
	}
	return out, err
}

// MarkRead marks one notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	err := s.client.PutJSON(ctx, notificationsBase+"/"+notificationID+"/read", nil, nil,
		shopapi.Query(userQuery(userID)))
	if err == nil {
		s.invalidate(userID)
	}
	return err
}

// MarkAllRead marks every notification as read and returns how many changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	var out struct {
		MarkedCount int `json:"marked_count"`
	}
	err := s.client.PutJSON(ctx, notificationsBase+"/read-all", nil, &out,
		shopapi.Query(userQuery(userID)))
	if err == nil {
		s.invalidate(userID)
	}
	return out.MarkedCount, err
}

// Delete removes one notification.
func (s *NotificationService) Delete(ctx context.Context, userID, notificationID string) error {
	err := s.client.DeleteJSON(ctx, notificationsBase+"/"+notificationID, nil,
		shopapi.Query(userQuery(userID)))
	if err == nil {
		s.invalidate(userID)
	}
	return err
}

func (s *NotificationService) invalidate(userID string) {
	q := shopapi.Query(userQuery(userID))
	s.client.Invalidate(notificationsBase, q)
	s.client.Invalidate(notificationsBase+"/stats", q)
	s.client.Invalidate(notificationsBase+"/unread-count", q)
}
