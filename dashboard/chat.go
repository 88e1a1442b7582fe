package dashboard

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nomad3/shopapi"
)

const chatBase = "/api/chatbot"

// ChatService drives the customer support bot and the admin's view of its
// sessions. Messages are POSTs and never cached; the session listings are
// regular cached GETs, so mutations invalidate them.
type ChatService struct {
	client *shopapi.Client
}

// SendMessage sends a customer message. Leave msg.SessionID empty to open a
// new conversation; the reply carries the assigned session id.
func (s *ChatService) SendMessage(ctx context.Context, msg ChatMessage) (ChatReply, error) {
	return shopapi.Fetch[ChatReply](ctx, s.client, http.MethodPost, chatBase+"/message", msg)
}

// History returns the full transcript of a session.
func (s *ChatService) History(ctx context.Context, sessionID string) (ConversationHistory, error) {
	return shopapi.Fetch[ConversationHistory](ctx, s.client, http.MethodGet,
		chatBase+"/session/"+sessionID+"/history", nil)
}

// Escalate hands the session to human support and returns the ticket.
func (s *ChatService) Escalate(ctx context.Context, sessionID string, req EscalationRequest) (Escalation, error) {
	out, err := shopapi.Fetch[Escalation](ctx, s.client, http.MethodPost,
		chatBase+"/session/"+sessionID+"/escalate", req)
	if err == nil {
		s.invalidateSessionViews(sessionID)
	}
	return out, err
}

// Resolve marks the session as resolved.
func (s *ChatService) Resolve(ctx context.Context, sessionID string) error {
	err := s.client.PostJSON(ctx, chatBase+"/session/"+sessionID+"/resolve", nil, nil)
	if err == nil {
		s.invalidateSessionViews(sessionID)
	}
	return err
}

// Sessions lists chat sessions newest first. status filters by session state
// ("active", "escalated", "resolved"); empty means all. limit <= 0 uses the
// backend default.
func (s *ChatService) Sessions(ctx context.Context, status string, limit int) (SessionList, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return shopapi.Fetch[SessionList](ctx, s.client, http.MethodGet, chatBase+"/sessions", nil,
		shopapi.Query(q))
}

// SessionStats counts sessions by status.
func (s *ChatService) SessionStats(ctx context.Context) (SessionStats, error) {
	return shopapi.Fetch[SessionStats](ctx, s.client, http.MethodGet, chatBase+"/sessions/stats", nil)
}

// FAQEntry is a canned answer for a common support topic.
type FAQEntry struct {
	Topic    string `json:"topic"`
	Response string `json:"response"`
}

// FAQTopic names one available FAQ topic.
type FAQTopic struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// FAQ returns the canned answer for a topic such as "shipping_cost".
func (s *ChatService) FAQ(ctx context.Context, topic string) (FAQEntry, error) {
	return shopapi.Fetch[FAQEntry](ctx, s.client, http.MethodGet, chatBase+"/faq/"+topic, nil)
}

// FAQTopics lists the available FAQ topics.
func (s *ChatService) FAQTopics(ctx context.Context) ([]FAQTopic, error) {
	out, err := shopapi.Fetch[struct {
		Topics []FAQTopic `json:"topics"`
	}](ctx, s.client, http.MethodGet, chatBase+"/faq", nil)
	return out.Topics, err
}

func (s *ChatService) invalidateSessionViews(sessionID string) {
	s.client.Invalidate(chatBase + "/session/" + sessionID + "/history")
	s.client.Invalidate(chatBase + "/sessions")
	s.client.Invalidate(chatBase + "/sessions/stats")
}
