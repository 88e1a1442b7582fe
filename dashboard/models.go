package dashboard

import "time"

// Product is a storefront product as managed from the admin dashboard.
type Product struct {
	ID                int64     `json:"id"`
	Slug              string    `json:"slug"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	PriceCents        int64     `json:"price_cents"`
	MainImageURL      string    `json:"main_image_url,omitempty"`
	TrendScore        float64   `json:"trend_score"`
	UrgencyScore      float64   `json:"urgency_score"`
	SupplierURL       string    `json:"supplier_url,omitempty"`
	SupplierName      string    `json:"supplier_name,omitempty"`
	SupplierCostCents int64     `json:"supplier_cost_cents,omitempty"`
	ProfitMargin      float64   `json:"profit_margin,omitempty"`
	ImportSource      string    `json:"import_source,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// ProductUpdate is a partial product patch; nil fields are left unchanged.
type ProductUpdate struct {
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	PriceCents        *int64   `json:"price_cents,omitempty"`
	Status            *string  `json:"status,omitempty"`
	MainImageURL      *string  `json:"main_image_url,omitempty"`
	SupplierURL       *string  `json:"supplier_url,omitempty"`
	SupplierName      *string  `json:"supplier_name,omitempty"`
	SupplierCostCents *int64   `json:"supplier_cost_cents,omitempty"`
	ProfitMargin      *float64 `json:"profit_margin,omitempty"`
	ImportSource      *string  `json:"import_source,omitempty"`
}

// Order is a customer order with its denormalized product name.
type Order struct {
	ID              int64     `json:"id"`
	ProductID       *int64    `json:"product_id"`
	Email           string    `json:"email"`
	AmountCents     int64     `json:"amount_cents"`
	Status          string    `json:"status"`
	StripeSessionID *string   `json:"stripe_session_id"`
	CreatedAt       time.Time `json:"created_at"`
	ProductName     string    `json:"product_name,omitempty"`
	TrackingNumber  *string   `json:"tracking_number,omitempty"`
	TrackingURL     *string   `json:"tracking_url,omitempty"`
}

// OrderTracking attaches a shipment tracking reference to an order.
type OrderTracking struct {
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url,omitempty"`
}

// AdminStats is the headline block of the admin dashboard.
type AdminStats struct {
	OrdersToday        int     `json:"orders_today"`
	RevenueTodayCents  int64   `json:"revenue_today_cents"`
	TotalProducts      int     `json:"total_products"`
	LiveProducts       int     `json:"live_products"`
	PendingSuggestions int     `json:"pending_suggestions"`
	ViewsToday         int     `json:"views_today"`
	ConversionRate     float64 `json:"conversion_rate"`
}

// TrendSuggestion is an AI-scored product candidate awaiting review.
type TrendSuggestion struct {
	ID                   int64      `json:"id"`
	Hashtag              string     `json:"hashtag"`
	Views                int64      `json:"views"`
	GrowthRate           float64    `json:"growth_rate"`
	Engagement           int64      `json:"engagement"`
	VideoCount           int64      `json:"video_count"`
	TrendScore           float64    `json:"trend_score"`
	UrgencyScore         float64    `json:"urgency_score"`
	AIReasoning          string     `json:"ai_reasoning,omitempty"`
	SuggestedName        string     `json:"suggested_name,omitempty"`
	SuggestedDescription string     `json:"suggested_description,omitempty"`
	SuggestedPriceCents  *int64     `json:"suggested_price_cents,omitempty"`
	Status               string     `json:"status"`
	CreatedAt            time.Time  `json:"created_at"`
	ReviewedAt           *time.Time `json:"reviewed_at,omitempty"`
	ProductID            *int64     `json:"product_id,omitempty"`
}

// ApproveSuggestion optionally overrides the suggested name and price.
type ApproveSuggestion struct {
	PriceCents *int64  `json:"price_cents,omitempty"`
	Name       *string `json:"name,omitempty"`
}

// Overview is the analytics dashboard headline, current period vs previous.
type Overview struct {
	TotalRevenueCents  int64   `json:"total_revenue_cents"`
	TotalOrders        int     `json:"total_orders"`
	ConversionRate     float64 `json:"conversion_rate"`
	AvgOrderValueCents int64   `json:"avg_order_value_cents"`
	RevenueChange      float64 `json:"revenue_change"`
	OrdersChange       float64 `json:"orders_change"`
}

// RevenuePoint is one day of the revenue chart, in dollars.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// OrdersPoint is one day of the orders chart grouped by status bucket.
type OrdersPoint struct {
	Date      string `json:"date"`
	Paid      int    `json:"paid"`
	Pending   int    `json:"pending"`
	Cancelled int    `json:"cancelled"`
}

// TopProduct ranks a product by revenue over the selected window.
type TopProduct struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	MainImageURL string `json:"main_image_url,omitempty"`
	UnitsSold    int    `json:"units_sold"`
	Revenue      int64  `json:"revenue"`
}

// FunnelStage is one step of the conversion funnel.
type FunnelStage struct {
	Stage string  `json:"stage"`
	Count int     `json:"count"`
	Rate  float64 `json:"rate"`
}

// DailyDigest is the AI-generated morning summary.
type DailyDigest struct {
	Summary         string         `json:"summary"`
	KeyMetrics      map[string]any `json:"key_metrics"`
	Highlights      []string       `json:"highlights"`
	Concerns        []string       `json:"concerns"`
	Recommendations []string       `json:"recommendations"`
	GeneratedAt     time.Time      `json:"generated_at"`
}

// ProductInsight is the per-product AI analysis.
type ProductInsight struct {
	ProductID      int64          `json:"product_id"`
	ProductName    string         `json:"product_name"`
	Summary        string         `json:"summary"`
	Metrics        map[string]any `json:"metrics"`
	Recommendation string         `json:"recommendation"`
	Reasoning      string         `json:"reasoning"`
}

// Anomaly flags an unusual movement in sales or traffic.
type Anomaly struct {
	Type            string    `json:"type"`
	Severity        string    `json:"severity"`
	Message         string    `json:"message"`
	ProductID       *int64    `json:"product_id"`
	SuggestedAction string    `json:"suggested_action"`
	DetectedAt      time.Time `json:"detected_at"`
}

// TrendPrediction scores where a product's trend is heading.
type TrendPrediction struct {
	ProductID      *int64  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	PredictedScore float64 `json:"predicted_score"`
	Confidence     float64 `json:"confidence"`
	Reasoning      string  `json:"reasoning"`
}

// PricingSuggestion proposes a new price with expected impact.
type PricingSuggestion struct {
	ProductID           int64  `json:"product_id"`
	ProductName         string `json:"product_name"`
	CurrentPriceCents   int64  `json:"current_price_cents"`
	SuggestedPriceCents int64  `json:"suggested_price_cents"`
	ExpectedImpact      string `json:"expected_impact"`
	Reasoning           string `json:"reasoning"`
}

// Notification is an in-app notification for the dashboard user.
type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Link      string `json:"link,omitempty"`
	Priority  string `json:"priority"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// NotificationCreate is the payload for publishing a notification.
type NotificationCreate struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Link     string `json:"link,omitempty"`
	Priority string `json:"priority"`
}

// NotificationList is the paged listing with its unread counter.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// NotificationStats aggregates notifications by type.
type NotificationStats struct {
	Total  int            `json:"total"`
	Unread int            `json:"unread"`
	ByType map[string]int `json:"by_type"`
}

// ChatMessage is a customer (or agent-test) message into the support bot.
type ChatMessage struct {
	Message       string `json:"message"`
	SessionID     string `json:"session_id,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	OrderID       string `json:"order_id,omitempty"`
	ProductID     *int64 `json:"product_id,omitempty"`
}

// ChatReply is the bot's answer with routing hints.
type ChatReply struct {
	SessionID        string   `json:"session_id"`
	Response         string   `json:"response"`
	SuggestedActions []string `json:"suggested_actions"`
	NeedsHuman       bool     `json:"needs_human"`
	Confidence       float64  `json:"confidence"`
	Intent           string   `json:"intent"`
	Timestamp        string   `json:"timestamp"`
}

// ChatSession summarizes one support conversation.
type ChatSession struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	MessageCount  int    `json:"message_count"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	LastMessage   string `json:"last_message,omitempty"`
}

// ConversationMessage is one turn of a session transcript.
type ConversationMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ConversationHistory is a session's full transcript with its metadata.
type ConversationHistory struct {
	SessionID     string                `json:"session_id"`
	Status        string                `json:"status"`
	CustomerEmail string                `json:"customer_email,omitempty"`
	CustomerName  string                `json:"customer_name,omitempty"`
	Messages      []ConversationMessage `json:"messages"`
	CreatedAt     string                `json:"created_at"`
	UpdatedAt     string                `json:"updated_at"`
}

// EscalationRequest hands a conversation over to human support.
type EscalationRequest struct {
	Reason        string `json:"reason,omitempty"`
	Priority      string `json:"priority,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

// Escalation is the created support ticket reference.
type Escalation struct {
	TicketID              string `json:"ticket_id"`
	Message               string `json:"message"`
	EstimatedResponseTime string `json:"estimated_response_time"`
}

// SessionList is the admin view of chat sessions, newest first.
type SessionList struct {
	Sessions []ChatSession `json:"sessions"`
	Total    int           `json:"total"`
}

// SessionStats counts sessions by status.
type SessionStats struct {
	TotalSessions     int     `json:"total_sessions"`
	Active            int     `json:"active"`
	PendingEscalation int     `json:"pending_escalation"`
	Escalated         int     `json:"escalated"`
	Resolved          int     `json:"resolved"`
	ResolutionRate    float64 `json:"resolution_rate"`
}

// StoreSettings is the storefront branding and policy configuration.
type StoreSettings struct {
	StoreName       string `json:"store_name,omitempty"`
	StoreLogoURL    string `json:"store_logo_url,omitempty"`
	StoreFaviconURL string `json:"store_favicon_url,omitempty"`
	PrimaryColor    string `json:"primary_color,omitempty"`
	AccentColor     string `json:"accent_color,omitempty"`
	ContactEmail    string `json:"contact_email,omitempty"`
	SocialInstagram string `json:"social_instagram,omitempty"`
	SocialTikTok    string `json:"social_tiktok,omitempty"`
	SocialFacebook  string `json:"social_facebook,omitempty"`
	SocialTwitter   string `json:"social_twitter,omitempty"`
	ShippingPolicy  string `json:"shipping_policy,omitempty"`
	ReturnPolicy    string `json:"return_policy,omitempty"`
	PrivacyPolicy   string `json:"privacy_policy,omitempty"`
}
