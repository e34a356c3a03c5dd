package models

// Campaign groups tracking links under a target URL.
type Campaign struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TargetURL   string `json:"target_url,omitempty"`
	Status      string `json:"status,omitempty"`
	UserID      ID     `json:"user_id,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// TrackingLink is a backend-generated redirect whose traversals are counted.
type TrackingLink struct {
	ID             ID     `json:"id"`
	CampaignID     *ID    `json:"campaign_id,omitempty"`
	CampaignName   string `json:"campaign_name,omitempty"`
	UserID         ID     `json:"user_id,omitempty"`
	OriginalURL    string `json:"original_url"`
	TrackingToken  string `json:"tracking_token,omitempty"`
	RecipientEmail string `json:"recipient_email,omitempty"`
	RecipientName  string `json:"recipient_name,omitempty"`
	LinkStatus     string `json:"link_status,omitempty"`
	Status         string `json:"status,omitempty"`
	ClickCount     int64  `json:"click_count"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// State returns link_status, falling back to status.
func (l TrackingLink) State() string {
	if l.LinkStatus != "" {
		return l.LinkStatus
	}
	return l.Status
}

type AnalyticsSummary struct {
	TotalLinks   int64 `json:"total_links"`
	TotalClicks  int64 `json:"total_clicks"`
	UniqueClicks int64 `json:"unique_clicks"`
}

type ClickEvent struct {
	TrackingToken string `json:"tracking_token,omitempty"`
	EventType     string `json:"event_type,omitempty"`
	Country       string `json:"country,omitempty"`
	City          string `json:"city,omitempty"`
	DeviceType    string `json:"device_type,omitempty"`
	Browser       string `json:"browser,omitempty"`
	OS            string `json:"os,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
	IsBot         bool   `json:"is_bot"`
}

type GeoRow struct {
	Country        string `json:"country"`
	Region         string `json:"region,omitempty"`
	City           string `json:"city,omitempty"`
	Clicks         int64  `json:"clicks"`
	Count          int64  `json:"count,omitempty"`
	UniqueVisitors int64  `json:"unique_visitors"`
}

// TotalClicks returns clicks, or count for deployments that aggregate by
// country only.
func (g GeoRow) TotalClicks() int64 {
	if g.Clicks != 0 {
		return g.Clicks
	}
	return g.Count
}

type Task struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	AssignedBy  string `json:"assigned_by,omitempty"`
}

type Health struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Version  string `json:"version,omitempty"`
	Database string `json:"database,omitempty"`
}
