package domain

import "time"

type AdStatus string

const (
	AdActive   AdStatus = "active"
	AdInactive AdStatus = "inactive"
	AdExpired  AdStatus = "expired"
)

// Advertisement is display-only promotional content; the gateway never edits
// these, it only lists the public set and reports views/clicks.
type Advertisement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AdType      string    `json:"ad_type"` // hero_banner|featured_hotel|sponsored_room|side_banner|bottom_promotion
	TargetID    *string   `json:"target_id,omitempty"`
	TargetURL   *string   `json:"target_url,omitempty"`
	ImageURL    string    `json:"image_url"`
	Priority    int       `json:"priority"`
	Status      AdStatus  `json:"status"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalViews  int       `json:"total_views"`
	TotalClicks int       `json:"total_clicks"`
}
