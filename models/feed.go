package models

// SortOrder selects the ranking policy for the feed.
type SortOrder string

const (
	SortByDistance SortOrder = "distance"
	SortByNewest   SortOrder = "newest"
)

// FeedQuery carries every knob the viewer can turn on the discovery feed.
type FeedQuery struct {
	// AllowedIDs is the allow-list produced by a search; nil means "no search
	// active" while an empty non-nil list legitimately matches nothing.
	AllowedIDs []string
	Category   Category
	// UserLocation is nil when the viewer's position is unknown.
	UserLocation *Location
	// MaxDistanceKm at or above the configured sentinel disables the radius
	// filter entirely.
	MaxDistanceKm float64
	Sort          SortOrder
}

// FeedAd decorates an ad with its computed viewer distance and the rendered
// card labels. DistanceKm is 0 for all-locations ads, which render as
// "National".
type FeedAd struct {
	Ad            Ad      `json:"ad"`
	DistanceKm    float64 `json:"distanceKm"`
	National      bool    `json:"national"`
	DistanceLabel string  `json:"distanceLabel,omitempty"`
	PostedAgo     string  `json:"postedAgo"`
	ExpiresIn     string  `json:"expiresIn"`
}

// SlotState is the rotation state of one carousel slot as exposed to the
// presentation layer.
type SlotState struct {
	Slot         int  `json:"slot"`
	CurrentIndex int  `json:"currentIndex"`
	Size         int  `json:"size"`
	Paused       bool `json:"paused"`
}

// InsightsSummary is the owner dashboard rollup across all of a user's ads.
type InsightsSummary struct {
	Views    int `json:"views"`
	Whatsapp int `json:"whatsapp"`
	Calls    int `json:"calls"`
	Socials  int `json:"socials"`
	Reviews  int `json:"reviews"`
}
