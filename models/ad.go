package models

// Category is the closed set of ad categories on the platform.
type Category string

const (
	CategoryAll        Category = "All" // filter sentinel, never stored on an ad
	CategoryServices   Category = "Services"
	CategoryBusinesses Category = "Businesses"
	CategoryEvents     Category = "Events"
	CategoryJobs       Category = "Jobs"
	CategoryHealthy    Category = "Healthy"
)

// Categories lists every postable category, in display order.
var Categories = []Category{
	CategoryServices,
	CategoryBusinesses,
	CategoryEvents,
	CategoryJobs,
	CategoryHealthy,
}

// Valid reports whether c names a postable category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Coordinate is a point in finite degrees. The zero value means "unknown".
type Coordinate struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Location is a coordinate plus display labels. City and state are not keys.
type Location struct {
	Lat   float64 `json:"lat" bson:"lat"`
	Lng   float64 `json:"lng" bson:"lng"`
	City  string  `json:"city" bson:"city"`
	State string  `json:"state" bson:"state"`
}

// Coordinate extracts the point portion of a location.
func (l Location) Coordinate() Coordinate {
	return Coordinate{Lat: l.Lat, Lng: l.Lng}
}

// Contact holds an ad's structured contact channels. Phone and WhatsApp are
// mandatory at creation; everything else is optional.
type Contact struct {
	Phone      string `json:"phone" bson:"phone"`
	Whatsapp   string `json:"whatsapp" bson:"whatsapp"`
	Instagram  string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Tiktok     string `json:"tiktok,omitempty" bson:"tiktok,omitempty"`
	Facebook   string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Youtube    string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Email      string `json:"email,omitempty" bson:"email,omitempty"`
	Website    string `json:"website,omitempty" bson:"website,omitempty"`
	TicketLink string `json:"ticketLink,omitempty" bson:"ticketLink,omitempty"`
}

// Review is an appended, newest-first piece of user feedback on an ad.
type Review struct {
	ID         string `json:"id" bson:"id"`
	UserID     string `json:"userId" bson:"userId"`
	UserName   string `json:"userName" bson:"userName"`
	Rating     int    `json:"rating" bson:"rating"` // 1..5 inclusive
	Comment    string `json:"comment" bson:"comment"`
	CreatedAt  int64  `json:"createdAt" bson:"createdAt"`
	OwnerReply string `json:"ownerReply,omitempty" bson:"ownerReply,omitempty"`
}

// InsightKind names a single engagement counter on an ad.
type InsightKind string

const (
	InsightViews    InsightKind = "views"
	InsightCalls    InsightKind = "calls"
	InsightWhatsapp InsightKind = "whatsapp"
	InsightSocials  InsightKind = "socials"
	InsightWeb      InsightKind = "web"
)

// ContactKinds classifies which insight kinds also count toward the derived
// "contacts" total. Stated once as data so the business rule lives in one place.
var ContactKinds = map[InsightKind]bool{
	InsightCalls:    true,
	InsightWhatsapp: true,
	InsightSocials:  true,
	InsightWeb:      true,
}

// Valid reports whether k names a known counter.
func (k InsightKind) Valid() bool {
	return k == InsightViews || ContactKinds[k]
}

// AdInsights holds per-ad engagement counters. All counters are monotonically
// increasing for the lifetime of the ad; contacts is the derived sum of every
// contact-classified event ever recorded.
type AdInsights struct {
	Views    int `json:"views" bson:"views"`
	Contacts int `json:"contacts" bson:"contacts"`
	Calls    int `json:"calls" bson:"calls"`
	Whatsapp int `json:"whatsapp" bson:"whatsapp"`
	Socials  int `json:"socials" bson:"socials"` // Instagram, TikTok, Facebook, YouTube
	Web      int `json:"web" bson:"web"`         // Website, Tickets, Email
}

// Ad is a short-lived, location-tagged classified.
type Ad struct {
	ID          string     `json:"id" bson:"id"`
	UserID      string     `json:"userId" bson:"userId"`
	UserName    string     `json:"userName" bson:"userName"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Category    Category   `json:"category" bson:"category"`
	Keywords    []string   `json:"keywords" bson:"keywords"`
	Images      []string   `json:"images" bson:"images"` // first element is the cover
	Contact     Contact    `json:"contact" bson:"contact"`
	Locations   []Location `json:"locations" bson:"locations"` // first is the home location
	// IsAllLocations means "match everywhere": location filtering is bypassed.
	IsAllLocations bool       `json:"isAllLocations" bson:"isAllLocations"`
	CreatedAt      int64      `json:"createdAt" bson:"createdAt"` // epoch millis
	ExpiresAt      int64      `json:"expiresAt" bson:"expiresAt"` // epoch millis
	Reports        int        `json:"reports" bson:"reports"`
	IsApproved     bool       `json:"isApproved" bson:"isApproved"`
	Reviews        []Review   `json:"reviews" bson:"reviews"` // newest first
	Insights       AdInsights `json:"insights" bson:"insights"`
}

// Active reports whether the ad has not yet expired at nowMillis.
func (a *Ad) Active(nowMillis int64) bool {
	return nowMillis < a.ExpiresAt
}

// Visible reports whether the ad may appear in the public feed.
func (a *Ad) Visible(nowMillis int64) bool {
	return a.Active(nowMillis) && a.IsApproved
}

// WellFormed rejects records too broken to rank: an ad needs an identity and,
// unless it is flagged all-locations, at least one location. One corrupt
// persisted record must not take down the listing.
func (a *Ad) WellFormed() bool {
	if a.ID == "" || a.Title == "" {
		return false
	}
	if !a.IsAllLocations && len(a.Locations) == 0 {
		return false
	}
	return true
}
