package ads

import (
	"ard/models"

	adsRepo "ard/database/repository/ads"
)

// AdService owns the canonical ad collection. Every mutation enters through
// these operations; nothing else touches storage.
type AdService interface {
	// Create validates and stores a new ad, stamping identity and lifetime.
	Create(input models.Ad) (*models.Ad, error)
	// Update replaces an ad's editable fields, preserving identity, creation
	// time, counters, reports and reviews. Returns (nil, nil) when the id
	// matches nothing.
	Update(id string, input models.Ad) (*models.Ad, error)
	// Delete removes an ad and its insights permanently. Unknown ids are a
	// no-op.
	Delete(id string) error
	// Get fetches one ad, or nil when it doesn't exist.
	Get(id string) (*models.Ad, error)
	// List returns all non-expired ads, lazily purging expired records from
	// storage as a side effect.
	List() ([]models.Ad, error)
	// ListByUser returns every ad a user owns, expired ones included so the
	// owner can renew them.
	ListByUser(userID string) ([]models.Ad, error)
	// Renew gives an ad a fresh 24h lifetime and bumps its creation time.
	Renew(id string) (*models.Ad, error)
	// Approve clears the moderation gate.
	Approve(id string) error
	// Report increments the ad's report counter.
	Report(id string) error
	// DismissReports resets the report counter to zero.
	DismissReports(id string) error
	// AddReview prepends a review (newest first).
	AddReview(id string, review models.Review) (*models.Review, error)
	// RecordInsight bumps an engagement counter; contact-classified kinds
	// also bump the derived contacts total atomically.
	RecordInsight(id string, kind models.InsightKind) error
}

// DefaultAdService is the production implementation.
type DefaultAdService struct {
	Repo adsRepo.AdRepository
}
