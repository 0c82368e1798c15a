package adsRepo

import (
	"errors"

	"ard/models"
)

// ErrNotFound is returned when an ad id matches nothing. Callers translate it
// into a no-op rather than a failure.
var ErrNotFound = errors.New("ad not found")

// AdRepository defines storage access for the ad collection. Backends promise
// read-your-writes consistency within one process; cross-process transactions
// are out of scope.
type AdRepository interface {
	// Insert stores a new ad record.
	Insert(ad *models.Ad) error
	// Replace overwrites the full record for ad.ID.
	Replace(ad *models.Ad) error
	// Delete removes an ad and its counters permanently.
	Delete(id string) error
	// GetByID retrieves a single ad.
	GetByID(id string) (*models.Ad, error)
	// GetAll retrieves the full snapshot, expired records included. Expiry
	// filtering is the engine's job, not the storage layer's.
	GetAll() ([]models.Ad, error)
	// GetByUser retrieves every ad owned by a user.
	GetByUser(userID string) ([]models.Ad, error)
	// DeleteExpired removes ads whose expiresAt is at or before nowMillis and
	// reports how many went away.
	DeleteExpired(nowMillis int64) (int64, error)
	// IncrementInsight bumps one engagement counter and, when the kind is a
	// contact, the derived contacts total in the same atomic write.
	IncrementInsight(id string, kind models.InsightKind, contact bool) error
	// PushReview prepends a review, keeping newest-first order.
	PushReview(id string, review models.Review) error
}
