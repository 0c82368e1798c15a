package ads

import (
	"errors"
	"fmt"
	"time"

	"ard/config"
	adsRepo "ard/database/repository/ads"
	"ard/models"
	"ard/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func validateAd(ad *models.Ad) error {
	if ad.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !ad.Category.Valid() {
		return fmt.Errorf("category %q is not one of the platform categories", ad.Category)
	}
	if ad.Contact.Phone == "" || ad.Contact.Whatsapp == "" {
		return fmt.Errorf("phone and whatsapp contacts are required")
	}
	// The primary location is mandatory even for all-locations ads: the flag
	// widens where the ad matches, it never removes where the seller is.
	if len(ad.Locations) == 0 {
		return fmt.Errorf("at least one location is required")
	}
	return nil
}

// Create validates and stores a new ad. The ad goes live immediately and
// stays live for the configured lifetime (24h by default).
func (s *DefaultAdService) Create(input models.Ad) (*models.Ad, error) {
	if err := validateAd(&input); err != nil {
		return nil, fmt.Errorf("invalid ad: %w", err)
	}

	now := nowMillis()
	input.ID = uuid.New().String()
	input.CreatedAt = now
	input.ExpiresAt = now + config.AdTTL().Milliseconds()
	input.Reports = 0
	input.IsApproved = true
	input.Reviews = []models.Review{}
	input.Insights = models.AdInsights{}

	if err := s.Repo.Insert(&input); err != nil {
		return nil, fmt.Errorf("failed to create ad: %w", err)
	}
	utils.GetLogger().Info("ad created",
		zap.String("id", input.ID),
		zap.String("category", string(input.Category)),
		zap.String("owner", input.UserID))
	return &input, nil
}

// Update replaces the editable fields of an ad. Identity, creation time,
// expiry, counters and reviews survive the edit, so editing can never extend
// an ad's life.
func (s *DefaultAdService) Update(id string, input models.Ad) (*models.Ad, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, adsRepo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := validateAd(&input); err != nil {
		return nil, fmt.Errorf("invalid ad: %w", err)
	}

	input.ID = existing.ID
	input.UserID = existing.UserID
	input.CreatedAt = existing.CreatedAt
	input.ExpiresAt = existing.ExpiresAt
	input.Reports = existing.Reports
	input.IsApproved = existing.IsApproved
	input.Reviews = existing.Reviews
	input.Insights = existing.Insights

	if err := s.Repo.Replace(&input); err != nil {
		if errors.Is(err, adsRepo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update ad %s: %w", id, err)
	}
	return &input, nil
}

// Delete removes an ad permanently. A missing id is a silent no-op.
func (s *DefaultAdService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil && !errors.Is(err, adsRepo.ErrNotFound) {
		return fmt.Errorf("failed to delete ad %s: %w", id, err)
	}
	return nil
}

// Get fetches one ad; nil when it doesn't exist.
func (s *DefaultAdService) Get(id string) (*models.Ad, error) {
	ad, err := s.Repo.GetByID(id)
	if errors.Is(err, adsRepo.ErrNotFound) {
		return nil, nil
	}
	return ad, err
}

// List returns the live snapshot. Expired records are excluded from the
// result and purged from storage in passing; nothing deletes an ad at the
// instant of expiry, readers are responsible for not serving it.
func (s *DefaultAdService) List() ([]models.Ad, error) {
	all, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}

	now := nowMillis()
	live := make([]models.Ad, 0, len(all))
	expired := 0
	for _, ad := range all {
		if ad.Active(now) {
			live = append(live, ad)
		} else {
			expired++
		}
	}
	if expired > 0 {
		if _, err := s.Repo.DeleteExpired(now); err != nil {
			utils.GetLogger().Warn("lazy purge of expired ads failed", zap.Error(err))
		}
	}
	return live, nil
}

// ListByUser returns everything a user owns, including expired ads.
func (s *DefaultAdService) ListByUser(userID string) ([]models.Ad, error) {
	return s.Repo.GetByUser(userID)
}

// Renew reposts an ad: fresh creation time, fresh lifetime. Returns (nil, nil)
// when the id matches nothing.
func (s *DefaultAdService) Renew(id string) (*models.Ad, error) {
	ad, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, adsRepo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	now := nowMillis()
	ad.CreatedAt = now
	ad.ExpiresAt = now + config.AdTTL().Milliseconds()
	if err := s.Repo.Replace(ad); err != nil {
		if errors.Is(err, adsRepo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to renew ad %s: %w", id, err)
	}
	return ad, nil
}
